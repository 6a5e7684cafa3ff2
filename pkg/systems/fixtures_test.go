package systems

import (
	"testing"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/types"
)

// placeEnemy 按模板创建敌机并放到指定位置
func placeEnemy(t *testing.T, em *ecs.EntityManager, cfg *config.GameConfig, enemyType types.EnemyType, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(em, cfg, entities.NewSequenceRandom(0), enemyType)
	if err != nil {
		t.Fatalf("NewEnemy(%s) failed: %v", enemyType, err)
	}
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X, pos.Y = x, y
	return id
}

// placeBullet 在指定位置创建子弹
func placeBullet(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: cfg.Bullet.Width, Height: cfg.Bullet.Height})
	ecs.AddComponent(em, id, &components.VelocityComponent{VY: -cfg.Bullet.Speed})
	ecs.AddComponent(em, id, &components.BulletComponent{})
	return id
}

// placePlayer 创建玩家并放到指定位置
func placePlayer(em *ecs.EntityManager, cfg *config.GameConfig, x, y float64) ecs.EntityID {
	id := entities.NewPlayer(em, cfg)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	pos.X, pos.Y = x, y
	return id
}

func positionOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.PositionComponent {
	t.Helper()
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no PositionComponent", id)
	}
	return pos
}
