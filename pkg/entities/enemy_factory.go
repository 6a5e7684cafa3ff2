package entities

import (
	"fmt"
	"log"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/types"
)

// NewEnemy 按模板创建敌机实体
// 敌机出现在视口上方（y = -height），X 在 [0, 区域宽度-敌机宽度) 内随机
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（模板表和区域宽度）
//   - rnd: 随机数来源（决定 X）
//   - enemyType: 敌机类型
//
// 返回:
//   - ecs.EntityID: 创建的敌机实体ID
//   - error: 类型没有对应模板时返回错误
func NewEnemy(em *ecs.EntityManager, cfg *config.GameConfig, rnd Random, enemyType types.EnemyType) (ecs.EntityID, error) {
	tpl, ok := cfg.Enemies.Get(enemyType)
	if !ok {
		return 0, fmt.Errorf("no template for enemy type %s", enemyType)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: rnd.Float64() * (float64(cfg.Playfield.Width) - tpl.Width),
		Y: -tpl.Height,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  tpl.Width,
		Height: tpl.Height,
	})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{
		VY: tpl.Speed,
	})
	ecs.AddComponent(em, entityID, &components.HealthComponent{
		CurrentHealth: tpl.Health,
		MaxHealth:     tpl.Health,
	})
	ecs.AddComponent(em, entityID, &components.EnemyComponent{
		Type:   enemyType,
		Points: tpl.Points,
	})

	return entityID, nil
}

// NewBoss 创建第 level 关的 Boss
// 血量和分值覆盖模板值：血量 = Base + level*PerLevel，分值 = level*PointsPerLevel
func NewBoss(em *ecs.EntityManager, cfg *config.GameConfig, rnd Random, level int) (ecs.EntityID, error) {
	entityID, err := NewEnemy(em, cfg, rnd, types.EnemyBoss)
	if err != nil {
		return 0, err
	}

	health := cfg.BossHealthForLevel(level)
	if hp, ok := ecs.GetComponent[*components.HealthComponent](em, entityID); ok {
		hp.MaxHealth = health
		hp.CurrentHealth = health
	}
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, entityID); ok {
		enemy.Points = cfg.BossPointsForLevel(level)
	}

	log.Printf("[EnemyFactory] 创建 Boss %d: level=%d health=%d", entityID, level, health)
	return entityID, nil
}
