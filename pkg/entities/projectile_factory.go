package entities

import (
	"fmt"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
)

// NewBullet 创建玩家子弹实体
// 子弹出现在战机水平中点（子弹左边缘对齐中点）、战机顶部，以恒定速度向上移动
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（子弹尺寸和速度）
//   - playerID: 玩家战机实体
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 玩家实体缺少位置或碰撞组件时返回错误
func NewBullet(em *ecs.EntityManager, cfg *config.GameConfig, playerID ecs.EntityID) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, playerID)
	if !ok {
		return 0, fmt.Errorf("player %d has no PositionComponent", playerID)
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](em, playerID)
	if !ok {
		return 0, fmt.Errorf("player %d has no CollisionComponent", playerID)
	}

	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: pos.X + col.Width/2,
		Y: pos.Y,
	})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Bullet.Width,
		Height: cfg.Bullet.Height,
	})
	// 向上移动，VY 为负
	ecs.AddComponent(em, entityID, &components.VelocityComponent{
		VY: -cfg.Bullet.Speed,
	})
	ecs.AddComponent(em, entityID, &components.BulletComponent{})

	return entityID, nil
}
