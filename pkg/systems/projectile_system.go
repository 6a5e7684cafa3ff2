package systems

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/ecs"
)

// ProjectileSystem 推进子弹并清理飞出顶部的子弹
type ProjectileSystem struct {
	em *ecs.EntityManager
}

// NewProjectileSystem 创建子弹系统
func NewProjectileSystem(em *ecs.EntityManager) *ProjectileSystem {
	return &ProjectileSystem{em: em}
}

// Update 子弹按速度移动，y ≤ 0 的子弹被标记删除（不计分）
func (s *ProjectileSystem) Update() {
	bullets := ecs.GetEntitiesWith3[
		*components.BulletComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.em)

	for _, id := range bullets {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY

		if pos.Y <= 0 {
			s.em.DestroyEntity(id)
		}
	}
}
