package systems

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
)

// ParticleSystem 更新爆炸粒子
// 粒子按速度移动，生命值每 tick 衰减固定值，归零后删除
type ParticleSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameConfig
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager, cfg *config.GameConfig) *ParticleSystem {
	return &ParticleSystem{em: em, cfg: cfg}
}

// Update 推进所有粒子一个 tick
func (s *ParticleSystem) Update() {
	particles := ecs.GetEntitiesWith3[
		*components.ParticleComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.em)

	for _, id := range particles {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		p.Life -= s.cfg.Particles.FadeRate

		if p.Life <= 0 {
			s.em.DestroyEntity(id)
		}
	}
}
