package entities

import (
	"image/color"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
)

// NewParticle 在 (x, y) 创建一个爆炸粒子
// 半径 ∈ [MinSize, MinSize+SizeRange)，两个轴的速度各自 ∈ [-MaxSpeed, MaxSpeed)，生命值为 1
func NewParticle(em *ecs.EntityManager, cfg *config.GameConfig, rnd Random, x, y float64, c color.RGBA) ecs.EntityID {
	p := cfg.Particles
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, entityID, &components.ParticleComponent{
		Color: c,
		Size:  between(rnd, p.MinSize, p.SizeRange),
		Life:  1,
	})
	ecs.AddComponent(em, entityID, &components.VelocityComponent{
		VX: between(rnd, -p.MaxSpeed, 2*p.MaxSpeed),
		VY: between(rnd, -p.MaxSpeed, 2*p.MaxSpeed),
	})

	return entityID
}

// NewExplosionBurst 在矩形中心产生一组爆炸粒子，颜色从调色板中随机选取
//
// 参数:
//   - pos, col: 被击毁敌机的位置和尺寸
//
// 返回:
//   - []ecs.EntityID: 创建的粒子实体
func NewExplosionBurst(em *ecs.EntityManager, cfg *config.GameConfig, rnd Random,
	pos *components.PositionComponent, col *components.CollisionComponent) []ecs.EntityID {
	palette := cfg.ExplosionPalette()
	if len(palette) == 0 {
		return nil
	}

	cx := pos.X + col.Width/2
	cy := pos.Y + col.Height/2

	ids := make([]ecs.EntityID, 0, cfg.Particles.BurstCount)
	for i := 0; i < cfg.Particles.BurstCount; i++ {
		c := palette[int(rnd.Float64()*float64(len(palette)))%len(palette)]
		ids = append(ids, NewParticle(em, cfg, rnd, cx, cy, c))
	}
	return ids
}
