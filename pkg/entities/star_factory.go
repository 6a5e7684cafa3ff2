package entities

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
)

// NewStar 创建背景星星，位置在整个区域内均匀分布
func NewStar(em *ecs.EntityManager, cfg *config.GameConfig, rnd Random) ecs.EntityID {
	s := cfg.Stars
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{
		X: rnd.Float64() * float64(cfg.Playfield.Width),
		Y: rnd.Float64() * float64(cfg.Playfield.Height),
	})
	ecs.AddComponent(em, entityID, &components.StarComponent{
		Size:  rnd.Float64() * s.MaxSize,
		Speed: between(rnd, s.MinSpeed, s.SpeedRange),
	})

	return entityID
}

// NewStarField 创建配置数量的星星
func NewStarField(em *ecs.EntityManager, cfg *config.GameConfig, rnd Random) []ecs.EntityID {
	ids := make([]ecs.EntityID, 0, cfg.Stars.Count)
	for i := 0; i < cfg.Stars.Count; i++ {
		ids = append(ids, NewStar(em, cfg, rnd))
	}
	return ids
}
