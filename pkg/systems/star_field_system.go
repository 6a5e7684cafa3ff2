package systems

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/entities"
)

// StarFieldSystem 滚动背景星空
// 星星从底部移出后回到顶部，X 重新随机
type StarFieldSystem struct {
	em  *ecs.EntityManager
	cfg *config.GameConfig
	rnd entities.Random
}

// NewStarFieldSystem 创建星空系统
func NewStarFieldSystem(em *ecs.EntityManager, cfg *config.GameConfig, rnd entities.Random) *StarFieldSystem {
	return &StarFieldSystem{em: em, cfg: cfg, rnd: rnd}
}

// Update 推进所有星星一个 tick
func (s *StarFieldSystem) Update() {
	height := float64(s.cfg.Playfield.Height)
	width := float64(s.cfg.Playfield.Width)

	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](s.em) {
		star, _ := ecs.GetComponent[*components.StarComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		pos.Y += star.Speed
		if pos.Y > height {
			pos.Y = 0
			pos.X = s.rnd.Float64() * width
		}
	}
}
