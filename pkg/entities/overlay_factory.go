package entities

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
)

// NewBossWarning 创建 "BOSS BATTLE!" 一次性提示
func NewBossWarning(em *ecs.EntityManager, cfg *config.GameConfig, level int) ecs.EntityID {
	return newOverlay(em, cfg, &components.OverlayComponent{
		Kind:  components.OverlayBossWarning,
		Level: level,
	})
}

// NewLevelStart 创建 "Level N" 一次性提示
func NewLevelStart(em *ecs.EntityManager, cfg *config.GameConfig, level, enemiesRequired int) ecs.EntityID {
	return newOverlay(em, cfg, &components.OverlayComponent{
		Kind:            components.OverlayLevelStart,
		Level:           level,
		EnemiesRequired: enemiesRequired,
	})
}

func newOverlay(em *ecs.EntityManager, cfg *config.GameConfig, overlay *components.OverlayComponent) ecs.EntityID {
	entityID := em.CreateEntity()
	ecs.AddComponent(em, entityID, overlay)
	ecs.AddComponent(em, entityID, &components.LifetimeComponent{
		TotalTicks: cfg.Overlay.DurationTicks,
	})
	return entityID
}
