package entities

import (
	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
)

// NewPlayer 创建玩家战机，放在出生点
func NewPlayer(em *ecs.EntityManager, cfg *config.GameConfig) ecs.EntityID {
	spawnX, spawnY := cfg.PlayerSpawn()
	entityID := em.CreateEntity()

	ecs.AddComponent(em, entityID, &components.PositionComponent{X: spawnX, Y: spawnY})
	ecs.AddComponent(em, entityID, &components.CollisionComponent{
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	})
	ecs.AddComponent(em, entityID, &components.PlayerComponent{
		Speed:  cfg.Player.Speed,
		SpawnX: spawnX,
		SpawnY: spawnY,
	})

	return entityID
}
