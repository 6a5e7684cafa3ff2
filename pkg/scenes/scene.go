package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the battle screen).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// Draw must not mutate simulation state.
	Draw(screen *ebiten.Image)
}
