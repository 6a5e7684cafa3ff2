package systems

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
)

func placeParticle(em *ecs.EntityManager, x, y, vx, vy, life float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		Color: color.RGBA{R: 0xff, A: 0xff},
		Size:  3,
		Life:  life,
	})
	return id
}

func TestParticleSystemUpdate(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	sys := NewParticleSystem(em, cfg)

	moving := placeParticle(em, 100, 100, 2, -3, 1)
	fading := placeParticle(em, 0, 0, 0, 0, 0.02)

	sys.Update()

	pos := positionOf(t, em, moving)
	if pos.X != 102 || pos.Y != 97 {
		t.Errorf("particle at (%.1f, %.1f), want (102, 97)", pos.X, pos.Y)
	}
	p, _ := ecs.GetComponent[*components.ParticleComponent](em, moving)
	if math.Abs(p.Life-0.98) > 1e-9 {
		t.Errorf("life = %f, want 0.98", p.Life)
	}
	if em.IsAlive(fading) {
		t.Error("particle reaching life 0 should be removed")
	}
}

// TestParticleLifetime 新粒子大约 50 tick 后消失
func TestParticleLifetime(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	sys := NewParticleSystem(em, cfg)
	id := placeParticle(em, 0, 0, 1, 1, 1)

	ticks := 0
	for em.IsAlive(id) {
		sys.Update()
		ticks++
		if ticks > 100 {
			t.Fatal("particle never expired")
		}
	}

	if ticks < 49 || ticks > 51 {
		t.Errorf("particle lived %d ticks, want about 50", ticks)
	}
}
