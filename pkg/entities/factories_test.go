package entities

import (
	"image/color"
	"testing"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/types"
)

// TestNewBullet 测试子弹实体创建
func TestNewBullet(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()
	playerID := NewPlayer(em, cfg)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	pos.X, pos.Y = 100, 550

	bulletID, err := NewBullet(em, cfg, playerID)
	if err != nil {
		t.Fatalf("NewBullet failed: %v", err)
	}

	bpos, ok := ecs.GetComponent[*components.PositionComponent](em, bulletID)
	if !ok {
		t.Fatal("Bullet should have PositionComponent")
	}
	// 子弹左边缘对齐战机中点
	if bpos.X != 125 || bpos.Y != 550 {
		t.Errorf("bullet position = (%.1f, %.1f), want (125, 550)", bpos.X, bpos.Y)
	}

	col, _ := ecs.GetComponent[*components.CollisionComponent](em, bulletID)
	if col.Width != 4 || col.Height != 10 {
		t.Errorf("bullet size = %.0fx%.0f, want 4x10", col.Width, col.Height)
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, bulletID)
	if vel.VY != -7 || vel.VX != 0 {
		t.Errorf("bullet velocity = (%.1f, %.1f), want (0, -7)", vel.VX, vel.VY)
	}

	if !ecs.HasComponent[*components.BulletComponent](em, bulletID) {
		t.Error("Bullet should have BulletComponent")
	}
}

func TestNewBulletWithoutPlayer(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	if _, err := NewBullet(em, cfg, 42); err == nil {
		t.Error("Expected error when player entity does not exist")
	}
	if _, err := NewBullet(nil, cfg, 1); err == nil {
		t.Error("Expected error for nil entity manager")
	}
}

// TestNewEnemy 测试各类型敌机按模板创建
func TestNewEnemy(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name       string
		enemyType  types.EnemyType
		draw       float64
		wantX      float64
		wantY      float64
		wantW      float64
		wantSpeed  float64
		wantHealth int
		wantPoints int
	}{
		{"普通敌机", types.EnemyNormal, 0.5, 0.5 * (800 - 24), -40, 24, 2, 1, 10},
		{"中型敌机", types.EnemyMiddle, 0, 0, -60, 36, 1.5, 3, 25},
		{"Boss 模板", types.EnemyBoss, 0.25, 0.25 * (800 - 60), -100, 60, 1, 10, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id, err := NewEnemy(em, cfg, NewSequenceRandom(tt.draw), tt.enemyType)
			if err != nil {
				t.Fatalf("NewEnemy failed: %v", err)
			}

			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("position = (%.2f, %.2f), want (%.2f, %.2f)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}

			col, _ := ecs.GetComponent[*components.CollisionComponent](em, id)
			if col.Width != tt.wantW {
				t.Errorf("width = %.1f, want %.1f", col.Width, tt.wantW)
			}

			vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			if vel.VY != tt.wantSpeed {
				t.Errorf("speed = %.2f, want %.2f", vel.VY, tt.wantSpeed)
			}

			hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
			if hp.CurrentHealth != tt.wantHealth || hp.MaxHealth != tt.wantHealth {
				t.Errorf("health = %d/%d, want %d", hp.CurrentHealth, hp.MaxHealth, tt.wantHealth)
			}

			enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
			if enemy.Type != tt.enemyType || enemy.Points != tt.wantPoints {
				t.Errorf("enemy = %+v, want type %s points %d", enemy, tt.enemyType, tt.wantPoints)
			}
		})
	}

	em := ecs.NewEntityManager()
	if _, err := NewEnemy(em, cfg, NewSequenceRandom(), types.EnemyUnknown); err == nil {
		t.Error("Expected error for unknown enemy type")
	}
	if em.EntityCount() != 0 {
		t.Error("Failed creation should not leave an entity behind")
	}
}

// TestNewBoss 测试 Boss 血量和分值随关卡缩放
func TestNewBoss(t *testing.T) {
	cfg := config.DefaultGameConfig()

	for _, level := range []int{1, 2, 5} {
		em := ecs.NewEntityManager()
		id, err := NewBoss(em, cfg, NewSequenceRandom(0.5), level)
		if err != nil {
			t.Fatalf("NewBoss failed: %v", err)
		}

		hp, _ := ecs.GetComponent[*components.HealthComponent](em, id)
		wantHealth := 10 + level*5
		if hp.CurrentHealth != wantHealth || hp.MaxHealth != wantHealth {
			t.Errorf("level %d boss health = %d/%d, want %d", level, hp.CurrentHealth, hp.MaxHealth, wantHealth)
		}

		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if enemy.Points != 100*level {
			t.Errorf("level %d boss points = %d, want %d", level, enemy.Points, 100*level)
		}
		if !enemy.Type.IsBoss() {
			t.Error("boss should have boss type")
		}
	}
}

// TestNewParticle 测试粒子参数范围
func TestNewParticle(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	red := color.RGBA{R: 0xff, A: 0xff}

	tests := []struct {
		name  string
		draws []float64
		size  float64
		vx    float64
		vy    float64
	}{
		{"下界", []float64{0, 0, 0}, 2, -4, -4},
		{"中值", []float64{0.5, 0.5, 0.5}, 3.5, 0, 0},
		{"接近上界", []float64{0.999, 0.75, 0.25}, 2 + 0.999*3, 2, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := NewParticle(em, cfg, NewSequenceRandom(tt.draws...), 10, 20, red)

			p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
			if p.Life != 1 || p.Color != red {
				t.Errorf("particle = %+v", p)
			}
			if p.Size != tt.size {
				t.Errorf("size = %f, want %f", p.Size, tt.size)
			}
			v, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
			if v.VX != tt.vx || v.VY != tt.vy {
				t.Errorf("velocity = (%f, %f), want (%f, %f)", v.VX, v.VY, tt.vx, tt.vy)
			}
			pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
			if pos.X != 10 || pos.Y != 20 {
				t.Errorf("position = (%f, %f)", pos.X, pos.Y)
			}
		})
	}
}

// TestNewExplosionBurst 测试爆炸粒子数量、位置和颜色
func TestNewExplosionBurst(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	pos := &components.PositionComponent{X: 100, Y: 50}
	col := &components.CollisionComponent{Width: 24, Height: 40}

	ids := NewExplosionBurst(em, cfg, NewRandom(7), pos, col)
	if len(ids) != 20 {
		t.Fatalf("burst size = %d, want 20", len(ids))
	}

	allowed := map[color.RGBA]bool{}
	for _, c := range cfg.ExplosionPalette() {
		allowed[c] = true
	}

	for _, id := range ids {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		if !allowed[p.Color] {
			t.Errorf("unexpected particle color %v", p.Color)
		}
		ppos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if ppos.X != 112 || ppos.Y != 70 {
			t.Errorf("particle should start at enemy centre (112, 70), got (%f, %f)", ppos.X, ppos.Y)
		}
	}
}

// TestNewStar 测试星星参数范围
func TestNewStar(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()
	rnd := NewRandom(1)

	ids := NewStarField(em, cfg, rnd)
	if len(ids) != 100 {
		t.Fatalf("star count = %d, want 100", len(ids))
	}

	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		if pos.X < 0 || pos.X >= 800 || pos.Y < 0 || pos.Y >= 600 {
			t.Errorf("star outside playfield: (%f, %f)", pos.X, pos.Y)
		}
		s, _ := ecs.GetComponent[*components.StarComponent](em, id)
		if s.Size < 0 || s.Size >= 2 {
			t.Errorf("star size %f out of [0,2)", s.Size)
		}
		if s.Speed < 0.1 || s.Speed >= 0.6 {
			t.Errorf("star speed %f out of [0.1,0.6)", s.Speed)
		}
	}
}

func TestNewPlayerAndOverlays(t *testing.T) {
	cfg := config.DefaultGameConfig()
	em := ecs.NewEntityManager()

	playerID := NewPlayer(em, cfg)
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
	if pos.X != 400 || pos.Y != 550 {
		t.Errorf("player spawn = (%f, %f), want (400, 550)", pos.X, pos.Y)
	}
	pc, _ := ecs.GetComponent[*components.PlayerComponent](em, playerID)
	if pc.Speed != 5 || pc.SpawnX != 400 || pc.SpawnY != 550 {
		t.Errorf("player component = %+v", pc)
	}

	warnID := NewBossWarning(em, cfg, 3)
	ov, _ := ecs.GetComponent[*components.OverlayComponent](em, warnID)
	if ov.Kind != components.OverlayBossWarning || ov.Level != 3 {
		t.Errorf("boss warning = %+v", ov)
	}
	lt, _ := ecs.GetComponent[*components.LifetimeComponent](em, warnID)
	if lt.TotalTicks != cfg.Overlay.DurationTicks {
		t.Errorf("overlay lifetime = %d, want %d", lt.TotalTicks, cfg.Overlay.DurationTicks)
	}

	startID := NewLevelStart(em, cfg, 2, 14)
	ov, _ = ecs.GetComponent[*components.OverlayComponent](em, startID)
	if ov.Kind != components.OverlayLevelStart || ov.Level != 2 || ov.EnemiesRequired != 14 {
		t.Errorf("level start = %+v", ov)
	}
}

func TestNewRandomDeterministic(t *testing.T) {
	a, b := NewRandom(99), NewRandom(99)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("same seed should produce same sequence")
		}
	}
}
