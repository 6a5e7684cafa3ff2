package config

import "testing"

// TestUnitConstantsFitPlayfield 默认单位尺寸必须能放进默认游戏区域
func TestUnitConstantsFitPlayfield(t *testing.T) {
	tests := []struct {
		name  string
		width float64
	}{
		{"玩家", PlayerWidth},
		{"子弹", BulletWidth},
		{"按钮", RestartButtonWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.width <= 0 || tt.width > GameWindowWidth {
				t.Errorf("width %.1f does not fit playfield width %d", tt.width, GameWindowWidth)
			}
		})
	}

	if spawnY := GameWindowHeight - PlayerSpawnOffsetY; spawnY+PlayerHeight > GameWindowHeight {
		t.Errorf("player spawn y %.1f leaves the ship outside the playfield", spawnY)
	}
	if top := GameWindowHeight/2 + RestartButtonOffsetY; top+RestartButtonHeight > GameWindowHeight {
		t.Errorf("restart button bottom %.1f outside playfield", top+RestartButtonHeight)
	}
}

func TestSpawnProbabilities(t *testing.T) {
	for name, p := range map[string]float64{
		"EnemySpawnChance": EnemySpawnChance,
		"EnemyNormalRatio": EnemyNormalRatio,
	} {
		if p < 0 || p > 1 {
			t.Errorf("%s = %v, want within [0,1]", name, p)
		}
	}
	if InitialEnemiesRequired <= 0 || MaxLiveBullets <= 0 || OverlayDurationTicks <= 0 {
		t.Error("counts must be positive")
	}
	if len(DefaultExplosionColors) == 0 {
		t.Error("explosion palette must not be empty")
	}
}
