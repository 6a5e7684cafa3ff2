package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/decker502/skyraid/pkg/embedded"
	"github.com/decker502/skyraid/pkg/types"
)

func TestDefaultGameConfig(t *testing.T) {
	cfg := DefaultGameConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	tests := []struct {
		enemyType types.EnemyType
		want      EnemyTemplate
	}{
		{types.EnemyNormal, EnemyTemplate{Width: 24, Height: 40, Speed: 2, Health: 1, Points: 10}},
		{types.EnemyMiddle, EnemyTemplate{Width: 36, Height: 60, Speed: 1.5, Health: 3, Points: 25}},
		{types.EnemyBoss, EnemyTemplate{Width: 60, Height: 100, Speed: 1, Health: 10, Points: 100}},
	}
	for _, tt := range tests {
		got, ok := cfg.Enemies.Get(tt.enemyType)
		if !ok {
			t.Fatalf("template for %s not found", tt.enemyType)
		}
		if got != tt.want {
			t.Errorf("template %s = %+v, want %+v", tt.enemyType, got, tt.want)
		}
	}

	if _, ok := cfg.Enemies.Get(types.EnemyUnknown); ok {
		t.Error("unknown enemy type should have no template")
	}

	palette := cfg.ExplosionPalette()
	want := []color.RGBA{{0xff, 0, 0, 0xff}, {0xff, 0x88, 0, 0xff}, {0xff, 0xff, 0, 0xff}}
	if len(palette) != len(want) {
		t.Fatalf("palette size = %d, want %d", len(palette), len(want))
	}
	for i := range want {
		if palette[i] != want[i] {
			t.Errorf("palette[%d] = %v, want %v", i, palette[i], want[i])
		}
	}
}

// TestDefaultPaletteWithoutValidate 默认配置不经过校验即可取得调色板
func TestDefaultPaletteWithoutValidate(t *testing.T) {
	cfg := DefaultGameConfig()
	if got := len(cfg.ExplosionPalette()); got != len(DefaultExplosionColors) {
		t.Fatalf("palette size = %d, want %d", got, len(DefaultExplosionColors))
	}

	// 校验失败时保留原有调色板
	cfg.Particles.Colors = []string{"#ffffff", "not-a-color"}
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "particles") {
		t.Fatalf("Validate error = %v, want particles error", err)
	}
	if got := len(cfg.ExplosionPalette()); got != len(DefaultExplosionColors) {
		t.Errorf("palette changed after failed Validate: size %d", got)
	}
}

func TestResolvePalette(t *testing.T) {
	tests := []struct {
		name    string
		colors  []string
		want    []color.RGBA
		wantErr bool
	}{
		{"单色", []string{"#00ff00"}, []color.RGBA{{0, 0xff, 0, 0xff}}, false},
		{"保持顺序", []string{"#0000ff", "#ff0000"}, []color.RGBA{{0, 0, 0xff, 0xff}, {0xff, 0, 0, 0xff}}, false},
		{"任一非法即失败", []string{"#0000ff", "blue"}, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolvePalette(tt.colors)
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolvePalette error = %v, wantErr %v", err, tt.wantErr)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLevelFormulas(t *testing.T) {
	cfg := DefaultGameConfig()

	tests := []struct {
		level        int
		wantRequired int
		wantHealth   int
		wantPoints   int
	}{
		{level: 1, wantRequired: 10, wantHealth: 15, wantPoints: 100},
		{level: 2, wantRequired: 14, wantHealth: 20, wantPoints: 200},
		{level: 3, wantRequired: 16, wantHealth: 25, wantPoints: 300},
		{level: 10, wantRequired: 30, wantHealth: 60, wantPoints: 1000},
	}

	for _, tt := range tests {
		if got := cfg.EnemiesRequiredForLevel(tt.level); got != tt.wantRequired {
			t.Errorf("EnemiesRequiredForLevel(%d) = %d, want %d", tt.level, got, tt.wantRequired)
		}
		if got := cfg.BossHealthForLevel(tt.level); got != tt.wantHealth {
			t.Errorf("BossHealthForLevel(%d) = %d, want %d", tt.level, got, tt.wantHealth)
		}
		if got := cfg.BossPointsForLevel(tt.level); got != tt.wantPoints {
			t.Errorf("BossPointsForLevel(%d) = %d, want %d", tt.level, got, tt.wantPoints)
		}
	}

	if got := cfg.BossCeilingY(); got != 200 {
		t.Errorf("BossCeilingY() = %.1f, want 200", got)
	}
	if x, y := cfg.PlayerSpawn(); x != 400 || y != 550 {
		t.Errorf("PlayerSpawn() = (%.1f, %.1f), want (400, 550)", x, y)
	}
}

func TestParseGameConfigYAML(t *testing.T) {
	t.Run("部分覆盖保留默认值", func(t *testing.T) {
		data := []byte(`
playfield:
  width: 640
spawn:
  chance: 0.05
enemies:
  boss:
    speed: 2
`)
		cfg, err := ParseGameConfig(data, FormatYAML)
		if err != nil {
			t.Fatalf("ParseGameConfig failed: %v", err)
		}
		if cfg.Playfield.Width != 640 || cfg.Playfield.Height != 600 {
			t.Errorf("playfield = %+v, want 640x600", cfg.Playfield)
		}
		if cfg.Spawn.Chance != 0.05 || cfg.Spawn.NormalRatio != 0.7 {
			t.Errorf("spawn = %+v", cfg.Spawn)
		}
		if cfg.Enemies.Boss.Speed != 2 || cfg.Enemies.Boss.Health != 10 {
			t.Errorf("boss template = %+v", cfg.Enemies.Boss)
		}
	})

	t.Run("空文档使用默认值", func(t *testing.T) {
		cfg, err := ParseGameConfig(nil, FormatYAML)
		if err != nil {
			t.Fatalf("ParseGameConfig failed: %v", err)
		}
		if cfg.Stars.Count != StarCount {
			t.Errorf("stars.count = %d, want %d", cfg.Stars.Count, StarCount)
		}
	})

	t.Run("未知字段报错", func(t *testing.T) {
		_, err := ParseGameConfig([]byte("powerups:\n  enabled: true\n"), FormatYAML)
		if err == nil {
			t.Fatal("expected error for unknown field")
		}
	})
}

func TestParseGameConfigTOML(t *testing.T) {
	data := []byte(`
[playfield]
width = 480
height = 640

[level]
requiredPerLevel = 3

[particles]
colors = ["#00ff00"]
`)
	cfg, err := ParseGameConfig(data, FormatTOML)
	if err != nil {
		t.Fatalf("ParseGameConfig failed: %v", err)
	}
	if cfg.Playfield.Width != 480 || cfg.Playfield.Height != 640 {
		t.Errorf("playfield = %+v", cfg.Playfield)
	}
	if got := cfg.EnemiesRequiredForLevel(2); got != 16 {
		t.Errorf("EnemiesRequiredForLevel(2) = %d, want 16", got)
	}
	if p := cfg.ExplosionPalette(); len(p) != 1 || p[0] != (color.RGBA{0, 0xff, 0, 0xff}) {
		t.Errorf("palette = %v", p)
	}

	if _, err := ParseGameConfig([]byte("[bogus]\nx = 1\n"), FormatTOML); err == nil {
		t.Error("expected error for unknown TOML keys")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GameConfig)
		wantErr string
	}{
		{"区域宽度为零", func(c *GameConfig) { c.Playfield.Width = 0 }, "playfield"},
		{"区域高度为负", func(c *GameConfig) { c.Playfield.Height = -1 }, "playfield"},
		{"子弹上限为零", func(c *GameConfig) { c.Bullet.MaxLive = 0 }, "bullet"},
		{"敌机血量为零", func(c *GameConfig) { c.Enemies.Middle.Health = 0 }, "enemy middle"},
		{"敌机比区域宽", func(c *GameConfig) { c.Enemies.Boss.Width = 2000 }, "enemy boss"},
		{"生成概率越界", func(c *GameConfig) { c.Spawn.Chance = 1.5 }, "spawn"},
		{"普通比例越界", func(c *GameConfig) { c.Spawn.NormalRatio = -0.1 }, "spawn"},
		{"摆动周期为零", func(c *GameConfig) { c.Level.BossSwayPeriod = 0 }, "level"},
		{"衰减率为零", func(c *GameConfig) { c.Particles.FadeRate = 0 }, "particles"},
		{"调色板为空", func(c *GameConfig) { c.Particles.Colors = nil }, "particles"},
		{"颜色非法", func(c *GameConfig) { c.Particles.Colors = []string{"#zzzzzz"} }, "particles"},
		{"提示时长为零", func(c *GameConfig) { c.Overlay.DurationTicks = 0 }, "overlay"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGameConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadGameConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	yamlPath := filepath.Join(tempDir, "custom.yaml")
	if err := os.WriteFile(yamlPath, []byte("stars:\n  count: 5\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	cfg, err := LoadGameConfigFile(yamlPath)
	if err != nil {
		t.Fatalf("LoadGameConfigFile failed: %v", err)
	}
	if cfg.Stars.Count != 5 {
		t.Errorf("stars.count = %d, want 5", cfg.Stars.Count)
	}

	tomlPath := filepath.Join(tempDir, "custom.toml")
	if err := os.WriteFile(tomlPath, []byte("[stars]\ncount = 7\n"), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	cfg, err = LoadGameConfigFile(tomlPath)
	if err != nil {
		t.Fatalf("LoadGameConfigFile failed: %v", err)
	}
	if cfg.Stars.Count != 7 {
		t.Errorf("stars.count = %d, want 7", cfg.Stars.Count)
	}

	if _, err := LoadGameConfigFile(filepath.Join(tempDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadGameConfigEmbedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/game.yaml": {Data: []byte("bullet:\n  maxLive: 3\n")},
	})
	t.Cleanup(func() { embedded.Init(nil) })

	cfg, err := LoadGameConfig("data/game.yaml")
	if err != nil {
		t.Fatalf("LoadGameConfig failed: %v", err)
	}
	if cfg.Bullet.MaxLive != 3 {
		t.Errorf("bullet.maxLive = %d, want 3", cfg.Bullet.MaxLive)
	}

	if _, err := LoadGameConfig("data/missing.yaml"); err == nil {
		t.Error("expected error for missing embedded file")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#ff8800", want: color.RGBA{0xff, 0x88, 0x00, 0xff}},
		{in: "4488ff", want: color.RGBA{0x44, 0x88, 0xff, 0xff}},
		{in: "#fff", want: color.RGBA{0xff, 0xff, 0xff, 0xff}},
		{in: "#12345", wantErr: true},
		{in: "#gg0000", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseHexColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
