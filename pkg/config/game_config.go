package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/decker502/skyraid/pkg/embedded"
	"github.com/decker502/skyraid/pkg/types"
	"gopkg.in/yaml.v3"
)

// Format 配置文件格式
type Format int

const (
	// FormatYAML YAML 格式（默认，随程序嵌入的 data/game.yaml）
	FormatYAML Format = iota
	// FormatTOML TOML 格式（外部覆盖文件）
	FormatTOML
)

// FormatFromPath 根据扩展名推断配置格式，未知扩展名按 YAML 处理
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// PlayfieldConfig 游戏区域尺寸
type PlayfieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// PlayerConfig 玩家战机参数
type PlayerConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	Height       float64 `yaml:"height" toml:"height"`
	Speed        float64 `yaml:"speed" toml:"speed"`
	SpawnOffsetY float64 `yaml:"spawnOffsetY" toml:"spawnOffsetY"`
}

// BulletConfig 子弹参数
type BulletConfig struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	Speed   float64 `yaml:"speed" toml:"speed"`
	MaxLive int     `yaml:"maxLive" toml:"maxLive"`
}

// EnemyTemplate 单个敌机类型的固定模板
type EnemyTemplate struct {
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
	Speed  float64 `yaml:"speed" toml:"speed"`
	Health int     `yaml:"health" toml:"health"`
	Points int     `yaml:"points" toml:"points"`
}

// EnemyTemplates 敌机模板表，按类型查找
type EnemyTemplates struct {
	Normal EnemyTemplate `yaml:"normal" toml:"normal"`
	Middle EnemyTemplate `yaml:"middle" toml:"middle"`
	Boss   EnemyTemplate `yaml:"boss" toml:"boss"`
}

// Get 返回指定类型的模板
func (t *EnemyTemplates) Get(enemyType types.EnemyType) (EnemyTemplate, bool) {
	switch enemyType {
	case types.EnemyNormal:
		return t.Normal, true
	case types.EnemyMiddle:
		return t.Middle, true
	case types.EnemyBoss:
		return t.Boss, true
	}
	return EnemyTemplate{}, false
}

// SpawnConfig 普通敌机生成参数
type SpawnConfig struct {
	Chance      float64 `yaml:"chance" toml:"chance"`
	NormalRatio float64 `yaml:"normalRatio" toml:"normalRatio"`
}

// LevelConfig 关卡与 Boss 的线性成长参数
type LevelConfig struct {
	InitialRequired    int     `yaml:"initialRequired" toml:"initialRequired"`
	RequiredBase       int     `yaml:"requiredBase" toml:"requiredBase"`
	RequiredPerLevel   int     `yaml:"requiredPerLevel" toml:"requiredPerLevel"`
	BossBaseHealth     int     `yaml:"bossBaseHealth" toml:"bossBaseHealth"`
	BossHealthPerLevel int     `yaml:"bossHealthPerLevel" toml:"bossHealthPerLevel"`
	BossPointsPerLevel int     `yaml:"bossPointsPerLevel" toml:"bossPointsPerLevel"`
	BossSwayAmplitude  float64 `yaml:"bossSwayAmplitude" toml:"bossSwayAmplitude"`
	BossSwayPeriod     float64 `yaml:"bossSwayPeriod" toml:"bossSwayPeriod"`
	BossCeilingDivisor float64 `yaml:"bossCeilingDivisor" toml:"bossCeilingDivisor"`
}

// ParticleConfig 爆炸粒子参数
type ParticleConfig struct {
	BurstCount int      `yaml:"burstCount" toml:"burstCount"`
	FadeRate   float64  `yaml:"fadeRate" toml:"fadeRate"`
	MinSize    float64  `yaml:"minSize" toml:"minSize"`
	SizeRange  float64  `yaml:"sizeRange" toml:"sizeRange"`
	MaxSpeed   float64  `yaml:"maxSpeed" toml:"maxSpeed"`
	Colors     []string `yaml:"colors" toml:"colors"`
}

// StarConfig 背景星空参数
type StarConfig struct {
	Count      int     `yaml:"count" toml:"count"`
	MaxSize    float64 `yaml:"maxSize" toml:"maxSize"`
	MinSpeed   float64 `yaml:"minSpeed" toml:"minSpeed"`
	SpeedRange float64 `yaml:"speedRange" toml:"speedRange"`
}

// OverlayConfig 一次性提示参数
type OverlayConfig struct {
	DurationTicks int `yaml:"durationTicks" toml:"durationTicks"`
}

// GameConfig 游戏调参文档
// 未在文件中出现的字段保留 DefaultGameConfig 中的默认值
type GameConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield" toml:"playfield"`
	Player    PlayerConfig    `yaml:"player" toml:"player"`
	Bullet    BulletConfig    `yaml:"bullet" toml:"bullet"`
	Enemies   EnemyTemplates  `yaml:"enemies" toml:"enemies"`
	Spawn     SpawnConfig     `yaml:"spawn" toml:"spawn"`
	Level     LevelConfig     `yaml:"level" toml:"level"`
	Particles ParticleConfig  `yaml:"particles" toml:"particles"`
	Stars     StarConfig      `yaml:"stars" toml:"stars"`
	Overlay   OverlayConfig   `yaml:"overlay" toml:"overlay"`

	// 校验时解析出的调色板
	palette []color.RGBA
}

// DefaultGameConfig 返回默认调参配置
func DefaultGameConfig() *GameConfig {
	cfg := &GameConfig{
		Playfield: PlayfieldConfig{Width: GameWindowWidth, Height: GameWindowHeight},
		Player: PlayerConfig{
			Width:        PlayerWidth,
			Height:       PlayerHeight,
			Speed:        PlayerSpeed,
			SpawnOffsetY: PlayerSpawnOffsetY,
		},
		Bullet: BulletConfig{
			Width:   BulletWidth,
			Height:  BulletHeight,
			Speed:   BulletSpeed,
			MaxLive: MaxLiveBullets,
		},
		Enemies: EnemyTemplates{
			Normal: EnemyTemplate{Width: 24, Height: 40, Speed: 2, Health: 1, Points: 10},
			Middle: EnemyTemplate{Width: 36, Height: 60, Speed: 1.5, Health: 3, Points: 25},
			Boss:   EnemyTemplate{Width: 60, Height: 100, Speed: 1, Health: 10, Points: 100},
		},
		Spawn: SpawnConfig{Chance: EnemySpawnChance, NormalRatio: EnemyNormalRatio},
		Level: LevelConfig{
			InitialRequired:    InitialEnemiesRequired,
			RequiredBase:       EnemiesRequiredBase,
			RequiredPerLevel:   EnemiesRequiredPerLevel,
			BossBaseHealth:     BossBaseHealth,
			BossHealthPerLevel: BossHealthPerLevel,
			BossPointsPerLevel: BossPointsPerLevel,
			BossSwayAmplitude:  BossSwayAmplitude,
			BossSwayPeriod:     BossSwayPeriod,
			BossCeilingDivisor: BossCeilingDivisor,
		},
		Particles: ParticleConfig{
			BurstCount: ExplosionParticleCount,
			FadeRate:   ParticleFadeRate,
			MinSize:    ParticleMinSize,
			SizeRange:  ParticleSizeRange,
			MaxSpeed:   ParticleMaxSpeed,
			Colors:     append([]string(nil), DefaultExplosionColors...),
		},
		Stars: StarConfig{
			Count:      StarCount,
			MaxSize:    StarMaxSize,
			MinSpeed:   StarMinSpeed,
			SpeedRange: StarSpeedRange,
		},
		Overlay: OverlayConfig{DurationTicks: OverlayDurationTicks},
	}
	cfg.palette = mustPalette(cfg.Particles.Colors)
	return cfg
}

// LoadGameConfig 从嵌入的 data/ 目录加载配置
// 参数：
//
//	path - 嵌入路径（如 "data/game.yaml"）
//
// 返回：
//
//	*GameConfig - 合并默认值并通过校验的配置
//	error - 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadGameConfigFile 从磁盘加载外部配置文件（.yaml/.yml/.toml）
func LoadGameConfigFile(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config file %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("invalid game config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig 在默认配置之上解析配置内容并校验
func ParseGameConfig(data []byte, format Format) (*GameConfig, error) {
	cfg := DefaultGameConfig()

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown TOML keys: %v", undecoded)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// 空文档表示全部使用默认值
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("[Config] playfield %dx%d, %d stars, spawn chance %.3f",
		cfg.Playfield.Width, cfg.Playfield.Height, cfg.Stars.Count, cfg.Spawn.Chance)
	return cfg, nil
}

// Validate 验证配置的完整性和合法性，并解析调色板
func (c *GameConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("playfield: size must be positive, got %dx%d", c.Playfield.Width, c.Playfield.Height)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("player: size must be positive, got %.1fx%.1f", c.Player.Width, c.Player.Height)
	}
	if c.Player.Width > float64(c.Playfield.Width) {
		return fmt.Errorf("player: width %.1f exceeds playfield width %d", c.Player.Width, c.Playfield.Width)
	}
	if c.Player.Speed < 0 {
		return fmt.Errorf("player: speed cannot be negative, got %.2f", c.Player.Speed)
	}

	if c.Bullet.Width <= 0 || c.Bullet.Height <= 0 {
		return fmt.Errorf("bullet: size must be positive, got %.1fx%.1f", c.Bullet.Width, c.Bullet.Height)
	}
	if c.Bullet.Speed <= 0 {
		return fmt.Errorf("bullet: speed must be positive, got %.2f", c.Bullet.Speed)
	}
	if c.Bullet.MaxLive < 1 {
		return fmt.Errorf("bullet: maxLive must be at least 1, got %d", c.Bullet.MaxLive)
	}

	for _, et := range types.AllEnemyTypes() {
		tpl, _ := c.Enemies.Get(et)
		if tpl.Width <= 0 || tpl.Height <= 0 {
			return fmt.Errorf("enemy %s: size must be positive, got %.1fx%.1f", et, tpl.Width, tpl.Height)
		}
		if tpl.Width > float64(c.Playfield.Width) {
			return fmt.Errorf("enemy %s: width %.1f exceeds playfield width %d", et, tpl.Width, c.Playfield.Width)
		}
		if tpl.Speed < 0 {
			return fmt.Errorf("enemy %s: speed cannot be negative, got %.2f", et, tpl.Speed)
		}
		if tpl.Health < 1 {
			return fmt.Errorf("enemy %s: health must be at least 1, got %d", et, tpl.Health)
		}
		if tpl.Points < 0 {
			return fmt.Errorf("enemy %s: points cannot be negative, got %d", et, tpl.Points)
		}
	}

	if c.Spawn.Chance < 0 || c.Spawn.Chance > 1 {
		return fmt.Errorf("spawn: chance must be in [0,1], got %.3f", c.Spawn.Chance)
	}
	if c.Spawn.NormalRatio < 0 || c.Spawn.NormalRatio > 1 {
		return fmt.Errorf("spawn: normalRatio must be in [0,1], got %.3f", c.Spawn.NormalRatio)
	}

	if c.Level.InitialRequired < 0 || c.Level.RequiredBase < 0 || c.Level.RequiredPerLevel < 0 {
		return fmt.Errorf("level: enemy quotas cannot be negative")
	}
	if c.Level.BossBaseHealth+c.Level.BossHealthPerLevel < 1 {
		return fmt.Errorf("level: boss health at level 1 must be at least 1")
	}
	if c.Level.BossPointsPerLevel < 0 {
		return fmt.Errorf("level: bossPointsPerLevel cannot be negative, got %d", c.Level.BossPointsPerLevel)
	}
	if c.Level.BossSwayPeriod <= 0 {
		return fmt.Errorf("level: bossSwayPeriod must be positive, got %.2f", c.Level.BossSwayPeriod)
	}
	if c.Level.BossCeilingDivisor < 1 {
		return fmt.Errorf("level: bossCeilingDivisor must be at least 1, got %.2f", c.Level.BossCeilingDivisor)
	}

	if c.Particles.BurstCount < 0 {
		return fmt.Errorf("particles: burstCount cannot be negative, got %d", c.Particles.BurstCount)
	}
	if c.Particles.FadeRate <= 0 {
		return fmt.Errorf("particles: fadeRate must be positive, got %.3f", c.Particles.FadeRate)
	}
	if len(c.Particles.Colors) == 0 {
		return fmt.Errorf("particles: at least one color is required")
	}
	palette, err := resolvePalette(c.Particles.Colors)
	if err != nil {
		return fmt.Errorf("particles: %w", err)
	}

	if c.Stars.Count < 0 {
		return fmt.Errorf("stars: count cannot be negative, got %d", c.Stars.Count)
	}
	if c.Stars.MinSpeed < 0 || c.Stars.SpeedRange < 0 || c.Stars.MaxSize < 0 {
		return fmt.Errorf("stars: size and speed cannot be negative")
	}

	if c.Overlay.DurationTicks < 1 {
		return fmt.Errorf("overlay: durationTicks must be at least 1, got %d", c.Overlay.DurationTicks)
	}

	c.palette = palette
	return nil
}

// resolvePalette 把 "#rrggbb" 列表解析为颜色
func resolvePalette(colors []string) ([]color.RGBA, error) {
	palette := make([]color.RGBA, 0, len(colors))
	for _, s := range colors {
		rgba, err := ParseHexColor(s)
		if err != nil {
			return nil, err
		}
		palette = append(palette, rgba)
	}
	return palette, nil
}

// mustPalette 只用于内置默认颜色，解析失败属于编码错误
func mustPalette(colors []string) []color.RGBA {
	palette, err := resolvePalette(colors)
	if err != nil {
		panic(fmt.Sprintf("config: invalid built-in color: %v", err))
	}
	return palette
}

// ExplosionPalette 返回解析后的爆炸调色板
func (c *GameConfig) ExplosionPalette() []color.RGBA {
	return c.palette
}

// EnemiesRequiredForLevel 返回第 level 关需要击落的普通/中型敌机数
// 第 1 关使用初始值，之后按 Base + level*PerLevel 线性增长
func (c *GameConfig) EnemiesRequiredForLevel(level int) int {
	if level <= 1 {
		return c.Level.InitialRequired
	}
	return c.Level.RequiredBase + level*c.Level.RequiredPerLevel
}

// BossHealthForLevel 返回第 level 关 Boss 的血量
func (c *GameConfig) BossHealthForLevel(level int) int {
	return c.Level.BossBaseHealth + level*c.Level.BossHealthPerLevel
}

// BossPointsForLevel 返回第 level 关 Boss 的分值
func (c *GameConfig) BossPointsForLevel(level int) int {
	return level * c.Level.BossPointsPerLevel
}

// BossCeilingY 返回 Boss 允许到达的最大 Y
func (c *GameConfig) BossCeilingY() float64 {
	return float64(c.Playfield.Height) / c.Level.BossCeilingDivisor
}

// PlayerSpawn 返回玩家出生点
func (c *GameConfig) PlayerSpawn() (float64, float64) {
	return float64(c.Playfield.Width) / 2, float64(c.Playfield.Height) - c.Player.SpawnOffsetY
}
