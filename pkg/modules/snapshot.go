package modules

import (
	"image/color"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/game"
	"github.com/decker502/skyraid/pkg/types"
	"github.com/google/uuid"
)

// Box 实体的轴对齐矩形（左上角 + 尺寸）
type Box struct {
	X, Y          float64
	Width, Height float64
}

// EnemyView 敌机的只读视图
type EnemyView struct {
	Box
	Type          types.EnemyType
	CurrentHealth int
	MaxHealth     int
	Points        int
}

// HealthRatio 返回血条比例 [0,1]
func (e EnemyView) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.CurrentHealth) / float64(e.MaxHealth)
}

// ParticleView 粒子的只读视图，Life 同时作为透明度
type ParticleView struct {
	X, Y  float64
	Size  float64
	Life  float64
	Color color.RGBA
}

// StarView 星星的只读视图
type StarView struct {
	X, Y float64
	Size float64
}

// OverlayView 一次性提示的只读视图
type OverlayView struct {
	Kind            components.OverlayKind
	Level           int
	EnemiesRequired int
	Remaining       float64 // 剩余显示时间比例 [0,1]
}

// HUD 抬头显示数据
type HUD struct {
	Score           int
	Level           int
	EnemiesDefeated int
	EnemiesRequired int
	PowerMeter      int
	MaxPower        int
}

// PowerRatio 返回能量条比例 [0,1]
func (h HUD) PowerRatio() float64 {
	if h.MaxPower <= 0 {
		return 0
	}
	return float64(h.PowerMeter) / float64(h.MaxPower)
}

// Snapshot 某个 tick 结束时的模拟状态
// 所有字段都是值拷贝，渲染层可以随意持有，修改它不会影响模拟
type Snapshot struct {
	Width, Height int
	Tick          uint64
	RunID         uuid.UUID
	Phase         game.Phase

	Player    Box
	Bullets   []Box
	Enemies   []EnemyView
	Particles []ParticleView
	Stars     []StarView
	Overlays  []OverlayView

	HUD           HUD
	GameOver      bool
	RestartButton game.Rect // 仅在 GameOver 时有意义
}
