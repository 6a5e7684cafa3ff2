package game

import (
	"github.com/google/uuid"
)

// Phase 关卡导演所处的阶段
// 阶段不单独存储，而是由 GameState 中的标志位推导
type Phase int

const (
	// PhaseRegularSpawning 正常刷新普通/中型敌机
	PhaseRegularSpawning Phase = iota
	// PhaseEnemiesClearedWaitingBoss 击落数已达标，等待场上敌机清空后出 Boss
	PhaseEnemiesClearedWaitingBoss
	// PhaseBossActive Boss 战进行中
	PhaseBossActive
	// PhaseLevelCompleteDraining Boss 已被击毁，等待场上敌机清空后进入下一关
	PhaseLevelCompleteDraining
)

// String 返回阶段名，用于日志
func (p Phase) String() string {
	switch p {
	case PhaseRegularSpawning:
		return "REGULAR_SPAWNING"
	case PhaseEnemiesClearedWaitingBoss:
		return "ENEMIES_CLEARED_WAITING_BOSS"
	case PhaseBossActive:
		return "BOSS_ACTIVE"
	case PhaseLevelCompleteDraining:
		return "LEVEL_COMPLETE_DRAINING"
	}
	return "UNKNOWN"
}

// DefaultMaxPower 能量条上限
const DefaultMaxPower = 100

// GameState 存储一局游戏的全部标量状态
// 每个 BattleModule 拥有自己的实例，不使用全局单例
type GameState struct {
	Score    int  // 当前分数，只增不减
	Level    int  // 当前关卡，从 1 开始
	GameOver bool // 玩家被撞毁，模拟冻结直到重新开始

	// 能量条：HUD 会显示，但没有任何规则会修改它
	PowerMeter int
	MaxPower   int

	BossSpawned             bool // 本关 Boss 已出现
	LevelComplete           bool // 本关 Boss 已被击毁
	LevelEnemiesCleared     bool // 本关击落数已达标
	EnemiesDefeatedInLevel  int  // 本关已击落的普通/中型敌机
	EnemiesRequiredForLevel int  // 本关需要击落的数量

	Tick  uint64    // 本局已推进的 tick 数
	RunID uuid.UUID // 每局唯一标识，重新开始时更换
}

// NewGameState 创建第一关的初始状态
func NewGameState(initialRequired int) *GameState {
	gs := &GameState{}
	gs.Reset(initialRequired)
	return gs
}

// Reset 回到第一关的初始状态
func (gs *GameState) Reset(initialRequired int) {
	*gs = GameState{
		Level:                   1,
		MaxPower:                DefaultMaxPower,
		EnemiesRequiredForLevel: initialRequired,
		RunID:                   uuid.New(),
	}
}

// Phase 根据标志位推导当前阶段
func (gs *GameState) Phase() Phase {
	switch {
	case gs.LevelComplete:
		return PhaseLevelCompleteDraining
	case gs.BossSpawned:
		return PhaseBossActive
	case gs.LevelEnemiesCleared:
		return PhaseEnemiesClearedWaitingBoss
	default:
		return PhaseRegularSpawning
	}
}

// AddScore 增加分数，负数被忽略
func (gs *GameState) AddScore(points int) {
	if points > 0 {
		gs.Score += points
	}
}

// RecordKill 记录一次击毁
// Boss 被击毁时标记关卡完成，其余敌机计入本关击落数
func (gs *GameState) RecordKill(points int, isBoss bool) {
	gs.AddScore(points)
	if isBoss {
		gs.LevelComplete = true
		return
	}
	gs.EnemiesDefeatedInLevel++
}

// QuotaReached 判断本关击落数是否达标
func (gs *GameState) QuotaReached() bool {
	return gs.EnemiesDefeatedInLevel >= gs.EnemiesRequiredForLevel
}

// AdvanceLevel 进入下一关并重置关卡标志
// nextRequired 为新关卡需要击落的数量
func (gs *GameState) AdvanceLevel(nextRequired int) {
	gs.Level++
	gs.LevelComplete = false
	gs.LevelEnemiesCleared = false
	gs.BossSpawned = false
	gs.EnemiesDefeatedInLevel = 0
	gs.EnemiesRequiredForLevel = nextRequired
}
