package modules

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/game"
	"github.com/decker502/skyraid/pkg/systems"
)

// BattleModule 战斗模拟模块
// 持有一局游戏的全部状态：实体管理器、游戏状态、输入信号和各个系统。
//
// 每个 tick 的执行顺序：
//  1. 玩家控制（移动、开火）
//  2. 子弹移动与清理
//  3. 敌机与关卡导演（可能进入下一关或生成 Boss）
//  4. 粒子
//  5. 碰撞与计分（可能游戏结束）
//  6. 星空
//  7. 一次性提示的生命周期
//
// 游戏结束后 Tick 不再推进任何实体，只处理重新开始请求。
//
// 注意：
//   - 模块不是并发安全的，宿主必须串行调用 Tick、Restart、HandleClick、Snapshot
//   - 只有 Controls 可以在其他 goroutine 中写入
type BattleModule struct {
	entityManager *ecs.EntityManager
	cfg           *config.GameConfig
	gameState     *game.GameState
	controls      *game.Controls
	rnd           entities.Random

	playerID      ecs.EntityID
	restartButton game.Rect

	playerControlSystem *systems.PlayerControlSystem
	projectileSystem    *systems.ProjectileSystem
	enemySystem         *systems.EnemySystem
	particleSystem      *systems.ParticleSystem
	collisionSystem     *systems.CollisionSystem
	starFieldSystem     *systems.StarFieldSystem
	overlayFadeSystem   *systems.OverlayFadeSystem
}

// NewBattleModule 创建一局新游戏
//
// 参数:
//   - cfg: 游戏配置，必须能通过 Validate
//   - rnd: 随机数来源；为 nil 时使用以当前时间为种子的 PCG
//
// 返回:
//   - *BattleModule: 处于第 1 关、运行中的模块
//   - error: 配置无效时返回错误
func NewBattleModule(cfg *config.GameConfig, rnd entities.Random) (*BattleModule, error) {
	if cfg == nil {
		return nil, errors.New("game config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	if rnd == nil {
		rnd = entities.NewRandom(uint64(time.Now().UnixNano()))
	}

	em := ecs.NewEntityManager()
	gs := game.NewGameState(cfg.EnemiesRequiredForLevel(1))
	controls := game.NewControls()

	m := &BattleModule{
		entityManager: em,
		cfg:           cfg,
		gameState:     gs,
		controls:      controls,
		rnd:           rnd,
		restartButton: game.RestartButtonRect(
			cfg.Playfield.Width, cfg.Playfield.Height,
			config.RestartButtonWidth, config.RestartButtonHeight, config.RestartButtonOffsetY,
		),
	}

	// 星星只创建一次，重新开始不影响星空
	entities.NewStarField(em, cfg, rnd)
	m.playerID = entities.NewPlayer(em, cfg)

	m.playerControlSystem = systems.NewPlayerControlSystem(em, cfg, controls, m.playerID)
	m.projectileSystem = systems.NewProjectileSystem(em)
	m.enemySystem = systems.NewEnemySystem(em, cfg, gs, rnd)
	m.particleSystem = systems.NewParticleSystem(em, cfg)
	m.collisionSystem = systems.NewCollisionSystem(em, cfg, gs, rnd, m.playerID)
	m.starFieldSystem = systems.NewStarFieldSystem(em, cfg, rnd)
	m.overlayFadeSystem = systems.NewOverlayFadeSystem(em)

	log.Printf("[BattleModule] Initialized: %dx%d, run=%s", cfg.Playfield.Width, cfg.Playfield.Height, gs.RunID)
	return m, nil
}

// Controls 返回输入信号，供宿主写入按键状态
func (m *BattleModule) Controls() *game.Controls {
	return m.controls
}

// Config 返回模块使用的配置
func (m *BattleModule) Config() *config.GameConfig {
	return m.cfg
}

// State 返回游戏状态的拷贝
func (m *BattleModule) State() game.GameState {
	return *m.gameState
}

// IsGameOver 是否处于游戏结束状态
func (m *BattleModule) IsGameOver() bool {
	return m.gameState.GameOver
}

// Tick 推进一个 tick
// 运行中：执行完整的系统流水线；运行中收到的重新开始请求被丢弃
// 游戏结束：不推进任何实体，只处理待决的重新开始请求
func (m *BattleModule) Tick() {
	restartRequested := m.controls.TakeRestart()

	if m.gameState.GameOver {
		if restartRequested {
			m.Restart()
		}
		return
	}

	steps := []func(){
		m.playerControlSystem.Update,
		m.projectileSystem.Update,
		m.enemySystem.Update,
		m.particleSystem.Update,
		m.collisionSystem.Update,
		m.starFieldSystem.Update,
		m.overlayFadeSystem.Update,
	}
	for _, step := range steps {
		step()
		m.entityManager.RemoveMarkedEntities()
	}

	m.gameState.Tick++
}

// Restart 清空战场并回到第 1 关
// 子弹、敌机、粒子和提示被移除；星星保留；玩家回到出生点
func (m *BattleModule) Restart() {
	prevRun := m.gameState.RunID
	prevScore := m.gameState.Score

	m.destroyAll(ecs.GetEntitiesWith1[*components.BulletComponent](m.entityManager))
	m.destroyAll(ecs.GetEntitiesWith1[*components.EnemyComponent](m.entityManager))
	m.destroyAll(ecs.GetEntitiesWith1[*components.ParticleComponent](m.entityManager))
	m.destroyAll(ecs.GetEntitiesWith1[*components.OverlayComponent](m.entityManager))
	m.entityManager.RemoveMarkedEntities()

	m.gameState.Reset(m.cfg.EnemiesRequiredForLevel(1))

	if pos, ok := ecs.GetComponent[*components.PositionComponent](m.entityManager, m.playerID); ok {
		if player, ok := ecs.GetComponent[*components.PlayerComponent](m.entityManager, m.playerID); ok {
			pos.X, pos.Y = player.SpawnX, player.SpawnY
		}
	}

	m.controls.ClearPending()

	log.Printf("[BattleModule] Restart: run %s (score %d) -> run %s", prevRun, prevScore, m.gameState.RunID)
}

// HandleClick 处理指针点击
// 只有游戏结束时点中"重新开始"按钮才会生效
//
// 返回:
//   - bool: 是否触发了重新开始
func (m *BattleModule) HandleClick(x, y float64) bool {
	if !m.gameState.GameOver {
		return false
	}
	if !m.restartButton.Contains(x, y) {
		return false
	}
	m.Restart()
	return true
}

// RestartButton 返回"重新开始"按钮区域
func (m *BattleModule) RestartButton() game.Rect {
	return m.restartButton
}

func (m *BattleModule) destroyAll(ids []ecs.EntityID) {
	for _, id := range ids {
		m.entityManager.DestroyEntity(id)
	}
}

// Snapshot 导出当前状态的只读拷贝
func (m *BattleModule) Snapshot() Snapshot {
	em := m.entityManager
	gs := m.gameState

	snap := Snapshot{
		Width:    m.cfg.Playfield.Width,
		Height:   m.cfg.Playfield.Height,
		Tick:     gs.Tick,
		RunID:    gs.RunID,
		Phase:    gs.Phase(),
		GameOver: gs.GameOver,
		HUD: HUD{
			Score:           gs.Score,
			Level:           gs.Level,
			EnemiesDefeated: gs.EnemiesDefeatedInLevel,
			EnemiesRequired: gs.EnemiesRequiredForLevel,
			PowerMeter:      gs.PowerMeter,
			MaxPower:        gs.MaxPower,
		},
		RestartButton: m.restartButton,
	}

	snap.Player = boxOf(em, m.playerID)

	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
		snap.Bullets = append(snap.Bullets, boxOf(em, id))
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		view := EnemyView{Box: boxOf(em, id), Type: enemy.Type, Points: enemy.Points}
		if hp, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
			view.CurrentHealth = hp.CurrentHealth
			view.MaxHealth = hp.MaxHealth
		}
		snap.Enemies = append(snap.Enemies, view)
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Particles = append(snap.Particles, ParticleView{
			X: pos.X, Y: pos.Y, Size: p.Size, Life: p.Life, Color: p.Color,
		})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](em) {
		s, _ := ecs.GetComponent[*components.StarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Stars = append(snap.Stars, StarView{X: pos.X, Y: pos.Y, Size: s.Size})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.OverlayComponent, *components.LifetimeComponent](em) {
		ov, _ := ecs.GetComponent[*components.OverlayComponent](em, id)
		lt, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		snap.Overlays = append(snap.Overlays, OverlayView{
			Kind:            ov.Kind,
			Level:           ov.Level,
			EnemiesRequired: ov.EnemiesRequired,
			Remaining:       lt.Remaining(),
		})
	}

	return snap
}

func boxOf(em *ecs.EntityManager, id ecs.EntityID) Box {
	var b Box
	if pos, ok := ecs.GetComponent[*components.PositionComponent](em, id); ok {
		b.X, b.Y = pos.X, pos.Y
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
		b.Width, b.Height = col.Width, col.Height
	}
	return b
}
