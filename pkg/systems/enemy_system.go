package systems

import (
	"log"
	"math"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/game"
	"github.com/decker502/skyraid/pkg/types"
)

// EnemySystem 敌机与关卡导演系统
//
// 职责：
//   - 推进关卡阶段：正常刷怪 → 等待 Boss → Boss 战 → 关卡收尾 → 下一关
//   - 按概率生成普通/中型敌机，条件满足时生成 Boss
//   - 移动敌机（Boss 额外左右摆动并被限制在上方区域）
//   - 清理飞出底部的普通/中型敌机（不计分）
//
// 单个 tick 内的执行顺序：
//  1. 关卡完成且场上无敌机：进入下一关，本 tick 结束
//  2. 击落数达标：标记本关敌机已清
//  3. 已清、未出 Boss、场上无敌机：生成 Boss，本 tick 结束
//  4. 未清且场上无 Boss：按概率生成敌机
//  5. 移动并清理敌机
type EnemySystem struct {
	em    *ecs.EntityManager
	cfg   *config.GameConfig
	state *game.GameState
	rnd   entities.Random
}

// NewEnemySystem 创建敌机系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置
//   - gs: 本局游戏状态（关卡标志和击落计数）
//   - rnd: 随机数来源（生成概率、类型、出生 X）
func NewEnemySystem(em *ecs.EntityManager, cfg *config.GameConfig, gs *game.GameState, rnd entities.Random) *EnemySystem {
	return &EnemySystem{
		em:    em,
		cfg:   cfg,
		state: gs,
		rnd:   rnd,
	}
}

// Update 执行一个 tick 的敌机逻辑
func (s *EnemySystem) Update() {
	enemyCount := ecs.CountWith1[*components.EnemyComponent](s.em)

	if s.state.LevelComplete && enemyCount == 0 {
		s.startNextLevel()
		return
	}

	if !s.state.LevelEnemiesCleared && s.state.QuotaReached() {
		s.state.LevelEnemiesCleared = true
		log.Printf("[EnemySystem] 第 %d 关击落 %d/%d，等待场上敌机清空",
			s.state.Level, s.state.EnemiesDefeatedInLevel, s.state.EnemiesRequiredForLevel)
	}

	if s.state.LevelEnemiesCleared && !s.state.BossSpawned && enemyCount == 0 {
		s.spawnBoss()
		return
	}

	if !s.state.LevelEnemiesCleared && !s.bossPresent() && s.rnd.Float64() < s.cfg.Spawn.Chance {
		enemyType := types.EnemyMiddle
		if s.rnd.Float64() < s.cfg.Spawn.NormalRatio {
			enemyType = types.EnemyNormal
		}
		if _, err := entities.NewEnemy(s.em, s.cfg, s.rnd, enemyType); err != nil {
			log.Printf("[EnemySystem] 生成敌机失败: %v", err)
		}
	}

	s.moveEnemies()
}

// moveEnemies 移动所有敌机
// Boss 按 sin(y/周期)*幅度 水平摆动，X 限制在区域内，Y 不超过上方区域
func (s *EnemySystem) moveEnemies() {
	width := float64(s.cfg.Playfield.Width)
	height := float64(s.cfg.Playfield.Height)
	ceiling := s.cfg.BossCeilingY()

	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.VelocityComponent,
	](s.em)

	for _, id := range enemies {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		pos.Y += vel.VY

		if enemy.Type.IsBoss() {
			pos.X += math.Sin(pos.Y/s.cfg.Level.BossSwayPeriod) * s.cfg.Level.BossSwayAmplitude

			maxX := width
			if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, id); ok {
				maxX -= col.Width
			}
			pos.X = math.Max(0, math.Min(maxX, pos.X))
			pos.Y = math.Min(pos.Y, ceiling)
			continue
		}

		if pos.Y >= height {
			s.em.DestroyEntity(id)
		}
	}
}

// bossPresent 场上是否存在 Boss
func (s *EnemySystem) bossPresent() bool {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		if enemy.Type.IsBoss() {
			return true
		}
	}
	return false
}

func (s *EnemySystem) spawnBoss() {
	if _, err := entities.NewBoss(s.em, s.cfg, s.rnd, s.state.Level); err != nil {
		log.Printf("[EnemySystem] 生成 Boss 失败: %v", err)
		return
	}
	s.state.BossSpawned = true
	entities.NewBossWarning(s.em, s.cfg, s.state.Level)
	log.Printf("[EnemySystem] 第 %d 关 Boss 出现 (run=%s)", s.state.Level, s.state.RunID)
}

func (s *EnemySystem) startNextLevel() {
	next := s.state.Level + 1
	s.state.AdvanceLevel(s.cfg.EnemiesRequiredForLevel(next))
	entities.NewLevelStart(s.em, s.cfg, s.state.Level, s.state.EnemiesRequiredForLevel)
	log.Printf("[EnemySystem] 进入第 %d 关，需要击落 %d 架 (score=%d)",
		s.state.Level, s.state.EnemiesRequiredForLevel, s.state.Score)
}
