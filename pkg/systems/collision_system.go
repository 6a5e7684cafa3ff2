package systems

import (
	"log"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/game"
)

// CollisionSystem 处理碰撞与计分
//
// 子弹按创建顺序遍历，每颗子弹按创建顺序检查敌机：
//   - 子弹在第一次命中时被消耗，同一 tick 内不会再命中其他敌机
//   - 本 tick 已被击毁的敌机不再参与检测
//
// 子弹结算完成后，检查剩余敌机是否撞上玩家，撞上则游戏结束。
type CollisionSystem struct {
	em       *ecs.EntityManager
	cfg      *config.GameConfig
	state    *game.GameState
	rnd      entities.Random
	playerID ecs.EntityID
}

// NewCollisionSystem 创建碰撞系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（爆炸粒子参数）
//   - gs: 本局游戏状态（分数、击落计数、游戏结束标志）
//   - rnd: 随机数来源（爆炸粒子）
//   - playerID: 玩家实体
func NewCollisionSystem(em *ecs.EntityManager, cfg *config.GameConfig, gs *game.GameState, rnd entities.Random, playerID ecs.EntityID) *CollisionSystem {
	return &CollisionSystem{
		em:       em,
		cfg:      cfg,
		state:    gs,
		rnd:      rnd,
		playerID: playerID,
	}
}

// Update 执行一个 tick 的碰撞检测
func (s *CollisionSystem) Update() {
	enemies := ecs.GetEntitiesWith3[
		*components.EnemyComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)

	bullets := ecs.GetEntitiesWith3[
		*components.BulletComponent,
		*components.PositionComponent,
		*components.CollisionComponent,
	](s.em)

	for _, bulletID := range bullets {
		bulletPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bulletID)
		bulletCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, bulletID)

		for _, enemyID := range enemies {
			if !s.em.IsAlive(enemyID) {
				continue
			}
			enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, enemyID)
			enemyCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, enemyID)

			if !checkAABBCollision(bulletPos, bulletCol, enemyPos, enemyCol) {
				continue
			}

			s.em.DestroyEntity(bulletID)
			s.damageEnemy(enemyID, enemyPos, enemyCol)
			break
		}
	}

	s.checkPlayerCollision(enemies)
}

// damageEnemy 敌机扣一点血，血量归零时击毁并计分
func (s *CollisionSystem) damageEnemy(enemyID ecs.EntityID, pos *components.PositionComponent, col *components.CollisionComponent) {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.em, enemyID)
	if !ok {
		return
	}
	if health.CurrentHealth > 0 {
		health.CurrentHealth--
	}
	if health.CurrentHealth > 0 {
		return
	}

	enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.em, enemyID)
	s.em.DestroyEntity(enemyID)
	entities.NewExplosionBurst(s.em, s.cfg, s.rnd, pos, col)

	isBoss := enemy.Type.IsBoss()
	s.state.RecordKill(enemy.Points, isBoss)
	if isBoss {
		log.Printf("[CollisionSystem] 第 %d 关 Boss 被击毁，+%d 分", s.state.Level, enemy.Points)
	}
}

// checkPlayerCollision 任一存活敌机与玩家重叠即游戏结束
// 撞上的敌机不会被移除，也不会产生爆炸
func (s *CollisionSystem) checkPlayerCollision(enemies []ecs.EntityID) {
	playerPos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return
	}
	playerCol, ok := ecs.GetComponent[*components.CollisionComponent](s.em, s.playerID)
	if !ok {
		return
	}

	for _, enemyID := range enemies {
		if !s.em.IsAlive(enemyID) {
			continue
		}
		enemyPos, _ := ecs.GetComponent[*components.PositionComponent](s.em, enemyID)
		enemyCol, _ := ecs.GetComponent[*components.CollisionComponent](s.em, enemyID)

		if checkAABBCollision(playerPos, playerCol, enemyPos, enemyCol) {
			if !s.state.GameOver {
				log.Printf("[CollisionSystem] 玩家被撞毁: score=%d level=%d run=%s",
					s.state.Score, s.state.Level, s.state.RunID)
			}
			s.state.GameOver = true
			return
		}
	}
}
