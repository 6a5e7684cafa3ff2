package systems

import (
	"log"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/ecs"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/game"
)

// PlayerControlSystem 根据输入移动玩家战机并发射子弹
//
// 每个 tick 从 Controls 取一次输入：
//   - 左/右键按住时水平移动，不越过区域边界
//   - 开火请求在读取时即被清除，按住开火键只会产生一发子弹
//   - 场上子弹达到上限时，开火请求被丢弃
type PlayerControlSystem struct {
	em       *ecs.EntityManager
	cfg      *config.GameConfig
	controls *game.Controls
	playerID ecs.EntityID
}

// NewPlayerControlSystem 创建玩家控制系统
//
// 参数:
//   - em: 实体管理器
//   - cfg: 游戏配置（区域宽度和子弹上限）
//   - controls: 输入信号，本系统是唯一的消费者
//   - playerID: 玩家实体
func NewPlayerControlSystem(em *ecs.EntityManager, cfg *config.GameConfig, controls *game.Controls, playerID ecs.EntityID) *PlayerControlSystem {
	return &PlayerControlSystem{
		em:       em,
		cfg:      cfg,
		controls: controls,
		playerID: playerID,
	}
}

// Update 执行一个 tick 的玩家控制
func (s *PlayerControlSystem) Update() {
	frame := s.controls.Take()

	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return
	}
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, s.playerID)
	if !ok {
		return
	}
	player, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok {
		return
	}

	// 边界只在移动前检查，最后一步可能越界不超过一个步长
	if frame.Left && pos.X > 0 {
		pos.X -= player.Speed
	}
	if frame.Right && pos.X < float64(s.cfg.Playfield.Width)-col.Width {
		pos.X += player.Speed
	}

	if !frame.Fire {
		return
	}
	if ecs.CountWith1[*components.BulletComponent](s.em) >= s.cfg.Bullet.MaxLive {
		return
	}
	if _, err := entities.NewBullet(s.em, s.cfg, s.playerID); err != nil {
		log.Printf("[PlayerControlSystem] 创建子弹失败: %v", err)
	}
}
