package systems

import (
	"log"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/ecs"
)

// OverlayFadeSystem 推进 Boss 警告和关卡提示的计时，显示满时长后移除
type OverlayFadeSystem struct {
	em *ecs.EntityManager
}

// NewOverlayFadeSystem 创建提示计时系统
func NewOverlayFadeSystem(em *ecs.EntityManager) *OverlayFadeSystem {
	return &OverlayFadeSystem{em: em}
}

// Update 每个 tick 调用一次
// 提示在第 TotalTicks 个 tick 结束时标记删除，之前的快照里 Remaining 从 1 递减
func (s *OverlayFadeSystem) Update() {
	for _, id := range ecs.GetEntitiesWith2[*components.OverlayComponent, *components.LifetimeComponent](s.em) {
		timer, _ := ecs.GetComponent[*components.LifetimeComponent](s.em, id)
		timer.Elapsed++
		if !timer.Expired() {
			continue
		}
		if ov, ok := ecs.GetComponent[*components.OverlayComponent](s.em, id); ok {
			log.Printf("[Overlay] %s faded after %d ticks", ov.Kind, timer.Elapsed)
		}
		s.em.DestroyEntity(id)
	}
}
