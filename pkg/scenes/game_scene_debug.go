package scenes

import (
	"fmt"

	"github.com/decker502/skyraid/pkg/modules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// debugLines 调试面板内容（F3 切换）
func debugLines(snap modules.Snapshot, tps, fps float64) []string {
	return []string{
		fmt.Sprintf("TPS: %.1f  FPS: %.1f", tps, fps),
		fmt.Sprintf("Run: %s", snap.RunID.String()[:8]),
		fmt.Sprintf("Tick: %d  Phase: %s", snap.Tick, snap.Phase),
		fmt.Sprintf("Bullets: %d  Enemies: %d", len(snap.Bullets), len(snap.Enemies)),
		fmt.Sprintf("Particles: %d  Overlays: %d", len(snap.Particles), len(snap.Overlays)),
	}
}

func drawDebugInfo(screen *ebiten.Image, snap modules.Snapshot) {
	x := snap.Width - 220
	for i, line := range debugLines(snap, ebiten.ActualTPS(), ebiten.ActualFPS()) {
		ebitenutil.DebugPrintAt(screen, line, x, 10+i*16)
	}
}
