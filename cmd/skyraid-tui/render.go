package main

import (
	"fmt"
	"math"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/modules"
	"github.com/decker502/skyraid/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// 第 0 行是 HUD，其余行映射到游戏区域
const hudRows = 1

var (
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStar    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x44, 0x88, 0xff)).Bold(true)
	styleBullet  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleButton  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x44, 0x88, 0xff)).Foreground(tcell.ColorWhite).Bold(true)
	styleBanner  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleLevel   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x44, 0x88, 0xff)).Bold(true)
	styleCaption = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// enemyGlyph 敌机在终端中的字符和样式
func enemyGlyph(t types.EnemyType) (rune, tcell.Style) {
	switch t {
	case types.EnemyBoss:
		return 'M', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case types.EnemyMiddle:
		return 'W', tcell.StyleDefault.Foreground(tcell.ColorOrange)
	default:
		return 'v', tcell.StyleDefault.Foreground(tcell.ColorSilver)
	}
}

// project 把游戏区域坐标映射到终端单元格
//
// 参数:
//   - x, y: 游戏区域坐标
//   - fieldW, fieldH: 游戏区域尺寸
//   - cols, rows: 终端尺寸（含 HUD 行）
//
// 返回:
//   - cx, cy: 单元格坐标
//   - ok: 是否落在可见范围内
func project(x, y float64, fieldW, fieldH, cols, rows int) (cx, cy int, ok bool) {
	fieldRows := rows - hudRows
	if fieldW <= 0 || fieldH <= 0 || cols <= 0 || fieldRows <= 0 {
		return 0, 0, false
	}
	cx = int(math.Floor(x * float64(cols) / float64(fieldW)))
	cy = hudRows + int(math.Floor(y*float64(fieldRows)/float64(fieldH)))
	ok = cx >= 0 && cx < cols && cy >= hudRows && cy < rows
	return cx, cy, ok
}

// unproject 返回单元格中心对应的游戏区域坐标
func unproject(cx, cy, fieldW, fieldH, cols, rows int) (x, y float64) {
	fieldRows := rows - hudRows
	if cols <= 0 || fieldRows <= 0 {
		return 0, 0
	}
	x = (float64(cx) + 0.5) * float64(fieldW) / float64(cols)
	y = (float64(cy-hudRows) + 0.5) * float64(fieldH) / float64(fieldRows)
	return x, y
}

// boxCells 返回矩形覆盖的单元格范围（闭区间），至少一个单元格
func boxCells(b modules.Box, fieldW, fieldH, cols, rows int) (x0, y0, x1, y1 int) {
	fieldRows := rows - hudRows
	sx := float64(cols) / float64(fieldW)
	sy := float64(fieldRows) / float64(fieldH)

	x0 = int(math.Floor(b.X * sx))
	y0 = hudRows + int(math.Floor(b.Y*sy))
	x1 = int(math.Ceil((b.X+b.Width)*sx)) - 1
	y1 = hudRows + int(math.Ceil((b.Y+b.Height)*sy)) - 1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return x0, y0, x1, y1
}

func fillBox(screen tcell.Screen, snap modules.Snapshot, b modules.Box, r rune, style tcell.Style) {
	cols, rows := screen.Size()
	if cols <= 0 || rows <= hudRows || snap.Width <= 0 || snap.Height <= 0 {
		return
	}
	x0, y0, x1, y1 := boxCells(b, snap.Width, snap.Height, cols, rows)
	for y := max(y0, hudRows); y <= min(y1, rows-1); y++ {
		for x := max(x0, 0); x <= min(x1, cols-1); x++ {
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func drawCentered(screen tcell.Screen, y int, s string, style tcell.Style) {
	cols, _ := screen.Size()
	drawString(screen, (cols-len([]rune(s)))/2, y, s, style)
}

// hudText 顶部状态栏
func hudText(h modules.HUD) string {
	return fmt.Sprintf("Score: %d  Level: %d (%d/%d enemies)  Power: %d%%",
		h.Score, h.Level, h.EnemiesDefeated, h.EnemiesRequired, int(h.PowerRatio()*100))
}

// drawSnapshot 把快照绘制到终端
func drawSnapshot(screen tcell.Screen, snap modules.Snapshot) {
	cols, rows := screen.Size()

	for _, s := range snap.Stars {
		if cx, cy, ok := project(s.X, s.Y, snap.Width, snap.Height, cols, rows); ok {
			screen.SetContent(cx, cy, '.', nil, styleStar)
		}
	}

	for _, p := range snap.Particles {
		cx, cy, ok := project(p.X, p.Y, snap.Width, snap.Height, cols, rows)
		if !ok {
			continue
		}
		r := '*'
		if p.Life < 0.5 {
			r = '·'
		}
		c := tcell.NewRGBColor(int32(p.Color.R), int32(p.Color.G), int32(p.Color.B))
		screen.SetContent(cx, cy, r, nil, tcell.StyleDefault.Foreground(c))
	}

	for _, b := range snap.Bullets {
		fillBox(screen, snap, b, '|', styleBullet)
	}
	for _, e := range snap.Enemies {
		r, style := enemyGlyph(e.Type)
		fillBox(screen, snap, e.Box, r, style)
	}
	fillBox(screen, snap, snap.Player, '^', stylePlayer)

	drawString(screen, 0, 0, hudText(snap.HUD), styleHUD)

	mid := hudRows + (rows-hudRows)/2
	for _, ov := range snap.Overlays {
		switch ov.Kind {
		case components.OverlayBossWarning:
			drawCentered(screen, mid, "BOSS BATTLE!", styleBanner)
		case components.OverlayLevelStart:
			drawCentered(screen, mid, fmt.Sprintf("Level %d", ov.Level), styleLevel)
			drawCentered(screen, mid+2, fmt.Sprintf("Defeat %d enemies to reach the boss", ov.EnemiesRequired), styleCaption)
		}
	}

	if snap.GameOver {
		drawGameOver(screen, snap, mid)
	}
}

func drawGameOver(screen tcell.Screen, snap modules.Snapshot, mid int) {
	drawCentered(screen, mid-3, "Game Over!", styleBanner)
	drawCentered(screen, mid-1, fmt.Sprintf("Final Score: %d", snap.HUD.Score), styleCaption)
	drawCentered(screen, mid, fmt.Sprintf("Level Reached: %d", snap.HUD.Level), styleCaption)

	btn := snap.RestartButton
	fillBox(screen, snap, modules.Box{X: btn.X, Y: btn.Y, Width: btn.Width, Height: btn.Height}, ' ', styleButton)

	cols, rows := screen.Size()
	if _, cy, ok := project(btn.X+btn.Width/2, btn.Y+btn.Height/2, snap.Width, snap.Height, cols, rows); ok {
		drawCentered(screen, cy, "Restart Game", styleButton)
	}
	drawCentered(screen, rows-1, "press R / Enter to restart, Q to quit", styleCaption)
}
