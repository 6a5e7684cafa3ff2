package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/skyraid/pkg/components"
	"github.com/decker502/skyraid/pkg/modules"
	"github.com/decker502/skyraid/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// UI Layout Constants
const (
	HUDMarginX      = 10.0
	HUDScoreY       = 10.0
	HUDLevelY       = 36.0
	PowerBarY       = 64.0
	PowerBarWidth   = 150.0
	PowerBarHeight  = 10.0
	OverlaySubtitle = 50.0 // 副标题相对标题中心的下移距离

	GameOverTitleOffsetY = -40.0
	GameOverLevelOffsetY = 30.0
)

var (
	hudTextColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	powerBackColor    = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	powerFillColor    = color.NRGBA{R: 0x44, G: 0x88, B: 0xff, A: 0xff}
	bossWarningTint   = color.NRGBA{R: 255, G: 0, B: 0, A: 77} // rgba(255,0,0,0.3)
	bossWarningText   = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	levelStartTint    = color.NRGBA{R: 0, G: 0, B: 255, A: 77} // rgba(0,0,255,0.3)
	levelStartText    = color.NRGBA{R: 0x44, G: 0x88, B: 0xff, A: 0xff}
	gameOverShade     = color.NRGBA{R: 0, G: 0, B: 0, A: 178} // rgba(0,0,0,0.7)
	restartButtonFill = color.NRGBA{R: 0x44, G: 0x88, B: 0xff, A: 0xff}
)

// scoreLine HUD 分数行
func scoreLine(h modules.HUD) string {
	return fmt.Sprintf("Score: %d", h.Score)
}

// levelLine HUD 关卡行，包含本关击落进度
func levelLine(h modules.HUD) string {
	return fmt.Sprintf("Level: %d (%d/%d enemies)", h.Level, h.EnemiesDefeated, h.EnemiesRequired)
}

// overlayLines 一次性提示的标题和副标题（副标题可以为空）
func overlayLines(ov modules.OverlayView) (title, subtitle string) {
	switch ov.Kind {
	case components.OverlayBossWarning:
		return "BOSS BATTLE!", ""
	case components.OverlayLevelStart:
		return fmt.Sprintf("Level %d", ov.Level), fmt.Sprintf("Defeat %d enemies to reach the boss", ov.EnemiesRequired)
	default:
		return "", ""
	}
}

// subtitleLines 把副标题折行到游戏区域宽度内（两侧各留 HUDMarginX）
// 窄的游戏区域下 24pt 的副标题会折成多行
func subtitleLines(subtitle string, face text.Face, fieldWidth float64) []string {
	if subtitle == "" {
		return nil
	}
	return utils.WrapText(subtitle, face, fieldWidth-2*HUDMarginX)
}

// gameOverLines 结束画面的三行文字
func gameOverLines(h modules.HUD) [3]string {
	return [3]string{
		"Game Over!",
		fmt.Sprintf("Final Score: %d", h.Score),
		fmt.Sprintf("Level Reached: %d", h.Level),
	}
}

func (s *GameScene) drawHUD(screen *ebiten.Image, h modules.HUD) {
	drawTextAt(screen, scoreLine(h), s.faces.HUD, HUDMarginX, HUDScoreY, hudTextColor)
	drawTextAt(screen, levelLine(h), s.faces.HUD, HUDMarginX, HUDLevelY, hudTextColor)

	vector.DrawFilledRect(screen, HUDMarginX, PowerBarY, PowerBarWidth, PowerBarHeight, powerBackColor, false)
	vector.DrawFilledRect(screen, HUDMarginX, PowerBarY, float32(PowerBarWidth*h.PowerRatio()), PowerBarHeight, powerFillColor, false)
	vector.StrokeRect(screen, HUDMarginX, PowerBarY, PowerBarWidth, PowerBarHeight, 1, hudTextColor, false)
}

// drawOverlays 绘制 Boss 警告和关卡提示，随剩余时间淡出
func (s *GameScene) drawOverlays(screen *ebiten.Image, snap modules.Snapshot) {
	w, h := float64(snap.Width), float64(snap.Height)
	for _, ov := range snap.Overlays {
		tint, textColor := bossWarningTint, bossWarningText
		if ov.Kind == components.OverlayLevelStart {
			tint, textColor = levelStartTint, levelStartText
		}

		vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), withAlpha(tint, ov.Remaining), false)

		title, subtitle := overlayLines(ov)
		drawCenteredText(screen, title, s.faces.Banner, w/2, h/2, withAlpha(textColor, ov.Remaining))
		lineHeight := utils.LineHeight(s.faces.Caption)
		for i, line := range subtitleLines(subtitle, s.faces.Caption, w) {
			y := h/2 + OverlaySubtitle + float64(i)*lineHeight
			drawCenteredText(screen, line, s.faces.Caption, w/2, y, withAlpha(hudTextColor, ov.Remaining))
		}
	}
}

func (s *GameScene) drawGameOver(screen *ebiten.Image, snap modules.Snapshot) {
	w, h := float64(snap.Width), float64(snap.Height)
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), gameOverShade, false)

	lines := gameOverLines(snap.HUD)
	drawCenteredText(screen, lines[0], s.faces.Title, w/2, h/2+GameOverTitleOffsetY, hudTextColor)
	drawCenteredText(screen, lines[1], s.faces.Caption, w/2, h/2, hudTextColor)
	drawCenteredText(screen, lines[2], s.faces.Caption, w/2, h/2+GameOverLevelOffsetY, hudTextColor)

	btn := snap.RestartButton
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.Width), float32(btn.Height), restartButtonFill, false)
	drawCenteredText(screen, "Restart Game", s.faces.Caption, btn.X+btn.Width/2, btn.Y+btn.Height/2, hudTextColor)
}

// drawTextAt 以左上角为锚点绘制文字
func drawTextAt(screen *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawCenteredText 以 (cx, cy) 为中心绘制文字
func drawCenteredText(screen *ebiten.Image, str string, face text.Face, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, str, face, op)
}
