package scenes

import (
	"image"
	"image/color"
	"sync"

	"github.com/decker502/skyraid/pkg/modules"
	"github.com/decker502/skyraid/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 世界绘制颜色
var (
	backgroundColor  = color.NRGBA{R: 0x05, G: 0x05, B: 0x18, A: 0xff}
	starColor        = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	playerColor      = color.NRGBA{R: 0x44, G: 0x88, B: 0xff, A: 0xff}
	engineGlowColor  = color.NRGBA{R: 255, G: 100, B: 0, A: 0xff}
	bulletColor      = color.NRGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	healthBackColor  = color.NRGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	healthFrontColor = color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
)

const (
	engineGlowRadius = 30.0
	bulletGlowRadius = 10.0
	glowLayers       = 6
	healthBarHeight  = 5.0
	healthBarOffsetY = 10.0
)

var (
	whitePixelOnce sync.Once
	whitePixel     *ebiten.Image
)

// whiteSubImage 返回 1x1 白色纹理，用于 DrawTriangles 填充纯色多边形
func whiteSubImage() *ebiten.Image {
	whitePixelOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whitePixel
}

// enemyColor 敌机按类型着色：Boss 红色，中型橙色，普通灰紫色
func enemyColor(t types.EnemyType) color.NRGBA {
	switch t {
	case types.EnemyBoss:
		return color.NRGBA{R: 0xff, G: 0x33, B: 0x44, A: 0xff}
	case types.EnemyMiddle:
		return color.NRGBA{R: 0xff, G: 0x99, B: 0x22, A: 0xff}
	default:
		return color.NRGBA{R: 0xaa, G: 0xaa, B: 0xcc, A: 0xff}
	}
}

// hasHealthBar 普通敌机一击即毁，不显示血条
func hasHealthBar(e modules.EnemyView) bool {
	return e.Type != types.EnemyNormal
}

// withAlpha 按比例缩放颜色透明度，alpha 会被限制在 [0,1]
func withAlpha(c color.NRGBA, alpha float64) color.NRGBA {
	alpha = clamp01(alpha)
	c.A = uint8(float64(c.A) * alpha)
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func drawBackground(screen *ebiten.Image, snap modules.Snapshot) {
	screen.Fill(backgroundColor)
	for _, star := range snap.Stars {
		if star.Size <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(star.X), float32(star.Y), float32(star.Size), starColor, true)
	}
}

// drawWorld 绘制战机、子弹、敌机和粒子
func drawWorld(screen *ebiten.Image, snap modules.Snapshot) {
	drawPlayer(screen, snap.Player)

	for _, b := range snap.Bullets {
		drawGlow(screen, b.X+b.Width/2, b.Y+b.Height/2, bulletGlowRadius, bulletColor, 0.4)
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), bulletColor, false)
	}

	for _, e := range snap.Enemies {
		drawEnemy(screen, e)
	}

	for _, p := range snap.Particles {
		c := color.NRGBA{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 0xff}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), withAlpha(c, p.Life), true)
	}
}

func drawPlayer(screen *ebiten.Image, b modules.Box) {
	// 引擎尾焰在机身下方中点
	drawGlow(screen, b.X+b.Width/2, b.Y+b.Height, engineGlowRadius, engineGlowColor, 0.5)
	fillPolygon(screen, playerHull(b), playerColor)
}

func drawEnemy(screen *ebiten.Image, e modules.EnemyView) {
	fillPolygon(screen, enemyHull(e.Box), enemyColor(e.Type))

	if !hasHealthBar(e) {
		return
	}
	x, y, w := float32(e.X), float32(e.Y-healthBarOffsetY), float32(e.Width)
	vector.DrawFilledRect(screen, x, y, w, healthBarHeight, healthBackColor, false)
	vector.DrawFilledRect(screen, x, y, w*float32(e.HealthRatio()), healthBarHeight, healthFrontColor, false)
}

// playerHull 机头朝上的战机轮廓
func playerHull(b modules.Box) [][2]float32 {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	return [][2]float32{
		{x + w/2, y},
		{x + w, y + h*0.8},
		{x + w*0.65, y + h},
		{x + w*0.35, y + h},
		{x, y + h*0.8},
	}
}

// enemyHull 机头朝下的敌机轮廓
func enemyHull(b modules.Box) [][2]float32 {
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height)
	return [][2]float32{
		{x + w/2, y + h},
		{x + w, y + h*0.2},
		{x + w*0.65, y},
		{x + w*0.35, y},
		{x, y + h*0.2},
	}
}

// fillPolygon 用 vector.Path 三角化后填充凸多边形
func fillPolygon(screen *ebiten.Image, points [][2]float32, clr color.Color) {
	if len(points) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(points[0][0], points[0][1])
	for _, p := range points[1:] {
		path.LineTo(p[0], p[1])
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vs, is, whiteSubImage(), op)
}

// drawGlow 用同心半透明圆模拟径向渐变，中心最亮
func drawGlow(screen *ebiten.Image, cx, cy, radius float64, clr color.NRGBA, peakAlpha float64) {
	for i := 0; i < glowLayers; i++ {
		t := float64(i) / glowLayers
		r := radius * (1 - t)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), withAlpha(clr, peakAlpha/glowLayers), true)
	}
}
