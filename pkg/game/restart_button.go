package game

// Rect 轴对齐矩形（左上角 + 尺寸）
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Contains 判断点是否在矩形内（含边界）
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// RestartButtonRect 返回游戏结束画面中"重新开始"按钮的区域
// 按钮水平居中，顶部位于区域中线下方 offsetY 处
func RestartButtonRect(playfieldWidth, playfieldHeight int, width, height, offsetY float64) Rect {
	return Rect{
		X:      float64(playfieldWidth)/2 - width/2,
		Y:      float64(playfieldHeight)/2 + offsetY,
		Width:  width,
		Height: height,
	}
}
