package components

import "image/color"

// ParticleComponent 爆炸粒子
// 纯装饰，不参与任何碰撞；Life 每 tick 按固定速率衰减，归零后销毁
type ParticleComponent struct {
	Color color.RGBA
	Size  float64 // 半径（像素）
	Life  float64 // 剩余生命 [0,1]，同时作为绘制透明度
}
