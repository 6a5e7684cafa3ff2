package components

// CollisionComponent 定义实体的碰撞检测边界框
// 边界框以 PositionComponent 为左上角，同时也是实体的绘制尺寸
type CollisionComponent struct {
	Width  float64 // 碰撞盒宽度（像素）
	Height float64 // 碰撞盒高度（像素）
}
