package components

// PositionComponent 存储实体左上角在游戏区域中的坐标（像素）
// 与碰撞盒配合时，碰撞盒从该点向右下延伸
type PositionComponent struct {
	X float64
	Y float64
}

// VelocityComponent 存储实体每个 tick 的位移（像素/tick）
// Y 轴向下为正，子弹的 VY 为负值
type VelocityComponent struct {
	VX float64
	VY float64
}
