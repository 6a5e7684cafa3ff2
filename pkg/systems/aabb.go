package systems

import "github.com/decker502/skyraid/pkg/components"

// checkAABBCollision 检查两个实体的AABB（轴对齐边界框）是否重叠
// 位置为碰撞盒左上角；区间为半开区间，边界刚好接触不算碰撞
//
// 参数:
//   - pos1, col1: 第一个实体的位置和碰撞盒
//   - pos2, col2: 第二个实体的位置和碰撞盒
//
// 返回:
//   - bool: 两个碰撞盒在两个轴上都有重叠时返回 true
func checkAABBCollision(
	pos1 *components.PositionComponent, col1 *components.CollisionComponent,
	pos2 *components.PositionComponent, col2 *components.CollisionComponent) bool {

	return pos1.X < pos2.X+col2.Width &&
		pos1.X+col1.Width > pos2.X &&
		pos1.Y < pos2.Y+col2.Height &&
		pos1.Y+col1.Height > pos2.Y
}
