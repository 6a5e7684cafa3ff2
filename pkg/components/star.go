package components

// StarComponent 背景星星
// 星星循环滚动，不会被销毁，也不与任何玩法实体交互
type StarComponent struct {
	Size  float64 // 半径（像素）
	Speed float64 // 每 tick 下移距离
}
