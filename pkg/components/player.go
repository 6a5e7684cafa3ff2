package components

// PlayerComponent 标识玩家战机
// 整个模拟中只有一个玩家实体，重开时只会被重新摆放
type PlayerComponent struct {
	Speed  float64 // 每 tick 水平移动距离
	SpawnX float64 // 出生点 X
	SpawnY float64 // 出生点 Y
}
