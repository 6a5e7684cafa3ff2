package components

import "github.com/decker502/skyraid/pkg/types"

// EnemyComponent 标识敌机实体
// 拥有此组件的实体构成"敌机集合"，关卡推进依赖该集合是否为空
type EnemyComponent struct {
	Type   types.EnemyType // 敌机类型，创建后不变
	Points int             // 被击毁时获得的分数
}
