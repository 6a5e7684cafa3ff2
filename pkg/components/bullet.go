package components

// BulletComponent 标识玩家子弹实体
// 子弹的移动由 VelocityComponent 描述
type BulletComponent struct{}
