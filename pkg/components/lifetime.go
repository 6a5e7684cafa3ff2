package components

// LifetimeComponent 一次性提示的计时器，按 tick 推进
type LifetimeComponent struct {
	TotalTicks int // 提示显示的总 tick 数
	Elapsed    int // 已显示的 tick 数
}

// Remaining 返回剩余显示比例 [0,1]，渲染层据此淡出
func (l *LifetimeComponent) Remaining() float64 {
	if l.TotalTicks <= 0 {
		return 0
	}
	r := 1 - float64(l.Elapsed)/float64(l.TotalTicks)
	if r < 0 {
		return 0
	}
	return r
}

// Expired 剩余比例归零即到期
func (l *LifetimeComponent) Expired() bool {
	return l.Remaining() <= 0
}
