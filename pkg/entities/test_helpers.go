package entities

// SequenceRandom 按顺序循环返回预设值的 Random
// 用于测试中精确控制生成位置、生成概率和粒子参数
type SequenceRandom struct {
	Values []float64
	next   int
}

// NewSequenceRandom 创建循环返回 values 的随机源
// values 为空时总是返回 0
func NewSequenceRandom(values ...float64) *SequenceRandom {
	return &SequenceRandom{Values: values}
}

// Float64 返回下一个预设值
func (r *SequenceRandom) Float64() float64 {
	if len(r.Values) == 0 {
		return 0
	}
	v := r.Values[r.next%len(r.Values)]
	r.next++
	return v
}

// Draws 返回已经消耗的随机数个数
func (r *SequenceRandom) Draws() int {
	return r.next
}
