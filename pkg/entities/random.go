package entities

import "math/rand/v2"

// Random 是工厂和系统使用的均匀随机数来源
// Float64 返回 [0,1) 区间内的值
//
// 正式运行时使用带种子的 PCG，测试中可以注入脚本化的序列
type Random interface {
	Float64() float64
}

// NewRandom 创建一个由 seed 决定的随机数来源
// 相同 seed 的两次模拟会产生完全相同的结果
func NewRandom(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between 返回 [min, min+span) 内的均匀随机数
func between(rnd Random, min, span float64) float64 {
	return rnd.Float64()*span + min
}
