package components

// HealthComponent 存储实体的生命值信息
// 用于敌机（包括 Boss）
type HealthComponent struct {
	CurrentHealth int // 当前生命值，归零的 tick 内实体即被移除
	MaxHealth     int // 最大生命值，用于血条比例
}

// Ratio 返回当前生命值占最大生命值的比例
func (h *HealthComponent) Ratio() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	return float64(h.CurrentHealth) / float64(h.MaxHealth)
}
