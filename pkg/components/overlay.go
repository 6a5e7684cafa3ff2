package components

// OverlayKind 一次性提示的类型
type OverlayKind int

const (
	// OverlayBossWarning "BOSS BATTLE!" 红色提示
	OverlayBossWarning OverlayKind = iota
	// OverlayLevelStart "Level N" 蓝色提示，附带本关需要击落的敌机数
	OverlayLevelStart
)

// String 用于日志
func (k OverlayKind) String() string {
	switch k {
	case OverlayBossWarning:
		return "boss-warning"
	case OverlayLevelStart:
		return "level-start"
	default:
		return "unknown"
	}
}

// OverlayComponent 一次性覆盖提示
// 由敌机系统在状态切换时创建，由 OverlayFadeSystem 到期清理，渲染层只读
type OverlayComponent struct {
	Kind            OverlayKind
	Level           int // 触发时的关卡
	EnemiesRequired int // 关卡开始提示使用
}
