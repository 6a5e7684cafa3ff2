package config

// 单位配置常量
// 本文件定义了战机、子弹、敌机、粒子和星空的默认参数
// 所有速度均以"像素/tick"为单位，模拟按固定步长推进

// Window Configuration (窗口配置)
const (
	// GameWindowWidth 游戏区域宽度（像素）
	GameWindowWidth = 800

	// GameWindowHeight 游戏区域高度（像素）
	GameWindowHeight = 600

	// TicksPerSecond 每秒 tick 数，对应显示器刷新一次推进一步
	TicksPerSecond = 60
)

// Player Configuration (玩家配置)
const (
	// PlayerWidth 玩家战机宽度（像素）
	PlayerWidth = 50.0

	// PlayerHeight 玩家战机高度（像素）
	PlayerHeight = 30.0

	// PlayerSpeed 玩家战机每 tick 水平移动距离
	PlayerSpeed = 5.0

	// PlayerSpawnOffsetY 出生点距离底边的距离
	// 出生点 X 为区域宽度的一半（左边缘位于中线）
	PlayerSpawnOffsetY = 50.0
)

// Projectile Configuration (子弹配置)
const (
	// BulletWidth 子弹宽度（像素）
	BulletWidth = 4.0

	// BulletHeight 子弹高度（像素）
	BulletHeight = 10.0

	// BulletSpeed 子弹每 tick 上升距离
	BulletSpeed = 7.0

	// MaxLiveBullets 同时存在的子弹上限
	MaxLiveBullets = 5
)

// Enemy Configuration (敌机配置)
const (
	// EnemySpawnChance 每 tick 生成一架普通/中型敌机的概率
	EnemySpawnChance = 0.02

	// EnemyNormalRatio 生成敌机时选择普通敌机的概率，其余为中型
	EnemyNormalRatio = 0.7

	// InitialEnemiesRequired 第 1 关需要击落的敌机数
	InitialEnemiesRequired = 10

	// EnemiesRequiredBase 第 L 关（L ≥ 2）需要击落 Base + L*PerLevel 架
	EnemiesRequiredBase = 10

	// EnemiesRequiredPerLevel 每关增加的击落数量
	EnemiesRequiredPerLevel = 2

	// BossBaseHealth Boss 基础血量，实际血量为 Base + L*PerLevel
	BossBaseHealth = 10

	// BossHealthPerLevel 每关 Boss 增加的血量
	BossHealthPerLevel = 5

	// BossPointsPerLevel Boss 分值为 L*PointsPerLevel
	BossPointsPerLevel = 100

	// BossSwayAmplitude Boss 水平摆动幅度：x += sin(y/Period) * Amplitude
	BossSwayAmplitude = 3.0

	// BossSwayPeriod Boss 水平摆动周期参数
	BossSwayPeriod = 30.0

	// BossCeilingDivisor Boss 最低只能下降到区域高度的 1/Divisor
	BossCeilingDivisor = 3.0
)

// Effect Configuration (特效配置)
const (
	// ExplosionParticleCount 敌机被击毁时产生的粒子数
	ExplosionParticleCount = 20

	// ParticleFadeRate 粒子每 tick 衰减的生命值
	ParticleFadeRate = 0.02

	// ParticleMinSize 粒子最小半径
	ParticleMinSize = 2.0

	// ParticleSizeRange 粒子半径随机范围，半径 ∈ [Min, Min+Range)
	ParticleSizeRange = 3.0

	// ParticleMaxSpeed 粒子单轴速度上限，速度 ∈ [-Max, Max)
	ParticleMaxSpeed = 4.0

	// StarCount 背景星星数量
	StarCount = 100

	// StarMaxSize 星星最大半径
	StarMaxSize = 2.0

	// StarMinSpeed 星星最小下落速度
	StarMinSpeed = 0.1

	// StarSpeedRange 星星速度随机范围，速度 ∈ [Min, Min+Range)
	StarSpeedRange = 0.5

	// OverlayDurationTicks Boss 警告和关卡提示的显示时长
	OverlayDurationTicks = 90
)

// Restart Button Configuration (重新开始按钮)
const (
	// RestartButtonWidth 按钮宽度
	RestartButtonWidth = 180.0

	// RestartButtonHeight 按钮高度
	RestartButtonHeight = 50.0

	// RestartButtonOffsetY 按钮顶部相对区域中线的下移距离
	RestartButtonOffsetY = 40.0
)

// DefaultExplosionColors 爆炸粒子调色板
var DefaultExplosionColors = []string{"#ff0000", "#ff8800", "#ffff00"}
