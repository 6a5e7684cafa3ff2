// Package types 定义共享的基础类型
package types

import "fmt"

// EnemyType 定义敌机的类型
// 类型在创建时确定，之后不再改变
type EnemyType int

const (
	// EnemyUnknown 未知敌机类型
	EnemyUnknown EnemyType = iota
	// EnemyNormal 普通敌机：小而快，一击即毁
	EnemyNormal
	// EnemyMiddle 中型敌机：较慢，需要三次命中
	EnemyMiddle
	// EnemyBoss 关底 Boss：血量和分值随关卡线性增长
	EnemyBoss
)

// 配置文件中使用的类型名
const (
	EnemyNameNormal = "normal"
	EnemyNameMiddle = "middle"
	EnemyNameBoss   = "boss"
)

// String 返回配置文件中使用的类型名
func (t EnemyType) String() string {
	switch t {
	case EnemyNormal:
		return EnemyNameNormal
	case EnemyMiddle:
		return EnemyNameMiddle
	case EnemyBoss:
		return EnemyNameBoss
	default:
		return "unknown"
	}
}

// IsBoss 判断是否为 Boss
func (t EnemyType) IsBoss() bool {
	return t == EnemyBoss
}

// ParseEnemyType 将配置中的类型名解析为 EnemyType
func ParseEnemyType(name string) (EnemyType, error) {
	switch name {
	case EnemyNameNormal:
		return EnemyNormal, nil
	case EnemyNameMiddle:
		return EnemyMiddle, nil
	case EnemyNameBoss:
		return EnemyBoss, nil
	}
	return EnemyUnknown, fmt.Errorf("unknown enemy type %q", name)
}

// AllEnemyTypes 返回所有有效的敌机类型
func AllEnemyTypes() []EnemyType {
	return []EnemyType{EnemyNormal, EnemyMiddle, EnemyBoss}
}
