// Package utils 提供通用工具函数
package utils

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 键盘按键映射
// 每个动作可以绑定多个按键，任一按键按下即视为动作触发
type KeyBindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Fire    []ebiten.Key
	Restart []ebiten.Key
}

// DefaultKeyBindings 默认按键：方向键/AD 移动，空格开火，回车/R 重新开始
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Fire:    []ebiten.Key{ebiten.KeySpace},
		Restart: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyR},
	}
}

// IsAnyKeyPressed 任一按键处于按下状态
func IsAnyKeyPressed(keys []ebiten.Key) bool {
	return slices.ContainsFunc(keys, ebiten.IsKeyPressed)
}

// IsAnyKeyJustPressed 任一按键在本帧刚刚按下
func IsAnyKeyJustPressed(keys []ebiten.Key) bool {
	return slices.ContainsFunc(keys, inpututil.IsKeyJustPressed)
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// TouchSteering 触摸操作下的移动方向
// 按住屏幕左半边向左，右半边向右；多点触摸时两个方向可以同时成立
func TouchSteering(screenWidth int) (left, right bool) {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		l, r := SteerFromX(x, screenWidth)
		left = left || l
		right = right || r
	}
	return left, right
}

// SteerFromX 把触点横坐标换算为移动方向
// 中线及以右视为向右
func SteerFromX(x, screenWidth int) (left, right bool) {
	if screenWidth <= 0 {
		return false, false
	}
	if x < screenWidth/2 {
		return true, false
	}
	return false, true
}

// HasNewTouch 本帧是否有新的触点按下（触摸操作下用作开火）
func HasNewTouch() bool {
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}
