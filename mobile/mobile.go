//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
// 移动端通过触摸操作：按住屏幕左右半边移动，点击开火。
//
// 手动构建：
//
//	# Android
//	mkdir -p mobile/data && cp data/game.yaml mobile/data/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.skyraid -o build/android/skyraid.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	mkdir -p mobile/data && cp data/game.yaml mobile/data/ && ebitenmobile bind -target ios -tags mobile -o build/ios/Skyraid.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/skyraid/pkg/app"
	"github.com/decker502/skyraid/pkg/embedded"
)

func init() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
