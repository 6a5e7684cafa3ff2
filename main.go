package main

import (
	"flag"
	"log"

	"github.com/decker502/skyraid/pkg/app"
	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	configPath := flag.String("config", "", "外部配置文件路径（.yaml/.yml/.toml），默认使用内置配置")
	seed := flag.Uint64("seed", 0, "随机种子，0 表示按时间取种")
	flag.Parse()

	// 初始化嵌入资源
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		ConfigPath: *configPath,
		Seed:       *seed,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Sky Raid")
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
