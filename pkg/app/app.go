// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/modules"
	"github.com/decker502/skyraid/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// DefaultConfigPath 内置配置文件在嵌入文件系统中的路径
const DefaultConfigPath = "data/game.yaml"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 外部配置文件（.yaml/.yml/.toml），为空则使用内置配置
	ConfigPath string
	// Seed 随机种子，0 表示按时间取种
	Seed uint64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *scenes.SceneManager
	module                   *modules.BattleModule
	width, height            int
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// LoadConfig 按启动参数加载游戏配置
// 指定了外部文件时从磁盘读取，否则读取内置的 data/game.yaml
func LoadConfig(cfg Config) (*config.GameConfig, error) {
	if cfg.ConfigPath != "" {
		log.Printf("[Config] 加载外部配置: %s", cfg.ConfigPath)
		return config.LoadGameConfigFile(cfg.ConfigPath)
	}
	return config.LoadGameConfig(DefaultConfigPath)
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	gameConfig, err := LoadConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("游戏配置加载失败: %w", err)
	}

	var rnd entities.Random
	if cfg.Seed != 0 {
		rnd = entities.NewRandom(cfg.Seed)
		log.Printf("[App] Using fixed seed %d", cfg.Seed)
	}

	module, err := modules.NewBattleModule(gameConfig, rnd)
	if err != nil {
		return nil, fmt.Errorf("战斗模块初始化失败: %w", err)
	}

	sceneManager := scenes.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewGameScene(module, sceneManager))

	log.Printf("[App] Playfield %dx%d, run %s", gameConfig.Playfield.Width, gameConfig.Playfield.Height, module.State().RunID)

	return &App{
		sceneManager: sceneManager,
		module:       module,
		width:        gameConfig.Playfield.Width,
		height:       gameConfig.Playfield.Height,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	a.sceneManager.Update(1.0 / config.TicksPerSecond)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸，即配置中的游戏区域尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

// Module 返回战斗模块
func (a *App) Module() *modules.BattleModule {
	return a.module
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
