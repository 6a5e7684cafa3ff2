// skyraid-tui 在终端里运行同一套模拟
//
// 使用 tcell 绘制快照，按键映射为 Controls 请求。
// 终端无法报告按键松开，按下方向键后会持续移动若干 tick。
//
// 用法:
//
//	go run ./cmd/skyraid-tui [-config path] [-seed N] [-log file]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/entities"
	"github.com/decker502/skyraid/pkg/modules"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "配置文件路径（.yaml/.yml/.toml），默认使用内置默认值")
	seed := flag.Uint64("seed", 0, "随机种子，0 表示按时间取种")
	logPath := flag.String("log", "", "日志文件路径，默认不输出日志")
	flag.Parse()

	if err := run(*configPath, *seed, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "skyraid-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, logPath string) error {
	// 日志写到终端会破坏画面
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.DefaultGameConfig()
	if configPath != "" {
		loaded, err := config.LoadGameConfigFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	var rnd entities.Random
	if seed != 0 {
		rnd = entities.NewRandom(seed)
	}
	module, err := modules.NewBattleModule(cfg, rnd)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t := newTerminalGame(screen, module)
	err = t.Run(ctx)
	screen.Fini()

	snap := module.Snapshot()
	fmt.Printf("Final Score: %d  Level Reached: %d  Run: %s\n", snap.HUD.Score, snap.HUD.Level, snap.RunID)

	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Run 启动输入循环和 tick 循环，任一循环退出时另一个随之结束
func (t *terminalGame) Run(ctx context.Context) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return t.inputLoop(ctx)
	})
	eg.Go(func() error {
		return t.tickLoop(ctx)
	})
	return eg.Wait()
}
