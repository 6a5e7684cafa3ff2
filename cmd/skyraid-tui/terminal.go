package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/decker502/skyraid/pkg/config"
	"github.com/decker502/skyraid/pkg/modules"
	"github.com/gdamore/tcell/v2"
)

// errQuit 玩家按 q / Esc 退出
var errQuit = errors.New("quit")

// holdTicks 一次方向键事件维持移动的 tick 数
// 终端按键重复间隔通常在 30~50ms，略大于两次重复之间的 tick 数
const holdTicks = 4

// tickInterval 与桌面端 60 TPS 保持一致
const tickInterval = time.Second / config.TicksPerSecond

type commandKind int

const (
	cmdLeft commandKind = iota
	cmdRight
	cmdFire
	cmdRestart
	cmdClick
	cmdRedraw
)

type command struct {
	kind  commandKind
	cellX int
	cellY int
}

// steering 模拟终端里的"按住"状态
type steering struct {
	left, right int
}

// Press 记录一次方向键事件，反方向立即停止
func (s *steering) Press(kind commandKind) {
	switch kind {
	case cmdLeft:
		s.left, s.right = holdTicks, 0
	case cmdRight:
		s.left, s.right = 0, holdTicks
	}
}

// Tick 返回本 tick 的方向并消耗一次计数
func (s *steering) Tick() (left, right bool) {
	left, right = s.left > 0, s.right > 0
	if s.left > 0 {
		s.left--
	}
	if s.right > 0 {
		s.right--
	}
	return left, right
}

// Reset 清空按住状态
func (s *steering) Reset() {
	s.left, s.right = 0, 0
}

type terminalGame struct {
	screen   tcell.Screen
	module   *modules.BattleModule
	commands chan command
	steer    steering
}

func newTerminalGame(screen tcell.Screen, module *modules.BattleModule) *terminalGame {
	return &terminalGame{
		screen:   screen,
		module:   module,
		commands: make(chan command, 64),
	}
}

// commandForKey 把按键翻译为命令，ok=false 表示忽略
func commandForKey(ev *tcell.EventKey) (cmd command, quit, ok bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command{}, true, true
	case tcell.KeyLeft:
		return command{kind: cmdLeft}, false, true
	case tcell.KeyRight:
		return command{kind: cmdRight}, false, true
	case tcell.KeyEnter:
		return command{kind: cmdRestart}, false, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return command{}, true, true
		case 'a', 'A':
			return command{kind: cmdLeft}, false, true
		case 'd', 'D':
			return command{kind: cmdRight}, false, true
		case ' ':
			return command{kind: cmdFire}, false, true
		case 'r', 'R':
			return command{kind: cmdRestart}, false, true
		}
	}
	return command{}, false, false
}

// inputLoop 阻塞读取终端事件并转发给 tick 循环
func (t *terminalGame) inputLoop(ctx context.Context) error {
	for {
		ev := t.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		var cmd command
		switch ev := ev.(type) {
		case *tcell.EventKey:
			c, quit, ok := commandForKey(ev)
			if quit {
				return errQuit
			}
			if !ok {
				continue
			}
			cmd = c
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			x, y := ev.Position()
			cmd = command{kind: cmdClick, cellX: x, cellY: y}
		case *tcell.EventResize:
			cmd = command{kind: cmdRedraw}
		default:
			continue
		}

		select {
		case t.commands <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}

// tickLoop 按固定间隔推进模拟并重绘
// BattleModule 只在这个 goroutine 中访问
func (t *terminalGame) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// 唤醒阻塞在 PollEvent 上的输入循环
			_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
			return ctx.Err()
		case cmd := <-t.commands:
			t.apply(cmd)
		case <-ticker.C:
			t.step()
		}
	}
}

func (t *terminalGame) apply(cmd command) {
	controls := t.module.Controls()
	switch cmd.kind {
	case cmdLeft, cmdRight:
		t.steer.Press(cmd.kind)
	case cmdFire:
		controls.RequestFire()
	case cmdRestart:
		controls.RequestRestart()
	case cmdClick:
		w, h := t.screen.Size()
		snap := t.module.Snapshot()
		x, y := unproject(cmd.cellX, cmd.cellY, snap.Width, snap.Height, w, h)
		if t.module.HandleClick(x, y) {
			t.steer.Reset()
			log.Printf("[TUI] Restart via click at cell (%d, %d)", cmd.cellX, cmd.cellY)
		}
	case cmdRedraw:
		t.screen.Sync()
	}
}

func (t *terminalGame) step() {
	controls := t.module.Controls()
	left, right := t.steer.Tick()
	controls.SetLeft(left)
	controls.SetRight(right)

	t.module.Tick()

	t.screen.Clear()
	drawSnapshot(t.screen, t.module.Snapshot())
	t.screen.Show()
}
