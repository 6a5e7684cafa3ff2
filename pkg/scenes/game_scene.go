package scenes

import (
	"github.com/decker502/skyraid/pkg/modules"
	"github.com/decker502/skyraid/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameScene 游戏主场景
// 把键盘、鼠标和触摸输入翻译成 Controls 请求，每帧推进一个 tick，
// 然后根据快照绘制画面。模拟本身不依赖这个场景。
type GameScene struct {
	module       *modules.BattleModule
	sceneManager *SceneManager

	keys  utils.KeyBindings
	faces utils.Faces

	// touchControls 在移动端启用：按住屏幕左右半边转向，新触摸开火
	touchControls bool
	showDebug     bool

	snapshot modules.Snapshot
}

// NewGameScene 创建游戏场景
//
// 参数:
//   - module: 已初始化的战斗模块
//   - sm: 场景管理器（可以为 nil）
//
// 返回:
//   - *GameScene: 场景实例
func NewGameScene(module *modules.BattleModule, sm *SceneManager) *GameScene {
	return &GameScene{
		module:        module,
		sceneManager:  sm,
		keys:          utils.DefaultKeyBindings(),
		faces:         utils.LoadFaces(),
		touchControls: utils.IsMobile(),
		snapshot:      module.Snapshot(),
	}
}

// Update 处理输入并推进一个 tick
// deltaTime 只用于接口兼容，模拟按固定步长推进
func (s *GameScene) Update(deltaTime float64) {
	s.handleInput()
	s.module.Tick()
	s.snapshot = s.module.Snapshot()
}

// Snapshot 返回最近一次 Update 后的快照
func (s *GameScene) Snapshot() modules.Snapshot {
	return s.snapshot
}

func (s *GameScene) handleInput() {
	controls := s.module.Controls()

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.showDebug = !s.showDebug
	}

	left := utils.IsAnyKeyPressed(s.keys.Left)
	right := utils.IsAnyKeyPressed(s.keys.Right)
	if s.touchControls {
		touchLeft, touchRight := utils.TouchSteering(s.snapshot.Width)
		left = left || touchLeft
		right = right || touchRight
	}
	controls.SetLeft(left)
	controls.SetRight(right)

	if !s.module.IsGameOver() {
		if utils.IsAnyKeyJustPressed(s.keys.Fire) || (s.touchControls && utils.HasNewTouch()) {
			controls.RequestFire()
		}
		return
	}

	if utils.IsAnyKeyJustPressed(s.keys.Restart) {
		controls.RequestRestart()
		return
	}
	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		s.module.HandleClick(float64(x), float64(y))
	}
}

// Draw 绘制当前快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := s.snapshot

	drawBackground(screen, snap)
	drawWorld(screen, snap)
	s.drawHUD(screen, snap.HUD)
	s.drawOverlays(screen, snap)

	if snap.GameOver {
		s.drawGameOver(screen, snap)
	}
	if s.showDebug {
		drawDebugInfo(screen, snap)
	}
}
