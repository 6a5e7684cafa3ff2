package game

import "sync"

// InputFrame 一个 tick 读取到的输入
type InputFrame struct {
	Left  bool // 左移键按住
	Right bool // 右移键按住
	Fire  bool // 开火请求（每次按下只会出现一次）
}

// Controls 输入采集端与模拟端之间的单消费者信号
//
// 输入端（事件回调或轮询）只写入；模拟端每个 tick 调用 Take 读取并清除开火请求。
// 因此按住开火键只会产生一发子弹，再次按下才会有下一发。
// 输入与模拟可能运行在不同 goroutine 中（终端版），所以内部加锁。
type Controls struct {
	mu      sync.Mutex
	left    bool
	right   bool
	fire    bool
	restart bool
}

// NewControls 创建空的输入信号
func NewControls() *Controls {
	return &Controls{}
}

// SetLeft 设置左移键状态
func (c *Controls) SetLeft(held bool) {
	c.mu.Lock()
	c.left = held
	c.mu.Unlock()
}

// SetRight 设置右移键状态
func (c *Controls) SetRight(held bool) {
	c.mu.Lock()
	c.right = held
	c.mu.Unlock()
}

// RequestFire 登记一次开火请求
// 在被消费之前的多次请求会合并为一次
func (c *Controls) RequestFire() {
	c.mu.Lock()
	c.fire = true
	c.mu.Unlock()
}

// RequestRestart 登记一次重新开始请求，只在游戏结束时生效
func (c *Controls) RequestRestart() {
	c.mu.Lock()
	c.restart = true
	c.mu.Unlock()
}

// Take 读取本 tick 的输入并清除开火请求
func (c *Controls) Take() InputFrame {
	c.mu.Lock()
	defer c.mu.Unlock()
	frame := InputFrame{Left: c.left, Right: c.right, Fire: c.fire}
	c.fire = false
	return frame
}

// TakeRestart 读取并清除重新开始请求
func (c *Controls) TakeRestart() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := c.restart
	c.restart = false
	return r
}

// ClearPending 丢弃尚未消费的开火和重新开始请求
func (c *Controls) ClearPending() {
	c.mu.Lock()
	c.fire = false
	c.restart = false
	c.mu.Unlock()
}
