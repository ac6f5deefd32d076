package components

// Timer 以帧（tick）为单位的倒计时器
// 用于动画、状态切换等所有需要定时的行为
//
// 生命周期：创建后处于静止状态（remaining=0）；Start() 将 remaining 置为 duration；
// 每帧调用一次 Update()，remaining 为正时递减 1。
// JustEnded() 只在 remaining 从 1 变为 0 的那一帧为 true，下一次 Update() 时复位。
type Timer struct {
	remaining int
	duration  int
	justEnded bool
}

// NewTimer 创建一个时长为 duration 帧的静止计时器
func NewTimer(duration int) Timer {
	var t Timer
	t.Init(duration)
	return t
}

// Init 重置计时器并设置新的时长，计时器回到静止状态
func (t *Timer) Init(duration int) {
	*t = Timer{duration: duration}
}

// Start 从 duration 开始倒计时
func (t *Timer) Start() {
	t.remaining = t.duration
	t.justEnded = false
}

// Update 推进一帧；从未启动过的计时器什么也不做
func (t *Timer) Update() {
	if t.remaining > 0 {
		t.remaining--
		if t.remaining <= 0 {
			t.justEnded = true
		}
		return
	}
	t.justEnded = false
}

// IsActive 报告计时器是否仍在倒计时
func (t *Timer) IsActive() bool {
	return t.remaining > 0
}

// JustEnded 报告计时器是否在最近一次 Update() 中归零
func (t *Timer) JustEnded() bool {
	return t.justEnded
}

// UnitProgress 返回 remaining/duration；reverse 为 true 时返回 1 - remaining/duration
// duration 未设置（<=0）时返回 0
func (t *Timer) UnitProgress(reverse bool) float64 {
	if t.duration <= 0 {
		return 0
	}
	v := float64(t.remaining)
	if reverse {
		v = float64(t.duration - t.remaining)
	}
	return v / float64(t.duration)
}

// Remaining 返回剩余帧数
func (t *Timer) Remaining() int {
	return t.remaining
}

// Duration 返回时长
func (t *Timer) Duration() int {
	return t.duration
}
