package types

// Key 是核心逻辑关心的按键，与具体输入后端无关
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyLeft
	KeyDown
	KeyRight
	KeySpace
	KeyEscape

	// 调试按键，仅在配置 debug: true 时生效
	KeyDebugShrink
	KeyDebugGrow
	KeyDebugShake
)

// String 返回按键名称
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyLeft:
		return "Left"
	case KeyDown:
		return "Down"
	case KeyRight:
		return "Right"
	case KeySpace:
		return "Space"
	case KeyEscape:
		return "Escape"
	case KeyDebugShrink:
		return "DebugShrink"
	case KeyDebugGrow:
		return "DebugGrow"
	case KeyDebugShake:
		return "DebugShake"
	default:
		return "None"
	}
}

// EventKind 输入事件类型
type EventKind int

const (
	// EventKeyDown 按键按下
	EventKeyDown EventKind = iota
	// EventQuit 窗口关闭
	EventQuit
)

// InputEvent 一帧内按到达顺序传递给核心的离散输入事件
type InputEvent struct {
	Kind EventKind
	Key  Key
}

// Press 构造按键事件
func Press(k Key) InputEvent {
	return InputEvent{Kind: EventKeyDown, Key: k}
}

// Quit 构造退出事件
func Quit() InputEvent {
	return InputEvent{Kind: EventQuit}
}
