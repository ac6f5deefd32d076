package game

import "fmt"

// State 游戏顶层状态
type State int

const (
	// StateTutorial 显示操作提示，等待第一次方向键
	StateTutorial State = iota
	// StateGameplay 正常游戏
	StateGameplay
	// StatePaused 暂停
	StatePaused
	// StateDead 撞出边界后的死亡画面，等待空格重新开始
	StateDead
	// StateQuit 终止状态，主循环据此退出
	StateQuit
)

// String 返回状态名称
func (s State) String() string {
	switch s {
	case StateTutorial:
		return "Tutorial"
	case StateGameplay:
		return "Gameplay"
	case StatePaused:
		return "Paused"
	case StateDead:
		return "Dead"
	case StateQuit:
		return "Quit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// TimerID 游戏持有的具名计时器
type TimerID int

const (
	TimerShake TimerID = iota
	TimerFadeIn
	TimerFadeOut
	TimerDead
	TimerTransition
	TimerScorePulse

	TimerCount
)

var timerNames = [TimerCount]string{
	TimerShake:      "shake",
	TimerFadeIn:     "fade_in",
	TimerFadeOut:    "fade_out",
	TimerDead:       "dead",
	TimerTransition: "transition",
	TimerScorePulse: "score_pulse",
}

// String 返回计时器名称
func (id TimerID) String() string {
	if id < 0 || id >= TimerCount {
		return fmt.Sprintf("TimerID(%d)", int(id))
	}
	return timerNames[id]
}
