package game

import (
	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/types"
)

// HandleEvents 按到达顺序处理本帧的输入事件
func (g *Game) HandleEvents(events []types.InputEvent) {
	for _, ev := range events {
		g.HandleEvent(ev)
	}
}

// HandleEvent 处理一个输入事件
func (g *Game) HandleEvent(ev types.InputEvent) {
	if g.state == StateQuit {
		return
	}
	if ev.Kind == types.EventQuit {
		g.setState(StateQuit)
		return
	}

	switch ev.Key {
	case types.KeyEscape:
		g.setState(StateQuit)

	case types.KeyUp:
		g.changeDir(components.DirUp)
	case types.KeyLeft:
		g.changeDir(components.DirLeft)
	case types.KeyDown:
		g.changeDir(components.DirDown)
	case types.KeyRight:
		g.changeDir(components.DirRight)

	case types.KeySpace:
		g.handleSpace()

	case types.KeyDebugShrink:
		if g.cfg.Debug && g.snake.Len() > 1 {
			g.snake.ShrinkTo(1)
		}
	case types.KeyDebugGrow:
		if g.cfg.Debug {
			g.snake.Grow()
		}
	case types.KeyDebugShake:
		if g.cfg.Debug {
			g.timers[TimerShake].Start()
		}
	}
}

// changeDir 教程中的第一次方向键只负责关闭教程
func (g *Game) changeDir(dir components.Direction) {
	switch {
	case g.state == StateTutorial && !g.timers[TimerFadeIn].IsActive():
		g.fadeIn()
	case g.state == StateGameplay:
		g.snake.ChangeDir(dir)
	}
}

// handleSpace 空格的含义取决于状态；淡入淡出期间忽略
func (g *Game) handleSpace() {
	if g.fading() {
		return
	}
	switch g.state {
	case StateDead:
		if g.darkened {
			g.timers[TimerTransition].Start()
		}
	case StatePaused:
		g.fadeIn()
	case StateGameplay:
		g.setState(StatePaused)
		g.fadeOut()
	}
}
