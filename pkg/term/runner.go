package term

import (
	"context"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cnake/pkg/game"
	"github.com/decker502/cnake/pkg/types"
)

// TickRate 游戏逻辑频率
const TickRate = 60

// Runner 驱动终端前端的事件循环
//
// 按键事件在两帧之间累积，每帧按到达顺序交给核心。
type Runner struct {
	screen tcell.Screen
	game   *game.Game
	sound  *SpeakerSound // 可为 nil

	comp *Compositor
	buf  *Buffer
	dl   types.DrawList

	pending []types.InputEvent
}

// NewRunner 创建终端前端
// sound 为 nil 时 m 键无效。
func NewRunner(screen tcell.Screen, g *game.Game, sound *SpeakerSound) *Runner {
	comp := NewCompositor(g.Config())
	w, h := comp.Size()
	return &Runner{
		screen: screen,
		game:   g,
		sound:  sound,
		comp:   comp,
		buf:    NewBuffer(w, h),
	}
}

// Buffer 返回最近一帧的合成结果
func (r *Runner) Buffer() *Buffer {
	return r.buf
}

// HandleEvent 处理一个 tcell 事件，游戏按键进入待处理队列
func (r *Runner) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'm' || ev.Rune() == 'M') {
			if r.sound != nil {
				r.sound.Toggle()
			}
			return
		}
		if in, ok := MapKey(ev); ok {
			r.pending = append(r.pending, in)
		}
	case *tcell.EventResize:
		if r.screen != nil {
			r.screen.Sync()
		}
	}
}

// Queue 追加一个核心输入事件
func (r *Runner) Queue(ev types.InputEvent) {
	r.pending = append(r.pending, ev)
}

// Step 推进一帧：交付输入、更新、合成到缓冲区
// 返回 false 表示游戏已退出。
func (r *Runner) Step() bool {
	r.game.HandleEvents(r.pending)
	r.pending = r.pending[:0]
	r.game.Update()

	r.dl.Reset()
	r.game.Draw(&r.dl)
	r.comp.Compose(&r.dl, r.buf)

	return r.game.State() != game.StateQuit
}

// Run 运行事件循环直到游戏退出或 ctx 被取消
// 返回前不会调用 screen.Fini，由调用方负责。
func (r *Runner) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	log.Printf("[Term] loop started")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			r.HandleEvent(ev)
		case <-ticker.C:
			running := r.Step()
			r.buf.Flush(r.screen)
			r.screen.Show()
			if !running {
				log.Printf("[Term] quit after %d ticks", r.game.Tick())
				return nil
			}
		}
	}
}
