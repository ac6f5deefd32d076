package main

import (
	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/entities"
	"github.com/decker502/cnake/pkg/game"
	"github.com/decker502/cnake/pkg/types"
)

// bodyPenalty 穿过自身的代价，远大于地图上任意两格的距离
const bodyPenalty = 1000

var dirKeys = [...]types.Key{
	components.DirUp:    types.KeyUp,
	components.DirLeft:  types.KeyLeft,
	components.DirDown:  types.KeyDown,
	components.DirRight: types.KeyRight,
}

// nearestCheese 返回离 from 最近的奶酪，场上没有奶酪时 ok 为 false
func nearestCheese(pool *entities.CheesePool, from components.GridPoint) (target components.GridPoint, ok bool) {
	best := -1
	for i := 0; i < entities.CheeseCapacity; i++ {
		c := pool.Get(i)
		if !c.IsSpawned() {
			continue
		}
		d := manhattan(from, c.Pos())
		if best < 0 || d < best {
			best = d
			target = c.Pos()
		}
	}
	return target, best >= 0
}

func manhattan(a, b components.GridPoint) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// steer 贪心地选择下一步方向：不出界，尽量不碰自己，朝最近的奶酪前进
//
// 返回：
//   - 需要按下的方向键；保持当前方向时 ok 为 false
func steer(snake *entities.Snake, pool *entities.CheesePool, cols, rows int) (key types.Key, ok bool) {
	head := snake.Head()
	cur := snake.Dir()
	target, hasTarget := nearestCheese(pool, head)

	bestDir, bestCost := cur, -1
	for d := components.DirUp; d <= components.DirRight; d++ {
		if d == cur.Opposite() {
			continue
		}
		next := head.Step(d)
		if !next.In(cols, rows) {
			continue
		}
		cost := 0
		if snake.Occupies(next) {
			cost += bodyPenalty
		}
		if hasTarget {
			cost += manhattan(next, target)
		}
		// 代价相同时保持当前方向
		if bestCost < 0 || cost < bestCost || (cost == bestCost && d == cur) {
			bestDir, bestCost = d, cost
		}
	}

	if bestDir == cur {
		return types.KeyNone, false
	}
	return dirKeys[bestDir], true
}

// autopilot 根据游戏状态生成本帧的输入
func autopilot(g *game.Game) []types.InputEvent {
	switch g.State() {
	case game.StateTutorial:
		return []types.InputEvent{types.Press(types.KeyRight)}
	case game.StatePaused, game.StateDead:
		return []types.InputEvent{types.Press(types.KeySpace)}
	case game.StateGameplay:
		grid := g.Config().Grid
		if key, ok := steer(g.Snake(), g.CheesePool(), grid.Cols, grid.Rows); ok {
			return []types.InputEvent{types.Press(key)}
		}
	}
	return nil
}
