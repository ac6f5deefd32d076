package game

import (
	"log"

	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/utils"
)

// FindNewCheesePosition 随机挑选一个既没有奶酪也没有蛇身的格子
//
// 最多尝试 cheese.maxRetries 次；棋盘拥挤时可能失败，此时本轮不生成奶酪。
//
// 返回：
//   - components.GridPoint: 选中的格子
//   - bool: 是否找到
func (g *Game) FindNewCheesePosition() (components.GridPoint, bool) {
	grid := g.cfg.Grid
	retries := g.cfg.Cheese.MaxRetries

	for i := 0; i < retries; i++ {
		p := components.GridPoint{
			X: utils.RandIRange(g.rng, 0, grid.Cols-1),
			Y: utils.RandIRange(g.rng, 0, grid.Rows-1),
		}
		if g.cheese.At(p) != nil || g.snake.Occupies(p) {
			continue
		}
		return p, true
	}

	log.Printf("[Game] failed to find a cheese position after %d retries", retries)
	return components.GridPoint{}, false
}
