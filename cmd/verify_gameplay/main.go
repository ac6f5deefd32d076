// verify_gameplay 无界面运行游戏核心，由贪心自动驾驶操作蛇，
// 用于快速检查长时间运行下的状态机、计分和绘制命令。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/game"
	"github.com/decker502/cnake/pkg/types"
	"github.com/decker502/cnake/pkg/utils"
)

var (
	ticks      = flag.Int("ticks", 60*60*5, "运行的帧数")
	seed       = flag.Int64("seed", 1, "随机种子")
	configPath = flag.String("config", "", "游戏配置文件（默认使用内置配置）")
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
)

// report 一次运行的统计
type report struct {
	ticks      int
	deaths     int
	maxScore   int
	bestScore  int
	maxLength  int
	maxDrawCmd int
}

func run(cfg *config.GameConfig, n int) report {
	g := game.New(cfg, utils.NewRand(cfg.Seed), nil, nil)

	var (
		r  report
		dl types.DrawList
	)
	prev := g.State()
	for r.ticks = 0; r.ticks < n && g.State() != game.StateQuit; r.ticks++ {
		g.HandleEvents(autopilot(g))
		g.Update()

		dl.Reset()
		g.Draw(&dl)
		r.maxDrawCmd = max(r.maxDrawCmd, len(dl.Commands))

		if s := g.State(); s != prev {
			log.Printf("[Verify] tick %d: %v -> %v (score %d, length %d)", r.ticks, prev, s, g.Score(), g.Snake().Len())
			if s == game.StateDead {
				r.deaths++
			}
			prev = s
		}
		r.maxScore = max(r.maxScore, g.Score())
		r.maxLength = max(r.maxLength, g.Snake().Len())
	}
	r.bestScore = g.BestScore()
	return r
}

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadGameConfig(*configPath); err != nil {
			fmt.Fprintf(os.Stderr, "verify_gameplay: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Seed = *seed

	r := run(cfg, *ticks)

	fmt.Println("=== 验证结果 ===")
	fmt.Printf("ticks:       %d\n", r.ticks)
	fmt.Printf("deaths:      %d\n", r.deaths)
	fmt.Printf("max score:   %d\n", r.maxScore)
	fmt.Printf("best score:  %d\n", r.bestScore)
	fmt.Printf("max length:  %d\n", r.maxLength)
	fmt.Printf("draw cmds:   %d (max per frame)\n", r.maxDrawCmd)
}
