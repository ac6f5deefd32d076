package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cnake/pkg/app"
	"github.com/decker502/cnake/pkg/embedded"
)

var (
	verbose    = flag.Bool("verbose", false, "显示详细调试信息")
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用嵌入的 data/game.yaml）")
	debug      = flag.Bool("debug", false, "启用调试按键")
	seed       = flag.Int64("seed", 0, "随机种子（0 使用配置或当前时间）")
)

func main() {
	flag.Parse()

	embedded.Init(dataFS)

	cfg := app.Config{
		Verbose:    *verbose || os.Getenv("CNAKE_VERBOSE") != "",
		ConfigPath: *configPath,
		Debug:      *debug,
		Seed:       *seed,
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		// 非 verbose 模式下日志已被关闭，致命错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
