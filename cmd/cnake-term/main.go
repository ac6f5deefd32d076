// cnake-term 在终端中运行游戏
//
// 用法：
//
//	go run ./cmd/cnake-term [-config data/game.yaml] [-seed 42] [-debug] [-mute] [-log cnake.log]
//
// 按键：WASD / 方向键移动，空格暂停，Esc 或 Ctrl+C 退出，m 切换音效。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/game"
	"github.com/decker502/cnake/pkg/term"
	"github.com/decker502/cnake/pkg/utils"
)

var (
	configPath = flag.String("config", "", "游戏配置文件路径（默认使用内置配置）")
	seed       = flag.Int64("seed", 0, "随机种子（0 使用配置或当前时间）")
	debug      = flag.Bool("debug", false, "启用调试按键")
	mute       = flag.Bool("mute", false, "关闭音效")
	volume     = flag.Float64("volume", 0.8, "音效音量 0.0 ~ 1.0")
	logPath    = flag.String("log", "", "日志文件（终端被界面占用，日志只能写入文件）")
)

func loadConfig() (*config.GameConfig, error) {
	if *configPath == "" {
		return config.DefaultGameConfig(), nil
	}
	return config.LoadGameConfig(*configPath)
}

// run 运行游戏并返回最高分
func run() (int, error) {
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			return 0, fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig()
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}
	if *debug {
		cfg.Debug = true
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	var sound *term.SpeakerSound
	if !*mute {
		sound, err = term.NewSpeakerSound(*volume)
		if err != nil {
			// 没有音频设备时继续无声运行
			log.Printf("[Term] %v", err)
			sound = nil
		} else {
			defer sound.Close()
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	var player game.SoundPlayer
	if sound != nil {
		player = sound
	}
	g := game.New(cfg, utils.NewRand(cfg.Seed), nil, player)
	runner := term.NewRunner(screen, g, sound)

	if err := runner.Run(context.Background()); err != nil {
		return 0, err
	}
	return g.BestScore(), nil
}

func main() {
	flag.Parse()
	best, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cnake-term: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("best score: %d\n", best)
}
