package game

import (
	"log"
	"math/rand"

	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/entities"
	"github.com/decker502/cnake/pkg/systems"
	"github.com/decker502/cnake/pkg/types"
)

// Assets 提供贴图尺寸，绘制覆盖层文字贴图时用于居中
type Assets interface {
	TextureSize(id types.TextureID) (w, h int)
}

// SoundPlayer 播放音效
type SoundPlayer interface {
	Play(id types.SoundID)
}

type nopSound struct{}

func (nopSound) Play(types.SoundID) {}

// Game 游戏核心：状态机、计时器、碰撞判定和每帧绘制命令
//
// Game 不依赖任何图形后端。前端每帧依次调用 HandleEvents、Update 和 Draw，
// 然后执行 DrawList 中的命令。所有方法只能在游戏循环所在的 goroutine 调用。
type Game struct {
	cfg    *config.GameConfig
	layout config.Layout
	rng    *rand.Rand
	assets Assets
	sound  SoundPlayer

	state State
	tick  int

	score         int
	previousScore int
	bestScore     int

	snake     *entities.Snake
	cheese    *entities.CheesePool
	particles *systems.ParticleSystem

	timers [TimerCount]components.Timer

	shakeX, shakeY int
	darkened       bool
}

// New 创建游戏并进入教程状态
//
// 参数：
//   - cfg: 已校验的游戏配置
//   - rng: 随机数来源，测试中传入固定种子
//   - assets: 贴图尺寸查询，nil 时按 DefaultAssets 估算
//   - sound: 音效播放，nil 时静音
func New(cfg *config.GameConfig, rng *rand.Rand, assets Assets, sound SoundPlayer) *Game {
	if assets == nil {
		assets = DefaultAssets(cfg)
	}
	if sound == nil {
		sound = nopSound{}
	}

	g := &Game{
		cfg:       cfg,
		layout:    cfg.Layout(),
		rng:       rng,
		assets:    assets,
		sound:     sound,
		snake:     entities.NewSnake(entities.SnakeOptionsFromConfig(cfg), rng),
		cheese:    entities.NewCheesePool(cfg, rng),
		particles: systems.NewParticleSystem(),
	}

	t := cfg.Timers
	durations := [TimerCount]int{
		TimerShake:      t.ScreenShake,
		TimerFadeIn:     t.FadeIn,
		TimerFadeOut:    t.FadeOut,
		TimerDead:       t.Dead,
		TimerTransition: t.Transition,
		TimerScorePulse: t.ScorePulse,
	}
	for id, d := range durations {
		g.timers[id].Init(d)
	}

	g.Restart()
	log.Printf("[Game] initialized: %dx%d grid", cfg.Grid.Cols, cfg.Grid.Rows)
	return g
}

// Restart 在原地重置蛇和奶酪池，回到变暗的教程画面
// 游戏粒子、计时器和最高分保留。
func (g *Game) Restart() {
	g.darkened = true
	g.setState(StateTutorial)

	x, y := g.cfg.StartCell()
	g.snake.Init(components.GridPoint{X: x, Y: y})
	g.cheese.Reset()

	g.score = 0
	g.previousScore = 0
}

func (g *Game) setState(s State) {
	if g.state == s {
		return
	}
	log.Printf("[Game] state %v -> %v (tick %d)", g.state, s, g.tick)
	g.state = s
}

func (g *Game) fadeIn() {
	g.timers[TimerFadeIn].Start()
}

func (g *Game) fadeOut() {
	g.darkened = true
	g.timers[TimerFadeOut].Start()
}

func (g *Game) fading() bool {
	return g.timers[TimerFadeIn].IsActive() || g.timers[TimerFadeOut].IsActive()
}

// State 返回当前状态
func (g *Game) State() State { return g.state }

// Tick 返回已经推进的帧数
func (g *Game) Tick() int { return g.tick }

// Score 返回本局得分
func (g *Game) Score() int { return g.score }

// PreviousScore 返回本帧开始时的得分
func (g *Game) PreviousScore() int { return g.previousScore }

// ScoreChanged 报告本帧是否得分
func (g *Game) ScoreChanged() bool { return g.score != g.previousScore }

// BestScore 返回本次运行中的最高分
func (g *Game) BestScore() int { return g.bestScore }

// SetBestScore 载入已保存的最高分，只会提高当前记录
func (g *Game) SetBestScore(n int) {
	if n > g.bestScore {
		g.bestScore = n
	}
}

// ShakeOffset 返回地图层当前的震屏偏移（像素）
func (g *Game) ShakeOffset() (x, y int) { return g.shakeX, g.shakeY }

// Darkened 报告地图是否处于变暗状态
func (g *Game) Darkened() bool { return g.darkened }

func (g *Game) Snake() *entities.Snake { return g.snake }

func (g *Game) CheesePool() *entities.CheesePool { return g.cheese }

func (g *Game) Particles() *systems.ParticleSystem { return g.particles }

// Timer 返回具名计时器
func (g *Game) Timer(id TimerID) *components.Timer { return &g.timers[id] }

func (g *Game) Config() *config.GameConfig { return g.cfg }

func (g *Game) Layout() config.Layout { return g.layout }
