package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/decker502/cnake/pkg/types"
)

// 配置校验错误，可用 errors.Is 判断
var (
	ErrInvalidGrid   = errors.New("invalid grid")
	ErrInvalidSnake  = errors.New("invalid snake")
	ErrInvalidRange  = errors.New("invalid range")
	ErrInvalidTimer  = errors.New("invalid timer")
	ErrInvalidEffect = errors.New("invalid effect")
)

// GameConfig 游戏参数配置
//
// 配置文件位置: data/game.yaml（嵌入到可执行文件中）
// 所有时长单位均为帧（tick）。
type GameConfig struct {
	// Debug 启用调试按键
	Debug bool `yaml:"debug"`

	// Seed 随机种子，0 表示使用当前时间
	Seed int64 `yaml:"seed"`

	Grid      GridConfig     `yaml:"grid"`
	Snake     SnakeConfig    `yaml:"snake"`
	Particles ParticleConfig `yaml:"particles"`
	Cheese    CheeseConfig   `yaml:"cheese"`
	Timers    TimerConfig    `yaml:"timers"`
	Effects   EffectsConfig  `yaml:"effects"`
	Colors    ColorConfig    `yaml:"colors"`
}

// GridConfig 地图网格配置
type GridConfig struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	CellSize   int `yaml:"cellSize"`   // 每格像素
	Padding    int `yaml:"padding"`    // 窗口边距
	InfoHeight int `yaml:"infoHeight"` // 顶部信息栏高度
}

// SnakeConfig 蛇的配置
type SnakeConfig struct {
	// Speed 每帧前进的格子比例，取值 (0, 1]
	Speed float64 `yaml:"speed"`

	// StartX, StartY 初始蛇头所在格；StartY 为 -1 时使用中间一行
	StartX int `yaml:"startX"`
	StartY int `yaml:"startY"`

	// MaxLength 蛇身最大节数
	MaxLength int `yaml:"maxLength"`

	Color  RGBColor     `yaml:"color"`
	Tongue TongueConfig `yaml:"tongue"`
}

// TongueConfig 吐舌头动画配置
type TongueConfig struct {
	Time     int `yaml:"time"`     // 完全伸出的停留时间
	MoveTime int `yaml:"moveTime"` // 伸出/缩回动画时间
	MinDelay int `yaml:"minDelay"` // 两次吐舌之间的最小间隔
	MaxDelay int `yaml:"maxDelay"` // 两次吐舌之间的最大间隔（另加一次完整动画时间）
}

// ParticleConfig 蛇受伤时喷出的粒子配置
type ParticleConfig struct {
	Velocity FloatRange `yaml:"velocity"`
	Lifetime IntRange   `yaml:"lifetime"`
	Size     IntRange   `yaml:"size"`
	Friction float64    `yaml:"friction"`
	OnShrink int        `yaml:"onShrink"` // 每次咬到自己/撞墙喷出的数量
	Color    RGBColor   `yaml:"color"`
}

// CheeseConfig 奶酪配置
type CheeseConfig struct {
	// SpawnTickDelay 每隔多少帧尝试生成一块奶酪
	SpawnTickDelay int `yaml:"spawnTickDelay"`

	// MaxRetries 寻找空闲格子的最大尝试次数
	MaxRetries int `yaml:"maxRetries"`

	// ParticlesOnBite 每次啃咬喷出的碎屑数量
	ParticlesOnBite int `yaml:"particlesOnBite"`

	// VelocityScale 碎屑速度相对 particles.velocity 的倍数
	VelocityScale float64 `yaml:"velocityScale"`

	Lifetime IntRange `yaml:"lifetime"`

	// SizeDivisor 碎屑尺寸相对 particles.size 的除数
	SizeDivisor float64 `yaml:"sizeDivisor"`

	Friction      float64  `yaml:"friction"`
	ParticleColor RGBColor `yaml:"particleColor"`
}

// TimerConfig 界面计时器时长
type TimerConfig struct {
	ScreenShake int `yaml:"screenShake"`
	FadeIn      int `yaml:"fadeIn"`
	FadeOut     int `yaml:"fadeOut"`
	Dead        int `yaml:"dead"`
	Transition  int `yaml:"transition"`
	ScorePulse  int `yaml:"scorePulse"`
}

// EffectsConfig 画面效果配置
type EffectsConfig struct {
	ShakeIntensity  int      `yaml:"shakeIntensity"` // 震屏最大幅度（像素）
	DarkenAlpha     int      `yaml:"darkenAlpha"`    // 屏幕变暗时遮罩透明度
	ShadowOffset    int      `yaml:"shadowOffset"`   // 投影偏移（像素）
	ShadowAlpha     int      `yaml:"shadowAlpha"`
	TransitionColor RGBColor `yaml:"transitionColor"`
}

// ColorConfig 背景与文字颜色
type ColorConfig struct {
	Background    RGBColor `yaml:"background"`
	MapBackground RGBColor `yaml:"mapBackground"`
	Text          RGBColor `yaml:"text"`
}

// RGBColor YAML 中的颜色 {r, g, b}
type RGBColor struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// Color 转换为不透明的 types.Color
func (c RGBColor) Color() types.Color {
	return types.RGB(c.R, c.G, c.B)
}

// IntRange 整数闭区间
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange 浮点闭区间
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// DefaultGameConfig 返回与 data/game.yaml 一致的默认配置
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Grid: GridConfig{
			Rows:       15,
			Cols:       17,
			CellSize:   40,
			Padding:    20,
			InfoHeight: 40,
		},
		Snake: SnakeConfig{
			Speed:     0.125,
			StartX:    5,
			StartY:    -1,
			MaxLength: 256,
			Color:     RGBColor{R: 75, G: 120, B: 240},
			Tongue: TongueConfig{
				Time:     30,
				MoveTime: 10,
				MinDelay: 300,
				MaxDelay: 600,
			},
		},
		Particles: ParticleConfig{
			Velocity: FloatRange{Min: 2.0, Max: 4.0},
			Lifetime: IntRange{Min: 30, Max: 60},
			Size:     IntRange{Min: 6, Max: 12},
			Friction: 0.95,
			OnShrink: 24,
			Color:    RGBColor{R: 75, G: 120, B: 240},
		},
		Cheese: CheeseConfig{
			SpawnTickDelay:  180,
			MaxRetries:      10,
			ParticlesOnBite: 2,
			VelocityScale:   4.0,
			Lifetime:        IntRange{Min: 120, Max: 200},
			SizeDivisor:     1.1,
			Friction:        0.9,
			ParticleColor:   RGBColor{R: 250, G: 200, B: 60},
		},
		Timers: TimerConfig{
			ScreenShake: 20,
			FadeIn:      30,
			FadeOut:     30,
			Dead:        60,
			Transition:  45,
			ScorePulse:  12,
		},
		Effects: EffectsConfig{
			ShakeIntensity:  16,
			DarkenAlpha:     110,
			ShadowOffset:    5,
			ShadowAlpha:     60,
			TransitionColor: RGBColor{R: 10, G: 10, B: 10},
		},
		Colors: ColorConfig{
			Background:    RGBColor{R: 35, G: 45, B: 30},
			MapBackground: RGBColor{R: 60, G: 90, B: 40},
			Text:          RGBColor{R: 255, G: 255, B: 255},
		},
	}
}

// ParseGameConfig 在默认配置之上解析 YAML 数据并校验
//
// 文件中缺省的字段保留默认值。
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	return cfg, nil
}

// LoadGameConfig 从磁盘加载游戏配置
//
// 参数:
//   - path: 配置文件路径（如 "data/game.yaml"）
//
// 返回:
//   - *GameConfig: 加载成功后的配置结构
//   - error: 读取、解析或校验失败时返回错误
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// StartCell 返回解析后的初始蛇头格
func (c *GameConfig) StartCell() (x, y int) {
	y = c.Snake.StartY
	if y < 0 {
		y = c.Grid.Rows / 2
	}
	return c.Snake.StartX, y
}

// Validate 验证配置有效性
//
// 返回:
//   - error: 验证失败时返回包装了哨兵错误的描述，成功返回 nil
func (c *GameConfig) Validate() error {
	g := c.Grid
	if g.Rows <= 0 || g.Cols <= 0 || g.CellSize <= 0 {
		return fmt.Errorf("%w: rows=%d cols=%d cellSize=%d must be > 0", ErrInvalidGrid, g.Rows, g.Cols, g.CellSize)
	}
	if g.Padding < 0 || g.InfoHeight < 0 {
		return fmt.Errorf("%w: padding=%d infoHeight=%d must be >= 0", ErrInvalidGrid, g.Padding, g.InfoHeight)
	}

	s := c.Snake
	if s.Speed <= 0 || s.Speed > 1 {
		return fmt.Errorf("%w: speed %.3f must be in (0, 1]", ErrInvalidSnake, s.Speed)
	}
	if s.MaxLength < 2 {
		return fmt.Errorf("%w: maxLength %d must be >= 2", ErrInvalidSnake, s.MaxLength)
	}
	// 初始蛇身占据蛇头左侧一格
	x, y := c.StartCell()
	if x < 1 || x >= g.Cols || y < 0 || y >= g.Rows {
		return fmt.Errorf("%w: start cell (%d, %d) outside %dx%d grid", ErrInvalidSnake, x, y, g.Cols, g.Rows)
	}
	if s.Tongue.Time <= 0 || s.Tongue.MoveTime <= 0 || s.Tongue.MinDelay <= 0 {
		return fmt.Errorf("%w: tongue timings must be > 0", ErrInvalidTimer)
	}
	if s.Tongue.MaxDelay < s.Tongue.MinDelay {
		return fmt.Errorf("%w: tongue delay min(%d) > max(%d)", ErrInvalidRange, s.Tongue.MinDelay, s.Tongue.MaxDelay)
	}

	p := c.Particles
	if err := checkFloatRange("particles.velocity", p.Velocity); err != nil {
		return err
	}
	if err := checkIntRange("particles.lifetime", p.Lifetime, 1); err != nil {
		return err
	}
	if err := checkIntRange("particles.size", p.Size, 1); err != nil {
		return err
	}
	if err := checkFriction("particles.friction", p.Friction); err != nil {
		return err
	}
	if p.OnShrink < 0 {
		return fmt.Errorf("%w: particles.onShrink %d must be >= 0", ErrInvalidEffect, p.OnShrink)
	}

	ch := c.Cheese
	if ch.SpawnTickDelay <= 0 {
		return fmt.Errorf("%w: cheese.spawnTickDelay %d must be > 0", ErrInvalidTimer, ch.SpawnTickDelay)
	}
	if ch.MaxRetries <= 0 {
		return fmt.Errorf("%w: cheese.maxRetries %d must be > 0", ErrInvalidEffect, ch.MaxRetries)
	}
	if ch.ParticlesOnBite < 0 {
		return fmt.Errorf("%w: cheese.particlesOnBite %d must be >= 0", ErrInvalidEffect, ch.ParticlesOnBite)
	}
	if ch.VelocityScale <= 0 || ch.SizeDivisor <= 0 {
		return fmt.Errorf("%w: cheese.velocityScale and cheese.sizeDivisor must be > 0", ErrInvalidEffect)
	}
	if err := checkIntRange("cheese.lifetime", ch.Lifetime, 1); err != nil {
		return err
	}
	if err := checkFriction("cheese.friction", ch.Friction); err != nil {
		return err
	}

	t := c.Timers
	for name, v := range map[string]int{
		"screenShake": t.ScreenShake,
		"fadeIn":      t.FadeIn,
		"fadeOut":     t.FadeOut,
		"dead":        t.Dead,
		"transition":  t.Transition,
		"scorePulse":  t.ScorePulse,
	} {
		if v <= 0 {
			return fmt.Errorf("%w: timers.%s %d must be > 0", ErrInvalidTimer, name, v)
		}
	}

	e := c.Effects
	if e.ShakeIntensity < 0 || e.ShadowOffset < 0 {
		return fmt.Errorf("%w: shakeIntensity and shadowOffset must be >= 0", ErrInvalidEffect)
	}
	if e.DarkenAlpha < 0 || e.DarkenAlpha > 255 || e.ShadowAlpha < 0 || e.ShadowAlpha > 255 {
		return fmt.Errorf("%w: alpha values must be in [0, 255]", ErrInvalidEffect)
	}

	return nil
}

func checkIntRange(name string, r IntRange, min int) error {
	if r.Min < min {
		return fmt.Errorf("%w: %s min(%d) must be >= %d", ErrInvalidRange, name, r.Min, min)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: %s min(%d) > max(%d)", ErrInvalidRange, name, r.Min, r.Max)
	}
	return nil
}

func checkFloatRange(name string, r FloatRange) error {
	if r.Min < 0 || r.Min > r.Max {
		return fmt.Errorf("%w: %s min(%.2f) max(%.2f)", ErrInvalidRange, name, r.Min, r.Max)
	}
	return nil
}

func checkFriction(name string, f float64) error {
	if f <= 0 || f >= 1 {
		return fmt.Errorf("%w: %s %.3f must be in (0, 1)", ErrInvalidEffect, name, f)
	}
	return nil
}
