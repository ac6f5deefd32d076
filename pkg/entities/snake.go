package entities

import (
	"fmt"
	"math/rand"

	"github.com/decker502/cnake/pkg/components"
	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/types"
	"github.com/decker502/cnake/pkg/utils"
)

// shiftEpsilon 吸收步长累加的浮点误差（例如 0.1 累加十次略小于 1）
const shiftEpsilon = 1e-9

// TongueState 舌头动画状态
type TongueState int

const (
	TongueHidden TongueState = iota
	TongueShowing
	TongueShown
	TongueHiding
)

// String 返回状态名称
func (s TongueState) String() string {
	switch s {
	case TongueHidden:
		return "Hidden"
	case TongueShowing:
		return "Showing"
	case TongueShown:
		return "Shown"
	case TongueHiding:
		return "Hiding"
	default:
		return fmt.Sprintf("TongueState(%d)", int(s))
	}
}

// SnakeOptions 蛇的静态参数
type SnakeOptions struct {
	MaxLength int
	Color     types.Color
	Tongue    config.TongueConfig

	CellSize     int
	ShadowOffset int
	ShadowAlpha  uint8
}

// SnakeOptionsFromConfig 从游戏配置提取蛇的参数
func SnakeOptionsFromConfig(cfg *config.GameConfig) SnakeOptions {
	return SnakeOptions{
		MaxLength:    cfg.Snake.MaxLength,
		Color:        cfg.Snake.Color.Color(),
		Tongue:       cfg.Snake.Tongue,
		CellSize:     cfg.Grid.CellSize,
		ShadowOffset: cfg.Effects.ShadowOffset,
		ShadowAlpha:  uint8(cfg.Effects.ShadowAlpha),
	}
}

// Snake 玩家控制的蛇
//
// body[0] 是蛇头。offset 是蛇头滑入当前格子的进度，达到 1 时整条蛇
// 前进一格（一次 shift）。prev 记录 shift 前的尾格，用于绘制尾部
// 逐渐离开的部分。
type Snake struct {
	opts SnakeOptions
	rng  *rand.Rand

	body []components.GridPoint
	prev components.GridPoint

	dir     components.Direction
	nextDir components.Direction
	offset  float64

	pendingGrowth int

	tongueState TongueState
	tongueTimer components.Timer

	dead bool
}

// NewSnake 创建蛇，需要随后调用 Init 放到起点
func NewSnake(opts SnakeOptions, rng *rand.Rand) *Snake {
	if opts.MaxLength < 2 {
		panic(fmt.Sprintf("snake max length %d must be >= 2", opts.MaxLength))
	}
	return &Snake{
		opts: opts,
		rng:  rng,
		body: make([]components.GridPoint, 0, opts.MaxLength),
	}
}

// Init 在 start 处放置一条长度为 2、朝右的蛇
//
// offset 初始为 1：蛇头完整画在起点格内，第一次 Move 立即 shift。
func (s *Snake) Init(start components.GridPoint) {
	s.body = s.body[:0]
	s.body = append(s.body,
		start,
		components.GridPoint{X: start.X - 1, Y: start.Y},
	)
	s.prev = components.GridPoint{X: start.X - 2, Y: start.Y}

	s.dir = components.DirRight
	s.nextDir = s.dir
	s.offset = 1
	s.pendingGrowth = 0
	s.dead = false

	s.delayTongue()
}

// ChangeDir 缓存下一次 shift 时采用的方向
// 与当前方向同轴（相同或相反）的请求被忽略。
func (s *Snake) ChangeDir(dir components.Direction) {
	if s.dir.SameAxis(dir) {
		return
	}
	s.nextDir = dir
}

// Move 推进 offset，跨过 1 时执行一次 shift 并返回 true
func (s *Snake) Move(step float64) bool {
	s.offset += step
	if s.offset < 1-shiftEpsilon {
		return false
	}

	s.offset = 0
	s.dir = s.nextDir
	s.prev = s.body[len(s.body)-1]

	for ; s.pendingGrowth > 0; s.pendingGrowth-- {
		if len(s.body) >= s.opts.MaxLength {
			continue
		}
		s.body = append(s.body, s.body[len(s.body)-1])
	}

	for i := len(s.body) - 1; i > 0; i-- {
		s.body[i] = s.body[i-1]
	}
	s.body[0] = s.body[0].Step(s.dir)
	return true
}

// Grow 请求在下一次 shift 时增加一节
func (s *Snake) Grow() {
	s.pendingGrowth++
}

// ShrinkTo 把蛇截断为 n 节，n 必须在 [1, Len) 内
func (s *Snake) ShrinkTo(n int) {
	if n < 1 || n >= len(s.body) {
		panic(fmt.Sprintf("invalid shrink to %d (length %d)", n, len(s.body)))
	}
	s.prev = s.body[n]
	s.body = s.body[:n]
}

// Update 推进舌头动画
func (s *Snake) Update() {
	s.tongueTimer.Update()
	if !s.tongueTimer.JustEnded() {
		return
	}

	t := s.opts.Tongue
	switch s.tongueState {
	case TongueHidden:
		s.setTongue(TongueShowing, t.MoveTime)
	case TongueShowing:
		s.setTongue(TongueShown, t.Time)
	case TongueShown:
		s.setTongue(TongueHiding, t.MoveTime)
	case TongueHiding:
		s.delayTongue()
	}
}

// delayTongue 随机等待一段时间再吐舌头，避免节奏过于规律
func (s *Snake) delayTongue() {
	t := s.opts.Tongue
	total := t.MoveTime*2 + t.Time
	s.setTongue(TongueHidden, utils.RandIRange(s.rng, t.MinDelay, t.MaxDelay+total))
}

func (s *Snake) setTongue(state TongueState, ticks int) {
	s.tongueState = state
	s.tongueTimer.Init(ticks)
	s.tongueTimer.Start()
}

// Kill 标记死亡，眼睛换成死亡贴图
func (s *Snake) Kill() {
	s.dead = true
}

// Head 返回蛇头所在格
func (s *Snake) Head() components.GridPoint {
	return s.body[0]
}

// Len 返回当前长度
func (s *Snake) Len() int {
	return len(s.body)
}

// Body 返回身体各节（只读视图，蛇头在前）
func (s *Snake) Body() []components.GridPoint {
	return s.body
}

// At 返回第 i 节
func (s *Snake) At(i int) components.GridPoint {
	return s.body[i]
}

// Occupies 报告是否有任意一节位于 p
func (s *Snake) Occupies(p components.GridPoint) bool {
	for _, b := range s.body {
		if b == p {
			return true
		}
	}
	return false
}

// IndexOfHead 返回第一个与蛇头重合的身体节下标（从 1 开始扫描），没有时返回 -1
func (s *Snake) IndexOfHead() int {
	head := s.body[0]
	for i := 1; i < len(s.body); i++ {
		if s.body[i] == head {
			return i
		}
	}
	return -1
}

// Prev 返回最近一次 shift 前的尾格
func (s *Snake) Prev() components.GridPoint { return s.prev }

// Dir 当前移动方向
func (s *Snake) Dir() components.Direction { return s.dir }

// NextDir 下一次 shift 时采用的方向
func (s *Snake) NextDir() components.Direction { return s.nextDir }

// Offset 蛇头向下一格推进的比例，0 表示刚完成 shift
func (s *Snake) Offset() float64 { return s.offset }

// PendingGrowth 尚未长出的节数
func (s *Snake) PendingGrowth() int { return s.pendingGrowth }

// Dead 报告蛇是否已死亡
func (s *Snake) Dead() bool { return s.dead }

// TongueState 舌头动画当前阶段
func (s *Snake) TongueState() TongueState { return s.tongueState }

// TongueTimer 返回驱动舌头动画的计时器
func (s *Snake) TongueTimer() *components.Timer { return &s.tongueTimer }

// Options 返回创建时的参数
func (s *Snake) Options() SnakeOptions { return s.opts }

func (s *Snake) cellRect(p components.GridPoint) types.Rect {
	cs := float64(s.opts.CellSize)
	return types.Rect{X: float64(p.X) * cs, Y: float64(p.Y) * cs, W: cs, H: cs}
}

// FadeColor 返回第 i 节的颜色，越靠后越暗
func (s *Snake) FadeColor(i int) types.Color {
	c := s.opts.Color
	return types.RGB(
		fadeChannel(int(c.R)-i),
		fadeChannel(int(c.G)-i),
		fadeChannel(int(c.B)-i/2),
	)
}

func fadeChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	return uint8(v)
}

// offsetPartRect 计算格子 pos 中沿 dir 方向被占据的部分
//
// inv 为 false 时占据比例为 offset（蛇头滑入），为 true 时为 1-offset（尾部离开）。
func (s *Snake) offsetPartRect(pos components.GridPoint, dir components.Direction, inv bool) types.Rect {
	cs := s.opts.CellSize
	size := int(s.offset * float64(cs))
	if inv {
		size = cs - size
	}

	x, y := pos.X*cs, pos.Y*cs
	w, h := cs, size
	switch dir {
	case components.DirUp:
		y = (pos.Y+1)*cs - size
	case components.DirLeft:
		w, h = h, w
		x = (pos.X+1)*cs - size
	case components.DirDown:
	case components.DirRight:
		w, h = h, w
	}
	return types.Rect{X: float64(x), Y: float64(y), W: float64(w), H: float64(h)}
}

// Draw 生成蛇的绘制命令：投影、身体、眼睛和舌头
func (s *Snake) Draw(dl *types.DrawList, layer types.Layer) {
	tail := s.body[len(s.body)-1]
	hasBack := s.prev != tail

	front := s.offsetPartRect(s.body[0], s.dir, false)
	var back types.Rect
	if hasBack {
		back = s.offsetPartRect(s.prev, components.DirectionFromTo(tail, s.prev), true)
	}

	off := float64(s.opts.ShadowOffset)
	shadow := types.Black.WithAlpha(s.opts.ShadowAlpha)

	dl.FillRect(layer, front.Offset(off, off), shadow)
	if hasBack {
		dl.FillRect(layer, back.Offset(off, off), shadow)
	}
	for i := 1; i < len(s.body); i++ {
		if s.body[i] == s.body[i-1] {
			continue
		}
		dl.FillRect(layer, s.cellRect(s.body[i]).Offset(off, off), shadow)
	}

	dl.FillRect(layer, front, s.opts.Color)
	if hasBack {
		dl.FillRect(layer, back, s.FadeColor(len(s.body)))
	}
	for i := 1; i < len(s.body); i++ {
		if s.body[i] == s.body[i-1] {
			continue
		}
		dl.FillRect(layer, s.cellRect(s.body[i]), s.FadeColor(i))
	}

	s.drawFace(dl, layer)
}

func (s *Snake) drawFace(dl *types.DrawList, layer types.Layer) {
	cs := float64(s.opts.CellSize)
	off := float64(int(s.offset * cs))

	eyes := s.cellRect(s.body[0])
	tongue := eyes
	switch s.dir {
	case components.DirUp:
		eyes.Y += cs - off
		tongue.Y -= off
	case components.DirLeft:
		eyes.X += cs - off
		tongue.X -= off
	case components.DirDown:
		eyes.Y -= cs - off
		tongue.Y += off
	case components.DirRight:
		eyes.X -= cs - off
		tongue.X += off
	}

	angle := s.dir.Angle()
	eyesTex := types.TextureEyes
	if s.dead {
		eyesTex = types.TextureEyesDead
	}
	dl.Blit(layer, eyesTex, nil, eyes, angle, types.White)

	switch s.tongueState {
	case TongueHidden:
	case TongueShown:
		dl.Blit(layer, types.TextureTongue, nil, tongue, angle, types.White)
	default:
		// 伸出时从 0 增长，缩回时从满长度减小
		progress := s.tongueTimer.UnitProgress(s.tongueState != TongueHiding)
		src := types.Rect{W: cs, H: float64(int(progress * cs))}
		dl.Blit(layer, types.TextureTongue, &src, tongue, angle, types.White)
	}
}
