package term

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/game"
	"github.com/decker502/cnake/pkg/types"
)

// 每个地图格占用的终端列数和行数
const (
	colsPerCell = 2
	rowsPerCell = 1
)

// hudRows 地图上方的信息栏行数
const hudRows = 1

// glyphCoverage 小于一个终端单元这个比例的填充画成字符而不是背景色
const glyphCoverage = 0.25

var (
	eyeColor    = colorful.Color{R: 1, G: 1, B: 1}
	deadColor   = colorful.Color{R: 0.1, G: 0.1, B: 0.1}
	tongueColor = colorful.Color{R: 220.0 / 255, G: 40.0 / 255, B: 60.0 / 255}
	cheeseColor = colorful.Color{R: 250.0 / 255, G: 200.0 / 255, B: 60.0 / 255}
)

// Compositor 把 DrawList 合成到终端缓冲区
type Compositor struct {
	cellSize   float64
	colW, rowH float64 // 一个终端单元对应的像素尺寸

	mapCols, mapRows int // 地图区域（终端单元）

	background colorful.Color
	text       colorful.Color
	grass      [2]colorful.Color
}

// NewCompositor 按配置创建合成器
func NewCompositor(cfg *config.GameConfig) *Compositor {
	cs := float64(cfg.Grid.CellSize)
	mapBg := FromColor(cfg.Colors.MapBackground.Color())
	return &Compositor{
		cellSize:   cs,
		colW:       cs / colsPerCell,
		rowH:       cs / rowsPerCell,
		mapCols:    cfg.Grid.Cols * colsPerCell,
		mapRows:    cfg.Grid.Rows * rowsPerCell,
		background: FromColor(cfg.Colors.Background.Color()),
		text:       FromColor(cfg.Colors.Text.Color()),
		grass: [2]colorful.Color{
			mapBg,
			mapBg.BlendRgb(colorful.Color{}, 0.08),
		},
	}
}

// Size 返回完整画面需要的终端尺寸
func (c *Compositor) Size() (w, h int) {
	return c.mapCols, c.mapRows + hudRows
}

// Compose 清空缓冲区并按顺序合成三层命令
func (c *Compositor) Compose(dl *types.DrawList, buf *Buffer) {
	buf.Clear(c.background)

	for i := range dl.Commands {
		cmd := &dl.Commands[i]
		switch cmd.Layer {
		case types.LayerMap:
			c.composeMap(buf, cmd, cmd.Rect.Offset(dl.ShakeX, dl.ShakeY))
		case types.LayerOverlay:
			c.composeMap(buf, cmd, cmd.Rect)
		case types.LayerScreen:
			c.composeScreen(buf, cmd)
		}
	}
}

// span 是矩形覆盖的一个终端单元及其覆盖比例
type span struct {
	x, y     int
	coverage float64
}

// spans 返回矩形在地图区域内覆盖的终端单元，坐标已加上信息栏偏移
func (c *Compositor) spans(r types.Rect, visit func(s span)) {
	x0 := int(math.Floor(r.X / c.colW))
	x1 := int(math.Ceil((r.X + r.W) / c.colW))
	y0 := int(math.Floor(r.Y / c.rowH))
	y1 := int(math.Ceil((r.Y + r.H) / c.rowH))
	cellArea := c.colW * c.rowH

	for y := max(y0, 0); y < min(y1, c.mapRows); y++ {
		for x := max(x0, 0); x < min(x1, c.mapCols); x++ {
			ix := overlap(r.X, r.X+r.W, float64(x)*c.colW, float64(x+1)*c.colW)
			iy := overlap(r.Y, r.Y+r.H, float64(y)*c.rowH, float64(y+1)*c.rowH)
			if ix <= 0 || iy <= 0 {
				continue
			}
			visit(span{x: x, y: y + hudRows, coverage: ix * iy / cellArea})
		}
	}
}

func overlap(a0, a1, b0, b1 float64) float64 {
	return math.Min(a1, b1) - math.Max(a0, b0)
}

// center 返回矩形中心所在的终端单元
func (c *Compositor) center(r types.Rect) (x, y int) {
	x = int(math.Floor((r.X + r.W/2) / c.colW))
	y = int(math.Floor((r.Y+r.H/2)/c.rowH)) + hudRows
	return x, y
}

func alphaOf(col types.Color) float64 {
	return float64(col.A) / 255
}

func (c *Compositor) fill(buf *Buffer, r types.Rect, col colorful.Color, alpha float64) {
	if r.W*r.H < c.colW*c.rowH*glyphCoverage {
		// 粒子等小矩形画成一个点
		x, y := c.center(r)
		if y < hudRows || x >= c.mapCols || y >= c.mapRows+hudRows {
			return
		}
		if cell := buf.At(x, y); cell != nil {
			buf.SetRune(x, y, '•', cell.Bg.BlendRgb(col, alpha).Clamped())
		}
		return
	}
	c.spans(r, func(s span) {
		buf.Blend(s.x, s.y, col, alpha*math.Min(1, s.coverage))
	})
}

func (c *Compositor) glyph(buf *Buffer, r types.Rect, ch rune, fg colorful.Color) {
	c.spans(r, func(s span) {
		if s.coverage >= 0.5 {
			buf.SetRune(s.x, s.y, ch, fg)
		}
	})
}

func isShadow(tint types.Color) bool {
	return tint.R == 0 && tint.G == 0 && tint.B == 0 && tint.A < 255
}

func (c *Compositor) composeMap(buf *Buffer, cmd *types.DrawCommand, r types.Rect) {
	switch cmd.Kind {
	case types.DrawFillRect:
		c.fill(buf, r, FromColor(cmd.Color), alphaOf(cmd.Color))
	case types.DrawTexture:
		c.composeTexture(buf, cmd, r)
	case types.DrawText:
		x, y := c.center(types.Rect{X: r.X, Y: r.Y})
		buf.Text(x, y, cmd.Text, FromColor(cmd.Color))
	}
}

func (c *Compositor) composeTexture(buf *Buffer, cmd *types.DrawCommand, r types.Rect) {
	if label, ok := game.OverlayLabels[cmd.Texture]; ok {
		if isShadow(cmd.Color) {
			return
		}
		x, y := c.center(r)
		x -= len(label.Text) / 2
		buf.Text(x, y, label.Text, c.text)
		return
	}

	if isShadow(cmd.Color) {
		c.fill(buf, r, colorful.Color{}, alphaOf(cmd.Color))
		return
	}

	alpha := alphaOf(cmd.Color)
	switch cmd.Texture {
	case types.TextureGrass1:
		c.fill(buf, r, c.grass[0], alpha)
	case types.TextureGrass2:
		c.fill(buf, r, c.grass[1], alpha)
	case types.TextureCheese:
		c.fill(buf, r, cheeseColor, alpha)
	case types.TextureEyes:
		c.glyph(buf, r, '•', eyeColor)
	case types.TextureEyesDead:
		c.glyph(buf, r, '×', deadColor)
	case types.TextureTongue:
		// 伸出不到一半时不显示
		if cmd.Src != nil && cmd.Src.H < c.cellSize/2 {
			return
		}
		ch := '|'
		if a := math.Mod(cmd.Angle, 180); a != 0 {
			ch = '-'
		}
		c.glyph(buf, r, ch, tongueColor)
	}
}

func (c *Compositor) composeScreen(buf *Buffer, cmd *types.DrawCommand) {
	if cmd.Kind != types.DrawText {
		return
	}
	buf.Text(1, 0, cmd.Text, FromColor(cmd.Color))
}
