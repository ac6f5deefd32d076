package term

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/decker502/cnake/pkg/types"
)

// Cell 一个终端字符单元
type Cell struct {
	Rune rune
	Fg   colorful.Color
	Bg   colorful.Color
}

// Buffer 终端字符单元缓冲区，与具体屏幕无关
type Buffer struct {
	w, h  int
	cells []Cell
}

// NewBuffer 创建 w×h 的缓冲区
func NewBuffer(w, h int) *Buffer {
	return &Buffer{w: w, h: h, cells: make([]Cell, w*h)}
}

// Size 返回缓冲区尺寸
func (b *Buffer) Size() (w, h int) {
	return b.w, b.h
}

// Clear 用背景色填充所有单元并清除字符
func (b *Buffer) Clear(bg colorful.Color) {
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	}
}

// At 返回 (x, y) 处的单元，越界时返回 nil
func (b *Buffer) At(x, y int) *Cell {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return nil
	}
	return &b.cells[y*b.w+x]
}

// Blend 把单元的前景和背景按 alpha 向 c 混合
func (b *Buffer) Blend(x, y int, c colorful.Color, alpha float64) {
	cell := b.At(x, y)
	if cell == nil || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	cell.Bg = cell.Bg.BlendRgb(c, alpha).Clamped()
	cell.Fg = cell.Fg.BlendRgb(c, alpha).Clamped()
}

// SetRune 设置单元字符和前景色，背景保持不变
func (b *Buffer) SetRune(x, y int, r rune, fg colorful.Color) {
	cell := b.At(x, y)
	if cell == nil {
		return
	}
	cell.Rune = r
	cell.Fg = fg
}

// Text 从 (x, y) 开始逐字写入，超出右边界的部分被截断
func (b *Buffer) Text(x, y int, s string, fg colorful.Color) {
	for _, r := range s {
		b.SetRune(x, y, r, fg)
		x++
	}
}

// Flush 把缓冲区写入 tcell 屏幕，不调用 Show
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			c := &b.cells[y*b.w+x]
			screen.SetContent(x, y, c.Rune, nil, styleOf(c))
		}
	}
}

func styleOf(c *Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.Fg)).
		Background(tcellColor(c.Bg))
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// FromColor 把 types.Color 转换为不含透明度的 colorful.Color
func FromColor(c types.Color) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}
