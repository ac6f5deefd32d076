package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/cnake/pkg/types"
)

func TestBuffer_ClearAndBounds(t *testing.T) {
	b := NewBuffer(4, 3)
	bg := colorful.Color{R: 0.2, G: 0.3, B: 0.4}
	b.Clear(bg)

	w, h := b.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.Equal(t, ' ', b.At(3, 2).Rune)
	assert.Equal(t, bg, b.At(0, 0).Bg)
	assert.Nil(t, b.At(4, 0))
	assert.Nil(t, b.At(0, -1))
}

func TestBuffer_Blend(t *testing.T) {
	b := NewBuffer(2, 1)
	b.Clear(colorful.Color{})

	white := colorful.Color{R: 1, G: 1, B: 1}
	b.Blend(0, 0, white, 0.5)
	assert.InDelta(t, 0.5, b.At(0, 0).Bg.R, 1e-9)
	assert.InDelta(t, 0.5, b.At(0, 0).Fg.G, 1e-9)

	// alpha 超过 1 按 1 处理
	b.Blend(1, 0, white, 3)
	assert.True(t, b.At(1, 0).Bg.AlmostEqualRgb(white))

	// 越界和 alpha 为 0 不产生影响
	b.Blend(5, 5, white, 1)
	b.Blend(0, 0, white, 0)
	assert.InDelta(t, 0.5, b.At(0, 0).Bg.R, 1e-9)
}

func TestBuffer_TextClipsAtEdge(t *testing.T) {
	b := NewBuffer(5, 1)
	b.Clear(colorful.Color{})
	b.Text(2, 0, "snake", colorful.Color{R: 1})

	assert.Equal(t, ' ', b.At(1, 0).Rune)
	assert.Equal(t, 's', b.At(2, 0).Rune)
	assert.Equal(t, 'n', b.At(3, 0).Rune)
	assert.Equal(t, 'a', b.At(4, 0).Rune)
}

func TestBuffer_FlushToSimulationScreen(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(4, 2)

	b := NewBuffer(4, 2)
	b.Clear(colorful.Color{})
	b.SetRune(1, 1, 'x', colorful.Color{R: 1, G: 1, B: 1})
	b.Flush(screen)
	screen.Show()

	mainc, _, _, _ := screen.GetContent(1, 1)
	assert.Equal(t, 'x', mainc)
}

func TestFromColor(t *testing.T) {
	c := FromColor(types.RGB(255, 0, 51))
	assert.InDelta(t, 1.0, c.R, 1e-9)
	assert.InDelta(t, 0.0, c.G, 1e-9)
	assert.InDelta(t, 0.2, c.B, 1e-9)
}
