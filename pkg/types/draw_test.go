package types

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawList_SkipsInvisibleCommands(t *testing.T) {
	var dl DrawList

	dl.FillRect(LayerMap, Rect{W: 0, H: 10}, White)
	dl.FillRect(LayerMap, Rect{W: 10, H: 10}, White.WithAlpha(0))
	dl.Blit(LayerMap, TextureCheese, &Rect{W: 0, H: 4}, Rect{W: 10, H: 10}, 0, White)
	dl.Text(LayerScreen, "", 0, 0, 12, White)

	assert.Empty(t, dl.Commands)
}

func TestDrawList_BlitCopiesSource(t *testing.T) {
	var dl DrawList
	src := Rect{X: 1, Y: 2, W: 3, H: 4}

	dl.Blit(LayerMap, TextureTongue, &src, Rect{W: 10, H: 10}, 90, White)
	src.W = 100

	require.Len(t, dl.Commands, 1)
	assert.Equal(t, 3.0, dl.Commands[0].Src.W, "command must not alias the caller's rect")
	assert.Equal(t, 90.0, dl.Commands[0].Angle)
}

func TestDrawList_BlitShadow(t *testing.T) {
	var dl DrawList
	dl.BlitShadow(LayerMap, TextureCheese, nil, Rect{X: 10, Y: 20, W: 40, H: 40}, 0, 5, 60)

	require.Len(t, dl.Commands, 1)
	cmd := dl.Commands[0]
	assert.Equal(t, Rect{X: 15, Y: 25, W: 40, H: 40}, cmd.Rect)
	assert.Equal(t, Black.WithAlpha(60), cmd.Color)
	assert.Nil(t, cmd.Src)
}

func TestDrawList_ResetAndCount(t *testing.T) {
	var dl DrawList
	dl.FillRect(LayerMap, Rect{W: 1, H: 1}, White)
	dl.FillRect(LayerOverlay, Rect{W: 1, H: 1}, White)
	dl.Text(LayerScreen, "score 1", 0, 0, 12, White)
	dl.ShakeX, dl.ShakeY = 3, -2

	assert.Equal(t, 1, dl.Count(DrawFillRect, LayerMap))
	assert.Equal(t, 1, dl.Count(DrawText, LayerScreen))
	assert.Equal(t, 0, dl.Count(DrawTexture, LayerMap))

	dl.Reset()
	assert.Empty(t, dl.Commands)
	assert.Zero(t, dl.ShakeX)
	assert.Zero(t, dl.ShakeY)
}

func TestAlphaFromUnit(t *testing.T) {
	assert.Equal(t, uint8(0), AlphaFromUnit(-0.5))
	assert.Equal(t, uint8(127), AlphaFromUnit(0.5))
	assert.Equal(t, uint8(255), AlphaFromUnit(1))
	assert.Equal(t, uint8(255), AlphaFromUnit(2))
}

func TestTextureID_String(t *testing.T) {
	assert.Equal(t, "eyes_dead", TextureEyesDead.String())
	assert.Equal(t, "unknown", TextureCount.String())
	assert.InDelta(t, math.Pi/2, DegToRad(90), 1e-12)
}
