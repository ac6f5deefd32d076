package services

import (
	"bytes"
	"fmt"
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	synth "github.com/decker502/cnake/internal/audio"
	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/game"
	"github.com/decker502/cnake/pkg/types"
)

// labelLineHeight 文字贴图行高相对字号的比例
const labelLineHeight = 1.25

// ResourceManager is responsible for the textures, fonts and sound players
// used by the ebiten frontend.
//
// Cell textures (eyes, tongue, grass, cheese) are drawn procedurally at the
// configured cell size so that source rectangles expressed in cell pixels
// map directly onto them. Overlay labels are rendered once with the Go fonts.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. Call it from the game loop only.
type ResourceManager struct {
	cfg *config.GameConfig

	textures      [types.TextureCount]*ebiten.Image
	regularSource *text.GoTextFaceSource
	boldSource    *text.GoTextFaceSource
	fontFaceCache map[float64]*text.GoTextFace

	audioContext *audio.Context            // nil 时不加载音效
	audioCache   map[types.SoundID]*audio.Player
}

// NewResourceManager creates a ResourceManager and parses the embedded Go fonts.
//
// Parameters:
//   - cfg: validated game configuration, used for cell size and colors.
//   - audioContext: audio context for sound players, may be nil.
//
// Returns:
//   - A ResourceManager with empty caches. Call LoadTextures before drawing.
//   - An error if the font data cannot be parsed.
func NewResourceManager(cfg *config.GameConfig, audioContext *audio.Context) (*ResourceManager, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create regular font source: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to create bold font source: %w", err)
	}

	return &ResourceManager{
		cfg:           cfg,
		regularSource: regular,
		boldSource:    bold,
		fontFaceCache: make(map[float64]*text.GoTextFace),
		audioContext:  audioContext,
		audioCache:    make(map[types.SoundID]*audio.Player),
	}, nil
}

// LoadTextures builds every texture. Safe to call again to rebuild.
func (rm *ResourceManager) LoadTextures() error {
	cs := rm.cfg.Grid.CellSize
	if cs <= 0 {
		return fmt.Errorf("invalid cell size %d", cs)
	}

	rm.textures[types.TextureEyes] = drawEyes(cs, false)
	rm.textures[types.TextureEyesDead] = drawEyes(cs, true)
	rm.textures[types.TextureTongue] = drawTongue(cs)
	rm.textures[types.TextureGrass1] = drawGrass(cs, rm.cfg.Colors.MapBackground.Color(), 0)
	rm.textures[types.TextureGrass2] = drawGrass(cs, shade(rm.cfg.Colors.MapBackground.Color(), 10), 1)
	rm.textures[types.TextureCheese] = drawCheese(cs)

	textColor := ToColor(rm.cfg.Colors.Text.Color())
	for id, label := range game.OverlayLabels {
		img, err := rm.renderLabel(label, textColor)
		if err != nil {
			return fmt.Errorf("failed to render label %s: %w", id, err)
		}
		rm.textures[id] = img
	}

	log.Printf("[ResourceManager] Textures loaded (cell %dpx)", cs)
	return nil
}

// Texture returns the texture for id, or nil before LoadTextures.
func (rm *ResourceManager) Texture(id types.TextureID) *ebiten.Image {
	if id < 0 || id >= types.TextureCount {
		return nil
	}
	return rm.textures[id]
}

// TextureSize implements game.Assets.
func (rm *ResourceManager) TextureSize(id types.TextureID) (w, h int) {
	img := rm.Texture(id)
	if img == nil {
		return 0, 0
	}
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// Font returns a cached regular face of the given size.
func (rm *ResourceManager) Font(size float64) *text.GoTextFace {
	if face, ok := rm.fontFaceCache[size]; ok {
		return face
	}
	face := &text.GoTextFace{
		Source:    rm.regularSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[size] = face
	return face
}

func (rm *ResourceManager) renderLabel(label game.Label, clr color.Color) (*ebiten.Image, error) {
	face := &text.GoTextFace{
		Source:    rm.boldSource,
		Size:      label.Size,
		Direction: text.DirectionLeftToRight,
	}
	lineSpacing := label.Size * labelLineHeight
	w, h := text.Measure(label.Text, face, lineSpacing)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("label %q has empty bounds", label.Text)
	}

	img := ebiten.NewImage(int(math.Ceil(w)), int(math.Ceil(h)))
	op := &text.DrawOptions{}
	op.LineSpacing = lineSpacing
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(img, label.Text, face, op)
	return img, nil
}

// LoadSoundEffect returns a cached player for a synthesized sound.
//
// The PCM data is rendered at full volume. The caller scales it with
// Player.SetVolume.
func (rm *ResourceManager) LoadSoundEffect(id types.SoundID) (*audio.Player, error) {
	if player, ok := rm.audioCache[id]; ok {
		return player, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for sound %s", id)
	}

	stream, err := synth.NewPCMStream(id, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to synthesize sound %s: %w", id, err)
	}
	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", id, err)
	}

	rm.audioCache[id] = player
	return player, nil
}

// GetAudioPlayer returns a previously loaded player, or nil.
func (rm *ResourceManager) GetAudioPlayer(id types.SoundID) *audio.Player {
	return rm.audioCache[id]
}

// ToColor 把非预乘的 types.Color 转换为 image/color 颜色
func ToColor(c types.Color) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func shade(c types.Color, d int) types.Color {
	ch := func(v uint8) uint8 {
		n := int(v) - d
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return uint8(n)
	}
	return types.Color{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}

// drawEyes 朝上的一双眼睛，dead 时画成两个叉
func drawEyes(cs int, dead bool) *ebiten.Image {
	img := ebiten.NewImage(cs, cs)
	s := float32(cs)
	r := s * 0.14
	for _, cx := range []float32{s * 0.3, s * 0.7} {
		cy := s * 0.4
		if dead {
			w := s * 0.06
			vector.StrokeLine(img, cx-r, cy-r, cx+r, cy+r, w, color.Black, true)
			vector.StrokeLine(img, cx-r, cy+r, cx+r, cy-r, w, color.Black, true)
			continue
		}
		vector.DrawFilledCircle(img, cx, cy, r, color.White, true)
		vector.DrawFilledCircle(img, cx, cy-r*0.35, r*0.5, color.Black, true)
	}
	return img
}

// drawTongue 从格子底部伸向顶部的分叉舌头
func drawTongue(cs int) *ebiten.Image {
	img := ebiten.NewImage(cs, cs)
	s := float32(cs)
	red := color.RGBA{R: 220, G: 40, B: 60, A: 255}
	w := s * 0.08
	mid := s / 2
	fork := s * 0.35

	vector.StrokeLine(img, mid, s, mid, fork, w, red, true)
	vector.StrokeLine(img, mid, fork, mid-s*0.12, s*0.1, w, red, true)
	vector.StrokeLine(img, mid, fork, mid+s*0.12, s*0.1, w, red, true)
	return img
}

// drawGrass 草地格子，variant 决定草叶的排布
func drawGrass(cs int, base types.Color, variant int) *ebiten.Image {
	img := ebiten.NewImage(cs, cs)
	img.Fill(ToColor(base))

	s := float32(cs)
	blade := ToColor(shade(base, -18))
	w := s * 0.04
	for i := 0; i < 4; i++ {
		x := s * (0.15 + 0.22*float32(i))
		y := s * (0.3 + 0.35*float32((i+variant)%2))
		vector.StrokeLine(img, x, y, x+s*0.04, y-s*0.12, w, blade, true)
	}
	return img
}

// drawCheese 带孔的奶酪块
func drawCheese(cs int) *ebiten.Image {
	img := ebiten.NewImage(cs, cs)
	s := float32(cs)
	yellow := color.RGBA{R: 250, G: 200, B: 60, A: 255}
	rim := color.RGBA{R: 215, G: 160, B: 30, A: 255}

	vector.DrawFilledRect(img, s*0.12, s*0.22, s*0.76, s*0.6, rim, true)
	vector.DrawFilledRect(img, s*0.12, s*0.22, s*0.76, s*0.52, yellow, true)
	for _, h := range [][3]float32{{0.3, 0.4, 0.07}, {0.6, 0.35, 0.05}, {0.55, 0.6, 0.08}} {
		vector.DrawFilledCircle(img, s*h[0], s*h[1], s*h[2], rim, true)
	}
	return img
}
