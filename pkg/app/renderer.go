package app

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/services"
	"github.com/decker502/cnake/pkg/types"
)

// Renderer 执行核心生成的 DrawList
//
// 地图层先画到离屏图像，再按震屏偏移拷贝到视口；覆盖层直接画在视口上，
// 因此遮罩和提示文字不会跟着震动。屏幕层使用窗口坐标。
type Renderer struct {
	resources *services.ResourceManager
	layout    config.Layout

	background    types.Color
	mapBackground types.Color

	mapImage  *ebiten.Image
	viewImage *ebiten.Image
}

// NewRenderer 创建渲染器，离屏图像按地图尺寸分配
func NewRenderer(cfg *config.GameConfig, resources *services.ResourceManager) *Renderer {
	l := cfg.Layout()
	return &Renderer{
		resources:     resources,
		layout:        l,
		background:    cfg.Colors.Background.Color(),
		mapBackground: cfg.Colors.MapBackground.Color(),
		mapImage:      ebiten.NewImage(l.MapW, l.MapH),
		viewImage:     ebiten.NewImage(l.MapW, l.MapH),
	}
}

// Render 把一帧的绘制命令合成到 screen
func (r *Renderer) Render(screen *ebiten.Image, dl *types.DrawList) {
	screen.Fill(services.ToColor(r.background))

	r.mapImage.Clear()
	r.execute(r.mapImage, dl, types.LayerMap)

	r.viewImage.Fill(services.ToColor(r.mapBackground))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(dl.ShakeX, dl.ShakeY)
	r.viewImage.DrawImage(r.mapImage, op)
	r.execute(r.viewImage, dl, types.LayerOverlay)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(r.layout.MapX), float64(r.layout.MapY))
	screen.DrawImage(r.viewImage, op)

	r.execute(screen, dl, types.LayerScreen)
}

func (r *Renderer) execute(dst *ebiten.Image, dl *types.DrawList, layer types.Layer) {
	for i := range dl.Commands {
		cmd := &dl.Commands[i]
		if cmd.Layer != layer {
			continue
		}
		switch cmd.Kind {
		case types.DrawFillRect:
			rc := cmd.Rect
			vector.DrawFilledRect(dst, float32(rc.X), float32(rc.Y), float32(rc.W), float32(rc.H), services.ToColor(cmd.Color), false)
		case types.DrawTexture:
			r.drawTexture(dst, cmd)
		case types.DrawText:
			r.drawText(dst, cmd)
		}
	}
}

// drawTexture 把贴图（或其源区域）缩放到目标矩形，绕目标中心旋转并调制颜色
func (r *Renderer) drawTexture(dst *ebiten.Image, cmd *types.DrawCommand) {
	img := r.resources.Texture(cmd.Texture)
	if img == nil {
		return
	}
	if cmd.Src != nil {
		s := cmd.Src
		rect := image.Rect(int(s.X), int(s.Y), int(s.X+s.W), int(s.Y+s.H)).Intersect(img.Bounds())
		if rect.Empty() {
			return
		}
		img = img.SubImage(rect).(*ebiten.Image)
	}

	b := img.Bounds()
	d := cmd.Rect
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(d.W/float64(b.Dx()), d.H/float64(b.Dy()))
	op.GeoM.Translate(-d.W/2, -d.H/2)
	if cmd.Angle != 0 {
		op.GeoM.Rotate(types.DegToRad(cmd.Angle))
	}
	op.GeoM.Translate(d.X+d.W/2, d.Y+d.H/2)
	op.ColorScale.ScaleWithColor(services.ToColor(cmd.Color))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

func (r *Renderer) drawText(dst *ebiten.Image, cmd *types.DrawCommand) {
	// 字号按半像素取整，限制字体缓存的大小
	size := math.Round(cmd.Size*2) / 2
	if size <= 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(cmd.Rect.X, cmd.Rect.Y)
	op.ColorScale.ScaleWithColor(services.ToColor(cmd.Color))
	text.Draw(dst, cmd.Text, r.resources.Font(size), op)
}
