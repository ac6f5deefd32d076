// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "math"

// Color 是 8 位 RGBA 颜色
type Color struct {
	R, G, B, A uint8
}

// RGB 返回不透明颜色
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// WithAlpha 返回替换了透明度的颜色副本
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

var (
	// White 不改变贴图颜色的调制色
	White = RGB(255, 255, 255)
	// Black 纯黑
	Black = RGB(0, 0, 0)
)

// AlphaFromUnit 将 [0,1] 的比例转换为 0-255 的透明度（截断，与整型转换一致）
func AlphaFromUnit(u float64) uint8 {
	if u <= 0 {
		return 0
	}
	if u >= 1 {
		return 255
	}
	return uint8(u * 255)
}

// Rect 是像素坐标系下的矩形
type Rect struct {
	X, Y, W, H float64
}

// Offset 返回平移后的矩形
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Empty 报告矩形面积是否为零
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// TextureID 标识一张由资源加载方提供的贴图
type TextureID int

const (
	TextureEyes TextureID = iota
	TextureEyesDead
	TextureTongue
	TextureGrass1
	TextureGrass2
	TextureCheese
	TextureTutorial
	TexturePaused
	TextureYouLost
	TextureSpacebar

	TextureCount
)

var textureNames = [TextureCount]string{
	TextureEyes:     "eyes",
	TextureEyesDead: "eyes_dead",
	TextureTongue:   "tongue",
	TextureGrass1:   "grass1",
	TextureGrass2:   "grass2",
	TextureCheese:   "cheese",
	TextureTutorial: "tutorial",
	TexturePaused:   "paused",
	TextureYouLost:  "you_lost",
	TextureSpacebar: "spacebar",
}

// String 返回贴图名称
func (t TextureID) String() string {
	if t < 0 || t >= TextureCount {
		return "unknown"
	}
	return textureNames[t]
}

// Layer 决定绘制命令被合成到哪一层
type Layer int

const (
	// LayerMap 地图层，绘制到离屏地图后整体按震屏偏移拷贝
	LayerMap Layer = iota
	// LayerOverlay 地图视口内的覆盖层（遮罩、提示文字），不受震屏影响
	LayerOverlay
	// LayerScreen 窗口坐标系（HUD）
	LayerScreen
)

// DrawKind 绘制命令类型
type DrawKind int

const (
	// DrawFillRect 填充矩形
	DrawFillRect DrawKind = iota
	// DrawTexture 贴图拷贝（可选源区域与旋转）
	DrawTexture
	// DrawText 文本
	DrawText
)

// DrawCommand 描述一次绘制调用
//
// 对 DrawTexture：Src 为 nil 时使用整张贴图；Angle 以度为单位，
// 顺时针绕目标矩形中心旋转；Tint 对贴图颜色做乘法调制（White 表示不变）。
type DrawCommand struct {
	Kind    DrawKind
	Layer   Layer
	Rect    Rect
	Color   Color
	Texture TextureID
	Src     *Rect
	Angle   float64
	Text    string
	Size    float64
}

// DrawList 一帧内按顺序累积的绘制命令
type DrawList struct {
	Commands []DrawCommand

	// ShakeX, ShakeY 地图层的震屏偏移（像素）
	ShakeX, ShakeY float64
}

// Reset 清空命令，保留底层数组
func (d *DrawList) Reset() {
	d.Commands = d.Commands[:0]
	d.ShakeX, d.ShakeY = 0, 0
}

// FillRect 追加一个填充矩形
func (d *DrawList) FillRect(layer Layer, r Rect, c Color) {
	if r.Empty() || c.A == 0 {
		return
	}
	d.Commands = append(d.Commands, DrawCommand{
		Kind:  DrawFillRect,
		Layer: layer,
		Rect:  r,
		Color: c,
	})
}

// Blit 追加一次贴图拷贝
func (d *DrawList) Blit(layer Layer, tex TextureID, src *Rect, dst Rect, angle float64, tint Color) {
	if dst.Empty() || tint.A == 0 {
		return
	}
	if src != nil {
		s := *src
		if s.Empty() {
			return
		}
		src = &s
	}
	d.Commands = append(d.Commands, DrawCommand{
		Kind:    DrawTexture,
		Layer:   layer,
		Rect:    dst,
		Color:   tint,
		Texture: tex,
		Src:     src,
		Angle:   angle,
	})
}

// BlitShadow 以黑色调制、指定透明度在偏移位置拷贝贴图，作为投影
func (d *DrawList) BlitShadow(layer Layer, tex TextureID, src *Rect, dst Rect, angle float64, offset float64, alpha uint8) {
	d.Blit(layer, tex, src, dst.Offset(offset, offset), angle, Black.WithAlpha(alpha))
}

// Text 追加一段文本，(x, y) 为左上角
func (d *DrawList) Text(layer Layer, s string, x, y, size float64, c Color) {
	if s == "" || c.A == 0 {
		return
	}
	d.Commands = append(d.Commands, DrawCommand{
		Kind:  DrawText,
		Layer: layer,
		Rect:  Rect{X: x, Y: y},
		Color: c,
		Text:  s,
		Size:  size,
	})
}

// Count 返回指定类型和层的命令数量
func (d *DrawList) Count(kind DrawKind, layer Layer) int {
	n := 0
	for i := range d.Commands {
		if d.Commands[i].Kind == kind && d.Commands[i].Layer == layer {
			n++
		}
	}
	return n
}

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
