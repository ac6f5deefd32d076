package game

import (
	"fmt"
	"math"

	"github.com/decker502/cnake/pkg/types"
	"github.com/decker502/cnake/pkg/utils"
)

// Draw 把当前帧的绘制命令追加到 dl
//
// 地图层（受震屏影响）：草地、边缘阴影、奶酪、蛇、粒子。
// 覆盖层（地图视口内）：变暗遮罩、状态提示、转场。
// 屏幕层：分数栏。
func (g *Game) Draw(dl *types.DrawList) {
	g.drawMap(dl)
	g.cheese.Draw(dl, types.LayerMap)
	g.snake.Draw(dl, types.LayerMap)
	g.particles.Draw(dl, types.LayerMap)
	dl.ShakeX, dl.ShakeY = float64(g.shakeX), float64(g.shakeY)

	g.drawFade(dl)
	g.drawStateOverlay(dl)
	g.drawTransition(dl)

	g.drawHUD(dl)
}

// drawMap 棋盘格草地，加上左边和上边的阴影带
func (g *Game) drawMap(dl *types.DrawList) {
	cs := float64(g.layout.CellSize)
	for y := 0; y < g.cfg.Grid.Rows; y++ {
		for x := 0; x < g.cfg.Grid.Cols; x++ {
			alt := x%2 == 0
			if y%2 == 0 {
				alt = !alt
			}
			tex := types.TextureGrass1
			if alt {
				tex = types.TextureGrass2
			}
			r := types.Rect{X: float64(x) * cs, Y: float64(y) * cs, W: cs, H: cs}
			dl.Blit(types.LayerMap, tex, nil, r, 0, types.White)
		}
	}

	band := float64(g.cfg.Effects.ShadowOffset * 2)
	shadow := types.Black.WithAlpha(uint8(g.cfg.Effects.ShadowAlpha))
	mapW, mapH := float64(g.layout.MapW), float64(g.layout.MapH)
	dl.FillRect(types.LayerMap, types.Rect{W: band, H: mapH}, shadow)
	dl.FillRect(types.LayerMap, types.Rect{X: band, W: mapW - band, H: band}, shadow)
}

func (g *Game) mapRect() types.Rect {
	return types.Rect{W: float64(g.layout.MapW), H: float64(g.layout.MapH)}
}

// drawFade 淡入时遮罩逐渐变淡，淡出时逐渐变深
func (g *Game) drawFade(dl *types.DrawList) {
	if !g.darkened {
		return
	}

	full := float64(g.cfg.Effects.DarkenAlpha)
	a := full
	fadeIn, fadeOut := &g.timers[TimerFadeIn], &g.timers[TimerFadeOut]
	switch {
	case fadeIn.IsActive():
		a = fadeIn.UnitProgress(false) * full
	case fadeOut.IsActive():
		a = fadeOut.UnitProgress(true) * full
	}

	dl.FillRect(types.LayerOverlay, g.mapRect(), types.Black.WithAlpha(uint8(a)))
}

func (g *Game) drawStateOverlay(dl *types.DrawList) {
	mapW, mapH := float64(g.layout.MapW), float64(g.layout.MapH)
	tick := float64(g.tick)
	bob := math.Sin(tick/10) * 5

	switch g.state {
	case StateTutorial:
		w, h := g.textureSize(types.TextureTutorial)
		g.blitLabel(dl, types.TextureTutorial, types.Rect{
			X: mapW/2 - w/2,
			Y: mapH - h*1.5 - bob,
			W: w,
			H: h,
		}, 0)

	case StatePaused:
		w, h := g.textureSize(types.TexturePaused)
		g.blitLabel(dl, types.TexturePaused, types.Rect{
			X: mapW/2 - w/2,
			Y: mapH/2 - h/2,
			W: w,
			H: h,
		}, 0)

	case StateDead:
		if !g.darkened {
			return
		}
		w, h := g.textureSize(types.TextureYouLost)
		g.blitLabel(dl, types.TextureYouLost, types.Rect{
			X: mapW/2 - w/2,
			Y: h * 4,
			W: w,
			H: h,
		}, math.Sin(tick/20)*3)

		w, h = g.textureSize(types.TextureSpacebar)
		g.blitLabel(dl, types.TextureSpacebar, types.Rect{
			X: mapW/2 - w/2,
			Y: mapH - h*3 - bob,
			W: w,
			H: h,
		}, 0)
	}
}

func (g *Game) textureSize(id types.TextureID) (w, h float64) {
	iw, ih := g.assets.TextureSize(id)
	return float64(iw), float64(ih)
}

func (g *Game) blitLabel(dl *types.DrawList, id types.TextureID, r types.Rect, angle float64) {
	dl.BlitShadow(types.LayerOverlay, id, nil, r, angle, float64(g.cfg.Effects.ShadowOffset), uint8(g.cfg.Effects.ShadowAlpha))
	dl.Blit(types.LayerOverlay, id, nil, r, angle, types.White)
}

// drawTransition 死亡时转场逐渐盖满地图，重新开始后逐渐揭开
func (g *Game) drawTransition(dl *types.DrawList) {
	t := &g.timers[TimerTransition]
	if !t.IsActive() {
		return
	}
	a := types.AlphaFromUnit(t.UnitProgress(g.state == StateDead))
	dl.FillRect(types.LayerOverlay, g.mapRect(), g.cfg.Effects.TransitionColor.Color().WithAlpha(a))
}

// HUDText 返回分数栏文字
func (g *Game) HUDText() string {
	return fmt.Sprintf("score %d   best %d", g.score, g.bestScore)
}

// HUDSize 返回分数栏字号，得分后短暂放大
func (g *Game) HUDSize() float64 {
	base := float64(g.layout.InfoH) * hudFontRatio
	pulse := utils.EaseOutQuad(g.timers[TimerScorePulse].UnitProgress(false))
	return base * (1 + hudPulseIncrease*pulse)
}

func (g *Game) drawHUD(dl *types.DrawList) {
	dl.Text(types.LayerScreen, g.HUDText(),
		float64(g.layout.InfoX), float64(g.layout.InfoY),
		g.HUDSize(), g.cfg.Colors.Text.Color())
}
