package game

import (
	"github.com/decker502/cnake/pkg/config"
	"github.com/decker502/cnake/pkg/types"
)

// Label 覆盖层文字贴图的内容和字号
type Label struct {
	Text string
	Size float64
}

// OverlayLabels 各状态覆盖层显示的文字
var OverlayLabels = map[types.TextureID]Label{
	types.TextureTutorial: {Text: "WASD / arrows to move", Size: 22},
	types.TexturePaused:   {Text: "paused", Size: 44},
	types.TextureYouLost:  {Text: "you lost", Size: 52},
	types.TextureSpacebar: {Text: "press space", Size: 22},
}

// 等宽估算的字宽和行高比例
const (
	glyphWidthRatio  = 0.55
	lineHeightRatio  = 1.25
	hudFontRatio     = 0.6
	hudPulseIncrease = 0.25
)

type estimatedAssets struct {
	sizes [types.TextureCount][2]int
}

// DefaultAssets 在没有真实贴图时估算贴图尺寸
// 格子贴图与格子等大，文字贴图按字号估算。用于无界面运行和终端前端。
func DefaultAssets(cfg *config.GameConfig) Assets {
	a := &estimatedAssets{}
	cs := cfg.Grid.CellSize
	for id := types.TextureID(0); id < types.TextureCount; id++ {
		a.sizes[id] = [2]int{cs, cs}
	}
	for id, l := range OverlayLabels {
		a.sizes[id] = [2]int{
			int(float64(len(l.Text)) * l.Size * glyphWidthRatio),
			int(l.Size * lineHeightRatio),
		}
	}
	return a
}

func (a *estimatedAssets) TextureSize(id types.TextureID) (w, h int) {
	if id < 0 || id >= types.TextureCount {
		return 0, 0
	}
	return a.sizes[id][0], a.sizes[id][1]
}
