package app

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/cnake/pkg/types"
)

// keyBindings 物理按键到核心按键的映射
var keyBindings = map[ebiten.Key]types.Key{
	ebiten.KeyW:          types.KeyUp,
	ebiten.KeyArrowUp:    types.KeyUp,
	ebiten.KeyA:          types.KeyLeft,
	ebiten.KeyArrowLeft:  types.KeyLeft,
	ebiten.KeyS:          types.KeyDown,
	ebiten.KeyArrowDown:  types.KeyDown,
	ebiten.KeyD:          types.KeyRight,
	ebiten.KeyArrowRight: types.KeyRight,
	ebiten.KeySpace:      types.KeySpace,
	ebiten.KeyEscape:     types.KeyEscape,

	// 调试按键，核心只在 debug 配置下响应
	ebiten.KeyR: types.KeyDebugShrink,
	ebiten.KeyE: types.KeyDebugGrow,
	ebiten.KeyQ: types.KeyDebugShake,
}

// TranslateKeys 把本帧新按下的按键转换为输入事件，保持到达顺序
// 未绑定的按键被忽略。
func TranslateKeys(dst []types.InputEvent, pressed []ebiten.Key) []types.InputEvent {
	for _, k := range pressed {
		if key, ok := keyBindings[k]; ok {
			dst = append(dst, types.Press(key))
		}
	}
	return dst
}
