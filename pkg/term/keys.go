package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/cnake/pkg/types"
)

// MapKey 把 tcell 按键事件转换为核心输入事件
// 返回 false 表示该按键不属于游戏。
func MapKey(ev *tcell.EventKey) (types.InputEvent, bool) {
	return mapKey(ev.Key(), ev.Rune())
}

func mapKey(k tcell.Key, r rune) (types.InputEvent, bool) {
	switch k {
	case tcell.KeyUp:
		return types.Press(types.KeyUp), true
	case tcell.KeyLeft:
		return types.Press(types.KeyLeft), true
	case tcell.KeyDown:
		return types.Press(types.KeyDown), true
	case tcell.KeyRight:
		return types.Press(types.KeyRight), true
	case tcell.KeyEscape:
		return types.Press(types.KeyEscape), true
	case tcell.KeyCtrlC:
		return types.Quit(), true
	case tcell.KeyRune:
	default:
		return types.InputEvent{}, false
	}

	var key types.Key
	switch unicode.ToLower(r) {
	case 'w':
		key = types.KeyUp
	case 'a':
		key = types.KeyLeft
	case 's':
		key = types.KeyDown
	case 'd':
		key = types.KeyRight
	case ' ':
		key = types.KeySpace
	case 'r':
		key = types.KeyDebugShrink
	case 'e':
		key = types.KeyDebugGrow
	case 'q':
		key = types.KeyDebugShake
	default:
		return types.InputEvent{}, false
	}
	return types.Press(key), true
}
