package app

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decker502/cnake/pkg/embedded"
	"github.com/decker502/cnake/pkg/types"
)

func TestTranslateKeys_KeepsOrderAndDropsUnbound(t *testing.T) {
	pressed := []ebiten.Key{ebiten.KeyW, ebiten.KeyF11, ebiten.KeyArrowLeft, ebiten.KeySpace, ebiten.KeyEscape}

	events := TranslateKeys(nil, pressed)

	assert.Equal(t, []types.InputEvent{
		types.Press(types.KeyUp),
		types.Press(types.KeyLeft),
		types.Press(types.KeySpace),
		types.Press(types.KeyEscape),
	}, events)
}

func TestTranslateKeys_WASDMatchesArrows(t *testing.T) {
	pairs := [][2]ebiten.Key{
		{ebiten.KeyW, ebiten.KeyArrowUp},
		{ebiten.KeyA, ebiten.KeyArrowLeft},
		{ebiten.KeyS, ebiten.KeyArrowDown},
		{ebiten.KeyD, ebiten.KeyArrowRight},
	}
	for _, p := range pairs {
		a := TranslateKeys(nil, []ebiten.Key{p[0]})
		b := TranslateKeys(nil, []ebiten.Key{p[1]})
		assert.Equal(t, a, b, "%v vs %v", p[0], p[1])
	}
}

func TestTranslateKeys_DebugKeys(t *testing.T) {
	events := TranslateKeys(nil, []ebiten.Key{ebiten.KeyR, ebiten.KeyE, ebiten.KeyQ})
	require.Len(t, events, 3)
	assert.Equal(t, types.KeyDebugShrink, events[0].Key)
	assert.Equal(t, types.KeyDebugGrow, events[1].Key)
	assert.Equal(t, types.KeyDebugShake, events[2].Key)
}

func TestLoadConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/game.yaml": &fstest.MapFile{Data: []byte("grid:\n  rows: 9\n  cols: 11\n")},
	})

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.Grid.Rows)
	assert.Equal(t, 11, cfg.Grid.Cols)
	// 未写出的字段保持默认值
	assert.Equal(t, 40, cfg.Grid.CellSize)
}

func TestLoadConfig_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_RepositoryDefaults(t *testing.T) {
	// 仓库中的 data/game.yaml 必须能通过校验
	cfg, err := LoadConfig(filepath.Join("..", "..", "data", "game.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 17, cfg.Grid.Cols)
	assert.Equal(t, 15, cfg.Grid.Rows)
}
