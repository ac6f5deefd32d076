package services

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/stretchr/testify/assert"

	"github.com/decker502/cnake/pkg/game"
	"github.com/decker502/cnake/pkg/types"
)

var _ game.SoundPlayer = (*AudioManager)(nil)

type countingLoader struct {
	calls map[types.SoundID]int
}

func (l *countingLoader) LoadSoundEffect(id types.SoundID) (*audio.Player, error) {
	if l.calls == nil {
		l.calls = make(map[types.SoundID]int)
	}
	l.calls[id]++
	return nil, errors.New("no audio device")
}

func TestAudioManager_DisabledSkipsLoading(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundEnabled(false)
	loader := &countingLoader{}
	am := NewAudioManager(loader, sm)

	assert.False(t, am.PlaySound(types.SoundEat))
	assert.Zero(t, loader.calls[types.SoundEat])
}

func TestAudioManager_FailedLoadNotRetried(t *testing.T) {
	loader := &countingLoader{}
	am := NewAudioManager(loader, nil)

	assert.False(t, am.PlaySound(types.SoundDeath))
	assert.False(t, am.PlaySound(types.SoundDeath))
	am.Play(types.SoundDeath)
	assert.Equal(t, 1, loader.calls[types.SoundDeath])
}

func TestAudioManager_PreloadTriesEverySound(t *testing.T) {
	loader := &countingLoader{}
	am := NewAudioManager(loader, nil)

	am.Preload()
	for id := types.SoundID(0); id < types.SoundCount; id++ {
		assert.Equal(t, 1, loader.calls[id], "sound %s", id)
	}
}

func TestAudioManager_ToggleSound(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	am := NewAudioManager(&countingLoader{}, sm)

	assert.True(t, am.SoundEnabled())
	assert.False(t, am.ToggleSound())
	assert.False(t, sm.GetSettings().SoundEnabled)
	assert.True(t, am.ToggleSound())

	// 没有设置管理器时音效始终开启
	bare := NewAudioManager(nil, nil)
	assert.True(t, bare.ToggleSound())
	assert.False(t, bare.PlaySound(types.SoundEat))
}

func TestAudioManager_DefaultVolume(t *testing.T) {
	am := NewAudioManager(nil, nil)
	assert.Equal(t, 0.8, am.getSoundVolume())

	sm, _ := NewSettingsManager(nil)
	sm.SetSoundVolume(0.25)
	assert.Equal(t, 0.25, NewAudioManager(nil, sm).getSoundVolume())
}

func TestResourceManager_NoAudioContext(t *testing.T) {
	rm, err := NewResourceManager(nil, nil)
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}

	_, err = rm.LoadSoundEffect(types.SoundEat)
	assert.Error(t, err)
	assert.Nil(t, rm.GetAudioPlayer(types.SoundEat))

	w, h := rm.TextureSize(types.TextureCheese)
	assert.Zero(t, w)
	assert.Zero(t, h)
	assert.Nil(t, rm.Texture(types.TextureCount))
}

func TestResourceManager_FontCache(t *testing.T) {
	rm, err := NewResourceManager(nil, nil)
	if err != nil {
		t.Fatalf("NewResourceManager() error: %v", err)
	}

	f1 := rm.Font(24)
	f2 := rm.Font(24)
	assert.Same(t, f1, f2)
	assert.Equal(t, 24.0, f1.Size)
	assert.NotSame(t, f1, rm.Font(30))
}
