package services

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/decker502/cnake/pkg/types"
)

// soundLoader 加载音效播放器，ResourceManager 实现该接口
type soundLoader interface {
	LoadSoundEffect(id types.SoundID) (*audio.Player, error)
}

// AudioManager 音效管理器
// 职责：
//   - 实现 game.SoundPlayer，按音效 ID 播放合成音效
//   - 播放时应用 SettingsManager 中的开关和音量
type AudioManager struct {
	loader          soundLoader
	settingsManager *SettingsManager // 可为 nil，此时使用默认音量
	soundPlayers    map[types.SoundID]*audio.Player
	failed          map[types.SoundID]bool
}

// NewAudioManager 创建新的音效管理器
//
// 参数：
//   - loader: 音效加载方，通常是 ResourceManager
//   - sm: SettingsManager 实例，可为 nil
func NewAudioManager(loader soundLoader, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		loader:          loader,
		settingsManager: sm,
		soundPlayers:    make(map[types.SoundID]*audio.Player),
		failed:          make(map[types.SoundID]bool),
	}
}

// Play 实现 game.SoundPlayer
func (am *AudioManager) Play(id types.SoundID) {
	am.PlaySound(id)
}

// PlaySound 播放音效，返回是否成功播放
func (am *AudioManager) PlaySound(id types.SoundID) bool {
	if !am.SoundEnabled() {
		return false
	}

	player := am.getSoundPlayer(id)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", id, err)
	}
	player.Play()
	return true
}

// Preload 预先创建所有音效播放器，避免第一次播放时卡顿
func (am *AudioManager) Preload() {
	for id := types.SoundID(0); id < types.SoundCount; id++ {
		am.getSoundPlayer(id)
	}
}

// SoundEnabled 报告音效是否开启
func (am *AudioManager) SoundEnabled() bool {
	if am.settingsManager == nil {
		return true
	}
	return am.settingsManager.GetSettings().SoundEnabled
}

// ToggleSound 切换音效开关并返回新状态
// 没有 SettingsManager 时音效始终开启。
func (am *AudioManager) ToggleSound() bool {
	if am.settingsManager == nil {
		return true
	}
	enabled := !am.settingsManager.GetSettings().SoundEnabled
	am.settingsManager.SetSoundEnabled(enabled)
	log.Printf("[AudioManager] Sound enabled: %v", enabled)
	return enabled
}

// getSoundPlayer 获取或加载音效播放器，加载失败的音效不再重试
func (am *AudioManager) getSoundPlayer(id types.SoundID) *audio.Player {
	if player, ok := am.soundPlayers[id]; ok {
		return player
	}
	if am.failed[id] || am.loader == nil {
		return nil
	}

	player, err := am.loader.LoadSoundEffect(id)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", id, err)
		am.failed[id] = true
		return nil
	}
	am.soundPlayers[id] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8 // 默认值
}
