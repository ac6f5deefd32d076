package services

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/decker502/cnake/pkg/utils"
)

// GameSettings 是跨局保存的玩家档案：音效偏好、窗口模式和最高分。
type GameSettings struct {
	SoundVolume  float64 `yaml:"soundVolume"`
	SoundEnabled bool    `yaml:"soundEnabled"`
	Fullscreen   bool    `yaml:"fullscreen"`
	BestScore    int     `yaml:"bestScore"`
}

// DefaultSettings 首次启动时的档案
func DefaultSettings() *GameSettings {
	return &GameSettings{SoundVolume: 0.8, SoundEnabled: true}
}

// sanitize 修正手改或损坏的档案值
func (s *GameSettings) sanitize() {
	s.SoundVolume = clampVolume(s.SoundVolume)
	if s.BestScore < 0 {
		s.BestScore = 0
	}
}

// decodeSettings 在默认档案之上解析 YAML，缺失的字段保持默认值
func decodeSettings(data []byte) (*GameSettings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	s.sanitize()
	return s, nil
}

// 档案在 gdata 中的位置：<app>/profile/cnake
const (
	settingsObject   = "profile"
	settingsProperty = "cnake"
)

// SettingsManager 持有当前档案，并在 gdata 可用时读写它。
// store 为 nil 时只在内存中生效，最高分不会跨会话保留。
type SettingsManager struct {
	store    *gdata.Manager
	settings *GameSettings
}

// OpenStorage 准备存储目录并打开 gdata。
// 出错时调用方可以把 nil 交给 NewSettingsManager 继续运行。
func OpenStorage(appName string) (*gdata.Manager, error) {
	if err := utils.EnsureStorageDir(appName); err != nil {
		return nil, fmt.Errorf("failed to prepare storage: %w", err)
	}
	if p := utils.StoragePath(appName); p != "" {
		log.Printf("[SettingsManager] Storage path: %s", p)
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage %q: %w", appName, err)
	}
	return m, nil
}

// NewSettingsManager 读取已保存的档案；读取失败不致命，记日志后用默认档案开局。
// 返回的 error 目前总是 nil。
func NewSettingsManager(store *gdata.Manager) (*SettingsManager, error) {
	sm := &SettingsManager{store: store, settings: DefaultSettings()}
	if err := sm.Load(); err != nil {
		log.Printf("[SettingsManager] Warning: %v (using defaults)", err)
	}
	return sm, nil
}

// Load 用存储中的档案替换内存档案。
// 没有存储或从未保存过时回到默认档案；出错时同样回到默认档案并返回错误。
func (sm *SettingsManager) Load() error {
	sm.settings = DefaultSettings()
	if sm.store == nil || !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("failed to read profile: %w", err)
	}
	s, err := decodeSettings(data)
	if err != nil {
		return fmt.Errorf("failed to decode profile: %w", err)
	}

	sm.settings = s
	log.Printf("[SettingsManager] Profile loaded (best=%d, sound=%v, fullscreen=%v)", s.BestScore, s.SoundEnabled, s.Fullscreen)
	return nil
}

// Save 写回当前档案，没有存储时什么也不做。
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}

	log.Printf("[SettingsManager] Profile saved (best=%d)", sm.settings.BestScore)
	return nil
}

// GetSettings 返回内存中的档案，修改后需 Save 才会落盘
func (sm *SettingsManager) GetSettings() *GameSettings {
	return sm.settings
}

// SetSoundVolume 设置音效音量，超出 [0, 1] 的值被截断
func (sm *SettingsManager) SetSoundVolume(volume float64) {
	sm.settings.SoundVolume = clampVolume(volume)
}

func (sm *SettingsManager) SetSoundEnabled(enabled bool) {
	sm.settings.SoundEnabled = enabled
}

// SetFullscreen 记录窗口模式，下次启动时生效
func (sm *SettingsManager) SetFullscreen(enabled bool) {
	sm.settings.Fullscreen = enabled
}

// RecordScore 一局结束时调用；只有严格高于最高分才更新并返回 true
func (sm *SettingsManager) RecordScore(score int) bool {
	if score <= sm.settings.BestScore {
		return false
	}
	sm.settings.BestScore = score
	return true
}

func clampVolume(volume float64) float64 {
	if volume < 0.0 {
		return 0.0
	}
	if volume > 1.0 {
		return 1.0
	}
	return volume
}
