package services

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestStorage 在临时 HOME 下打开 gdata 存储
func openTestStorage(t *testing.T, appName string) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)

	gdataManager, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return gdataManager
}

// TestDefaultSettings 测试 DefaultSettings() 返回正确的默认值
func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings == nil {
		t.Fatal("DefaultSettings() returned nil")
	}
	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
	if settings.BestScore != 0 {
		t.Errorf("BestScore: got %d, want 0", settings.BestScore)
	}
}

// TestNewSettingsManagerNilGdata 测试 gdataManager 为 nil 时的降级场景
func TestNewSettingsManagerNilGdata(t *testing.T) {
	sm, err := NewSettingsManager(nil)
	if err != nil {
		t.Fatalf("NewSettingsManager(nil) error: %v", err)
	}
	if sm == nil {
		t.Fatal("NewSettingsManager(nil) returned nil")
	}

	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("Degraded mode SoundVolume: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}
}

// TestSettingsLoadSave 测试 Load() 和 Save() 功能
func TestSettingsLoadSave(t *testing.T) {
	gdataManager := openTestStorage(t, "test_cnake_settings")

	sm1, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}

	sm1.SetSoundVolume(0.6)
	sm1.SetSoundEnabled(false)
	sm1.SetFullscreen(true)
	sm1.RecordScore(42)

	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error on reload: %v", err)
	}

	settings := sm2.GetSettings()
	if settings.SoundVolume != 0.6 {
		t.Errorf("Loaded SoundVolume: got %v, want 0.6", settings.SoundVolume)
	}
	if settings.SoundEnabled {
		t.Error("Loaded SoundEnabled: got true, want false")
	}
	if !settings.Fullscreen {
		t.Error("Loaded Fullscreen: got false, want true")
	}
	if settings.BestScore != 42 {
		t.Errorf("Loaded BestScore: got %d, want 42", settings.BestScore)
	}
}

// TestSettingsLoadCorrupted 测试损坏的数据回退到默认设置
func TestSettingsLoadCorrupted(t *testing.T) {
	gdataManager := openTestStorage(t, "test_cnake_settings_corrupted")

	if err := gdataManager.SaveObjectProp(settingsObject, settingsProperty, []byte("soundVolume: [")); err != nil {
		t.Fatalf("SaveObjectProp() error: %v", err)
	}

	sm, err := NewSettingsManager(gdataManager)
	if err != nil {
		t.Fatalf("NewSettingsManager() error: %v", err)
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("SoundVolume after corrupted load: got %v, want 0.8", sm.GetSettings().SoundVolume)
	}

	if err := sm.Load(); err == nil {
		t.Error("Load() with corrupted data should return an error")
	}
}

// TestSetSoundVolumeClamp 测试 SetSoundVolume 范围校验
func TestSetSoundVolumeClamp(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-0.5, 0.0},
		{1.5, 1.0},
		{-100, 0.0},
		{100, 1.0},
	}

	for _, tt := range tests {
		sm.SetSoundVolume(tt.input)
		if sm.GetSettings().SoundVolume != tt.expected {
			t.Errorf("SetSoundVolume(%v): got %v, want %v",
				tt.input, sm.GetSettings().SoundVolume, tt.expected)
		}
	}
}

// TestSetSoundEnabled 测试 SetSoundEnabled 功能
func TestSetSoundEnabled(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	sm.SetSoundEnabled(false)
	if sm.GetSettings().SoundEnabled {
		t.Error("After SetSoundEnabled(false): got true, want false")
	}

	sm.SetSoundEnabled(true)
	if !sm.GetSettings().SoundEnabled {
		t.Error("After SetSoundEnabled(true): got false, want true")
	}
}

// TestRecordScore 测试只有更高的分数会刷新最高分
func TestRecordScore(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if !sm.RecordScore(5) {
		t.Error("RecordScore(5) on empty record: got false, want true")
	}
	if sm.RecordScore(3) {
		t.Error("RecordScore(3) below best: got true, want false")
	}
	if sm.RecordScore(5) {
		t.Error("RecordScore(5) equal to best: got true, want false")
	}
	if sm.GetSettings().BestScore != 5 {
		t.Errorf("BestScore: got %d, want 5", sm.GetSettings().BestScore)
	}
}

// TestSaveNilGdataManager 测试降级模式下 Save() 不报错
func TestSaveNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)

	if err := sm.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got: %v", err)
	}
}

// TestLoadNilGdataManager 测试降级模式下 Load() 使用默认设置
func TestLoadNilGdataManager(t *testing.T) {
	sm, _ := NewSettingsManager(nil)
	sm.SetSoundVolume(0.3)

	if err := sm.Load(); err != nil {
		t.Errorf("Load() in degraded mode should return nil, got: %v", err)
	}
	if sm.GetSettings().SoundVolume != 0.8 {
		t.Errorf("After Load() in degraded mode, SoundVolume: got %v, want 0.8",
			sm.GetSettings().SoundVolume)
	}
}

// TestClampVolume 测试 clampVolume 辅助函数
func TestClampVolume(t *testing.T) {
	tests := []struct {
		input    float64
		expected float64
	}{
		{0.5, 0.5},
		{0.0, 0.0},
		{1.0, 1.0},
		{-1.0, 0.0},
		{2.0, 1.0},
		{0.001, 0.001},
	}

	for _, tt := range tests {
		if got := clampVolume(tt.input); got != tt.expected {
			t.Errorf("clampVolume(%v): got %v, want %v", tt.input, got, tt.expected)
		}
	}
}

// TestDecodeSettingsPartialProfile 缺失字段保持默认，越界值被修正
func TestDecodeSettingsPartialProfile(t *testing.T) {
	s, err := decodeSettings([]byte("bestScore: -7\nsoundVolume: 3\n"))
	if err != nil {
		t.Fatalf("decodeSettings() error: %v", err)
	}
	if s.SoundVolume != 1.0 {
		t.Errorf("SoundVolume: got %v, want 1.0", s.SoundVolume)
	}
	if s.BestScore != 0 {
		t.Errorf("BestScore: got %d, want 0", s.BestScore)
	}
	if !s.SoundEnabled {
		t.Error("SoundEnabled: got false, want default true")
	}
	if s.Fullscreen {
		t.Error("Fullscreen: got true, want default false")
	}

	if _, err := decodeSettings([]byte("soundVolume: [")); err == nil {
		t.Error("decodeSettings() with malformed YAML should return an error")
	}
}
