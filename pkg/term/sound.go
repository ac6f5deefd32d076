package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gopxl/beep/speaker"

	synth "github.com/decker502/cnake/internal/audio"
	"github.com/decker502/cnake/pkg/types"
)

// SpeakerSound 通过 beep speaker 播放合成音效，实现 game.SoundPlayer
type SpeakerSound struct {
	volume  float64
	enabled bool
}

// NewSpeakerSound 初始化音频设备
// 失败时调用方可以继续无声运行。
func NewSpeakerSound(volume float64) (*SpeakerSound, error) {
	rate := synth.SampleRate
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return &SpeakerSound{volume: volume, enabled: true}, nil
}

// Play 实现 game.SoundPlayer
func (s *SpeakerSound) Play(id types.SoundID) {
	if !s.enabled || id < 0 || id >= types.SoundCount {
		return
	}
	speaker.Play(synth.Streamer(id, s.volume, synth.SampleRate))
}

// Toggle 切换音效开关并返回新状态
func (s *SpeakerSound) Toggle() bool {
	s.enabled = !s.enabled
	log.Printf("[Term] sound enabled: %v", s.enabled)
	return s.enabled
}

// Close 释放音频设备
func (s *SpeakerSound) Close() {
	speaker.Close()
}
