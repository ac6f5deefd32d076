// Package audio 用 beep 合成游戏音效，不依赖任何音频文件
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/decker502/cnake/pkg/types"
)

// SampleRate 所有音效的采样率
const SampleRate = beep.SampleRate(48000)

// WaveType 振荡器波形
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator 生成频率线性滑动的原始波形
type oscillator struct {
	from, to float64
	phase    float64
	position int
	total    int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator 创建从 from Hz 滑到 to Hz、持续 d 的振荡器
func NewOscillator(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:  from,
		to:    to,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
		rng:   rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope 线性起音和释音
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope 给 s 加上 attack/release 包络
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release && e.release > 0 {
			vol = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume 线性音量转换为 beep 的对数音量，0 时静音
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

type tone struct {
	from, to float64
	d        time.Duration
	wave     WaveType
	gain     float64
}

func (t tone) streamer(rate beep.SampleRate) beep.Streamer {
	osc := t.source(rate)
	shaped := NewEnvelope(osc, t.d, 4*time.Millisecond, t.d/2, rate)
	return newVolume(shaped, t.gain)
}

// source 固定音高的正弦波直接用 beep 的生成器，其余走滑音振荡器
func (t tone) source(rate beep.SampleRate) beep.Streamer {
	if t.wave == WaveSine && t.from == t.to {
		if sine, err := generators.SineTone(rate, t.from); err == nil {
			return beep.Take(rate.N(t.d), sine)
		}
	}
	return NewOscillator(t.from, t.to, t.d, t.wave, rate)
}

// recipes 每个音效由依次播放的若干音组成
var recipes = [types.SoundCount][]tone{
	// 上扬的两声短鸣
	types.SoundEat: {
		{from: 660, to: 880, d: 60 * time.Millisecond, wave: WaveSine, gain: 0.5},
		{from: 990, to: 1320, d: 80 * time.Millisecond, wave: WaveSine, gain: 0.4},
		{from: 1320, to: 1320, d: 40 * time.Millisecond, wave: WaveSine, gain: 0.2},
	},
	types.SoundShrink: {
		{from: 320, to: 140, d: 140 * time.Millisecond, wave: WaveSquare, gain: 0.25},
	},
	types.SoundDeath: {
		{from: 0, to: 0, d: 90 * time.Millisecond, wave: WaveNoise, gain: 0.3},
		{from: 220, to: 55, d: 380 * time.Millisecond, wave: WaveSaw, gain: 0.35},
	},
}

// Streamer 返回音效 id 的新 streamer，volume 为 [0,1] 线性音量
func Streamer(id types.SoundID, volume float64, rate beep.SampleRate) beep.Streamer {
	parts := recipes[id]
	streams := make([]beep.Streamer, 0, len(parts))
	for _, t := range parts {
		streams = append(streams, t.streamer(rate))
	}
	return newVolume(beep.Seq(streams...), volume)
}

// Duration 返回音效 id 的总时长
func Duration(id types.SoundID) time.Duration {
	var d time.Duration
	for _, t := range recipes[id] {
		d += t.d
	}
	return d
}
