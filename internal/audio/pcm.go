package audio

import (
	"fmt"
	"io"

	"github.com/gopxl/beep"

	"github.com/decker502/cnake/pkg/types"
)

// PCMStream 16 位小端立体声 PCM 数据，实现 Ebitengine audio 需要的 io.ReadSeeker
type PCMStream struct {
	data       []byte
	sampleRate int64
	offset     int64
}

// RenderPCM 把 streamer 渲染成 16 位小端立体声 PCM
func RenderPCM(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				pcm := int16(clampSample(v) * 32767)
				out = append(out, byte(pcm), byte(pcm>>8))
			}
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func clampSample(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// NewPCMStream 合成音效 id 并返回可播放的 PCM 流
func NewPCMStream(id types.SoundID, volume float64) (*PCMStream, error) {
	if id < 0 || id >= types.SoundCount {
		return nil, fmt.Errorf("unknown sound id %d", int(id))
	}
	data := RenderPCM(Streamer(id, volume, SampleRate))
	if len(data) == 0 {
		return nil, fmt.Errorf("sound %v rendered no samples", id)
	}
	return &PCMStream{data: data, sampleRate: int64(SampleRate)}, nil
}

// Read reads PCM data into p.
func (d *PCMStream) Read(p []byte) (n int, err error) {
	if d.offset >= int64(len(d.data)) {
		return 0, io.EOF
	}

	n = copy(p, d.data[d.offset:])
	d.offset += int64(n)
	return n, nil
}

// Seek sets the offset for the next Read.
func (d *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = d.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(d.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	d.offset = newOffset
	return newOffset, nil
}

// Length returns the total length of the PCM data in bytes.
func (d *PCMStream) Length() int64 {
	return int64(len(d.data))
}

// Bytes returns the raw PCM data.
func (d *PCMStream) Bytes() []byte {
	return d.data
}

// SampleRate returns the sample rate in Hz.
func (d *PCMStream) SampleRate() int64 {
	return d.sampleRate
}
