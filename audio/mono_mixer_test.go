// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"math"
	"testing"

	"github.com/ik5/waveform/internal/audiotest"
)

func readAll(t *testing.T, src Source, bufSize int) []float32 {
	t.Helper()

	buf := make([]float32, bufSize)
	var out []float32

	for {
		n, err := src.ReadSamples(buf)
		out = append(out, buf[:n]...)

		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestMonoMixer_MonoPassthrough(t *testing.T) {
	t.Parallel()

	src := audiotest.NewRampSource(8000, 1, 100)
	got := readAll(t, NewMonoMixer(src), 32)

	if len(got) != 100 {
		t.Fatalf("read %d samples, want 100", len(got))
	}

	for i, v := range got {
		if want := float32(i) / 32768; v != want {
			t.Fatalf("sample %d = %v, want %v", i, v, want)
		}
	}
}

func TestMonoMixer_StereoToMono(t *testing.T) {
	t.Parallel()

	src := audiotest.NewMockSource(8000, 2, 50, func(_ int, ch int) float32 {
		if ch == 0 {
			return 0.5
		}
		return -0.25
	})

	got := readAll(t, NewMonoMixer(src), 16)
	if len(got) != 50 {
		t.Fatalf("read %d frames, want 50", len(got))
	}

	for i, v := range got {
		if v != 0.125 {
			t.Fatalf("frame %d = %v, want 0.125", i, v)
		}
	}
}

func TestMonoMixer_MultiChannel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		channels int
	}{
		{"three channels", 3},
		{"quad", 4},
		{"5.1", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			src := audiotest.NewMockSource(8000, tt.channels, 40, func(_ int, ch int) float32 {
				return float32(ch) / 10
			})

			want := float32(tt.channels-1) / 20
			for i, v := range readAll(t, NewMonoMixer(src), 7) {
				if math.Abs(float64(v-want)) > 1e-6 {
					t.Fatalf("frame %d = %v, want %v", i, v, want)
				}
			}
		})
	}
}

func TestMonoMixer_EmptyDst(t *testing.T) {
	t.Parallel()

	mono := NewMonoMixer(audiotest.NewSilentSource(8000, 2, 10))

	n, err := mono.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestMonoMixer_Metadata(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(22050, 2, 10)
	mono := NewMonoMixer(src)

	if mono.SampleRate() != 22050 {
		t.Errorf("SampleRate() = %d, want 22050", mono.SampleRate())
	}
	if mono.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", mono.Channels())
	}

	if err := mono.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !src.Closed() {
		t.Error("Close() did not close the underlying source")
	}
}

func BenchmarkMonoMixer_StereoToMono(b *testing.B) {
	buf := make([]float32, 4096)

	b.ReportAllocs()

	for b.Loop() {
		mono := NewMonoMixer(audiotest.NewSineSource(44100, 2, 44100, 440))
		for {
			if _, err := mono.ReadSamples(buf); err != nil {
				break
			}
		}
	}
}
