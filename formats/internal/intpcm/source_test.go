// SPDX-License-Identifier: EPL-2.0

package intpcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockPCMReader hands out at most chunk values per call.
type mockPCMReader struct {
	samples []int
	offset  int
	chunk   int
	err     error
}

func (m *mockPCMReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}

	n := len(buf.Data)
	if m.chunk > 0 && n > m.chunk {
		n = m.chunk
	}
	n = copy(buf.Data[:n], m.samples[m.offset:])
	m.offset += n

	return n, nil
}

func newSource(m *mockPCMReader, channels int) *Source {
	return New(m, &goaudio.Format{SampleRate: 44100, NumChannels: channels}, int64(len(m.samples)/channels))
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := newSource(&mockPCMReader{samples: make([]int, 10)}, 2)

	if src.SampleRate() != 44100 {
		t.Errorf("SampleRate() = %d, want 44100", src.SampleRate())
	}
	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}
	if src.Length() != 5 {
		t.Errorf("Length() = %d, want 5", src.Length())
	}
	if err := src.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples_FillsAcrossShortReads(t *testing.T) {
	t.Parallel()

	m := &mockPCMReader{samples: []int{1, 2, 3, 4, 5, 6, 7}, chunk: 2}
	src := newSource(m, 1)

	buf := make([]float32, 5)
	n, err := src.ReadSamples(buf)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 5 {
		t.Fatalf("ReadSamples() n = %d, want 5", n)
	}
	for i := range n {
		if want := float32(i+1) / 32768; buf[i] != want {
			t.Errorf("buf[%d] = %v, want %v", i, buf[i], want)
		}
	}

	n, err = src.ReadSamples(buf)
	if n != 2 || err != nil {
		t.Fatalf("ReadSamples() = (%d, %v), want (2, nil)", n, err)
	}

	n, err = src.ReadSamples(buf)
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Fatalf("ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := newSource(&mockPCMReader{samples: []int{1}}, 1)

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_NoData(t *testing.T) {
	t.Parallel()

	src := newSource(&mockPCMReader{}, 1)

	n, err := src.ReadSamples(make([]float32, 16))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("ReadSamples() = (%d, %v), want (0, EOF)", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	src := newSource(&mockPCMReader{err: io.ErrUnexpectedEOF}, 1)

	_, err := src.ReadSamples(make([]float32, 16))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("ReadSamples() error = %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestSource_ReadSamples_GrowsBuffer(t *testing.T) {
	t.Parallel()

	m := &mockPCMReader{samples: make([]int, 10000)}
	src := newSource(m, 1)

	n, err := src.ReadSamples(make([]float32, 8192))
	if err != nil || n != 8192 {
		t.Errorf("ReadSamples() = (%d, %v), want (8192, nil)", n, err)
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int, 4096)
	buf := make([]float32, 4096)

	b.ReportAllocs()
	for b.Loop() {
		src := newSource(&mockPCMReader{samples: samples}, 1)
		_, _ = src.ReadSamples(buf)
	}
}
