// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"io"

	"github.com/ik5/waveform/audio"
)

// fakeInput serves frames in chunks of chunk frames and records how it
// was used.
type fakeInput struct {
	frames    []int16
	duration  float64
	chunk     int
	attachErr error
	readErr   error

	attaches int
	live     bool
	maxRead  int
}

func newFakeInput(frames []int16) *fakeInput {
	return &fakeInput{
		frames:   frames,
		duration: float64(len(frames)) / SampleRate,
		chunk:    4096,
	}
}

func (f *fakeInput) Duration() float64 { return f.duration }

func (f *fakeInput) Attach() (audio.Stream, error) {
	if f.attachErr != nil {
		return nil, f.attachErr
	}
	if f.live {
		return nil, errors.New("already attached")
	}
	f.attaches++
	f.live = true

	return &fakeStream{in: f}, nil
}

type fakeStream struct {
	in  *fakeInput
	pos int
}

func (s *fakeStream) Next() (audio.Buffer, error) {
	if s.in.readErr != nil && s.pos > 0 {
		return audio.Buffer{}, s.in.readErr
	}
	if s.pos >= len(s.in.frames) {
		return audio.Buffer{}, io.EOF
	}

	end := min(s.pos+s.in.chunk, len(s.in.frames))
	buf := audio.Buffer{Samples: s.in.frames[s.pos:end]}
	s.pos = end
	s.in.maxRead = max(s.in.maxRead, end)

	return buf, nil
}

func (s *fakeStream) Detach() error {
	s.in.live = false
	return nil
}

// failWriter fails every write after the first limit bytes.
type failWriter struct {
	limit int
	n     int
}

var errDiskFull = errors.New("disk full")

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n+len(p) > w.limit {
		return 0, errDiskFull
	}
	w.n += len(p)

	return len(p), nil
}

func constant(n int, v int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = v
	}

	return out
}
