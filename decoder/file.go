// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"fmt"
	"io"
	"sync"

	"github.com/ik5/waveform/audio"
)

// File is an opened input. It supports one attached stream at a time.
type File struct {
	sys        *System
	path       string
	format     string
	dec        audio.Decoder
	r          *bufferedFile
	sampleRate int
	channels   int
	duration   float64

	mu       sync.Mutex
	attached *stream
	closed   bool
}

func (f *File) Path() string    { return f.path }
func (f *File) Format() string  { return f.format }
func (f *File) SampleRate() int { return f.sampleRate }
func (f *File) Channels() int   { return f.channels }

// Duration is the length in seconds taken from container metadata. It is
// zero when the container does not record a length.
func (f *File) Duration() float64 { return f.duration }

// Attach starts decoding from the beginning of the file. Buffers carry mono
// int16 frames at SampleRate.
func (f *File) Attach() (audio.Stream, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case f.closed:
		return nil, ErrClosed
	case f.attached != nil:
		return nil, ErrAttached
	}

	if _, err := f.r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding %s: %w", f.path, err)
	}

	src, err := f.dec.Decode(f.r)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", f.path, err)
	}

	chain := src
	if chain.SampleRate() != SampleRate {
		chain = audio.NewResampler(chain, SampleRate)
	}
	if chain.Channels() != 1 {
		chain = audio.NewMonoMixer(chain)
	}

	f.sys.logger.Debug("attached stream",
		"path", f.path,
		"resampled", src.SampleRate() != SampleRate,
		"downmixed", src.Channels() != 1,
	)

	st := &stream{
		file:   f,
		chain:  chain,
		floats: make([]float32, f.sys.bufferFrames),
		pcm:    make([]int16, f.sys.bufferFrames),
	}
	f.attached = st

	return st, nil
}

func (f *File) release(st *stream) {
	f.mu.Lock()
	if f.attached == st {
		f.attached = nil
	}
	f.mu.Unlock()
}

// Close detaches any live stream and closes the underlying file.
func (f *File) Close() error {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil
	}
	f.closed = true
	st := f.attached
	f.mu.Unlock()

	var detachErr error
	if st != nil {
		detachErr = st.Detach()
	}

	f.sys.forget(f)

	if err := f.r.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", f.path, err)
	}

	return detachErr
}
