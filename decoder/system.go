// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/formats/aiff"
	"github.com/ik5/waveform/formats/mp3"
	"github.com/ik5/waveform/formats/vorbis"
	"github.com/ik5/waveform/formats/wav"
)

const (
	// SampleRate is the rate every attached stream is converted to.
	SampleRate = 44100
	// DefaultBufferFrames is the largest number of frames one Next call
	// returns unless WithBufferFrames says otherwise.
	DefaultBufferFrames = 4096
)

// System is the decoder subsystem. It must be created with New before any
// file is opened and closed once the caller is done; closing it closes
// every file still open.
type System struct {
	registry     *audio.Registry
	logger       *slog.Logger
	bufferFrames int

	mu     sync.Mutex
	closed bool
	files  map[*File]struct{}
}

// New initializes the subsystem with the built-in wav, mp3, vorbis and aiff
// decoders.
func New(opts ...Option) *System {
	s := &System{
		registry:     audio.NewRegistry(),
		logger:       slog.New(slog.DiscardHandler),
		bufferFrames: DefaultBufferFrames,
		files:        make(map[*File]struct{}),
	}

	s.registry.Register("wav", wav.Decoder{})
	s.registry.Register("mp3", mp3.Decoder{})
	s.registry.Register("vorbis", vorbis.Decoder{})
	s.registry.Register("aiff", aiff.Decoder{})

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Formats lists the registered format names.
func (s *System) Formats() []string {
	return s.registry.Formats()
}

// Close tears the subsystem down. It is safe to call more than once.
func (s *System) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	files := make([]*File, 0, len(s.files))
	for f := range s.files {
		files = append(files, f)
	}
	s.mu.Unlock()

	var errs []error
	for _, f := range files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Open opens path, identifies its format and reads enough of it to know the
// native rate, channel count and, when the container records it, length.
func (s *System) Open(path string) (*File, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, ErrClosed
	}

	osf, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	bf := newBufferedFile(osf)

	f, err := s.probe(path, bf)
	if err != nil {
		_ = bf.Close()
		return nil, err
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = bf.Close()
		return nil, ErrClosed
	}
	s.files[f] = struct{}{}
	s.mu.Unlock()

	s.logger.Debug("opened audio file",
		"path", path,
		"format", f.format,
		"sample_rate", f.sampleRate,
		"channels", f.channels,
		"duration", f.duration,
	)

	return f, nil
}

func (s *System) probe(path string, bf *bufferedFile) (*File, error) {
	head, _ := bf.Peek(sniffLen)

	format := sniff(head)
	if format == "" {
		format = formatFromExt(path)
	}
	if format == "" {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	dec, ok := s.registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	src, err := dec.Decode(bf)
	if err != nil {
		return nil, fmt.Errorf("decoding %s as %s: %w", path, format, err)
	}
	defer src.Close()

	if src.SampleRate() < 1 || src.Channels() < 1 {
		return nil, fmt.Errorf("%w: %s reports %d Hz, %d channels",
			ErrUnsupportedFormat, path, src.SampleRate(), src.Channels())
	}

	var duration float64
	if l, ok := src.(audio.Lengther); ok && l.Length() > 0 {
		duration = float64(l.Length()) / float64(src.SampleRate())
	}

	return &File{
		sys:        s,
		path:       path,
		format:     format,
		dec:        dec,
		r:          bf,
		sampleRate: src.SampleRate(),
		channels:   src.Channels(),
		duration:   duration,
	}, nil
}

func (s *System) forget(f *File) {
	s.mu.Lock()
	delete(s.files, f)
	s.mu.Unlock()
}
