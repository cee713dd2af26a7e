// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/waveform/audio"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Length() int64
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	done       bool
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

// Length is the per-channel sample count from the last granule position,
// zero when the stream is not seekable.
func (s *source) Length() int64 { return s.dec.Length() }

// ReadSamples decodes straight into dst. oggvorbis counts values, not
// frames, and always returns whole frames.
func (s *source) ReadSamples(dst []float32) (int, error) {
	whole := len(dst) - len(dst)%s.channels
	if whole == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	n, err := s.dec.Read(dst[:whole])
	switch {
	case err == io.EOF:
		s.done = true
	case err != nil:
		return n, fmt.Errorf("%w", err)
	}

	if n == 0 {
		if s.done {
			return 0, io.EOF
		}
		return 0, io.ErrNoProgress
	}

	return n, nil
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
	}, nil
}
