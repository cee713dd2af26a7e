// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/waveform/audio"
	"github.com/ik5/waveform/utils"
)

const maxEmptyReads = 100

type stream struct {
	file     *File
	chain    audio.Source
	floats   []float32
	pcm      []int16
	done     bool
	detached bool
}

func (s *stream) Next() (audio.Buffer, error) {
	if s.detached {
		return audio.Buffer{}, ErrDetached
	}
	if s.done {
		return audio.Buffer{}, io.EOF
	}

	for range maxEmptyReads {
		n, err := s.chain.ReadSamples(s.floats)
		if errors.Is(err, io.EOF) {
			s.done = true
		} else if err != nil {
			return audio.Buffer{}, fmt.Errorf("decoding %s: %w", s.file.path, err)
		}

		if n > 0 {
			for i, v := range s.floats[:n] {
				s.pcm[i] = utils.Float32ToInt16(v)
			}
			return audio.Buffer{Samples: s.pcm[:n]}, nil
		}
		if s.done {
			return audio.Buffer{}, io.EOF
		}
	}

	return audio.Buffer{}, fmt.Errorf("decoding %s: %w", s.file.path, io.ErrNoProgress)
}

func (s *stream) Detach() error {
	if s.detached {
		return nil
	}
	s.detached = true
	s.file.release(s)

	if err := s.chain.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
