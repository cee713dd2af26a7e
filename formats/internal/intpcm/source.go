// SPDX-License-Identifier: EPL-2.0

// Package intpcm adapts go-audio style decoders, which fill integer
// buffers, to audio.Source.
package intpcm

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/waveform/utils"
)

// PCMReader is the part of the go-audio wav and aiff decoders the source
// needs. PCMBuffer may return fewer values than requested before the end of
// the data; it returns zero values once the data is exhausted.
type PCMReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads 16-bit integer PCM from a PCMReader as float32.
type Source struct {
	dec    PCMReader
	format *goaudio.Format
	length int64
	buf    *goaudio.IntBuffer
	done   bool
}

// New wraps dec. length is the number of frames recorded in the
// container, or zero if unknown.
func New(dec PCMReader, format *goaudio.Format, length int64) *Source {
	return &Source{
		dec:    dec,
		format: format,
		length: length,
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, 0, 4096),
			SourceBitDepth: 16,
		},
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) Length() int64   { return s.length }
func (s *Source) Close() error    { return nil }

// ReadSamples fills dst completely unless the data runs out first.
func (s *Source) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}
	if s.done {
		return 0, io.EOF
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}

	total := 0
	for total < len(dst) {
		s.buf.Data = s.buf.Data[:len(dst)-total]

		n, err := s.dec.PCMBuffer(s.buf)
		for i, v := range s.buf.Data[:n] {
			dst[total+i] = utils.Int16ToFloat32(int16(v))
		}
		total += n

		if err != nil && err != io.EOF {
			return total, fmt.Errorf("%w", err)
		}
		if n == 0 || err == io.EOF {
			s.done = true
			break
		}
	}

	if total == 0 {
		return 0, io.EOF
	}

	return total, nil
}
