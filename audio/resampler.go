// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/waveform/utils"
)

// maxEmptyReads bounds how many times the source may return (0, nil) in a
// row before the resampler gives up with io.ErrNoProgress.
const maxEmptyReads = 100

// Resampler streams from src to a target sample rate using cubic
// interpolation. It works on interleaved samples and preserves the channel
// count. A one-pole low-pass filter is applied when downsampling.
//
// Output frame k is taken at source position k*srcRate/dstRate, computed
// with integer arithmetic. For N source frames that yields
// ceil(N*dstRate/srcRate) frames, and a same-rate resampler reproduces its
// input exactly.
type Resampler struct {
	src      Source
	srcRate  int64
	dstRate  int64
	channels int

	// window holds the source frames at idx-1, idx, idx+1 and idx+2, where
	// idx is the integer part of the current read position.
	window [4][]float32
	valid  [4]bool
	primed bool

	// cur is the source index held in window[1]; out counts emitted frames.
	cur int64
	out int64

	srcBuf []float32
	srcLen int
	srcOff int
	eof    bool

	useFilter   bool
	filterAlpha float32
	filterState []float32
	filterReady bool
}

func NewResampler(src Source, dstRate int) *Resampler {
	channels := src.Channels()

	r := &Resampler{
		src:         src,
		srcRate:     int64(src.SampleRate()),
		dstRate:     int64(dstRate),
		channels:    channels,
		srcBuf:      make([]float32, 1024*channels),
		useFilter:   src.SampleRate() > dstRate,
		filterAlpha: 0.5,
		filterState: make([]float32, channels),
	}

	for i := range r.window {
		r.window[i] = make([]float32, channels)
	}

	return r
}

func (r *Resampler) SampleRate() int { return int(r.dstRate) }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

// nextFrame copies the next source frame into dst. It reports false once
// the source is exhausted.
func (r *Resampler) nextFrame(dst []float32) (bool, error) {
	empty := 0
	for r.srcOff >= r.srcLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.srcBuf)
		r.srcLen = n - n%r.channels
		r.srcOff = 0

		if err == io.EOF {
			r.eof = true
		} else if err != nil {
			return false, fmt.Errorf("%w", err)
		}

		if n == 0 && !r.eof {
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	copy(dst, r.srcBuf[r.srcOff:r.srcOff+r.channels])
	r.srcOff += r.channels

	if r.useFilter {
		if !r.filterReady {
			// Seed with the first frame to avoid a warm-up transient.
			copy(r.filterState, dst)
			r.filterReady = true
		}

		for c := range r.channels {
			dst[c] = r.filterAlpha*dst[c] + (1-r.filterAlpha)*r.filterState[c]
			r.filterState[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	ok, err := r.nextFrame(r.window[1])
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	// There is no frame before the first one, so repeat it.
	copy(r.window[0], r.window[1])
	r.valid[0], r.valid[1] = true, true

	for i := 2; i < len(r.window); i++ {
		ok, err := r.nextFrame(r.window[i])
		if err != nil {
			return err
		}
		r.valid[i] = ok
		if !ok {
			break
		}
	}

	r.primed = true

	return nil
}

// advance moves the window one source frame forward.
func (r *Resampler) advance() error {
	r.cur++

	oldest := r.window[0]
	r.window[0], r.window[1], r.window[2], r.window[3] = r.window[1], r.window[2], r.window[3], oldest
	r.valid[0], r.valid[1], r.valid[2], r.valid[3] = r.valid[1], r.valid[2], r.valid[3], false

	if !r.valid[2] {
		return nil
	}

	ok, err := r.nextFrame(r.window[3])
	if err != nil {
		return err
	}
	r.valid[3] = ok

	return nil
}

// ReadSamples produces dst samples at the target rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	framesNeeded := len(dst) / r.channels
	written := 0

	for written < framesNeeded {
		at := r.out * r.srcRate
		for r.cur < at/r.dstRate {
			if err := r.advance(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		alpha := float32(at%r.dstRate) / float32(r.dstRate)
		out := dst[written*r.channels : (written+1)*r.channels]

		for c := range r.channels {
			y1 := r.window[1][c]

			y0 := y1
			if r.valid[0] {
				y0 = r.window[0][c]
			}

			y2 := y1
			if r.valid[2] {
				y2 = r.window[2][c]
			}

			y3 := y2
			if r.valid[3] {
				y3 = r.window[3][c]
			}

			out[c] = utils.CubicInterpolate(y0, y1, y2, y3, alpha)
		}

		written++
		r.out++
	}

	return written * r.channels, nil
}
