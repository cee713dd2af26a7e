// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/waveform/audio"
)

// Scale maps a 16-bit sample onto the signed 8-bit range. The divisor is
// math.MaxInt16, so the result lies in [-127, 127]; fractions truncate
// toward zero.
func Scale(s int16) int8 {
	return int8(float64(s) / math.MaxInt16 * math.MaxInt8)
}

// bucket accumulates the extremes of the frames mapped to one pixel.
type bucket struct {
	min, max int16
	frames   int64
}

func (b *bucket) reset() {
	b.min = math.MaxInt16
	b.max = math.MinInt16
	b.frames = 0
}

func (b *bucket) absorb(s int16) {
	if s > b.max {
		b.max = s
	}
	if s < b.min {
		b.min = s
	}
	b.frames++
}

// PixelWriter receives the scaled extremes of each pixel in order.
type PixelWriter interface {
	WritePixel(min, max int8) error
}

// Downsampler folds a frame stream into at most Width min/max pairs of
// FramesPerPixel frames each.
type Downsampler struct {
	FramesPerPixel int64
	Width          int
}

// Run pulls buffers from st until Width pixels are written or the stream
// ends. A bucket closes when its countdown is spent and another frame
// arrives; that frame opens the next bucket. A partially filled last
// bucket is written once the stream ends. Run does not detach st.
func (d Downsampler) Run(st audio.Stream, w PixelWriter) (int, error) {
	var b bucket
	b.reset()

	untilEmit := d.FramesPerPixel
	emitted := 0

	for emitted < d.Width {
		buf, err := st.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return emitted, fmt.Errorf("%w: reading frames: %w", ErrInput, err)
		}

		for _, s := range buf.Samples {
			if emitted >= d.Width {
				break
			}

			if untilEmit == 0 {
				emitted++
				if err := w.WritePixel(Scale(b.min), Scale(b.max)); err != nil {
					return emitted, fmt.Errorf("%w: %w", ErrOutput, err)
				}
				b.reset()
				untilEmit = d.FramesPerPixel
			}

			b.absorb(s)
			untilEmit--
		}
	}

	if emitted < d.Width && b.frames > 0 {
		emitted++
		if err := w.WritePixel(Scale(b.min), Scale(b.max)); err != nil {
			return emitted, fmt.Errorf("%w: %w", ErrOutput, err)
		}
	}

	return emitted, nil
}
