// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/ik5/waveform/audio"
)

// Input is an opened audio file as the generator consumes it. Streams carry
// mono int16 frames at SampleRate.
type Input interface {
	// Duration is the length in seconds recorded by the container, or zero
	// when unknown. It must not decode audio.
	Duration() float64
	Attach() (audio.Stream, error)
}

type Strategy int

const (
	// StrategyEstimate derives the frame count from container metadata.
	StrategyEstimate Strategy = iota
	// StrategyScan decodes the whole input and counts frames.
	StrategyScan
)

func (s Strategy) String() string {
	switch s {
	case StrategyEstimate:
		return "estimate"
	case StrategyScan:
		return "scan"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// Length is the resolved size of an input.
type Length struct {
	Frames  int64
	Seconds float64
}

// Resolve computes the frame count of in. The estimate rounds
// Duration()*SampleRate up; a missing or invalid duration yields zero.
func Resolve(in Input, strategy Strategy) (Length, error) {
	if strategy == StrategyScan {
		return scan(in)
	}

	seconds := in.Duration()
	if seconds <= 0 || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return Length{}, nil
	}

	return Length{
		Frames:  int64(math.Ceil(seconds * SampleRate)),
		Seconds: seconds,
	}, nil
}

func scan(in Input) (Length, error) {
	st, err := in.Attach()
	if err != nil {
		return Length{}, fmt.Errorf("%w: attaching for scan: %w", ErrInput, err)
	}

	var frames int64
	for {
		buf, err := st.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = st.Detach()
			return Length{}, fmt.Errorf("%w: scanning: %w", ErrInput, err)
		}
		frames += int64(buf.FrameCount())
	}

	if err := st.Detach(); err != nil {
		return Length{}, fmt.Errorf("%w: detaching after scan: %w", ErrInput, err)
	}

	return Length{
		Frames:  frames,
		Seconds: float64(frames) / SampleRate,
	}, nil
}

// FramesPerPixel is frames/width rounded down, never less than one.
func FramesPerPixel(frames int64, width int) int64 {
	return max(1, frames/int64(width))
}
