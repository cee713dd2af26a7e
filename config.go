// SPDX-License-Identifier: EPL-2.0

package waveform

import "fmt"

const (
	// DefaultWidth is the number of pixels when none is configured.
	DefaultWidth = 800
	// SampleRate is the frame rate the analysis runs at.
	SampleRate = 44100
	// Bits is the sample depth the analysis runs at.
	Bits = 16
)

// Config controls a Generator. Zero SampleRate and Bits mean the fixed
// defaults; no other values are accepted.
type Config struct {
	Width      int
	Plain      bool
	Scan       bool
	SampleRate int
	Bits       int
}

func DefaultConfig() Config {
	return Config{
		Width:      DefaultWidth,
		SampleRate: SampleRate,
		Bits:       Bits,
	}
}

func (c Config) withDefaults() Config {
	if c.SampleRate == 0 {
		c.SampleRate = SampleRate
	}
	if c.Bits == 0 {
		c.Bits = Bits
	}

	return c
}

func (c Config) Validate() error {
	c = c.withDefaults()

	switch {
	case c.Width < 1:
		return fmt.Errorf("%w: width must be at least 1, got %d", ErrConfig, c.Width)
	case c.SampleRate != SampleRate:
		return fmt.Errorf("%w: sample rate must be %d, got %d", ErrConfig, SampleRate, c.SampleRate)
	case c.Bits != Bits:
		return fmt.Errorf("%w: bit depth must be %d, got %d", ErrConfig, Bits, c.Bits)
	}

	return nil
}

// Strategy is the frame count strategy the configuration selects.
func (c Config) Strategy() Strategy {
	if c.Scan {
		return StrategyScan
	}

	return StrategyEstimate
}
