// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"log/slog"

	"github.com/ik5/waveform/audio"
)

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger used for open/attach diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *System) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithBufferFrames sets how many frames each Stream.Next call may return.
// Values below 1 keep the default.
func WithBufferFrames(n int) Option {
	return func(s *System) {
		if n > 0 {
			s.bufferFrames = n
		}
	}
}

// WithDecoder registers or replaces the decoder used for a format name.
func WithDecoder(format string, d audio.Decoder) Option {
	return func(s *System) {
		s.registry.Register(format, d)
	}
}
