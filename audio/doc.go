// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio processing primitives.
//
// This package contains the building blocks the decoder pipeline is made of:
//   - Source interface for float32 PCM input
//   - Lengther for sources that know their length from container metadata
//   - Resampler for sample rate conversion
//   - MonoMixer for channel mixing
//   - Registry for decoder lookup by format name
//   - Buffer and Stream for decoded 16-bit mono output
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders and processors implement this interface, allowing
// them to be chained together:
//
//	mono := audio.NewMonoMixer(audio.NewResampler(source, 44100))
//
// # Resampling
//
// The Resampler changes the sample rate using cubic interpolation. Output
// positions are computed with integer arithmetic, so the number of frames
// produced is exact: one second in gives one second out.
//
// # Streams
//
// A Stream hands out decoded Buffers one at a time and reports io.EOF when
// the input is exhausted. The decoder package builds Streams on top of a
// Source chain; the waveform package consumes them.
package audio
