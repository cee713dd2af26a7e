// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files holding 16-bit PCM.
//
// Parsing is done by github.com/go-audio/wav. The decoder walks the chunk
// list to the data chunk, so files with LIST or other metadata chunks
// before the samples are accepted.
//
//	src, err := wav.Decoder{}.Decode(f)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    // not RIFF/WAVE
//	}
//
// Samples are returned as float32 in [-1.0, 1.0). The source implements
// audio.Lengther, reporting the frame count from the data chunk size.
package wav
