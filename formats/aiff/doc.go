// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to parse the FORM container.
// Only 16-bit PCM is accepted; other bit depths fail with
// ErrOnlyPCM16bitSupported.
//
//	src, err := aiff.Decoder{}.Decode(f)
//
// The frame count comes from the COMM chunk, so the returned source
// implements audio.Lengther without reading the sound data.
package aiff
