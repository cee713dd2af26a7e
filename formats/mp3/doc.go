// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio with
// github.com/hajimehoshi/go-mp3.
//
// The decoder always yields two interleaved channels. When the input is
// an io.Seeker, go-mp3 scans the frame headers up front and the source
// reports the decoded length through audio.Lengther; otherwise Length
// returns zero.
package mp3
