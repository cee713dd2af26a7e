// SPDX-License-Identifier: EPL-2.0

// Package waveform builds compact min/max summaries of audio for drawing
// waveforms.
//
// The audio is read as mono signed 16-bit frames at 44100 Hz and divided
// into Width pixels. For each pixel the smallest and largest sample are
// scaled to [-127, 127] and written as JSON, either as a plain array
//
//	[min,max,min,max,...]
//
// or wrapped with metadata:
//
//	{"samples_per_pixel":882,"sample_rate":44100,"bits":16,"length":10,"data":[...]}
//
// Frames per pixel is derived from the input length, which is either
// estimated from container metadata (the default) or counted exactly by
// decoding the input once before the real pass (Config.Scan).
//
// Inputs are usually decoder.File values:
//
//	sys := decoder.New()
//	defer sys.Close()
//
//	f, err := sys.Open("song.mp3")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	gen, err := waveform.New(waveform.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	_, err = gen.Generate(f, os.Stdout)
//
// Errors wrap ErrInput, ErrConfig or ErrOutput.
package waveform
