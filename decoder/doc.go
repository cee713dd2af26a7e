// SPDX-License-Identifier: EPL-2.0

// Package decoder is the audio decoding subsystem used by the waveform
// generator.
//
// A System is created once with New and closed when the program is done.
// Open identifies the container by its magic bytes (falling back to the
// file extension), probes rate, channel count and recorded length, and
// returns a File. Attach on a File starts a Stream that yields mono
// signed 16-bit frames at 44100 Hz regardless of the source layout:
//
//	sys := decoder.New(decoder.WithLogger(logger))
//	defer sys.Close()
//
//	f, err := sys.Open("song.mp3")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	st, err := f.Attach()
//	if err != nil {
//	    return err
//	}
//	defer st.Detach()
//
//	for {
//	    buf, err := st.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    ...
//	}
//
// A File carries at most one attached Stream. Attaching again after Detach
// decodes from the start.
package decoder
