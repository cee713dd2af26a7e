// SPDX-License-Identifier: EPL-2.0

package audio

// Buffer is a block of decoded mono signed 16-bit frames.
type Buffer struct {
	Samples []int16
}

// FrameCount is the number of frames held by the buffer. With one channel it
// equals len(Samples).
func (b Buffer) FrameCount() int { return len(b.Samples) }

// Stream delivers decoded buffers in order until the input is exhausted.
type Stream interface {
	// Next blocks until the next buffer is decoded. It returns io.EOF once
	// the stream has ended. The returned Samples are only valid until the
	// following call.
	Next() (Buffer, error)
	// Detach stops decoding and releases the stream. Next must not be
	// called afterwards.
	Detach() error
}
