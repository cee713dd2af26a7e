// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// jsonWriter streams the waveform document. The first write error sticks
// and is returned by every later call.
type jsonWriter struct {
	bw      *bufio.Writer
	plain   bool
	pixels  int
	scratch []byte
	err     error
}

func newJSONWriter(w io.Writer, plain bool) *jsonWriter {
	return &jsonWriter{
		bw:      bufio.NewWriter(w),
		plain:   plain,
		scratch: make([]byte, 0, 16),
	}
}

func (j *jsonWriter) write(p []byte) {
	if j.err != nil {
		return
	}
	_, j.err = j.bw.Write(p)
}

func (j *jsonWriter) writeString(s string) {
	if j.err != nil {
		return
	}
	_, j.err = j.bw.WriteString(s)
}

func (j *jsonWriter) field(name string, v int64) {
	j.writeString(`"` + name + `":`)
	j.write(strconv.AppendInt(j.scratch[:0], v, 10))
	j.writeString(",")
}

// Begin writes everything before the first pixel.
func (j *jsonWriter) Begin(framesPerPixel int64, width int) error {
	if !j.plain {
		j.writeString("{")
		j.field("samples_per_pixel", framesPerPixel)
		j.field("sample_rate", SampleRate)
		j.field("bits", Bits)
		j.field("length", int64(width))
		j.writeString(`"data":`)
	}
	j.writeString("[")

	return j.err
}

func (j *jsonWriter) WritePixel(lo, hi int8) error {
	buf := j.scratch[:0]
	if j.pixels > 0 {
		buf = append(buf, ',')
	}
	buf = strconv.AppendInt(buf, int64(lo), 10)
	buf = append(buf, ',')
	buf = strconv.AppendInt(buf, int64(hi), 10)
	j.write(buf)
	j.pixels++

	return j.err
}

// End closes the document and flushes it.
func (j *jsonWriter) End() error {
	j.writeString("]")
	if !j.plain {
		j.writeString("}")
	}
	if j.err == nil {
		j.err = j.bw.Flush()
	}
	if j.err != nil {
		return fmt.Errorf("%w: %w", ErrOutput, j.err)
	}

	return nil
}
