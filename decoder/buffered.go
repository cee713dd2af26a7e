// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const readBufferSize = 64 * 1024

// bufferedFile is an io.ReadSeeker over an *os.File that batches reads.
// Decoders such as go-audio read a single sample at a time.
type bufferedFile struct {
	f  *os.File
	br *bufio.Reader
}

func newBufferedFile(f *os.File) *bufferedFile {
	return &bufferedFile{f: f, br: bufio.NewReaderSize(f, readBufferSize)}
}

func (b *bufferedFile) Read(p []byte) (int, error) {
	return b.br.Read(p)
}

func (b *bufferedFile) Peek(n int) ([]byte, error) {
	return b.br.Peek(n)
}

func (b *bufferedFile) Seek(offset int64, whence int) (int64, error) {
	if whence == io.SeekCurrent {
		pos, err := b.f.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, fmt.Errorf("%w", err)
		}
		pos -= int64(b.br.Buffered())
		if offset == 0 {
			return pos, nil
		}

		offset += pos
		whence = io.SeekStart
	}

	pos, err := b.f.Seek(offset, whence)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	b.br.Reset(b.f)

	return pos, nil
}

func (b *bufferedFile) Close() error {
	return b.f.Close()
}
