// SPDX-License-Identifier: EPL-2.0

package decoder

import "errors"

var (
	ErrClosed            = errors.New("decoder system is closed")
	ErrAttached          = errors.New("file already has an attached stream")
	ErrDetached          = errors.New("stream is detached")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
