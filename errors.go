// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

// Every error returned by this package wraps one of these.
var (
	// ErrInput: the input is missing, unreadable or cannot be decoded.
	ErrInput = errors.New("input error")
	// ErrConfig: the configuration is invalid.
	ErrConfig = errors.New("config error")
	// ErrOutput: writing the waveform failed.
	ErrOutput = errors.New("output error")
)
