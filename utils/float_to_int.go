// SPDX-License-Identifier: EPL-2.0

package utils

const pcm16Scale = 32768.0

// Int16ToFloat32 maps a signed 16-bit PCM sample onto [-1, 1).
func Int16ToFloat32(v int16) float32 {
	return float32(v) / pcm16Scale
}

// Float32ToInt16 is the inverse of Int16ToFloat32. Values outside the int16
// range are clamped, so 1.0 becomes 32767 and -1.0 becomes -32768.
//
// Every value produced by Int16ToFloat32 converts back to the same sample.
func Float32ToInt16(x float32) int16 {
	v := x * pcm16Scale
	if v >= 32767 {
		return 32767
	}
	if v <= -32768 {
		return -32768
	}

	return int16(v)
}
