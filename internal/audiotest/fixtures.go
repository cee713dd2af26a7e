// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

// WAV16 returns a canonical 44-byte-header PCM 16-bit WAV file holding the
// interleaved samples.
func WAV16(sampleRate, channels int, samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	blockAlign := uint16(channels * 2)

	buf := new(bytes.Buffer)
	buf.Grow(44 + int(dataSize))

	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(buf, binary.LittleEndian, uint16(channels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(sampleRate)*uint32(blockAlign))
	_ = binary.Write(buf, binary.LittleEndian, blockAlign)
	_ = binary.Write(buf, binary.LittleEndian, uint16(16))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, dataSize)
	_ = binary.Write(buf, binary.LittleEndian, samples)

	return buf.Bytes()
}

// AIFF16 returns a 16-bit PCM AIFF file holding the interleaved samples.
func AIFF16(sampleRate, channels int, samples []int16) []byte {
	dataSize := uint32(len(samples) * 2)
	frames := uint32(len(samples) / channels)

	buf := new(bytes.Buffer)

	buf.WriteString("FORM")
	_ = binary.Write(buf, binary.BigEndian, 4+(8+18)+(8+8+dataSize))
	buf.WriteString("AIFF")

	buf.WriteString("COMM")
	_ = binary.Write(buf, binary.BigEndian, uint32(18))
	_ = binary.Write(buf, binary.BigEndian, uint16(channels))
	_ = binary.Write(buf, binary.BigEndian, frames)
	_ = binary.Write(buf, binary.BigEndian, uint16(16))
	buf.Write(extended80(uint32(sampleRate)))

	buf.WriteString("SSND")
	_ = binary.Write(buf, binary.BigEndian, 8+dataSize)
	_ = binary.Write(buf, binary.BigEndian, uint32(0)) // offset
	_ = binary.Write(buf, binary.BigEndian, uint32(0)) // block size
	_ = binary.Write(buf, binary.BigEndian, samples)

	return buf.Bytes()
}

// extended80 encodes a positive integer as an IEEE 754 80-bit extended
// float, the sample rate representation AIFF uses.
func extended80(v uint32) []byte {
	out := make([]byte, 10)
	if v == 0 {
		return out
	}

	e := bits.Len32(v) - 1
	binary.BigEndian.PutUint16(out[0:2], uint16(16383+e))
	binary.BigEndian.PutUint64(out[2:10], uint64(v)<<(63-e))

	return out
}

// Constant returns n copies of v.
func Constant(n int, v int16) []int16 {
	out := make([]int16, n)
	for i := range out {
		out[i] = v
	}

	return out
}
