package keycodec

import (
	"encoding/binary"
	"math"
)

// Floats encode their big-endian IEEE-754 bit pattern with a sign transform:
// a clear sign bit is set, lifting non-negative values above all negative
// ones, and a set sign bit inverts every byte, turning the reversed native
// ordering of negative patterns back into correct numeric order. NaN
// ordering is unspecified.

// Float32 is the Codec[float32] for four-byte floating point keys.
type Float32 struct{}

func (Float32) Append(dst []byte, key float32) []byte {
	bits := math.Float32bits(key)
	if bits>>31 == 0 {
		bits ^= 1 << 31
	} else {
		bits = ^bits
	}
	return binary.BigEndian.AppendUint32(dst, bits)
}

func (Float32) Decode(data []byte) (float32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, &DataTooShort{Expected: 4, Actual: len(data)}
	}
	bits := binary.BigEndian.Uint32(data)
	if bits>>31 == 1 {
		bits ^= 1 << 31
	} else {
		bits = ^bits
	}
	return math.Float32frombits(bits), data[4:], nil
}

// Float64 is the Codec[float64] for eight-byte floating point keys.
type Float64 struct{}

func (Float64) Append(dst []byte, key float64) []byte {
	bits := math.Float64bits(key)
	if bits>>63 == 0 {
		bits ^= 1 << 63
	} else {
		bits = ^bits
	}
	return binary.BigEndian.AppendUint64(dst, bits)
}

func (Float64) Decode(data []byte) (float64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, &DataTooShort{Expected: 8, Actual: len(data)}
	}
	bits := binary.BigEndian.Uint64(data)
	if bits>>63 == 1 {
		bits ^= 1 << 63
	} else {
		bits = ^bits
	}
	return math.Float64frombits(bits), data[8:], nil
}
