package keycodec

import "encoding/binary"

// Unsigned integers encode as raw big-endian bytes, which sort naturally.
// Signed integers additionally flip the most significant bit, mapping
// negative values (native MSB set) below positive ones in unsigned byte
// order.

// Uint8 is the Codec[uint8] for one-byte unsigned keys.
type Uint8 struct{}

func (Uint8) Append(dst []byte, key uint8) []byte { return append(dst, key) }

func (Uint8) Decode(data []byte) (uint8, []byte, error) {
	if len(data) < 1 {
		return 0, nil, &DataTooShort{Expected: 1, Actual: len(data)}
	}
	return data[0], data[1:], nil
}

// Uint16 is the Codec[uint16] for two-byte unsigned keys.
type Uint16 struct{}

func (Uint16) Append(dst []byte, key uint16) []byte {
	return binary.BigEndian.AppendUint16(dst, key)
}

func (Uint16) Decode(data []byte) (uint16, []byte, error) {
	if len(data) < 2 {
		return 0, nil, &DataTooShort{Expected: 2, Actual: len(data)}
	}
	return binary.BigEndian.Uint16(data), data[2:], nil
}

// Uint32 is the Codec[uint32] for four-byte unsigned keys.
type Uint32 struct{}

func (Uint32) Append(dst []byte, key uint32) []byte {
	return binary.BigEndian.AppendUint32(dst, key)
}

func (Uint32) Decode(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, &DataTooShort{Expected: 4, Actual: len(data)}
	}
	return binary.BigEndian.Uint32(data), data[4:], nil
}

// Uint64 is the Codec[uint64] for eight-byte unsigned keys.
type Uint64 struct{}

func (Uint64) Append(dst []byte, key uint64) []byte {
	return binary.BigEndian.AppendUint64(dst, key)
}

func (Uint64) Decode(data []byte) (uint64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, &DataTooShort{Expected: 8, Actual: len(data)}
	}
	return binary.BigEndian.Uint64(data), data[8:], nil
}

// Uint is the Codec[uint] for word-sized unsigned keys. It always encodes
// eight bytes so the format is identical on every platform.
type Uint struct{}

func (Uint) Append(dst []byte, key uint) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(key))
}

func (Uint) Decode(data []byte) (uint, []byte, error) {
	v, rest, err := Uint64{}.Decode(data)
	return uint(v), rest, err
}

// Int8 is the Codec[int8] for one-byte signed keys.
type Int8 struct{}

func (Int8) Append(dst []byte, key int8) []byte { return append(dst, uint8(key)^0x80) }

func (Int8) Decode(data []byte) (int8, []byte, error) {
	if len(data) < 1 {
		return 0, nil, &DataTooShort{Expected: 1, Actual: len(data)}
	}
	return int8(data[0] ^ 0x80), data[1:], nil
}

// Int16 is the Codec[int16] for two-byte signed keys.
type Int16 struct{}

func (Int16) Append(dst []byte, key int16) []byte {
	return binary.BigEndian.AppendUint16(dst, uint16(key)^(1<<15))
}

func (Int16) Decode(data []byte) (int16, []byte, error) {
	if len(data) < 2 {
		return 0, nil, &DataTooShort{Expected: 2, Actual: len(data)}
	}
	return int16(binary.BigEndian.Uint16(data) ^ (1 << 15)), data[2:], nil
}

// Int32 is the Codec[int32] for four-byte signed keys.
type Int32 struct{}

func (Int32) Append(dst []byte, key int32) []byte {
	return binary.BigEndian.AppendUint32(dst, uint32(key)^(1<<31))
}

func (Int32) Decode(data []byte) (int32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, &DataTooShort{Expected: 4, Actual: len(data)}
	}
	return int32(binary.BigEndian.Uint32(data) ^ (1 << 31)), data[4:], nil
}

// Int64 is the Codec[int64] for eight-byte signed keys.
type Int64 struct{}

func (Int64) Append(dst []byte, key int64) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(key)^(1<<63))
}

func (Int64) Decode(data []byte) (int64, []byte, error) {
	if len(data) < 8 {
		return 0, nil, &DataTooShort{Expected: 8, Actual: len(data)}
	}
	return int64(binary.BigEndian.Uint64(data) ^ (1 << 63)), data[8:], nil
}

// Int is the Codec[int] for word-sized signed keys, encoded as eight bytes
// on every platform.
type Int struct{}

func (Int) Append(dst []byte, key int) []byte {
	return Int64{}.Append(dst, int64(key))
}

func (Int) Decode(data []byte) (int, []byte, error) {
	v, rest, err := Int64{}.Decode(data)
	return int(v), rest, err
}
