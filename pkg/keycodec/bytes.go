package keycodec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"slices"
	"unicode/utf8"
)

const headerSize = 8

func appendHeader(dst []byte, n int) []byte {
	return binary.BigEndian.AppendUint64(dst, uint64(n))
}

// decodeHeader reads the 8-byte big-endian length header and checks the
// declared length against the remaining buffer.
func decodeHeader(data []byte) (int, []byte, error) {
	if len(data) < headerSize {
		return 0, nil, &DataTooShort{Expected: headerSize, Actual: len(data)}
	}
	n := binary.BigEndian.Uint64(data)
	rest := data[headerSize:]
	if n > uint64(len(rest)) {
		return 0, nil, &DataTooShort{Expected: int(n), Actual: len(rest)}
	}
	return int(n), rest, nil
}

// FixedBytes is the Codec[[]byte] for fixed-width byte-array keys. The
// encoding is the identity mapping, so it is order-preserving. Append panics
// if the key is not exactly Size bytes; that is a programming error, not a
// data error.
type FixedBytes struct {
	Size int
}

func (c FixedBytes) Append(dst []byte, key []byte) []byte {
	if len(key) != c.Size {
		panic(fmt.Sprintf("keycodec: FixedBytes key is %d bytes, want %d", len(key), c.Size))
	}
	return append(dst, key...)
}

func (c FixedBytes) Decode(data []byte) ([]byte, []byte, error) {
	if len(data) < c.Size {
		return nil, nil, &DataTooShort{Expected: c.Size, Actual: len(data)}
	}
	return slices.Clone(data[:c.Size]), data[c.Size:], nil
}

// Bytes is the Codec[[]byte] for variable-length byte keys: an 8-byte
// big-endian length header followed by the raw content. The header makes the
// encoding self-delimiting but NOT order-preserving, since length compares
// before content.
type Bytes struct{}

func (Bytes) Append(dst []byte, key []byte) []byte {
	dst = appendHeader(dst, len(key))
	return append(dst, key...)
}

func (Bytes) Decode(data []byte) ([]byte, []byte, error) {
	n, rest, err := decodeHeader(data)
	if err != nil {
		return nil, nil, err
	}
	return slices.Clone(rest[:n]), rest[n:], nil
}

// String is the Codec[string] counterpart of Bytes. Decode rejects content
// that is not valid UTF-8. Like Bytes, it is NOT order-preserving.
type String struct{}

func (String) Append(dst []byte, key string) []byte {
	dst = appendHeader(dst, len(key))
	return append(dst, key...)
}

func (String) Decode(data []byte) (string, []byte, error) {
	n, rest, err := decodeHeader(data)
	if err != nil {
		return "", nil, err
	}
	if !utf8.Valid(rest[:n]) {
		return "", nil, ErrInvalidUTF8
	}
	return string(rest[:n]), rest[n:], nil
}

// RawBytes is the greedy Codec[[]byte]: raw content with no header. The
// encoding is order-preserving, but Decode consumes the entire remainder, so
// a greedy field is only legal as the sole or last field of a key.
type RawBytes struct{}

func (RawBytes) Append(dst []byte, key []byte) []byte { return append(dst, key...) }

func (RawBytes) Decode(data []byte) ([]byte, []byte, error) {
	return slices.Clone(data), nil, nil
}

// RawString is the greedy Codec[string]: UTF-8 content with no header.
// Order-preserving, consumes the entire remainder, and handy for plain
// string prefix scans.
type RawString struct{}

func (RawString) Append(dst []byte, key string) []byte { return append(dst, key...) }

func (RawString) Decode(data []byte) (string, []byte, error) {
	if !utf8.Valid(data) {
		return "", nil, ErrInvalidUTF8
	}
	return string(data), nil, nil
}

// CString is the Codec[string] for NUL-terminated string keys: the content
// bytes followed by a single 0x00. Order-preserving and self-delimiting, at
// the cost of forbidding interior NUL bytes; Append panics on one.
type CString struct{}

func (CString) Append(dst []byte, key string) []byte {
	if bytes.IndexByte([]byte(key), 0x00) >= 0 {
		panic("keycodec: CString key contains interior NUL byte")
	}
	dst = append(dst, key...)
	return append(dst, 0x00)
}

func (CString) Decode(data []byte) (string, []byte, error) {
	i := bytes.IndexByte(data, 0x00)
	if i < 0 {
		return "", nil, ErrUnterminated
	}
	if !utf8.Valid(data[:i]) {
		return "", nil, ErrInvalidUTF8
	}
	return string(data[:i]), data[i+1:], nil
}
