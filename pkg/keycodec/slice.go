package keycodec

import "encoding/binary"

// SliceOf builds a Codec[[]T] from an element codec: an 8-byte big-endian
// element-count header followed by each element's encoding in order. The
// count header makes the encoding self-delimiting but not order-preserving.
func SliceOf[T any](elem Codec[T]) Codec[[]T] {
	return sliceCodec[T]{elem: elem}
}

type sliceCodec[T any] struct {
	elem Codec[T]
}

func (c sliceCodec[T]) Append(dst []byte, key []T) []byte {
	dst = appendHeader(dst, len(key))
	for _, v := range key {
		dst = c.elem.Append(dst, v)
	}
	return dst
}

func (c sliceCodec[T]) Decode(data []byte) ([]T, []byte, error) {
	if len(data) < headerSize {
		return nil, nil, &DataTooShort{Expected: headerSize, Actual: len(data)}
	}
	count := binary.BigEndian.Uint64(data)
	rest := data[headerSize:]

	// Clamp the preallocation before converting: a corrupt count can exceed
	// the int range, and trusting it would let a short buffer allocate wildly.
	// Element decodes still run against the declared count, so a missing
	// element surfaces as a FieldError.
	out := make([]T, 0, min(count, uint64(len(rest))))
	for i := 0; uint64(i) < count; i++ {
		var (
			v   T
			err error
		)
		v, rest, err = c.elem.Decode(rest)
		if err != nil {
			return nil, nil, &FieldError{Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, rest, nil
}
