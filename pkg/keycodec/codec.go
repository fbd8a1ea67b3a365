package keycodec

import (
	"errors"
	"fmt"
)

// Codec encodes and decodes keys of type K.
//
// Append must be deterministic: the same key always produces the same bytes.
// Decode consumes one K encoding from the front of data and returns the
// decoded key together with the unconsumed remainder.
type Codec[K any] interface {
	Append(dst []byte, key K) []byte
	Decode(data []byte) (key K, rest []byte, err error)
}

// Encode encodes a single key into a fresh buffer.
func Encode[K any](c Codec[K], key K) []byte {
	return c.Append(nil, key)
}

// DataTooShort reports a buffer that ended before a fixed-width or
// length-declared field was complete.
type DataTooShort struct {
	Expected int
	Actual   int
}

func (e *DataTooShort) Error() string {
	return fmt.Sprintf("keycodec: expected at least %d bytes, got %d", e.Expected, e.Actual)
}

// FieldError identifies the failing field of a composite decode. Composite
// codecs fail fast: the first field error is reported and no partial result
// is produced.
type FieldError struct {
	Index int
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("keycodec: field %d: %v", e.Index, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Errors
var (
	ErrInvalidUTF8  = errors.New("keycodec: invalid UTF-8 sequence")
	ErrUnterminated = errors.New("keycodec: missing NUL terminator")
)
