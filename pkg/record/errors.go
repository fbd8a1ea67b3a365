package record

import "fmt"

// The error taxonomy is closed. Reads fail with StoreError, KeyDecodeError,
// or ValueDecodeError; writes fail with StoreError or EncodeError. Store
// errors are opaque and passed through unmodified; this layer never
// interprets backend-specific causes.

// StoreError wraps a failure reported by the underlying store.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("record: store: %v", e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// KeyDecodeError wraps a failure decoding a scanned entry's key bytes.
type KeyDecodeError struct {
	Err error
}

func (e *KeyDecodeError) Error() string { return fmt.Sprintf("record: decoding key: %v", e.Err) }
func (e *KeyDecodeError) Unwrap() error { return e.Err }

// ValueDecodeError wraps a failure rebuilding a record from its payload.
type ValueDecodeError struct {
	Err error
}

func (e *ValueDecodeError) Error() string { return fmt.Sprintf("record: decoding value: %v", e.Err) }
func (e *ValueDecodeError) Unwrap() error { return e.Err }

// EncodeError wraps a failure encoding a record for persistence.
type EncodeError struct {
	Err error
}

func (e *EncodeError) Error() string { return fmt.Sprintf("record: encoding record: %v", e.Err) }
func (e *EncodeError) Unwrap() error { return e.Err }
