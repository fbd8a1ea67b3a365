// Package store defines the minimal ordered byte-keyed container contract
// that Bifrost's record layer runs on, together with a reference in-memory
// implementation.
//
// A backend owes the contract three things: point fetch, upsert insert, and
// ascending range scans over byte-lexicographic key order with no duplicate
// keys. Everything else (durability, locking granularity, snapshot semantics
// of a running scan) is the backend's own business and must be documented per
// backend. The backend's lifecycle (open/close) is owned by
// the caller; this package never tears a store down.
package store

import (
	"iter"

	"github.com/ssargent/bifrost/pkg/keyrange"
)

// Entry is one key-value pair yielded by a range scan.
type Entry struct {
	Key   []byte
	Value []byte
}

// Store is the capability contract over an ordered byte-keyed container.
type Store interface {
	// Fetch returns the value stored under key, or found == false.
	Fetch(key []byte) (value []byte, found bool, err error)

	// Insert stores value under key, replacing any existing value (upsert).
	Insert(key, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(key []byte) error

	// Range returns the entries inside r in ascending key order. The
	// sequence is finite iff the range is bounded; items can carry per-item
	// errors. A backend that cannot scan returns ErrRangeUnsupported from
	// the call itself, so callers can tell "no rows" from "not supported".
	Range(r keyrange.Range) (iter.Seq2[Entry, error], error)
}

// Errors
var (
	ErrRangeUnsupported = &StoreError{"range scans are not supported by this backend"}
)

// StoreError is an operation-level store failure.
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
