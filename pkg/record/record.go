// Package record maps typed application records onto an ordered byte store.
//
// A record has one typed key and an opaque payload. Type[R, K] describes how
// a record type encodes: a key codec plus a pair of functions splitting a
// record into (key, payload bytes) and rebuilding it. The package composes
// the key codec, the boundary algorithm, and the store contract into typed
// fetch, scan, persist, and remove operations; callers never touch raw key
// bytes.
//
// Every fetch and scan materializes a fresh record from stored bytes; there
// is no caching. Re-persisting a record with the same key overwrites the
// payload.
package record

import (
	"iter"

	"github.com/ssargent/bifrost/pkg/keycodec"
	"github.com/ssargent/bifrost/pkg/keyrange"
	"github.com/ssargent/bifrost/pkg/store"
)

// Type binds a record type R to its key codec and payload format.
type Type[R, K any] struct {
	// Key encodes and decodes the record's key.
	Key keycodec.Codec[K]

	// Encode splits a record into its key and payload bytes. A failure here
	// aborts Persist before the store is touched.
	Encode func(rec R) (K, []byte, error)

	// Decode rebuilds a record from its key and payload bytes.
	Decode func(key K, value []byte) (R, error)
}

// Fetch looks up the record stored under key. found is false when the store
// holds no entry for the key; errors are tagged per the read taxonomy.
func (t *Type[R, K]) Fetch(s store.Store, key K) (rec R, found bool, err error) {
	var zero R

	value, found, err := s.Fetch(keycodec.Encode(t.Key, key))
	if err != nil {
		return zero, false, &StoreError{Err: err}
	}
	if !found {
		return zero, false, nil
	}

	rec, err = t.Decode(key, value)
	if err != nil {
		return zero, false, &ValueDecodeError{Err: err}
	}
	return rec, true, nil
}

// Scan returns every record of the type in ascending key order. Each item
// independently succeeds or fails to decode; one bad entry never aborts the
// sequence, so the caller decides whether to skip or short-circuit.
func (t *Type[R, K]) Scan(s store.Store) iter.Seq2[R, error] {
	return t.scan(s, keyrange.All())
}

func (t *Type[R, K]) scan(s store.Store, r keyrange.Range) iter.Seq2[R, error] {
	return func(yield func(R, error) bool) {
		var zero R

		seq, err := s.Range(r)
		if err != nil {
			yield(zero, &StoreError{Err: err})
			return
		}

		for entry, err := range seq {
			if err != nil {
				if !yield(zero, &StoreError{Err: err}) {
					return
				}
				continue
			}

			key, _, err := t.Key.Decode(entry.Key)
			if err != nil {
				if !yield(zero, &KeyDecodeError{Err: err}) {
					return
				}
				continue
			}

			rec, err := t.Decode(key, entry.Value)
			if err != nil {
				if !yield(zero, &ValueDecodeError{Err: err}) {
					return
				}
				continue
			}

			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Persist writes the record, overwriting any previous payload under the same
// key. Encoding failures are reported before the store is touched.
func (t *Type[R, K]) Persist(s store.Store, rec R) error {
	key, value, err := t.Encode(rec)
	if err != nil {
		return &EncodeError{Err: err}
	}
	if err := s.Insert(keycodec.Encode(t.Key, key), value); err != nil {
		return &StoreError{Err: err}
	}
	return nil
}

// Remove erases the record stored under key. Removing an absent key is not
// an error; store failures propagate.
func (t *Type[R, K]) Remove(s store.Store, key K) error {
	if err := s.Delete(keycodec.Encode(t.Key, key)); err != nil {
		return &StoreError{Err: err}
	}
	return nil
}

// ScanPrefix returns the records whose keys start with the encoding of
// value, in ascending key order. The prefix declaration authorizes the scan;
// the byte range is computed with the carry-increment boundary.
func ScanPrefix[R, K, P any](t *Type[R, K], s store.Store, prefix keycodec.PrefixOf[K, P], value P) iter.Seq2[R, error] {
	return t.scan(s, keyrange.PrefixRange(keycodec.Encode(prefix.Codec(), value)))
}

// ScanRange returns the records whose keys fall inside the typed range, in
// ascending key order. Bounds are values of a declared prefix type of K, so
// a range over a leading sub-tuple scans whole groups of composite keys.
//
// An inclusive end bound covers everything nested under the bound value: the
// encoded bound is widened with the carry-increment transform, so for plain
// fixed-width keys it behaves as the ordinary closed interval, and for
// composite prefixes it includes every completion of the bound.
func ScanRange[R, K, P any](t *Type[R, K], s store.Store, prefix keycodec.PrefixOf[K, P], r Range[P]) iter.Seq2[R, error] {
	c := prefix.Codec()
	var br keyrange.Range

	switch r.Start.kind {
	case keyrange.Included:
		br.Start = keyrange.Include(keycodec.Encode(c, r.Start.value))
	case keyrange.Excluded:
		br.Start = keyrange.Exclude(keycodec.Encode(c, r.Start.value))
	}

	switch r.End.kind {
	case keyrange.Excluded:
		br.End = keyrange.Exclude(keycodec.Encode(c, r.End.value))
	case keyrange.Included:
		if succ, ok := keyrange.PrefixSuccessor(keycodec.Encode(c, r.End.value)); ok {
			br.End = keyrange.Exclude(succ)
		}
		// No finite successor: the range is unbounded above.
	}

	return t.scan(s, br)
}
