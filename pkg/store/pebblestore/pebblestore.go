// Package pebblestore adapts a cockroachdb/pebble database to the Bifrost
// store contract.
//
// Pebble iterators read from an implicit snapshot, so a running Range scan
// is unaffected by later writes. Scans are lazy: the iterator is opened when
// the sequence is consumed and closed when the consumer finishes or stops
// early.
package pebblestore

import (
	"errors"
	"iter"
	"slices"

	"github.com/cockroachdb/pebble"

	"github.com/ssargent/bifrost/pkg/keyrange"
	"github.com/ssargent/bifrost/pkg/store"
)

// Store is a pebble-backed ordered byte store.
type Store struct {
	db *pebble.DB
}

// Open opens (creating if needed) a pebble database at dir.
func Open(dir string) (*Store, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Wrap adapts an already-open pebble database. The caller keeps ownership of
// its lifecycle.
func Wrap(db *pebble.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Fetch returns a copy of the value stored under key.
func (s *Store) Fetch(key []byte) ([]byte, bool, error) {
	value, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()
	return slices.Clone(value), true, nil
}

// Insert upserts key to value.
func (s *Store) Insert(key, value []byte) error {
	return s.db.Set(key, value, pebble.Sync)
}

// Delete removes key.
func (s *Store) Delete(key []byte) error {
	return s.db.Delete(key, pebble.Sync)
}

// Range scans r in ascending key order, lazily, from pebble's snapshot at
// iterator-open time.
func (s *Store) Range(r keyrange.Range) (iter.Seq2[store.Entry, error], error) {
	opts := iterOptions(r)

	return func(yield func(store.Entry, error) bool) {
		it, err := s.db.NewIter(opts)
		if err != nil {
			yield(store.Entry{}, err)
			return
		}
		defer it.Close()

		for valid := it.First(); valid; valid = it.Next() {
			entry := store.Entry{
				Key:   slices.Clone(it.Key()),
				Value: slices.Clone(it.Value()),
			}
			if !yield(entry, nil) {
				return
			}
		}
		if err := it.Error(); err != nil {
			yield(store.Entry{}, err)
		}
	}, nil
}

// iterOptions maps range bounds onto pebble's [LowerBound, UpperBound)
// convention. An excluded start and an included end are expressed by
// appending 0x00, the smallest byte suffix, to the bound key.
func iterOptions(r keyrange.Range) *pebble.IterOptions {
	opts := &pebble.IterOptions{}

	switch r.Start.Kind {
	case keyrange.Included:
		opts.LowerBound = slices.Clone(r.Start.Key)
	case keyrange.Excluded:
		opts.LowerBound = append(slices.Clone(r.Start.Key), 0x00)
	}

	switch r.End.Kind {
	case keyrange.Excluded:
		opts.UpperBound = slices.Clone(r.End.Key)
	case keyrange.Included:
		opts.UpperBound = append(slices.Clone(r.End.Key), 0x00)
	}

	return opts
}
