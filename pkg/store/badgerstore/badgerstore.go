// Package badgerstore adapts a dgraph-io/badger database to the Bifrost
// store contract.
//
// Badger transaction values cannot outlive the transaction, so Range
// materializes the matching entries inside a read transaction and returns a
// sequence over the snapshot. Callers that scan very large ranges should
// narrow the bounds rather than filter afterwards.
package badgerstore

import (
	"bytes"
	"errors"
	"iter"
	"slices"

	badger "github.com/dgraph-io/badger/v4"

	"github.com/ssargent/bifrost/pkg/keyrange"
	"github.com/ssargent/bifrost/pkg/store"
)

// Store is a badger-backed ordered byte store.
type Store struct {
	db *badger.DB
}

// Open opens (creating if needed) a badger database at dir. Badger's own
// logger is silenced; the caller owns operational logging.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Wrap adapts an already-open badger database. The caller keeps ownership of
// its lifecycle.
func Wrap(db *badger.DB) *Store {
	return &Store{db: db}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Fetch returns a copy of the value stored under key.
func (s *Store) Fetch(key []byte) ([]byte, bool, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Insert upserts key to value.
func (s *Store) Insert(key, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

// Delete removes key. Deleting an absent key is not an error.
func (s *Store) Delete(key []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

// Range scans r in ascending key order. The result set is collected inside a
// single read transaction, so it is a consistent snapshot.
func (s *Store) Range(r keyrange.Range) (iter.Seq2[store.Entry, error], error) {
	var entries []store.Entry

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		for seekStart(it, r.Start); it.Valid(); it.Next() {
			item := it.Item()
			key := item.KeyCopy(nil)
			if pastEnd(key, r.End) {
				break
			}
			value, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			entries = append(entries, store.Entry{Key: key, Value: value})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return func(yield func(store.Entry, error) bool) {
		for _, e := range entries {
			if !yield(e, nil) {
				return
			}
		}
	}, nil
}

// seekStart positions the iterator at the first key inside the start bound.
// An excluded start seeks to the bound key followed by 0x00, the smallest
// strictly greater key.
func seekStart(it *badger.Iterator, b keyrange.Bound) {
	switch b.Kind {
	case keyrange.Included:
		it.Seek(b.Key)
	case keyrange.Excluded:
		it.Seek(append(slices.Clone(b.Key), 0x00))
	default:
		it.Rewind()
	}
}

func pastEnd(key []byte, b keyrange.Bound) bool {
	switch b.Kind {
	case keyrange.Included:
		return bytes.Compare(key, b.Key) > 0
	case keyrange.Excluded:
		return bytes.Compare(key, b.Key) >= 0
	default:
		return false
	}
}
