package pebblestore

import (
	"errors"
	"iter"
	"slices"

	"github.com/cockroachdb/pebble"

	"github.com/ssargent/bifrost/pkg/keyrange"
	"github.com/ssargent/bifrost/pkg/store"
)

// Batch is a write batch realization of the store contract. Point reads see
// the batch's own pending writes; range scans are refused with
// ErrRangeUnsupported rather than silently returning nothing. Writes become
// visible to the parent store only on Commit.
type Batch struct {
	batch *pebble.Batch
}

// NewBatch starts an empty batch against the store.
func (s *Store) NewBatch() *Batch {
	return &Batch{batch: s.db.NewIndexedBatch()}
}

// Fetch returns a copy of the value under key, including values written to
// this batch but not yet committed.
func (b *Batch) Fetch(key []byte) ([]byte, bool, error) {
	value, closer, err := b.batch.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	defer closer.Close()
	return slices.Clone(value), true, nil
}

// Insert stages an upsert of key to value.
func (b *Batch) Insert(key, value []byte) error {
	return b.batch.Set(key, value, nil)
}

// Delete stages removal of key.
func (b *Batch) Delete(key []byte) error {
	return b.batch.Delete(key, nil)
}

// Range is not supported on a batch.
func (b *Batch) Range(keyrange.Range) (iter.Seq2[store.Entry, error], error) {
	return nil, store.ErrRangeUnsupported
}

// Commit applies the batch atomically and closes it.
func (b *Batch) Commit() error {
	return b.batch.Commit(pebble.Sync)
}

// Discard abandons the batch without applying it.
func (b *Batch) Discard() error {
	return b.batch.Close()
}
