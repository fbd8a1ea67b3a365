package store

import (
	"bytes"
	"iter"
	"slices"
	"sync"

	"github.com/ssargent/bifrost/pkg/keyrange"
)

// MemStore is the reference Store: a sorted in-memory slice of entries
// guarded by a single mutex. Fetch copies the matching value. Range eagerly
// materializes every matching entry under the lock and iterates after
// releasing it, so a long scan never holds the lock and always sees an
// atomic point-in-time snapshot.
type MemStore struct {
	mutex   sync.Mutex
	entries []memEntry // ascending by key, no duplicates
}

type memEntry struct {
	key   []byte
	value []byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// search returns the index of key in entries, or the index it would be
// inserted at. Caller holds the mutex.
func (s *MemStore) search(key []byte) (int, bool) {
	return slices.BinarySearchFunc(s.entries, key, func(e memEntry, k []byte) int {
		return bytes.Compare(e.key, k)
	})
}

// Fetch returns a copy of the value stored under key.
func (s *MemStore) Fetch(key []byte) ([]byte, bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i, found := s.search(key)
	if !found {
		return nil, false, nil
	}
	return slices.Clone(s.entries[i].value), true, nil
}

// Insert stores a private copy of key and value, replacing any existing
// entry for the key.
func (s *MemStore) Insert(key, value []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	e := memEntry{key: slices.Clone(key), value: slices.Clone(value)}
	i, found := s.search(key)
	if found {
		s.entries[i] = e
		return nil
	}
	s.entries = slices.Insert(s.entries, i, e)
	return nil
}

// Delete removes the entry for key if one exists.
func (s *MemStore) Delete(key []byte) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if i, found := s.search(key); found {
		s.entries = slices.Delete(s.entries, i, i+1)
	}
	return nil
}

// Range returns an ascending snapshot of the entries inside r, taken
// atomically at call time.
func (s *MemStore) Range(r keyrange.Range) (iter.Seq2[Entry, error], error) {
	s.mutex.Lock()
	lo, hi := s.bounds(r)
	snapshot := make([]Entry, 0, max(hi-lo, 0))
	for i := lo; i < hi; i++ {
		snapshot = append(snapshot, Entry{
			Key:   slices.Clone(s.entries[i].key),
			Value: slices.Clone(s.entries[i].value),
		})
	}
	s.mutex.Unlock()

	return func(yield func(Entry, error) bool) {
		for _, e := range snapshot {
			if !yield(e, nil) {
				return
			}
		}
	}, nil
}

// bounds resolves r to a half-open index window [lo, hi) over the sorted
// entries. Caller holds the mutex.
func (s *MemStore) bounds(r keyrange.Range) (lo, hi int) {
	switch r.Start.Kind {
	case keyrange.Unbounded:
		lo = 0
	case keyrange.Included:
		lo, _ = s.search(r.Start.Key)
	case keyrange.Excluded:
		i, found := s.search(r.Start.Key)
		if found {
			i++
		}
		lo = i
	}

	switch r.End.Kind {
	case keyrange.Unbounded:
		hi = len(s.entries)
	case keyrange.Included:
		i, found := s.search(r.End.Key)
		if found {
			i++
		}
		hi = i
	case keyrange.Excluded:
		hi, _ = s.search(r.End.Key)
	}
	return lo, hi
}
