package pebblestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/bifrost/pkg/keyrange"
	"github.com/ssargent/bifrost/pkg/store"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})
	return s
}

func TestPebbleStore_FetchInsertDelete(t *testing.T) {
	s := openTestStore(t)

	_, found, err := s.Fetch([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Insert([]byte("k"), []byte("v1")))
	require.NoError(t, s.Insert([]byte("k"), []byte("v2")))

	v, found, err := s.Fetch([]byte("k"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v2", string(v))

	require.NoError(t, s.Delete([]byte("k")))
	_, found, err = s.Fetch([]byte("k"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPebbleStore_RangeBounds(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 8; i++ {
		require.NoError(t, s.Insert([]byte{byte(i)}, []byte{byte(i)}))
	}

	tests := []struct {
		name string
		r    keyrange.Range
		want []byte
	}{
		{"all", keyrange.All(), []byte{0, 1, 2, 3, 4, 5, 6, 7}},
		{"closed", keyrange.Range{Start: keyrange.Include([]byte{2}), End: keyrange.Include([]byte{4})}, []byte{2, 3, 4}},
		{"half open", keyrange.Range{Start: keyrange.Include([]byte{2}), End: keyrange.Exclude([]byte{4})}, []byte{2, 3}},
		{"excluded start", keyrange.Range{Start: keyrange.Exclude([]byte{2}), End: keyrange.Include([]byte{4})}, []byte{3, 4}},
		{"unbounded end", keyrange.Range{Start: keyrange.Include([]byte{6})}, []byte{6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := s.Range(tt.r)
			require.NoError(t, err)

			var got []byte
			for e, err := range seq {
				require.NoError(t, err)
				got = append(got, e.Key[0])
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPebbleStore_RangeEarlyStop(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Insert([]byte{byte(i)}, nil))
	}

	seq, err := s.Range(keyrange.All())
	require.NoError(t, err)

	// Abandoning the scan early must not leak the iterator; Close catches a
	// leak by failing.
	var n int
	for _, err := range seq {
		require.NoError(t, err)
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestPebbleBatch_RefusesRange(t *testing.T) {
	s := openTestStore(t)

	b := s.NewBatch()
	require.NoError(t, b.Insert([]byte("staged"), []byte("v")))

	// The batch sees its own writes...
	v, found, err := b.Fetch([]byte("staged"))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "v", string(v))

	// ...but refuses to scan.
	_, err = b.Range(keyrange.All())
	assert.ErrorIs(t, err, store.ErrRangeUnsupported)

	// Not visible in the parent store until commit.
	_, found, err = s.Fetch([]byte("staged"))
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, b.Commit())
	_, found, err = s.Fetch([]byte("staged"))
	require.NoError(t, err)
	assert.True(t, found)
}
