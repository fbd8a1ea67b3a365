package badgerstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/bifrost/pkg/keyrange"
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

func TestBadgerStore_FetchInsertDelete(t *testing.T) {
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
	require.NoError(t, s.Delete([]byte("k")))

	_, found, err = s.Fetch([]byte("k"))
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBadgerStore_RangeBounds(t *testing.T) {
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
		{"unbounded start", keyrange.Range{End: keyrange.Exclude([]byte{3})}, []byte{0, 1, 2}},
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

func TestBadgerStore_RangeIsSnapshot(t *testing.T) {
	s := openTestStore(t)
	require.NoError(t, s.Insert([]byte("a"), []byte("1")))
	require.NoError(t, s.Insert([]byte("b"), []byte("2")))

	seq, err := s.Range(keyrange.All())
	require.NoError(t, err)

	// Writes after the scan is taken do not appear in it.
	require.NoError(t, s.Insert([]byte("c"), []byte("3")))

	var keys []string
	for e, err := range seq {
		require.NoError(t, err)
		keys = append(keys, string(e.Key))
	}
	assert.Equal(t, []string{"a", "b"}, keys)
}
