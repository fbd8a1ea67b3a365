package keyrange

import (
	"bytes"
	"testing"
)

func TestPrefixSuccessor(t *testing.T) {
	tests := []struct {
		name   string
		prefix []byte
		want   []byte
		ok     bool
	}{
		{"simple increment", []byte{0x01, 0x02}, []byte{0x01, 0x03}, true},
		{"carry over trailing max", []byte{0x01, 0xFF}, []byte{0x02}, true},
		{"carry over several", []byte{0x01, 0xFF, 0xFF}, []byte{0x02}, true},
		{"single byte", []byte{0x00}, []byte{0x01}, true},
		{"all max", []byte{0xFF, 0xFF}, nil, false},
		{"empty", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := PrefixSuccessor(tt.prefix)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !bytes.Equal(got, tt.want) {
				t.Fatalf("successor = %x, want %x", got, tt.want)
			}
		})
	}
}

func TestPrefixSuccessorDoesNotMutateInput(t *testing.T) {
	prefix := []byte{0x01, 0x02}
	PrefixSuccessor(prefix)
	if !bytes.Equal(prefix, []byte{0x01, 0x02}) {
		t.Fatal("input prefix was mutated")
	}
}

// Every key with the prefix must fall inside PrefixRange, and every key
// without it must fall outside.
func TestPrefixRangeCorrectness(t *testing.T) {
	prefix := []byte{0x10, 0xFF}
	r := PrefixRange(prefix)

	inside := [][]byte{
		{0x10, 0xFF},
		{0x10, 0xFF, 0x00},
		{0x10, 0xFF, 0xFF, 0xFF},
	}
	outside := [][]byte{
		{},
		{0x10},
		{0x10, 0xFE, 0xFF},
		{0x11},
		{0x11, 0x00},
		{0xFF},
	}

	for _, key := range inside {
		if !r.Contains(key) {
			t.Errorf("key %x should be inside the prefix range", key)
		}
	}
	for _, key := range outside {
		if r.Contains(key) {
			t.Errorf("key %x should be outside the prefix range", key)
		}
	}
}

func TestPrefixRangeUnbounded(t *testing.T) {
	r := PrefixRange([]byte{0xFF, 0xFF})
	if r.End.Kind != Unbounded {
		t.Fatalf("expected unbounded end, got kind %d key %x", r.End.Kind, r.End.Key)
	}
	if !r.Contains([]byte{0xFF, 0xFF, 0x01}) {
		t.Error("nested key should be inside")
	}
	if r.Contains([]byte{0xFE}) {
		t.Error("key below the prefix should be outside")
	}

	if empty := PrefixRange(nil); empty.End.Kind != Unbounded || empty.Start.Kind != Included {
		t.Fatal("empty prefix should produce [empty, +inf)")
	}
}

func TestRangeContainsBounds(t *testing.T) {
	r := Range{Start: Include([]byte{0x05}), End: Exclude([]byte{0x09})}

	if !r.Contains([]byte{0x05}) {
		t.Error("included start key should be inside")
	}
	if r.Contains([]byte{0x09}) {
		t.Error("excluded end key should be outside")
	}

	r = Range{Start: Exclude([]byte{0x05}), End: Include([]byte{0x09})}
	if r.Contains([]byte{0x05}) {
		t.Error("excluded start key should be outside")
	}
	if !r.Contains([]byte{0x09}) {
		t.Error("included end key should be inside")
	}

	if !All().Contains([]byte{0x00}) || !All().Contains(nil) {
		t.Error("the unbounded range should contain everything")
	}
}
