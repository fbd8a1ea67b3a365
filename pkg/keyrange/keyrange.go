// Package keyrange turns encoded key prefixes and bounds into the byte
// ranges an ordered store actually scans.
package keyrange

import (
	"bytes"
	"slices"
)

// Kind says how a bound's key participates in a range.
type Kind uint8

const (
	// Unbounded means the range extends without limit in this direction.
	Unbounded Kind = iota
	// Included means keys equal to the bound key are inside the range.
	Included
	// Excluded means keys equal to the bound key are outside the range.
	Excluded
)

// Bound is one end of a byte range. The zero value is unbounded.
type Bound struct {
	Key  []byte
	Kind Kind
}

// Include bounds a range at key, keeping key itself inside.
func Include(key []byte) Bound { return Bound{Key: key, Kind: Included} }

// Exclude bounds a range at key, leaving key itself outside.
func Exclude(key []byte) Bound { return Bound{Key: key, Kind: Excluded} }

// Range is a pair of bounds over byte-lexicographic key space.
type Range struct {
	Start Bound
	End   Bound
}

// All is the unbounded range covering every key.
func All() Range { return Range{} }

// Contains reports whether key falls inside the range.
func (r Range) Contains(key []byte) bool {
	switch r.Start.Kind {
	case Included:
		if bytes.Compare(key, r.Start.Key) < 0 {
			return false
		}
	case Excluded:
		if bytes.Compare(key, r.Start.Key) <= 0 {
			return false
		}
	}
	switch r.End.Kind {
	case Included:
		if bytes.Compare(key, r.End.Key) > 0 {
			return false
		}
	case Excluded:
		if bytes.Compare(key, r.End.Key) >= 0 {
			return false
		}
	}
	return true
}

// PrefixSuccessor computes the carry-increment upper bound for a prefix: the
// rightmost byte strictly below 0xFF is incremented and everything after it
// dropped. The result is the smallest byte string that sorts above every key
// starting with prefix. ok is false when no finite successor exists, i.e.
// the prefix is empty or all 0xFF.
func PrefixSuccessor(prefix []byte) (succ []byte, ok bool) {
	for i := len(prefix) - 1; i >= 0; i-- {
		if prefix[i] < 0xFF {
			succ = slices.Clone(prefix[:i+1])
			succ[i]++
			return succ, true
		}
	}
	return nil, false
}

// PrefixRange is the byte range covering exactly the keys that start with
// prefix: [prefix, PrefixSuccessor(prefix)), or [prefix, +inf) when the
// successor does not exist.
func PrefixRange(prefix []byte) Range {
	r := Range{Start: Include(slices.Clone(prefix))}
	if succ, ok := PrefixSuccessor(prefix); ok {
		r.End = Exclude(succ)
	}
	return r
}
