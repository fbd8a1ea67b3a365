package record

import "github.com/ssargent/bifrost/pkg/keyrange"

// Bound is one end of a typed scan range. The zero value is unbounded.
type Bound[P any] struct {
	value P
	kind  keyrange.Kind
}

// Included bounds a range at v, keeping v itself (and, for composite prefix
// values, everything nested under it when used as an end bound) inside.
func Included[P any](v P) Bound[P] {
	return Bound[P]{value: v, kind: keyrange.Included}
}

// Excluded bounds a range at v, leaving v itself outside.
func Excluded[P any](v P) Bound[P] {
	return Bound[P]{value: v, kind: keyrange.Excluded}
}

// Unbounded leaves one end of a range open.
func Unbounded[P any]() Bound[P] {
	return Bound[P]{}
}

// Range is a typed scan range over key-prefix values.
type Range[P any] struct {
	Start Bound[P]
	End   Bound[P]
}

// Closed is the inclusive range [start, end].
func Closed[P any](start, end P) Range[P] {
	return Range[P]{Start: Included(start), End: Included(end)}
}

// HalfOpen is the range [start, end) excluding the end value.
func HalfOpen[P any](start, end P) Range[P] {
	return Range[P]{Start: Included(start), End: Excluded(end)}
}

// From is the unbounded-above range [start, +inf).
func From[P any](start P) Range[P] {
	return Range[P]{Start: Included(start)}
}

// Until is the unbounded-below range (-inf, end).
func Until[P any](end P) Range[P] {
	return Range[P]{End: Excluded(end)}
}
