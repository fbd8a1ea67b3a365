package keycodec

import (
	"bytes"
	"errors"
	"testing"
)

func TestTupleRoundTrip(t *testing.T) {
	pair := PairOf[uint64, string](Uint64{}, String{})
	roundTrip(t, pair, Pair[uint64, string]{A: 1, B: "one"}, eq)

	triple := TripleOf[uint32, int16, string](Uint32{}, Int16{}, RawString{})
	roundTrip(t, triple, Triple[uint32, int16, string]{A: 9, B: -2, C: "tail"}, eq)

	quad := QuadOf[uint8, uint8, uint8, uint8](Uint8{}, Uint8{}, Uint8{}, Uint8{})
	roundTrip(t, quad, Quad[uint8, uint8, uint8, uint8]{A: 1, B: 2, C: 3, D: 4}, eq)
}

func TestTupleEncodingIsConcatenation(t *testing.T) {
	c := TripleOf[uint16, int32, string](Uint16{}, Int32{}, String{})
	key := Triple[uint16, int32, string]{A: 3, B: -4, C: "x"}

	var want []byte
	want = Uint16{}.Append(want, key.A)
	want = Int32{}.Append(want, key.B)
	want = String{}.Append(want, key.C)

	if got := Encode(c, key); !bytes.Equal(got, want) {
		t.Fatalf("got %x, want %x", got, want)
	}
}

// Every leading sub-tuple must encode to a literal byte-prefix of the full
// tuple's encoding, for every completion.
func TestTuplePrefixProperty(t *testing.T) {
	full := TripleOf[uint64, uint32, string](Uint64{}, Uint32{}, String{})

	for _, key := range []Triple[uint64, uint32, string]{
		{A: 0, B: 0, C: ""},
		{A: 42, B: 7, C: "suffix"},
		{A: 1<<64 - 1, B: 1<<32 - 1, C: "zzz"},
	} {
		whole := Encode(full, key)

		p1 := Encode(full.PrefixA().Codec(), key.A)
		if !bytes.HasPrefix(whole, p1) {
			t.Fatalf("first-field encoding %x is not a prefix of %x", p1, whole)
		}

		p2 := Encode(full.PrefixAB().Codec(), Pair[uint64, uint32]{A: key.A, B: key.B})
		if !bytes.HasPrefix(whole, p2) {
			t.Fatalf("leading-pair encoding %x is not a prefix of %x", p2, whole)
		}
		if len(p2) <= len(p1) {
			t.Fatal("leading-pair prefix should be longer than first-field prefix")
		}
	}
}

func TestNestedPairMatchesTriple(t *testing.T) {
	nested := PairOf[uint16, Pair[uint32, uint64]](Uint16{}, PairOf[uint32, uint64](Uint32{}, Uint64{}))
	flat := TripleOf[uint16, uint32, uint64](Uint16{}, Uint32{}, Uint64{})

	got := Encode(nested, Pair[uint16, Pair[uint32, uint64]]{A: 1, B: Pair[uint32, uint64]{A: 2, B: 3}})
	want := Encode(flat, Triple[uint16, uint32, uint64]{A: 1, B: 2, C: 3})

	if !bytes.Equal(got, want) {
		t.Fatalf("nested pair encoded %x, flat triple encoded %x", got, want)
	}
}

func TestTupleDecodeFailFast(t *testing.T) {
	c := TripleOf[uint32, uint32, uint32](Uint32{}, Uint32{}, Uint32{})

	// Enough bytes for the first two fields only.
	data := Encode(PairOf[uint32, uint32](Uint32{}, Uint32{}), Pair[uint32, uint32]{A: 1, B: 2})

	_, _, err := c.Decode(data)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if ferr.Index != 2 {
		t.Fatalf("expected failure at field 2, got field %d", ferr.Index)
	}
	var short *DataTooShort
	if !errors.As(ferr.Err, &short) {
		t.Fatalf("expected wrapped DataTooShort, got %v", ferr.Err)
	}
}

// A count header larger than the buffer could ever satisfy must come back as
// an error, never as an allocation failure.
func TestSliceDecodeCorruptCountHeader(t *testing.T) {
	c := SliceOf[uint8](Uint8{})

	// Header is all 0xFF: a count of 2^64-1 with no content behind it.
	data := bytes.Repeat([]byte{0xFF}, 8)

	_, _, err := c.Decode(data)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if ferr.Index != 0 {
		t.Fatalf("expected failure at element 0, got %d", ferr.Index)
	}
	var short *DataTooShort
	if !errors.As(ferr.Err, &short) {
		t.Fatalf("expected wrapped DataTooShort, got %v", ferr.Err)
	}
}

func TestSliceDecodeElementError(t *testing.T) {
	c := SliceOf[uint64](Uint64{})

	// Count header says two elements, but only one is present.
	data := appendHeader(nil, 2)
	data = Uint64{}.Append(data, 1)

	_, _, err := c.Decode(data)
	var ferr *FieldError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected FieldError, got %v", err)
	}
	if ferr.Index != 1 {
		t.Fatalf("expected failure at element 1, got %d", ferr.Index)
	}
}
