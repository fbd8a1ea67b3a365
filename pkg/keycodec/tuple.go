package keycodec

// Tuples encode as the concatenation of each field's encoding in declared
// order, and are order-preserving iff every field codec is. Higher arities
// than four compose by nesting: a Pair[A, Pair[B, C]] encodes byte-identical
// to a Triple[A, B, C].
//
// Every non-empty strict leading sub-tuple is declared a valid prefix of the
// full tuple via the PrefixA/PrefixAB/PrefixABC methods.

// Pair is a two-field composite key.
type Pair[A, B any] struct {
	A A
	B B
}

// PairOf builds the codec for Pair[A, B] from the field codecs.
func PairOf[A, B any](a Codec[A], b Codec[B]) PairCodec[A, B] {
	return PairCodec[A, B]{a: a, b: b}
}

// PairCodec is the Codec[Pair[A, B]].
type PairCodec[A, B any] struct {
	a Codec[A]
	b Codec[B]
}

func (c PairCodec[A, B]) Append(dst []byte, key Pair[A, B]) []byte {
	dst = c.a.Append(dst, key.A)
	return c.b.Append(dst, key.B)
}

func (c PairCodec[A, B]) Decode(data []byte) (Pair[A, B], []byte, error) {
	var key Pair[A, B]
	a, rest, err := c.a.Decode(data)
	if err != nil {
		return key, nil, &FieldError{Index: 0, Err: err}
	}
	b, rest, err := c.b.Decode(rest)
	if err != nil {
		return key, nil, &FieldError{Index: 1, Err: err}
	}
	key.A, key.B = a, b
	return key, rest, nil
}

// PrefixA declares the first field a valid prefix of the pair.
func (c PairCodec[A, B]) PrefixA() PrefixOf[Pair[A, B], A] {
	return PrefixOf[Pair[A, B], A]{codec: c.a}
}

// Triple is a three-field composite key.
type Triple[A, B, C any] struct {
	A A
	B B
	C C
}

// TripleOf builds the codec for Triple[A, B, C] from the field codecs.
func TripleOf[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) TripleCodec[A, B, C] {
	return TripleCodec[A, B, C]{a: a, b: b, c: c}
}

// TripleCodec is the Codec[Triple[A, B, C]].
type TripleCodec[A, B, C any] struct {
	a Codec[A]
	b Codec[B]
	c Codec[C]
}

func (t TripleCodec[A, B, C]) Append(dst []byte, key Triple[A, B, C]) []byte {
	dst = t.a.Append(dst, key.A)
	dst = t.b.Append(dst, key.B)
	return t.c.Append(dst, key.C)
}

func (t TripleCodec[A, B, C]) Decode(data []byte) (Triple[A, B, C], []byte, error) {
	var key Triple[A, B, C]
	a, rest, err := t.a.Decode(data)
	if err != nil {
		return key, nil, &FieldError{Index: 0, Err: err}
	}
	b, rest, err := t.b.Decode(rest)
	if err != nil {
		return key, nil, &FieldError{Index: 1, Err: err}
	}
	c, rest, err := t.c.Decode(rest)
	if err != nil {
		return key, nil, &FieldError{Index: 2, Err: err}
	}
	key.A, key.B, key.C = a, b, c
	return key, rest, nil
}

// PrefixA declares the first field a valid prefix of the triple.
func (t TripleCodec[A, B, C]) PrefixA() PrefixOf[Triple[A, B, C], A] {
	return PrefixOf[Triple[A, B, C], A]{codec: t.a}
}

// PrefixAB declares the leading pair a valid prefix of the triple.
func (t TripleCodec[A, B, C]) PrefixAB() PrefixOf[Triple[A, B, C], Pair[A, B]] {
	return PrefixOf[Triple[A, B, C], Pair[A, B]]{codec: PairOf(t.a, t.b)}
}

// Quad is a four-field composite key.
type Quad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// QuadOf builds the codec for Quad[A, B, C, D] from the field codecs.
func QuadOf[A, B, C, D any](a Codec[A], b Codec[B], c Codec[C], d Codec[D]) QuadCodec[A, B, C, D] {
	return QuadCodec[A, B, C, D]{a: a, b: b, c: c, d: d}
}

// QuadCodec is the Codec[Quad[A, B, C, D]].
type QuadCodec[A, B, C, D any] struct {
	a Codec[A]
	b Codec[B]
	c Codec[C]
	d Codec[D]
}

func (q QuadCodec[A, B, C, D]) Append(dst []byte, key Quad[A, B, C, D]) []byte {
	dst = q.a.Append(dst, key.A)
	dst = q.b.Append(dst, key.B)
	dst = q.c.Append(dst, key.C)
	return q.d.Append(dst, key.D)
}

func (q QuadCodec[A, B, C, D]) Decode(data []byte) (Quad[A, B, C, D], []byte, error) {
	var key Quad[A, B, C, D]
	a, rest, err := q.a.Decode(data)
	if err != nil {
		return key, nil, &FieldError{Index: 0, Err: err}
	}
	b, rest, err := q.b.Decode(rest)
	if err != nil {
		return key, nil, &FieldError{Index: 1, Err: err}
	}
	c, rest, err := q.c.Decode(rest)
	if err != nil {
		return key, nil, &FieldError{Index: 2, Err: err}
	}
	d, rest, err := q.d.Decode(rest)
	if err != nil {
		return key, nil, &FieldError{Index: 3, Err: err}
	}
	key.A, key.B, key.C, key.D = a, b, c, d
	return key, rest, nil
}

// PrefixA declares the first field a valid prefix of the quad.
func (q QuadCodec[A, B, C, D]) PrefixA() PrefixOf[Quad[A, B, C, D], A] {
	return PrefixOf[Quad[A, B, C, D], A]{codec: q.a}
}

// PrefixAB declares the leading pair a valid prefix of the quad.
func (q QuadCodec[A, B, C, D]) PrefixAB() PrefixOf[Quad[A, B, C, D], Pair[A, B]] {
	return PrefixOf[Quad[A, B, C, D], Pair[A, B]]{codec: PairOf(q.a, q.b)}
}

// PrefixABC declares the leading triple a valid prefix of the quad.
func (q QuadCodec[A, B, C, D]) PrefixABC() PrefixOf[Quad[A, B, C, D], Triple[A, B, C]] {
	return PrefixOf[Quad[A, B, C, D], Triple[A, B, C]]{codec: TripleOf(q.a, q.b, q.c)}
}
