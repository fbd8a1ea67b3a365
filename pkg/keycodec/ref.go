package keycodec

// Ref builds a Codec[*K] that delegates to the wrapped type's codec. This is
// the single forwarding rule for pointer-shaped keys; the encoding is
// byte-identical to the pointee's, so it inherits the pointee codec's
// ordering property.
func Ref[K any](c Codec[K]) Codec[*K] {
	return refCodec[K]{inner: c}
}

type refCodec[K any] struct {
	inner Codec[K]
}

func (c refCodec[K]) Append(dst []byte, key *K) []byte {
	return c.inner.Append(dst, *key)
}

func (c refCodec[K]) Decode(data []byte) (*K, []byte, error) {
	v, rest, err := c.inner.Decode(data)
	if err != nil {
		return nil, nil, err
	}
	return &v, rest, nil
}
