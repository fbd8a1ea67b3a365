package keycodec

// PrefixOf is declared evidence that every encoding produced by the P codec
// is a byte-prefix of some valid K encoding. It authorizes prefix and
// partial-key scans in the record layer; the relation is declared per type
// pair, never inferred from the encodings.
type PrefixOf[K, P any] struct {
	codec Codec[P]
}

// Codec returns the codec that encodes the prefix values.
func (p PrefixOf[K, P]) Codec() Codec[P] { return p.codec }

// Self declares every key type a valid prefix of itself. For greedy codecs
// such as RawString this doubles as a content-prefix declaration: "hel"
// encodes to a byte-prefix of "hello".
func Self[K any](c Codec[K]) PrefixOf[K, K] {
	return PrefixOf[K, K]{codec: c}
}

// Declare vouches that c's encodings are byte-prefixes of K encodings. The
// caller owns the guarantee; a false declaration silently corrupts scan
// results.
func Declare[K, P any](c Codec[P]) PrefixOf[K, P] {
	return PrefixOf[K, P]{codec: c}
}
