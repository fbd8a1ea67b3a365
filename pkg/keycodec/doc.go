// Package keycodec provides order-preserving byte encodings for typed keys.
//
// Bifrost stores application records in any ordered byte-keyed engine. For
// range and prefix scans over typed keys to work, the byte-lexicographic
// order of encoded keys must agree with the natural order of the source
// values. This package defines the Codec contract and one codec per
// supported key type.
//
// # Encoding Rules
//
// Per-type byte formats (all multi-byte quantities are big-endian):
//
//	uint8..uint64, uint    raw big-endian bytes            order-preserving
//	int8..int64, int       two's complement, MSB ^ 0x80    order-preserving
//	float32, float64       IEEE-754 bits; sign bit 0 ->    order-preserving
//	                       flip it, sign bit 1 -> invert   (NaN unspecified)
//	                       every byte
//	FixedBytes             identity                        order-preserving
//	String / Bytes         8-byte length header + content  NOT order-preserving
//	RawString / RawBytes   content only, no header         order-preserving,
//	                                                       last field only
//	CString                content + 0x00 terminator       order-preserving
//	SliceOf(elem)          8-byte count header + elements  NOT order-preserving
//	Pair/Triple/Quad       field encodings concatenated    iff all fields are
//
// Length-prefixed encodings (String, Bytes, SliceOf) compare by length before
// content, so they do not preserve order. This is a documented trade-off:
// they round-trip cleanly inside composite keys at any position, whereas the
// greedy RawString/RawBytes codecs preserve order but consume the entire
// remainder and are therefore only legal as the sole or last field of a key.
//
// # Decoding
//
// Decode consumes a value from the front of a buffer and returns the
// unconsumed remainder, so composite encodings decode sequentially.
// Failures carry enough structure to diagnose the cause: DataTooShort
// reports expected versus actual byte counts, and composite codecs wrap the
// first failing field in a FieldError and stop.
//
// # Prefix Keys
//
// PrefixOf[K, P] is declared evidence that every encoding of a P value is a
// byte-prefix of some valid K encoding. The declaration is explicit, never
// inferred from the encodings themselves: every codec is a prefix of itself
// (Self), every strict leading sub-tuple of a tuple is a prefix of the full
// tuple (PairCodec.PrefixA and friends), and applications can vouch for
// their own types with Declare.
//
// All codecs are stateless values and safe for concurrent use.
package keycodec
