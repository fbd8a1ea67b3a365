package api

import (
	"fmt"
	"unicode/utf8"

	"github.com/segmentio/ksuid"

	"github.com/ssargent/bifrost/pkg/keycodec"
	"github.com/ssargent/bifrost/pkg/record"
)

// Document is the record served by the REST API. The id is the key, stored
// raw so documents scan back in lexicographic id order.
type Document struct {
	ID    string
	Value string
}

// NewDocumentID returns a fresh, k-sortable document id.
func NewDocumentID() string {
	return ksuid.New().String()
}

// Documents describes how a Document maps onto the key-value store.
func Documents() *record.Type[Document, string] {
	return &record.Type[Document, string]{
		Key: keycodec.RawString{},
		Encode: func(d Document) (string, []byte, error) {
			if d.ID == "" {
				return "", nil, fmt.Errorf("document id is empty")
			}
			return d.ID, []byte(d.Value), nil
		},
		Decode: func(id string, value []byte) (Document, error) {
			if !utf8.Valid(value) {
				return Document{}, fmt.Errorf("document %q holds non-text payload", id)
			}
			return Document{ID: id, Value: string(value)}, nil
		},
	}
}

// DocumentIDPrefix is evidence that a plain string prefix of a document id is
// also a byte prefix of its encoded key, which holds because raw strings
// encode as their bytes.
func DocumentIDPrefix() keycodec.PrefixOf[string, string] {
	return keycodec.Declare[string, string](keycodec.RawString{})
}
