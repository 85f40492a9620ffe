// Package store is the document store client used by the qa service.
//
// A store keeps schemaless documents grouped by collection name and addressed
// by a store-generated id. Creating a document is an explicit three-step
// contract: NewID reserves an id, Set writes the full field set and Get reads
// the document back. Every backend must make a Set visible to the next Get of
// the same document (read-your-write on a single document).
package store

import (
	"context"
	"errors"
	"reflect"
)

var (
	ErrNotFound = errors.New("document not found")
)

// Document is a raw stored record.
type Document map[string]interface{}

// Clone returns a shallow copy of d.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Store is the narrow interface the resolver layer depends on.
type Store interface {
	// NewID returns a fresh id for the collection. Nothing is written.
	NewID(collection string) string
	// Set writes doc under id, replacing any previous content.
	Set(ctx context.Context, collection, id string, doc Document) error
	// Get returns the document or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)
	// All returns every document of the collection in store-defined order.
	All(ctx context.Context, collection string) ([]Document, error)
	// Where returns the documents whose field equals value.
	Where(ctx context.Context, collection, field string, value interface{}) ([]Document, error)
}

// Pinger is implemented by backends that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Ping checks s when it implements Pinger and succeeds otherwise.
func Ping(ctx context.Context, s Store) error {
	if p, ok := s.(Pinger); ok {
		return p.Ping(ctx)
	}
	return nil
}

func matches(doc Document, field string, value interface{}) bool {
	v, ok := doc[field]
	if !ok {
		return false
	}
	return reflect.DeepEqual(v, value)
}

func filter(docs []Document, field string, value interface{}) []Document {
	out := make([]Document, 0, len(docs))
	for _, d := range docs {
		if matches(d, field, value) {
			out = append(out, d)
		}
	}
	return out
}
