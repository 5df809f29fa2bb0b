// Package store abstracts the document database holding site content.
// Two implementations exist: a Firestore adapter and an in-memory mock
// used when no Firestore project is configured.
package store

import "context"

// Document is one record of a collection; the id travels alongside the
// field map, never inside it.
type Document struct {
	ID     string
	Fields map[string]interface{}
}

// Store defines document persistence operations over named collections.
// Absence of a document is reported as a result, not an error; only
// backend failures surface as errors (wrapping errors.ErrStorage).
type Store interface {
	// List returns all documents of a collection. Order is store-defined:
	// insertion order for the in-memory variant, unspecified for Firestore.
	List(ctx context.Context, collection string) ([]Document, error)
	// Get fetches one document by id.
	Get(ctx context.Context, collection, id string) (Document, bool, error)
	// Add stores a new document under a generated id and returns that id.
	Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error)
	// Set replaces a document's fields, creating the document when absent.
	Set(ctx context.Context, collection, id string, fields map[string]interface{}) error
	// Delete removes a document. Deleting an absent id is a no-op.
	Delete(ctx context.Context, collection, id string) error
}
