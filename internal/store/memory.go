package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is the development fallback used when Firestore is not
// configured. Documents are kept per collection in insertion order.
// Every operation takes the lock for its full duration, so each call is
// atomic the same way a single Firestore document write is.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Document
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{collections: make(map[string][]Document)}
}

// List returns all documents of a collection in insertion order.
func (s *MemoryStore) List(ctx context.Context, collection string) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.collections[collection]
	out := make([]Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, cloneDocument(doc))
	}
	return out, nil
}

// Get fetches one document by id.
func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.collections[collection] {
		if doc.ID == id {
			return cloneDocument(doc), true, nil
		}
	}
	return Document{}, false, nil
}

// Add stores a new document under a generated id.
func (s *MemoryStore) Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	s.collections[collection] = append(s.collections[collection], cloneDocument(Document{ID: id, Fields: fields}))
	return id, nil
}

// Set replaces a document's fields, appending the document when absent.
func (s *MemoryStore) Set(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneDocument(Document{ID: id, Fields: fields})
	docs := s.collections[collection]
	for i, doc := range docs {
		if doc.ID == id {
			docs[i] = stored
			return nil
		}
	}
	s.collections[collection] = append(docs, stored)
	return nil
}

// Delete removes a document; absent ids are a no-op.
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs := s.collections[collection]
	for i, doc := range docs {
		if doc.ID == id {
			s.collections[collection] = append(docs[:i:i], docs[i+1:]...)
			return nil
		}
	}
	return nil
}

// cloneDocument copies the field map so callers never share state with
// the store. Field values themselves are treated as immutable.
func cloneDocument(doc Document) Document {
	fields := make(map[string]interface{}, len(doc.Fields))
	for k, v := range doc.Fields {
		fields[k] = v
	}
	return Document{ID: doc.ID, Fields: fields}
}
