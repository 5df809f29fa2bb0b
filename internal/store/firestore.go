package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"nordstudio/internal/errors"
)

// FirestoreStore adapts a Firestore database to the Store interface.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestore connects to the given Firestore project. credentialsFile
// may be empty, in which case application default credentials are used.
func NewFirestore(ctx context.Context, projectID, credentialsFile string) (*FirestoreStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := firestore.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: connect firestore: %v", errors.ErrStorage, err)
	}
	return &FirestoreStore{client: client}, nil
}

// Close releases the underlying client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}

// List returns all documents of a collection.
func (s *FirestoreStore) List(ctx context.Context, collection string) ([]Document, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var docs []Document
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: list %s: %v", errors.ErrStorage, collection, err)
		}
		docs = append(docs, Document{ID: snap.Ref.ID, Fields: snap.Data()})
	}
	return docs, nil
}

// Get fetches one document by id.
func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return Document{}, false, nil
	}
	if err != nil {
		return Document{}, false, fmt.Errorf("%w: get %s/%s: %v", errors.ErrStorage, collection, id, err)
	}
	return Document{ID: snap.Ref.ID, Fields: snap.Data()}, true, nil
}

// Add stores a new document under a Firestore-generated id.
func (s *FirestoreStore) Add(ctx context.Context, collection string, fields map[string]interface{}) (string, error) {
	ref, _, err := s.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("%w: add to %s: %v", errors.ErrStorage, collection, err)
	}
	return ref.ID, nil
}

// Set replaces a document's fields, creating the document when absent.
func (s *FirestoreStore) Set(ctx context.Context, collection, id string, fields map[string]interface{}) error {
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, fields); err != nil {
		return fmt.Errorf("%w: set %s/%s: %v", errors.ErrStorage, collection, id, err)
	}
	return nil
}

// Delete removes a document; Firestore treats absent ids as a no-op.
func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("%w: delete %s/%s: %v", errors.ErrStorage, collection, id, err)
	}
	return nil
}
