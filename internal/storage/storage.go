// Package storage persists the person collection and opaque media blobs.
// The full collection is the unit of persistence: Save replaces everything
// the store holds in one transaction, Load returns the saved snapshot.
package storage

import (
	"context"

	"github.com/Andreyhiitola/family-tree-v2/internal/model"
)

// Store is the persistence interface the CLI works against.
type Store interface {
	// Load returns the previously saved records, or nil when nothing
	// has been saved yet.
	Load(ctx context.Context) ([]model.Person, error)

	// Save persists the full collection, replacing any prior snapshot.
	Save(ctx context.Context, people []model.Person) error

	// PutBlob stores opaque media bytes and returns a reference id.
	PutBlob(ctx context.Context, kind string, data []byte) (string, error)

	// GetBlob returns the bytes behind a reference id.
	GetBlob(ctx context.Context, ref string) ([]byte, error)

	// DeleteBlob removes a stored blob. Missing refs are not an error.
	DeleteBlob(ctx context.Context, ref string) error

	// Close closes the store.
	Close() error
}
