// Package repository defines the persistence contract of the workshop: each
// collection is saved and loaded as one opaque blob under a key.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when nothing was ever saved under a key.
var ErrNotFound = errors.New("blob not found")

// BlobStore loads and saves whole serialized collections.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
