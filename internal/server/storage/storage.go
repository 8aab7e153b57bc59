// Package storage defines the blob store port used by the file service and
// its S3-compatible implementation. The metadata layer never touches bytes;
// it only tracks the opaque keys minted here.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// BlobStore persists and retrieves binary payloads by opaque key.
// Implementations are expected to block on I/O; callers must not invoke them
// while holding metadata locks or transactions.
type BlobStore interface {
	// Put persists size bytes from body under key.
	Put(ctx context.Context, key, contentType string, size int64, body io.Reader) error
	// Get streams the payload stored under key. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the payload stored under key.
	Delete(ctx context.Context, key string) error
}

// NewStorageKey mints a fresh blob key for the given owner. The owner prefix
// keeps keys listable per user.
func NewStorageKey(userID string) string {
	return fmt.Sprintf("%s_%s", userID, uuid.New())
}
