package storage

import (
	"context"
	"io"
)

// BlobStore is the capability both storage strategies implement: write a blob
// and drop it again. Store returns the public locator for the written blob
// together with the identifier the backend assigned to it; the identifier
// stays empty for backends that address blobs by locator alone.
type BlobStore interface {
	Store(ctx context.Context, file io.Reader, name, mimeType string) (locator, externalID string, err error)
	Delete(ctx context.Context, locator, externalID string) error
}
