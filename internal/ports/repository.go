package ports

import (
	"context"
	"errors"

	"rubick-translator/internal/domain"
)

// ErrNotFound is returned by DocumentStore.Get for an unknown id.
var ErrNotFound = errors.New("document not found")

// DocumentStore is the host's key-document store. Put overwrites whatever is
// stored under doc.ID (last writer wins).
type DocumentStore interface {
	Get(ctx context.Context, id string) (*domain.Document, error)
	Put(ctx context.Context, doc *domain.Document) error
}
