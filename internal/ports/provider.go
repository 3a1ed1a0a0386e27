package ports

import (
	"context"

	"rubick-translator/internal/domain"
)

// ProviderRequest carries the normalized fields every adapter receives.
type ProviderRequest struct {
	Text   string
	Source string
	Target string
}

// Provider represents a single machine translation backend.
type Provider interface {
	Kind() domain.ProviderKind
	Translate(ctx context.Context, req ProviderRequest) (domain.TranslationResult, error)
}
