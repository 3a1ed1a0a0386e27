// Package memory is an in-process DocumentStore used by tests and by
// ephemeral CLI runs.
package memory

import (
	"context"
	"sync"
	"time"

	"rubick-translator/internal/domain"
	"rubick-translator/internal/ports"
)

type Store struct {
	mu   sync.RWMutex
	docs map[string]domain.Document
}

func New() *Store { return &Store{docs: make(map[string]domain.Document)} }

func (s *Store) Get(ctx context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.docs[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	d.Body = append([]byte(nil), d.Body...)
	return &d, nil
}

func (s *Store) Put(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.docs[doc.ID]
	doc.Rev = prev.Rev + 1
	doc.UpdatedAt = time.Now().UTC()
	stored := *doc
	stored.Body = append([]byte(nil), doc.Body...)
	s.docs[doc.ID] = stored
	return nil
}
