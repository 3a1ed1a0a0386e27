package memory

import (
	"context"
	"errors"
	"testing"

	"rubick-translator/internal/domain"
	"rubick-translator/internal/ports"
)

func TestStore(t *testing.T) {
	s := New()
	ctx := context.Background()

	if _, err := s.Get(ctx, "a"); !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	body := []byte(`{"k":1}`)
	doc := &domain.Document{ID: "a", Body: body}
	if err := s.Put(ctx, doc); err != nil {
		t.Fatal(err)
	}
	body[0] = 'X' // caller mutation must not leak into the store

	got, err := s.Get(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if string(got.Body) != `{"k":1}` || got.Rev != 1 {
		t.Errorf("got rev=%d body=%s", got.Rev, got.Body)
	}

	_ = s.Put(ctx, &domain.Document{ID: "a", Body: []byte(`{}`)})
	got, _ = s.Get(ctx, "a")
	if got.Rev != 2 || string(got.Body) != `{}` {
		t.Errorf("after overwrite rev=%d body=%s", got.Rev, got.Body)
	}
}
