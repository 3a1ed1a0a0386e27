package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"rubick-translator/internal/domain"
	"rubick-translator/internal/ports"

	sq "github.com/Masterminds/squirrel"
)

// DocumentRepo implements ports.DocumentStore on the documents table.
type DocumentRepo struct{ *Repo }

func NewDocumentRepo(db *sql.DB) *DocumentRepo { return &DocumentRepo{NewRepo(db)} }

func (r *DocumentRepo) Get(ctx context.Context, id string) (*domain.Document, error) {
	q := r.SQ.Select("id", "rev", "body", "updated_at").From("documents").Where(sq.Eq{"id": id}).Limit(1)
	sqlStr, args, _ := q.ToSql()
	row := r.DB.QueryRowContext(ctx, sqlStr, args...)
	var d domain.Document
	var body, updated string
	if err := row.Scan(&d.ID, &d.Rev, &body, &updated); err != nil {
		if err == sql.ErrNoRows {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("get document %s: %w", id, err)
	}
	d.Body = []byte(body)
	d.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updated)
	return &d, nil
}

// Put overwrites the document and bumps its revision; doc.Rev and
// doc.UpdatedAt are set to the stored values.
func (r *DocumentRepo) Put(ctx context.Context, doc *domain.Document) error {
	now := time.Now().UTC()
	q := r.SQ.Insert("documents").Columns("id", "rev", "body", "updated_at").
		Values(doc.ID, 1, string(doc.Body), now.Format(time.RFC3339Nano)).
		Suffix("ON CONFLICT(id) DO UPDATE SET body=excluded.body, rev=documents.rev+1, updated_at=excluded.updated_at RETURNING rev")
	sqlStr, args, _ := q.ToSql()
	var rev int64
	if err := r.DB.QueryRowContext(ctx, sqlStr, args...).Scan(&rev); err != nil {
		return fmt.Errorf("put document %s: %w", doc.ID, err)
	}
	doc.Rev = rev
	doc.UpdatedAt = now
	return nil
}
