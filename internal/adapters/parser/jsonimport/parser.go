package jsonimport

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"rubick-translator/internal/domain"
)

// Parser accepts either a bare array of entries, as written by the json
// exporter, or a raw history document {"items": [...]}.
type Parser struct{}

func New() *Parser { return &Parser{} }

func (p *Parser) Format() string { return "json" }

func (p *Parser) Parse(data []byte) ([]domain.HistoryEntry, error) {
	data = bytes.TrimSpace(data)
	var items []domain.HistoryEntry
	if bytes.HasPrefix(data, []byte("{")) {
		var doc domain.HistoryDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse history document: %w", err)
		}
		items = doc.Items
	} else if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse history entries: %w", err)
	}
	out := items[:0]
	for _, it := range items {
		if strings.TrimSpace(it.Text) == "" {
			continue
		}
		out = append(out, it)
	}
	return out, nil
}
