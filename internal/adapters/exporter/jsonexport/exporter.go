package jsonexport

import (
	"encoding/json"

	"rubick-translator/internal/domain"
)

// Exporter renders history as an indented JSON array.
type Exporter struct{}

func New() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "json" }

func (e *Exporter) Export(items []domain.HistoryEntry) ([]byte, error) {
	if items == nil {
		items = []domain.HistoryEntry{}
	}
	return json.MarshalIndent(items, "", "  ")
}
