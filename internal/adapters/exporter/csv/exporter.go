package csv

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"rubick-translator/internal/domain"
)

var header = []string{"ts", "provider", "source", "target", "detectedSource", "text", "translated"}

// Exporter writes history as delimited text, one row per entry, newest first.
type Exporter struct {
	format string
	comma  rune
}

func New() *Exporter { return &Exporter{format: "csv", comma: ','} }

// NewTSV is the same layout separated by tabs.
func NewTSV() *Exporter { return &Exporter{format: "tsv", comma: '\t'} }

func (e *Exporter) Format() string { return e.format }

func (e *Exporter) Export(items []domain.HistoryEntry) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = e.comma
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, it := range items {
		row := []string{
			strconv.FormatInt(it.TS, 10),
			string(it.Provider),
			it.Source,
			it.Target,
			it.DetectedSource,
			it.Text,
			it.Translated,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
