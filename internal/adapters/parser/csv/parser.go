package csvparser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"rubick-translator/internal/domain"
)

// Parser reads the delimited layout written by the csv exporter. Columns are
// matched by header name, so reordered or extra columns are fine.
type Parser struct {
	format string
	comma  rune
}

func New() *Parser { return &Parser{format: "csv", comma: ','} }

func NewTSV() *Parser { return &Parser{format: "tsv", comma: '\t'} }

func (p *Parser) Format() string { return p.format }

func (p *Parser) Parse(data []byte) ([]domain.HistoryEntry, error) {
	data = stripBOM(data)
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = p.comma
	r.FieldsPerRecord = -1
	header, err := r.Read()
	if err != nil {
		return nil, err
	}
	idx := map[string]int{}
	for i, h := range header {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	textIdx, ok := idx["text"]
	if !ok {
		return nil, errors.New("csv missing 'text' column")
	}
	trIdx, ok := idx["translated"]
	if !ok {
		return nil, errors.New("csv missing 'translated' column")
	}
	col := func(rec []string, name string) string {
		i, ok := idx[strings.ToLower(name)]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var out []domain.HistoryEntry
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if textIdx >= len(rec) || strings.TrimSpace(rec[textIdx]) == "" {
			continue
		}
		e := domain.HistoryEntry{
			Text:           rec[textIdx],
			Provider:       domain.ProviderKind(col(rec, "provider")),
			Source:         col(rec, "source"),
			Target:         col(rec, "target"),
			DetectedSource: col(rec, "detectedSource"),
		}
		if trIdx < len(rec) {
			e.Translated = rec[trIdx]
		}
		e.TS, _ = strconv.ParseInt(col(rec, "ts"), 10, 64)
		out = append(out, e)
	}
	return out, nil
}

func stripBOM(b []byte) []byte {
	bom := []byte{0xEF, 0xBB, 0xBF}
	if len(b) >= 3 && bytes.Equal(b[:3], bom) {
		return b[3:]
	}
	return b
}
