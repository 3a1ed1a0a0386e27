package importer

import (
	"context"
	"errors"

	parreg "rubick-translator/internal/adapters/parser/registry"
	"rubick-translator/internal/domain"
)

type HistorySink interface {
	ImportHistory(ctx context.Context, entries []domain.HistoryEntry) (int, error)
}

type Service struct {
	History        HistorySink
	ParserRegistry *parreg.Registry
}

func New(history HistorySink, reg *parreg.Registry) *Service {
	return &Service{History: history, ParserRegistry: reg}
}

type ImportResult struct {
	Parsed int `json:"parsed"`
	Kept   int `json:"kept"`
}

// Import parses content in the given format and merges it into history.
func (s *Service) Import(ctx context.Context, format string, content []byte) (ImportResult, error) {
	parser, ok := s.ParserRegistry.Get(format)
	if !ok {
		return ImportResult{}, errors.New("unsupported format: " + format)
	}
	entries, err := parser.Parse(content)
	if err != nil {
		return ImportResult{}, err
	}
	kept, err := s.History.ImportHistory(ctx, entries)
	if err != nil {
		return ImportResult{}, err
	}
	return ImportResult{Parsed: len(entries), Kept: kept}, nil
}
