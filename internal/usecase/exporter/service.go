package exporter

import (
	"context"
	"fmt"
	"time"

	exreg "rubick-translator/internal/adapters/exporter/registry"
	"rubick-translator/internal/domain"
)

type HistorySource interface {
	GetHistory(ctx context.Context) ([]domain.HistoryEntry, error)
}

type Service struct {
	History HistorySource
	Reg     *exreg.Registry
	now     func() time.Time
}

func New(history HistorySource, reg *exreg.Registry) *Service {
	return &Service{History: history, Reg: reg, now: time.Now}
}

type ExportResult struct {
	Filename string
	Content  []byte
}

// ExportHistory renders the current history in the given format.
func (s *Service) ExportHistory(ctx context.Context, format string) (ExportResult, error) {
	exp, ok := s.Reg.Get(format)
	if !ok {
		return ExportResult{}, fmt.Errorf("no exporter for format: %s", format)
	}
	items, err := s.History.GetHistory(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	content, err := exp.Export(items)
	if err != nil {
		return ExportResult{}, fmt.Errorf("export %s: %w", format, err)
	}
	name := fmt.Sprintf("rubick-translator-history-%s.%s", s.now().Format("20060102-150405"), format)
	return ExportResult{Filename: name, Content: content}, nil
}
