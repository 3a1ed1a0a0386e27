package ports

import "rubick-translator/internal/domain"

type Exporter interface {
	Format() string
	Export(items []domain.HistoryEntry) ([]byte, error)
}
