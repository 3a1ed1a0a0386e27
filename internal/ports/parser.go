package ports

import "rubick-translator/internal/domain"

// Parser reads history entries back from an exported file.
type Parser interface {
	Format() string
	Parse(data []byte) ([]domain.HistoryEntry, error)
}
