package domain

//go:generate mockgen -destination=../../mocks/mock_index_repository.go -package=mocks github.com/AdityaZala3919/mini-services/internal/diary/domain IndexRepository

import "context"

// EntryStore persists the per-day JSON documents.
type EntryStore interface {
	Write(entry *Entry) (string, error)
	Read(date string) (*Entry, error)
	ExportText(exportDir string) (string, error)
}

// IndexRepository maintains the relational date→file index.
type IndexRepository interface {
	Upsert(ctx context.Context, date, jsonPath string) error
}
