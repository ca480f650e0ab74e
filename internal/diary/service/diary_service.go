package service

import (
	"context"
	"time"

	"github.com/AdityaZala3919/mini-services/internal/diary/domain"
	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/AdityaZala3919/mini-services/pkg/constant"
)

type DiaryService struct {
	store     domain.EntryStore
	index     domain.IndexRepository
	exportDir string
}

func NewDiaryService(store domain.EntryStore, index domain.IndexRepository, exportDir string) *DiaryService {
	return &DiaryService{
		store:     store,
		index:     index,
		exportDir: exportDir,
	}
}

// Save writes (or overwrites) the entry for the given DD-MM-YYYY date
// and upserts the index row pointing at it.
func (s *DiaryService) Save(ctx context.Context, date, text, todo string) error {
	parsed, err := time.Parse(constant.DiaryDateLayout, date)
	if err != nil {
		return apperror.ErrInvalidDate
	}

	entry := &domain.Entry{
		ID:   parsed.Year()*10000 + int(parsed.Month())*100 + parsed.Day(),
		Date: date,
		Day:  parsed.Weekday().String(),
		Text: text,
		Todo: todo,
	}

	path, err := s.store.Write(entry)
	if err != nil {
		return err
	}

	return s.index.Upsert(ctx, date, path)
}

// Get returns the stored entry for the date, ErrEntryNotFound if none
// exists. The date is parsed first so arbitrary strings never reach
// the filesystem.
func (s *DiaryService) Get(date string) (*domain.Entry, error) {
	if _, err := time.Parse(constant.DiaryDateLayout, date); err != nil {
		return nil, apperror.ErrInvalidDate
	}

	return s.store.Read(date)
}

// Export writes the full diary as one text file and returns its path.
func (s *DiaryService) Export() (string, error) {
	return s.store.ExportText(s.exportDir)
}
