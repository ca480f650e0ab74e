package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

// IndexRepository maintains the diary_index table: one row per date,
// pointing at the JSON document for that day.
type IndexRepository struct {
	db *sql.DB
}

func NewIndexRepository(db *sql.DB) *IndexRepository {
	return &IndexRepository{db: db}
}

func (r *IndexRepository) Upsert(ctx context.Context, date, jsonPath string) error {
	query := `
		INSERT INTO diary_index (date, json_path)
		VALUES (?, ?)
		ON CONFLICT (date)
		DO UPDATE SET json_path = excluded.json_path;
	`
	if _, err := r.db.ExecContext(ctx, query, date, jsonPath); err != nil {
		return fmt.Errorf("failed to upsert index row: %w", err)
	}

	return nil
}
