package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	repo "github.com/AdityaZala3919/mini-services/internal/diary/repository/sqlite"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	r := repo.NewIndexRepository(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO diary_index").
			WithArgs("01-01-2026", "data/01-01-2026.json").
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := r.Upsert(ctx, "01-01-2026", "data/01-01-2026.json")
		assert.NoError(t, err)
	})

	t.Run("updates existing date", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO diary_index").
			WithArgs("01-01-2026", "data/01-01-2026.json").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := r.Upsert(ctx, "01-01-2026", "data/01-01-2026.json")
		assert.NoError(t, err)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO diary_index").
			WithArgs("01-01-2026", "data/01-01-2026.json").
			WillReturnError(fmt.Errorf("db error"))

		err := r.Upsert(ctx, "01-01-2026", "data/01-01-2026.json")
		assert.Error(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
