package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/AdityaZala3919/mini-services/internal/auth/domain"
	repo "github.com/AdityaZala3919/mini-services/internal/auth/repository/postgres"
	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountColumns = []string{"id", "username", "email", "password_hash", "is_active"}

// TestGetByUsername covers the GetByUsername repository method.
func TestGetByUsername(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccountRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email").
			WithArgs("alice").
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow(int64(1), "alice", "a@x.com", "hash", true))

		account, err := r.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, int64(1), account.ID)
		assert.Equal(t, "alice", account.Username)
		assert.True(t, account.IsActive)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email").
			WithArgs("nobody").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByUsername(ctx, "nobody")
		require.NoError(t, err) // Should return nil account, nil error
		assert.Nil(t, account)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email").
			WithArgs("alice").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.GetByUsername(ctx, "alice")
		assert.Error(t, err)
	})
}

// TestGetByUsernameOrEmail covers the registration pre-check lookup.
func TestGetByUsernameOrEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccountRepository(mock)
	ctx := context.Background()

	t.Run("matches on either column", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email").
			WithArgs("bob", "a@x.com").
			WillReturnRows(pgxmock.NewRows(accountColumns).
				AddRow(int64(1), "alice", "a@x.com", "hash", true))

		account, err := r.GetByUsernameOrEmail(ctx, "bob", "a@x.com")
		require.NoError(t, err)
		assert.Equal(t, "alice", account.Username)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, username, email").
			WithArgs("bob", "b@x.com").
			WillReturnError(pgx.ErrNoRows)

		account, err := r.GetByUsernameOrEmail(ctx, "bob", "b@x.com")
		require.NoError(t, err)
		assert.Nil(t, account)
	})
}

// TestCreate covers the Create repository method.
func TestCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewAccountRepository(mock)
	ctx := context.Background()

	newAccount := func() *domain.Account {
		return &domain.Account{
			Username:     "alice",
			Email:        "a@x.com",
			PasswordHash: "hash",
			IsActive:     true,
		}
	}

	t.Run("success fills generated id", func(t *testing.T) {
		account := newAccount()
		mock.ExpectQuery("INSERT INTO accounts").
			WithArgs(account.Username, account.Email, account.PasswordHash, account.IsActive).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))

		err := r.Create(ctx, account)
		require.NoError(t, err)
		assert.Equal(t, int64(1), account.ID)
	})

	t.Run("unique violation maps to duplicate identity", func(t *testing.T) {
		account := newAccount()
		mock.ExpectQuery("INSERT INTO accounts").
			WithArgs(account.Username, account.Email, account.PasswordHash, account.IsActive).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_username_key"})

		err := r.Create(ctx, account)
		assert.ErrorIs(t, err, apperror.ErrDuplicateIdentity)
	})

	t.Run("database error", func(t *testing.T) {
		account := newAccount()
		mock.ExpectQuery("INSERT INTO accounts").
			WithArgs(account.Username, account.Email, account.PasswordHash, account.IsActive).
			WillReturnError(fmt.Errorf("db error"))

		err := r.Create(ctx, account)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperror.ErrDuplicateIdentity)
	})
}
