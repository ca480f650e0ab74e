package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdityaZala3919/mini-services/internal/auth/domain"
	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// DBTX is the slice of pgxpool.Pool the repository actually uses,
// narrow enough for pgxmock to stand in during tests.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type AccountRepository struct {
	db DBTX
}

func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT id, username, email, password_hash, is_active
		FROM accounts
		WHERE username = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, username)

	return scanAccount(row)
}

func (r *AccountRepository) GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.Account, error) {
	query := `
		SELECT id, username, email, password_hash, is_active
		FROM accounts
		WHERE username = $1 OR email = $2
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, username, email)

	return scanAccount(row)
}

// Create inserts the account and fills in its generated ID. The unique
// indexes on username and email are the authority on duplicates: a
// concurrent registration losing the race surfaces here as
// ErrDuplicateIdentity, same as the pre-check.
func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (username, email, password_hash, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id;
	`
	row := r.db.QueryRow(ctx, query,
		account.Username, account.Email, account.PasswordHash, account.IsActive)

	if err := row.Scan(&account.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperror.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(&account.ID, &account.Username, &account.Email,
		&account.PasswordHash, &account.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &account, nil
}
