package domain

//go:generate mockgen -destination=../../mocks/mock_account_repository.go -package=mocks github.com/AdityaZala3919/mini-services/internal/auth/domain AccountRepository

import "context"

type AccountRepository interface {
	GetByUsername(ctx context.Context, username string) (*Account, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*Account, error)
	Create(ctx context.Context, account *Account) error
}
