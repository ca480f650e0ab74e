package service

import (
	"context"

	"github.com/AdityaZala3919/mini-services/internal/auth/domain"
	"github.com/AdityaZala3919/mini-services/internal/auth/dto"
	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/AdityaZala3919/mini-services/pkg/constant"
	"golang.org/x/crypto/bcrypt"
)

type AccountService struct {
	repo         domain.AccountRepository
	tokenService TokenGenerator
}

func NewAccountService(repo domain.AccountRepository, tokenService TokenGenerator) *AccountService {
	return &AccountService{
		repo:         repo,
		tokenService: tokenService,
	}
}

// Register creates a new account with a bcrypt-hashed password. The
// username-or-email pre-check gives a friendly error for the common
// case; the unique indexes behind Create close the race.
func (s *AccountService) Register(ctx context.Context, input dto.RegisterInput) (*domain.Account, error) {
	existing, err := s.repo.GetByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrDuplicateIdentity
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		IsActive:     true,
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Authenticate verifies a username/password pair. Unknown usernames
// and wrong passwords are deliberately indistinguishable.
func (s *AccountService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	if account == nil || bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, apperror.ErrInvalidCredentials
	}

	return account, nil
}

// Login authenticates the credentials and issues a bearer token
// for the account.
func (s *AccountService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenResponse, error) {
	account, err := s.Authenticate(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokenService.Issue(account.Username)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   constant.BearerTokenType,
	}, nil
}

// ResolveCurrentUser maps a bearer token back to its account.
func (s *AccountService) ResolveCurrentUser(ctx context.Context, tokenString string) (*domain.Account, error) {
	claims, err := s.tokenService.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	account, err := s.repo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if account == nil || !account.IsActive {
		return nil, apperror.ErrAccountNotFound
	}

	return account, nil
}
