package dto

import (
	"github.com/AdityaZala3919/mini-services/internal/auth/domain"
)

// AccountOutput is the public view of an account. The password hash
// never leaves the service layer.
type AccountOutput struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}

func FromAccount(a *domain.Account) AccountOutput {
	return AccountOutput{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		IsActive: a.IsActive,
	}
}
