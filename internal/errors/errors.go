package errors

import (
	"errors"
)

var (
	ErrDuplicateIdentity  = errors.New("username or email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrAccountNotFound    = errors.New("account not found")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrInvalidDate        = errors.New("date must be in DD-MM-YYYY format")
)
