package domain

type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
}
