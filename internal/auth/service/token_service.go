package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/AdityaZala3919/mini-services/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenGenerator interface {
	Issue(username string) (string, error)
	Verify(tokenString string) (*Claims, error)
	GetAccessTokenExpiry() time.Duration
}

type TokenService struct {
	AccessTokenSecret string
	AccessTokenExpiry time.Duration
}

// Claims carries only the registered claim set: subject is the
// username, ID is a fresh uuid per token.
type Claims struct {
	jwt.RegisteredClaims
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		AccessTokenSecret: secret,
		AccessTokenExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) Issue(username string) (string, error) {
	now := time.Now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.AccessTokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.AccessTokenSecret))
}

func (ts *TokenService) GetAccessTokenExpiry() time.Duration {
	return ts.AccessTokenExpiry
}

// Verify parses and validates the given token string. Expired,
// malformed and foreign-key tokens all come back as ErrInvalidToken.
func (ts *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.AccessTokenSecret), nil
	})

	if err != nil || !token.Valid {
		return nil, apperror.ErrInvalidToken
	}

	return claims, nil
}
