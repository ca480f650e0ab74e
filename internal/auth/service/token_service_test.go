package service

import (
	"testing"
	"time"

	apperror "github.com/AdityaZala3919/mini-services/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTokenService(t *testing.T) {
	ts := NewTokenService("secret-key", 30)

	assert.NotNil(t, ts)
	assert.Equal(t, "secret-key", ts.AccessTokenSecret)
	assert.Equal(t, 30*time.Minute, ts.AccessTokenExpiry)
	assert.Equal(t, 30*time.Minute, ts.GetAccessTokenExpiry())
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	beforeIssue := time.Now()
	token, err := ts.Issue("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ts.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	assert.NotEmpty(t, claims.ID)

	// Expiry lands in the [issue, issue+TTL] window.
	assert.True(t, claims.ExpiresAt.After(beforeIssue.Add(30*time.Minute).Add(-time.Second)))
	assert.True(t, claims.ExpiresAt.Before(time.Now().Add(30*time.Minute).Add(time.Second)))
}

func TestTokenService_Issue_UniqueTokenIDs(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	first, err := ts.Issue("alice")
	require.NoError(t, err)
	second, err := ts.Issue("alice")
	require.NoError(t, err)

	firstClaims, err := ts.Verify(first)
	require.NoError(t, err)
	secondClaims, err := ts.Verify(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestTokenService_Verify_WrongKey(t *testing.T) {
	issuer := NewTokenService("the-real-secret", 30)
	verifier := NewTokenService("a-different-secret", 30)

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_Verify_Expired(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", -1)

	token, err := ts.Issue("alice")
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	for _, garbled := range []string{"", "not-a-token", "aaa.bbb.ccc"} {
		claims, err := ts.Verify(garbled)
		assert.ErrorIs(t, err, apperror.ErrInvalidToken)
		assert.Nil(t, claims)
	}
}

func TestTokenService_Verify_RejectsNonHMAC(t *testing.T) {
	ts := NewTokenService("test-secret-key-123", 30)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	claims, err := ts.Verify(token)
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
	assert.Nil(t, claims)
}
