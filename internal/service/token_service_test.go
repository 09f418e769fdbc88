package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-jwt-secret-key-for-unit-tests"

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, 24*time.Hour, "saldo-ledger")
	userID := uuid.New()

	tokenStr, expiresAt, err := svc.Generate(userID, "sess-42", "admin")
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.Validate(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "sess-42", claims.SessionID)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTTokenService_ExpiredToken(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, -1*time.Hour, "saldo-ledger")

	tokenStr, _, err := svc.Generate(uuid.New(), "sess", "user")
	require.NoError(t, err)

	_, err = svc.Validate(tokenStr)
	assert.Error(t, err, "expired token should fail validation")
}

func TestJWTTokenService_InvalidSignature(t *testing.T) {
	svc1 := NewJWTTokenService("secret-1", 24*time.Hour, "saldo-ledger")
	svc2 := NewJWTTokenService("secret-2", 24*time.Hour, "saldo-ledger")

	tokenStr, _, err := svc1.Generate(uuid.New(), "sess", "user")
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err, "token signed with different secret should fail")
}

func TestJWTTokenService_WrongIssuer(t *testing.T) {
	svc1 := NewJWTTokenService(testJWTSecret, 24*time.Hour, "someone-else")
	svc2 := NewJWTTokenService(testJWTSecret, 24*time.Hour, "saldo-ledger")

	tokenStr, _, err := svc1.Generate(uuid.New(), "sess", "user")
	require.NoError(t, err)

	_, err = svc2.Validate(tokenStr)
	assert.Error(t, err)
}

func TestJWTTokenService_InvalidTokenString(t *testing.T) {
	svc := NewJWTTokenService(testJWTSecret, 24*time.Hour, "saldo-ledger")

	_, err := svc.Validate("not.a.valid.jwt")
	assert.Error(t, err)

	_, err = svc.Validate("")
	assert.Error(t, err)
}
