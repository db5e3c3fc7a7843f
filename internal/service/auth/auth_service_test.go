package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	svc := NewAuthService("test-secret", "biteform")

	token, err := svc.GenerateToken("user-1", "a@b.com", "Alice", time.Hour)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
}

func TestValidateToken_Rejected(t *testing.T) {
	svc := NewAuthService("test-secret", "biteform")

	expired, err := svc.GenerateToken("user-1", "", "", -time.Minute)
	require.NoError(t, err)
	_, err = svc.ValidateToken(expired)
	assert.Error(t, err, "过期令牌")

	other, err := NewAuthService("another-secret", "biteform").GenerateToken("user-1", "", "", time.Hour)
	require.NoError(t, err)
	_, err = svc.ValidateToken(other)
	assert.Error(t, err, "密钥不匹配")

	noSubject, err := svc.GenerateToken("", "", "", time.Hour)
	require.NoError(t, err)
	_, err = svc.ValidateToken(noSubject)
	assert.Error(t, err, "缺少 sub")

	_, err = svc.ValidateToken("not-a-token")
	assert.Error(t, err)
}
