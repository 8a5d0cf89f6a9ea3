package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateToken("0xabc", "manufacturer")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "0xabc", claims.Wallet)
	assert.Equal(t, "0xabc", claims.Subject)
	assert.Equal(t, "manufacturer", claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestJWTService_RejectsForeignSecret(t *testing.T) {
	token, err := NewJWTService("one").GenerateToken("0xabc", RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("two").ValidateToken(token)
	assert.Error(t, err)
}

func TestAdminAuthenticator(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	a := NewAdminAuthenticator(string(hash))
	assert.True(t, a.Enabled())
	assert.True(t, a.Check("s3cret"))
	assert.False(t, a.Check("wrong"))
	assert.False(t, a.Check(""))

	disabled := NewAdminAuthenticator("")
	assert.False(t, disabled.Enabled())
	assert.False(t, disabled.Check("s3cret"))
}
