package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTServiceRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 30)

	token, err := svc.Generate("maria", RoleTechnician)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "maria", claims.Operator)
	assert.Equal(t, RoleTechnician, claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTServiceRejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", 30).Generate("maria", RoleAdmin)
	require.NoError(t, err)

	_, err = NewJWTService("secret-b", 30).Verify(token)
	assert.Error(t, err)
}

func TestJWTServiceRejectsGarbage(t *testing.T) {
	_, err := NewJWTService("test-secret", 30).Verify("not-a-token")
	assert.Error(t, err)
}
