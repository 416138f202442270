package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hizmetpinari/internal/model"
)

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret")

	token, err := svc.GenerateAccessToken(1, "ayse@example.com", model.RoleCustomer)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "ayse@example.com", claims.Email)
	assert.Equal(t, model.RoleCustomer, claims.Role)
	assert.Empty(t, claims.ID)
}

func TestJWTService_RefreshTokenCarriesID(t *testing.T) {
	svc := NewJWTService("test-secret")

	tokenID, token, err := svc.GenerateRefreshToken(1, "ayse@example.com", model.RoleProvider)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenID)

	extracted, err := svc.ExtractTokenID(token)
	assert.NoError(t, err)
	assert.Equal(t, tokenID, extracted)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleProvider, claims.Role)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a").GenerateAccessToken(1, "ayse@example.com", model.RoleCustomer)
	assert.NoError(t, err)

	_, err = NewJWTService("secret-b").ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExtractTokenIDFromAccessToken(t *testing.T) {
	svc := NewJWTService("test-secret")

	// Access tokens carry no JTI, so they cannot be used as refresh tokens.
	token, err := svc.GenerateAccessToken(1, "ayse@example.com", model.RoleCustomer)
	assert.NoError(t, err)

	_, err = svc.ExtractTokenID(token)
	assert.Error(t, err)
}
