package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/revanth-raj24/AlmirahShop/models"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewJWTTokenService("test-secret")
	userID := uuid.NewString()

	pair, err := svc.GenerateTokenPair(userID, "jane@example.com", models.RoleSeller)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := svc.ValidateToken(pair.AccessToken, "access")
	assert.NoError(t, err)
	assert.Equal(t, userID, claims["user_id"])
	assert.Equal(t, "jane@example.com", claims["email"])
	assert.Equal(t, models.RoleSeller, claims["role"])

	claims, err = svc.ValidateToken(pair.RefreshToken, "refresh")
	assert.NoError(t, err)
	assert.Equal(t, userID, claims["user_id"])
}

func TestTokenTypeMismatch(t *testing.T) {
	svc := NewJWTTokenService("test-secret")

	pair, err := svc.GenerateTokenPair(uuid.NewString(), "jane@example.com", models.RoleCustomer)
	assert.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken, "access")
	assert.Error(t, err)

	_, err = svc.ValidateToken(pair.AccessToken, "refresh")
	assert.Error(t, err)
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewJWTTokenService("secret-a")
	verifier := NewJWTTokenService("secret-b")

	pair, err := issuer.GenerateTokenPair(uuid.NewString(), "jane@example.com", models.RoleCustomer)
	assert.NoError(t, err)

	_, err = verifier.ValidateToken(pair.AccessToken, "access")
	assert.Error(t, err)
}
