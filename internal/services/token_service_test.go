package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ecoshare/ecoshare/internal/models"
)

func TestTokenService_RoundTrip(t *testing.T) {
	tokenService := NewTokenService("test-secret", time.Hour)

	account := &models.Account{Role: models.RoleNGO}
	account.ID = 42

	tokenString, err := tokenService.Generate(account)
	assert.NoError(t, err)
	assert.NotEmpty(t, tokenString)

	claims, err := tokenService.Validate(tokenString)
	assert.NoError(t, err)
	assert.Equal(t, uint(42), claims.AccountID)
	assert.Equal(t, models.RoleNGO, claims.Role)
	assert.Equal(t, "ecoshare", claims.Issuer)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	account := &models.Account{Role: models.RoleDonor}
	account.ID = 1

	tokenString, err := issuer.Generate(account)
	assert.NoError(t, err)

	_, err = verifier.Validate(tokenString)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenService_Expired(t *testing.T) {
	tokenService := NewTokenService("test-secret", -time.Minute)

	account := &models.Account{Role: models.RoleVolunteer}
	account.ID = 7

	tokenString, err := tokenService.Generate(account)
	assert.NoError(t, err)

	_, err = tokenService.Validate(tokenString)
	assert.Equal(t, ErrInvalidToken, err)
}

func TestTokenService_Garbage(t *testing.T) {
	tokenService := NewTokenService("test-secret", time.Hour)

	_, err := tokenService.Validate("not-a-token")
	assert.Equal(t, ErrInvalidToken, err)
}
