package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	secret := []byte("test-secret")
	userID := uuid.New()

	token, err := GenerateToken(secret, userID, "student@byui.edu", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(secret, token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "student@byui.edu", claims.Email)
	assert.Equal(t, Issuer, claims.Issuer)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	token, err := GenerateToken([]byte("one"), uuid.New(), "a@byui.edu", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken([]byte("two"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	secret := []byte("test-secret")
	token, err := GenerateToken(secret, uuid.New(), "a@byui.edu", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(secret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGenerateToken_MissingKey(t *testing.T) {
	_, err := GenerateToken(nil, uuid.New(), "a@byui.edu", time.Hour)
	assert.ErrorIs(t, err, ErrMissingKey)
}
