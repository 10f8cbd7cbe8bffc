package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testIssuer = "real-estate-api"

func TestSessionTokenRoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", testIssuer)

	tokenStr, err := a.GenerateSessionToken("64f1c0a2b3d4e5f601020304")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	var claims SessionClaims
	require.NoError(t, a.ValidateToken(tokenStr, &claims))
	assert.Equal(t, "64f1c0a2b3d4e5f601020304", claims.UserID)
	assert.Nil(t, claims.ExpiresAt)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", testIssuer)
	other := NewJWTAuthenticator("other-secret", testIssuer)

	tokenStr, err := a.GenerateSessionToken("user-1")
	require.NoError(t, err)

	var claims SessionClaims
	err = other.ValidateToken(tokenStr, &claims)
	assert.ErrorIs(t, err, ErrInvalidToken)

	err = a.ValidateToken(tokenStr+"x", &claims)
	assert.ErrorIs(t, err, ErrInvalidToken)

	err = a.ValidateToken("not-a-token", &claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", "someone-else")
	b := NewJWTAuthenticator("test-secret", testIssuer)

	tokenStr, err := a.GenerateSessionToken("user-1")
	require.NoError(t, err)

	var claims SessionClaims
	assert.ErrorIs(t, b.ValidateToken(tokenStr, &claims), ErrInvalidToken)
}

func TestPasswordResetTokenRoundTrip(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", testIssuer)

	tokenStr, jti, err := a.GeneratePasswordResetToken("user-1", 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, jti)

	var claims PasswordResetClaims
	require.NoError(t, a.ValidateToken(tokenStr, &claims))
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, jti, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestPasswordResetTokenExpires(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", testIssuer)

	tokenStr, _, err := a.GeneratePasswordResetToken("user-1", -time.Hour)
	require.NoError(t, err)

	var claims PasswordResetClaims
	assert.ErrorIs(t, a.ValidateToken(tokenStr, &claims), ErrInvalidToken)
}

func TestPasswordResetJTIsAreUnique(t *testing.T) {
	a := NewJWTAuthenticator("test-secret", testIssuer)

	_, first, err := a.GeneratePasswordResetToken("user-1", time.Hour)
	require.NoError(t, err)
	_, second, err := a.GeneratePasswordResetToken("user-1", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
