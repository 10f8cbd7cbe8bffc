// Package auth implements issuance and verification of the signed tokens
// that carry account identity between requests.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, expired, malformed, or carrying unexpected claims.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims binds an account identity to a session token. Session tokens
// carry no expiry; they live until the client discards the cookie.
type SessionClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// PasswordResetClaims binds an account identity to a single reset request.
// The JTI (RegisteredClaims.ID) keys the server-side consumption record.
type PasswordResetClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// JWTAuthenticator signs and verifies HS256 tokens with a server-held secret.
type JWTAuthenticator struct {
	secret []byte
	issuer string
}

// NewJWTAuthenticator creates a new JWTAuthenticator instance.
func NewJWTAuthenticator(secret, issuer string) JWTAuthenticator {
	return JWTAuthenticator{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// GenerateSessionToken issues a session token for the given account id.
func (a *JWTAuthenticator) GenerateSessionToken(userID string) (string, error) {
	claims := SessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  userID,
			Issuer:   a.issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}

	return a.sign(claims)
}

// GeneratePasswordResetToken issues a reset token bound to the given account
// id with the given lifetime. It returns the signed token and its JTI.
func (a *JWTAuthenticator) GeneratePasswordResetToken(userID string, expiresIn time.Duration) (string, string, error) {
	jti := uuid.NewString()

	now := time.Now()
	claims := PasswordResetClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   userID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
		},
	}

	tokenStr, err := a.sign(claims)
	if err != nil {
		return "", "", err
	}

	return tokenStr, jti, nil
}

// ValidateToken verifies a token's signature, issuer and expiry (when
// present) and parses it into the provided claims type. The claims parameter
// should be a pointer to a struct that implements jwt.Claims.
func (a *JWTAuthenticator) ValidateToken(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return a.secret, nil
	},
		jwt.WithIssuer(a.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}

	return nil
}

func (a *JWTAuthenticator) sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenStr, err := token.SignedString(a.secret)
	if err != nil {
		return "", err
	}

	return tokenStr, nil
}
