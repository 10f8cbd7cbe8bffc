// Package provider verifies identity assertions from external providers.
package provider

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

var ErrInvalidGoogleAudience = errors.New("invalid google audience")

// GoogleVerifier checks Google ID tokens against a configured OAuth client
// ID. When no client ID is configured the federated assertion is trusted as
// delivered by the client and no verifier is constructed.
type GoogleVerifier struct {
	clientID string
}

// NewGoogleVerifier creates a verifier for the given OAuth client ID.
func NewGoogleVerifier(clientID string) *GoogleVerifier {
	return &GoogleVerifier{clientID: clientID}
}

// VerifyIDToken validates the ID token with Google's tokeninfo endpoint and
// returns the verified email address.
func (v *GoogleVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	oauth2Service, err := oauth2.NewService(ctx, option.WithHTTPClient(&http.Client{}))
	if err != nil {
		return "", err
	}

	tokenInfoCall := oauth2Service.Tokeninfo()
	tokenInfoCall.IdToken(idToken)
	tokenInfo, err := tokenInfoCall.Do()
	if err != nil {
		return "", err
	}

	if tokenInfo.Audience != v.clientID {
		return "", ErrInvalidGoogleAudience
	}

	return tokenInfo.Email, nil
}
