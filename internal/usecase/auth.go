package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/real-estate-api/internal/auth"
	"github.com/vasapolrittideah/real-estate-api/internal/model"
	"github.com/vasapolrittideah/real-estate-api/internal/repository"
	"github.com/vasapolrittideah/real-estate-api/internal/security"
)

// AuthUsecase defines the interface for authentication-related use cases.
type AuthUsecase interface {
	// SignUp provisions a new account. It does not sign the caller in.
	SignUp(ctx context.Context, params SignUpParams) error

	// SignIn verifies local credentials and returns the account together
	// with a signed session token.
	SignIn(ctx context.Context, params SignInParams) (*model.User, string, error)

	// GoogleSignIn binds an externally-verified identity assertion to an
	// account, provisioning one on first contact, and returns the account
	// together with a signed session token.
	GoogleSignIn(ctx context.Context, params GoogleSignInParams) (*model.User, string, error)
}

// SignUpParams defines the parameters for account provisioning.
type SignUpParams struct {
	Username string
	Email    string
	Password string
}

// SignInParams defines the parameters for local credential verification.
type SignInParams struct {
	Email    string
	Password string
}

// GoogleSignInParams carries a federated identity assertion. The assertion
// has already been verified by the identity provider.
type GoogleSignInParams struct {
	Name  string
	Email string
	Photo string
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  auth.JWTAuthenticator
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(userRepo repository.UserRepository, jwtAuth auth.JWTAuthenticator) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
	}
}

func (u *authUsecase) SignUp(ctx context.Context, params SignUpParams) error {
	passwordHash, err := security.HashPassword(params.Password)
	if err != nil {
		return err
	}

	_, err = u.userRepo.CreateUser(ctx, &model.User{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}

		return err
	}

	return nil
}

func (u *authUsecase) SignIn(ctx context.Context, params SignInParams) (*model.User, string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", ErrUserNotFound
		}

		return nil, "", err
	}

	if ok, err := security.VerifyPassword(params.Password, user.PasswordHash); err != nil {
		return nil, "", err
	} else if !ok {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.jwtAuth.GenerateSessionToken(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

func (u *authUsecase) GoogleSignIn(ctx context.Context, params GoogleSignInParams) (*model.User, string, error) {
	user, err := u.userRepo.GetUserByEmail(ctx, params.Email)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", err
		}

		user, err = u.provisionFederatedUser(ctx, params)
		if err != nil {
			return nil, "", err
		}
	}

	token, err := u.jwtAuth.GenerateSessionToken(user.ID.Hex())
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// provisionFederatedUser creates an account for a first-time federated
// sign-in. Every account carries a password hash, so a random password is
// generated and hashed; it is never disclosed and cannot be used for local
// sign-in.
func (u *authUsecase) provisionFederatedUser(
	ctx context.Context,
	params GoogleSignInParams,
) (*model.User, error) {
	password, err := security.RandomPassword()
	if err != nil {
		return nil, err
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, err
	}

	username, err := synthesizeUsername(params.Name)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Username:     username,
		Email:        params.Email,
		PasswordHash: passwordHash,
		Avatar:       params.Photo,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrUserAlreadyExists
		}

		return nil, err
	}

	return user, nil
}

// synthesizeUsername derives a username from the provider's display name:
// lowercased, whitespace stripped, with a short random suffix to reduce
// collision probability. The unique index remains the uniqueness guarantee.
func synthesizeUsername(displayName string) (string, error) {
	base := strings.ToLower(strings.Join(strings.Fields(displayName), ""))

	suffix := make([]byte, 2)
	if _, err := rand.Read(suffix); err != nil {
		return "", err
	}

	return base + hex.EncodeToString(suffix), nil
}
