package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/real-estate-api/internal/auth"
	"github.com/vasapolrittideah/real-estate-api/internal/model"
	"github.com/vasapolrittideah/real-estate-api/internal/repository"
	"github.com/vasapolrittideah/real-estate-api/internal/security"
)

// PasswordResetUsecase defines the business logic for the two-phase password
// reset flow.
type PasswordResetUsecase interface {
	// RequestPasswordReset issues a reset token for the account with the
	// given email and delivers the reset link out of band.
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword verifies the token against the account id and sets the
	// new password.
	ResetPassword(ctx context.Context, userID, token, newPassword string) error
}

var (
	ErrInvalidResetToken = errors.New("invalid password reset token")
	ErrMailDelivery      = errors.New("failed to deliver password reset email")
)

// ResetMailer delivers reset links; satisfied by mailer.Mailer.
type ResetMailer interface {
	SendHTML(to []string, subject, htmlBody string) error
}

type passwordResetUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.PasswordResetTokenRepository
	jwtAuth   auth.JWTAuthenticator
	mailer    ResetMailer
	clientURL string
	expiresIn time.Duration
}

// NewPasswordResetUsecase creates a new instance of PasswordResetUsecase.
func NewPasswordResetUsecase(
	userRepo repository.UserRepository,
	tokenRepo repository.PasswordResetTokenRepository,
	jwtAuth auth.JWTAuthenticator,
	mailer ResetMailer,
	clientURL string,
	expiresIn time.Duration,
) PasswordResetUsecase {
	return &passwordResetUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		jwtAuth:   jwtAuth,
		mailer:    mailer,
		clientURL: clientURL,
		expiresIn: expiresIn,
	}
}

func (u *passwordResetUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := u.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	// A new request supersedes any outstanding link for the account.
	if err := u.tokenRepo.InvalidateUserTokens(ctx, user.ID.Hex()); err != nil {
		return err
	}

	tokenStr, jti, err := u.jwtAuth.GeneratePasswordResetToken(user.ID.Hex(), u.expiresIn)
	if err != nil {
		return err
	}

	resetToken := &model.PasswordResetToken{
		JTI:       jti,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresAt: time.Now().Add(u.expiresIn),
	}

	if _, err := u.tokenRepo.CreateToken(ctx, resetToken); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s/%s", u.clientURL, user.ID.Hex(), tokenStr)
	htmlBody := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>We received a request to reset the password for your account.</p>
		<p>If you made this request, please click the link below to create a new password:</p>

		<p><a href="%s">%s</a></p>

		<p>This link will expire in %s for your security.</p>
		<p>If you did not request a password reset, you can safely ignore this email.</p>
	`, user.Username, resetLink, resetLink, u.expiresIn)

	if err := u.mailer.SendHTML([]string{user.Email}, "Password Reset Request", htmlBody); err != nil {
		// The signed token needs no rollback; a new request simply issues
		// another one.
		return fmt.Errorf("%w: %s", ErrMailDelivery, err)
	}

	return nil
}

func (u *passwordResetUsecase) ResetPassword(ctx context.Context, userID, token, newPassword string) error {
	var claims auth.PasswordResetClaims
	if err := u.jwtAuth.ValidateToken(token, &claims); err != nil {
		return ErrInvalidResetToken
	}

	// A token issued for one account must not reset another.
	if claims.UserID != userID {
		return ErrInvalidResetToken
	}

	resetToken, err := u.tokenRepo.GetTokenByJTI(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidResetToken
		}
		return err
	}

	if resetToken.Used || time.Now().After(resetToken.ExpiresAt) {
		return ErrInvalidResetToken
	}

	passwordHash, err := security.HashPassword(newPassword)
	if err != nil {
		return err
	}

	if _, err := u.userRepo.UpdateUser(ctx, userID, repository.UpdateUserParams{
		PasswordHash: &passwordHash,
	}); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	return u.tokenRepo.MarkTokenAsUsed(ctx, claims.ID)
}
