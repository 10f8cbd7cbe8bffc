package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/real-estate-api/internal/provider"
	"github.com/vasapolrittideah/real-estate-api/internal/usecase"
)

// AuthHandler serves the authentication and session-identity endpoints.
type AuthHandler struct {
	authUsecase          usecase.AuthUsecase
	passwordResetUsecase usecase.PasswordResetUsecase
	googleVerifier       *provider.GoogleVerifier
	logger               *zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler. googleVerifier may be nil, in
// which case federated assertions are trusted as delivered.
func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	passwordResetUsecase usecase.PasswordResetUsecase,
	googleVerifier *provider.GoogleVerifier,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase:          authUsecase,
		passwordResetUsecase: passwordResetUsecase,
		googleVerifier:       googleVerifier,
		logger:               logger,
	}
}

type signUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.authUsecase.SignUp(r.Context(), usecase.SignUpParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			writeError(w, http.StatusConflict, "Username or email already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to sign up")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, statusResponse{Status: "User created successfully"})
}

type signInRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, token, err := h.authUsecase.SignIn(r.Context(), usecase.SignInParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found!")
		case errors.Is(err, usecase.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Wrong credentials!")
		default:
			h.logger.Error().Err(err).Msg("failed to sign in")
			internalError(w)
		}
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, user)
}

type googleSignInRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Photo   string `json:"photo"`
	IDToken string `json:"idToken"`
}

func (h *AuthHandler) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	var req googleSignInRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.googleVerifier != nil && req.IDToken != "" {
		email, err := h.googleVerifier.VerifyIDToken(r.Context(), req.IDToken)
		if err != nil || email != req.Email {
			writeError(w, http.StatusUnauthorized, "Invalid Google ID token")
			return
		}
	}

	user, token, err := h.authUsecase.GoogleSignIn(r.Context(), usecase.GoogleSignInParams{
		Name:  req.Name,
		Email: req.Email,
		Photo: req.Photo,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrUserAlreadyExists) {
			writeError(w, http.StatusConflict, "Username or email already exists")
			return
		}

		h.logger.Error().Err(err).Msg("failed to sign in with google")
		internalError(w)
		return
	}

	setSessionCookie(w, token)
	writeJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, statusResponse{Status: "Signed out successfully"})
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.passwordResetUsecase.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found!")
		case errors.Is(err, usecase.ErrMailDelivery):
			h.logger.Error().Err(err).Msg("failed to deliver password reset email")
			writeError(w, http.StatusInternalServerError, "Failed to send password reset email")
		default:
			h.logger.Error().Err(err).Msg("failed to request password reset")
			internalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "Success"})
}

type resetPasswordRequest struct {
	Password string `json:"password" validate:"required,min=6"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	userID := chi.URLParam(r, "id")
	token := chi.URLParam(r, "token")

	err := h.passwordResetUsecase.ResetPassword(r.Context(), userID, token, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidResetToken):
			writeError(w, http.StatusBadRequest, "Invalid or expired password reset token")
		case errors.Is(err, usecase.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found!")
		default:
			h.logger.Error().Err(err).Msg("failed to reset password")
			internalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "Success"})
}
