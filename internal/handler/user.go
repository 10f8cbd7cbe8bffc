package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/real-estate-api/internal/usecase"
)

// UserHandler serves the profile endpoints.
type UserHandler struct {
	userUsecase usecase.UserUsecase
	logger      *zerolog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userUsecase usecase.UserUsecase, logger *zerolog.Logger) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
		logger:      logger,
	}
}

type updateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=3,max=32"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Avatar   *string `json:"avatar"   validate:"omitempty,url"`
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != userIDFromContext(r.Context()) {
		writeError(w, http.StatusUnauthorized, "You can only update your own account!")
		return
	}

	var req updateUserRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userUsecase.UpdateUser(r.Context(), id, usecase.UpdateUserParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Avatar:   req.Avatar,
	})
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found!")
		case errors.Is(err, usecase.ErrUserAlreadyExists):
			writeError(w, http.StatusConflict, "Username or email already exists")
		default:
			h.logger.Error().Err(err).Msg("failed to update user")
			internalError(w)
		}
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != userIDFromContext(r.Context()) {
		writeError(w, http.StatusUnauthorized, "You can only delete your own account!")
		return
	}

	if err := h.userUsecase.DeleteUser(r.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found!")
			return
		}

		h.logger.Error().Err(err).Msg("failed to delete user")
		internalError(w)
		return
	}

	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, statusResponse{Status: "User has been deleted"})
}

func (h *UserHandler) GetUserListings(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id != userIDFromContext(r.Context()) {
		writeError(w, http.StatusUnauthorized, "You can only view your own listings!")
		return
	}

	listings, err := h.userUsecase.GetUserListings(r.Context(), id)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to get user listings")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userUsecase.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found!")
			return
		}

		h.logger.Error().Err(err).Msg("failed to get user")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
