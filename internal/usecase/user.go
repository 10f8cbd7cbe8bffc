package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/real-estate-api/internal/model"
	"github.com/vasapolrittideah/real-estate-api/internal/repository"
	"github.com/vasapolrittideah/real-estate-api/internal/security"
)

// UserUsecase defines the interface for profile-related use cases.
type UserUsecase interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error
	GetUserListings(ctx context.Context, id string) ([]*model.Listing, error)
}

// UpdateUserParams defines the optional profile fields a user may change.
// A non-nil Password is hashed before persisting.
type UpdateUserParams struct {
	Username *string
	Email    *string
	Password *string
	Avatar   *string
}

type userUsecase struct {
	userRepo    repository.UserRepository
	listingRepo repository.ListingRepository
}

// NewUserUsecase creates a new instance of UserUsecase.
func NewUserUsecase(userRepo repository.UserRepository, listingRepo repository.ListingRepository) UserUsecase {
	return &userUsecase{
		userRepo:    userRepo,
		listingRepo: listingRepo,
	}
}

func (u *userUsecase) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := u.userRepo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (u *userUsecase) UpdateUser(ctx context.Context, id string, params UpdateUserParams) (*model.User, error) {
	repoParams := repository.UpdateUserParams{
		Username: params.Username,
		Email:    params.Email,
		Avatar:   params.Avatar,
	}

	if params.Password != nil {
		passwordHash, err := security.HashPassword(*params.Password)
		if err != nil {
			return nil, err
		}
		repoParams.PasswordHash = &passwordHash
	}

	user, err := u.userRepo.UpdateUser(ctx, id, repoParams)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return nil, ErrUserNotFound
		case mongo.IsDuplicateKeyError(err):
			return nil, ErrUserAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

func (u *userUsecase) DeleteUser(ctx context.Context, id string) error {
	if _, err := u.userRepo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	return nil
}

func (u *userUsecase) GetUserListings(ctx context.Context, id string) ([]*model.Listing, error) {
	return u.listingRepo.GetListingsByUser(ctx, id)
}
