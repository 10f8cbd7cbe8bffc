package usecase

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/real-estate-api/internal/model"
	"github.com/vasapolrittideah/real-estate-api/internal/repository"
)

// ListingUsecase defines the interface for listing-related use cases.
// Mutations are restricted to the listing's owner.
type ListingUsecase interface {
	CreateListing(ctx context.Context, userID string, listing *model.Listing) (*model.Listing, error)
	GetListing(ctx context.Context, id string) (*model.Listing, error)
	UpdateListing(ctx context.Context, userID, id string, params repository.UpdateListingParams) (*model.Listing, error)
	DeleteListing(ctx context.Context, userID, id string) error
	SearchListings(ctx context.Context, params repository.SearchListingsParams) ([]*model.Listing, error)
}

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotListingOwner = errors.New("only the owner can modify a listing")
)

type listingUsecase struct {
	listingRepo repository.ListingRepository
}

// NewListingUsecase creates a new instance of ListingUsecase.
func NewListingUsecase(listingRepo repository.ListingRepository) ListingUsecase {
	return &listingUsecase{listingRepo: listingRepo}
}

func (u *listingUsecase) CreateListing(
	ctx context.Context,
	userID string,
	listing *model.Listing,
) (*model.Listing, error) {
	listing.UserRef = userID
	return u.listingRepo.CreateListing(ctx, listing)
}

func (u *listingUsecase) GetListing(ctx context.Context, id string) (*model.Listing, error) {
	listing, err := u.listingRepo.GetListing(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	return listing, nil
}

func (u *listingUsecase) UpdateListing(
	ctx context.Context,
	userID, id string,
	params repository.UpdateListingParams,
) (*model.Listing, error) {
	if err := u.requireOwner(ctx, userID, id); err != nil {
		return nil, err
	}

	listing, err := u.listingRepo.UpdateListing(ctx, id, params)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	return listing, nil
}

func (u *listingUsecase) DeleteListing(ctx context.Context, userID, id string) error {
	if err := u.requireOwner(ctx, userID, id); err != nil {
		return err
	}

	if _, err := u.listingRepo.DeleteListing(ctx, id); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrListingNotFound
		}
		return err
	}

	return nil
}

func (u *listingUsecase) SearchListings(
	ctx context.Context,
	params repository.SearchListingsParams,
) ([]*model.Listing, error) {
	return u.listingRepo.SearchListings(ctx, params)
}

func (u *listingUsecase) requireOwner(ctx context.Context, userID, id string) error {
	listing, err := u.listingRepo.GetListing(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrListingNotFound
		}
		return err
	}

	if listing.UserRef != userID {
		return ErrNotListingOwner
	}

	return nil
}
