package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vasapolrittideah/real-estate-api/internal/model"
	"github.com/vasapolrittideah/real-estate-api/internal/repository"
)

func TestCreateListingStampsOwner(t *testing.T) {
	listingRepo := newFakeListingRepository()
	u := NewListingUsecase(listingRepo)

	listing, err := u.CreateListing(context.Background(), "user-1", &model.Listing{
		Name: "Cozy cabin",
		Type: model.ListingTypeRent,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", listing.UserRef)
	assert.False(t, listing.ID.IsZero())
}

func TestUpdateListingRequiresOwner(t *testing.T) {
	listingRepo := newFakeListingRepository()
	u := NewListingUsecase(listingRepo)

	listing, err := u.CreateListing(context.Background(), "user-1", &model.Listing{Name: "Cozy cabin"})
	require.NoError(t, err)

	name := "Bigger cabin"
	_, err = u.UpdateListing(context.Background(), "user-2", listing.ID.Hex(), repository.UpdateListingParams{
		Name: &name,
	})
	assert.ErrorIs(t, err, ErrNotListingOwner)

	updated, err := u.UpdateListing(context.Background(), "user-1", listing.ID.Hex(), repository.UpdateListingParams{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bigger cabin", updated.Name)
}

func TestDeleteListingRequiresOwner(t *testing.T) {
	listingRepo := newFakeListingRepository()
	u := NewListingUsecase(listingRepo)

	listing, err := u.CreateListing(context.Background(), "user-1", &model.Listing{Name: "Cozy cabin"})
	require.NoError(t, err)

	assert.ErrorIs(t, u.DeleteListing(context.Background(), "user-2", listing.ID.Hex()), ErrNotListingOwner)
	require.NoError(t, u.DeleteListing(context.Background(), "user-1", listing.ID.Hex()))

	_, err = u.GetListing(context.Background(), listing.ID.Hex())
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestGetListingNotFound(t *testing.T) {
	u := NewListingUsecase(newFakeListingRepository())

	_, err := u.GetListing(context.Background(), "ffffffffffffffffffffffff")
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	userRepo := newFakeUserRepository()
	u := NewUserUsecase(userRepo, newFakeListingRepository())
	userID := seedUser(t, userRepo, "a@x.com", "p1")

	password := "p2"
	updated, err := u.UpdateUser(context.Background(), userID, UpdateUserParams{Password: &password})
	require.NoError(t, err)
	assert.NotEqual(t, "p2", updated.PasswordHash)
	assert.NotEmpty(t, updated.PasswordHash)
}

func TestUpdateUserNotFound(t *testing.T) {
	u := NewUserUsecase(newFakeUserRepository(), newFakeListingRepository())

	username := "ghost"
	_, err := u.UpdateUser(context.Background(), "ffffffffffffffffffffffff", UpdateUserParams{Username: &username})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	userRepo := newFakeUserRepository()
	u := NewUserUsecase(userRepo, newFakeListingRepository())
	userID := seedUser(t, userRepo, "a@x.com", "p1")

	require.NoError(t, u.DeleteUser(context.Background(), userID))
	assert.ErrorIs(t, u.DeleteUser(context.Background(), userID), ErrUserNotFound)
}

func TestGetUserListings(t *testing.T) {
	userRepo := newFakeUserRepository()
	listingRepo := newFakeListingRepository()
	u := NewUserUsecase(userRepo, listingRepo)
	lu := NewListingUsecase(listingRepo)

	_, err := lu.CreateListing(context.Background(), "user-1", &model.Listing{Name: "One"})
	require.NoError(t, err)
	_, err = lu.CreateListing(context.Background(), "user-1", &model.Listing{Name: "Two"})
	require.NoError(t, err)
	_, err = lu.CreateListing(context.Background(), "user-2", &model.Listing{Name: "Other"})
	require.NoError(t, err)

	listings, err := u.GetUserListings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Len(t, listings, 2)
}
