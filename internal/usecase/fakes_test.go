package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/real-estate-api/internal/model"
	"github.com/vasapolrittideah/real-estate-api/internal/repository"
)

// duplicateKeyError mimics the server error raised by a unique index
// violation.
func duplicateKeyError() error {
	return mongo.WriteException{
		WriteErrors: []mongo.WriteError{{Code: 11000, Message: "E11000 duplicate key error"}},
	}
}

type fakeUserRepository struct {
	users map[string]*model.User

	createErr error
	updateErr error
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*model.User)}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}

	for _, existing := range r.users {
		if existing.Email == user.Email || existing.Username == user.Username {
			return nil, duplicateKeyError()
		}
	}

	user.ID = bson.NewObjectID()
	if user.Avatar == "" {
		user.Avatar = model.DefaultAvatarURL
	}
	r.users[user.ID.Hex()] = user

	return user, nil
}

func (r *fakeUserRepository) GetUser(_ context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (r *fakeUserRepository) GetUserByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserRepository) UpdateUser(
	_ context.Context,
	id string,
	params repository.UpdateUserParams,
) (*model.User, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}

	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}

	if params.Username != nil {
		user.Username = *params.Username
	}
	if params.Email != nil {
		user.Email = *params.Email
	}
	if params.PasswordHash != nil {
		user.PasswordHash = *params.PasswordHash
	}
	if params.Avatar != nil {
		user.Avatar = *params.Avatar
	}

	return user, nil
}

func (r *fakeUserRepository) DeleteUser(_ context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(r.users, id)
	return user, nil
}

type fakeResetTokenRepository struct {
	tokens map[string]*model.PasswordResetToken
}

func newFakeResetTokenRepository() *fakeResetTokenRepository {
	return &fakeResetTokenRepository{tokens: make(map[string]*model.PasswordResetToken)}
}

func (r *fakeResetTokenRepository) CreateToken(
	_ context.Context,
	token *model.PasswordResetToken,
) (*model.PasswordResetToken, error) {
	token.ID = bson.NewObjectID()
	r.tokens[token.JTI] = token
	return token, nil
}

func (r *fakeResetTokenRepository) GetTokenByJTI(_ context.Context, jti string) (*model.PasswordResetToken, error) {
	token, ok := r.tokens[jti]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return token, nil
}

func (r *fakeResetTokenRepository) MarkTokenAsUsed(_ context.Context, jti string) error {
	if token, ok := r.tokens[jti]; ok {
		token.Used = true
	}
	return nil
}

func (r *fakeResetTokenRepository) InvalidateUserTokens(_ context.Context, userID string) error {
	for _, token := range r.tokens {
		if token.UserID.Hex() == userID {
			token.Used = true
		}
	}
	return nil
}

type fakeListingRepository struct {
	listings map[string]*model.Listing

	lastSearch repository.SearchListingsParams
}

func newFakeListingRepository() *fakeListingRepository {
	return &fakeListingRepository{listings: make(map[string]*model.Listing)}
}

func (r *fakeListingRepository) CreateListing(_ context.Context, listing *model.Listing) (*model.Listing, error) {
	listing.ID = bson.NewObjectID()
	r.listings[listing.ID.Hex()] = listing
	return listing, nil
}

func (r *fakeListingRepository) GetListing(_ context.Context, id string) (*model.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return listing, nil
}

func (r *fakeListingRepository) UpdateListing(
	_ context.Context,
	id string,
	params repository.UpdateListingParams,
) (*model.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if params.Name != nil {
		listing.Name = *params.Name
	}
	if params.Offer != nil {
		listing.Offer = *params.Offer
	}
	return listing, nil
}

func (r *fakeListingRepository) DeleteListing(_ context.Context, id string) (*model.Listing, error) {
	listing, ok := r.listings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	delete(r.listings, id)
	return listing, nil
}

func (r *fakeListingRepository) GetListingsByUser(_ context.Context, userID string) ([]*model.Listing, error) {
	var listings []*model.Listing
	for _, listing := range r.listings {
		if listing.UserRef == userID {
			listings = append(listings, listing)
		}
	}
	return listings, nil
}

func (r *fakeListingRepository) SearchListings(
	_ context.Context,
	params repository.SearchListingsParams,
) ([]*model.Listing, error) {
	r.lastSearch = params

	var listings []*model.Listing
	for _, listing := range r.listings {
		listings = append(listings, listing)
	}
	return listings, nil
}

type fakeMailer struct {
	sent    []sentMail
	sendErr error
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

func (m *fakeMailer) SendHTML(to []string, subject, htmlBody string) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: htmlBody})
	return nil
}
