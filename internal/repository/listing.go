package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/vasapolrittideah/real-estate-api/internal/model"
)

// ListingRepository defines the interface for listing-related database
// operations.
type ListingRepository interface {
	CreateListing(ctx context.Context, listing *model.Listing) (*model.Listing, error)
	GetListing(ctx context.Context, id string) (*model.Listing, error)
	UpdateListing(ctx context.Context, id string, params UpdateListingParams) (*model.Listing, error)
	DeleteListing(ctx context.Context, id string) (*model.Listing, error)
	GetListingsByUser(ctx context.Context, userID string) ([]*model.Listing, error)
	SearchListings(ctx context.Context, params SearchListingsParams) ([]*model.Listing, error)
}

// UpdateListingParams defines the optional parameters for updating a listing.
// Only the fields that are not nil will be updated.
type UpdateListingParams struct {
	Name          *string
	Description   *string
	Address       *string
	RegularPrice  *int64
	DiscountPrice *int64
	Bathrooms     *int
	Bedrooms      *int
	Furnished     *bool
	Parking       *bool
	Type          *string
	Offer         *bool
	ImageURLs     []string
}

// SearchListingsParams defines the parameters for filtering and paginating
// listings. Nil boolean filters match both values.
type SearchListingsParams struct {
	SearchTerm string
	Offer      *bool
	Furnished  *bool
	Parking    *bool
	Type       *string
	SortBy     string
	SortDesc   bool
	Limit      int64
	StartIndex int64
}

const listingCollection = "listings"

type listingMongoRepository struct {
	db *mongo.Database
}

// NewListingMongoRepository creates a new MongoDB repository for listings.
func NewListingMongoRepository(db *mongo.Database) ListingRepository {
	return &listingMongoRepository{db: db}
}

func (r *listingMongoRepository) CreateListing(
	ctx context.Context,
	listing *model.Listing,
) (*model.Listing, error) {
	now := time.Now()
	listing.CreatedAt = now
	listing.UpdatedAt = now

	result, err := r.db.Collection(listingCollection).InsertOne(ctx, listing)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		listing.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return listing, nil
}

func (r *listingMongoRepository) GetListing(ctx context.Context, id string) (*model.Listing, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(listingCollection).FindOne(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var listing model.Listing
	if err := result.Decode(&listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

func (r *listingMongoRepository) UpdateListing(
	ctx context.Context,
	id string,
	params UpdateListingParams,
) (*model.Listing, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	updateMap := buildListingUpdate(params)
	if len(updateMap) == 0 {
		return nil, errors.New("no listing fields to update")
	}

	updateMap["updated_at"] = time.Now()

	result := r.db.Collection(listingCollection).FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": updateMap},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var listing model.Listing
	if err := result.Decode(&listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

func (r *listingMongoRepository) DeleteListing(ctx context.Context, id string) (*model.Listing, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	result := r.db.Collection(listingCollection).FindOneAndDelete(ctx, bson.M{"_id": objectID})
	if result.Err() != nil {
		return nil, result.Err()
	}

	var listing model.Listing
	if err := result.Decode(&listing); err != nil {
		return nil, err
	}

	return &listing, nil
}

func (r *listingMongoRepository) GetListingsByUser(ctx context.Context, userID string) ([]*model.Listing, error) {
	cursor, err := r.db.Collection(listingCollection).Find(ctx, bson.M{"user_ref": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeListings(ctx, cursor)
}

func (r *listingMongoRepository) SearchListings(
	ctx context.Context,
	params SearchListingsParams,
) ([]*model.Listing, error) {
	findOptions := options.Find()

	limit := params.Limit
	if limit <= 0 {
		limit = 9
	}
	findOptions.SetLimit(limit)

	if params.StartIndex > 0 {
		findOptions.SetSkip(params.StartIndex)
	}

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}

	sortOrder := 1
	if params.SortDesc {
		sortOrder = -1
	}
	findOptions.SetSort(bson.D{{Key: sortBy, Value: sortOrder}})

	cursor, err := r.db.Collection(listingCollection).Find(ctx, buildListingSearchFilter(params), findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeListings(ctx, cursor)
}

func buildListingSearchFilter(params SearchListingsParams) bson.M {
	filter := bson.M{}

	if params.SearchTerm != "" {
		filter["name"] = bson.M{"$regex": params.SearchTerm, "$options": "i"}
	}
	if params.Offer != nil {
		filter["offer"] = *params.Offer
	}
	if params.Furnished != nil {
		filter["furnished"] = *params.Furnished
	}
	if params.Parking != nil {
		filter["parking"] = *params.Parking
	}
	if params.Type != nil {
		filter["type"] = *params.Type
	}

	return filter
}

func buildListingUpdate(params UpdateListingParams) bson.M {
	updateMap := bson.M{}
	if params.Name != nil {
		updateMap["name"] = *params.Name
	}
	if params.Description != nil {
		updateMap["description"] = *params.Description
	}
	if params.Address != nil {
		updateMap["address"] = *params.Address
	}
	if params.RegularPrice != nil {
		updateMap["regular_price"] = *params.RegularPrice
	}
	if params.DiscountPrice != nil {
		updateMap["discount_price"] = *params.DiscountPrice
	}
	if params.Bathrooms != nil {
		updateMap["bathrooms"] = *params.Bathrooms
	}
	if params.Bedrooms != nil {
		updateMap["bedrooms"] = *params.Bedrooms
	}
	if params.Furnished != nil {
		updateMap["furnished"] = *params.Furnished
	}
	if params.Parking != nil {
		updateMap["parking"] = *params.Parking
	}
	if params.Type != nil {
		updateMap["type"] = *params.Type
	}
	if params.Offer != nil {
		updateMap["offer"] = *params.Offer
	}
	if params.ImageURLs != nil {
		updateMap["image_urls"] = params.ImageURLs
	}

	return updateMap
}

func decodeListings(ctx context.Context, cursor *mongo.Cursor) ([]*model.Listing, error) {
	var listings []*model.Listing
	for cursor.Next(ctx) {
		var listing model.Listing
		if err := cursor.Decode(&listing); err != nil {
			return nil, err
		}
		listings = append(listings, &listing)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return listings, nil
}
