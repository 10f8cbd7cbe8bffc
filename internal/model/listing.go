package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Listing types as stored in the "type" field.
const (
	ListingTypeSale = "sale"
	ListingTypeRent = "rent"
)

// Listing represents a property listing owned by a user. Image uploads are
// handled by the client against an external object store; only the resulting
// URLs are persisted here.
type Listing struct {
	ID            bson.ObjectID `bson:"_id,omitempty"  json:"_id"`
	Name          string        `bson:"name"           json:"name"`
	Description   string        `bson:"description"    json:"description"`
	Address       string        `bson:"address"        json:"address"`
	RegularPrice  int64         `bson:"regular_price"  json:"regularPrice"`
	DiscountPrice int64         `bson:"discount_price" json:"discountPrice"`
	Bathrooms     int           `bson:"bathrooms"      json:"bathrooms"`
	Bedrooms      int           `bson:"bedrooms"       json:"bedrooms"`
	Furnished     bool          `bson:"furnished"      json:"furnished"`
	Parking       bool          `bson:"parking"        json:"parking"`
	Type          string        `bson:"type"           json:"type"`
	Offer         bool          `bson:"offer"          json:"offer"`
	ImageURLs     []string      `bson:"image_urls"     json:"imageUrls"`
	UserRef       string        `bson:"user_ref"       json:"userRef"`
	CreatedAt     time.Time     `bson:"created_at"     json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updated_at"     json:"updatedAt"`
}
