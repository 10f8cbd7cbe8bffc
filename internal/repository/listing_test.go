package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func boolPtr(b bool) *bool    { return &b }
func strPtr(s string) *string { return &s }
func int64Ptr(n int64) *int64 { return &n }

func TestBuildListingSearchFilterEmpty(t *testing.T) {
	filter := buildListingSearchFilter(SearchListingsParams{})
	assert.Empty(t, filter)
}

func TestBuildListingSearchFilter(t *testing.T) {
	filter := buildListingSearchFilter(SearchListingsParams{
		SearchTerm: "lake house",
		Offer:      boolPtr(true),
		Furnished:  boolPtr(false),
		Parking:    boolPtr(true),
		Type:       strPtr("rent"),
	})

	assert.Equal(t, bson.M{"$regex": "lake house", "$options": "i"}, filter["name"])
	assert.Equal(t, true, filter["offer"])
	assert.Equal(t, false, filter["furnished"])
	assert.Equal(t, true, filter["parking"])
	assert.Equal(t, "rent", filter["type"])
}

func TestBuildListingSearchFilterSkipsNilBooleans(t *testing.T) {
	filter := buildListingSearchFilter(SearchListingsParams{
		Offer: boolPtr(true),
	})

	assert.Contains(t, filter, "offer")
	assert.NotContains(t, filter, "furnished")
	assert.NotContains(t, filter, "parking")
	assert.NotContains(t, filter, "type")
	assert.NotContains(t, filter, "name")
}

func TestBuildListingUpdate(t *testing.T) {
	updateMap := buildListingUpdate(UpdateListingParams{
		Name:         strPtr("Renovated loft"),
		RegularPrice: int64Ptr(2200),
		Offer:        boolPtr(true),
		ImageURLs:    []string{"https://img.example/1.jpg"},
	})

	assert.Equal(t, "Renovated loft", updateMap["name"])
	assert.Equal(t, int64(2200), updateMap["regular_price"])
	assert.Equal(t, true, updateMap["offer"])
	assert.Equal(t, []string{"https://img.example/1.jpg"}, updateMap["image_urls"])
	assert.NotContains(t, updateMap, "description")
	assert.NotContains(t, updateMap, "discount_price")
}
