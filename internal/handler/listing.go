package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/vasapolrittideah/real-estate-api/internal/model"
	"github.com/vasapolrittideah/real-estate-api/internal/repository"
	"github.com/vasapolrittideah/real-estate-api/internal/usecase"
)

// ListingHandler serves the property listing endpoints.
type ListingHandler struct {
	listingUsecase usecase.ListingUsecase
	logger         *zerolog.Logger
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingUsecase usecase.ListingUsecase, logger *zerolog.Logger) *ListingHandler {
	return &ListingHandler{
		listingUsecase: listingUsecase,
		logger:         logger,
	}
}

type createListingRequest struct {
	Name          string   `json:"name"          validate:"required"`
	Description   string   `json:"description"   validate:"required"`
	Address       string   `json:"address"       validate:"required"`
	RegularPrice  int64    `json:"regularPrice"  validate:"required,min=0"`
	DiscountPrice int64    `json:"discountPrice" validate:"min=0"`
	Bathrooms     int      `json:"bathrooms"     validate:"required,min=1"`
	Bedrooms      int      `json:"bedrooms"      validate:"required,min=1"`
	Furnished     bool     `json:"furnished"`
	Parking       bool     `json:"parking"`
	Type          string   `json:"type"          validate:"required,oneof=sale rent"`
	Offer         bool     `json:"offer"`
	ImageURLs     []string `json:"imageUrls"     validate:"required,min=1,dive,url"`
}

func (h *ListingHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.listingUsecase.CreateListing(r.Context(), userIDFromContext(r.Context()), &model.Listing{
		Name:          req.Name,
		Description:   req.Description,
		Address:       req.Address,
		RegularPrice:  req.RegularPrice,
		DiscountPrice: req.DiscountPrice,
		Bathrooms:     req.Bathrooms,
		Bedrooms:      req.Bedrooms,
		Furnished:     req.Furnished,
		Parking:       req.Parking,
		Type:          req.Type,
		Offer:         req.Offer,
		ImageURLs:     req.ImageURLs,
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create listing")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}

type updateListingRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Address       *string  `json:"address"`
	RegularPrice  *int64   `json:"regularPrice"  validate:"omitempty,min=0"`
	DiscountPrice *int64   `json:"discountPrice" validate:"omitempty,min=0"`
	Bathrooms     *int     `json:"bathrooms"     validate:"omitempty,min=1"`
	Bedrooms      *int     `json:"bedrooms"      validate:"omitempty,min=1"`
	Furnished     *bool    `json:"furnished"`
	Parking       *bool    `json:"parking"`
	Type          *string  `json:"type"          validate:"omitempty,oneof=sale rent"`
	Offer         *bool    `json:"offer"`
	ImageURLs     []string `json:"imageUrls"     validate:"omitempty,min=1,dive,url"`
}

func (h *ListingHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var req updateListingRequest
	if err := decodeAndValidate(r.Body, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	listing, err := h.listingUsecase.UpdateListing(
		r.Context(),
		userIDFromContext(r.Context()),
		chi.URLParam(r, "id"),
		repository.UpdateListingParams{
			Name:          req.Name,
			Description:   req.Description,
			Address:       req.Address,
			RegularPrice:  req.RegularPrice,
			DiscountPrice: req.DiscountPrice,
			Bathrooms:     req.Bathrooms,
			Bedrooms:      req.Bedrooms,
			Furnished:     req.Furnished,
			Parking:       req.Parking,
			Type:          req.Type,
			Offer:         req.Offer,
			ImageURLs:     req.ImageURLs,
		},
	)
	if err != nil {
		h.writeListingError(w, err, "failed to update listing")
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	err := h.listingUsecase.DeleteListing(r.Context(), userIDFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		h.writeListingError(w, err, "failed to delete listing")
		return
	}

	writeJSON(w, http.StatusOK, statusResponse{Status: "Listing has been deleted"})
}

func (h *ListingHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.listingUsecase.GetListing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeListingError(w, err, "failed to get listing")
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

func (h *ListingHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingUsecase.SearchListings(r.Context(), searchParamsFromQuery(r))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to search listings")
		internalError(w)
		return
	}

	writeJSON(w, http.StatusOK, listings)
}

// searchParamsFromQuery maps the search query string onto repository
// parameters. Boolean filters apply only when explicitly "true"; absent or
// "false" matches both values. Sort fields are whitelisted.
func searchParamsFromQuery(r *http.Request) repository.SearchListingsParams {
	query := r.URL.Query()

	params := repository.SearchListingsParams{
		SearchTerm: query.Get("searchTerm"),
		SortDesc:   query.Get("order") != "asc",
	}

	trueVal := true
	if query.Get("offer") == "true" {
		params.Offer = &trueVal
	}
	if query.Get("furnished") == "true" {
		params.Furnished = &trueVal
	}
	if query.Get("parking") == "true" {
		params.Parking = &trueVal
	}

	if t := query.Get("type"); t == model.ListingTypeSale || t == model.ListingTypeRent {
		params.Type = &t
	}

	switch query.Get("sort") {
	case "regularPrice":
		params.SortBy = "regular_price"
	default:
		params.SortBy = "created_at"
	}

	if limit, err := strconv.ParseInt(query.Get("limit"), 10, 64); err == nil && limit > 0 {
		params.Limit = limit
	}
	if startIndex, err := strconv.ParseInt(query.Get("startIndex"), 10, 64); err == nil && startIndex > 0 {
		params.StartIndex = startIndex
	}

	return params
}

func (h *ListingHandler) writeListingError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, usecase.ErrListingNotFound):
		writeError(w, http.StatusNotFound, "Listing not found!")
	case errors.Is(err, usecase.ErrNotListingOwner):
		writeError(w, http.StatusForbidden, "You can only modify your own listings!")
	default:
		h.logger.Error().Err(err).Msg(logMsg)
		internalError(w)
	}
}
