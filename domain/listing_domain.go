package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetListings       = "listings retrieved successfully"
	MessageSuccessCreateListing     = "listing created successfully"
	MessageSuccessUpdateListing     = "listing updated successfully"
	MessageSuccessDeleteListing     = "listing deleted successfully"
	MessageSuccessGetListingDetails = "listing details retrieved successfully"
	MessageSuccessUploadImage       = "listing image uploaded successfully"

	MessageFailedGetListings       = "failed to retrieve listings"
	MessageFailedCreateListing     = "failed to create listing"
	MessageFailedUpdateListing     = "failed to update listing"
	MessageFailedDeleteListing     = "failed to delete listing"
	MessageFailedGetListingDetails = "failed to retrieve listing details"
	MessageFailedUploadImage       = "failed to upload listing image"

	ErrListingNotFound          = errors.New("listing not found")
	ErrListingNotAvailable      = errors.New("listing is not available")
	ErrUnauthorizedListingOwner = errors.New("only the seller may modify this listing")
	ErrInvalidListingStatus     = errors.New("invalid listing status")
)

const (
	ListingStatusAvailable = "available"
	ListingStatusPending   = "pending"
	ListingStatusSold      = "sold"
)

// Eco-impact multipliers applied to price and CO2 the way the marketplace
// surfaces derived stats.
const (
	WaterLitersPerKgCO2 = 12.5
	WasteKgPerKgCO2     = 0.4
	EcoPointsPerCoin    = 0.1
)

type (
	CreateListingRequest struct {
		Title       string                `json:"title" validate:"required"`
		Description string                `json:"description" validate:"required"`
		Price       int                   `json:"price" validate:"required,min=1"`
		Category    string                `json:"category" validate:"required"`
		Condition   string                `json:"condition" validate:"required,oneof=New 'Like New' Good Fair"`
		Location    string                `json:"location" validate:"omitempty"`
		CO2Saved    float64               `json:"co2_saved" validate:"omitempty,min=0"`
		Image       *multipart.FileHeader `json:"image" form:"image"`
	}

	UpdateListingRequest struct {
		Title       string `json:"title" validate:"omitempty"`
		Description string `json:"description" validate:"omitempty"`
		Price       int    `json:"price" validate:"omitempty,min=1"`
		Category    string `json:"category" validate:"omitempty"`
		Condition   string `json:"condition" validate:"omitempty,oneof=New 'Like New' Good Fair"`
		Status      string `json:"status" validate:"omitempty,oneof=available pending sold"`
	}

	GetListingsRequest struct {
		Category string `query:"category" validate:"omitempty"`
		Search   string `query:"search" validate:"omitempty"`
		Status   string `query:"status" validate:"omitempty,oneof=available pending sold"`
		SellerID string `query:"seller_id" validate:"omitempty,uuid"`
	}

	ListingSeller struct {
		ID           string  `json:"id"`
		Name         string  `json:"name"`
		Avatar       string  `json:"avatar,omitempty"`
		CO2Saved     float64 `json:"co2_saved,omitempty"`
		ItemsTraded  int     `json:"items_traded,omitempty"`
		ResponseTime string  `json:"response_time,omitempty"`
	}

	EcoImpact struct {
		CO2Saved    float64 `json:"co2_saved"`
		WaterSaved  float64 `json:"water_saved"`
		WasteSaved  float64 `json:"waste_saved"`
		EcoPoints   float64 `json:"eco_points"`
	}

	Listing struct {
		ID          string        `json:"id"`
		Title       string        `json:"title"`
		Description string        `json:"description"`
		Price       int           `json:"price"`
		Category    string        `json:"category"`
		Condition   string        `json:"condition"`
		Status      string        `json:"status"`
		Location    string        `json:"location,omitempty"`
		IsTopImpact bool          `json:"is_top_impact"`
		Images      []string      `json:"images"`
		Seller      ListingSeller `json:"seller"`
		EcoImpact   EcoImpact     `json:"eco_impact"`
		CreatedAt   time.Time     `json:"created_at"`
	}
)
