package entities

import (
	"github.com/google/uuid"
)

type Listing struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SellerID    uuid.UUID `json:"seller_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int       `json:"price"`
	Category    string    `json:"category"`
	Condition   string    `json:"condition"` // New, Like New, Good, Fair
	Status      string    `json:"status"`    // available, pending, sold
	Location    string    `json:"location,omitempty"`
	IsTopImpact bool      `json:"is_top_impact"`
	CO2Saved    float64   `json:"co2_saved"`

	Seller *User           `gorm:"foreignKey:SellerID"`
	Images []*ListingImage `gorm:"foreignKey:ListingID"`
	Timestamp
}

type ListingImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	URL       string    `json:"url"`
	Position  int       `json:"position"`

	Listing *Listing `gorm:"foreignKey:ListingID"`
	Timestamp
}
