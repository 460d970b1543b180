package entities

import (
	"time"

	"github.com/google/uuid"
)

type Trade struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ListingID uuid.UUID `json:"listing_id"`
	SellerID  uuid.UUID `json:"seller_id"`
	TraderID  uuid.UUID `json:"trader_id"`

	// Exactly one offer variant is set, selected by OfferType.
	OfferType    string `json:"offer_type"` // Coins, Item
	OfferedCoins int    `json:"offered_coins,omitempty"`
	OfferedItem  string `json:"offered_item,omitempty"`

	Message     string     `json:"message,omitempty"`
	Status      string     `json:"status"` // pending, accepted, completed, declined
	CO2Saved    float64    `json:"co2_saved"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	Listing *Listing `gorm:"foreignKey:ListingID"`
	Seller  *User    `gorm:"foreignKey:SellerID"`
	Trader  *User    `gorm:"foreignKey:TraderID"`
	Timestamp
}
