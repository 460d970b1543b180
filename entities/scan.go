package entities

import (
	"github.com/google/uuid"
)

type ItemScan struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ImageURL       string    `json:"image_url"`
	ObjectName     string    `json:"object_name"`
	Category       string    `json:"category"`
	Material       string    `json:"material,omitempty"`
	Condition      string    `json:"condition,omitempty"`
	Classification string    `json:"classification"` // safe, hazardous, non_reusable
	Confidence     float64   `json:"confidence"`
	EstimatedCoins int       `json:"estimated_coins"`
	CO2Savings     float64   `json:"co2_savings"`
	Recyclable     bool      `json:"recyclable"`
	XPEarned       int       `json:"xp_earned"`
	CoinsEarned    int       `json:"coins_earned"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
