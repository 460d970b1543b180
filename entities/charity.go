package entities

import (
	"github.com/google/uuid"
)

type CharityPartner struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Logo         string    `json:"logo"`
	Category     string    `json:"category"` // environment, community
	Impact       string    `json:"impact"`   // e.g. "1 tree per 50 coins"
	ImpactMetric string    `json:"impact_metric"`
	MinDonation  int       `json:"min_donation"`
	Goal         int       `json:"goal"`
	Current      int       `json:"current"`
	IsFeatured   bool      `json:"is_featured"`

	Donations []*CharityDonation `gorm:"foreignKey:CharityID"`
	Timestamp
}

type CharityDonation struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CharityID uuid.UUID `json:"charity_id"`
	UserID    uuid.UUID `json:"user_id"`
	Coins     int       `json:"coins"`
	Units     int       `json:"units"` // impact units bought, coins / min_donation

	Charity *CharityPartner `gorm:"foreignKey:CharityID"`
	User    *User           `gorm:"foreignKey:UserID"`
	Timestamp
}
