package entities

import (
	"github.com/google/uuid"
)

type Reward struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Cost        int       `json:"cost"`
	Category    string    `json:"category"` // voucher, merch, donation, experience
	PartnerLogo string    `json:"partner_logo,omitempty"`
	IsAvailable bool      `json:"is_available"`

	Timestamp
}

// RewardRedemption enforces one redemption per reward per user through the
// unique (user_id, reward_id) index.
type RewardRedemption struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"uniqueIndex:idx_user_reward" json:"user_id"`
	RewardID uuid.UUID `gorm:"uniqueIndex:idx_user_reward" json:"reward_id"`
	Cost     int       `json:"cost"`

	User   *User   `gorm:"foreignKey:UserID"`
	Reward *Reward `gorm:"foreignKey:RewardID"`
	Timestamp
}
