package entities

import (
	"github.com/google/uuid"
)

type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Type      string    `json:"type"` // trade, achievement, coin, level, system
	Icon      string    `json:"icon"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	ActionURL string    `json:"action_url,omitempty"`
	Read      bool      `json:"read"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
