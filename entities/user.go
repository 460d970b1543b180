package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name       string    `json:"name"`
	Email      string    `gorm:"uniqueIndex" json:"email"`
	Password   string    `json:"-"`
	AvatarURL  string    `json:"avatar_url,omitempty"`
	Campus     string    `json:"campus,omitempty"`
	Role       string    `json:"role"`
	IsVerified bool      `json:"is_verified"`

	// Economy
	Coins int `json:"coins"`
	XP    int `json:"xp"`
	Level int `json:"level"`

	// Progress
	ItemsTraded int        `json:"items_traded"`
	CO2Saved    float64    `json:"co2_saved"`
	Streak      int        `json:"streak"`
	LastActive  *time.Time `json:"last_active,omitempty"`

	Badges []*UserBadge `gorm:"foreignKey:UserID" json:"badges,omitempty"`
	Timestamp
}

type UserBadge struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID  uuid.UUID `gorm:"uniqueIndex:idx_user_badge" json:"user_id"`
	BadgeID string    `gorm:"uniqueIndex:idx_user_badge" json:"badge_id"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
