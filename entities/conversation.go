package entities

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ParticipantOneID uuid.UUID  `json:"participant_one_id"`
	ParticipantTwoID uuid.UUID  `json:"participant_two_id"`
	ConversationType string     `json:"conversation_type"` // marketplace, community
	ListingID        *uuid.UUID `json:"listing_id,omitempty"`
	ProjectID        string     `json:"project_id,omitempty"`
	ProjectTitle     string     `json:"project_title,omitempty"`
	LastMessage      string     `json:"last_message"`
	LastMessageAt    time.Time  `json:"last_message_at"`
	Unread           bool       `json:"unread"`

	ParticipantOne *User          `gorm:"foreignKey:ParticipantOneID"`
	ParticipantTwo *User          `gorm:"foreignKey:ParticipantTwoID"`
	Listing        *Listing       `gorm:"foreignKey:ListingID"`
	Messages       []*ChatMessage `gorm:"foreignKey:ConversationID"`
	Timestamp
}

type ChatMessage struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Text           string    `json:"text"`

	Conversation *Conversation `gorm:"foreignKey:ConversationID"`
	Sender       *User         `gorm:"foreignKey:SenderID"`
	Timestamp
}
