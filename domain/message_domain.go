package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetConversations = "conversations retrieved successfully"
	MessageSuccessGetMessages      = "messages retrieved successfully"
	MessageSuccessSendMessage      = "message sent successfully"
	MessageSuccessMarkRead         = "conversation marked as read"

	MessageFailedGetConversations = "failed to retrieve conversations"
	MessageFailedGetMessages      = "failed to retrieve messages"
	MessageFailedSendMessage      = "failed to send message"
	MessageFailedMarkRead         = "failed to mark conversation as read"

	ErrConversationNotFound    = errors.New("conversation not found")
	ErrNotConversationMember   = errors.New("user is not part of this conversation")
	ErrConversationWithSelf    = errors.New("cannot start a conversation with yourself")
	ErrInvalidConversationType = errors.New("invalid conversation type")
)

const (
	ConversationTypeMarketplace = "marketplace"
	ConversationTypeCommunity   = "community"
)

type (
	StartConversationRequest struct {
		RecipientID  string `json:"recipient_id" validate:"required,uuid"`
		Type         string `json:"type" validate:"required,oneof=marketplace community"`
		ListingID    string `json:"listing_id" validate:"omitempty,uuid"`
		ProjectID    string `json:"project_id" validate:"omitempty"`
		ProjectTitle string `json:"project_title" validate:"omitempty"`
	}

	SendChatRequest struct {
		ConversationID string `json:"conversation_id" validate:"required,uuid"`
		Text           string `json:"text" validate:"required"`
	}

	Conversation struct {
		ID            string    `json:"id"`
		Type          string    `json:"type"`
		PartnerID     string    `json:"partner_id"`
		PartnerName   string    `json:"partner_name"`
		PartnerAvatar string    `json:"partner_avatar,omitempty"`
		ListingID     string    `json:"listing_id,omitempty"`
		ListingTitle  string    `json:"listing_title,omitempty"`
		ProjectID     string    `json:"project_id,omitempty"`
		ProjectTitle  string    `json:"project_title,omitempty"`
		LastMessage   string    `json:"last_message"`
		LastMessageAt time.Time `json:"last_message_at"`
		Unread        bool      `json:"unread"`
	}

	ChatMessage struct {
		ID             string    `json:"id"`
		ConversationID string    `json:"conversation_id"`
		SenderID       string    `json:"sender_id"`
		Text           string    `json:"text"`
		IsOwn          bool      `json:"is_own"`
		CreatedAt      time.Time `json:"created_at"`
	}
)
