package message

import (
	"context"
	"errors"
	"time"

	"reloop-backend/domain"
	"reloop-backend/entities"

	"gorm.io/gorm"
)

type (
	MessageRepository interface {
		CreateConversation(ctx context.Context, conversation *entities.Conversation) error
		GetConversationByID(ctx context.Context, id string) (*entities.Conversation, error)
		GetUserConversations(ctx context.Context, userID string) ([]*entities.Conversation, error)
		FindConversation(ctx context.Context, userA, userB, listingID string) (*entities.Conversation, error)
		AddMessage(ctx context.Context, message *entities.ChatMessage) error
		GetMessages(ctx context.Context, conversationID string) ([]*entities.ChatMessage, error)
		UpdateLastMessage(ctx context.Context, conversationID, text string, at time.Time) error
		MarkAsRead(ctx context.Context, conversationID string) error
	}

	messageRepository struct {
		db *gorm.DB
	}
)

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

func (r *messageRepository) CreateConversation(ctx context.Context, conversation *entities.Conversation) error {
	return r.db.WithContext(ctx).Create(conversation).Error
}

func (r *messageRepository) GetConversationByID(ctx context.Context, id string) (*entities.Conversation, error) {
	var conversation entities.Conversation
	if err := r.db.WithContext(ctx).
		Preload("ParticipantOne").
		Preload("ParticipantTwo").
		Preload("Listing").
		Where("id = ?", id).
		First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrConversationNotFound
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *messageRepository) GetUserConversations(ctx context.Context, userID string) ([]*entities.Conversation, error) {
	var conversations []*entities.Conversation
	if err := r.db.WithContext(ctx).
		Preload("ParticipantOne").
		Preload("ParticipantTwo").
		Preload("Listing").
		Where("participant_one_id = ? OR participant_two_id = ?", userID, userID).
		Order("last_message_at DESC").
		Find(&conversations).Error; err != nil {
		return nil, err
	}
	return conversations, nil
}

func (r *messageRepository) FindConversation(ctx context.Context, userA, userB, listingID string) (*entities.Conversation, error) {
	query := r.db.WithContext(ctx).
		Where("(participant_one_id = ? AND participant_two_id = ?) OR (participant_one_id = ? AND participant_two_id = ?)",
			userA, userB, userB, userA)
	if listingID != "" {
		query = query.Where("listing_id = ?", listingID)
	}

	var conversation entities.Conversation
	if err := query.First(&conversation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *messageRepository) AddMessage(ctx context.Context, message *entities.ChatMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *messageRepository) GetMessages(ctx context.Context, conversationID string) ([]*entities.ChatMessage, error) {
	var messages []*entities.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *messageRepository) UpdateLastMessage(ctx context.Context, conversationID, text string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entities.Conversation{}).
		Where("id = ?", conversationID).
		Updates(map[string]interface{}{
			"last_message":    text,
			"last_message_at": at,
			"unread":          true,
		}).Error
}

func (r *messageRepository) MarkAsRead(ctx context.Context, conversationID string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Conversation{}).
		Where("id = ?", conversationID).
		Update("unread", false).Error
}
