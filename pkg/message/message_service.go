package message

import (
	"context"
	"time"

	"reloop-backend/domain"
	"reloop-backend/entities"
	"reloop-backend/pkg/demo"

	"github.com/google/uuid"
)

type (
	MessageService interface {
		StartConversation(ctx context.Context, req domain.StartConversationRequest, userID, role string) (*domain.Conversation, error)
		GetConversations(ctx context.Context, userID, role string) ([]domain.Conversation, error)
		GetMessages(ctx context.Context, conversationID, userID, role string) ([]domain.ChatMessage, error)
		SendMessage(ctx context.Context, req domain.SendChatRequest, userID, role string) (*domain.ChatMessage, error)
		MarkAsRead(ctx context.Context, conversationID, userID, role string) error
	}

	messageService struct {
		messageRepository MessageRepository
		store             *demo.Store
	}
)

func NewMessageService(messageRepository MessageRepository, store *demo.Store) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		store:             store,
	}
}

func (s *messageService) StartConversation(ctx context.Context, req domain.StartConversationRequest, userID, role string) (*domain.Conversation, error) {
	if role == domain.RoleDemo {
		// The demo dataset ships with fixed conversations; starting a new
		// one is not part of the walkthrough.
		return nil, domain.ErrConversationNotFound
	}

	if req.RecipientID == userID {
		return nil, domain.ErrConversationWithSelf
	}

	existing, err := s.messageRepository.FindConversation(ctx, userID, req.RecipientID, req.ListingID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return s.toDomainConversation(existing, userID), nil
	}

	oneUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	twoUUID, err := uuid.Parse(req.RecipientID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	conversation := &entities.Conversation{
		ID:               uuid.New(),
		ParticipantOneID: oneUUID,
		ParticipantTwoID: twoUUID,
		ConversationType: req.Type,
		ProjectID:        req.ProjectID,
		ProjectTitle:     req.ProjectTitle,
		LastMessageAt:    time.Now(),
	}
	if req.ListingID != "" {
		listingUUID, err := uuid.Parse(req.ListingID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		conversation.ListingID = &listingUUID
	}

	if err := s.messageRepository.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}

	created, err := s.messageRepository.GetConversationByID(ctx, conversation.ID.String())
	if err != nil {
		return nil, err
	}
	return s.toDomainConversation(created, userID), nil
}

func (s *messageService) GetConversations(ctx context.Context, userID, role string) ([]domain.Conversation, error) {
	if role == domain.RoleDemo {
		return s.store.Conversations(), nil
	}

	conversations, err := s.messageRepository.GetUserConversations(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Conversation, 0, len(conversations))
	for _, c := range conversations {
		out = append(out, *s.toDomainConversation(c, userID))
	}
	return out, nil
}

func (s *messageService) GetMessages(ctx context.Context, conversationID, userID, role string) ([]domain.ChatMessage, error) {
	if role == domain.RoleDemo {
		return s.store.ConversationMessages(conversationID)
	}

	conversation, err := s.messageRepository.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(conversation, userID) {
		return nil, domain.ErrNotConversationMember
	}

	messages, err := s.messageRepository.GetMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ChatMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, domain.ChatMessage{
			ID:             m.ID.String(),
			ConversationID: m.ConversationID.String(),
			SenderID:       m.SenderID.String(),
			Text:           m.Text,
			IsOwn:          m.SenderID.String() == userID,
			CreatedAt:      m.CreatedAt,
		})
	}
	return out, nil
}

func (s *messageService) SendMessage(ctx context.Context, req domain.SendChatRequest, userID, role string) (*domain.ChatMessage, error) {
	if role == domain.RoleDemo {
		msg, err := s.store.SendMessage(req.ConversationID, req.Text)
		if err != nil {
			return nil, err
		}
		return &msg, nil
	}

	conversation, err := s.messageRepository.GetConversationByID(ctx, req.ConversationID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(conversation, userID) {
		return nil, domain.ErrNotConversationMember
	}

	senderUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	msg := &entities.ChatMessage{
		ID:             uuid.New(),
		ConversationID: conversation.ID,
		SenderID:       senderUUID,
		Text:           req.Text,
	}
	if err := s.messageRepository.AddMessage(ctx, msg); err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.messageRepository.UpdateLastMessage(ctx, req.ConversationID, req.Text, now); err != nil {
		return nil, err
	}

	return &domain.ChatMessage{
		ID:             msg.ID.String(),
		ConversationID: req.ConversationID,
		SenderID:       userID,
		Text:           req.Text,
		IsOwn:          true,
		CreatedAt:      now,
	}, nil
}

func (s *messageService) MarkAsRead(ctx context.Context, conversationID, userID, role string) error {
	if role == domain.RoleDemo {
		return s.store.MarkConversationRead(conversationID)
	}

	conversation, err := s.messageRepository.GetConversationByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !isParticipant(conversation, userID) {
		return domain.ErrNotConversationMember
	}

	return s.messageRepository.MarkAsRead(ctx, conversationID)
}

func isParticipant(c *entities.Conversation, userID string) bool {
	return c.ParticipantOneID.String() == userID || c.ParticipantTwoID.String() == userID
}

// toDomainConversation presents the conversation from the viewer's side: the
// other participant becomes the partner.
func (s *messageService) toDomainConversation(c *entities.Conversation, viewerID string) *domain.Conversation {
	out := &domain.Conversation{
		ID:            c.ID.String(),
		Type:          c.ConversationType,
		ProjectID:     c.ProjectID,
		ProjectTitle:  c.ProjectTitle,
		LastMessage:   c.LastMessage,
		LastMessageAt: c.LastMessageAt,
		Unread:        c.Unread,
	}
	if c.ListingID != nil {
		out.ListingID = c.ListingID.String()
	}
	if c.Listing != nil {
		out.ListingTitle = c.Listing.Title
	}

	partner := c.ParticipantOne
	if c.ParticipantOneID.String() == viewerID {
		partner = c.ParticipantTwo
	}
	if partner != nil {
		out.PartnerID = partner.ID.String()
		out.PartnerName = partner.Name
		out.PartnerAvatar = partner.AvatarURL
	}
	return out
}
