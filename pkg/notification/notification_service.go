package notification

import (
	"context"

	"reloop-backend/domain"
	"reloop-backend/entities"
	"reloop-backend/pkg/demo"

	"github.com/google/uuid"
)

type (
	NotificationService interface {
		GetNotifications(ctx context.Context, userID, role string) ([]domain.Notification, error)
		MarkAsRead(ctx context.Context, id, userID, role string) error
		Notify(ctx context.Context, userID, role string, n domain.Notification) error
	}

	notificationService struct {
		notificationRepository NotificationRepository
		store                  *demo.Store
	}
)

func NewNotificationService(notificationRepository NotificationRepository, store *demo.Store) NotificationService {
	return &notificationService{
		notificationRepository: notificationRepository,
		store:                  store,
	}
}

func (s *notificationService) GetNotifications(ctx context.Context, userID, role string) ([]domain.Notification, error) {
	if role == domain.RoleDemo {
		return s.store.Notifications(), nil
	}

	notifications, err := s.notificationRepository.GetUserNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Notification, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, domain.Notification{
			ID:        n.ID.String(),
			Type:      n.Type,
			Icon:      n.Icon,
			Title:     n.Title,
			Message:   n.Message,
			ActionURL: n.ActionURL,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return out, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, id, userID, role string) error {
	if role == domain.RoleDemo {
		return s.store.MarkNotificationRead(id)
	}
	return s.notificationRepository.MarkAsRead(ctx, id, userID)
}

// Notify fans a notification to whichever backend holds the recipient.
func (s *notificationService) Notify(ctx context.Context, userID, role string, n domain.Notification) error {
	if role == domain.RoleDemo {
		s.store.AddNotification(n)
		return nil
	}

	recipient, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.notificationRepository.CreateNotification(ctx, &entities.Notification{
		ID:        uuid.New(),
		UserID:    recipient,
		Type:      n.Type,
		Icon:      n.Icon,
		Title:     n.Title,
		Message:   n.Message,
		ActionURL: n.ActionURL,
	})
}
