package trade

import (
	"context"
	"testing"

	"reloop-backend/domain"
	"reloop-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTradeRepository struct {
	TradeRepository
	acceptTrade func(ctx context.Context, id, actorID string) (*entities.Trade, error)
	getByID     func(ctx context.Context, id string) (*entities.Trade, error)
}

func (s *stubTradeRepository) AcceptTrade(ctx context.Context, id, actorID string) (*entities.Trade, error) {
	return s.acceptTrade(ctx, id, actorID)
}

func (s *stubTradeRepository) GetTradeByID(ctx context.Context, id string) (*entities.Trade, error) {
	return s.getByID(ctx, id)
}

type stubNotificationService struct {
	notified []domain.Notification
}

func (s *stubNotificationService) GetNotifications(ctx context.Context, userID, role string) ([]domain.Notification, error) {
	return nil, nil
}

func (s *stubNotificationService) MarkAsRead(ctx context.Context, id, userID, role string) error {
	return nil
}

func (s *stubNotificationService) Notify(ctx context.Context, userID, role string, n domain.Notification) error {
	s.notified = append(s.notified, n)
	return nil
}

func TestAcceptTradeMissingAccountAbortsWithoutNotifying(t *testing.T) {
	sellerID := uuid.New()
	repo := &stubTradeRepository{
		acceptTrade: func(ctx context.Context, id, actorID string) (*entities.Trade, error) {
			return nil, domain.ErrAccountNotFound
		},
	}
	notifications := &stubNotificationService{}
	s := NewTradeService(repo, nil, nil, notifications, nil)

	_, err := s.AcceptTrade(context.Background(), "trade-id", sellerID.String(), domain.RoleUser)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Empty(t, notifications.notified, "a failed acceptance must not notify the trader")
}

func TestAcceptTradeNotifiesTrader(t *testing.T) {
	tradeID := uuid.New()
	sellerID := uuid.New()
	traderID := uuid.New()
	accepted := &entities.Trade{
		ID:       tradeID,
		SellerID: sellerID,
		TraderID: traderID,
		Status:   domain.TradeStatusAccepted,
	}
	repo := &stubTradeRepository{
		acceptTrade: func(ctx context.Context, id, actorID string) (*entities.Trade, error) {
			return accepted, nil
		},
		getByID: func(ctx context.Context, id string) (*entities.Trade, error) {
			return accepted, nil
		},
	}
	notifications := &stubNotificationService{}
	s := NewTradeService(repo, nil, nil, notifications, nil)

	out, err := s.AcceptTrade(context.Background(), tradeID.String(), sellerID.String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStatusAccepted, out.Status)
	require.Len(t, notifications.notified, 1)
	assert.Equal(t, "trade", notifications.notified[0].Type)
}
