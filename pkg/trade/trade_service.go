package trade

import (
	"context"

	"reloop-backend/domain"
	"reloop-backend/entities"
	"reloop-backend/pkg/demo"
	"reloop-backend/pkg/listing"
	"reloop-backend/pkg/notification"
	"reloop-backend/pkg/user"

	"github.com/google/uuid"
)

type (
	TradeService interface {
		GetTrades(ctx context.Context, userID, role string) ([]domain.Trade, error)
		CreateTrade(ctx context.Context, req domain.CreateTradeRequest, userID, role string) (*domain.Trade, error)
		AcceptTrade(ctx context.Context, id, userID, role string) (*domain.Trade, error)
		DeclineTrade(ctx context.Context, id, userID, role string) (*domain.Trade, error)
		CompleteTrade(ctx context.Context, id, userID, role string) (*domain.Trade, error)
	}

	tradeService struct {
		tradeRepository     TradeRepository
		listingRepository   listing.ListingRepository
		userService         user.UserService
		notificationService notification.NotificationService
		store               *demo.Store
	}
)

func NewTradeService(
	tradeRepository TradeRepository,
	listingRepository listing.ListingRepository,
	userService user.UserService,
	notificationService notification.NotificationService,
	store *demo.Store,
) TradeService {
	return &tradeService{
		tradeRepository:     tradeRepository,
		listingRepository:   listingRepository,
		userService:         userService,
		notificationService: notificationService,
		store:               store,
	}
}

func (s *tradeService) GetTrades(ctx context.Context, userID, role string) ([]domain.Trade, error) {
	if role == domain.RoleDemo {
		return s.store.Trades(), nil
	}

	trades, err := s.tradeRepository.GetUserTrades(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, toDomainTrade(t))
	}
	return out, nil
}

func (s *tradeService) CreateTrade(ctx context.Context, req domain.CreateTradeRequest, userID, role string) (*domain.Trade, error) {
	offer, err := domain.NewTradeOffer(req.OfferedCoins, req.OfferedItem)
	if err != nil {
		return nil, err
	}

	if role == domain.RoleDemo {
		trade, err := s.store.CreateTrade(req.ListingID, offer, req.Message)
		if err != nil {
			return nil, err
		}
		return &trade, nil
	}

	l, err := s.listingRepository.GetListingByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	if l.Status != domain.ListingStatusAvailable {
		return nil, domain.ErrListingNotAvailable
	}
	if l.SellerID.String() == userID {
		return nil, domain.ErrTradeWithSelf
	}

	traderUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	trade := &entities.Trade{
		ID:        uuid.New(),
		ListingID: l.ID,
		SellerID:  l.SellerID,
		TraderID:  traderUUID,
		OfferType: offer.OfferType(),
		Message:   req.Message,
		Status:    domain.TradeStatusPending,
		CO2Saved:  l.CO2Saved,
	}
	switch o := offer.(type) {
	case domain.CoinOffer:
		trade.OfferedCoins = o.Amount
	case domain.ItemOffer:
		trade.OfferedItem = o.Description
	}

	if err := s.tradeRepository.CreateTrade(ctx, trade); err != nil {
		return nil, err
	}

	_ = s.notificationService.Notify(ctx, l.SellerID.String(), domain.RoleUser, domain.Notification{
		Type:    "trade",
		Icon:    "🤝",
		Title:   "New trade request",
		Message: "Someone made an offer on " + l.Title,
	})

	return s.getTrade(ctx, trade.ID.String())
}

func (s *tradeService) AcceptTrade(ctx context.Context, id, userID, role string) (*domain.Trade, error) {
	if role == domain.RoleDemo {
		trade, err := s.store.AcceptTrade(id, userID)
		if err != nil {
			return nil, err
		}
		return &trade, nil
	}

	accepted, err := s.tradeRepository.AcceptTrade(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	_ = s.notificationService.Notify(ctx, accepted.TraderID.String(), domain.RoleUser, domain.Notification{
		Type:    "trade",
		Icon:    "✅",
		Title:   "Trade accepted",
		Message: "Your offer was accepted",
	})

	return s.getTrade(ctx, id)
}

func (s *tradeService) DeclineTrade(ctx context.Context, id, userID, role string) (*domain.Trade, error) {
	if role == domain.RoleDemo {
		trade, err := s.store.DeclineTrade(id, userID)
		if err != nil {
			return nil, err
		}
		return &trade, nil
	}

	trade, err := s.tradeRepository.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trade.SellerID.String() != userID {
		return nil, domain.ErrNotTradeSeller
	}
	if trade.Status != domain.TradeStatusPending {
		return nil, domain.ErrTradeNotPending
	}

	if err := s.tradeRepository.UpdateTradeStatus(ctx, id, domain.TradeStatusDeclined); err != nil {
		return nil, err
	}
	return s.getTrade(ctx, id)
}

func (s *tradeService) CompleteTrade(ctx context.Context, id, userID, role string) (*domain.Trade, error) {
	if role == domain.RoleDemo {
		trade, err := s.store.CompleteTrade(id, userID)
		if err != nil {
			return nil, err
		}
		return &trade, nil
	}

	trade, err := s.tradeRepository.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if trade.SellerID.String() != userID && trade.TraderID.String() != userID {
		return nil, domain.ErrNotTradeParty
	}
	if trade.Status != domain.TradeStatusAccepted {
		return nil, domain.ErrTradeNotAccepted
	}

	if err := s.tradeRepository.CompleteTrade(ctx, id); err != nil {
		return nil, err
	}
	if err := s.listingRepository.UpdateListingStatus(ctx, trade.ListingID.String(), domain.ListingStatusSold); err != nil {
		return nil, err
	}

	for _, partyID := range []string{trade.SellerID.String(), trade.TraderID.String()} {
		if err := s.userService.AddTradeProgress(ctx, partyID, trade.CO2Saved); err != nil {
			return nil, err
		}
		_, _ = s.userService.AddBadge(ctx, partyID, "first-trade")
	}

	return s.getTrade(ctx, id)
}

func (s *tradeService) getTrade(ctx context.Context, id string) (*domain.Trade, error) {
	trade, err := s.tradeRepository.GetTradeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := toDomainTrade(trade)
	return &out, nil
}

func toDomainTrade(t *entities.Trade) domain.Trade {
	out := domain.Trade{
		ID:           t.ID.String(),
		ListingID:    t.ListingID.String(),
		SellerID:     t.SellerID.String(),
		TraderID:     t.TraderID.String(),
		OfferType:    t.OfferType,
		OfferedCoins: t.OfferedCoins,
		OfferedItem:  t.OfferedItem,
		Message:      t.Message,
		Status:       t.Status,
		CO2Saved:     t.CO2Saved,
		CreatedAt:    t.CreatedAt,
		CompletedAt:  t.CompletedAt,
	}
	if t.Listing != nil {
		out.ListingTitle = t.Listing.Title
		if len(t.Listing.Images) > 0 {
			out.ListingImage = t.Listing.Images[0].URL
		}
	}
	if t.Seller != nil {
		out.SellerName = t.Seller.Name
		out.SellerAvatar = t.Seller.AvatarURL
	}
	if t.Trader != nil {
		out.TraderName = t.Trader.Name
		out.TraderAvatar = t.Trader.AvatarURL
	}
	return out
}
