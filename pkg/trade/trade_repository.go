package trade

import (
	"context"
	"errors"
	"time"

	"reloop-backend/domain"
	"reloop-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	TradeRepository interface {
		CreateTrade(ctx context.Context, trade *entities.Trade) error
		GetTradeByID(ctx context.Context, id string) (*entities.Trade, error)
		GetUserTrades(ctx context.Context, userID string) ([]*entities.Trade, error)
		UpdateTradeStatus(ctx context.Context, id string, status string) error
		AcceptTrade(ctx context.Context, id string, actorID string) (*entities.Trade, error)
		CompleteTrade(ctx context.Context, id string) error
	}

	tradeRepository struct {
		db *gorm.DB
	}
)

func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{
		db: db,
	}
}

func (r *tradeRepository) CreateTrade(ctx context.Context, trade *entities.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

func (r *tradeRepository) GetTradeByID(ctx context.Context, id string) (*entities.Trade, error) {
	var trade entities.Trade
	if err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Listing.Images").
		Preload("Seller").
		Preload("Trader").
		Where("id = ?", id).
		First(&trade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTradeNotFound
		}
		return nil, err
	}
	return &trade, nil
}

func (r *tradeRepository) GetUserTrades(ctx context.Context, userID string) ([]*entities.Trade, error) {
	var trades []*entities.Trade
	if err := r.db.WithContext(ctx).
		Preload("Listing").
		Preload("Listing.Images").
		Preload("Seller").
		Preload("Trader").
		Where("seller_id = ? OR trader_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

func (r *tradeRepository) UpdateTradeStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Trade{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// AcceptTrade runs the acceptance in one transaction: the trade row is
// locked before the status check, and for coin offers the transfer happens
// inside the same transaction. Either the status flips and the coins move,
// or nothing changes.
func (r *tradeRepository) AcceptTrade(ctx context.Context, id string, actorID string) (*entities.Trade, error) {
	var accepted *entities.Trade

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var trade entities.Trade
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&trade).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrTradeNotFound
			}
			return err
		}

		if trade.SellerID.String() != actorID {
			return domain.ErrNotTradeSeller
		}
		if trade.Status != domain.TradeStatusPending {
			return domain.ErrTradeNotPending
		}

		if trade.OfferType == domain.OfferTypeCoins && trade.OfferedCoins > 0 {
			// Both accounts are locked and existence-checked before any
			// balance moves; a vanished row on either side aborts the
			// whole acceptance.
			var trader entities.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", trade.TraderID).
				First(&trader).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrAccountNotFound
				}
				return err
			}
			if trader.Coins < trade.OfferedCoins {
				return domain.ErrInsufficientCoins
			}
			var seller entities.User
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", trade.SellerID).
				First(&seller).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domain.ErrAccountNotFound
				}
				return err
			}

			if err := tx.Model(&entities.User{}).
				Where("id = ?", trade.TraderID).
				Update("coins", gorm.Expr("coins - ?", trade.OfferedCoins)).Error; err != nil {
				return err
			}
			if err := tx.Model(&entities.User{}).
				Where("id = ?", trade.SellerID).
				Update("coins", gorm.Expr("coins + ?", trade.OfferedCoins)).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&entities.Trade{}).
			Where("id = ?", id).
			Update("status", domain.TradeStatusAccepted).Error; err != nil {
			return err
		}

		trade.Status = domain.TradeStatusAccepted
		accepted = &trade
		return nil
	})
	if err != nil {
		return nil, err
	}
	return accepted, nil
}

func (r *tradeRepository) CompleteTrade(ctx context.Context, id string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.Trade{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":       domain.TradeStatusCompleted,
			"completed_at": now,
		}).Error
}
