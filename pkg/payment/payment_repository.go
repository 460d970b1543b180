package payment

import (
	"context"
	"errors"
	"time"

	"reloop-backend/domain"
	"reloop-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	PaymentRepository interface {
		GetCoinPackages(ctx context.Context) ([]*entities.CoinPackage, error)
		GetCoinPackageByID(ctx context.Context, id string) (*entities.CoinPackage, error)
		CreateOrder(ctx context.Context, order *entities.PaymentOrder) error
		GetOrderByOrderID(ctx context.Context, orderID string) (*entities.PaymentOrder, error)
		SettleOrder(ctx context.Context, orderID string) error
		MarkOrderFailed(ctx context.Context, orderID string, status string) error
		GetTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*entities.CoinTransaction, int64, error)
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

func (r *paymentRepository) GetCoinPackages(ctx context.Context) ([]*entities.CoinPackage, error) {
	var packages []*entities.CoinPackage
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("price ASC").
		Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *paymentRepository) GetCoinPackageByID(ctx context.Context, id string) (*entities.CoinPackage, error) {
	var pkg entities.CoinPackage
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&pkg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidCoinPackage
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *paymentRepository) CreateOrder(ctx context.Context, order *entities.PaymentOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *paymentRepository) GetOrderByOrderID(ctx context.Context, orderID string) (*entities.PaymentOrder, error) {
	var order entities.PaymentOrder
	if err := r.db.WithContext(ctx).
		Preload("CoinPackage").
		Where("order_id = ?", orderID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// SettleOrder credits the purchased coins exactly once. The order row is
// locked and re-checked inside the transaction, so a replayed settlement
// notification is a no-op.
func (r *paymentRepository) SettleOrder(ctx context.Context, orderID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entities.PaymentOrder
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Preload("CoinPackage").
			Where("order_id = ?", orderID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return err
		}
		if order.Status == "Settled" {
			return nil
		}

		now := time.Now()
		if err := tx.Model(&entities.PaymentOrder{}).
			Where("order_id = ?", orderID).
			Updates(map[string]interface{}{
				"status":     "Settled",
				"settled_at": now,
			}).Error; err != nil {
			return err
		}

		amount := 0
		description := "Coin purchase"
		if order.CoinPackage != nil {
			amount = order.CoinPackage.Amount
			description = "Purchased " + order.CoinPackage.Name
		}

		if err := tx.Model(&entities.User{}).
			Where("id = ?", order.UserID).
			Update("coins", gorm.Expr("coins + ?", amount)).Error; err != nil {
			return err
		}

		var user entities.User
		if err := tx.Where("id = ?", order.UserID).First(&user).Error; err != nil {
			return err
		}

		ledger := entities.CoinTransaction{
			ID:          uuid.New(),
			UserID:      order.UserID,
			Amount:      amount,
			Type:        domain.CoinTxPurchase,
			Reference:   orderID,
			Description: description,
			Balance:     user.Coins,
		}
		return tx.Create(&ledger).Error
	})
}

func (r *paymentRepository) MarkOrderFailed(ctx context.Context, orderID string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.PaymentOrder{}).
		Where("order_id = ? AND status = ?", orderID, "Pending").
		Update("status", status).Error
}

func (r *paymentRepository) GetTransactionHistory(ctx context.Context, userID string, page, limit int) ([]*entities.CoinTransaction, int64, error) {
	var transactions []*entities.CoinTransaction
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.CoinTransaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}
