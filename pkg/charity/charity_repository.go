package charity

import (
	"context"
	"errors"

	"reloop-backend/domain"
	"reloop-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CharityRepository interface {
		GetCharities(ctx context.Context) ([]*entities.CharityPartner, error)
		GetCharityByID(ctx context.Context, id string) (*entities.CharityPartner, error)
		Donate(ctx context.Context, userID uuid.UUID, charity *entities.CharityPartner, coins, units int) (int, error)
		GetRecentDonations(ctx context.Context, limit int) ([]*entities.CharityDonation, error)
		GetDonationStats(ctx context.Context, userID string) (*domain.DonationStats, error)
	}

	charityRepository struct {
		db *gorm.DB
	}
)

func NewCharityRepository(db *gorm.DB) CharityRepository {
	return &charityRepository{
		db: db,
	}
}

func (r *charityRepository) GetCharities(ctx context.Context) ([]*entities.CharityPartner, error) {
	var charities []*entities.CharityPartner
	if err := r.db.WithContext(ctx).
		Order("is_featured DESC, name ASC").
		Find(&charities).Error; err != nil {
		return nil, err
	}
	return charities, nil
}

func (r *charityRepository) GetCharityByID(ctx context.Context, id string) (*entities.CharityPartner, error) {
	var charity entities.CharityPartner
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&charity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCharityNotFound
		}
		return nil, err
	}
	return &charity, nil
}

// Donate debits the donor and advances the charity progress counter in one
// transaction. The counter moves by whole impact units, incremented in SQL
// so concurrent donations never lose an update. Returns the remaining
// balance.
func (r *charityRepository) Donate(ctx context.Context, userID uuid.UUID, charity *entities.CharityPartner, coins, units int) (int, error) {
	var remaining int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user entities.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		if user.Coins < coins {
			return domain.ErrInsufficientCoins
		}

		remaining = user.Coins - coins
		if err := tx.Model(&entities.User{}).
			Where("id = ?", userID).
			Update("coins", remaining).Error; err != nil {
			return err
		}

		if err := tx.Model(&entities.CharityPartner{}).
			Where("id = ?", charity.ID).
			Update("current", gorm.Expr("current + ?", units)).Error; err != nil {
			return err
		}

		donation := entities.CharityDonation{
			ID:        uuid.New(),
			CharityID: charity.ID,
			UserID:    userID,
			Coins:     coins,
			Units:     units,
		}
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}

		ledger := entities.CoinTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      -coins,
			Type:        domain.CoinTxDonation,
			Reference:   charity.ID.String(),
			Description: "Donated to " + charity.Name,
			Balance:     remaining,
		}
		return tx.Create(&ledger).Error
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *charityRepository) GetRecentDonations(ctx context.Context, limit int) ([]*entities.CharityDonation, error) {
	var donations []*entities.CharityDonation
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Charity").
		Order("created_at DESC").
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

func (r *charityRepository) GetDonationStats(ctx context.Context, userID string) (*domain.DonationStats, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CharityDonation{}).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var donors int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CharityDonation{}).
		Distinct("user_id").
		Count(&donors).Error; err != nil {
		return nil, err
	}

	var userTotal int64
	if err := r.db.WithContext(ctx).
		Model(&entities.CharityDonation{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(coins), 0)").
		Scan(&userTotal).Error; err != nil {
		return nil, err
	}

	return &domain.DonationStats{
		TotalDonations: int(total),
		ActiveDonors:   int(donors),
		UserTotal:      int(userTotal),
	}, nil
}
