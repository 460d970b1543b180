package reward

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
	RewardRepository interface {
		GetRewards(ctx context.Context) ([]*entities.Reward, error)
		GetRewardByID(ctx context.Context, id string) (*entities.Reward, error)
		GetUserRedemptions(ctx context.Context, userID string) ([]*entities.RewardRedemption, error)
		Redeem(ctx context.Context, userID uuid.UUID, reward *entities.Reward) (int, error)
	}

	rewardRepository struct {
		db *gorm.DB
	}
)

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{
		db: db,
	}
}

func (r *rewardRepository) GetRewards(ctx context.Context) ([]*entities.Reward, error) {
	var rewards []*entities.Reward
	if err := r.db.WithContext(ctx).
		Order("cost ASC").
		Find(&rewards).Error; err != nil {
		return nil, err
	}
	return rewards, nil
}

func (r *rewardRepository) GetRewardByID(ctx context.Context, id string) (*entities.Reward, error) {
	var reward entities.Reward
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reward).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRewardNotFound
		}
		return nil, err
	}
	return &reward, nil
}

func (r *rewardRepository) GetUserRedemptions(ctx context.Context, userID string) ([]*entities.RewardRedemption, error) {
	var redemptions []*entities.RewardRedemption
	if err := r.db.WithContext(ctx).
		Preload("Reward").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&redemptions).Error; err != nil {
		return nil, err
	}
	return redemptions, nil
}

// Redeem debits the user and records the redemption in one transaction. The
// unique (user_id, reward_id) index backstops the redeemed check, so two
// concurrent redemptions of the same reward cannot both commit. Returns the
// remaining balance.
func (r *rewardRepository) Redeem(ctx context.Context, userID uuid.UUID, reward *entities.Reward) (int, error) {
	var remaining int

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&entities.RewardRedemption{}).
			Where("user_id = ? AND reward_id = ?", userID, reward.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrRewardAlreadyRedeemed
		}

		var user entities.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", userID).
			First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}
		if user.Coins < reward.Cost {
			return domain.ErrInsufficientCoins
		}

		remaining = user.Coins - reward.Cost
		if err := tx.Model(&entities.User{}).
			Where("id = ?", userID).
			Update("coins", remaining).Error; err != nil {
			return err
		}

		redemption := entities.RewardRedemption{
			ID:       uuid.New(),
			UserID:   userID,
			RewardID: reward.ID,
			Cost:     reward.Cost,
		}
		if err := tx.Create(&redemption).Error; err != nil {
			return err
		}

		ledger := entities.CoinTransaction{
			ID:          uuid.New(),
			UserID:      userID,
			Amount:      -reward.Cost,
			Type:        domain.CoinTxRedemption,
			Reference:   reward.ID.String(),
			Description: "Redeemed " + reward.Title,
			Balance:     remaining,
		}
		return tx.Create(&ledger).Error
	})
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
