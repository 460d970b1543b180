package user

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
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		CheckEmailExist(ctx context.Context, email string) bool
		UpdateUser(ctx context.Context, user *entities.User) error
		UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error
		VerifyEmail(ctx context.Context, email string) error
		UpdatePassword(ctx context.Context, email string, hashed string) error

		AddBadge(ctx context.Context, userID uuid.UUID, badgeID string) error
		RemoveBadge(ctx context.Context, userID uuid.UUID, badgeID string) error
		GetBadges(ctx context.Context, userID uuid.UUID) ([]string, error)

		TransferCoins(ctx context.Context, fromID, toID uuid.UUID, amount int) error
		AdjustCoins(ctx context.Context, userID uuid.UUID, delta int) error
		GetLeaderboard(ctx context.Context, limit int) ([]*entities.User, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Preload("Badges").
		Where("id = ?", id).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CheckEmailExist(ctx context.Context, email string) bool {
	var count int64
	r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Count(&count)
	return count > 0
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) UpdateUserFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *userRepository) VerifyEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Update("is_verified", true).Error
}

func (r *userRepository) UpdatePassword(ctx context.Context, email string, hashed string) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("email = ?", email).
		Update("password", hashed).Error
}

// AddBadge is idempotent: the unique index on (user_id, badge_id) makes a
// duplicate insert a no-op.
func (r *userRepository) AddBadge(ctx context.Context, userID uuid.UUID, badgeID string) error {
	badge := entities.UserBadge{
		ID:      uuid.New(),
		UserID:  userID,
		BadgeID: badgeID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&badge).Error
}

func (r *userRepository) RemoveBadge(ctx context.Context, userID uuid.UUID, badgeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND badge_id = ?", userID, badgeID).
		Delete(&entities.UserBadge{}).Error
}

func (r *userRepository) GetBadges(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var badges []entities.UserBadge
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&badges).Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(badges))
	for _, b := range badges {
		ids = append(ids, b.BadgeID)
	}
	return ids, nil
}

// TransferCoins moves coins between two accounts in a single transaction.
// Both rows are locked before the balance check, so a concurrent transfer
// cannot overdraw either account.
func (r *userRepository) TransferCoins(ctx context.Context, fromID, toID uuid.UUID, amount int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var from, to entities.User

		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", fromID).
			First(&from).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", toID).
			First(&to).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		if from.Coins < amount {
			return domain.ErrInsufficientCoins
		}

		if err := tx.Model(&entities.User{}).
			Where("id = ?", fromID).
			Update("coins", gorm.Expr("coins - ?", amount)).Error; err != nil {
			return err
		}
		return tx.Model(&entities.User{}).
			Where("id = ?", toID).
			Update("coins", gorm.Expr("coins + ?", amount)).Error
	})
}

// AdjustCoins applies a relative balance change in SQL, so concurrent
// adjustments never lose an update.
func (r *userRepository) AdjustCoins(ctx context.Context, userID uuid.UUID, delta int) error {
	return r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", userID).
		Update("coins", gorm.Expr("coins + ?", delta)).Error
}

func (r *userRepository) GetLeaderboard(ctx context.Context, limit int) ([]*entities.User, error) {
	var users []*entities.User
	if err := r.db.WithContext(ctx).
		Order("xp DESC").
		Limit(limit).
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
