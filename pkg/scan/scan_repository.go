package scan

import (
	"context"

	"reloop-backend/entities"

	"gorm.io/gorm"
)

type (
	ScanRepository interface {
		SaveScan(ctx context.Context, scan *entities.ItemScan) error
		GetUserScans(ctx context.Context, userID string) ([]*entities.ItemScan, error)
		CountUserScans(ctx context.Context, userID string) (int64, error)
	}

	scanRepository struct {
		db *gorm.DB
	}
)

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{
		db: db,
	}
}

func (r *scanRepository) SaveScan(ctx context.Context, scan *entities.ItemScan) error {
	return r.db.WithContext(ctx).Create(scan).Error
}

func (r *scanRepository) GetUserScans(ctx context.Context, userID string) ([]*entities.ItemScan, error) {
	var scans []*entities.ItemScan
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&scans).Error; err != nil {
		return nil, err
	}
	return scans, nil
}

func (r *scanRepository) CountUserScans(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.ItemScan{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
