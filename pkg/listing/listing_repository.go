package listing

import (
	"context"
	"errors"

	"reloop-backend/domain"
	"reloop-backend/entities"

	"gorm.io/gorm"
)

type (
	ListingRepository interface {
		CreateListing(ctx context.Context, listing *entities.Listing) error
		GetListingByID(ctx context.Context, id string) (*entities.Listing, error)
		GetListings(ctx context.Context, req domain.GetListingsRequest) ([]*entities.Listing, error)
		UpdateListingFields(ctx context.Context, id string, fields map[string]interface{}) error
		UpdateListingStatus(ctx context.Context, id string, status string) error
		DeleteListing(ctx context.Context, id string) error
		AddListingImage(ctx context.Context, image *entities.ListingImage) error
	}

	listingRepository struct {
		db *gorm.DB
	}
)

func NewListingRepository(db *gorm.DB) ListingRepository {
	return &listingRepository{
		db: db,
	}
}

func (r *listingRepository) CreateListing(ctx context.Context, listing *entities.Listing) error {
	return r.db.WithContext(ctx).Create(listing).Error
}

func (r *listingRepository) GetListingByID(ctx context.Context, id string) (*entities.Listing, error) {
	var listing entities.Listing
	if err := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("id = ?", id).
		First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &listing, nil
}

func (r *listingRepository) GetListings(ctx context.Context, req domain.GetListingsRequest) ([]*entities.Listing, error) {
	query := r.db.WithContext(ctx).
		Preload("Seller").
		Preload("Images")

	if req.Category != "" && req.Category != "All" {
		query = query.Where("category = ?", req.Category)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.SellerID != "" {
		query = query.Where("seller_id = ?", req.SellerID)
	}
	if req.Search != "" {
		pattern := "%" + req.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var listings []*entities.Listing
	if err := query.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, err
	}
	return listings, nil
}

func (r *listingRepository) UpdateListingFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&entities.Listing{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *listingRepository) UpdateListingStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Listing{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *listingRepository) DeleteListing(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&entities.Listing{}, "id = ?", id).Error
}

func (r *listingRepository) AddListingImage(ctx context.Context, image *entities.ListingImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}
