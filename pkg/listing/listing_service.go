package listing

import (
	"context"
	"fmt"

	"reloop-backend/domain"
	"reloop-backend/entities"
	"reloop-backend/internal/utils/storage"

	"github.com/google/uuid"
)

type (
	ListingService interface {
		CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (*domain.Listing, error)
		GetListings(ctx context.Context, req domain.GetListingsRequest) ([]*domain.Listing, error)
		GetListingDetails(ctx context.Context, id string) (*domain.Listing, error)
		UpdateListing(ctx context.Context, id string, req domain.UpdateListingRequest, userID string) (*domain.Listing, error)
		DeleteListing(ctx context.Context, id string, userID string) error
	}

	listingService struct {
		listingRepository ListingRepository
		s3                storage.AwsS3
	}
)

func NewListingService(listingRepository ListingRepository, s3 storage.AwsS3) ListingService {
	return &listingService{
		listingRepository: listingRepository,
		s3:                s3,
	}
}

func (s *listingService) CreateListing(ctx context.Context, req domain.CreateListingRequest, userID string) (*domain.Listing, error) {
	sellerUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	listingID := uuid.New()
	listing := &entities.Listing{
		ID:          listingID,
		SellerID:    sellerUUID,
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Condition:   req.Condition,
		Status:      domain.ListingStatusAvailable,
		Location:    req.Location,
		CO2Saved:    req.CO2Saved,
	}

	if err := s.listingRepository.CreateListing(ctx, listing); err != nil {
		return nil, err
	}

	if req.Image != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("listing-%s", listingID.String()),
			req.Image,
			"listings",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		image := &entities.ListingImage{
			ID:        uuid.New(),
			ListingID: listingID,
			URL:       s.s3.GetPublicLinkKey(objectKey),
			Position:  0,
		}
		if err := s.listingRepository.AddListingImage(ctx, image); err != nil {
			return nil, err
		}
	}

	return s.GetListingDetails(ctx, listingID.String())
}

func (s *listingService) GetListings(ctx context.Context, req domain.GetListingsRequest) ([]*domain.Listing, error) {
	listings, err := s.listingRepository.GetListings(ctx, req)
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Listing, 0, len(listings))
	for _, l := range listings {
		out = append(out, toDomainListing(l))
	}
	return out, nil
}

func (s *listingService) GetListingDetails(ctx context.Context, id string) (*domain.Listing, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomainListing(listing), nil
}

func (s *listingService) UpdateListing(ctx context.Context, id string, req domain.UpdateListingRequest, userID string) (*domain.Listing, error) {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.SellerID.String() != userID {
		return nil, domain.ErrUnauthorizedListingOwner
	}

	fields := map[string]interface{}{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Price > 0 {
		fields["price"] = req.Price
	}
	if req.Category != "" {
		fields["category"] = req.Category
	}
	if req.Condition != "" {
		fields["condition"] = req.Condition
	}
	if req.Status != "" {
		fields["status"] = req.Status
	}

	if len(fields) > 0 {
		if err := s.listingRepository.UpdateListingFields(ctx, id, fields); err != nil {
			return nil, err
		}
	}

	return s.GetListingDetails(ctx, id)
}

func (s *listingService) DeleteListing(ctx context.Context, id string, userID string) error {
	listing, err := s.listingRepository.GetListingByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.SellerID.String() != userID {
		return domain.ErrUnauthorizedListingOwner
	}
	return s.listingRepository.DeleteListing(ctx, id)
}

// toDomainListing derives the eco impact figures from the stored CO2 value
// and price, matching how the marketplace surfaces them.
func toDomainListing(l *entities.Listing) *domain.Listing {
	images := make([]string, 0, len(l.Images))
	for _, img := range l.Images {
		images = append(images, img.URL)
	}

	seller := domain.ListingSeller{ID: l.SellerID.String()}
	if l.Seller != nil {
		seller.Name = l.Seller.Name
		seller.Avatar = l.Seller.AvatarURL
		seller.CO2Saved = l.Seller.CO2Saved
		seller.ItemsTraded = l.Seller.ItemsTraded
	}

	return &domain.Listing{
		ID:          l.ID.String(),
		Title:       l.Title,
		Description: l.Description,
		Price:       l.Price,
		Category:    l.Category,
		Condition:   l.Condition,
		Status:      l.Status,
		Location:    l.Location,
		IsTopImpact: l.IsTopImpact,
		Images:      images,
		Seller:      seller,
		EcoImpact: domain.EcoImpact{
			CO2Saved:   l.CO2Saved,
			WaterSaved: l.CO2Saved * domain.WaterLitersPerKgCO2,
			WasteSaved: l.CO2Saved * domain.WasteKgPerKgCO2,
			EcoPoints:  float64(l.Price) * domain.EcoPointsPerCoin,
		},
		CreatedAt: l.CreatedAt,
	}
}
