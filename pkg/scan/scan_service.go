package scan

import (
	"context"
	"fmt"
	"log"

	"reloop-backend/domain"
	"reloop-backend/entities"
	"reloop-backend/internal/utils/storage"
	"reloop-backend/pkg/demo"
	"reloop-backend/pkg/user"

	"github.com/google/uuid"
)

type (
	ScanService interface {
		ScanItem(ctx context.Context, req domain.ScanItemRequest, userID, role string) (*domain.ScanResult, error)
		GetScanHistory(ctx context.Context, userID, role string) ([]domain.ScanResult, error)
	}

	scanService struct {
		scanRepository ScanRepository
		classifier     ClassifierClient
		userService    user.UserService
		store          *demo.Store
		s3             storage.AwsS3
	}
)

func NewScanService(
	scanRepository ScanRepository,
	classifier ClassifierClient,
	userService user.UserService,
	store *demo.Store,
	s3 storage.AwsS3,
) ScanService {
	return &scanService{
		scanRepository: scanRepository,
		classifier:     classifier,
		userService:    userService,
		store:          store,
		s3:             s3,
	}
}

// ScanItem classifies the uploaded image and applies the reward for safe
// items. Hazardous and non-reusable classifications are recorded but earn
// nothing.
func (s *scanService) ScanItem(ctx context.Context, req domain.ScanItemRequest, userID, role string) (*domain.ScanResult, error) {
	if req.Image == nil {
		return nil, domain.ErrMissingScanImage
	}

	resp, err := s.classifier.Classify(ctx, req.Image)
	if err != nil {
		return nil, err
	}

	xpEarned := 0
	coinsEarned := 0
	if resp.Classification == domain.ClassificationSafe {
		xpEarned = domain.ScanXPReward
		coinsEarned = resp.Item.EstimatedCoins
	}

	result := domain.ScanResult{
		Classification: resp.Classification,
		Item:           resp.Item,
		XPEarned:       xpEarned,
		CoinsEarned:    coinsEarned,
	}

	if role == domain.RoleDemo {
		recorded := s.store.RecordScan(result)
		return &recorded, nil
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	scanID := uuid.New()
	var imageURL string
	if key, err := s.s3.UploadFile(
		fmt.Sprintf("scan-%s", scanID.String()),
		req.Image,
		"scans",
		storage.AllowImage...,
	); err == nil {
		imageURL = s.s3.GetPublicLinkKey(key)
	} else {
		// The scan still counts without its image.
		log.Printf("error uploading scan image: %v", err)
	}

	scan := &entities.ItemScan{
		ID:             scanID,
		UserID:         userUUID,
		ImageURL:       imageURL,
		ObjectName:     resp.Item.ObjectName,
		Category:       resp.Item.Category,
		Material:       resp.Item.Material,
		Condition:      resp.Item.Condition,
		Classification: resp.Classification,
		Confidence:     resp.Item.Confidence,
		EstimatedCoins: resp.Item.EstimatedCoins,
		CO2Savings:     resp.Item.CO2Savings,
		Recyclable:     resp.Item.Recyclable,
		XPEarned:       xpEarned,
		CoinsEarned:    coinsEarned,
	}
	if err := s.scanRepository.SaveScan(ctx, scan); err != nil {
		return nil, err
	}

	if xpEarned > 0 {
		if _, err := s.userService.AddXP(ctx, userID, domain.AddXPRequest{Amount: xpEarned, Reason: "scan"}); err != nil {
			return nil, err
		}
	}
	if coinsEarned > 0 {
		if err := s.userService.AddCoins(ctx, userID, coinsEarned); err != nil {
			return nil, err
		}
	}

	if count, err := s.scanRepository.CountUserScans(ctx, userID); err == nil && count >= 50 {
		_, _ = s.userService.AddBadge(ctx, userID, "scanner-pro")
	}

	result.ID = scanID.String()
	result.CreatedAt = scan.CreatedAt
	return &result, nil
}

func (s *scanService) GetScanHistory(ctx context.Context, userID, role string) ([]domain.ScanResult, error) {
	if role == domain.RoleDemo {
		return s.store.ScanHistory(), nil
	}

	scans, err := s.scanRepository.GetUserScans(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ScanResult, 0, len(scans))
	for _, sc := range scans {
		out = append(out, domain.ScanResult{
			ID:             sc.ID.String(),
			Classification: sc.Classification,
			Item: domain.ScannedItem{
				ObjectName:     sc.ObjectName,
				Category:       sc.Category,
				Material:       sc.Material,
				Condition:      sc.Condition,
				Confidence:     sc.Confidence,
				EstimatedCoins: sc.EstimatedCoins,
				CO2Savings:     sc.CO2Savings,
				Recyclable:     sc.Recyclable,
			},
			XPEarned:    sc.XPEarned,
			CoinsEarned: sc.CoinsEarned,
			CreatedAt:   sc.CreatedAt,
		})
	}
	return out, nil
}
