package scan

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"reloop-backend/domain"
	"reloop-backend/entities"
	"reloop-backend/pkg/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClassifier struct {
	resp *domain.ClassifierResponse
	err  error
}

func (s *stubClassifier) Classify(ctx context.Context, image *multipart.FileHeader) (*domain.ClassifierResponse, error) {
	return s.resp, s.err
}

type failingS3 struct{}

func (failingS3) UploadFile(fileName string, file *multipart.FileHeader, dir string, allowedTypes ...string) (string, error) {
	return "", errors.New("bucket unreachable")
}

func (failingS3) GetPublicLinkKey(key string) string { return "https://bucket/" + key }

type stubScanRepository struct {
	saved *entities.ItemScan
}

func (s *stubScanRepository) SaveScan(ctx context.Context, scan *entities.ItemScan) error {
	s.saved = scan
	return nil
}

func (s *stubScanRepository) GetUserScans(ctx context.Context, userID string) ([]*entities.ItemScan, error) {
	return nil, nil
}

func (s *stubScanRepository) CountUserScans(ctx context.Context, userID string) (int64, error) {
	return 1, nil
}

type stubUserService struct {
	user.UserService
}

func (stubUserService) AddXP(ctx context.Context, userID string, req domain.AddXPRequest) (*domain.Profile, error) {
	return &domain.Profile{}, nil
}

func (stubUserService) AddCoins(ctx context.Context, userID string, amount int) error {
	return nil
}

func TestScanItemSurvivesImageUploadFailure(t *testing.T) {
	repo := &stubScanRepository{}
	classifier := &stubClassifier{
		resp: &domain.ClassifierResponse{
			Success:        true,
			Classification: domain.ClassificationSafe,
			Item:           domain.ScannedItem{ObjectName: "Water Bottle", EstimatedCoins: 25},
		},
	}
	s := NewScanService(repo, classifier, stubUserService{}, nil, failingS3{})

	result, err := s.ScanItem(context.Background(), domain.ScanItemRequest{Image: &multipart.FileHeader{Filename: "bottle.jpg"}}, uuid.New().String(), domain.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, domain.ScanXPReward, result.XPEarned)
	assert.Equal(t, 25, result.CoinsEarned)

	require.NotNil(t, repo.saved)
	assert.Empty(t, repo.saved.ImageURL, "failed upload leaves the scan without an image")
}
