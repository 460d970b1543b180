package charity

import (
	"context"

	"reloop-backend/domain"
	"reloop-backend/entities"
	"reloop-backend/pkg/demo"
	"reloop-backend/pkg/user"

	"github.com/google/uuid"
)

type (
	CharityService interface {
		GetCharities(ctx context.Context, role string) ([]domain.Charity, error)
		Donate(ctx context.Context, req domain.DonateRequest, userID, role string) (*domain.DonateResponse, error)
		GetRecentDonations(ctx context.Context, role string) ([]domain.DonationFeedEntry, error)
		GetDonationStats(ctx context.Context, userID, role string) (*domain.DonationStats, error)
	}

	charityService struct {
		charityRepository CharityRepository
		userService       user.UserService
		store             *demo.Store
	}
)

func NewCharityService(charityRepository CharityRepository, userService user.UserService, store *demo.Store) CharityService {
	return &charityService{
		charityRepository: charityRepository,
		userService:       userService,
		store:             store,
	}
}

func (s *charityService) GetCharities(ctx context.Context, role string) ([]domain.Charity, error) {
	if role == domain.RoleDemo {
		return s.store.Charities(), nil
	}

	charities, err := s.charityRepository.GetCharities(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Charity, 0, len(charities))
	for _, c := range charities {
		out = append(out, toDomainCharity(c))
	}
	return out, nil
}

func (s *charityService) Donate(ctx context.Context, req domain.DonateRequest, userID, role string) (*domain.DonateResponse, error) {
	if role == domain.RoleDemo {
		resp, err := s.store.Donate(req.CharityID, req.Coins)
		if err != nil {
			return nil, err
		}
		return &resp, nil
	}

	charity, err := s.charityRepository.GetCharityByID(ctx, req.CharityID)
	if err != nil {
		return nil, err
	}
	if req.Coins < charity.MinDonation {
		return nil, domain.ErrDonationBelowMinimum
	}
	if req.Coins%charity.MinDonation != 0 {
		return nil, domain.ErrDonationNotMultiple
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	units := req.Coins / charity.MinDonation
	remaining, err := s.charityRepository.Donate(ctx, userUUID, charity, req.Coins, units)
	if err != nil {
		return nil, err
	}

	_, _ = s.userService.AddBadge(ctx, userID, "generous-soul")

	return &domain.DonateResponse{
		CharityID:      req.CharityID,
		Coins:          req.Coins,
		Units:          units,
		RemainingCoins: remaining,
	}, nil
}

func (s *charityService) GetRecentDonations(ctx context.Context, role string) ([]domain.DonationFeedEntry, error) {
	if role == domain.RoleDemo {
		return s.store.RecentDonations(), nil
	}

	donations, err := s.charityRepository.GetRecentDonations(ctx, 20)
	if err != nil {
		return nil, err
	}

	out := make([]domain.DonationFeedEntry, 0, len(donations))
	for _, d := range donations {
		entry := domain.DonationFeedEntry{
			ID:        d.ID.String(),
			Coins:     d.Coins,
			Units:     d.Units,
			CreatedAt: d.CreatedAt,
		}
		if d.User != nil {
			entry.UserName = d.User.Name
			entry.UserAvatar = d.User.AvatarURL
		}
		if d.Charity != nil {
			entry.CharityName = d.Charity.Name
			entry.CharityLogo = d.Charity.Logo
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *charityService) GetDonationStats(ctx context.Context, userID, role string) (*domain.DonationStats, error) {
	if role == domain.RoleDemo {
		donations := s.store.RecentDonations()
		userTotal := 0
		for _, d := range donations {
			userTotal += d.Coins
		}
		return &domain.DonationStats{
			TotalDonations: len(donations),
			ActiveDonors:   1,
			UserTotal:      userTotal,
		}, nil
	}
	return s.charityRepository.GetDonationStats(ctx, userID)
}

func toDomainCharity(c *entities.CharityPartner) domain.Charity {
	return domain.Charity{
		ID:           c.ID.String(),
		Name:         c.Name,
		Description:  c.Description,
		Logo:         c.Logo,
		Category:     c.Category,
		Impact:       c.Impact,
		ImpactMetric: c.ImpactMetric,
		MinDonation:  c.MinDonation,
		Goal:         c.Goal,
		Current:      c.Current,
		Featured:     c.IsFeatured,
	}
}
