package reward

import (
	"context"

	"reloop-backend/domain"
	"reloop-backend/pkg/demo"

	"github.com/google/uuid"
)

type (
	RewardService interface {
		GetRewards(ctx context.Context, userID, role string) ([]domain.Reward, error)
		RedeemReward(ctx context.Context, rewardID, userID, role string) (*domain.RedeemRewardResponse, error)
		GetRedemptions(ctx context.Context, userID, role string) ([]domain.Redemption, error)
	}

	rewardService struct {
		rewardRepository RewardRepository
		store            *demo.Store
	}
)

func NewRewardService(rewardRepository RewardRepository, store *demo.Store) RewardService {
	return &rewardService{
		rewardRepository: rewardRepository,
		store:            store,
	}
}

func (s *rewardService) GetRewards(ctx context.Context, userID, role string) ([]domain.Reward, error) {
	if role == domain.RoleDemo {
		return s.store.Rewards(), nil
	}

	rewards, err := s.rewardRepository.GetRewards(ctx)
	if err != nil {
		return nil, err
	}

	redemptions, err := s.rewardRepository.GetUserRedemptions(ctx, userID)
	if err != nil {
		return nil, err
	}
	redeemed := make(map[string]bool, len(redemptions))
	for _, r := range redemptions {
		redeemed[r.RewardID.String()] = true
	}

	out := make([]domain.Reward, 0, len(rewards))
	for _, r := range rewards {
		out = append(out, domain.Reward{
			ID:          r.ID.String(),
			Title:       r.Title,
			Description: r.Description,
			Icon:        r.Icon,
			Cost:        r.Cost,
			Category:    r.Category,
			PartnerLogo: r.PartnerLogo,
			Available:   r.IsAvailable,
			Redeemed:    redeemed[r.ID.String()],
		})
	}
	return out, nil
}

func (s *rewardService) RedeemReward(ctx context.Context, rewardID, userID, role string) (*domain.RedeemRewardResponse, error) {
	if role == domain.RoleDemo {
		resp, err := s.store.RedeemReward(rewardID)
		if err != nil {
			return nil, err
		}
		return &resp, nil
	}

	reward, err := s.rewardRepository.GetRewardByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if !reward.IsAvailable {
		return nil, domain.ErrRewardNotAvailable
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	remaining, err := s.rewardRepository.Redeem(ctx, userUUID, reward)
	if err != nil {
		return nil, err
	}

	return &domain.RedeemRewardResponse{
		RewardID:       rewardID,
		Cost:           reward.Cost,
		RemainingCoins: remaining,
	}, nil
}

func (s *rewardService) GetRedemptions(ctx context.Context, userID, role string) ([]domain.Redemption, error) {
	if role == domain.RoleDemo {
		ids := s.store.RedeemedRewards()
		out := make([]domain.Redemption, 0, len(ids))
		for _, id := range ids {
			out = append(out, domain.Redemption{ID: id, RewardID: id})
		}
		return out, nil
	}

	redemptions, err := s.rewardRepository.GetUserRedemptions(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Redemption, 0, len(redemptions))
	for _, r := range redemptions {
		entry := domain.Redemption{
			ID:         r.ID.String(),
			RewardID:   r.RewardID.String(),
			Cost:       r.Cost,
			RedeemedAt: r.CreatedAt,
		}
		if r.Reward != nil {
			entry.Title = r.Reward.Title
		}
		out = append(out, entry)
	}
	return out, nil
}
