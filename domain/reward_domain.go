package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRewards     = "rewards retrieved successfully"
	MessageSuccessRedeemReward   = "reward redeemed successfully"
	MessageSuccessGetRedemptions = "redeemed rewards retrieved successfully"

	MessageFailedGetRewards     = "failed to retrieve rewards"
	MessageFailedRedeemReward   = "failed to redeem reward"
	MessageFailedGetRedemptions = "failed to retrieve redeemed rewards"

	ErrRewardNotFound        = errors.New("reward not found")
	ErrRewardNotAvailable    = errors.New("reward is not available")
	ErrRewardAlreadyRedeemed = errors.New("reward already redeemed")
)

type (
	Reward struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		Cost        int    `json:"cost"`
		Category    string `json:"category"`
		PartnerLogo string `json:"partner_logo,omitempty"`
		Available   bool   `json:"available"`
		Redeemed    bool   `json:"redeemed"`
	}

	RedeemRewardRequest struct {
		RewardID string `json:"reward_id" validate:"required,uuid"`
	}

	RedeemRewardResponse struct {
		RewardID         string `json:"reward_id"`
		Cost             int    `json:"cost"`
		RemainingCoins   int    `json:"remaining_coins"`
	}

	Redemption struct {
		ID         string    `json:"id"`
		RewardID   string    `json:"reward_id"`
		Title      string    `json:"title"`
		Cost       int       `json:"cost"`
		RedeemedAt time.Time `json:"redeemed_at"`
	}
)
