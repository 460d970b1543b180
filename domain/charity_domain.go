package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCharities     = "charity partners retrieved successfully"
	MessageSuccessDonate           = "donation completed successfully"
	MessageSuccessGetDonationFeed  = "recent donations retrieved successfully"
	MessageSuccessGetDonationStats = "donation statistics retrieved successfully"

	MessageFailedGetCharities     = "failed to retrieve charity partners"
	MessageFailedDonate           = "failed to complete donation"
	MessageFailedGetDonationFeed  = "failed to retrieve recent donations"
	MessageFailedGetDonationStats = "failed to retrieve donation statistics"

	ErrCharityNotFound      = errors.New("charity partner not found")
	ErrDonationBelowMinimum = errors.New("donation is below the charity minimum")
	ErrDonationNotMultiple  = errors.New("donation must be a multiple of the charity minimum")
)

type (
	Charity struct {
		ID           string `json:"id"`
		Name         string `json:"name"`
		Description  string `json:"description"`
		Logo         string `json:"logo"`
		Category     string `json:"category"`
		Impact       string `json:"impact"`
		ImpactMetric string `json:"impact_metric"`
		MinDonation  int    `json:"min_donation"`
		Goal         int    `json:"goal"`
		Current      int    `json:"current"`
		Featured     bool   `json:"featured"`
	}

	DonateRequest struct {
		CharityID string `json:"charity_id" validate:"required,uuid"`
		Coins     int    `json:"coins" validate:"required,min=1"`
	}

	DonateResponse struct {
		CharityID      string `json:"charity_id"`
		Coins          int    `json:"coins"`
		Units          int    `json:"units"`
		RemainingCoins int    `json:"remaining_coins"`
	}

	DonationFeedEntry struct {
		ID          string    `json:"id"`
		UserName    string    `json:"user_name"`
		UserAvatar  string    `json:"user_avatar,omitempty"`
		CharityName string    `json:"charity_name"`
		CharityLogo string    `json:"charity_logo"`
		Coins       int       `json:"coins"`
		Units       int       `json:"units"`
		CreatedAt   time.Time `json:"created_at"`
	}

	DonationStats struct {
		TotalDonations int `json:"total_donations"`
		ActiveDonors   int `json:"active_donors"`
		UserTotal      int `json:"user_total"`
		UserStreak     int `json:"user_streak"`
	}
)
