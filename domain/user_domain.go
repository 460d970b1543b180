package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessRegister       = "user registered successfully"
	MessageSuccessLogin          = "login successful"
	MessageSuccessGetMe          = "user profile retrieved successfully"
	MessageSuccessUpdateUser     = "user profile updated successfully"
	MessageSuccessVerify         = "email verified successfully"
	MessageSuccessSendVerify     = "verification email sent successfully"
	MessageSuccessForgotPassword = "password reset email sent successfully"
	MessageSuccessResetPassword  = "password reset successfully"
	MessageSuccessAddXP          = "xp added successfully"
	MessageSuccessAddBadge       = "badge added successfully"
	MessageSuccessRemoveBadge    = "badge removed successfully"
	MessageSuccessGetLeaderboard = "leaderboard retrieved successfully"
	MessageSuccessGetBadges      = "badges retrieved successfully"

	MessageFailedRegister       = "failed to register user"
	MessageFailedLogin          = "failed to login"
	MessageFailedGetMe          = "failed to retrieve user profile"
	MessageFailedUpdateUser     = "failed to update user profile"
	MessageFailedVerify         = "failed to verify email"
	MessageFailedSendVerify     = "failed to send verification email"
	MessageFailedForgotPassword = "failed to send password reset email"
	MessageFailedResetPassword  = "failed to reset password"
	MessageFailedAddXP          = "failed to add xp"
	MessageFailedAddBadge       = "failed to add badge"
	MessageFailedRemoveBadge    = "failed to remove badge"
	MessageFailedGetLeaderboard = "failed to retrieve leaderboard"

	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrUserNotFound         = errors.New("user not found")
	ErrCredentialsInvalid   = errors.New("invalid email or password")
	ErrEmailNotVerified     = errors.New("email not verified")
	ErrNegativeXP           = errors.New("xp amount must be positive")
	ErrInsufficientCoins    = errors.New("insufficient coins")
	ErrAccountNotFound      = errors.New("one or both accounts not found")
)

// XPPerLevel and LevelTitles drive the level derivation: one level per
// 1000 XP, title clamped to the last entry.
const XPPerLevel = 1000

var LevelTitles = []string{
	"Seedling", "Sapling", "Tree", "Grove", "Forest", "Rainforest", "Ecosystem",
}

func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

func LevelTitle(level int) string {
	if level < 1 {
		level = 1
	}
	if level > len(LevelTitles) {
		level = len(LevelTitles)
	}
	return LevelTitles[level-1]
}

type (
	// Profile is the uniform user shape presented by the session facade,
	// regardless of whether it is backed by the database or the demo store.
	Profile struct {
		ID          string    `json:"id"`
		Name        string    `json:"name"`
		Email       string    `json:"email"`
		Avatar      string    `json:"avatar,omitempty"`
		Campus      string    `json:"campus,omitempty"`
		Coins       int       `json:"coins"`
		XP          int       `json:"xp"`
		Level       int       `json:"level"`
		LevelTitle  string    `json:"level_title"`
		ItemsTraded int       `json:"items_traded"`
		CO2Saved    float64   `json:"co2_saved"`
		Streak      int       `json:"streak"`
		Badges      []string  `json:"badges"`
		CreatedAt   time.Time `json:"created_at,omitempty"`
	}

	// ProfilePatch is a partial profile update: nil fields are left untouched.
	ProfilePatch struct {
		Name        *string  `json:"name,omitempty"`
		Avatar      *string  `json:"avatar,omitempty"`
		Campus      *string  `json:"campus,omitempty"`
		Coins       *int     `json:"coins,omitempty"`
		XP          *int     `json:"xp,omitempty"`
		ItemsTraded *int     `json:"items_traded,omitempty"`
		CO2Saved    *float64 `json:"co2_saved,omitempty"`
		Streak      *int     `json:"streak,omitempty"`
	}

	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Campus   string `json:"campus" validate:"omitempty"`
	}

	RegisterResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string  `json:"token"`
		User  Profile `json:"user"`
	}

	UpdateUserRequest struct {
		Name   string                `json:"name" validate:"omitempty"`
		Campus string                `json:"campus" validate:"omitempty"`
		Avatar *multipart.FileHeader `json:"avatar" form:"avatar"`
	}

	SendVerifyEmailRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ForgotPasswordRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	ResetPasswordRequest struct {
		Token    string `json:"token" validate:"required"`
		Password string `json:"password" validate:"required,min=8"`
	}

	AddXPRequest struct {
		Amount int    `json:"amount" validate:"required,min=1"`
		Reason string `json:"reason" validate:"omitempty"`
	}

	BadgeRequest struct {
		BadgeID string `json:"badge_id" validate:"required"`
	}

	Badge struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Icon        string `json:"icon"`
		Description string `json:"description"`
	}

	LeaderboardEntry struct {
		Rank     int     `json:"rank"`
		UserID   string  `json:"user_id"`
		Name     string  `json:"name"`
		Avatar   string  `json:"avatar,omitempty"`
		XP       int     `json:"xp"`
		Level    int     `json:"level"`
		CO2Saved float64 `json:"co2_saved"`
	}
)

// AllBadges is the fixed badge catalog shown in the profile and admin pages.
var AllBadges = []Badge{
	{ID: "early-adopter", Name: "Early Adopter", Icon: "🌟", Description: "Joined during beta"},
	{ID: "eco-warrior", Name: "Eco Warrior", Icon: "🌍", Description: "10+ items traded"},
	{ID: "scanner-pro", Name: "Scanner Pro", Icon: "📸", Description: "50+ items scanned"},
	{ID: "streak-master", Name: "Streak Master", Icon: "🔥", Description: "7-day streak"},
	{ID: "trader-elite", Name: "Trader Elite", Icon: "💎", Description: "25+ trades completed"},
	{ID: "upcycler", Name: "Upcycler", Icon: "♻️", Description: "Completed upcycle project"},
	{ID: "carbon-hero", Name: "Carbon Hero", Icon: "🌲", Description: "Saved 100kg CO₂"},
	{ID: "campus-legend", Name: "Campus Legend", Icon: "🏆", Description: "Top 10 on leaderboard"},
	{ID: "generous-soul", Name: "Generous Soul", Icon: "❤️", Description: "Donated to charity"},
	{ID: "first-trade", Name: "First Trade", Icon: "🤝", Description: "Completed first trade"},
}
