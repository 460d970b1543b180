package user

import (
	"context"
	"fmt"
	"time"

	"reloop-backend/domain"
	"reloop-backend/entities"
	"reloop-backend/internal/utils/mailing"
	"reloop-backend/internal/utils/storage"
	"reloop-backend/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.Profile, error)
		UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (*domain.Profile, error)
		SendVerificationEmail(ctx context.Context, email string) error
		VerifyEmail(ctx context.Context, token string) error
		ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
		ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error

		AddXP(ctx context.Context, userID string, req domain.AddXPRequest) (*domain.Profile, error)
		AddBadge(ctx context.Context, userID string, badgeID string) ([]string, error)
		RemoveBadge(ctx context.Context, userID string, badgeID string) ([]string, error)
		RecordActivity(ctx context.Context, userID string) error
		AddTradeProgress(ctx context.Context, userID string, co2 float64) error
		TransferCoins(ctx context.Context, fromID, toID string, amount int) error
		AddCoins(ctx context.Context, userID string, amount int) error
		GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
		s3             storage.AwsS3
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService, s3 storage.AwsS3) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
		s3:             s3,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.RegisterResponse, error) {
	if s.userRepository.CheckEmailExist(ctx, req.Email) {
		return nil, domain.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Campus:   req.Campus,
		Role:     domain.RoleUser,
		Level:    1,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.SendVerificationEmail(ctx, req.Email); err != nil {
		// Registration stands even when the mail could not be sent; the
		// user can request another one.
		fmt.Printf("failed to send verification email: %v\n", err)
	}

	return &domain.RegisterResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}

func (s *userService) SendVerificationEmail(ctx context.Context, email string) error {
	token, err := s.jwtService.GenerateTokenForgetPassword(
		map[string]any{"email": email},
		time.Hour*24,
	)
	if err != nil {
		return err
	}

	mailConfig := mailing.LoadMailConfig()
	link := fmt.Sprintf("%s/api/v1/users/verify?token=%s", mailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>Welcome to ReLoop! Verify your email by clicking <a href=%q>here</a>.</p>",
		link,
	)

	return mailing.SendMail(email, "Verify your ReLoop account", body)
}

func (s *userService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	return s.userRepository.VerifyEmail(ctx, email)
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrCredentialsInvalid
	}

	if !user.IsVerified {
		return nil, domain.ErrEmailNotVerified
	}

	if err := s.RecordActivity(ctx, user.ID.String()); err == nil {
		user, _ = s.userRepository.GetUserByEmail(ctx, req.Email)
	}

	token := s.jwtService.GenerateTokenUser(user.ID.String(), user.Role)
	profile, err := s.Me(ctx, user.ID.String())
	if err != nil {
		return nil, err
	}

	return &domain.LoginResponse{
		Token: token,
		User:  *profile,
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.Profile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toProfile(user), nil
}

func (s *userService) UpdateUser(ctx context.Context, req domain.UpdateUserRequest, userID string) (*domain.Profile, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.Campus != "" {
		fields["campus"] = req.Campus
	}
	if req.Avatar != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("avatar-%s", user.ID.String()),
			req.Avatar,
			"avatars",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		fields["avatar_url"] = s.s3.GetPublicLinkKey(objectKey)
	}

	if len(fields) > 0 {
		if err := s.userRepository.UpdateUserFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}

	return s.Me(ctx, userID)
}

func (s *userService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	if _, err := s.userRepository.GetUserByEmail(ctx, req.Email); err != nil {
		return err
	}

	token, err := s.jwtService.GenerateTokenForgetPassword(
		map[string]any{"email": req.Email},
		time.Minute*30,
	)
	if err != nil {
		return err
	}

	mailConfig := mailing.LoadMailConfig()
	link := fmt.Sprintf("%s/reset-password?token=%s", mailConfig.AppURL, token)
	body := fmt.Sprintf(
		"<p>Reset your ReLoop password by clicking <a href=%q>here</a>. The link expires in 30 minutes.</p>",
		link,
	)

	return mailing.SendMail(req.Email, "Reset your ReLoop password", body)
}

func (s *userService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	claims, err := s.jwtService.ValidateTokenForgetPassword(req.Token)
	if err != nil {
		return err
	}

	email, ok := claims["email"].(string)
	if !ok {
		return domain.ErrTokenInvalid
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepository.UpdatePassword(ctx, email, string(hashed))
}

// AddXP applies the XP gain and re-derives the stored level from the new
// total. Negative amounts are rejected at validation.
func (s *userService) AddXP(ctx context.Context, userID string, req domain.AddXPRequest) (*domain.Profile, error) {
	if req.Amount <= 0 {
		return nil, domain.ErrNegativeXP
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	newXP := user.XP + req.Amount
	fields := map[string]interface{}{
		"xp":    newXP,
		"level": domain.LevelForXP(newXP),
	}
	if err := s.userRepository.UpdateUserFields(ctx, userID, fields); err != nil {
		return nil, err
	}

	return s.Me(ctx, userID)
}

func (s *userService) AddBadge(ctx context.Context, userID string, badgeID string) ([]string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := s.userRepository.AddBadge(ctx, userUUID, badgeID); err != nil {
		return nil, err
	}
	return s.userRepository.GetBadges(ctx, userUUID)
}

func (s *userService) RemoveBadge(ctx context.Context, userID string, badgeID string) ([]string, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if err := s.userRepository.RemoveBadge(ctx, userUUID, badgeID); err != nil {
		return nil, err
	}
	return s.userRepository.GetBadges(ctx, userUUID)
}

// RecordActivity maintains the daily streak: consecutive days extend it, a
// gap resets it to one, a second visit on the same day changes nothing.
func (s *userService) RecordActivity(ctx context.Context, userID string) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	now := time.Now()
	streak := 1
	if user.LastActive != nil {
		switch {
		case sameDay(*user.LastActive, now):
			return nil
		case sameDay(user.LastActive.AddDate(0, 0, 1), now):
			streak = user.Streak + 1
		}
	}

	return s.userRepository.UpdateUserFields(ctx, userID, map[string]interface{}{
		"streak":      streak,
		"last_active": now,
	})
}

// AddTradeProgress bumps the trade counter and CO2 total after a completed
// trade.
func (s *userService) AddTradeProgress(ctx context.Context, userID string, co2 float64) error {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	return s.userRepository.UpdateUserFields(ctx, userID, map[string]interface{}{
		"items_traded": user.ItemsTraded + 1,
		"co2_saved":    user.CO2Saved + co2,
	})
}

func (s *userService) TransferCoins(ctx context.Context, fromID, toID string, amount int) error {
	fromUUID, err := uuid.Parse(fromID)
	if err != nil {
		return domain.ErrParseUUID
	}
	toUUID, err := uuid.Parse(toID)
	if err != nil {
		return domain.ErrParseUUID
	}

	return s.userRepository.TransferCoins(ctx, fromUUID, toUUID, amount)
}

func (s *userService) AddCoins(ctx context.Context, userID string, amount int) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return s.userRepository.AdjustCoins(ctx, userUUID, amount)
}

func (s *userService) GetLeaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	users, err := s.userRepository.GetLeaderboard(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   u.ID.String(),
			Name:     u.Name,
			Avatar:   u.AvatarURL,
			XP:       u.XP,
			Level:    domain.LevelForXP(u.XP),
			CO2Saved: u.CO2Saved,
		})
	}
	return entries, nil
}

func (s *userService) toProfile(user *entities.User) *domain.Profile {
	badges := make([]string, 0, len(user.Badges))
	for _, b := range user.Badges {
		badges = append(badges, b.BadgeID)
	}

	level := domain.LevelForXP(user.XP)
	return &domain.Profile{
		ID:          user.ID.String(),
		Name:        user.Name,
		Email:       user.Email,
		Avatar:      user.AvatarURL,
		Campus:      user.Campus,
		Coins:       user.Coins,
		XP:          user.XP,
		Level:       level,
		LevelTitle:  domain.LevelTitle(level),
		ItemsTraded: user.ItemsTraded,
		CO2Saved:    user.CO2Saved,
		Streak:      user.Streak,
		Badges:      badges,
		CreatedAt:   user.CreatedAt,
	}
}
