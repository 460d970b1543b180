package session

import (
	"context"

	"reloop-backend/domain"
	"reloop-backend/pkg/demo"
	"reloop-backend/pkg/user"
)

type (
	// SessionService presents one profile surface for both identity
	// backends: demo sessions are served from the in-memory store, real
	// sessions from the database. Callers never branch on the mode
	// themselves; the role resolved by the auth middleware decides.
	SessionService interface {
		Current(ctx context.Context, userID, role string) (*domain.Profile, error)
		UpdateProfile(ctx context.Context, userID, role string, patch domain.ProfilePatch) (*domain.Profile, error)
		AddXP(ctx context.Context, userID, role string, req domain.AddXPRequest) (*domain.Profile, error)
		AddBadge(ctx context.Context, userID, role string, badgeID string) ([]string, error)
		RemoveBadge(ctx context.Context, userID, role string, badgeID string) ([]string, error)
		Subscribe(role string, l demo.Listener) (func(), bool)
		Logout(ctx context.Context, userID, role string) error
	}

	sessionService struct {
		store       *demo.Store
		userService user.UserService
	}
)

func NewSessionService(store *demo.Store, userService user.UserService) SessionService {
	return &sessionService{
		store:       store,
		userService: userService,
	}
}

func (s *sessionService) Current(ctx context.Context, userID, role string) (*domain.Profile, error) {
	if role == domain.RoleDemo {
		p := s.store.User()
		return &p, nil
	}
	return s.userService.Me(ctx, userID)
}

func (s *sessionService) UpdateProfile(ctx context.Context, userID, role string, patch domain.ProfilePatch) (*domain.Profile, error) {
	if role == domain.RoleDemo {
		p := s.store.UpdateUser(patch)
		return &p, nil
	}

	req := domain.UpdateUserRequest{}
	if patch.Name != nil {
		req.Name = *patch.Name
	}
	if patch.Campus != nil {
		req.Campus = *patch.Campus
	}
	return s.userService.UpdateUser(ctx, req, userID)
}

func (s *sessionService) AddXP(ctx context.Context, userID, role string, req domain.AddXPRequest) (*domain.Profile, error) {
	if role == domain.RoleDemo {
		if req.Amount <= 0 {
			return nil, domain.ErrNegativeXP
		}
		p := s.store.AddXP(req.Amount)
		return &p, nil
	}
	return s.userService.AddXP(ctx, userID, req)
}

func (s *sessionService) AddBadge(ctx context.Context, userID, role string, badgeID string) ([]string, error) {
	if role == domain.RoleDemo {
		return s.store.AddBadge(badgeID), nil
	}
	return s.userService.AddBadge(ctx, userID, badgeID)
}

func (s *sessionService) RemoveBadge(ctx context.Context, userID, role string, badgeID string) ([]string, error) {
	if role == domain.RoleDemo {
		return s.store.RemoveBadge(badgeID), nil
	}
	return s.userService.RemoveBadge(ctx, userID, badgeID)
}

// Subscribe attaches a listener to the demo change feed. Real sessions have
// no live feed; the second return reports whether a subscription was made.
func (s *sessionService) Subscribe(role string, l demo.Listener) (func(), bool) {
	if role != domain.RoleDemo {
		return func() {}, false
	}
	return s.store.Subscribe(l), true
}

// Logout restores the demo dataset so the next demo visitor starts fresh.
// Token-based sessions end client-side; there is nothing to clear here.
func (s *sessionService) Logout(ctx context.Context, userID, role string) error {
	if role == domain.RoleDemo {
		s.store.ResetAll()
	}
	return nil
}
