package session

import (
	"context"
	"testing"

	"reloop-backend/domain"
	"reloop-backend/pkg/demo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDemoSession(t *testing.T) SessionService {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	store := demo.NewStore(ctx, demo.NewMemorySnapshotStore())
	return NewSessionService(store, nil)
}

func TestCurrentServesDemoProfile(t *testing.T) {
	s := newDemoSession(t)

	p, err := s.Current(context.Background(), demo.DemoUserID, domain.RoleDemo)
	require.NoError(t, err)
	assert.Equal(t, demo.DemoUserID, p.ID)
	assert.Equal(t, 450, p.Coins)
}

func TestAddXPRejectsNonPositiveAmount(t *testing.T) {
	s := newDemoSession(t)

	_, err := s.AddXP(context.Background(), demo.DemoUserID, domain.RoleDemo, domain.AddXPRequest{Amount: 0})
	assert.ErrorIs(t, err, domain.ErrNegativeXP)

	p, err := s.AddXP(context.Background(), demo.DemoUserID, domain.RoleDemo, domain.AddXPRequest{Amount: 100})
	require.NoError(t, err)
	assert.Equal(t, 2900, p.XP)
}

func TestSubscribeOnlyForDemoSessions(t *testing.T) {
	s := newDemoSession(t)

	got := 0
	unsubscribe, ok := s.Subscribe(domain.RoleDemo, func(domain.Profile) { got++ })
	require.True(t, ok)
	defer unsubscribe()
	assert.Equal(t, 1, got, "subscription replays the current snapshot")

	_, ok = s.Subscribe(domain.RoleUser, func(domain.Profile) {})
	assert.False(t, ok)
}

func TestLogoutResetsDemoState(t *testing.T) {
	s := newDemoSession(t)

	_, err := s.AddXP(context.Background(), demo.DemoUserID, domain.RoleDemo, domain.AddXPRequest{Amount: 500})
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background(), demo.DemoUserID, domain.RoleDemo))

	p, err := s.Current(context.Background(), demo.DemoUserID, domain.RoleDemo)
	require.NoError(t, err)
	assert.Equal(t, 150, p.Coins)
	assert.Equal(t, 340, p.XP)
}

func TestUpdateProfilePatchesDemoUser(t *testing.T) {
	s := newDemoSession(t)

	name := "Changed"
	p, err := s.UpdateProfile(context.Background(), demo.DemoUserID, domain.RoleDemo, domain.ProfilePatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Changed", p.Name)
}
