package demo

import (
	"context"
	"testing"

	"reloop-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewStore(ctx, NewMemorySnapshotStore())
}

func TestDefaultProfileLevelDerivation(t *testing.T) {
	s := newTestStore(t)

	p := s.User()
	assert.Equal(t, DemoUserID, p.ID)
	assert.Equal(t, 450, p.Coins)
	assert.Equal(t, 2800, p.XP)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, "Tree", p.LevelTitle)
	assert.Equal(t, []string{"early-adopter"}, p.Badges)
}

func TestAddXPRecomputesLevel(t *testing.T) {
	s := newTestStore(t)

	p := s.AddXP(250)
	assert.Equal(t, 3050, p.XP)
	assert.Equal(t, 4, p.Level)
	assert.Equal(t, "Grove", p.LevelTitle)

	p = s.AddXP(-5000)
	assert.Equal(t, 0, p.XP)
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, "Seedling", p.LevelTitle)
}

func TestAddBadgeIdempotent(t *testing.T) {
	s := newTestStore(t)

	badges := s.AddBadge("first-trade")
	require.Contains(t, badges, "first-trade")

	again := s.AddBadge("first-trade")
	assert.Equal(t, badges, again)
}

func TestRemoveBadgeAbsentIsNoop(t *testing.T) {
	s := newTestStore(t)

	before := s.User().Badges
	after := s.RemoveBadge("never-earned")
	assert.Equal(t, before, after)

	after = s.RemoveBadge("early-adopter")
	assert.NotContains(t, after, "early-adopter")
}

func TestSetField(t *testing.T) {
	s := newTestStore(t)

	p, err := s.SetField("coins", 777)
	require.NoError(t, err)
	assert.Equal(t, 777, p.Coins)

	// JSON-decoded numbers arrive as float64.
	p, err = s.SetField("xp", float64(1500))
	require.NoError(t, err)
	assert.Equal(t, 1500, p.XP)

	p, err = s.SetField("name", "Renamed")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", p.Name)

	_, err = s.SetField("coins", "not a number")
	assert.Error(t, err)

	_, err = s.SetField("no_such_field", 1)
	assert.Error(t, err)
}

func TestUpdateUserMergesOnlySetFields(t *testing.T) {
	s := newTestStore(t)

	name := "New Name"
	coins := 99
	p := s.UpdateUser(domain.ProfilePatch{Name: &name, Coins: &coins})
	assert.Equal(t, "New Name", p.Name)
	assert.Equal(t, 99, p.Coins)
	assert.Equal(t, 2800, p.XP)
	assert.Equal(t, "Main Campus", p.Campus)
}

func TestResetAllRestoresBalancesButKeepsBadges(t *testing.T) {
	s := newTestStore(t)

	s.AddXP(500)
	s.AddBadge("first-trade")
	_, err := s.RedeemReward("reward-2")
	require.NoError(t, err)
	levelBefore := s.User().Level

	s.ResetAll()

	p := s.User()
	assert.Equal(t, 150, p.Coins)
	assert.Equal(t, 340, p.XP)
	assert.Equal(t, levelBefore, p.Level)
	assert.Contains(t, p.Badges, "first-trade")
	assert.Contains(t, p.Badges, "early-adopter")
	assert.Empty(t, s.Trades())
	assert.Empty(t, s.Notifications())
	assert.Empty(t, s.ScanHistory())
	assert.Empty(t, s.RedeemedRewards())
}
