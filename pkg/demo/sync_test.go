package demo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwoStoresSharingSnapshotConverge(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shared := NewMemorySnapshotStore()
	a := NewStore(ctx, shared)
	b := NewStore(ctx, shared)

	a.AddXP(200)

	require.Eventually(t, func() bool {
		return b.User().XP == 3000
	}, 2*time.Second, 10*time.Millisecond, "second instance never caught up")
}

func TestRemoteChangeRenotifiesLocalSubscribers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shared := NewMemorySnapshotStore()
	a := NewStore(ctx, shared)
	b := NewStore(ctx, shared)

	rec := &recorder{}
	defer b.Subscribe(rec.listen)()

	a.SetField("coins", 42)

	require.Eventually(t, func() bool {
		return rec.count() >= 2 && rec.last().Coins == 42
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLoadStateRestoresPersistedProfile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots := NewMemorySnapshotStore()
	first := NewStore(ctx, snapshots)
	first.SetField("coins", 9000)

	// A fresh instance against the same backend starts from the persisted
	// profile, not the seed.
	second := NewStore(ctx, snapshots)
	assert.Equal(t, 9000, second.User().Coins)
}

func TestCorruptSnapshotKeepsSeedProfile(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshots := NewMemorySnapshotStore()
	snapshots.data = []byte("{not json")

	s := NewStore(ctx, snapshots)
	assert.Equal(t, 450, s.User().Coins)
}
