package demo

import (
	"context"
	"path/filepath"
	"testing"

	"reloop-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSnapshotStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	store := NewFileSnapshotStore(path)
	ctx := context.Background()

	snap, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, snap, "missing file should read as no snapshot")

	want := &Snapshot{
		User:      domain.Profile{ID: DemoUserID, Coins: 300, XP: 1200},
		Timestamp: 1756400000000,
	}
	require.NoError(t, store.Save(ctx, want))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want.User.Coins, got.User.Coins)
	assert.Equal(t, want.Timestamp, got.Timestamp)
}

func TestFileSnapshotStoreCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "snapshot.json")
	store := NewFileSnapshotStore(path)

	err := store.Save(context.Background(), &Snapshot{Timestamp: 1})
	require.NoError(t, err)

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
}
