package demo

import (
	"context"

	"reloop-backend/domain"
)

// Snapshot is the persisted demo state: the profile plus the epoch-millis
// write time. The wire shape matches the browser client's localStorage value.
type Snapshot struct {
	User      domain.Profile `json:"user"`
	Timestamp int64          `json:"timestamp"`
}

// SnapshotStore is the persistence port of the demo store. Watch delivers a
// signal whenever another writer replaces the snapshot; the receiving store
// reloads and re-notifies its subscribers without writing back.
type SnapshotStore interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
	Watch(ctx context.Context) <-chan struct{}
}
