package demo

import (
	"context"
	"encoding/json"
	"sync"
)

// MemorySnapshotStore keeps the snapshot in process memory. It is the test
// double for the port and also backs cross-instance convergence tests: two
// demo stores sharing one MemorySnapshotStore behave like two browser tabs
// sharing one localStorage key.
type MemorySnapshotStore struct {
	mu       sync.Mutex
	data     []byte
	watchers []chan struct{}
}

func NewMemorySnapshotStore() *MemorySnapshotStore {
	return &MemorySnapshotStore{}
}

func (s *MemorySnapshotStore) Load(_ context.Context) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data == nil {
		return nil, nil
	}
	var snap Snapshot
	if err := json.Unmarshal(s.data, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *MemorySnapshotStore) Save(_ context.Context, snap *Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.data = raw
	watchers := make([]chan struct{}, len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.Unlock()

	for _, ch := range watchers {
		select {
		case ch <- struct{}{}:
		default: // watcher is behind, it will reload on its next signal
		}
	}
	return nil
}

func (s *MemorySnapshotStore) Watch(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)

	s.mu.Lock()
	s.watchers = append(s.watchers, ch)
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		s.mu.Lock()
		for i, w := range s.watchers {
			if w == ch {
				s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
				break
			}
		}
		s.mu.Unlock()
	}()

	return ch
}
