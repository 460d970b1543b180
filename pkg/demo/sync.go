package demo

import (
	"context"
	"log"
)

// watchLoop consumes external snapshot-change signals: reload the persisted
// profile and re-notify local subscribers without writing back, so two
// instances sharing a snapshot store never enter a write loop.
func (s *Store) watchLoop(ctx context.Context) {
	ch := s.snapshots.Watch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-ch:
			if !ok {
				return
			}
			if s.loadState(ctx) {
				log.Println("[demo] syncing from snapshot change")
				s.notify(false)
			}
		}
	}
}

// loadState replaces the in-memory profile with the persisted snapshot.
// Returns false when there was nothing new to apply; a failed load leaves the
// current profile in place.
func (s *Store) loadState(ctx context.Context) bool {
	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		log.Printf("[demo] error loading state: %v", err)
		return false
	}
	if snap == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Timestamp != 0 && snap.Timestamp == s.lastPersisted {
		// Our own write echoed back through the watch channel.
		return false
	}
	s.profile = copyProfile(snap.User)
	return true
}
