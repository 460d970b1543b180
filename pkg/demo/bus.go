package demo

import (
	"context"
	"log"
	"time"

	"reloop-backend/domain"
)

// Listener receives the profile snapshot after every store mutation.
type Listener func(domain.Profile)

// Subscribe registers a listener and immediately replays the current
// snapshot, so a late subscriber never waits for the next mutation. The
// returned func removes the listener.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	id := s.nextListen
	s.nextListen++
	s.listeners[id] = l
	snap := copyProfile(s.profile)
	s.mu.Unlock()

	safeNotify(l, snap)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// notify bumps the version, optionally persists the profile, and fans the new
// snapshot out to every listener. Fan-out is synchronous; a panicking
// listener is isolated so the rest still receive the update.
func (s *Store) notify(persist bool) {
	s.mu.Lock()
	s.version++
	snap := copyProfile(s.profile)
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	if persist {
		s.persist(snap)
	}
	for _, l := range listeners {
		safeNotify(l, snap)
	}
}

func safeNotify(l Listener, snap domain.Profile) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[demo] listener panicked: %v", r)
		}
	}()
	l(snap)
}

// persist writes the snapshot through the port. Failures are logged, never
// propagated: the in-memory state stays authoritative for this instance.
func (s *Store) persist(profile domain.Profile) {
	snap := &Snapshot{User: profile, Timestamp: time.Now().UnixMilli()}

	s.mu.Lock()
	s.lastPersisted = snap.Timestamp
	s.mu.Unlock()

	if err := s.snapshots.Save(context.Background(), snap); err != nil {
		log.Printf("[demo] error saving state: %v", err)
	}
}
