package demo

import (
	"sync"
	"testing"
	"time"

	"reloop-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	snaps []domain.Profile
}

func (r *recorder) listen(p domain.Profile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, p)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snaps)
}

func (r *recorder) last() domain.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snaps[len(r.snaps)-1]
}

func TestSubscribeReplaysCurrentSnapshot(t *testing.T) {
	s := newTestStore(t)

	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.listen)
	defer unsubscribe()

	require.Equal(t, 1, rec.count())
	assert.Equal(t, 2800, rec.last().XP)
}

func TestSubscribersReceiveMutations(t *testing.T) {
	s := newTestStore(t)

	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.listen)
	defer unsubscribe()

	s.AddXP(100)
	require.GreaterOrEqual(t, rec.count(), 2)
	assert.Equal(t, 2900, rec.last().XP)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	s := newTestStore(t)

	rec := &recorder{}
	unsubscribe := s.Subscribe(rec.listen)
	unsubscribe()

	before := rec.count()
	s.AddXP(100)
	assert.Equal(t, before, rec.count())
}

func TestPanickingListenerDoesNotStarveOthers(t *testing.T) {
	s := newTestStore(t)

	defer s.Subscribe(func(domain.Profile) { panic("listener bug") })()
	rec := &recorder{}
	defer s.Subscribe(rec.listen)()

	require.NotPanics(t, func() { s.AddXP(50) })
	assert.GreaterOrEqual(t, rec.count(), 2)
	assert.Equal(t, 2850, rec.last().XP)
}

func TestVersionAdvancesPerMutation(t *testing.T) {
	s := newTestStore(t)

	before := s.Version()
	s.AddXP(10)
	s.AddBadge("first-trade")
	assert.Equal(t, before+2, s.Version())
}

func TestOwnWriteEchoIsSuppressed(t *testing.T) {
	s := newTestStore(t)

	rec := &recorder{}
	defer s.Subscribe(rec.listen)()

	s.AddXP(10)
	after := rec.count()

	// The snapshot write signals our own watcher; the echo must not trigger
	// a second notification round.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, rec.count())
}
