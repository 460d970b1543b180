package demo

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"reloop-backend/domain"
)

// Store is the demo-mode source of truth: a constructed, mutex-guarded
// substitute for the real backend session. State mutations persist the
// profile through the injected SnapshotStore and fan out to subscribers.
type Store struct {
	mu sync.RWMutex

	profile  domain.Profile
	defaults domain.Profile
	version  uint64

	listeners  map[int]Listener
	nextListen int

	snapshots     SnapshotStore
	lastPersisted int64

	listings      []domain.Listing
	trades        []domain.Trade
	notifications []domain.Notification
	rewards       []domain.Reward
	redeemed      map[string]bool
	charities     []domain.Charity
	donations     []domain.DonationFeedEntry
	conversations []conversation
	scans         []domain.ScanResult

	seq int
}

type conversation struct {
	domain.Conversation
	Messages []domain.ChatMessage
}

// NewStore builds a demo store seeded with the default dataset, restores the
// persisted profile if one exists, and starts watching for external snapshot
// changes until ctx is cancelled.
func NewStore(ctx context.Context, snapshots SnapshotStore) *Store {
	now := time.Now()
	s := &Store{
		profile:       DefaultProfile(),
		defaults:      DefaultProfile(),
		listeners:     make(map[int]Listener),
		snapshots:     snapshots,
		listings:      seedListings(now),
		trades:        seedTrades(now),
		notifications: seedNotifications(now),
		rewards:       seedRewards(),
		redeemed:      make(map[string]bool),
		charities:     seedCharities(),
		conversations: seedConversations(now),
	}

	s.loadState(ctx)
	go s.watchLoop(ctx)
	return s
}

// User returns a snapshot copy of the demo profile.
func (s *Store) User() domain.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProfile(s.profile)
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// UpdateUser merges the non-nil patch fields into the profile.
func (s *Store) UpdateUser(patch domain.ProfilePatch) domain.Profile {
	s.mu.Lock()
	if patch.Name != nil {
		s.profile.Name = *patch.Name
	}
	if patch.Avatar != nil {
		s.profile.Avatar = *patch.Avatar
	}
	if patch.Campus != nil {
		s.profile.Campus = *patch.Campus
	}
	if patch.Coins != nil {
		s.profile.Coins = *patch.Coins
	}
	if patch.XP != nil {
		s.profile.XP = *patch.XP
	}
	if patch.ItemsTraded != nil {
		s.profile.ItemsTraded = *patch.ItemsTraded
	}
	if patch.CO2Saved != nil {
		s.profile.CO2Saved = *patch.CO2Saved
	}
	if patch.Streak != nil {
		s.profile.Streak = *patch.Streak
	}
	out := copyProfile(s.profile)
	s.mu.Unlock()

	s.notify(true)
	return out
}

// SetField assigns a single profile field by name.
func (s *Store) SetField(name string, value any) (domain.Profile, error) {
	s.mu.Lock()
	var err error
	switch name {
	case "name":
		err = assignString(&s.profile.Name, value)
	case "avatar":
		err = assignString(&s.profile.Avatar, value)
	case "campus":
		err = assignString(&s.profile.Campus, value)
	case "coins":
		err = assignInt(&s.profile.Coins, value)
	case "xp":
		err = assignInt(&s.profile.XP, value)
	case "items_traded":
		err = assignInt(&s.profile.ItemsTraded, value)
	case "streak":
		err = assignInt(&s.profile.Streak, value)
	case "co2_saved":
		err = assignFloat(&s.profile.CO2Saved, value)
	default:
		err = fmt.Errorf("unknown profile field %q", name)
	}
	if err != nil {
		s.mu.Unlock()
		return domain.Profile{}, err
	}
	out := copyProfile(s.profile)
	s.mu.Unlock()

	s.notify(true)
	return out, nil
}

// AddXP increments XP and recomputes level and level title.
func (s *Store) AddXP(amount int) domain.Profile {
	s.mu.Lock()
	s.profile.XP += amount
	if s.profile.XP < 0 {
		s.profile.XP = 0
	}
	if level := domain.LevelForXP(s.profile.XP); level != s.profile.Level {
		s.profile.Level = level
		s.profile.LevelTitle = domain.LevelTitle(level)
	}
	out := copyProfile(s.profile)
	s.mu.Unlock()

	s.notify(true)
	return out
}

// AddBadge is idempotent: a badge already held is left as-is.
func (s *Store) AddBadge(id string) []string {
	s.mu.Lock()
	found := false
	for _, b := range s.profile.Badges {
		if b == id {
			found = true
			break
		}
	}
	if !found {
		s.profile.Badges = append(s.profile.Badges, id)
	}
	out := append([]string(nil), s.profile.Badges...)
	s.mu.Unlock()

	s.notify(true)
	return out
}

// RemoveBadge is a no-op when the badge is absent.
func (s *Store) RemoveBadge(id string) []string {
	s.mu.Lock()
	kept := s.profile.Badges[:0]
	for _, b := range s.profile.Badges {
		if b != id {
			kept = append(kept, b)
		}
	}
	s.profile.Badges = kept
	out := append([]string(nil), s.profile.Badges...)
	s.mu.Unlock()

	s.notify(true)
	return out
}

// ResetAll restores the default balances and clears the transient
// collections. Badges and level are deliberately left untouched.
func (s *Store) ResetAll() {
	s.mu.Lock()
	s.profile.Coins = resetCoins
	s.profile.XP = resetXP
	s.notifications = nil
	s.trades = nil
	s.scans = nil
	s.redeemed = make(map[string]bool)
	s.mu.Unlock()

	log.Println("[demo] all data reset")
	s.notify(true)
}

func copyProfile(p domain.Profile) domain.Profile {
	out := p
	out.Badges = append([]string(nil), p.Badges...)
	return out
}

func assignString(dst *string, value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	*dst = v
	return nil
}

func assignInt(dst *int, value any) error {
	switch v := value.(type) {
	case int:
		*dst = v
	case float64: // JSON numbers decode as float64
		*dst = int(v)
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
	return nil
}

func assignFloat(dst *float64, value any) error {
	switch v := value.(type) {
	case float64:
		*dst = v
	case int:
		*dst = float64(v)
	default:
		return fmt.Errorf("expected number, got %T", value)
	}
	return nil
}
