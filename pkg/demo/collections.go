package demo

import (
	"fmt"
	"log"
	"time"

	"reloop-backend/domain"
)

// Demo-mode renditions of the marketplace operations. Everything runs under
// the store lock, so check-then-act sequences like redemption are atomic
// within this instance.

// ===== LISTINGS =====

func (s *Store) Listings() []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Listing(nil), s.listings...)
}

func (s *Store) ListingByID(id string) (domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, l := range s.listings {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Listing{}, domain.ErrListingNotFound
}

func (s *Store) AddListing(l domain.Listing) domain.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l.ID == "" {
		l.ID = s.nextID("listing")
	}
	if l.Status == "" {
		l.Status = domain.ListingStatusAvailable
	}
	l.CreatedAt = time.Now()
	s.listings = append(s.listings, l)
	return l
}

func (s *Store) UpdateListing(id, actorID string, req domain.UpdateListingRequest) (domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.listings {
		l := &s.listings[i]
		if l.ID != id {
			continue
		}
		if l.Seller.ID != actorID {
			return domain.Listing{}, domain.ErrUnauthorizedListingOwner
		}
		if req.Title != "" {
			l.Title = req.Title
		}
		if req.Description != "" {
			l.Description = req.Description
		}
		if req.Price > 0 {
			l.Price = req.Price
		}
		if req.Category != "" {
			l.Category = req.Category
		}
		if req.Condition != "" {
			l.Condition = req.Condition
		}
		if req.Status != "" {
			l.Status = req.Status
		}
		return *l, nil
	}
	return domain.Listing{}, domain.ErrListingNotFound
}

func (s *Store) DeleteListing(id, actorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.listings {
		if l.ID != id {
			continue
		}
		if l.Seller.ID != actorID {
			return domain.ErrUnauthorizedListingOwner
		}
		s.listings = append(s.listings[:i], s.listings[i+1:]...)
		return nil
	}
	return domain.ErrListingNotFound
}

// ===== TRADES =====

func (s *Store) Trades() []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Trade(nil), s.trades...)
}

// CreateTrade opens a pending trade for a listing with the demo user as the
// offering party. Coins are not debited here; the debit happens at
// acceptance.
func (s *Store) CreateTrade(listingID string, offer domain.TradeOffer, message string) (domain.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var listing *domain.Listing
	for i := range s.listings {
		if s.listings[i].ID == listingID {
			listing = &s.listings[i]
			break
		}
	}
	if listing == nil {
		return domain.Trade{}, domain.ErrListingNotFound
	}
	if listing.Status != domain.ListingStatusAvailable {
		return domain.Trade{}, domain.ErrListingNotAvailable
	}
	if listing.Seller.ID == s.profile.ID {
		return domain.Trade{}, domain.ErrTradeWithSelf
	}

	trade := domain.Trade{
		ID:           s.nextID("trade"),
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		SellerID:     listing.Seller.ID,
		SellerName:   listing.Seller.Name,
		TraderID:     s.profile.ID,
		TraderName:   s.profile.Name,
		OfferType:    offer.OfferType(),
		Message:      message,
		Status:       domain.TradeStatusPending,
		CO2Saved:     listing.EcoImpact.CO2Saved,
		CreatedAt:    time.Now(),
	}
	switch o := offer.(type) {
	case domain.CoinOffer:
		trade.OfferedCoins = o.Amount
	case domain.ItemOffer:
		trade.OfferedItem = o.Description
	}
	if len(listing.Images) > 0 {
		trade.ListingImage = listing.Images[0]
	}

	s.trades = append(s.trades, trade)
	log.Printf("[demo] trade added: %s", trade.ID)
	return trade, nil
}

// AcceptTrade moves a pending trade to accepted. For coin offers the
// transfer and the status change happen under one lock: either both apply or
// neither does.
func (s *Store) AcceptTrade(id, actorID string) (domain.Trade, error) {
	s.mu.Lock()

	trade := s.findTrade(id)
	if trade == nil {
		s.mu.Unlock()
		return domain.Trade{}, domain.ErrTradeNotFound
	}
	if trade.SellerID != actorID {
		s.mu.Unlock()
		return domain.Trade{}, domain.ErrNotTradeSeller
	}
	if trade.Status != domain.TradeStatusPending {
		s.mu.Unlock()
		return domain.Trade{}, domain.ErrTradeNotPending
	}

	touched := false
	if trade.OfferType == domain.OfferTypeCoins && trade.OfferedCoins > 0 {
		// Only the demo user's balance lives in this store; the counter
		// party is simulated.
		switch s.profile.ID {
		case trade.TraderID:
			if s.profile.Coins < trade.OfferedCoins {
				s.mu.Unlock()
				return domain.Trade{}, domain.ErrInsufficientCoins
			}
			s.profile.Coins -= trade.OfferedCoins
			touched = true
		case trade.SellerID:
			s.profile.Coins += trade.OfferedCoins
			touched = true
		}
	}

	trade.Status = domain.TradeStatusAccepted
	out := *trade
	s.mu.Unlock()

	if touched {
		s.notify(true)
	}
	return out, nil
}

// DeclineTrade is terminal and has no side effects beyond the status.
func (s *Store) DeclineTrade(id, actorID string) (domain.Trade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trade := s.findTrade(id)
	if trade == nil {
		return domain.Trade{}, domain.ErrTradeNotFound
	}
	if trade.SellerID != actorID {
		return domain.Trade{}, domain.ErrNotTradeSeller
	}
	if trade.Status != domain.TradeStatusPending {
		return domain.Trade{}, domain.ErrTradeNotPending
	}
	trade.Status = domain.TradeStatusDeclined
	return *trade, nil
}

// CompleteTrade finalizes an accepted trade, bumping the demo user's
// progress counters and marking the listing sold.
func (s *Store) CompleteTrade(id, actorID string) (domain.Trade, error) {
	s.mu.Lock()

	trade := s.findTrade(id)
	if trade == nil {
		s.mu.Unlock()
		return domain.Trade{}, domain.ErrTradeNotFound
	}
	if trade.SellerID != actorID && trade.TraderID != actorID {
		s.mu.Unlock()
		return domain.Trade{}, domain.ErrNotTradeParty
	}
	if trade.Status != domain.TradeStatusAccepted {
		s.mu.Unlock()
		return domain.Trade{}, domain.ErrTradeNotAccepted
	}

	now := time.Now()
	trade.Status = domain.TradeStatusCompleted
	trade.CompletedAt = &now
	for i := range s.listings {
		if s.listings[i].ID == trade.ListingID {
			s.listings[i].Status = domain.ListingStatusSold
			break
		}
	}
	s.profile.ItemsTraded++
	s.profile.CO2Saved += trade.CO2Saved
	out := *trade
	s.mu.Unlock()

	s.notify(true)
	return out, nil
}

func (s *Store) findTrade(id string) *domain.Trade {
	for i := range s.trades {
		if s.trades[i].ID == id {
			return &s.trades[i]
		}
	}
	return nil
}

// ===== REWARDS =====

func (s *Store) Rewards() []domain.Reward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Reward, len(s.rewards))
	for i, r := range s.rewards {
		r.Redeemed = s.redeemed[r.ID]
		out[i] = r
	}
	return out
}

func (s *Store) RedeemedRewards() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.redeemed))
	for id := range s.redeemed {
		out = append(out, id)
	}
	return out
}

// RedeemReward debits the cost and records the redemption in one step.
// A reward can be redeemed once; a second attempt fails with the balance
// untouched.
func (s *Store) RedeemReward(rewardID string) (domain.RedeemRewardResponse, error) {
	s.mu.Lock()

	var reward *domain.Reward
	for i := range s.rewards {
		if s.rewards[i].ID == rewardID {
			reward = &s.rewards[i]
			break
		}
	}
	if reward == nil {
		s.mu.Unlock()
		return domain.RedeemRewardResponse{}, domain.ErrRewardNotFound
	}
	if !reward.Available {
		s.mu.Unlock()
		return domain.RedeemRewardResponse{}, domain.ErrRewardNotAvailable
	}
	if s.redeemed[rewardID] {
		s.mu.Unlock()
		return domain.RedeemRewardResponse{}, domain.ErrRewardAlreadyRedeemed
	}
	if s.profile.Coins < reward.Cost {
		s.mu.Unlock()
		return domain.RedeemRewardResponse{}, domain.ErrInsufficientCoins
	}

	s.profile.Coins -= reward.Cost
	s.redeemed[rewardID] = true
	resp := domain.RedeemRewardResponse{
		RewardID:       rewardID,
		Cost:           reward.Cost,
		RemainingCoins: s.profile.Coins,
	}
	s.mu.Unlock()

	s.notify(true)
	return resp, nil
}

// ===== CHARITIES =====

func (s *Store) Charities() []domain.Charity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Charity(nil), s.charities...)
}

// Donate debits the donor and advances the charity's community progress by
// the bought impact units.
func (s *Store) Donate(charityID string, coins int) (domain.DonateResponse, error) {
	s.mu.Lock()

	var charity *domain.Charity
	for i := range s.charities {
		if s.charities[i].ID == charityID {
			charity = &s.charities[i]
			break
		}
	}
	if charity == nil {
		s.mu.Unlock()
		return domain.DonateResponse{}, domain.ErrCharityNotFound
	}
	if coins < charity.MinDonation {
		s.mu.Unlock()
		return domain.DonateResponse{}, domain.ErrDonationBelowMinimum
	}
	if coins%charity.MinDonation != 0 {
		s.mu.Unlock()
		return domain.DonateResponse{}, domain.ErrDonationNotMultiple
	}
	if s.profile.Coins < coins {
		s.mu.Unlock()
		return domain.DonateResponse{}, domain.ErrInsufficientCoins
	}

	units := coins / charity.MinDonation
	s.profile.Coins -= coins
	charity.Current += units
	s.donations = append(s.donations, domain.DonationFeedEntry{
		ID:          s.nextID("donation"),
		UserName:    s.profile.Name,
		CharityName: charity.Name,
		CharityLogo: charity.Logo,
		Coins:       coins,
		Units:       units,
		CreatedAt:   time.Now(),
	})
	resp := domain.DonateResponse{
		CharityID:      charityID,
		Coins:          coins,
		Units:          units,
		RemainingCoins: s.profile.Coins,
	}
	s.mu.Unlock()

	s.notify(true)
	return resp, nil
}

func (s *Store) RecentDonations() []domain.DonationFeedEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.DonationFeedEntry(nil), s.donations...)
}

// ===== NOTIFICATIONS =====

func (s *Store) Notifications() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Notification(nil), s.notifications...)
}

func (s *Store) AddNotification(n domain.Notification) domain.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.ID == "" {
		n.ID = s.nextID("notif")
	}
	n.CreatedAt = time.Now()
	s.notifications = append([]domain.Notification{n}, s.notifications...)
	return n
}

func (s *Store) MarkNotificationRead(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Read = true
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

// ===== CONVERSATIONS =====

func (s *Store) Conversations() []domain.Conversation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Conversation, len(s.conversations))
	for i, c := range s.conversations {
		out[i] = c.Conversation
	}
	return out
}

func (s *Store) ConversationMessages(convID string) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.conversations {
		if c.ID == convID {
			return append([]domain.ChatMessage(nil), c.Messages...), nil
		}
	}
	return nil, domain.ErrConversationNotFound
}

func (s *Store) SendMessage(convID, text string) (domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.conversations {
		if s.conversations[i].ID != convID {
			continue
		}
		msg := domain.ChatMessage{
			ID:             s.nextID("chat"),
			ConversationID: convID,
			SenderID:       s.profile.ID,
			Text:           text,
			IsOwn:          true,
			CreatedAt:      time.Now(),
		}
		s.conversations[i].Messages = append(s.conversations[i].Messages, msg)
		s.conversations[i].LastMessage = text
		s.conversations[i].LastMessageAt = msg.CreatedAt
		return msg, nil
	}
	return domain.ChatMessage{}, domain.ErrConversationNotFound
}

func (s *Store) MarkConversationRead(convID string) error {
	s.mu.Lock()
	found := false
	for i := range s.conversations {
		if s.conversations[i].ID == convID {
			s.conversations[i].Unread = false
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return domain.ErrConversationNotFound
	}
	s.notify(true)
	return nil
}

// ===== SCAN HISTORY =====

func (s *Store) ScanHistory() []domain.ScanResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ScanResult(nil), s.scans...)
}

// RecordScan stores the result and applies its XP and coin awards.
func (s *Store) RecordScan(result domain.ScanResult) domain.ScanResult {
	s.mu.Lock()
	if result.ID == "" {
		result.ID = s.nextID("scan")
	}
	result.CreatedAt = time.Now()
	s.scans = append(s.scans, result)
	s.profile.XP += result.XPEarned
	s.profile.Coins += result.CoinsEarned
	if level := domain.LevelForXP(s.profile.XP); level != s.profile.Level {
		s.profile.Level = level
		s.profile.LevelTitle = domain.LevelTitle(level)
	}
	s.mu.Unlock()

	s.notify(true)
	return result
}

func (s *Store) nextID(prefix string) string {
	s.seq++
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), s.seq)
}
