package demo

import (
	"testing"

	"reloop-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coinOffer(t *testing.T, amount int) domain.TradeOffer {
	t.Helper()
	offer, err := domain.NewTradeOffer(amount, "")
	require.NoError(t, err)
	return offer
}

func TestCreateTradeDoesNotDebit(t *testing.T) {
	s := newTestStore(t)

	trade, err := s.CreateTrade("listing-1", coinOffer(t, 100), "interested!")
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStatusPending, trade.Status)
	assert.Equal(t, 100, trade.OfferedCoins)
	assert.Equal(t, DemoUserID, trade.TraderID)
	assert.Equal(t, "user-abc", trade.SellerID)

	// Coins move at acceptance, not at the offer.
	assert.Equal(t, 450, s.User().Coins)
}

func TestCreateTradeRejectsOwnListing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateTrade("listing-3", coinOffer(t, 50), "")
	assert.ErrorIs(t, err, domain.ErrTradeWithSelf)
}

func TestCreateTradeRejectsUnavailableListing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateListing("listing-1", "user-abc", domain.UpdateListingRequest{Status: domain.ListingStatusSold})
	require.NoError(t, err)

	_, err = s.CreateTrade("listing-1", coinOffer(t, 50), "")
	assert.ErrorIs(t, err, domain.ErrListingNotAvailable)
}

func TestAcceptTradeDebitsOfferingParty(t *testing.T) {
	s := newTestStore(t)

	trade, err := s.CreateTrade("listing-1", coinOffer(t, 100), "")
	require.NoError(t, err)

	accepted, err := s.AcceptTrade(trade.ID, "user-abc")
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStatusAccepted, accepted.Status)
	assert.Equal(t, 350, s.User().Coins)
}

func TestAcceptTradeInsufficientCoinsLeavesTradePending(t *testing.T) {
	s := newTestStore(t)

	trade, err := s.CreateTrade("listing-1", coinOffer(t, 10000), "")
	require.NoError(t, err)

	_, err = s.AcceptTrade(trade.ID, "user-abc")
	require.ErrorIs(t, err, domain.ErrInsufficientCoins)

	// Neither side of the transfer applied.
	assert.Equal(t, 450, s.User().Coins)
	for _, tr := range s.Trades() {
		if tr.ID == trade.ID {
			assert.Equal(t, domain.TradeStatusPending, tr.Status)
		}
	}
}

func TestAcceptTradeCreditsSellingParty(t *testing.T) {
	s := newTestStore(t)

	// trade-3 in the dataset has the demo user offering 50 coins for the
	// guitar; here we accept the incoming item offer on trade-2 first to
	// check no coins move for item trades.
	accepted, err := s.AcceptTrade("trade-2", DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStatusAccepted, accepted.Status)
	assert.Equal(t, 450, s.User().Coins)
}

func TestAcceptTradeOnlySeller(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AcceptTrade("trade-2", "user-xyz")
	assert.ErrorIs(t, err, domain.ErrNotTradeSeller)

	_, err = s.AcceptTrade("trade-404", DemoUserID)
	assert.ErrorIs(t, err, domain.ErrTradeNotFound)
}

func TestDeclineTradeIsTerminal(t *testing.T) {
	s := newTestStore(t)

	declined, err := s.DeclineTrade("trade-2", DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStatusDeclined, declined.Status)

	_, err = s.AcceptTrade("trade-2", DemoUserID)
	assert.ErrorIs(t, err, domain.ErrTradeNotPending)
}

func TestCompleteTradeUpdatesProgressAndListing(t *testing.T) {
	s := newTestStore(t)

	trade, err := s.CreateTrade("listing-1", coinOffer(t, 100), "")
	require.NoError(t, err)
	_, err = s.AcceptTrade(trade.ID, "user-abc")
	require.NoError(t, err)

	before := s.User()
	completed, err := s.CompleteTrade(trade.ID, DemoUserID)
	require.NoError(t, err)
	assert.Equal(t, domain.TradeStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)

	after := s.User()
	assert.Equal(t, before.ItemsTraded+1, after.ItemsTraded)
	assert.InDelta(t, before.CO2Saved+15, after.CO2Saved, 0.001)

	listing, err := s.ListingByID("listing-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ListingStatusSold, listing.Status)
}

func TestCompleteTradeRequiresAcceptedStatus(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CompleteTrade("trade-2", DemoUserID)
	assert.ErrorIs(t, err, domain.ErrTradeNotAccepted)

	_, err = s.CompleteTrade("trade-2", "someone-else")
	assert.ErrorIs(t, err, domain.ErrNotTradeParty)
}

func TestRedeemRewardIsSingleUse(t *testing.T) {
	s := newTestStore(t)

	resp, err := s.RedeemReward("reward-2")
	require.NoError(t, err)
	assert.Equal(t, 50, resp.Cost)
	assert.Equal(t, 400, resp.RemainingCoins)

	_, err = s.RedeemReward("reward-2")
	require.ErrorIs(t, err, domain.ErrRewardAlreadyRedeemed)
	assert.Equal(t, 400, s.User().Coins)

	for _, r := range s.Rewards() {
		if r.ID == "reward-2" {
			assert.True(t, r.Redeemed)
		}
	}
}

func TestRedeemRewardInsufficientCoins(t *testing.T) {
	s := newTestStore(t)

	_, err := s.SetField("coins", 10)
	require.NoError(t, err)

	_, err = s.RedeemReward("reward-1")
	require.ErrorIs(t, err, domain.ErrInsufficientCoins)
	assert.Equal(t, 10, s.User().Coins)
	assert.Empty(t, s.RedeemedRewards())
}

func TestRedeemRewardUnknown(t *testing.T) {
	s := newTestStore(t)

	_, err := s.RedeemReward("reward-404")
	assert.ErrorIs(t, err, domain.ErrRewardNotFound)
}

func TestDonateValidatesAmount(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Donate("charity-1", 30)
	assert.ErrorIs(t, err, domain.ErrDonationBelowMinimum)

	_, err = s.Donate("charity-1", 75)
	assert.ErrorIs(t, err, domain.ErrDonationNotMultiple)

	_, err = s.Donate("charity-1", 100000)
	assert.ErrorIs(t, err, domain.ErrInsufficientCoins)

	_, err = s.Donate("charity-404", 50)
	assert.ErrorIs(t, err, domain.ErrCharityNotFound)
}

func TestDonateAdvancesCommunityProgress(t *testing.T) {
	s := newTestStore(t)

	resp, err := s.Donate("charity-1", 100)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Units)
	assert.Equal(t, 350, resp.RemainingCoins)

	for _, c := range s.Charities() {
		if c.ID == "charity-1" {
			assert.Equal(t, 344, c.Current)
		}
	}

	feed := s.RecentDonations()
	require.NotEmpty(t, feed)
	assert.Equal(t, "Trees for Future", feed[len(feed)-1].CharityName)
	assert.Equal(t, 2, feed[len(feed)-1].Units)
}

func TestUpdateListingOwnerOnly(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UpdateListing("listing-1", DemoUserID, domain.UpdateListingRequest{Title: "nope"})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedListingOwner)

	updated, err := s.UpdateListing("listing-3", DemoUserID, domain.UpdateListingRequest{Price: 1500})
	require.NoError(t, err)
	assert.Equal(t, 1500, updated.Price)
}

func TestDeleteListingOwnerOnly(t *testing.T) {
	s := newTestStore(t)

	err := s.DeleteListing("listing-1", DemoUserID)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedListingOwner)

	require.NoError(t, s.DeleteListing("listing-3", DemoUserID))
	_, err = s.ListingByID("listing-3")
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestNotifications(t *testing.T) {
	s := newTestStore(t)

	added := s.AddNotification(domain.Notification{Type: "trade", Title: "New Offer"})
	require.NotEmpty(t, added.ID)

	// Newest first.
	assert.Equal(t, added.ID, s.Notifications()[0].ID)

	require.NoError(t, s.MarkNotificationRead("notif-1"))
	assert.ErrorIs(t, s.MarkNotificationRead("notif-404"), domain.ErrNotificationNotFound)
}

func TestSendMessageAppendsAndBumpsConversation(t *testing.T) {
	s := newTestStore(t)

	msg, err := s.SendMessage("conv-1", "How about tomorrow at the library?")
	require.NoError(t, err)
	assert.True(t, msg.IsOwn)
	assert.Equal(t, DemoUserID, msg.SenderID)

	msgs, err := s.ConversationMessages("conv-1")
	require.NoError(t, err)
	assert.Equal(t, msg.ID, msgs[len(msgs)-1].ID)

	for _, c := range s.Conversations() {
		if c.ID == "conv-1" {
			assert.Equal(t, "How about tomorrow at the library?", c.LastMessage)
		}
	}

	_, err = s.SendMessage("conv-404", "hello?")
	assert.ErrorIs(t, err, domain.ErrConversationNotFound)
}

func TestMarkConversationRead(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.MarkConversationRead("conv-1"))
	for _, c := range s.Conversations() {
		if c.ID == "conv-1" {
			assert.False(t, c.Unread)
		}
	}
	assert.ErrorIs(t, s.MarkConversationRead("conv-404"), domain.ErrConversationNotFound)
}

func TestRecordScanAwardsXPAndCoins(t *testing.T) {
	s := newTestStore(t)

	result := s.RecordScan(domain.ScanResult{
		Classification: domain.ClassificationSafe,
		Item:           domain.ScannedItem{ObjectName: "Water Bottle", Category: "Plastic"},
		XPEarned:       domain.ScanXPReward,
		CoinsEarned:    25,
	})
	require.NotEmpty(t, result.ID)

	p := s.User()
	assert.Equal(t, 2815, p.XP)
	assert.Equal(t, 475, p.Coins)
	require.Len(t, s.ScanHistory(), 1)
}
