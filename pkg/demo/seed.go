package demo

import (
	"time"

	"reloop-backend/domain"
)

const (
	DemoUserID = "demo-user-123"

	// Balances restored by ResetAll.
	resetCoins = 150
	resetXP    = 340
)

func DefaultProfile() domain.Profile {
	xp := 2800
	level := domain.LevelForXP(xp)
	return domain.Profile{
		ID:          DemoUserID,
		Name:        "Demo User",
		Email:       "demo@reloop.com",
		Avatar:      "https://ui-avatars.com/api/?name=Demo+User",
		Campus:      "Main Campus",
		Coins:       450,
		XP:          xp,
		Level:       level,
		LevelTitle:  domain.LevelTitle(level),
		ItemsTraded: 12,
		CO2Saved:    25.5,
		Streak:      5,
		Badges:      []string{"early-adopter"},
	}
}

func seedListings(now time.Time) []domain.Listing {
	return []domain.Listing{
		{
			ID: "listing-1", Title: "Vintage Desk Lamp",
			Description: "Beautiful brass lamp, perfect for study desk",
			Price:       750, Category: "Home", Condition: "Good",
			Status: domain.ListingStatusAvailable, IsTopImpact: true,
			Images:    []string{"https://images.unsplash.com/photo-1507473885765-e6ed057f782c?w=400"},
			Seller:    domain.ListingSeller{ID: "user-abc", Name: "Priya"},
			EcoImpact: ecoImpact(750, 15),
			CreatedAt: now,
		},
		{
			ID: "listing-2", Title: "MacBook Pro 2019",
			Description: "Great condition laptop, 16GB RAM, 512GB SSD",
			Price:       45000, Category: "Electronics", Condition: "Like New",
			Status: domain.ListingStatusAvailable,
			Images:    []string{"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=400"},
			Seller:    domain.ListingSeller{ID: "user-xyz", Name: "Rahul"},
			EcoImpact: ecoImpact(45000, 30),
			CreatedAt: now,
		},
		{
			ID: "listing-3", Title: "Engineering Textbooks",
			Description: "Complete set of 3rd year mechanical engineering books",
			Price:       1200, Category: "Books", Condition: "Good",
			Status: domain.ListingStatusAvailable, IsTopImpact: true,
			Images:    []string{"https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=400"},
			Seller:    domain.ListingSeller{ID: DemoUserID, Name: "Demo User"},
			EcoImpact: ecoImpact(1200, 8),
			CreatedAt: now,
		},
		{
			ID: "listing-4", Title: "Acoustic Guitar",
			Description: "Yamaha F310, slight scratches but plays beautifully",
			Price:       5500, Category: "Other", Condition: "Fair",
			Status: domain.ListingStatusAvailable,
			Images:    []string{"https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=400"},
			Seller:    domain.ListingSeller{ID: "user-guitar", Name: "Ananya"},
			EcoImpact: ecoImpact(5500, 12),
			CreatedAt: now,
		},
		{
			ID: "listing-5", Title: "Study Table",
			Description: "Wooden study table with drawers, moving out sale",
			Price:       2000, Category: "Home", Condition: "Good",
			Status: domain.ListingStatusAvailable, IsTopImpact: true,
			Images:    []string{"https://images.unsplash.com/photo-1518455027359-f3f8164ba6bd?w=400"},
			Seller:    domain.ListingSeller{ID: DemoUserID, Name: "Demo User"},
			EcoImpact: ecoImpact(2000, 20),
			CreatedAt: now,
		},
	}
}

func ecoImpact(price int, co2 float64) domain.EcoImpact {
	return domain.EcoImpact{
		CO2Saved:   co2,
		WaterSaved: co2 * domain.WaterLitersPerKgCO2,
		WasteSaved: co2 * domain.WasteKgPerKgCO2,
		EcoPoints:  float64(price) * domain.EcoPointsPerCoin,
	}
}

func seedTrades(now time.Time) []domain.Trade {
	return []domain.Trade{
		{
			ID: "trade-1", ListingID: "listing-1", ListingTitle: "Vintage Desk Lamp",
			SellerID: DemoUserID, SellerName: "Demo User",
			TraderID: "user-abc", TraderName: "Emma Watson",
			OfferType: domain.OfferTypeCoins, OfferedCoins: 75,
			Status: domain.TradeStatusCompleted, CO2Saved: 2.5,
			CreatedAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "trade-2", ListingID: "listing-3", ListingTitle: "Engineering Textbooks",
			SellerID: DemoUserID, SellerName: "Demo User",
			TraderID: "user-xyz", TraderName: "John Doe",
			OfferType: domain.OfferTypeItem, OfferedItem: "Coffee Maker",
			Status: domain.TradeStatusPending,
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			ID: "trade-3", ListingID: "listing-4", ListingTitle: "Acoustic Guitar",
			SellerID: "user-guitar", SellerName: "Ananya",
			TraderID: DemoUserID, TraderName: "Demo User",
			OfferType: domain.OfferTypeCoins, OfferedCoins: 50,
			Status: domain.TradeStatusPending,
			CreatedAt: now.Add(-72 * time.Hour),
		},
	}
}

func seedRewards() []domain.Reward {
	return []domain.Reward{
		{ID: "reward-1", Title: "10% Campus Cafe", Description: "Coffee discount for eco-warriors", Icon: "☕", Cost: 100, Category: "voucher", Available: true},
		{ID: "reward-2", Title: "ReLoop Sticker Pack", Description: "Show off your sustainability", Icon: "🎨", Cost: 50, Category: "merch", Available: true},
		{ID: "reward-3", Title: "Plant a Tree", Description: "We plant a tree in your name", Icon: "🌳", Cost: 200, Category: "donation", Available: true},
		{ID: "reward-4", Title: "Premium Badge", Description: "Exclusive profile badge", Icon: "🏅", Cost: 150, Category: "merch", Available: true},
		{ID: "reward-5", Title: "Book Store 15% Off", Description: "Discount at campus bookstore", Icon: "📚", Cost: 75, Category: "voucher", Available: true},
		{ID: "reward-6", Title: "Ocean Cleanup Donation", Description: "Remove 1lb plastic from ocean", Icon: "🌊", Cost: 100, Category: "donation", Available: true},
	}
}

func seedCharities() []domain.Charity {
	return []domain.Charity{
		{ID: "charity-1", Name: "Trees for Future", Description: "Plant trees worldwide to fight climate change", Logo: "🌳", Category: "environment", Impact: "1 tree per 50 coins", ImpactMetric: "trees planted", MinDonation: 50, Goal: 500, Current: 342, Featured: true},
		{ID: "charity-2", Name: "Ocean Cleanup", Description: "Remove plastic from oceans", Logo: "🌊", Category: "environment", Impact: "1lb plastic per 25 coins", ImpactMetric: "lbs removed", MinDonation: 25, Goal: 1000, Current: 890},
		{ID: "charity-3", Name: "Local Food Bank", Description: "Feed hunger in your community", Logo: "🍎", Category: "community", Impact: "1 meal per 10 coins", ImpactMetric: "meals provided", MinDonation: 10, Goal: 2000, Current: 1560},
	}
}

func seedNotifications(now time.Time) []domain.Notification {
	return []domain.Notification{
		{ID: "notif-1", Type: "trade", Icon: "swap_horiz", Title: "Trade Completed!", Message: "Your trade with Emma was successful", ActionURL: "/trade-history", CreatedAt: now.Add(-30 * time.Minute)},
		{ID: "notif-2", Type: "achievement", Icon: "emoji_events", Title: "New Badge Earned", Message: "You earned the \"Eco Warrior\" badge!", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "notif-3", Type: "coin", Icon: "monetization_on", Title: "+50 Coins", Message: "Reward for your first listing", Read: true, CreatedAt: now.Add(-24 * time.Hour)},
		{ID: "notif-4", Type: "system", Icon: "info", Title: "Welcome to ReLoop!", Message: "Start by scanning an item to earn coins", Read: true, CreatedAt: now.Add(-48 * time.Hour)},
	}
}

func seedConversations(now time.Time) []conversation {
	return []conversation{
		{
			Conversation: domain.Conversation{
				ID: "conv-1", Type: domain.ConversationTypeMarketplace,
				PartnerID: "user-abc", PartnerName: "Priya Sharma",
				ListingID: "listing-1", ListingTitle: "Vintage Desk Lamp",
				LastMessage: "Yes it is! Would you like to meet up?",
				LastMessageAt: now.Add(-time.Hour), Unread: true,
			},
			Messages: []domain.ChatMessage{
				{ID: "chat-1", ConversationID: "conv-1", SenderID: "user-abc", Text: "Hey, is the lamp still available?", CreatedAt: now.Add(-2 * time.Hour)},
				{ID: "chat-2", ConversationID: "conv-1", SenderID: DemoUserID, Text: "Yes it is! Would you like to meet up?", IsOwn: true, CreatedAt: now.Add(-time.Hour)},
			},
		},
		{
			Conversation: domain.Conversation{
				ID: "conv-2", Type: domain.ConversationTypeMarketplace,
				PartnerID: "user-xyz", PartnerName: "Rahul Mehta",
				ListingID: "listing-2", ListingTitle: "MacBook Pro 2019",
				LastMessage: "Thanks for the trade!",
				LastMessageAt: now.Add(-24 * time.Hour),
			},
			Messages: []domain.ChatMessage{
				{ID: "chat-3", ConversationID: "conv-2", SenderID: "user-xyz", Text: "Thanks for the trade!", CreatedAt: now.Add(-24 * time.Hour)},
			},
		},
		{
			Conversation: domain.Conversation{
				ID: "conv-3", Type: domain.ConversationTypeCommunity,
				PartnerID: "user-diy-1", PartnerName: "Sneha Kapoor",
				ProjectID: "project-1", ProjectTitle: "Boho Lamp From Bottles",
				LastMessage: "Love your lamp project! How did you wire it?",
				LastMessageAt: now.Add(-2 * time.Hour), Unread: true,
			},
			Messages: []domain.ChatMessage{
				{ID: "chat-4", ConversationID: "conv-3", SenderID: "user-diy-1", Text: "Love your lamp project! How did you wire it?", CreatedAt: now.Add(-2 * time.Hour)},
			},
		},
		{
			Conversation: domain.Conversation{
				ID: "conv-4", Type: domain.ConversationTypeCommunity,
				PartnerID: "user-diy-2", PartnerName: "Vikram Agarwal",
				ProjectID: "project-3", ProjectTitle: "Pallet Coffee Table",
				LastMessage: "Want to collab on the pallet table?",
				LastMessageAt: now.Add(-48 * time.Hour),
			},
			Messages: []domain.ChatMessage{
				{ID: "chat-5", ConversationID: "conv-4", SenderID: "user-diy-2", Text: "Want to collab on the pallet table?", CreatedAt: now.Add(-48 * time.Hour)},
			},
		},
	}
}
