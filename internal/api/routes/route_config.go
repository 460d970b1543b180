package routes

import (
	"reloop-backend/internal/api/handlers"
	"reloop-backend/internal/middleware"
	"reloop-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	SessionHandler      handlers.SessionHandler
	ListingHandler      handlers.ListingHandler
	TradeHandler        handlers.TradeHandler
	RewardHandler       handlers.RewardHandler
	CharityHandler      handlers.CharityHandler
	MessageHandler      handlers.MessageHandler
	ScanHandler         handlers.ScanHandler
	NotificationHandler handlers.NotificationHandler
	PaymentHandler      handlers.PaymentHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Session()
	c.Listings()
	c.Trades()
	c.Rewards()
	c.Charities()
	c.Messages()
	c.Scans()
	c.Notifications()
	c.Payments()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Post("/forget", c.UserHandler.ForgotPassword)
		user.Post("/reset", c.UserHandler.ResetPassword)
		user.Get("/leaderboard", c.UserHandler.GetLeaderboard)
	}
}

func (c *Config) Session() {
	session := c.App.Group("/api/v1/session", c.Middleware.AuthMiddleware(c.JWTService))
	{
		session.Get("/me", c.SessionHandler.Me)
		session.Patch("/me", c.SessionHandler.UpdateProfile)
		session.Post("/xp", c.SessionHandler.AddXP)
		session.Get("/badges", c.SessionHandler.GetBadgeCatalog)
		session.Post("/badges", c.SessionHandler.AddBadge)
		session.Delete("/badges/:badge_id", c.SessionHandler.RemoveBadge)
		session.Post("/logout", c.SessionHandler.Logout)
	}
}

func (c *Config) Listings() {
	listings := c.App.Group("/api/v1/listings", c.Middleware.AuthMiddleware(c.JWTService))
	{
		listings.Get("", c.ListingHandler.GetListings)
		listings.Post("", c.ListingHandler.CreateListing)
		listings.Get("/:id", c.ListingHandler.GetListingDetails)
		listings.Patch("/:id", c.ListingHandler.UpdateListing)
		listings.Delete("/:id", c.ListingHandler.DeleteListing)
	}
}

func (c *Config) Trades() {
	trades := c.App.Group("/api/v1/trades", c.Middleware.AuthMiddleware(c.JWTService))
	{
		trades.Get("", c.TradeHandler.GetTrades)
		trades.Post("", c.TradeHandler.CreateTrade)
		trades.Post("/:id/accept", c.TradeHandler.AcceptTrade)
		trades.Post("/:id/decline", c.TradeHandler.DeclineTrade)
		trades.Post("/:id/complete", c.TradeHandler.CompleteTrade)
	}
}

func (c *Config) Rewards() {
	rewards := c.App.Group("/api/v1/rewards", c.Middleware.AuthMiddleware(c.JWTService))
	{
		rewards.Get("", c.RewardHandler.GetRewards)
		rewards.Post("/redeem", c.RewardHandler.RedeemReward)
		rewards.Get("/redemptions", c.RewardHandler.GetRedemptions)
	}
}

func (c *Config) Charities() {
	charities := c.App.Group("/api/v1/charities", c.Middleware.AuthMiddleware(c.JWTService))
	{
		charities.Get("", c.CharityHandler.GetCharities)
		charities.Post("/donate", c.CharityHandler.Donate)
		charities.Get("/donations", c.CharityHandler.GetRecentDonations)
		charities.Get("/stats", c.CharityHandler.GetDonationStats)
	}
}

func (c *Config) Messages() {
	messages := c.App.Group("/api/v1/conversations", c.Middleware.AuthMiddleware(c.JWTService))
	{
		messages.Get("", c.MessageHandler.GetConversations)
		messages.Post("", c.MessageHandler.StartConversation)
		messages.Get("/:id/messages", c.MessageHandler.GetMessages)
		messages.Post("/:id/messages", c.MessageHandler.SendMessage)
		messages.Post("/:id/read", c.MessageHandler.MarkAsRead)
	}
}

func (c *Config) Scans() {
	scans := c.App.Group("/api/v1/scans", c.Middleware.AuthMiddleware(c.JWTService))
	{
		scans.Post("", c.ScanHandler.ScanItem)
		scans.Get("/history", c.ScanHandler.GetScanHistory)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	{
		notifications.Get("", c.NotificationHandler.GetNotifications)
		notifications.Post("/:id/read", c.NotificationHandler.MarkAsRead)
	}
}

func (c *Config) Payments() {
	coins := c.App.Group("/api/v1/coins", c.Middleware.AuthMiddleware(c.JWTService))
	{
		coins.Get("/packages", c.PaymentHandler.GetCoinPackages)
		coins.Post("/buy", c.PaymentHandler.BuyCoins)
		coins.Get("/history", c.PaymentHandler.GetTransactionHistory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.PaymentWebhook)
}
