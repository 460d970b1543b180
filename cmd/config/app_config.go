package config

import (
	"context"
	"os"
	"time"

	"reloop-backend/internal/api/handlers"
	"reloop-backend/internal/api/routes"
	"reloop-backend/internal/middleware"
	"reloop-backend/internal/utils"
	"reloop-backend/internal/utils/storage"
	"reloop-backend/pkg/charity"
	"reloop-backend/pkg/jwt"
	"reloop-backend/pkg/listing"
	"reloop-backend/pkg/message"
	"reloop-backend/pkg/notification"
	"reloop-backend/pkg/payment"
	"reloop-backend/pkg/reward"
	"reloop-backend/pkg/scan"
	"reloop-backend/pkg/session"
	"reloop-backend/pkg/trade"
	"reloop-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(ctx context.Context, db *gorm.DB) (*fiber.App, error) {
	validatorInstance := utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	demoStore := NewDemoStore(ctx)

	// Repository
	userRepository := user.NewUserRepository(db)
	listingRepository := listing.NewListingRepository(db)
	tradeRepository := trade.NewTradeRepository(db)
	rewardRepository := reward.NewRewardRepository(db)
	charityRepository := charity.NewCharityRepository(db)
	messageRepository := message.NewMessageRepository(db)
	scanRepository := scan.NewScanRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	sessionService := session.NewSessionService(demoStore, userService)
	listingService := listing.NewListingService(listingRepository, s3)
	notificationService := notification.NewNotificationService(notificationRepository, demoStore)
	tradeService := trade.NewTradeService(tradeRepository, listingRepository, userService, notificationService, demoStore)
	rewardService := reward.NewRewardService(rewardRepository, demoStore)
	charityService := charity.NewCharityService(charityRepository, userService, demoStore)
	messageService := message.NewMessageService(messageRepository, demoStore)
	scanService := scan.NewScanService(scanRepository, scan.NewClassifierClient(), userService, demoStore, s3)
	paymentService := payment.NewPaymentService(paymentRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validatorInstance)
	sessionHandler := handlers.NewSessionHandler(sessionService, validatorInstance)
	listingHandler := handlers.NewListingHandler(listingService, validatorInstance)
	tradeHandler := handlers.NewTradeHandler(tradeService, validatorInstance)
	rewardHandler := handlers.NewRewardHandler(rewardService, validatorInstance)
	charityHandler := handlers.NewCharityHandler(charityService, validatorInstance)
	messageHandler := handlers.NewMessageHandler(messageService, validatorInstance)
	scanHandler := handlers.NewScanHandler(scanService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validatorInstance)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		SessionHandler:      sessionHandler,
		ListingHandler:      listingHandler,
		TradeHandler:        tradeHandler,
		RewardHandler:       rewardHandler,
		CharityHandler:      charityHandler,
		MessageHandler:      messageHandler,
		ScanHandler:         scanHandler,
		NotificationHandler: notificationHandler,
		PaymentHandler:      paymentHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
