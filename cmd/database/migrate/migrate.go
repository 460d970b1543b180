package migrate

import (
	"log"

	"reloop-backend/entities"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		log.Fatalf("error creating uuid-ossp extension: %v", err)
	}

	models := []any{
		&entities.User{},
		&entities.UserBadge{},
		&entities.Listing{},
		&entities.ListingImage{},
		&entities.Trade{},
		&entities.Reward{},
		&entities.RewardRedemption{},
		&entities.CharityPartner{},
		&entities.CharityDonation{},
		&entities.Conversation{},
		&entities.ChatMessage{},
		&entities.Notification{},
		&entities.ItemScan{},
		&entities.CoinPackage{},
		&entities.CoinTransaction{},
		&entities.PaymentOrder{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}
}
