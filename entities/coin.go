package entities

import (
	"time"

	"github.com/google/uuid"
)

type CoinPackage struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	Amount      int       `json:"amount"`
	Price       float64   `json:"price"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	IsPopular   bool      `json:"is_popular"`
	IsActive    bool      `json:"is_active"`

	Timestamp
}

type CoinTransaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Amount      int       `json:"amount"`
	Type        string    `json:"type"` // Purchase, Trade, Reward, Donation, Redemption, Scan
	Reference   string    `json:"reference,omitempty"`
	Description string    `json:"description"`
	Balance     int       `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type PaymentOrder struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	CoinPackageID uuid.UUID  `json:"coin_package_id"`
	OrderID       string     `gorm:"uniqueIndex" json:"order_id"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"status"` // Pending, Settled, Failed, Expired
	InvoiceURL    string     `json:"invoice_url,omitempty"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`

	User        *User        `gorm:"foreignKey:UserID"`
	CoinPackage *CoinPackage `gorm:"foreignKey:CoinPackageID"`
	Timestamp
}
