package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetCoinPackages = "coin packages retrieved successfully"
	MessageSuccessBuyCoins        = "coin purchase created successfully"
	MessageSuccessGetCoinHistory  = "coin transaction history retrieved successfully"

	MessageFailedGetCoinPackages = "failed to retrieve coin packages"
	MessageFailedBuyCoins        = "failed to purchase coins"
	MessageFailedGetCoinHistory  = "failed to retrieve coin transaction history"
	MessageFailedWebhook         = "failed to process payment notification"

	ErrInvalidCoinPackage = errors.New("invalid coin package")
	ErrPaymentFailed      = errors.New("payment processing failed")
	ErrOrderNotFound      = errors.New("payment order not found")
)

const (
	CoinTxPurchase   = "Purchase"
	CoinTxTrade      = "Trade"
	CoinTxReward     = "Reward"
	CoinTxDonation   = "Donation"
	CoinTxRedemption = "Redemption"
	CoinTxScan       = "Scan"
)

type (
	CoinPackage struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Amount      int     `json:"amount"`
		Price       float64 `json:"price"`
		Currency    string  `json:"currency"`
		Description string  `json:"description,omitempty"`
		IsPopular   bool    `json:"is_popular"`
	}

	BuyCoinsRequest struct {
		PackageID string `json:"package_id" validate:"required,uuid"`
		Email     string `json:"email" validate:"required,email"`
	}

	BuyCoinsResponse struct {
		OrderID    string `json:"order_id"`
		InvoiceURL string `json:"invoice_url"`
	}

	CoinTransaction struct {
		ID          string    `json:"id"`
		Amount      int       `json:"amount"`
		Type        string    `json:"type"`
		Reference   string    `json:"reference,omitempty"`
		Description string    `json:"description"`
		Balance     int       `json:"balance"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
