package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateTrade   = "trade request created successfully"
	MessageSuccessAcceptTrade   = "trade accepted successfully"
	MessageSuccessDeclineTrade  = "trade declined successfully"
	MessageSuccessCompleteTrade = "trade completed successfully"
	MessageSuccessGetTrades     = "trades retrieved successfully"

	MessageFailedCreateTrade   = "failed to create trade request"
	MessageFailedAcceptTrade   = "failed to accept trade"
	MessageFailedDeclineTrade  = "failed to decline trade"
	MessageFailedCompleteTrade = "failed to complete trade"
	MessageFailedGetTrades     = "failed to retrieve trades"

	ErrTradeNotFound      = errors.New("trade not found")
	ErrTradeNotPending    = errors.New("trade is not pending")
	ErrTradeNotAccepted   = errors.New("trade is not accepted")
	ErrNotTradeSeller     = errors.New("only the seller may act on this trade")
	ErrNotTradeParty      = errors.New("user is not a party to this trade")
	ErrTradeWithSelf      = errors.New("cannot trade on your own listing")
	ErrInvalidTradeOffer  = errors.New("offer must be either coins or an item, not both")
	ErrInvalidCoinAmount  = errors.New("offered coin amount must be positive")
)

const (
	TradeStatusPending   = "pending"
	TradeStatusAccepted  = "accepted"
	TradeStatusCompleted = "completed"
	TradeStatusDeclined  = "declined"

	OfferTypeCoins = "Coins"
	OfferTypeItem  = "Item"
)

// TradeOffer is the offer payload of a trade request: exactly one of a coin
// amount or an item description.
type TradeOffer interface {
	OfferType() string
}

type CoinOffer struct {
	Amount int
}

func (CoinOffer) OfferType() string { return OfferTypeCoins }

type ItemOffer struct {
	Description string
}

func (ItemOffer) OfferType() string { return OfferTypeItem }

// NewTradeOffer builds the offer variant from the raw request fields,
// rejecting both-set and neither-set.
func NewTradeOffer(coins int, item string) (TradeOffer, error) {
	switch {
	case coins < 0:
		return nil, ErrInvalidCoinAmount
	case coins > 0 && item != "":
		return nil, ErrInvalidTradeOffer
	case coins > 0:
		return CoinOffer{Amount: coins}, nil
	case item != "":
		return ItemOffer{Description: item}, nil
	default:
		return nil, ErrInvalidTradeOffer
	}
}

type (
	CreateTradeRequest struct {
		ListingID    string `json:"listing_id" validate:"required,uuid"`
		OfferedCoins int    `json:"offered_coins" validate:"omitempty,min=1"`
		OfferedItem  string `json:"offered_item" validate:"omitempty"`
		Message      string `json:"message" validate:"omitempty"`
	}

	Trade struct {
		ID           string     `json:"id"`
		ListingID    string     `json:"listing_id"`
		ListingTitle string     `json:"listing_title"`
		ListingImage string     `json:"listing_image,omitempty"`
		SellerID     string     `json:"seller_id"`
		SellerName   string     `json:"seller_name"`
		SellerAvatar string     `json:"seller_avatar,omitempty"`
		TraderID     string     `json:"trader_id"`
		TraderName   string     `json:"trader_name"`
		TraderAvatar string     `json:"trader_avatar,omitempty"`
		OfferType    string     `json:"offer_type"`
		OfferedCoins int        `json:"offered_coins,omitempty"`
		OfferedItem  string     `json:"offered_item,omitempty"`
		Message      string     `json:"message,omitempty"`
		Status       string     `json:"status"`
		CO2Saved     float64    `json:"co2_saved"`
		CreatedAt    time.Time  `json:"created_at"`
		CompletedAt  *time.Time `json:"completed_at,omitempty"`
	}
)
