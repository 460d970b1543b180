package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTradeOfferCoins(t *testing.T) {
	offer, err := NewTradeOffer(120, "")
	require.NoError(t, err)
	coin, ok := offer.(CoinOffer)
	require.True(t, ok)
	assert.Equal(t, 120, coin.Amount)
	assert.Equal(t, OfferTypeCoins, offer.OfferType())
}

func TestNewTradeOfferItem(t *testing.T) {
	offer, err := NewTradeOffer(0, "Coffee Maker")
	require.NoError(t, err)
	item, ok := offer.(ItemOffer)
	require.True(t, ok)
	assert.Equal(t, "Coffee Maker", item.Description)
	assert.Equal(t, OfferTypeItem, offer.OfferType())
}

func TestNewTradeOfferRejectsBoth(t *testing.T) {
	_, err := NewTradeOffer(50, "Coffee Maker")
	assert.ErrorIs(t, err, ErrInvalidTradeOffer)
}

func TestNewTradeOfferRejectsNeither(t *testing.T) {
	_, err := NewTradeOffer(0, "")
	assert.ErrorIs(t, err, ErrInvalidTradeOffer)
}

func TestNewTradeOfferRejectsNegativeCoins(t *testing.T) {
	_, err := NewTradeOffer(-10, "")
	assert.ErrorIs(t, err, ErrInvalidCoinAmount)

	// A negative amount is invalid even when an item is also present.
	_, err = NewTradeOffer(-5, "bike")
	assert.ErrorIs(t, err, ErrInvalidCoinAmount)
}
