package domain

import (
	"time"
)

// Bid represents a buyer's monetary offer against an auction, append-only
type Bid struct {
	ID        int64
	Amount    float64
	BidTime   time.Time
	ItemID    *int64
	AuctionID int64
	BuyerID   int64
}

// NewBid creates a new Bid with a server-assigned timestamp
func NewBid(auctionID int64, itemID *int64, buyerID int64, amount float64, at time.Time) *Bid {
	return &Bid{
		Amount:    amount,
		BidTime:   at,
		ItemID:    itemID,
		AuctionID: auctionID,
		BuyerID:   buyerID,
	}
}

// ValidateBidAmount enforces the strictly-increasing invariant: a new bid must
// exceed the current highest bid on the auction. current is nil when no bid
// exists yet, in which case any positive amount is accepted.
func ValidateBidAmount(amount float64, current *Bid) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if current != nil && amount <= current.Amount {
		return ErrBidTooLow
	}
	return nil
}
