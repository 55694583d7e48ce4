package domain

import (
	"time"
)

// AuctionStatus represents the lifecycle state of an auction
type AuctionStatus string

const (
	StatusOpen      AuctionStatus = "open"
	StatusClosed    AuctionStatus = "closed"
	StatusCancelled AuctionStatus = "cancelled"
)

// ValidStatus reports whether s names a known auction state
func ValidStatus(s string) bool {
	switch AuctionStatus(s) {
	case StatusOpen, StatusClosed, StatusCancelled:
		return true
	}
	return false
}

// Auction is a timed sale accepting bids until closed or cancelled.
// Status moves one way only: open -> closed or open -> cancelled, both terminal.
type Auction struct {
	ID            int64
	Title         string
	Description   string
	EndTime       time.Time
	Status        AuctionStatus
	WinnerID      *int64
	WinningAmount *float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (a *Auction) IsOpen() bool {
	return a.Status == StatusOpen
}

// EligibleToClose validates the close transition: the auction must still be
// open and its end_time must already be in the past.
func (a *Auction) EligibleToClose(now time.Time) error {
	if !a.IsOpen() {
		return ErrAuctionNotOpen
	}
	if !now.After(a.EndTime) {
		return ErrAuctionNotYetClosable
	}
	return nil
}

// EligibleToCancel validates the cancel transition, closed and cancelled are terminal
func (a *Auction) EligibleToCancel() error {
	if !a.IsOpen() {
		return ErrAuctionNotOpen
	}
	return nil
}
