package websocket

import (
	"time"
)

// MessageType identifies the feed messages pushed to auction watchers
type MessageType string

const (
	MessageTypeBidPlaced        MessageType = "bid_placed"
	MessageTypeAuctionClosed    MessageType = "auction_closed"
	MessageTypeAuctionCancelled MessageType = "auction_cancelled"
)

// BaseMessage is the base struct for all feed messages, Type identifies the payload
type BaseMessage struct {
	Type MessageType `json:"type"`
}

// BidPlacedMessage announces an accepted bid to the auction's watchers
type BidPlacedMessage struct {
	BaseMessage
	Payload struct {
		AuctionID int64     `json:"auction_id"`
		BuyerID   int64     `json:"buyer_id"`
		Amount    float64   `json:"amount"`
		BidTime   time.Time `json:"bid_time"`
	} `json:"payload"`
}

// AuctionClosedMessage announces the final state of a closed auction
type AuctionClosedMessage struct {
	BaseMessage
	Payload struct {
		AuctionID     int64    `json:"auction_id"`
		WinnerID      *int64   `json:"winner_user_id,omitempty"`
		WinningAmount *float64 `json:"winning_amount,omitempty"`
	} `json:"payload"`
}

// AuctionCancelledMessage announces a cancellation
type AuctionCancelledMessage struct {
	BaseMessage
	Payload struct {
		AuctionID int64 `json:"auction_id"`
	} `json:"payload"`
}
