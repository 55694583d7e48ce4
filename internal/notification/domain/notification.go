package domain

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// Notification types emitted by the auction lifecycle
const (
	TypeOutbid           = "Outbid"
	TypeAuctionCancelled = "Auction Cancelled"
)

// Notification is a persisted event addressed to one user. Append-only: there
// is no delivery or read tracking beyond the row existing in the store.
type Notification struct {
	ID         int64
	Message    string
	Type       string
	SenderID   *int64
	ReceiverID int64
	CreatedAt  time.Time
}

// Repository persists notifications. Insert runs inside the caller's
// transaction so a notification never outlives a rolled back operation.
type Repository interface {
	Insert(ctx context.Context, tx pgx.Tx, n *Notification) (int64, error)
	ListForUser(ctx context.Context, userID int64) ([]*Notification, error)
}
