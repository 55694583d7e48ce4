package domain

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// TxBeginner starts a database transaction, *pgxpool.Pool satisfies it
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// SearchFilter holds the optional conjunctive criteria for auction search,
// nil fields are skipped
type SearchFilter struct {
	AuctionID   *int64
	Title       *string
	Description *string
}

// IsEmpty reports whether no criterion was supplied at all
func (f SearchFilter) IsEmpty() bool {
	return f.AuctionID == nil && f.Title == nil && f.Description == nil
}

type AuctionRepository interface {
	Create(ctx context.Context, a *Auction) (int64, error)
	GetByID(ctx context.Context, id int64) (*Auction, error)
	// GetByIDForUpdate locks the auction row for the rest of the transaction,
	// serializing concurrent bids on the same auction.
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*Auction, error)
	ListOpen(ctx context.Context) ([]*Auction, error)
	Search(ctx context.Context, filter SearchFilter) ([]*Auction, error)
	MarkClosed(ctx context.Context, tx pgx.Tx, id int64, winnerID *int64, amount *float64) error
	MarkCancelled(ctx context.Context, tx pgx.Tx, id int64) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *Item) (int64, error)
}

type BidRepository interface {
	// HighestBid returns the current top bid for the auction, ties on amount
	// resolved by earliest bid_time. Returns nil when no bid exists.
	HighestBid(ctx context.Context, tx pgx.Tx, auctionID int64) (*Bid, error)
	Insert(ctx context.Context, tx pgx.Tx, bid *Bid) (int64, error)
	DistinctBidders(ctx context.Context, tx pgx.Tx, auctionID int64) ([]int64, error)
}
