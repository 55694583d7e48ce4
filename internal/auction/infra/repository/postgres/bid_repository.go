package postgres

import (
	"context"
	"errors"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BidRepository implements domain.BidRepository for PostgreSQL
type BidRepository struct {
	pool *pgxpool.Pool
}

// NewBidRepository creates a new instance of BidRepository
func NewBidRepository(pool *pgxpool.Pool) *BidRepository {
	return &BidRepository{pool: pool}
}

// HighestBid returns the top bid for an auction inside the caller's tx,
// ties on amount resolved by earliest bid_time. Returns nil when the auction
// has no bids yet.
func (r *BidRepository) HighestBid(ctx context.Context, tx pgx.Tx, auctionID int64) (*domain.Bid, error) {
	query := `
        SELECT bid_id, amount, bid_time, item_id, auction_id, buyer_user_id
        FROM bids
        WHERE auction_id = $1
        ORDER BY amount DESC, bid_time ASC, bid_id ASC
        LIMIT 1
    `
	bid := &domain.Bid{}
	err := tx.QueryRow(ctx, query, auctionID).Scan(
		&bid.ID,
		&bid.Amount,
		&bid.BidTime,
		&bid.ItemID,
		&bid.AuctionID,
		&bid.BuyerID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return bid, nil
}

// Insert appends a new bid inside the caller's tx and returns the generated id
func (r *BidRepository) Insert(ctx context.Context, tx pgx.Tx, bid *domain.Bid) (int64, error) {
	query := `
        INSERT INTO bids (amount, bid_time, item_id, auction_id, buyer_user_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING bid_id
    `
	var id int64
	err := tx.QueryRow(ctx, query,
		bid.Amount,
		bid.BidTime,
		bid.ItemID,
		bid.AuctionID,
		bid.BuyerID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	bid.ID = id
	return id, nil
}

// DistinctBidders returns every buyer who placed at least one bid on the auction
func (r *BidRepository) DistinctBidders(ctx context.Context, tx pgx.Tx, auctionID int64) ([]int64, error) {
	query := `
        SELECT DISTINCT buyer_user_id
        FROM bids
        WHERE auction_id = $1
        ORDER BY buyer_user_id
    `
	rows, err := tx.Query(ctx, query, auctionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bidders []int64
	for rows.Next() {
		var buyerID int64
		if err := rows.Scan(&buyerID); err != nil {
			return nil, err
		}
		bidders = append(bidders, buyerID)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bidders, nil
}
