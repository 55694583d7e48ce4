package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuctionRepository implements domain.AuctionRepository for PostgreSQL
type AuctionRepository struct {
	pool *pgxpool.Pool
}

// NewAuctionRepository creates a new instance of AuctionRepository
func NewAuctionRepository(pool *pgxpool.Pool) *AuctionRepository {
	return &AuctionRepository{pool: pool}
}

const auctionColumns = `auction_id, title, description, end_time, status, winner_user_id, winning_amount, created_at, updated_at`

func scanAuction(row pgx.Row) (*domain.Auction, error) {
	a := &domain.Auction{}
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.EndTime,
		&a.Status,
		&a.WinnerID,
		&a.WinningAmount,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new auction and returns the generated id
func (r *AuctionRepository) Create(ctx context.Context, a *domain.Auction) (int64, error) {
	query := `
        INSERT INTO auctions (title, description, end_time, status)
        VALUES ($1, $2, $3, $4)
        RETURNING auction_id
    `
	var id int64
	err := r.pool.QueryRow(ctx, query,
		a.Title,
		a.Description,
		a.EndTime,
		a.Status,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	a.ID = id
	return id, nil
}

// GetByID retrieves an auction by its id
func (r *AuctionRepository) GetByID(ctx context.Context, id int64) (*domain.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE auction_id = $1`

	a, err := scanAuction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetByIDForUpdate retrieves an auction inside the given tx and locks its row
// until the tx completes
func (r *AuctionRepository) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*domain.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE auction_id = $1 FOR UPDATE`

	a, err := scanAuction(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAuctionNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListOpen retrieves every auction with status open, store order
func (r *AuctionRepository) ListOpen(ctx context.Context) ([]*domain.Auction, error) {
	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE status = $1`

	rows, err := r.pool.Query(ctx, query, domain.StatusOpen)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAuctions(rows)
}

// Search builds a conjunctive filter from the supplied criteria: exact match
// on id, ILIKE substring match on title and description
func (r *AuctionRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]*domain.Auction, error) {
	var conditions []string
	var args []any

	if filter.AuctionID != nil {
		args = append(args, *filter.AuctionID)
		conditions = append(conditions, fmt.Sprintf("auction_id = $%d", len(args)))
	}
	if filter.Title != nil {
		args = append(args, "%"+*filter.Title+"%")
		conditions = append(conditions, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if filter.Description != nil {
		args = append(args, "%"+*filter.Description+"%")
		conditions = append(conditions, fmt.Sprintf("description ILIKE $%d", len(args)))
	}

	query := `SELECT ` + auctionColumns + ` FROM auctions WHERE ` + strings.Join(conditions, " AND ")

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAuctions(rows)
}

// MarkClosed sets the terminal closed status and records winner and amount,
// both nil when the auction received no bids
func (r *AuctionRepository) MarkClosed(ctx context.Context, tx pgx.Tx, id int64, winnerID *int64, amount *float64) error {
	query := `
        UPDATE auctions
        SET status = $2, winner_user_id = $3, winning_amount = $4, updated_at = NOW()
        WHERE auction_id = $1
    `
	_, err := tx.Exec(ctx, query, id, domain.StatusClosed, winnerID, amount)
	return err
}

// MarkCancelled sets the terminal cancelled status
func (r *AuctionRepository) MarkCancelled(ctx context.Context, tx pgx.Tx, id int64) error {
	query := `
        UPDATE auctions
        SET status = $2, updated_at = NOW()
        WHERE auction_id = $1
    `
	_, err := tx.Exec(ctx, query, id, domain.StatusCancelled)
	return err
}

func collectAuctions(rows pgx.Rows) ([]*domain.Auction, error) {
	var auctions []*domain.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, err
		}
		auctions = append(auctions, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return auctions, nil
}
