package postgres

import (
	"context"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemRepository implements domain.ItemRepository for PostgreSQL
type ItemRepository struct {
	pool *pgxpool.Pool
}

// NewItemRepository creates a new instance of ItemRepository
func NewItemRepository(pool *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{pool: pool}
}

// Create inserts a new item bound to its auction and seller
func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) (int64, error) {
	query := `
        INSERT INTO items (name, minimum_price, auction_id, seller_user_id)
        VALUES ($1, $2, $3, $4)
        RETURNING item_id
    `
	var id int64
	err := r.pool.QueryRow(ctx, query,
		item.Name,
		item.MinimumPrice,
		item.AuctionID,
		item.SellerID,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	item.ID = id
	return id, nil
}
