package postgres

import (
	"context"
	"time"

	"github.com/cristianortiz/auctionHouse/internal/notification/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NotificationRepository implements domain.Repository for PostgreSQL
type NotificationRepository struct {
	pool *pgxpool.Pool
}

// NewNotificationRepository creates a new instance of NotificationRepository
func NewNotificationRepository(pool *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Insert appends one notification row inside the caller's transaction
func (r *NotificationRepository) Insert(ctx context.Context, tx pgx.Tx, n *domain.Notification) (int64, error) {
	query := `
        INSERT INTO notifications (message, type, sender_user_id, receiver_user_id, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING notification_id
    `
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}
	var id int64
	err := tx.QueryRow(ctx, query,
		n.Message,
		n.Type,
		n.SenderID,
		n.ReceiverID,
		n.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	n.ID = id
	return id, nil
}

// ListForUser returns the notifications addressed to a user, newest first
func (r *NotificationRepository) ListForUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	query := `
        SELECT notification_id, message, type, sender_user_id, receiver_user_id, created_at
        FROM notifications
        WHERE receiver_user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		err := rows.Scan(
			&n.ID,
			&n.Message,
			&n.Type,
			&n.SenderID,
			&n.ReceiverID,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}
