package postgres

import (
	"context"
	"errors"

	"github.com/cristianortiz/auctionHouse/internal/user/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository implements domain.Repository for PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new instance of UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Create inserts the user and the matching role row inside the caller's tx
func (r *UserRepository) Create(ctx context.Context, tx pgx.Tx, u *domain.User) (int64, error) {
	query := `
        INSERT INTO users (username, password_hash, email, role, city)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING user_id
    `
	var id int64
	err := tx.QueryRow(ctx, query,
		u.Username,
		u.PasswordHash,
		u.Email,
		u.Role,
		u.City,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	roleTable := "buyers"
	if u.Role == domain.RoleSeller {
		roleTable = "sellers"
	}
	if _, err := tx.Exec(ctx, `INSERT INTO `+roleTable+` (user_id) VALUES ($1)`, id); err != nil {
		return 0, err
	}

	u.ID = id
	return id, nil
}

// List returns every registered user in store order
func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `
        SELECT user_id, username, email, role, city, created_at
        FROM users
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u := &domain.User{}
		err := rows.Scan(
			&u.ID,
			&u.Username,
			&u.Email,
			&u.Role,
			&u.City,
			&u.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetByUsername returns a single user or domain.ErrUserNotFound
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
        SELECT user_id, username, email, role, city, created_at
        FROM users
        WHERE username = $1
    `
	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.Role,
		&u.City,
		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return u, nil
}

// UpdateCity updates the city of a user and reports how many rows changed
func (r *UserRepository) UpdateCity(ctx context.Context, username, city string) (int64, error) {
	ct, err := r.pool.Exec(ctx, `UPDATE users SET city = $1 WHERE username = $2`, city, username)
	if err != nil {
		return 0, err
	}
	return ct.RowsAffected(), nil
}
