package domain

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// Role determines whether a buyers or sellers row accompanies the user
type Role string

const (
	RoleBuyer  Role = "Buyer"
	RoleSeller Role = "Seller"
)

// ValidRole reports whether s names a known role
func ValidRole(s string) bool {
	return Role(s) == RoleBuyer || Role(s) == RoleSeller
}

// User is a registered participant. PasswordHash holds a bcrypt hash, never
// the plain password, and is never serialized back to clients.
type User struct {
	ID           int64
	Username     string
	PasswordHash *string
	Email        *string
	Role         Role
	City         *string
	CreatedAt    time.Time
}

var (
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("role must be Buyer or Seller")
)

// TxBeginner starts a database transaction, *pgxpool.Pool satisfies it
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type Repository interface {
	// Create inserts the user row and its role row (buyers or sellers)
	// inside the given transaction, returning the generated user id.
	Create(ctx context.Context, tx pgx.Tx, u *User) (int64, error)
	List(ctx context.Context) ([]*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// UpdateCity returns the number of affected rows.
	UpdateCity(ctx context.Context, username, city string) (int64, error)
}
