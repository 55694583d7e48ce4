package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionHouse/internal/shared/logger"
	"github.com/cristianortiz/auctionHouse/internal/shared/validation"
	"github.com/cristianortiz/auctionHouse/internal/user/domain"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// RegisterCommand is the input for user registration, pointer fields so
// absent payload keys can be told apart from empty values
type RegisterCommand struct {
	Username *string
	Role     *string
	Password *string
	Email    *string
}

// Validate checks field presence before any store access
func (c RegisterCommand) Validate() error {
	if c.Username == nil || *c.Username == "" {
		return validation.Required("username")
	}
	if c.Role == nil || *c.Role == "" {
		return validation.Required("role")
	}
	if !domain.ValidRole(*c.Role) {
		return domain.ErrInvalidRole
	}
	return nil
}

// UserService exposes the user use cases to the HTTP layer
type UserService interface {
	Register(ctx context.Context, cmd RegisterCommand) (int64, error)
	List(ctx context.Context) ([]*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateCity(ctx context.Context, username string, city *string) (int64, error)
}

type userService struct {
	db    domain.TxBeginner
	users domain.Repository
}

func NewUserService(db domain.TxBeginner, users domain.Repository) UserService {
	return &userService{db: db, users: users}
}

// Register hashes the password and creates the user plus its role row in one
// transaction, so a user never exists without its buyers/sellers counterpart.
func (s *userService) Register(ctx context.Context, cmd RegisterCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	u := &domain.User{
		Username: *cmd.Username,
		Role:     domain.Role(*cmd.Role),
		Email:    cmd.Email,
	}
	if cmd.Password != nil && *cmd.Password != "" {
		hash, err := HashPassword(*cmd.Password)
		if err != nil {
			return 0, fmt.Errorf("user service: failed to hash password: %w", err)
		}
		u.PasswordHash = &hash
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("user service: failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	id, err := s.users.Create(ctx, tx, u)
	if err != nil {
		return 0, fmt.Errorf("user service: failed to create user %s: %w", u.Username, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("user service: failed to commit transaction: %w", err)
	}

	log.Info("User registered",
		zap.Int64("userID", id),
		zap.String("username", u.Username),
		zap.String("role", string(u.Role)),
	)
	return id, nil
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.users.GetByUsername(ctx, username)
}

func (s *userService) UpdateCity(ctx context.Context, username string, city *string) (int64, error) {
	if city == nil || *city == "" {
		return 0, validation.Errorf("city is required to update")
	}
	return s.users.UpdateCity(ctx, username, *city)
}
