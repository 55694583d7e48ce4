package migrations

import (
	"errors"

	"github.com/cristianortiz/auctionHouse/internal/shared/config"
	"github.com/cristianortiz/auctionHouse/internal/shared/logger"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// RunMigrations applies every pending migration from the sql directory
func RunMigrations(cfg config.Config) error {
	log.Info("RunMigrations",
		zap.String("database", cfg.DB.Name))
	m, err := migrate.New(
		"file://internal/shared/db/migrations/sql",
		cfg.PostgresDSN(),
	)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
