package main

import (
	"context"

	auctionapp "github.com/cristianortiz/auctionHouse/internal/auction/application"
	auctionhttp "github.com/cristianortiz/auctionHouse/internal/auction/infra/http"
	auctionpg "github.com/cristianortiz/auctionHouse/internal/auction/infra/repository/postgres"
	auctionws "github.com/cristianortiz/auctionHouse/internal/auction/infra/websocket"
	notifhttp "github.com/cristianortiz/auctionHouse/internal/notification/infra/http"
	notifpg "github.com/cristianortiz/auctionHouse/internal/notification/infra/repository/postgres"
	"github.com/cristianortiz/auctionHouse/internal/shared/config"
	"github.com/cristianortiz/auctionHouse/internal/shared/db"
	"github.com/cristianortiz/auctionHouse/internal/shared/db/migrations"
	"github.com/cristianortiz/auctionHouse/internal/shared/httpserver"
	"github.com/cristianortiz/auctionHouse/internal/shared/logger"
	"github.com/cristianortiz/auctionHouse/internal/shared/websocket"
	userapp "github.com/cristianortiz/auctionHouse/internal/user/application"
	userhttp "github.com/cristianortiz/auctionHouse/internal/user/infra/http"
	userpg "github.com/cristianortiz/auctionHouse/internal/user/infra/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting AuctionHouse server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config load failed", zap.Error(err))
	}

	log.Info("Running database migrations...")
	if err := migrations.RunMigrations(cfg); err != nil {
		log.Fatal("Database migration failed", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg)
	if err != nil {
		log.Fatal("Database connection failed", zap.Error(err))
	}
	defer pool.Close()

	// repositories
	auctionRepo := auctionpg.NewAuctionRepository(pool)
	bidRepo := auctionpg.NewBidRepository(pool)
	itemRepo := auctionpg.NewItemRepository(pool)
	userRepo := userpg.NewUserRepository(pool)
	notificationRepo := notifpg.NewNotificationRepository(pool)

	// use cases and services
	auctionService := auctionapp.NewAuctionService(
		auctionapp.NewCreateAuctionUseCase(auctionRepo),
		auctionapp.NewListOpenAuctionsUseCase(auctionRepo),
		auctionapp.NewSearchAuctionsUseCase(auctionRepo),
		auctionapp.NewAddItemUseCase(itemRepo),
		auctionapp.NewPlaceBidUseCase(pool, auctionRepo, bidRepo, notificationRepo),
		auctionapp.NewCloseAuctionUseCase(pool, auctionRepo, bidRepo),
		auctionapp.NewCancelAuctionUseCase(pool, auctionRepo, bidRepo, notificationRepo),
	)
	userService := userapp.NewUserService(pool, userRepo)

	// live auction feed
	hub := websocket.NewHub()
	go hub.Run(ctx)
	feed := auctionws.NewFeed(ctx, hub)

	// HTTP surface
	server := httpserver.NewServer()
	app := server.App()

	userhttp.NewUserHandler(userService).RegisterRoutes(app)
	auctionhttp.NewAuctionHandler(auctionService, feed).RegisterRoutes(app)
	notifhttp.NewNotificationHandler(notificationRepo).RegisterRoutes(app)

	app.Use("/ws/auctions/:auction_id", auctionws.UpgradeRequired)
	app.Get("/ws/auctions/:auction_id", feed.Handler())

	if err := server.Start(cfg.Server.Addr); err != nil {
		log.Fatal("HTTP server failed", zap.Error(err))
	}
}
