package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	"go.uber.org/zap"
)

// CreateAuctionUseCase inserts a new auction and returns its generated id
type CreateAuctionUseCase struct {
	auctions domain.AuctionRepository
}

func NewCreateAuctionUseCase(auctions domain.AuctionRepository) *CreateAuctionUseCase {
	return &CreateAuctionUseCase{auctions: auctions}
}

func (uc *CreateAuctionUseCase) Execute(ctx context.Context, cmd CreateAuctionCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	endTime, err := cmd.ParseEndTime()
	if err != nil {
		return 0, err
	}

	auction := &domain.Auction{
		Title:       *cmd.Title,
		Description: *cmd.Description,
		EndTime:     endTime,
		Status:      domain.AuctionStatus(*cmd.Status),
	}

	id, err := uc.auctions.Create(ctx, auction)
	if err != nil {
		return 0, fmt.Errorf("create auction: %w", err)
	}

	log.Info("Auction created",
		zap.Int64("auctionID", id),
		zap.String("title", auction.Title),
	)
	return id, nil
}
