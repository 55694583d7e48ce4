package application

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	"go.uber.org/zap"
)

// CloseAuctionUseCase closes an auction past its end time and records the
// winner. Status update and winner computation happen in one transaction, the
// auction can never end up closed without its winner recorded.
type CloseAuctionUseCase struct {
	db       domain.TxBeginner
	auctions domain.AuctionRepository
	bids     domain.BidRepository
}

func NewCloseAuctionUseCase(db domain.TxBeginner,
	auctions domain.AuctionRepository,
	bids domain.BidRepository) *CloseAuctionUseCase {

	return &CloseAuctionUseCase{
		db:       db,
		auctions: auctions,
		bids:     bids,
	}
}

func (uc *CloseAuctionUseCase) Execute(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	tx, err := uc.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("close auction: failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	auction, err := uc.auctions.GetByIDForUpdate(ctx, tx, auctionID)
	if err != nil {
		return nil, fmt.Errorf("close auction: auction %d: %w", auctionID, err)
	}

	if err := auction.EligibleToClose(time.Now().UTC()); err != nil {
		return nil, fmt.Errorf("close auction: auction %d: %w", auctionID, err)
	}

	// winner is the highest bid, ties resolved by earliest bid time
	top, err := uc.bids.HighestBid(ctx, tx, auction.ID)
	if err != nil {
		return nil, fmt.Errorf("close auction: failed to read highest bid for auction %d: %w", auctionID, err)
	}

	var winnerID *int64
	var winningAmount *float64
	if top != nil {
		winnerID = &top.BuyerID
		winningAmount = &top.Amount
	}

	if err := uc.auctions.MarkClosed(ctx, tx, auction.ID, winnerID, winningAmount); err != nil {
		return nil, fmt.Errorf("close auction: failed to close auction %d: %w", auctionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("close auction: failed to commit transaction: %w", err)
	}

	auction.Status = domain.StatusClosed
	auction.WinnerID = winnerID
	auction.WinningAmount = winningAmount

	fields := []zap.Field{zap.Int64("auctionID", auction.ID)}
	if winnerID != nil {
		fields = append(fields,
			zap.Int64("winnerID", *winnerID),
			zap.Float64("winningAmount", *winningAmount))
	}
	log.Info("Auction closed", fields...)

	return auction, nil
}
