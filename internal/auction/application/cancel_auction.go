package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	notifdomain "github.com/cristianortiz/auctionHouse/internal/notification/domain"
	"go.uber.org/zap"
)

// CancelAuctionUseCase cancels an open auction and notifies every distinct
// buyer who placed a bid on it, all inside one transaction
type CancelAuctionUseCase struct {
	db            domain.TxBeginner
	auctions      domain.AuctionRepository
	bids          domain.BidRepository
	notifications notifdomain.Repository
}

func NewCancelAuctionUseCase(db domain.TxBeginner,
	auctions domain.AuctionRepository,
	bids domain.BidRepository,
	notifications notifdomain.Repository) *CancelAuctionUseCase {

	return &CancelAuctionUseCase{
		db:            db,
		auctions:      auctions,
		bids:          bids,
		notifications: notifications,
	}
}

func (uc *CancelAuctionUseCase) Execute(ctx context.Context, auctionID int64) (int, error) {
	tx, err := uc.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("cancel auction: failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	auction, err := uc.auctions.GetByIDForUpdate(ctx, tx, auctionID)
	if err != nil {
		return 0, fmt.Errorf("cancel auction: auction %d: %w", auctionID, err)
	}

	if err := auction.EligibleToCancel(); err != nil {
		return 0, fmt.Errorf("cancel auction: auction %d: %w", auctionID, err)
	}

	bidders, err := uc.bids.DistinctBidders(ctx, tx, auction.ID)
	if err != nil {
		return 0, fmt.Errorf("cancel auction: failed to list bidders for auction %d: %w", auctionID, err)
	}

	for _, buyerID := range bidders {
		n := &notifdomain.Notification{
			Message:    fmt.Sprintf("auction %d has been cancelled", auction.ID),
			Type:       notifdomain.TypeAuctionCancelled,
			ReceiverID: buyerID,
		}
		if _, err := uc.notifications.Insert(ctx, tx, n); err != nil {
			return 0, fmt.Errorf("cancel auction: failed to notify buyer %d: %w", buyerID, err)
		}
	}

	if err := uc.auctions.MarkCancelled(ctx, tx, auction.ID); err != nil {
		return 0, fmt.Errorf("cancel auction: failed to cancel auction %d: %w", auctionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("cancel auction: failed to commit transaction: %w", err)
	}

	log.Info("Auction cancelled",
		zap.Int64("auctionID", auction.ID),
		zap.Int("biddersNotified", len(bidders)),
	)
	return len(bidders), nil
}
