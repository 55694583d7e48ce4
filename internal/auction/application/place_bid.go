package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	notifdomain "github.com/cristianortiz/auctionHouse/internal/notification/domain"
	"github.com/cristianortiz/auctionHouse/internal/shared/logger"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// PlaceBidUseCase accepts a bid inside one transaction: the auction row is
// locked first, so two concurrent bids on the same auction can never both
// validate against the same stale maximum.
type PlaceBidUseCase struct {
	db            domain.TxBeginner
	auctions      domain.AuctionRepository
	bids          domain.BidRepository
	notifications notifdomain.Repository
}

func NewPlaceBidUseCase(db domain.TxBeginner,
	auctions domain.AuctionRepository,
	bids domain.BidRepository,
	notifications notifdomain.Repository) *PlaceBidUseCase {

	return &PlaceBidUseCase{
		db:            db,
		auctions:      auctions,
		bids:          bids,
		notifications: notifications,
	}
}

func (uc *PlaceBidUseCase) Execute(ctx context.Context, cmd PlaceBidCommand) (*domain.Bid, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	tx, err := uc.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("place bid: failed to begin transaction: %w", err)
	}
	// rollback is a no-op once the tx committed
	defer func() { _ = tx.Rollback(ctx) }()

	auction, err := uc.auctions.GetByIDForUpdate(ctx, tx, *cmd.AuctionID)
	if err != nil {
		if !errors.Is(err, domain.ErrAuctionNotFound) {
			log.Error("PlaceBid: failed to get auction",
				zap.Int64("auctionID", *cmd.AuctionID),
				zap.Error(err),
			)
		}
		return nil, fmt.Errorf("place bid: auction %d: %w", *cmd.AuctionID, err)
	}

	top, err := uc.bids.HighestBid(ctx, tx, auction.ID)
	if err != nil {
		return nil, fmt.Errorf("place bid: failed to read highest bid for auction %d: %w", auction.ID, err)
	}

	if err := domain.ValidateBidAmount(*cmd.BidAmount, top); err != nil {
		if top != nil && errors.Is(err, domain.ErrBidTooLow) {
			log.Warn("PlaceBid: bid rejected",
				zap.Int64("auctionID", auction.ID),
				zap.Int64("buyerID", *cmd.BuyerID),
				zap.Float64("amount", *cmd.BidAmount),
				zap.Float64("currentMax", top.Amount),
			)
			return nil, fmt.Errorf("place bid: current highest bid is %.2f: %w", top.Amount, err)
		}
		return nil, err
	}

	bid := domain.NewBid(auction.ID, cmd.ItemID, *cmd.BuyerID, *cmd.BidAmount, time.Now().UTC())
	if _, err := uc.bids.Insert(ctx, tx, bid); err != nil {
		return nil, fmt.Errorf("place bid: failed to save bid for auction %d: %w", auction.ID, err)
	}

	// outbid fan-out: the previous top bidder is told its bid was surpassed,
	// a buyer raising its own bid gets nothing
	if top != nil && top.BuyerID != bid.BuyerID {
		n := &notifdomain.Notification{
			Message: fmt.Sprintf("you have been outbid on auction %d: your bid of %.2f was surpassed",
				auction.ID, top.Amount),
			Type:       notifdomain.TypeOutbid,
			SenderID:   &bid.BuyerID,
			ReceiverID: top.BuyerID,
		}
		if _, err := uc.notifications.Insert(ctx, tx, n); err != nil {
			return nil, fmt.Errorf("place bid: failed to emit outbid notification: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("place bid: failed to commit transaction: %w", err)
	}

	log.Info("Bid placed",
		zap.Int64("bidID", bid.ID),
		zap.Int64("auctionID", auction.ID),
		zap.Int64("buyerID", bid.BuyerID),
		zap.Float64("amount", bid.Amount),
	)
	return bid, nil
}
