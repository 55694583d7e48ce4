package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	"go.uber.org/zap"
)

// AddItemUseCase binds a new item to an auction and its seller. The auction
// status is deliberately not checked: items can be attached at any point of
// the auction lifecycle.
type AddItemUseCase struct {
	items domain.ItemRepository
}

func NewAddItemUseCase(items domain.ItemRepository) *AddItemUseCase {
	return &AddItemUseCase{items: items}
}

func (uc *AddItemUseCase) Execute(ctx context.Context, cmd AddItemCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	item := domain.NewItem(*cmd.ItemName, *cmd.MinimumPrice, *cmd.AuctionID, *cmd.SellerID)
	id, err := uc.items.Create(ctx, item)
	if err != nil {
		return 0, fmt.Errorf("add item: auction %d: %w", *cmd.AuctionID, err)
	}

	log.Info("Item added",
		zap.Int64("itemID", id),
		zap.Int64("auctionID", item.AuctionID),
		zap.Int64("sellerID", item.SellerID),
	)
	return id, nil
}
