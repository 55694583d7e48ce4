package application

import (
	"context"
	"fmt"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
)

// ListOpenAuctionsUseCase returns every auction still accepting bids
type ListOpenAuctionsUseCase struct {
	auctions domain.AuctionRepository
}

func NewListOpenAuctionsUseCase(auctions domain.AuctionRepository) *ListOpenAuctionsUseCase {
	return &ListOpenAuctionsUseCase{auctions: auctions}
}

func (uc *ListOpenAuctionsUseCase) Execute(ctx context.Context) ([]*domain.Auction, error) {
	auctions, err := uc.auctions.ListOpen(ctx)
	if err != nil {
		return nil, fmt.Errorf("list open auctions: %w", err)
	}
	return auctions, nil
}

// SearchAuctionsUseCase filters auctions by id and/or case-insensitive
// substring match on title and description
type SearchAuctionsUseCase struct {
	auctions domain.AuctionRepository
}

func NewSearchAuctionsUseCase(auctions domain.AuctionRepository) *SearchAuctionsUseCase {
	return &SearchAuctionsUseCase{auctions: auctions}
}

func (uc *SearchAuctionsUseCase) Execute(ctx context.Context, cmd SearchAuctionsCommand) ([]*domain.Auction, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	auctions, err := uc.auctions.Search(ctx, cmd.Filter())
	if err != nil {
		return nil, fmt.Errorf("search auctions: %w", err)
	}
	return auctions, nil
}
