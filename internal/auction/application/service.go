package application

import (
	"context"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
)

// AuctionService defines the application interface of the auction module,
// exposes the lifecycle use cases to the infra layer
type AuctionService interface {
	CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (int64, error)
	ListOpenAuctions(ctx context.Context) ([]*domain.Auction, error)
	SearchAuctions(ctx context.Context, cmd SearchAuctionsCommand) ([]*domain.Auction, error)
	AddItem(ctx context.Context, cmd AddItemCommand) (int64, error)
	PlaceBid(ctx context.Context, cmd PlaceBidCommand) (*domain.Bid, error)
	CloseAuction(ctx context.Context, auctionID int64) (*domain.Auction, error)
	// CancelAuction returns the number of distinct bidders notified.
	CancelAuction(ctx context.Context, auctionID int64) (int, error)
}

type auctionService struct {
	createAuctionUC *CreateAuctionUseCase
	listOpenUC      *ListOpenAuctionsUseCase
	searchUC        *SearchAuctionsUseCase
	addItemUC       *AddItemUseCase
	placeBidUC      *PlaceBidUseCase
	closeAuctionUC  *CloseAuctionUseCase
	cancelAuctionUC *CancelAuctionUseCase
}

func NewAuctionService(
	createAuctionUC *CreateAuctionUseCase,
	listOpenUC *ListOpenAuctionsUseCase,
	searchUC *SearchAuctionsUseCase,
	addItemUC *AddItemUseCase,
	placeBidUC *PlaceBidUseCase,
	closeAuctionUC *CloseAuctionUseCase,
	cancelAuctionUC *CancelAuctionUseCase,
) AuctionService {
	return &auctionService{
		createAuctionUC: createAuctionUC,
		listOpenUC:      listOpenUC,
		searchUC:        searchUC,
		addItemUC:       addItemUC,
		placeBidUC:      placeBidUC,
		closeAuctionUC:  closeAuctionUC,
		cancelAuctionUC: cancelAuctionUC,
	}
}

func (as *auctionService) CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (int64, error) {
	return as.createAuctionUC.Execute(ctx, cmd)
}

func (as *auctionService) ListOpenAuctions(ctx context.Context) ([]*domain.Auction, error) {
	return as.listOpenUC.Execute(ctx)
}

func (as *auctionService) SearchAuctions(ctx context.Context, cmd SearchAuctionsCommand) ([]*domain.Auction, error) {
	return as.searchUC.Execute(ctx, cmd)
}

func (as *auctionService) AddItem(ctx context.Context, cmd AddItemCommand) (int64, error) {
	return as.addItemUC.Execute(ctx, cmd)
}

func (as *auctionService) PlaceBid(ctx context.Context, cmd PlaceBidCommand) (*domain.Bid, error) {
	return as.placeBidUC.Execute(ctx, cmd)
}

func (as *auctionService) CloseAuction(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	return as.closeAuctionUC.Execute(ctx, auctionID)
}

func (as *auctionService) CancelAuction(ctx context.Context, auctionID int64) (int, error) {
	return as.cancelAuctionUC.Execute(ctx, auctionID)
}
