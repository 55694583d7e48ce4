package http

import (
	"time"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
)

type createAuctionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	EndTime     *string `json:"end_time"`
	Status      *string `json:"status"`
}

type addItemRequest struct {
	AuctionID    *int64   `json:"auction_id"`
	ItemName     *string  `json:"item_name"`
	MinimumPrice *float64 `json:"minimum_price"`
	SellerID     *int64   `json:"sellers_user_id"`
}

type placeBidRequest struct {
	AuctionID *int64   `json:"auctions_auction_id"`
	BidAmount *float64 `json:"bid_amount"`
	BuyerID   *int64   `json:"buyers_user_id"`
	ItemID    *int64   `json:"items_item_id"`
}

type auctionResponse struct {
	AuctionID     int64     `json:"auction_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	WinnerID      *int64    `json:"winner_user_id,omitempty"`
	WinningAmount *float64  `json:"winning_amount,omitempty"`
}

func toAuctionResponse(a *domain.Auction) auctionResponse {
	return auctionResponse{
		AuctionID:     a.ID,
		Title:         a.Title,
		Description:   a.Description,
		EndTime:       a.EndTime,
		Status:        string(a.Status),
		WinnerID:      a.WinnerID,
		WinningAmount: a.WinningAmount,
	}
}

func toAuctionResponses(auctions []*domain.Auction) []auctionResponse {
	results := make([]auctionResponse, 0, len(auctions))
	for _, a := range auctions {
		results = append(results, toAuctionResponse(a))
	}
	return results
}
