package application

import (
	"time"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	"github.com/cristianortiz/auctionHouse/internal/shared/validation"
)

// Command fields are pointers so an absent payload key can be told apart from
// a zero value; Validate reports the first missing field.

type CreateAuctionCommand struct {
	Title       *string
	Description *string
	EndTime     *string
	Status      *string
}

// Validate checks presence in payload order: title, description, end_time, status
func (c CreateAuctionCommand) Validate() error {
	if c.Title == nil {
		return validation.Required("title")
	}
	if c.Description == nil {
		return validation.Required("description")
	}
	if c.EndTime == nil {
		return validation.Required("end_time")
	}
	if c.Status == nil {
		return validation.Required("status")
	}
	if !domain.ValidStatus(*c.Status) {
		return validation.Errorf("status must be one of open, closed, cancelled")
	}
	return nil
}

// ParseEndTime interprets the end_time field, RFC3339 only
func (c CreateAuctionCommand) ParseEndTime() (time.Time, error) {
	t, err := time.Parse(time.RFC3339, *c.EndTime)
	if err != nil {
		return time.Time{}, validation.Errorf("end_time must be a RFC3339 timestamp")
	}
	return t, nil
}

type SearchAuctionsCommand struct {
	AuctionID   *int64
	Title       *string
	Description *string
}

func (c SearchAuctionsCommand) Validate() error {
	if c.AuctionID == nil && c.Title == nil && c.Description == nil {
		return validation.Errorf("at least one search parameter (auction_id, title, or description) must be provided")
	}
	return nil
}

// Filter builds the repository filter from the supplied criteria
func (c SearchAuctionsCommand) Filter() domain.SearchFilter {
	return domain.SearchFilter{
		AuctionID:   c.AuctionID,
		Title:       c.Title,
		Description: c.Description,
	}
}

type AddItemCommand struct {
	AuctionID    *int64
	ItemName     *string
	MinimumPrice *float64
	SellerID     *int64
}

func (c AddItemCommand) Validate() error {
	if c.AuctionID == nil {
		return validation.Required("auction_id")
	}
	if c.ItemName == nil {
		return validation.Required("item_name")
	}
	if c.MinimumPrice == nil {
		return validation.Required("minimum_price")
	}
	if c.SellerID == nil {
		return validation.Required("sellers_user_id")
	}
	return nil
}

type PlaceBidCommand struct {
	AuctionID *int64
	ItemID    *int64
	BidAmount *float64
	BuyerID   *int64
}

func (c PlaceBidCommand) Validate() error {
	if c.AuctionID == nil {
		return validation.Required("auctions_auction_id")
	}
	if c.BidAmount == nil {
		return validation.Required("bid_amount")
	}
	if c.BuyerID == nil {
		return validation.Required("buyers_user_id")
	}
	return nil
}
