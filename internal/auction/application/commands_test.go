package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCreateAuctionCommand_FirstMissingFieldWins(t *testing.T) {
	end := time.Now().UTC().Format(time.RFC3339)
	full := CreateAuctionCommand{
		Title:       ptrString("t"),
		Description: ptrString("d"),
		EndTime:     &end,
		Status:      ptrString("open"),
	}
	require.NoError(t, full.Validate())

	tests := []struct {
		name    string
		mutate  func(c *CreateAuctionCommand)
		wantMsg string
	}{
		{"missing_title", func(c *CreateAuctionCommand) { c.Title = nil }, "title is required"},
		{"missing_description", func(c *CreateAuctionCommand) { c.Description = nil }, "description is required"},
		{"missing_end_time", func(c *CreateAuctionCommand) { c.EndTime = nil }, "end_time is required"},
		{"missing_status", func(c *CreateAuctionCommand) { c.Status = nil }, "status is required"},
		{"all_missing_reports_title", func(c *CreateAuctionCommand) { *c = CreateAuctionCommand{} }, "title is required"},
		{"title_before_status", func(c *CreateAuctionCommand) { c.Title = nil; c.Status = nil }, "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := full
			tt.mutate(&cmd)
			err := cmd.Validate()
			require.Error(t, err)
			require.Equal(t, tt.wantMsg, err.Error())
		})
	}
}

func TestCreateAuctionCommand_RejectsUnknownStatus(t *testing.T) {
	end := time.Now().UTC().Format(time.RFC3339)
	cmd := CreateAuctionCommand{
		Title:       ptrString("t"),
		Description: ptrString("d"),
		EndTime:     &end,
		Status:      ptrString("finished"),
	}
	require.ErrorContains(t, cmd.Validate(), "status must be one of")
}

func TestCreateAuctionCommand_ParseEndTime(t *testing.T) {
	valid := "2026-09-01T12:00:00Z"
	cmd := CreateAuctionCommand{EndTime: &valid}
	parsed, err := cmd.ParseEndTime()
	require.NoError(t, err)
	require.Equal(t, 2026, parsed.Year())

	bad := "tomorrow at noon"
	cmd.EndTime = &bad
	_, err = cmd.ParseEndTime()
	require.ErrorContains(t, err, "RFC3339")
}

func TestSearchAuctionsCommand_Validate(t *testing.T) {
	require.ErrorContains(t, SearchAuctionsCommand{}.Validate(),
		"at least one search parameter")

	require.NoError(t, SearchAuctionsCommand{AuctionID: ptrInt64(3)}.Validate())
	require.NoError(t, SearchAuctionsCommand{Title: ptrString("Art")}.Validate())
	require.NoError(t, SearchAuctionsCommand{Description: ptrString("rare")}.Validate())
}

func TestAddItemCommand_Validate(t *testing.T) {
	full := AddItemCommand{
		AuctionID:    ptrInt64(1),
		ItemName:     ptrString("frame"),
		MinimumPrice: ptrFloat64(10),
		SellerID:     ptrInt64(2),
	}
	require.NoError(t, full.Validate())

	missingName := full
	missingName.ItemName = nil
	require.Equal(t, "item_name is required", missingName.Validate().Error())

	missingSeller := full
	missingSeller.SellerID = nil
	require.Equal(t, "sellers_user_id is required", missingSeller.Validate().Error())
}

func TestPlaceBidCommand_Validate(t *testing.T) {
	full := PlaceBidCommand{
		AuctionID: ptrInt64(1),
		BidAmount: ptrFloat64(10),
		BuyerID:   ptrInt64(2),
	}
	require.NoError(t, full.Validate())

	noAuction := full
	noAuction.AuctionID = nil
	require.Equal(t, "auctions_auction_id is required", noAuction.Validate().Error())

	noAmount := full
	noAmount.BidAmount = nil
	require.Equal(t, "bid_amount is required", noAmount.Validate().Error())

	noBuyer := full
	noBuyer.BuyerID = nil
	require.Equal(t, "buyers_user_id is required", noBuyer.Validate().Error())

	// item id stays optional
	require.NoError(t, full.Validate())
}
