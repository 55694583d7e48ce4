package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cristianortiz/auctionHouse/internal/auction/application"
	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	wsfeed "github.com/cristianortiz/auctionHouse/internal/auction/infra/websocket"
	ws "github.com/cristianortiz/auctionHouse/internal/shared/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type fakeAuctionService struct {
	createFn func(ctx context.Context, cmd application.CreateAuctionCommand) (int64, error)
	listFn   func(ctx context.Context) ([]*domain.Auction, error)
	searchFn func(ctx context.Context, cmd application.SearchAuctionsCommand) ([]*domain.Auction, error)
	addFn    func(ctx context.Context, cmd application.AddItemCommand) (int64, error)
	bidFn    func(ctx context.Context, cmd application.PlaceBidCommand) (*domain.Bid, error)
	closeFn  func(ctx context.Context, auctionID int64) (*domain.Auction, error)
	cancelFn func(ctx context.Context, auctionID int64) (int, error)
}

func (s *fakeAuctionService) CreateAuction(ctx context.Context, cmd application.CreateAuctionCommand) (int64, error) {
	return s.createFn(ctx, cmd)
}
func (s *fakeAuctionService) ListOpenAuctions(ctx context.Context) ([]*domain.Auction, error) {
	return s.listFn(ctx)
}
func (s *fakeAuctionService) SearchAuctions(ctx context.Context, cmd application.SearchAuctionsCommand) ([]*domain.Auction, error) {
	return s.searchFn(ctx, cmd)
}
func (s *fakeAuctionService) AddItem(ctx context.Context, cmd application.AddItemCommand) (int64, error) {
	return s.addFn(ctx, cmd)
}
func (s *fakeAuctionService) PlaceBid(ctx context.Context, cmd application.PlaceBidCommand) (*domain.Bid, error) {
	return s.bidFn(ctx, cmd)
}
func (s *fakeAuctionService) CloseAuction(ctx context.Context, auctionID int64) (*domain.Auction, error) {
	return s.closeFn(ctx, auctionID)
}
func (s *fakeAuctionService) CancelAuction(ctx context.Context, auctionID int64) (int, error) {
	return s.cancelFn(ctx, auctionID)
}

func newTestApp(svc application.AuctionService) *fiber.App {
	app := fiber.New()
	feed := wsfeed.NewFeed(context.Background(), ws.NewHub())
	NewAuctionHandler(svc, feed).RegisterRoutes(app)
	return app
}

func decodeBody(t *testing.T, body io.Reader) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&envelope))
	return envelope
}

func TestCreateAuctionEndpoint(t *testing.T) {
	svc := &fakeAuctionService{
		createFn: func(ctx context.Context, cmd application.CreateAuctionCommand) (int64, error) {
			require.Equal(t, "Art sale", *cmd.Title)
			return 42, nil
		},
	}
	app := newTestApp(svc)

	body := `{"title":"Art sale","description":"paintings","end_time":"2026-09-01T12:00:00Z","status":"open"}`
	req := httptest.NewRequest("POST", "/auctions/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeBody(t, resp.Body)
	require.Equal(t, float64(200), envelope["status"])
	results := envelope["results"].(map[string]any)
	require.Equal(t, float64(42), results["auction_id"])
}

func TestCreateAuctionEndpoint_ValidationError(t *testing.T) {
	svc := &fakeAuctionService{
		createFn: func(ctx context.Context, cmd application.CreateAuctionCommand) (int64, error) {
			if err := cmd.Validate(); err != nil {
				return 0, err
			}
			return 1, nil
		},
	}
	app := newTestApp(svc)

	req := httptest.NewRequest("POST", "/auctions/", strings.NewReader(`{"description":"paintings"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	envelope := decodeBody(t, resp.Body)
	require.Equal(t, float64(400), envelope["status"])
	require.Equal(t, "title is required", envelope["errors"])
}

func TestSearchEndpoint_ForwardsQueryParams(t *testing.T) {
	var got application.SearchAuctionsCommand
	svc := &fakeAuctionService{
		searchFn: func(ctx context.Context, cmd application.SearchAuctionsCommand) ([]*domain.Auction, error) {
			got = cmd
			return []*domain.Auction{{ID: 1, Title: "Art sale", Status: domain.StatusOpen}}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/auctions/search/?title=Art&auction_id=7", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NotNil(t, got.Title)
	require.Equal(t, "Art", *got.Title)
	require.NotNil(t, got.AuctionID)
	require.Equal(t, int64(7), *got.AuctionID)
	require.Nil(t, got.Description)
}

func TestSearchEndpoint_BadAuctionID(t *testing.T) {
	app := newTestApp(&fakeAuctionService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/auctions/search/?auction_id=abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAddItemEndpoint_ItemIDOutsideResults(t *testing.T) {
	svc := &fakeAuctionService{
		addFn: func(ctx context.Context, cmd application.AddItemCommand) (int64, error) {
			return 9, nil
		},
	}
	app := newTestApp(svc)

	body := `{"auction_id":1,"item_name":"frame","minimum_price":25,"sellers_user_id":4}`
	req := httptest.NewRequest("POST", "/auctions/add_item", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeBody(t, resp.Body)
	require.Equal(t, float64(9), envelope["item_id"])
	require.Contains(t, envelope["results"], "frame")
}

func TestPlaceBidEndpoint_TooLowIsConflict(t *testing.T) {
	svc := &fakeAuctionService{
		bidFn: func(ctx context.Context, cmd application.PlaceBidCommand) (*domain.Bid, error) {
			return nil, domain.ErrBidTooLow
		},
	}
	app := newTestApp(svc)

	body := `{"auctions_auction_id":1,"bid_amount":5,"buyers_user_id":2,"items_item_id":3}`
	req := httptest.NewRequest("POST", "/auctions/bid", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestPlaceBidEndpoint_Success(t *testing.T) {
	svc := &fakeAuctionService{
		bidFn: func(ctx context.Context, cmd application.PlaceBidCommand) (*domain.Bid, error) {
			require.NotNil(t, cmd.ItemID)
			return &domain.Bid{ID: 11, Amount: *cmd.BidAmount, AuctionID: *cmd.AuctionID,
				BuyerID: *cmd.BuyerID, BidTime: time.Now().UTC()}, nil
		},
	}
	app := newTestApp(svc)

	body := `{"auctions_auction_id":1,"bid_amount":50,"buyers_user_id":2,"items_item_id":3}`
	req := httptest.NewRequest("POST", "/auctions/bid", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeBody(t, resp.Body)
	results := envelope["results"].(map[string]any)
	require.Equal(t, float64(11), results["bid_id"])
	require.Equal(t, float64(50), results["amount"])
}

func TestCloseEndpoint(t *testing.T) {
	winner := int64(5)
	amount := 15.0
	svc := &fakeAuctionService{
		closeFn: func(ctx context.Context, auctionID int64) (*domain.Auction, error) {
			require.Equal(t, int64(3), auctionID)
			return &domain.Auction{ID: auctionID, Status: domain.StatusClosed,
				WinnerID: &winner, WinningAmount: &amount}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("PUT", "/auctions/close/3", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeBody(t, resp.Body)
	results := envelope["results"].(map[string]any)
	require.Equal(t, "closed", results["status"])
	require.Equal(t, float64(5), results["winner_user_id"])
	require.Equal(t, float64(15), results["winning_amount"])
}

func TestCloseEndpoint_NotYetClosable(t *testing.T) {
	svc := &fakeAuctionService{
		closeFn: func(ctx context.Context, auctionID int64) (*domain.Auction, error) {
			return nil, domain.ErrAuctionNotYetClosable
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("PUT", "/auctions/close/3", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestCancelEndpoint_NotFound(t *testing.T) {
	svc := &fakeAuctionService{
		cancelFn: func(ctx context.Context, auctionID int64) (int, error) {
			return 0, domain.ErrAuctionNotFound
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("PUT", "/auctions/cancel/99", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	envelope := decodeBody(t, resp.Body)
	require.Equal(t, float64(404), envelope["status"])
}

func TestListEndpoint(t *testing.T) {
	svc := &fakeAuctionService{
		listFn: func(ctx context.Context) ([]*domain.Auction, error) {
			return []*domain.Auction{
				{ID: 1, Title: "a", Status: domain.StatusOpen},
				{ID: 2, Title: "b", Status: domain.StatusOpen},
			}, nil
		},
	}
	app := newTestApp(svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/auctions/list", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	envelope := decodeBody(t, resp.Body)
	results := envelope["results"].([]any)
	require.Len(t, results, 2)
}
