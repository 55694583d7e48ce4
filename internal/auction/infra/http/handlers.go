package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/cristianortiz/auctionHouse/internal/auction/application"
	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	wsfeed "github.com/cristianortiz/auctionHouse/internal/auction/infra/websocket"
	"github.com/cristianortiz/auctionHouse/internal/shared/httpserver"
	"github.com/cristianortiz/auctionHouse/internal/shared/logger"
	"github.com/cristianortiz/auctionHouse/internal/shared/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// AuctionHandler wires the auction endpoints to the application service and
// pushes live updates to the websocket feed after each accepted mutation
type AuctionHandler struct {
	auctions application.AuctionService
	feed     *wsfeed.Feed
}

func NewAuctionHandler(auctions application.AuctionService, feed *wsfeed.Feed) *AuctionHandler {
	return &AuctionHandler{auctions: auctions, feed: feed}
}

func (h *AuctionHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/auctions/", h.create)
	app.Get("/auctions/list", h.listOpen)
	app.Get("/auctions/search/", h.search)
	app.Post("/auctions/add_item", h.addItem)
	app.Post("/auctions/bid", h.placeBid)
	app.Put("/auctions/close/:auction_id", h.close)
	app.Put("/auctions/cancel/:auction_id", h.cancel)
}

func (h *AuctionHandler) create(c *fiber.Ctx) error {
	var req createAuctionRequest
	if err := c.BodyParser(&req); err != nil {
		return httpserver.Fail(c, fiber.StatusBadRequest, validation.Errorf("invalid request payload"))
	}

	cmd := application.CreateAuctionCommand{
		Title:       req.Title,
		Description: req.Description,
		EndTime:     req.EndTime,
		Status:      req.Status,
	}
	id, err := h.auctions.CreateAuction(c.Context(), cmd)
	if err != nil {
		return h.fail(c, "POST /auctions/", err)
	}
	return httpserver.Success(c, fiber.Map{"auction_id": id})
}

func (h *AuctionHandler) listOpen(c *fiber.Ctx) error {
	auctions, err := h.auctions.ListOpenAuctions(c.Context())
	if err != nil {
		return h.fail(c, "GET /auctions/list", err)
	}
	return httpserver.Success(c, toAuctionResponses(auctions))
}

func (h *AuctionHandler) search(c *fiber.Ctx) error {
	var cmd application.SearchAuctionsCommand

	if raw := c.Query("auction_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return httpserver.Fail(c, fiber.StatusBadRequest, validation.Errorf("auction_id must be an integer"))
		}
		cmd.AuctionID = &id
	}
	if title := c.Query("title"); title != "" {
		cmd.Title = &title
	}
	if description := c.Query("description"); description != "" {
		cmd.Description = &description
	}

	auctions, err := h.auctions.SearchAuctions(c.Context(), cmd)
	if err != nil {
		return h.fail(c, "GET /auctions/search/", err)
	}
	return httpserver.Success(c, toAuctionResponses(auctions))
}

func (h *AuctionHandler) addItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return httpserver.Fail(c, fiber.StatusBadRequest, validation.Errorf("invalid request payload"))
	}

	cmd := application.AddItemCommand{
		AuctionID:    req.AuctionID,
		ItemName:     req.ItemName,
		MinimumPrice: req.MinimumPrice,
		SellerID:     req.SellerID,
	}
	id, err := h.auctions.AddItem(c.Context(), cmd)
	if err != nil {
		return h.fail(c, "POST /auctions/add_item", err)
	}
	// item_id travels outside results, clients of the legacy API expect it there
	return httpserver.SuccessWith(c, fmt.Sprintf("inserted item %s", *req.ItemName), fiber.Map{"item_id": id})
}

func (h *AuctionHandler) placeBid(c *fiber.Ctx) error {
	var req placeBidRequest
	if err := c.BodyParser(&req); err != nil {
		return httpserver.Fail(c, fiber.StatusBadRequest, validation.Errorf("invalid request payload"))
	}

	cmd := application.PlaceBidCommand{
		AuctionID: req.AuctionID,
		ItemID:    req.ItemID,
		BidAmount: req.BidAmount,
		BuyerID:   req.BuyerID,
	}
	bid, err := h.auctions.PlaceBid(c.Context(), cmd)
	if err != nil {
		return h.fail(c, "POST /auctions/bid", err)
	}

	h.feed.BidPlaced(bid)
	return httpserver.Success(c, fiber.Map{
		"bid_id": bid.ID,
		"amount": bid.Amount,
	})
}

func (h *AuctionHandler) close(c *fiber.Ctx) error {
	id, err := parseAuctionID(c)
	if err != nil {
		return httpserver.Fail(c, fiber.StatusBadRequest, err)
	}

	auction, err := h.auctions.CloseAuction(c.Context(), id)
	if err != nil {
		return h.fail(c, "PUT /auctions/close", err)
	}

	h.feed.AuctionClosed(auction)
	return httpserver.Success(c, toAuctionResponse(auction))
}

func (h *AuctionHandler) cancel(c *fiber.Ctx) error {
	id, err := parseAuctionID(c)
	if err != nil {
		return httpserver.Fail(c, fiber.StatusBadRequest, err)
	}

	notified, err := h.auctions.CancelAuction(c.Context(), id)
	if err != nil {
		return h.fail(c, "PUT /auctions/cancel", err)
	}

	h.feed.AuctionCancelled(id)
	return httpserver.Success(c, fmt.Sprintf("auction %d cancelled, %d bidders notified", id, notified))
}

func parseAuctionID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("auction_id"), 10, 64)
	if err != nil {
		return 0, validation.Errorf("auction_id must be an integer")
	}
	return id, nil
}

func (h *AuctionHandler) fail(c *fiber.Ctx, op string, err error) error {
	status := mapError(err)
	if status == fiber.StatusInternalServerError {
		log.Error(op+" failed", zap.Error(err))
	}
	return httpserver.Fail(c, status, err)
}

// mapError translates auction errors to real HTTP status codes: validation
// problems are 400, missing entities 404, business rule rejections 409
func mapError(err error) int {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAuctionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrAuctionNotYetClosable),
		errors.Is(err, domain.ErrAuctionNotOpen):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
