package websocket

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/cristianortiz/auctionHouse/internal/auction/domain"
	"github.com/cristianortiz/auctionHouse/internal/shared/logger"
	ws "github.com/cristianortiz/auctionHouse/internal/shared/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// Feed is the live auction update channel: clients subscribe per auction over
// a websocket and receive bid/close/cancel events as they happen. Delivery is
// fire-and-forget, the notifications table remains the durable record.
type Feed struct {
	hub *ws.Hub
	ctx context.Context
}

// NewFeed creates a new Feed on top of an already running hub
func NewFeed(ctx context.Context, hub *ws.Hub) *Feed {
	return &Feed{hub: hub, ctx: ctx}
}

// UpgradeRequired rejects plain HTTP requests on the websocket route
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler upgrades the connection and registers the client with the hub,
// keyed by the auction it watches. Blocks until the connection drops.
func (f *Feed) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := &ws.Client{
			Hub:       f.hub,
			Conn:      conn,
			Send:      make(chan []byte, 16),
			AuctionID: conn.Params("auction_id"),
			ID:        uuid.New().String(),
		}
		f.hub.RegisterClient(client)

		go client.WritePump(f.ctx)
		client.ReadPump(f.ctx)
	})
}

// BidPlaced broadcasts an accepted bid to the auction's watchers
func (f *Feed) BidPlaced(bid *domain.Bid) {
	msg := BidPlacedMessage{BaseMessage: BaseMessage{Type: MessageTypeBidPlaced}}
	msg.Payload.AuctionID = bid.AuctionID
	msg.Payload.BuyerID = bid.BuyerID
	msg.Payload.Amount = bid.Amount
	msg.Payload.BidTime = bid.BidTime
	f.broadcast(bid.AuctionID, msg)
}

// AuctionClosed broadcasts the final state of a closed auction
func (f *Feed) AuctionClosed(a *domain.Auction) {
	msg := AuctionClosedMessage{BaseMessage: BaseMessage{Type: MessageTypeAuctionClosed}}
	msg.Payload.AuctionID = a.ID
	msg.Payload.WinnerID = a.WinnerID
	msg.Payload.WinningAmount = a.WinningAmount
	f.broadcast(a.ID, msg)
}

// AuctionCancelled broadcasts a cancellation
func (f *Feed) AuctionCancelled(auctionID int64) {
	msg := AuctionCancelledMessage{BaseMessage: BaseMessage{Type: MessageTypeAuctionCancelled}}
	msg.Payload.AuctionID = auctionID
	f.broadcast(auctionID, msg)
}

func (f *Feed) broadcast(auctionID int64, msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("failed to marshal feed message",
			zap.Int64("auctionID", auctionID),
			zap.Error(err),
		)
		return
	}
	f.hub.BroadcastToAuction(strconv.FormatInt(auctionID, 10), data)
}
