package http

import (
	"strconv"
	"time"

	"github.com/cristianortiz/auctionHouse/internal/notification/domain"
	"github.com/cristianortiz/auctionHouse/internal/shared/httpserver"
	"github.com/cristianortiz/auctionHouse/internal/shared/logger"
	"github.com/cristianortiz/auctionHouse/internal/shared/validation"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// NotificationHandler exposes the persisted notification log per user
type NotificationHandler struct {
	notifications domain.Repository
}

func NewNotificationHandler(notifications domain.Repository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

func (h *NotificationHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/notifications/:user_id", h.listForUser)
}

type notificationResponse struct {
	NotificationID int64     `json:"notification_id"`
	Message        string    `json:"message"`
	Type           string    `json:"type"`
	SenderID       *int64    `json:"sender_user_id,omitempty"`
	ReceiverID     int64     `json:"receiver_user_id"`
	CreatedAt      time.Time `json:"created_at"`
}

func (h *NotificationHandler) listForUser(c *fiber.Ctx) error {
	userID, err := strconv.ParseInt(c.Params("user_id"), 10, 64)
	if err != nil {
		return httpserver.Fail(c, fiber.StatusBadRequest, validation.Errorf("user_id must be an integer"))
	}

	notifications, err := h.notifications.ListForUser(c.Context(), userID)
	if err != nil {
		log.Error("GET /notifications failed", zap.Int64("userID", userID), zap.Error(err))
		return httpserver.Fail(c, fiber.StatusInternalServerError, err)
	}

	results := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		results = append(results, notificationResponse{
			NotificationID: n.ID,
			Message:        n.Message,
			Type:           n.Type,
			SenderID:       n.SenderID,
			ReceiverID:     n.ReceiverID,
			CreatedAt:      n.CreatedAt,
		})
	}
	return httpserver.Success(c, results)
}
