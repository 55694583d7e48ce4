package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/cristianortiz/auctionHouse/internal/shared/httpserver"
	"github.com/cristianortiz/auctionHouse/internal/shared/logger"
	"github.com/cristianortiz/auctionHouse/internal/shared/validation"
	"github.com/cristianortiz/auctionHouse/internal/user/application"
	"github.com/cristianortiz/auctionHouse/internal/user/domain"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var log = logger.GetLogger()

// UserHandler wires the user endpoints to the application service
type UserHandler struct {
	users application.UserService
}

func NewUserHandler(users application.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/users/", h.list)
	app.Post("/users/", h.register)
	app.Get("/users/:username", h.get)
	app.Put("/users/:username", h.updateCity)
}

type registerRequest struct {
	Username *string `json:"username"`
	Role     *string `json:"role"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

type updateCityRequest struct {
	City *string `json:"city"`
}

type userResponse struct {
	UserID   int64     `json:"user_id"`
	Username string    `json:"username"`
	Email    *string   `json:"email"`
	Role     string    `json:"role"`
	City     *string   `json:"city"`
	Created  time.Time `json:"created_at"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(u.Role),
		City:     u.City,
		Created:  u.CreatedAt,
	}
}

func (h *UserHandler) list(c *fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		log.Error("GET /users failed", zap.Error(err))
		return httpserver.Fail(c, mapError(err), err)
	}

	results := make([]userResponse, 0, len(users))
	for _, u := range users {
		results = append(results, toUserResponse(u))
	}
	return httpserver.Success(c, results)
}

func (h *UserHandler) get(c *fiber.Ctx) error {
	username := c.Params("username")
	u, err := h.users.GetByUsername(c.Context(), username)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			log.Error("GET /users/:username failed", zap.String("username", username), zap.Error(err))
		}
		return httpserver.Fail(c, mapError(err), err)
	}
	return httpserver.Success(c, toUserResponse(u))
}

func (h *UserHandler) register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return httpserver.Fail(c, fiber.StatusBadRequest, validation.Errorf("invalid request payload"))
	}

	cmd := application.RegisterCommand{
		Username: req.Username,
		Role:     req.Role,
		Password: req.Password,
		Email:    req.Email,
	}
	id, err := h.users.Register(c.Context(), cmd)
	if err != nil {
		return httpserver.Fail(c, mapError(err), err)
	}
	return httpserver.Success(c, fmt.Sprintf("inserted user %s with id %d", *req.Username, id))
}

func (h *UserHandler) updateCity(c *fiber.Ctx) error {
	username := c.Params("username")
	var req updateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return httpserver.Fail(c, fiber.StatusBadRequest, validation.Errorf("invalid request payload"))
	}

	affected, err := h.users.UpdateCity(c.Context(), username, req.City)
	if err != nil {
		return httpserver.Fail(c, mapError(err), err)
	}
	return httpserver.Success(c, fmt.Sprintf("updated: %d", affected))
}

// mapError translates user errors to real HTTP status codes
func mapError(err error) int {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidRole):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
