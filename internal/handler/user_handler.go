package handler

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService service.UserService
	log         *slog.Logger
}

func NewUserHandler(userService service.UserService, log *slog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// @Summary Current user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.UserResponse
// @Failure 401 {object} handler.ErrorResponse
// @Router /api/v1/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.userService.GetProfile(identity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(user)
}

// @Summary List users with balances
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserResponse
// @Failure 403 {object} handler.ErrorResponse
// @Router /api/v1/users [get]
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	users, err := h.userService.ListUsers(identity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(users)
}
