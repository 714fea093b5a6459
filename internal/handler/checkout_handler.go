package handler

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type CheckoutHandler struct {
	service service.CheckoutService
	log     *slog.Logger
}

func NewCheckoutHandler(s service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{service: s, log: log}
}

// Checkout buys every snack in the cart in one transaction.
//
// @Summary Check out a cart
// @Description Charges the buyer for each cart line and decrements stock. Either every line is bought or none is.
// @Tags checkout
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CheckoutInput true "Cart"
// @Success 200 {object} service.CheckoutResult
// @Failure 400 {object} handler.ErrorResponse
// @Failure 403 {object} handler.ErrorResponse
// @Failure 409 {object} handler.ErrorResponse
// @Router /api/v1/checkout [post]
func (h *CheckoutHandler) Checkout(c *fiber.Ctx) error {
	var input service.CheckoutInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	result, err := h.service.Checkout(identity(c), &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(result)
}
