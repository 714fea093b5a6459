package handler

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type LedgerHandler struct {
	service service.LedgerService
	log     *slog.Logger
}

func NewLedgerHandler(s service.LedgerService, log *slog.Logger) *LedgerHandler {
	return &LedgerHandler{service: s, log: log}
}

// @Summary Adjust a user's balance
// @Description Adds a signed amount to the user's balance and records an adjustment.
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.AdjustBalanceInput true "Adjustment"
// @Success 200 {object} service.BalanceResult
// @Failure 400 {object} handler.ErrorResponse
// @Failure 403 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/v1/adjust-balance [post]
func (h *LedgerHandler) AdjustBalance(c *fiber.Ctx) error {
	var input service.AdjustBalanceInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	result, err := h.service.AdjustBalance(identity(c), &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(result)
}

// @Summary Top up your own balance
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.AddBalanceInput true "Deposit"
// @Success 200 {object} service.BalanceResult
// @Failure 400 {object} handler.ErrorResponse
// @Router /api/v1/add-balance [post]
func (h *LedgerHandler) AddBalance(c *fiber.Ctx) error {
	var input service.AddBalanceInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	result, err := h.service.AddSelfBalance(identity(c), &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(result)
}

// @Summary Toggle a user's admin flag
// @Tags ledger
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.ToggleAdminInput true "Target user"
// @Success 200 {object} service.AdminStatusResult
// @Failure 400 {object} handler.ErrorResponse
// @Failure 403 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/v1/toggle-admin-status [post]
func (h *LedgerHandler) ToggleAdminStatus(c *fiber.Ctx) error {
	var input service.ToggleAdminInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	result, err := h.service.ToggleAdminStatus(identity(c), &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(result)
}

// @Summary Reconcile a user's balance with the ledger
// @Tags ledger
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} service.Reconciliation
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/v1/users/{id}/reconciliation [get]
func (h *LedgerHandler) Reconcile(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid user id")
	}
	result, err := h.service.Reconcile(identity(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(result)
}
