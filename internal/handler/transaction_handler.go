package handler

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/model"
	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.TransactionService
	log     *slog.Logger
}

func NewTransactionHandler(s service.TransactionService, log *slog.Logger) *TransactionHandler {
	return &TransactionHandler{service: s, log: log}
}

// @Summary List your transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.TransactionView
// @Failure 401 {object} handler.ErrorResponse
// @Router /api/v1/transactions [get]
func (h *TransactionHandler) GetMyTransactions(c *fiber.Ctx) error {
	views, err := h.service.ListMine(identity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return h.render(c, "my-transactions.xlsx", views)
}

// @Summary List a user's transactions
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {array} model.TransactionView
// @Failure 403 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/v1/user-transactions/{id} [get]
func (h *TransactionHandler) GetUserTransactions(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid user id")
	}
	views, err := h.service.ListByUser(identity(c), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return h.render(c, "user-transactions.xlsx", views)
}

// @Summary List every transaction
// @Description Pass format=xlsx to download the listing as a spreadsheet.
// @Tags transactions
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "json or xlsx"
// @Success 200 {array} model.TransactionView
// @Failure 403 {object} handler.ErrorResponse
// @Router /api/v1/all-transactions [get]
func (h *TransactionHandler) GetAllTransactions(c *fiber.Ctx) error {
	views, err := h.service.ListAll(identity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return h.render(c, "transactions.xlsx", views)
}

func (h *TransactionHandler) render(c *fiber.Ctx, filename string, views []model.TransactionView) error {
	if !wantsXLSX(c) {
		return c.JSON(views)
	}
	c.Attachment(filename)
	c.Set(fiber.HeaderContentType, service.XLSXContentType)
	if err := service.WriteTransactionsXLSX(c, views); err != nil {
		return respondError(c, h.log, err)
	}
	return nil
}
