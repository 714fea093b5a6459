package handler

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ShoppingListHandler struct {
	service service.ShoppingListService
	log     *slog.Logger
}

func NewShoppingListHandler(s service.ShoppingListService, log *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{service: s, log: log}
}

// @Summary Restock suggestions
// @Tags shopping-list
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ShoppingSuggestions
// @Failure 403 {object} handler.ErrorResponse
// @Router /api/v1/shopping-list/suggestions [get]
func (h *ShoppingListHandler) GetSuggestions(c *fiber.Ctx) error {
	suggestions, err := h.service.Suggestions(identity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(suggestions)
}

// @Summary Compile a shopping list
// @Description Merges the chosen items. Pass format=xlsx to download a spreadsheet.
// @Tags shopping-list
// @Accept json
// @Produce json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param format query string false "json or xlsx"
// @Param request body service.ShoppingListInput true "Items"
// @Success 200 {object} service.ShoppingList
// @Failure 400 {object} handler.ErrorResponse
// @Router /api/v1/shopping-list [post]
func (h *ShoppingListHandler) Compile(c *fiber.Ctx) error {
	var input service.ShoppingListInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	list, err := h.service.Compile(identity(c), &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	if !wantsXLSX(c) {
		return c.JSON(list)
	}

	c.Attachment("shopping-list-" + list.GeneratedAt.Format("2006-01-02") + ".xlsx")
	c.Set(fiber.HeaderContentType, service.XLSXContentType)
	if err := service.WriteShoppingListXLSX(c, list); err != nil {
		return respondError(c, h.log, err)
	}
	return nil
}
