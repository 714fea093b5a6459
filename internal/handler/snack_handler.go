package handler

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SnackHandler struct {
	service service.CatalogService
	log     *slog.Logger
}

func NewSnackHandler(s service.CatalogService, log *slog.Logger) *SnackHandler {
	return &SnackHandler{service: s, log: log}
}

// GetSnacks returns the snacks currently on sale.
//
// @Summary List available snacks
// @Tags snacks
// @Produce json
// @Success 200 {array} model.Snack
// @Failure 500 {object} handler.ErrorResponse
// @Router /api/v1/snacks [get]
func (h *SnackHandler) GetSnacks(c *fiber.Ctx) error {
	snacks, err := h.service.ListAvailable()
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(snacks)
}

// GetAllSnacks returns the full catalog, unavailable snacks included.
//
// @Summary List every snack
// @Tags snacks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Snack
// @Failure 401 {object} handler.ErrorResponse
// @Failure 403 {object} handler.ErrorResponse
// @Router /api/v1/admin/snacks [get]
func (h *SnackHandler) GetAllSnacks(c *fiber.Ctx) error {
	snacks, err := h.service.ListAll(identity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(snacks)
}

// @Summary Get a snack
// @Tags snacks
// @Produce json
// @Param id path string true "Snack ID"
// @Success 200 {object} model.Snack
// @Failure 400 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/v1/snacks/{id} [get]
func (h *SnackHandler) GetSnack(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid snack id")
	}
	snack, err := h.service.GetSnack(id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(snack)
}

// @Summary Create a snack
// @Tags snacks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.SnackInput true "Snack"
// @Success 201 {object} model.Snack
// @Failure 400 {object} handler.ErrorResponse
// @Failure 403 {object} handler.ErrorResponse
// @Router /api/v1/snacks [post]
func (h *SnackHandler) CreateSnack(c *fiber.Ctx) error {
	var input service.SnackInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	snack, err := h.service.CreateSnack(identity(c), &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(snack)
}

// @Summary Update a snack
// @Tags snacks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Snack ID"
// @Param request body service.SnackInput true "Snack"
// @Success 200 {object} model.Snack
// @Failure 400 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Failure 409 {object} handler.ErrorResponse
// @Router /api/v1/snacks/{id} [put]
func (h *SnackHandler) UpdateSnack(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid snack id")
	}
	var input service.SnackInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	snack, err := h.service.UpdateSnack(identity(c), id, &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(snack)
}

// @Summary Delete a snack
// @Tags snacks
// @Security BearerAuth
// @Param id path string true "Snack ID"
// @Success 204
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/v1/snacks/{id} [delete]
func (h *SnackHandler) DeleteSnack(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid snack id")
	}
	if err := h.service.DeleteSnack(identity(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
