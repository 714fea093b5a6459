package handler

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SnackRequestHandler struct {
	service service.SnackRequestService
	log     *slog.Logger
}

func NewSnackRequestHandler(s service.SnackRequestService, log *slog.Logger) *SnackRequestHandler {
	return &SnackRequestHandler{service: s, log: log}
}

// @Summary Request a snack
// @Tags snack-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateSnackRequestInput true "Request"
// @Success 201 {object} model.SnackRequest
// @Failure 400 {object} handler.ErrorResponse
// @Router /api/v1/snack-requests [post]
func (h *SnackRequestHandler) CreateRequest(c *fiber.Ctx) error {
	var input service.CreateSnackRequestInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	request, err := h.service.Create(identity(c), &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(request)
}

// @Summary List snack requests
// @Tags snack-requests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Pending, Approved or Purchased"
// @Success 200 {array} model.SnackRequest
// @Failure 400 {object} handler.ErrorResponse
// @Failure 403 {object} handler.ErrorResponse
// @Router /api/v1/snack-requests [get]
func (h *SnackRequestHandler) GetRequests(c *fiber.Ctx) error {
	requests, err := h.service.List(identity(c), c.Query("status"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(requests)
}

// @Summary Change a snack request's status
// @Tags snack-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Param request body service.UpdateSnackRequestInput true "Status"
// @Success 200 {object} model.SnackRequest
// @Failure 400 {object} handler.ErrorResponse
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/v1/snack-requests/{id} [put]
func (h *SnackRequestHandler) UpdateRequest(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request id")
	}
	var input service.UpdateSnackRequestInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	request, err := h.service.UpdateStatus(identity(c), id, &input)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(request)
}

// @Summary Delete a snack request
// @Tags snack-requests
// @Security BearerAuth
// @Param id path string true "Request ID"
// @Success 204
// @Failure 404 {object} handler.ErrorResponse
// @Router /api/v1/snack-requests/{id} [delete]
func (h *SnackRequestHandler) DeleteRequest(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request id")
	}
	if err := h.service.Delete(identity(c), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
