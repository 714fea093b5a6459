package handler

import (
	"log/slog"

	"github.com/EnmaSantos/office-snack-app/internal/service"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	service service.DashboardService
	log     *slog.Logger
}

func NewDashboardHandler(s service.DashboardService, log *slog.Logger) *DashboardHandler {
	return &DashboardHandler{service: s, log: log}
}

// GetSales returns units and revenue per day. Days defaults to 7.
//
// @Summary Daily sales
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param days query int false "Number of days, up to 90"
// @Success 200 {array} repository.DailySalesData
// @Failure 403 {object} handler.ErrorResponse
// @Router /api/v1/dashboard/sales [get]
func (h *DashboardHandler) GetSales(c *fiber.Ctx) error {
	days := c.QueryInt("days", 7)
	data, err := h.service.GetDailySales(identity(c), days)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(data)
}

// @Summary Dashboard statistics
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repository.DashboardStats
// @Failure 403 {object} handler.ErrorResponse
// @Router /api/v1/dashboard/stats [get]
func (h *DashboardHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.GetDashboardStats(identity(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(stats)
}
