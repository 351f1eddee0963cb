package handlers

import (
	"github.com/gofiber/fiber/v2"

	"fridgetofeast/domain"
	"fridgetofeast/internal/api/presenters"
	"fridgetofeast/pkg/analytics"
)

type (
	AnalyticsHandler interface {
		GetDashboardStats(c *fiber.Ctx) error
	}

	analyticsHandler struct {
		analyticsService analytics.AnalyticsService
	}
)

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandler{analyticsService: analyticsService}
}

func (h *analyticsHandler) GetDashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.analyticsService.GetDashboardStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}
