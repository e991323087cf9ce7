package handlers

import (
	"fintrack/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SummaryHandler struct {
	summaryService *service.SummaryService
	logger         *zap.Logger
}

func NewSummaryHandler(summaryService *service.SummaryService, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryService: summaryService,
		logger:         logger,
	}
}

// GetSummary godoc
// @Summary Overall balance summary
// @Tags summary
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.SummaryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/summary [get]
func (h *SummaryHandler) GetSummary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.summaryService.GetSummary(c.Context(), userID, getUsername(c))
	if err != nil {
		h.logger.Error("Failed to build summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build summary",
		})
	}

	return c.JSON(resp)
}

// GetSummaryByCategory godoc
// @Summary Totals per category and type
// @Tags summary
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CategorySummaryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/summary/by-category [get]
func (h *SummaryHandler) GetSummaryByCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.summaryService.GetSummaryByCategory(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build category summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build category summary",
		})
	}

	return c.JSON(resp)
}

// GetDailySummary godoc
// @Summary Income and expense totals per day
// @Tags summary
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.DailySummaryResponse
// @Failure 401 {object} map[string]string
// @Router /api/v1/summary/by-day [get]
func (h *SummaryHandler) GetDailySummary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	resp, err := h.summaryService.GetDailySummary(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to build daily summary", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to build daily summary",
		})
	}

	return c.JSON(resp)
}
