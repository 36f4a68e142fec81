package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/pkg/utils"
	"github.com/place-search-service/internal/usecase"
)

type HistoryHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewHistoryHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *HistoryHandler {
	return &HistoryHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// List godoc
// @Summary Recent searches
// @Tags History
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {object} dto.HistoryResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.searchUC.History(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}

// Clear godoc
// @Summary Forget recent searches
// @Tags History
// @Success 204
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/history [delete]
func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	if err := h.searchUC.ClearHistory(c.Context()); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
