package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/pkg/utils"
	"github.com/place-search-service/internal/usecase"
	"github.com/place-search-service/internal/usecase/dto"
)

type SavedSearchHandler struct {
	savedUC *usecase.SavedSearchUseCase
	logger  *zap.Logger
}

func NewSavedSearchHandler(savedUC *usecase.SavedSearchUseCase, logger *zap.Logger) *SavedSearchHandler {
	return &SavedSearchHandler{
		savedUC: savedUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Save a search
// @Tags Saved searches
// @Accept json
// @Produce json
// @Param request body dto.SavedSearchRequest true "Search to save"
// @Success 201 {object} domain.SavedSearch
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/saved-searches [post]
func (h *SavedSearchHandler) Create(c *fiber.Ctx) error {
	var req dto.SavedSearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	saved, err := h.savedUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

// List godoc
// @Summary List saved searches
// @Tags Saved searches
// @Produce json
// @Param limit query int false "Maximum number of entries" default(50)
// @Success 200 {object} dto.SavedSearchListResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/saved-searches [get]
func (h *SavedSearchHandler) List(c *fiber.Ctx) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.savedUC.List(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}

// Delete godoc
// @Summary Delete a saved search
// @Tags Saved searches
// @Param id path string true "Saved search ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/saved-searches/{id} [delete]
func (h *SavedSearchHandler) Delete(c *fiber.Ctx) error {
	if err := h.savedUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Results godoc
// @Summary Re-run a saved search
// @Tags Saved searches
// @Produce json
// @Param id path string true "Saved search ID"
// @Success 200 {array} domain.ResultRecord
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/saved-searches/{id}/results [get]
func (h *SavedSearchHandler) Results(c *fiber.Ctx) error {
	records, err := h.savedUC.Run(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(records)
}
