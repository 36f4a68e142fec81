package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/pkg/utils"
	"github.com/place-search-service/internal/usecase"
	"github.com/place-search-service/internal/usecase/dto"
)

type ReportHandler struct {
	reportUC *usecase.ReportUseCase
	logger   *zap.Logger
}

func NewReportHandler(reportUC *usecase.ReportUseCase, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		reportUC: reportUC,
		logger:   logger,
	}
}

// GeneratePDF godoc
// @Summary Render places into a PDF report
// @Description Accepts the records returned by /search and writes a paginated PDF. The returned url serves the document.
// @Tags Report
// @Accept json
// @Produce json
// @Param request body dto.ReportRequest true "Places to include"
// @Success 200 {object} dto.ReportResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /generate_pdf [post]
func (h *ReportHandler) GeneratePDF(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		h.logger.Debug("Invalid report body", zap.Error(err))
		return utils.SendError(c, errors.ErrInvalidRequest.Wrap(err))
	}

	resp, err := h.reportUC.Generate(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.JSON(resp)
}
