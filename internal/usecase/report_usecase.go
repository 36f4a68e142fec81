package usecase

import (
	"context"
	stderrors "errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
	"github.com/place-search-service/internal/metrics"
	"github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/report"
	"github.com/place-search-service/internal/usecase/dto"
)

type ReportRenderer interface {
	Render(records []domain.ResultRecord) ([]byte, error)
}

type ReportUseCase struct {
	renderer ReportRenderer
	storage  repository.ReportStorage
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewReportUseCase(
	renderer ReportRenderer,
	storage repository.ReportStorage,
	m *metrics.Metrics,
	logger *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		renderer: renderer,
		storage:  storage,
		metrics:  m,
		logger:   logger,
	}
}

// Generate renders the places into a PDF and stores it under a fresh name.
func (uc *ReportUseCase) Generate(ctx context.Context, req dto.ReportRequest) (*dto.ReportResponse, error) {
	if len(req.Places) == 0 {
		uc.metrics.ReportRendered("empty")
		return nil, errors.ErrEmptyReport
	}

	data, err := uc.renderer.Render(req.Places)
	if err != nil {
		if stderrors.Is(err, report.ErrEmptyInput) {
			uc.metrics.ReportRendered("empty")
			return nil, errors.ErrEmptyReport.Wrap(err)
		}
		uc.logger.Error("Failed to render report",
			zap.String("operation", "generate_pdf"),
			zap.Int("places", len(req.Places)),
			zap.Error(err),
		)
		uc.metrics.ReportRendered("failed")
		return nil, errors.ErrRender.Wrap(err)
	}

	stored, err := uc.storage.Save(ctx, uuid.NewString()+".pdf", data)
	if err != nil {
		uc.logger.Error("Failed to store report",
			zap.String("operation", "generate_pdf"),
			zap.Error(err),
		)
		uc.metrics.ReportRendered("failed")
		return nil, errors.ErrRender.Wrap(err)
	}

	uc.metrics.ReportRendered("ok")
	uc.logger.Info("Report generated",
		zap.String("filename", stored.Filename),
		zap.Int("places", len(req.Places)),
		zap.Int("size", stored.Size),
	)

	return &dto.ReportResponse{
		Success:  true,
		Message:  "PDF generated successfully",
		Filename: stored.Filename,
		URL:      stored.URL,
	}, nil
}
