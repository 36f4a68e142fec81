package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/metrics"
	apperrors "github.com/place-search-service/internal/pkg/errors"
	"github.com/place-search-service/internal/report"
	"github.com/place-search-service/internal/usecase"
	"github.com/place-search-service/internal/usecase/dto"
)

type failingRenderer struct{ err error }

func (r failingRenderer) Render([]domain.ResultRecord) ([]byte, error) {
	return nil, r.err
}

func TestReportUseCase_Generate(t *testing.T) {
	ctx := context.Background()
	places := []domain.ResultRecord{
		{Name: "A", Duration: ptrFloat64(12.3), Distance: ptrFloat64(1.0), Category: "restaurant"},
		{Name: "B", Category: "restaurant"},
	}

	t.Run("renders and stores", func(t *testing.T) {
		storage := &MockReportStorage{}
		reg := prometheus.NewRegistry()
		m := metrics.NewMetrics(reg)
		uc := usecase.NewReportUseCase(report.NewRenderer(report.DefaultOptions()), storage, m, zap.NewNop())

		storage.On("Save", ctx,
			mock.MatchedBy(func(name string) bool { return strings.HasSuffix(name, ".pdf") && len(name) == 40 }),
			mock.MatchedBy(func(data []byte) bool { return bytes.HasPrefix(data, []byte("%PDF-")) }),
		).Return(&domain.StoredReport{
			Filename:  "0b7e0c1e-9a0b-4c43-8a51-0c2f3c0c9d11.pdf",
			URL:       "/static/reports/0b7e0c1e-9a0b-4c43-8a51-0c2f3c0c9d11.pdf",
			CreatedAt: time.Now(),
		}, nil)

		resp, err := uc.Generate(ctx, dto.ReportRequest{Places: places})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "/static/reports/0b7e0c1e-9a0b-4c43-8a51-0c2f3c0c9d11.pdf", resp.URL)
		assert.Equal(t, "0b7e0c1e-9a0b-4c43-8a51-0c2f3c0c9d11.pdf", resp.Filename)
		assert.Equal(t, 1.0, testutil.ToFloat64(m.ReportsRendered.WithLabelValues("ok")))
		storage.AssertExpectations(t)
	})

	t.Run("empty list", func(t *testing.T) {
		storage := &MockReportStorage{}
		uc := usecase.NewReportUseCase(report.NewRenderer(report.DefaultOptions()), storage, nil, zap.NewNop())

		_, err := uc.Generate(ctx, dto.ReportRequest{})
		assert.ErrorIs(t, err, apperrors.ErrEmptyReport)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, 400, appErr.StatusCode)
		storage.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("render failure", func(t *testing.T) {
		storage := &MockReportStorage{}
		uc := usecase.NewReportUseCase(failingRenderer{err: report.ErrOutput}, storage, nil, zap.NewNop())

		_, err := uc.Generate(ctx, dto.ReportRequest{Places: places})
		assert.ErrorIs(t, err, apperrors.ErrRender)
		assert.ErrorIs(t, err, report.ErrOutput)
	})

	t.Run("storage failure", func(t *testing.T) {
		storage := &MockReportStorage{}
		uc := usecase.NewReportUseCase(report.NewRenderer(report.DefaultOptions()), storage, nil, zap.NewNop())

		storage.On("Save", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("read-only file system"))

		_, err := uc.Generate(ctx, dto.ReportRequest{Places: places})
		assert.ErrorIs(t, err, apperrors.ErrRender)

		appErr, ok := apperrors.As(err)
		require.True(t, ok)
		assert.Equal(t, 500, appErr.StatusCode)
	})
}
