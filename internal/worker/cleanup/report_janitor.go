package cleanup

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/place-search-service/internal/worker"
)

// Pruner deletes stored reports older than a cutoff.
type Pruner interface {
	Prune(ctx context.Context, olderThan time.Time) (int, error)
}

// ReportJanitor periodically removes reports past their retention.
type ReportJanitor struct {
	*worker.BaseWorker
	pruner    Pruner
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewReportJanitor(pruner Pruner, retention, interval time.Duration, logger *zap.Logger) *ReportJanitor {
	return &ReportJanitor{
		BaseWorker: worker.NewBaseWorker("report-janitor", logger),
		pruner:     pruner,
		retention:  retention,
		interval:   interval,
		now:        time.Now,
	}
}

func (j *ReportJanitor) Start(ctx context.Context) error {
	j.Logger().Info("Report janitor started",
		zap.Duration("retention", j.retention),
		zap.Duration("interval", j.interval),
	)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.RunOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-j.StopChan():
			return nil
		case <-ticker.C:
			j.RunOnce(ctx)
		}
	}
}

// RunOnce prunes a single time and returns how many reports were removed.
func (j *ReportJanitor) RunOnce(ctx context.Context) int {
	removed, err := j.pruner.Prune(ctx, j.now().Add(-j.retention))
	if err != nil {
		j.Logger().Error("Failed to prune reports", zap.Error(err))
		return removed
	}
	if removed > 0 {
		j.Logger().Info("Expired reports removed", zap.Int("count", removed))
	}
	return removed
}
