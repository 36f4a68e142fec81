package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
)

const historyKey = "search:history"

type historyRepository struct {
	client     *redis.Client
	logger     *zap.Logger
	maxEntries int64
}

// NewHistoryRepository keeps at most maxEntries searches in a Redis list,
// newest at the head.
func NewHistoryRepository(r *Redis, maxEntries int) repository.HistoryRepository {
	if maxEntries < 1 {
		maxEntries = 1
	}
	return &historyRepository{
		client:     r.Client(),
		logger:     r.logger,
		maxEntries: int64(maxEntries),
	}
}

func (r *historyRepository) Add(ctx context.Context, entry domain.HistoryEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, historyKey, data)
	pipe.LTrim(ctx, historyKey, 0, r.maxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		r.logger.Error("Failed to record search history", zap.Error(err))
		return fmt.Errorf("history add error: %w", err)
	}

	r.logger.Debug("Search recorded",
		zap.String("id", entry.ID.String()),
		zap.String("query", entry.Query),
	)
	return nil
}

func (r *historyRepository) List(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	if limit < 1 || int64(limit) > r.maxEntries {
		limit = int(r.maxEntries)
	}

	raw, err := r.client.LRange(ctx, historyKey, 0, int64(limit)-1).Result()
	if err != nil {
		r.logger.Error("Failed to read search history", zap.Error(err))
		return nil, fmt.Errorf("history list error: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(raw))
	for _, item := range raw {
		var entry domain.HistoryEntry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			r.logger.Warn("Skipping malformed history entry", zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *historyRepository) Clear(ctx context.Context) error {
	if err := r.client.Del(ctx, historyKey).Err(); err != nil {
		r.logger.Error("Failed to clear search history", zap.Error(err))
		return fmt.Errorf("history clear error: %w", err)
	}
	return nil
}
