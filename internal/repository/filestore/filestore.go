package filestore

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/place-search-service/internal/domain"
	"github.com/place-search-service/internal/domain/repository"
)

const reportsDir = "reports"

// Store writes reports below <root>/reports and hands back URLs under
// <urlPrefix>/reports.
type Store struct {
	root          string
	urlPrefix     string
	fixedFilename string
	mu            sync.Mutex
	logger        *zap.Logger
}

// New prepares the reports directory. A non-empty fixedFilename makes every
// Save overwrite the same file; those writes are serialized.
func New(root, urlPrefix, fixedFilename string, logger *zap.Logger) (*Store, error) {
	dir := filepath.Join(root, reportsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create reports directory: %w", err)
	}

	return &Store{
		root:          root,
		urlPrefix:     urlPrefix,
		fixedFilename: fixedFilename,
		logger:        logger,
	}, nil
}

var _ repository.ReportStorage = (*Store)(nil)

func (s *Store) Dir() string {
	return filepath.Join(s.root, reportsDir)
}

func (s *Store) Save(ctx context.Context, name string, data []byte) (*domain.StoredReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.fixedFilename != "" {
		s.mu.Lock()
		defer s.mu.Unlock()
		name = s.fixedFilename
	}

	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("invalid report name %q", name)
	}

	target := filepath.Join(s.Dir(), name)

	// write to a temp file first so readers never see a partial document
	tmp, err := os.CreateTemp(s.Dir(), name+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create report file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to write report file: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return nil, fmt.Errorf("failed to store report file: %w", err)
	}

	s.logger.Debug("Report stored",
		zap.String("filename", name),
		zap.Int("size", len(data)),
	)

	return &domain.StoredReport{
		Filename:  name,
		URL:       path.Join(s.urlPrefix, reportsDir, name),
		Size:      len(data),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Prune removes reports (and abandoned temp files) last modified before
// olderThan.
func (s *Store) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	entries, err := os.ReadDir(s.Dir())
	if err != nil {
		return 0, fmt.Errorf("failed to list reports: %w", err)
	}

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".pdf" && ext != ".tmp" {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed concurrently
			continue
		}
		if !info.ModTime().Before(olderThan) {
			continue
		}

		if err := os.Remove(filepath.Join(s.Dir(), entry.Name())); err != nil && !os.IsNotExist(err) {
			s.logger.Warn("Failed to remove expired report",
				zap.String("filename", entry.Name()),
				zap.Error(err),
			)
			continue
		}
		removed++
	}

	return removed, nil
}
