package app

import (
	"context"
	"fmt"

	"github.com/example/arcade/internal/ports/primary"
	"github.com/example/arcade/internal/ports/secondary"
)

// SyncLogServiceImpl implements the SyncLogService interface.
type SyncLogServiceImpl struct {
	logRepo secondary.SyncLogRepository
}

// NewSyncLogService creates a new SyncLogService with injected dependencies.
func NewSyncLogService(logRepo secondary.SyncLogRepository) *SyncLogServiceImpl {
	return &SyncLogServiceImpl{
		logRepo: logRepo,
	}
}

// ListEntries retrieves the most recent sync log entries, newest first.
func (s *SyncLogServiceImpl) ListEntries(ctx context.Context, limit int) ([]*primary.SyncLogEntry, error) {
	records, err := s.logRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync log: %w", err)
	}

	entries := make([]*primary.SyncLogEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.SyncLogEntry{
			ID:        r.ID,
			Action:    r.Action,
			GameName:  r.GameName,
			Detail:    r.Detail,
			CreatedAt: r.CreatedAt,
		}
	}
	return entries, nil
}

// Prune deletes entries older than the given number of days.
func (s *SyncLogServiceImpl) Prune(ctx context.Context, days int) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("prune days must be positive, got %d", days)
	}
	return s.logRepo.PruneOlderThan(ctx, days)
}

// Ensure SyncLogServiceImpl implements the interface.
var _ primary.SyncLogService = (*SyncLogServiceImpl)(nil)
