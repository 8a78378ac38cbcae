package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/arcade/internal/ports/secondary"
)

// SyncLogRepository implements secondary.SyncLogRepository with SQLite.
type SyncLogRepository struct {
	db *sql.DB
}

// NewSyncLogRepository creates a new SQLite sync log repository.
func NewSyncLogRepository(db *sql.DB) *SyncLogRepository {
	return &SyncLogRepository{db: db}
}

// Create persists a new sync log entry.
func (r *SyncLogRepository) Create(ctx context.Context, entry *secondary.SyncLogRecord) error {
	var detail sql.NullString
	if entry.Detail != "" {
		detail = sql.NullString{String: entry.Detail, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO sync_log (id, action, game_name, detail) VALUES (?, ?, ?, ?)",
		entry.ID, entry.Action, entry.GameName, detail,
	)
	if err != nil {
		return fmt.Errorf("failed to create sync log entry: %w", err)
	}

	return nil
}

// List retrieves the most recent entries, newest first.
func (r *SyncLogRepository) List(ctx context.Context, limit int) ([]*secondary.SyncLogRecord, error) {
	query := "SELECT id, action, game_name, detail, created_at FROM sync_log ORDER BY created_at DESC, id DESC"
	args := []any{}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sync log entries: %w", err)
	}
	defer rows.Close()

	var entries []*secondary.SyncLogRecord
	for rows.Next() {
		var (
			detail    sql.NullString
			createdAt time.Time
		)

		record := &secondary.SyncLogRecord{}
		err := rows.Scan(&record.ID, &record.Action, &record.GameName, &detail, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sync log entry: %w", err)
		}

		record.Detail = detail.String
		record.CreatedAt = createdAt.Format(time.RFC3339)

		entries = append(entries, record)
	}

	return entries, nil
}

// GetNextID returns the next available log ID.
func (r *SyncLogRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM sync_log",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next sync log ID: %w", err)
	}

	return fmt.Sprintf("LOG-%04d", maxID+1), nil
}

// PruneOlderThan deletes log entries older than the given number of days.
func (r *SyncLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM sync_log WHERE created_at < datetime('now', ?)",
		fmt.Sprintf("-%d days", days),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sync log: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

// Ensure SyncLogRepository implements the interface.
var _ secondary.SyncLogRepository = (*SyncLogRepository)(nil)
