package primary

import "context"

// SyncLogService defines the primary port for the reconciliation audit
// trail.
type SyncLogService interface {
	// ListEntries retrieves the most recent sync log entries, newest
	// first.
	ListEntries(ctx context.Context, limit int) ([]*SyncLogEntry, error)

	// Prune deletes entries older than the given number of days and
	// returns how many were removed.
	Prune(ctx context.Context, days int) (int, error)
}

// SyncLogEntry represents one reconciliation action at the port boundary.
type SyncLogEntry struct {
	ID        string
	Action    string
	GameName  string
	Detail    string
	CreatedAt string
}
