package primary

import "context"

// SyncService defines the primary port for library reconciliation.
type SyncService interface {
	// Reconcile runs one full pass: discover executables in every lookup
	// folder, match candidates against the artwork catalog, diff the
	// result against the persisted catalog, and apply the plan. Running it
	// twice with no filesystem or catalog changes produces no further
	// mutations.
	Reconcile(ctx context.Context) (*SyncReport, error)
}

// MatchResult records one candidate's catalog lookup during a pass.
type MatchResult struct {
	Name    string
	GridID  int64
	Matched bool
	Detail  string // failure detail for unmatched candidates
}

// SyncReport summarizes one reconciliation pass.
type SyncReport struct {
	FoldersScanned int
	FoldersMissing int
	Discovered     int // candidate executables found on disk
	Matches        []MatchResult
	Inserted       []string
	Updated        []string
	Removed        []string
	Skipped        []MatchResult // matched candidates whose insertion failed
	// UpstreamOutage is set when every candidate lookup failed with an
	// upstream error, indicating a systemic outage rather than individual
	// misses.
	UpstreamOutage bool
}

// Mutations reports the total number of store mutations the pass applied.
func (r *SyncReport) Mutations() int {
	return len(r.Inserted) + len(r.Updated) + len(r.Removed)
}
