package secondary

import "context"

// Scanner defines the secondary port for executable discovery in a lookup
// folder.
type Scanner interface {
	// Scan recursively walks a lookup folder and returns candidate game
	// name -> executable path. A missing folder returns an error wrapping
	// library.ErrNotFound; reconciliation counts it and moves on rather
	// than aborting the pass.
	Scan(ctx context.Context, location string) (map[string]string, error)
}
