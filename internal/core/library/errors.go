// Package library contains the pure reconciliation core: the discovery-set
// types, the diff computation between discovered and persisted games, and
// the category classifier. It has no dependencies on storage or transport.
package library

import "errors"

// Error kinds surfaced by catalog operations. Services wrap these with
// fmt.Errorf("...: %w", ...) so callers can test with errors.Is.
var (
	// ErrNotFound indicates a name, category, or id has no matching record.
	ErrNotFound = errors.New("not found")

	// ErrUpstreamUnavailable indicates the artwork lookup service returned
	// a non-success response.
	ErrUpstreamUnavailable = errors.New("artwork service unavailable")

	// ErrArtworkMissing indicates the lookup succeeded but no usable image
	// could be resolved for the game.
	ErrArtworkMissing = errors.New("artwork missing")

	// ErrLaunchFailed indicates the external process failed to start.
	ErrLaunchFailed = errors.New("launch failed")
)
