package secondary

import "context"

// ArtworkClient defines the secondary port for the external artwork catalog
// (SteamGridDB).
type ArtworkClient interface {
	// SearchByName queries the catalog's autocomplete search and returns
	// the identifier of the result whose name matches exactly. Returns an
	// error wrapping library.ErrNotFound when no result matches exactly,
	// and library.ErrUpstreamUnavailable on non-success responses.
	SearchByName(ctx context.Context, name string) (int64, error)

	// FetchImage returns the raw grid image bytes for an identifier.
	// Returns an error wrapping library.ErrArtworkMissing when the catalog
	// has no usable image, and library.ErrUpstreamUnavailable on
	// non-success responses.
	FetchImage(ctx context.Context, gridID int64) ([]byte, error)
}
