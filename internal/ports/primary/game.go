// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI talks to.
package primary

import "context"

// GameService defines the primary port for game catalog operations.
type GameService interface {
	// CreateGame creates a game together with its artwork. Creation is
	// all-or-nothing: either both the game and its picture exist
	// afterward, or neither does. Creating a game whose (name, category)
	// identity already exists returns the existing game.
	CreateGame(ctx context.Context, req CreateGameRequest) (*CreateGameResponse, error)

	// GetGame retrieves a game by its (name, category) identity.
	GetGame(ctx context.Context, name, category string) (*Game, error)

	// ListGames retrieves games matching the given filters.
	ListGames(ctx context.Context, filters GameFilters) ([]*Game, error)

	// DeleteGame removes a game and its pictures.
	DeleteGame(ctx context.Context, name, category string) error

	// GetPicture returns the stored artwork bytes for a game.
	GetPicture(ctx context.Context, name, category string) ([]byte, error)
}

// CreateGameRequest contains parameters for creating a game.
type CreateGameRequest struct {
	Name       string
	Category   string
	Executable string
	GridID     int64 // 0 means resolve via the artwork catalog
}

// CreateGameResponse contains the result of creating a game.
type CreateGameResponse struct {
	GameID  string
	Game    *Game
	Existed bool // true when the identity already existed and was returned
}

// GameFilters contains filter options for querying games.
type GameFilters struct {
	Category string
}

// Game represents a game entity at the port boundary.
type Game struct {
	ID              string
	Name            string
	Category        string
	Executable      string
	GridID          int64
	LastPlayed      string // Empty string means never played
	ParentDirectory string
	CreatedAt       string
	UpdatedAt       string
}
