// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// external systems.
package secondary

import "context"

// GameRepository defines the secondary port for game persistence.
type GameRepository interface {
	// Create persists a new game.
	Create(ctx context.Context, game *GameRecord) error

	// GetByID retrieves a game by its ID.
	GetByID(ctx context.Context, id string) (*GameRecord, error)

	// GetByNameAndCategory retrieves a game by its (name, category)
	// identity. Both conditions apply as a compound predicate.
	GetByNameAndCategory(ctx context.Context, name, categoryID string) (*GameRecord, error)

	// List retrieves all games ordered by name.
	List(ctx context.Context) ([]*GameRecord, error)

	// ListByCategory retrieves all games in a category ordered by name.
	ListByCategory(ctx context.Context, categoryID string) ([]*GameRecord, error)

	// UpdateExecutable updates the executable path and the recomputed
	// parent directory for a game.
	UpdateExecutable(ctx context.Context, id, executable, parentDirectory string) error

	// UpdateLastPlayed sets the last-played timestamp for a game.
	UpdateLastPlayed(ctx context.Context, id, lastPlayed string) error

	// Delete removes a game from persistence. Pictures are owned by the
	// game and must be deleted explicitly by the caller first; the store
	// does not cascade.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available game ID.
	GetNextID(ctx context.Context) (string, error)

	// CategoryExists checks if a category exists (for validation).
	CategoryExists(ctx context.Context, categoryID string) (bool, error)
}

// GameRecord represents a game as stored in persistence.
type GameRecord struct {
	ID              string
	Name            string
	CategoryID      string
	Executable      string
	GridID          int64  // external catalog identifier; 0 means unresolved
	LastPlayed      string // Empty string means null
	ParentDirectory string // derived from Executable
	CreatedAt       string
	UpdatedAt       string
}

// CategoryRepository defines the secondary port for category persistence.
// Categories are never deleted by reconciliation, only by explicit
// administration.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *CategoryRecord) error

	// GetByID retrieves a category by its ID.
	GetByID(ctx context.Context, id string) (*CategoryRecord, error)

	// GetByName retrieves a category by its unique name.
	GetByName(ctx context.Context, name string) (*CategoryRecord, error)

	// List retrieves all categories ordered by name.
	List(ctx context.Context) ([]*CategoryRecord, error)

	// Delete removes a category from persistence.
	Delete(ctx context.Context, id string) error

	// CountGames returns the number of games in a category.
	CountGames(ctx context.Context, categoryID string) (int, error)

	// GetNextID returns the next available category ID.
	GetNextID(ctx context.Context) (string, error)
}

// CategoryRecord represents a category as stored in persistence.
type CategoryRecord struct {
	ID        string
	Name      string
	CreatedAt string
	UpdatedAt string
}

// PictureRepository defines the secondary port for picture persistence.
type PictureRepository interface {
	// Create persists a new picture.
	Create(ctx context.Context, picture *PictureRecord) error

	// GetByGame retrieves the picture for a game.
	GetByGame(ctx context.Context, gameID string) (*PictureRecord, error)

	// DeleteByGame removes all pictures for a game and returns how many
	// were deleted.
	DeleteByGame(ctx context.Context, gameID string) (int, error)

	// GetNextID returns the next available picture ID.
	GetNextID(ctx context.Context) (string, error)
}

// PictureRecord represents a picture as stored in persistence.
type PictureRecord struct {
	ID        string
	GameID    string
	Data      []byte
	CreatedAt string
}

// FolderRepository defines the secondary port for lookup-folder persistence.
// Folders are created/removed only through explicit configuration, never by
// reconciliation.
type FolderRepository interface {
	// Create persists a new lookup folder.
	Create(ctx context.Context, folder *FolderRecord) error

	// GetByLocation retrieves a lookup folder by its location.
	GetByLocation(ctx context.Context, location string) (*FolderRecord, error)

	// List retrieves all lookup folders in registration order.
	List(ctx context.Context) ([]*FolderRecord, error)

	// Delete removes a lookup folder from persistence.
	Delete(ctx context.Context, id string) error

	// GetNextID returns the next available folder ID.
	GetNextID(ctx context.Context) (string, error)
}

// FolderRecord represents a lookup folder as stored in persistence.
type FolderRecord struct {
	ID        string
	Location  string
	CreatedAt string
}

// SyncLogRepository defines the secondary port for the reconciliation audit
// trail. Entries are immutable; old entries can be pruned.
type SyncLogRepository interface {
	// Create persists a new sync log entry.
	Create(ctx context.Context, entry *SyncLogRecord) error

	// List retrieves the most recent entries, newest first.
	List(ctx context.Context, limit int) ([]*SyncLogRecord, error)

	// GetNextID returns the next available log ID.
	GetNextID(ctx context.Context) (string, error)

	// PruneOlderThan deletes entries older than the given number of days.
	// Returns the number of deleted entries.
	PruneOlderThan(ctx context.Context, days int) (int, error)
}

// SyncLogRecord represents one reconciliation action as stored in
// persistence.
type SyncLogRecord struct {
	ID        string
	Action    string // 'insert', 'update', 'remove', 'skip'
	GameName  string
	Detail    string // Empty string means null
	CreatedAt string
}
