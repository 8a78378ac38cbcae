// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// GameRepository implements secondary.GameRepository with SQLite.
type GameRepository struct {
	db *sql.DB
}

// NewGameRepository creates a new SQLite game repository.
func NewGameRepository(db *sql.DB) *GameRepository {
	return &GameRepository{db: db}
}

// Create persists a new game.
func (r *GameRepository) Create(ctx context.Context, game *secondary.GameRecord) error {
	var lastPlayed sql.NullString
	if game.LastPlayed != "" {
		lastPlayed = sql.NullString{String: game.LastPlayed, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO games (id, name, category_id, executable, grid_id, last_played, parent_directory) VALUES (?, ?, ?, ?, ?, ?, ?)",
		game.ID, game.Name, game.CategoryID, game.Executable, game.GridID, lastPlayed, game.ParentDirectory,
	)
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	return nil
}

const gameColumns = "id, name, category_id, executable, grid_id, last_played, parent_directory, created_at, updated_at"

func scanGame(scan func(dest ...any) error) (*secondary.GameRecord, error) {
	var (
		lastPlayed sql.NullTime
		createdAt  time.Time
		updatedAt  time.Time
	)

	record := &secondary.GameRecord{}
	err := scan(&record.ID, &record.Name, &record.CategoryID, &record.Executable,
		&record.GridID, &lastPlayed, &record.ParentDirectory, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if lastPlayed.Valid {
		record.LastPlayed = lastPlayed.Time.Format(time.RFC3339)
	}
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// GetByID retrieves a game by its ID.
func (r *GameRepository) GetByID(ctx context.Context, id string) (*secondary.GameRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+gameColumns+" FROM games WHERE id = ?", id,
	)

	record, err := scanGame(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game %s: %w", id, library.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return record, nil
}

// GetByNameAndCategory retrieves a game by its (name, category) identity.
// Both conditions apply together; a name match in another category does not
// count.
func (r *GameRepository) GetByNameAndCategory(ctx context.Context, name, categoryID string) (*secondary.GameRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+gameColumns+" FROM games WHERE name = ? AND category_id = ?",
		name, categoryID,
	)

	record, err := scanGame(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("game '%s': %w", name, library.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return record, nil
}

// List retrieves all games ordered by name.
func (r *GameRepository) List(ctx context.Context) ([]*secondary.GameRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+gameColumns+" FROM games ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	return collectGames(rows)
}

// ListByCategory retrieves all games in a category ordered by name.
func (r *GameRepository) ListByCategory(ctx context.Context, categoryID string) ([]*secondary.GameRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+gameColumns+" FROM games WHERE category_id = ? ORDER BY name ASC",
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	defer rows.Close()

	return collectGames(rows)
}

func collectGames(rows *sql.Rows) ([]*secondary.GameRecord, error) {
	var games []*secondary.GameRecord
	for rows.Next() {
		record, err := scanGame(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan game: %w", err)
		}
		games = append(games, record)
	}

	return games, nil
}

// UpdateExecutable updates the executable path and parent directory for a game.
func (r *GameRepository) UpdateExecutable(ctx context.Context, id, executable, parentDirectory string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE games SET executable = ?, parent_directory = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		executable, parentDirectory, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update game executable: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("game %s: %w", id, library.ErrNotFound)
	}

	return nil
}

// UpdateLastPlayed sets the last-played timestamp for a game.
func (r *GameRepository) UpdateLastPlayed(ctx context.Context, id, lastPlayed string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE games SET last_played = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		lastPlayed, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update last played: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("game %s: %w", id, library.ErrNotFound)
	}

	return nil
}

// Delete removes a game from persistence. The caller deletes the game's
// pictures first; the store does not cascade.
func (r *GameRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM games WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("game %s: %w", id, library.ErrNotFound)
	}

	return nil
}

// GetNextID returns the next available game ID.
func (r *GameRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 6) AS INTEGER)), 0) FROM games",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next game ID: %w", err)
	}

	return fmt.Sprintf("GAME-%03d", maxID+1), nil
}

// CategoryExists checks if a category exists (for validation).
func (r *GameRepository) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories WHERE id = ?", categoryID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return count > 0, nil
}

// Ensure GameRepository implements the interface.
var _ secondary.GameRepository = (*GameRepository)(nil)
