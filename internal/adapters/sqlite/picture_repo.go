package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// PictureRepository implements secondary.PictureRepository with SQLite.
// Artwork bytes are stored inline as blobs; grid images are small enough
// that a separate file store is not worth the bookkeeping.
type PictureRepository struct {
	db *sql.DB
}

// NewPictureRepository creates a new SQLite picture repository.
func NewPictureRepository(db *sql.DB) *PictureRepository {
	return &PictureRepository{db: db}
}

// Create persists a new picture.
func (r *PictureRepository) Create(ctx context.Context, picture *secondary.PictureRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO pictures (id, game_id, data) VALUES (?, ?, ?)",
		picture.ID, picture.GameID, picture.Data,
	)
	if err != nil {
		return fmt.Errorf("failed to create picture: %w", err)
	}

	return nil
}

// GetByGame retrieves the picture for a game.
func (r *PictureRepository) GetByGame(ctx context.Context, gameID string) (*secondary.PictureRecord, error) {
	var createdAt time.Time

	record := &secondary.PictureRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, game_id, data, created_at FROM pictures WHERE game_id = ? ORDER BY created_at DESC LIMIT 1",
		gameID,
	).Scan(&record.ID, &record.GameID, &record.Data, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("picture for game %s: %w", gameID, library.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get picture: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// DeleteByGame removes all pictures for a game.
func (r *PictureRepository) DeleteByGame(ctx context.Context, gameID string) (int, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM pictures WHERE game_id = ?", gameID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pictures: %w", err)
	}

	count, _ := result.RowsAffected()
	return int(count), nil
}

// GetNextID returns the next available picture ID.
func (r *PictureRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM pictures",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next picture ID: %w", err)
	}

	return fmt.Sprintf("PIC-%03d", maxID+1), nil
}

// Ensure PictureRepository implements the interface.
var _ secondary.PictureRepository = (*PictureRepository)(nil)
