package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// FolderRepository implements secondary.FolderRepository with SQLite.
type FolderRepository struct {
	db *sql.DB
}

// NewFolderRepository creates a new SQLite lookup-folder repository.
func NewFolderRepository(db *sql.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

// Create persists a new lookup folder.
func (r *FolderRepository) Create(ctx context.Context, folder *secondary.FolderRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO lookup_folders (id, location) VALUES (?, ?)",
		folder.ID, folder.Location,
	)
	if err != nil {
		return fmt.Errorf("failed to create lookup folder: %w", err)
	}

	return nil
}

// GetByLocation retrieves a lookup folder by its location.
func (r *FolderRepository) GetByLocation(ctx context.Context, location string) (*secondary.FolderRecord, error) {
	var createdAt time.Time

	record := &secondary.FolderRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, location, created_at FROM lookup_folders WHERE location = ?",
		location,
	).Scan(&record.ID, &record.Location, &createdAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("lookup folder '%s': %w", location, library.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lookup folder: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all lookup folders in registration order.
func (r *FolderRepository) List(ctx context.Context) ([]*secondary.FolderRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, location, created_at FROM lookup_folders ORDER BY id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookup folders: %w", err)
	}
	defer rows.Close()

	var folders []*secondary.FolderRecord
	for rows.Next() {
		var createdAt time.Time

		record := &secondary.FolderRecord{}
		err := rows.Scan(&record.ID, &record.Location, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lookup folder: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)

		folders = append(folders, record)
	}

	return folders, nil
}

// Delete removes a lookup folder from persistence.
func (r *FolderRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM lookup_folders WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete lookup folder: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("lookup folder %s: %w", id, library.ErrNotFound)
	}

	return nil
}

// GetNextID returns the next available folder ID.
func (r *FolderRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM lookup_folders",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next folder ID: %w", err)
	}

	return fmt.Sprintf("DIR-%03d", maxID+1), nil
}

// Ensure FolderRepository implements the interface.
var _ secondary.FolderRepository = (*FolderRepository)(nil)
