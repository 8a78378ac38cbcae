package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// CategoryRepository implements secondary.CategoryRepository with SQLite.
type CategoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new SQLite category repository.
func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category.
func (r *CategoryRepository) Create(ctx context.Context, category *secondary.CategoryRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO categories (id, name) VALUES (?, ?)",
		category.ID, category.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its ID.
func (r *CategoryRepository) GetByID(ctx context.Context, id string) (*secondary.CategoryRecord, error) {
	var createdAt, updatedAt time.Time

	record := &secondary.CategoryRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM categories WHERE id = ?",
		id,
	).Scan(&record.ID, &record.Name, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category %s: %w", id, library.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// GetByName retrieves a category by its unique name.
func (r *CategoryRepository) GetByName(ctx context.Context, name string) (*secondary.CategoryRecord, error) {
	var createdAt, updatedAt time.Time

	record := &secondary.CategoryRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT id, name, created_at, updated_at FROM categories WHERE name = ?",
		name,
	).Scan(&record.ID, &record.Name, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("category '%s': %w", name, library.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// List retrieves all categories ordered by name.
func (r *CategoryRepository) List(ctx context.Context) ([]*secondary.CategoryRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, name, created_at, updated_at FROM categories ORDER BY name ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []*secondary.CategoryRecord
	for rows.Next() {
		var createdAt, updatedAt time.Time

		record := &secondary.CategoryRecord{}
		err := rows.Scan(&record.ID, &record.Name, &createdAt, &updatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		record.CreatedAt = createdAt.Format(time.RFC3339)
		record.UpdatedAt = updatedAt.Format(time.RFC3339)

		categories = append(categories, record)
	}

	return categories, nil
}

// Delete removes a category from persistence.
func (r *CategoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM categories WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("category %s: %w", id, library.ErrNotFound)
	}

	return nil
}

// CountGames returns the number of games in a category.
func (r *CategoryRepository) CountGames(ctx context.Context, categoryID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM games WHERE category_id = ?", categoryID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}

// GetNextID returns the next available category ID.
func (r *CategoryRepository) GetNextID(ctx context.Context) (string, error) {
	var maxID int
	err := r.db.QueryRowContext(ctx,
		"SELECT COALESCE(MAX(CAST(SUBSTR(id, 5) AS INTEGER)), 0) FROM categories",
	).Scan(&maxID)
	if err != nil {
		return "", fmt.Errorf("failed to get next category ID: %w", err)
	}

	return fmt.Sprintf("CAT-%03d", maxID+1), nil
}

// Ensure CategoryRepository implements the interface.
var _ secondary.CategoryRepository = (*CategoryRepository)(nil)
