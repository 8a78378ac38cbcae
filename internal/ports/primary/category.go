package primary

import "context"

// CategoryService defines the primary port for category operations.
// Categories are administrative: reconciliation creates them on demand but
// never deletes them.
type CategoryService interface {
	// CreateCategory creates a category, returning the existing one if the
	// name is already taken.
	CreateCategory(ctx context.Context, name string) (*Category, error)

	// GetCategory retrieves a category by name.
	GetCategory(ctx context.Context, name string) (*Category, error)

	// ListCategories retrieves all categories with their game counts.
	ListCategories(ctx context.Context) ([]*Category, error)

	// DeleteCategory removes a category. Categories that still own games
	// require force.
	DeleteCategory(ctx context.Context, name string, force bool) error
}

// Category represents a category entity at the port boundary.
type Category struct {
	ID        string
	Name      string
	GameCount int
	CreatedAt string
}
