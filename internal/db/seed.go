package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/example/arcade/internal/core/library"
)

// SeedCategories inserts the two default categories if they are missing.
// Safe to run repeatedly; `arcade init` calls it on every invocation.
func SeedCategories(database *sql.DB) error {
	now := time.Now().Format(time.RFC3339)

	defaults := []struct{ id, name string }{
		{"CAT-001", library.CategoryVR},
		{"CAT-002", library.CategoryPC},
	}
	for _, c := range defaults {
		if _, err := database.Exec(
			"INSERT OR IGNORE INTO categories (id, name, created_at) VALUES (?, ?, ?)",
			c.id, c.name, now,
		); err != nil {
			return fmt.Errorf("seed category %s: %w", c.name, err)
		}
	}

	return nil
}
