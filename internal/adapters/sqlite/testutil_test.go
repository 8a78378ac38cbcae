// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup goes through setupTestDB, which loads db.GetSchemaSQL() so
// tests always run against the authoritative schema. Do not hardcode CREATE
// TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/arcade/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	_, err = testDB.Exec(db.GetSchemaSQL())
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCategory inserts a test category and returns its ID.
func seedCategory(t *testing.T, db *sql.DB, id, name string) string {
	t.Helper()
	if id == "" {
		id = "CAT-001"
	}
	if name == "" {
		name = "VR"
	}
	_, err := db.Exec("INSERT INTO categories (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		t.Fatalf("failed to seed category: %v", err)
	}
	return id
}

// seedGame inserts a test game and returns its ID.
func seedGame(t *testing.T, db *sql.DB, id, categoryID, name, executable string) string {
	t.Helper()
	if id == "" {
		id = "GAME-001"
	}
	if categoryID == "" {
		categoryID = "CAT-001"
	}
	if name == "" {
		name = "Test Game"
	}
	if executable == "" {
		executable = "C:/Games/Test Game/game.exe"
	}
	_, err := db.Exec(
		"INSERT INTO games (id, name, category_id, executable, grid_id, parent_directory) VALUES (?, ?, ?, ?, 0, ?)",
		id, name, categoryID, executable, "C:/Games/Test Game",
	)
	if err != nil {
		t.Fatalf("failed to seed game: %v", err)
	}
	return id
}
