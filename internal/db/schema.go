package db

import "fmt"

// SchemaSQL is the complete schema for fresh arcade installs. It is the
// single source of truth: repository tests create their in-memory databases
// from GetSchemaSQL() so that any drift between repository code and schema
// fails immediately with "no such column".
//
// Keep this in sync with the migrations in migrations.go when adding new
// columns or tables.
const SchemaSQL = `
-- Categories (e.g. 'VR', 'PC'); never auto-deleted by reconciliation
CREATE TABLE IF NOT EXISTS categories (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Games; identity is the (name, category) pair
CREATE TABLE IF NOT EXISTS games (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category_id TEXT NOT NULL,
	executable TEXT NOT NULL,
	grid_id INTEGER NOT NULL DEFAULT 0,
	last_played DATETIME,
	parent_directory TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (category_id) REFERENCES categories(id),
	UNIQUE(name, category_id)
);

-- Pictures (raw artwork bytes); owned by games, deleted explicitly with them
CREATE TABLE IF NOT EXISTS pictures (
	id TEXT PRIMARY KEY,
	game_id TEXT NOT NULL,
	data BLOB NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (game_id) REFERENCES games(id)
);

-- Lookup folders scanned by reconciliation; managed only via the CLI
CREATE TABLE IF NOT EXISTS lookup_folders (
	id TEXT PRIMARY KEY,
	location TEXT NOT NULL UNIQUE,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Reconciliation audit trail; immutable, prunable by age
CREATE TABLE IF NOT EXISTS sync_log (
	id TEXT PRIMARY KEY,
	action TEXT NOT NULL CHECK(action IN ('insert', 'update', 'remove', 'skip')),
	game_name TEXT NOT NULL,
	detail TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_games_name ON games(name);
CREATE INDEX IF NOT EXISTS idx_games_category ON games(category_id);
CREATE INDEX IF NOT EXISTS idx_pictures_game ON pictures(game_id);
CREATE INDEX IF NOT EXISTS idx_sync_log_created ON sync_log(created_at DESC);
`

// GetSchemaSQL returns the schema DDL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates all tables if they don't exist and runs pending
// migrations.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return RunMigrations()
}
