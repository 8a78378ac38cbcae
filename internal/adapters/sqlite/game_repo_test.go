package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/arcade/internal/adapters/sqlite"
	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// createTestGame is a helper that creates a game with a generated ID.
func createTestGame(t *testing.T, repo *sqlite.GameRepository, ctx context.Context, name, categoryID, executable string) *secondary.GameRecord {
	t.Helper()

	nextID, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}

	game := &secondary.GameRecord{
		ID:              nextID,
		Name:            name,
		CategoryID:      categoryID,
		Executable:      executable,
		GridID:          4242,
		ParentDirectory: library.ParentDirectory(executable),
	}

	err = repo.Create(ctx, game)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	return game
}

func TestGameRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	game := &secondary.GameRecord{
		ID:              "GAME-001",
		Name:            "BeatVR",
		CategoryID:      "CAT-001",
		Executable:      "C:/Games/BeatVR/BeatVR.exe",
		GridID:          1001,
		ParentDirectory: "C:/Games/BeatVR",
	}

	err := repo.Create(ctx, game)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, "GAME-001")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Name != "BeatVR" {
		t.Errorf("expected name 'BeatVR', got '%s'", retrieved.Name)
	}
	if retrieved.GridID != 1001 {
		t.Errorf("expected grid ID 1001, got %d", retrieved.GridID)
	}
	if retrieved.ParentDirectory != "C:/Games/BeatVR" {
		t.Errorf("expected parent directory 'C:/Games/BeatVR', got '%s'", retrieved.ParentDirectory)
	}
	if retrieved.LastPlayed != "" {
		t.Errorf("expected empty last played, got '%s'", retrieved.LastPlayed)
	}
}

func TestGameRepository_Create_DuplicateNameInCategory(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	createTestGame(t, repo, ctx, "BeatVR", "CAT-001", "C:/Games/BeatVR/BeatVR.exe")

	dup := &secondary.GameRecord{
		ID:              "GAME-099",
		Name:            "BeatVR",
		CategoryID:      "CAT-001",
		Executable:      "D:/Other/BeatVR.exe",
		ParentDirectory: "D:/Other",
	}

	err := repo.Create(ctx, dup)
	if err == nil {
		t.Error("expected error for duplicate (name, category) pair")
	}
}

func TestGameRepository_Create_SameNameDifferentCategory(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	seedCategory(t, db, "CAT-002", "PC")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	createTestGame(t, repo, ctx, "Portal", "CAT-001", "C:/VR/Portal/Portal.exe")
	createTestGame(t, repo, ctx, "Portal", "CAT-002", "C:/PC/Portal/Portal.exe")

	games, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(games) != 2 {
		t.Errorf("expected 2 games, got %d", len(games))
	}
}

func TestGameRepository_GetByNameAndCategory(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	seedCategory(t, db, "CAT-002", "PC")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	vr := createTestGame(t, repo, ctx, "Portal", "CAT-001", "C:/VR/Portal/Portal.exe")
	createTestGame(t, repo, ctx, "Portal", "CAT-002", "C:/PC/Portal/Portal.exe")

	retrieved, err := repo.GetByNameAndCategory(ctx, "Portal", "CAT-001")
	if err != nil {
		t.Fatalf("GetByNameAndCategory failed: %v", err)
	}
	if retrieved.ID != vr.ID {
		t.Errorf("expected ID '%s', got '%s'", vr.ID, retrieved.ID)
	}
}

func TestGameRepository_GetByNameAndCategory_WrongCategory(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	seedCategory(t, db, "CAT-002", "PC")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	createTestGame(t, repo, ctx, "BeatVR", "CAT-001", "C:/VR/BeatVR/BeatVR.exe")

	// A name match in another category must not count.
	_, err := repo.GetByNameAndCategory(ctx, "BeatVR", "CAT-002")
	if !errors.Is(err, library.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGameRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "GAME-999")
	if !errors.Is(err, library.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGameRepository_List_SortedByName(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	createTestGame(t, repo, ctx, "Zephyr", "CAT-001", "C:/Games/Zephyr/Zephyr.exe")
	createTestGame(t, repo, ctx, "Aurora", "CAT-001", "C:/Games/Aurora/Aurora.exe")
	createTestGame(t, repo, ctx, "Meridian", "CAT-001", "C:/Games/Meridian/Meridian.exe")

	games, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(games) != 3 {
		t.Fatalf("expected 3 games, got %d", len(games))
	}
	if games[0].Name != "Aurora" || games[1].Name != "Meridian" || games[2].Name != "Zephyr" {
		t.Errorf("expected games sorted by name, got %s, %s, %s",
			games[0].Name, games[1].Name, games[2].Name)
	}
}

func TestGameRepository_ListByCategory(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	seedCategory(t, db, "CAT-002", "PC")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	createTestGame(t, repo, ctx, "BeatVR", "CAT-001", "C:/VR/BeatVR/BeatVR.exe")
	createTestGame(t, repo, ctx, "Quake", "CAT-002", "C:/PC/Quake/Quake.exe")

	games, err := repo.ListByCategory(ctx, "CAT-002")
	if err != nil {
		t.Fatalf("ListByCategory failed: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	if games[0].Name != "Quake" {
		t.Errorf("expected 'Quake', got '%s'", games[0].Name)
	}
}

func TestGameRepository_UpdateExecutable(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	game := createTestGame(t, repo, ctx, "BeatVR", "CAT-001", "C:/Old/BeatVR.exe")

	err := repo.UpdateExecutable(ctx, game.ID, "D:/New/BeatVR/BeatVR.exe", "D:/New/BeatVR")
	if err != nil {
		t.Fatalf("UpdateExecutable failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, game.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.Executable != "D:/New/BeatVR/BeatVR.exe" {
		t.Errorf("expected updated executable, got '%s'", retrieved.Executable)
	}
	if retrieved.ParentDirectory != "D:/New/BeatVR" {
		t.Errorf("expected updated parent directory, got '%s'", retrieved.ParentDirectory)
	}
}

func TestGameRepository_UpdateExecutable_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	err := repo.UpdateExecutable(ctx, "GAME-999", "C:/x.exe", "C:/")
	if !errors.Is(err, library.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGameRepository_UpdateLastPlayed(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	game := createTestGame(t, repo, ctx, "BeatVR", "CAT-001", "C:/Games/BeatVR/BeatVR.exe")

	stamp := time.Now().UTC().Format(time.RFC3339)
	err := repo.UpdateLastPlayed(ctx, game.ID, stamp)
	if err != nil {
		t.Fatalf("UpdateLastPlayed failed: %v", err)
	}

	retrieved, err := repo.GetByID(ctx, game.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if retrieved.LastPlayed == "" {
		t.Error("expected last played to be set")
	}
}

func TestGameRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	game := createTestGame(t, repo, ctx, "Gone", "CAT-001", "C:/Games/Gone/Gone.exe")

	err := repo.Delete(ctx, game.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	_, err = repo.GetByID(ctx, game.ID)
	if !errors.Is(err, library.ErrNotFound) {
		t.Errorf("expected ErrNotFound after deletion, got %v", err)
	}
}

func TestGameRepository_GetNextID(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	id, err := repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if id != "GAME-001" {
		t.Errorf("expected GAME-001, got %s", id)
	}

	createTestGame(t, repo, ctx, "First", "CAT-001", "C:/Games/First/First.exe")

	id, err = repo.GetNextID(ctx)
	if err != nil {
		t.Fatalf("GetNextID failed: %v", err)
	}
	if id != "GAME-002" {
		t.Errorf("expected GAME-002, got %s", id)
	}
}

func TestGameRepository_CategoryExists(t *testing.T) {
	db := setupTestDB(t)
	seedCategory(t, db, "CAT-001", "VR")
	repo := sqlite.NewGameRepository(db)
	ctx := context.Background()

	exists, err := repo.CategoryExists(ctx, "CAT-001")
	if err != nil {
		t.Fatalf("CategoryExists failed: %v", err)
	}
	if !exists {
		t.Error("expected category to exist")
	}

	exists, err = repo.CategoryExists(ctx, "CAT-999")
	if err != nil {
		t.Fatalf("CategoryExists failed: %v", err)
	}
	if exists {
		t.Error("expected category to not exist")
	}
}
