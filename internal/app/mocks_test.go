package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/secondary"
)

// ===== Mock Implementations =====
//
// Stateful in-memory fakes shared by the service tests. Each mock keeps just
// enough behavior for the contracts the services rely on: identity lookups,
// sorted listings, and prefixed ID generation.

type mockGameRepo struct {
	games   map[string]*secondary.GameRecord
	counter int
}

func newMockGameRepo() *mockGameRepo {
	return &mockGameRepo{games: make(map[string]*secondary.GameRecord)}
}

func (m *mockGameRepo) Create(ctx context.Context, game *secondary.GameRecord) error {
	for _, g := range m.games {
		if g.Name == game.Name && g.CategoryID == game.CategoryID {
			return fmt.Errorf("UNIQUE constraint failed: games.name, games.category_id")
		}
	}
	copied := *game
	m.games[game.ID] = &copied
	return nil
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*secondary.GameRecord, error) {
	game, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("game %s: %w", id, library.ErrNotFound)
	}
	copied := *game
	return &copied, nil
}

func (m *mockGameRepo) GetByNameAndCategory(ctx context.Context, name, categoryID string) (*secondary.GameRecord, error) {
	for _, g := range m.games {
		if g.Name == name && g.CategoryID == categoryID {
			copied := *g
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("game '%s': %w", name, library.ErrNotFound)
}

func (m *mockGameRepo) List(ctx context.Context) ([]*secondary.GameRecord, error) {
	var records []*secondary.GameRecord
	for _, g := range m.games {
		copied := *g
		records = append(records, &copied)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (m *mockGameRepo) ListByCategory(ctx context.Context, categoryID string) ([]*secondary.GameRecord, error) {
	var records []*secondary.GameRecord
	for _, g := range m.games {
		if g.CategoryID == categoryID {
			copied := *g
			records = append(records, &copied)
		}
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (m *mockGameRepo) UpdateExecutable(ctx context.Context, id, executable, parentDirectory string) error {
	game, ok := m.games[id]
	if !ok {
		return fmt.Errorf("game %s: %w", id, library.ErrNotFound)
	}
	game.Executable = executable
	game.ParentDirectory = parentDirectory
	return nil
}

func (m *mockGameRepo) UpdateLastPlayed(ctx context.Context, id, lastPlayed string) error {
	game, ok := m.games[id]
	if !ok {
		return fmt.Errorf("game %s: %w", id, library.ErrNotFound)
	}
	game.LastPlayed = lastPlayed
	return nil
}

func (m *mockGameRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("game %s: %w", id, library.ErrNotFound)
	}
	delete(m.games, id)
	return nil
}

func (m *mockGameRepo) GetNextID(ctx context.Context) (string, error) {
	m.counter++
	return fmt.Sprintf("GAME-%03d", m.counter), nil
}

func (m *mockGameRepo) CategoryExists(ctx context.Context, categoryID string) (bool, error) {
	return true, nil
}

type mockCategoryRepo struct {
	categories map[string]*secondary.CategoryRecord
	gameRepo   *mockGameRepo
	counter    int
}

func newMockCategoryRepo(gameRepo *mockGameRepo) *mockCategoryRepo {
	return &mockCategoryRepo{
		categories: make(map[string]*secondary.CategoryRecord),
		gameRepo:   gameRepo,
	}
}

func (m *mockCategoryRepo) Create(ctx context.Context, category *secondary.CategoryRecord) error {
	for _, c := range m.categories {
		if c.Name == category.Name {
			return fmt.Errorf("UNIQUE constraint failed: categories.name")
		}
	}
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*secondary.CategoryRecord, error) {
	category, ok := m.categories[id]
	if !ok {
		return nil, fmt.Errorf("category %s: %w", id, library.ErrNotFound)
	}
	copied := *category
	return &copied, nil
}

func (m *mockCategoryRepo) GetByName(ctx context.Context, name string) (*secondary.CategoryRecord, error) {
	for _, c := range m.categories {
		if c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("category '%s': %w", name, library.ErrNotFound)
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*secondary.CategoryRecord, error) {
	var records []*secondary.CategoryRecord
	for _, c := range m.categories {
		copied := *c
		records = append(records, &copied)
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Name < records[j].Name })
	return records, nil
}

func (m *mockCategoryRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.categories[id]; !ok {
		return fmt.Errorf("category %s: %w", id, library.ErrNotFound)
	}
	delete(m.categories, id)
	return nil
}

func (m *mockCategoryRepo) CountGames(ctx context.Context, categoryID string) (int, error) {
	count := 0
	for _, g := range m.gameRepo.games {
		if g.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (m *mockCategoryRepo) GetNextID(ctx context.Context) (string, error) {
	m.counter++
	return fmt.Sprintf("CAT-%03d", m.counter), nil
}

type mockPictureRepo struct {
	pictures  map[string]*secondary.PictureRecord
	counter   int
	createErr error // set to force Create failures
}

func newMockPictureRepo() *mockPictureRepo {
	return &mockPictureRepo{pictures: make(map[string]*secondary.PictureRecord)}
}

func (m *mockPictureRepo) Create(ctx context.Context, picture *secondary.PictureRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	copied := *picture
	m.pictures[picture.ID] = &copied
	return nil
}

func (m *mockPictureRepo) GetByGame(ctx context.Context, gameID string) (*secondary.PictureRecord, error) {
	for _, p := range m.pictures {
		if p.GameID == gameID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("picture for game %s: %w", gameID, library.ErrNotFound)
}

func (m *mockPictureRepo) DeleteByGame(ctx context.Context, gameID string) (int, error) {
	deleted := 0
	for id, p := range m.pictures {
		if p.GameID == gameID {
			delete(m.pictures, id)
			deleted++
		}
	}
	return deleted, nil
}

func (m *mockPictureRepo) GetNextID(ctx context.Context) (string, error) {
	m.counter++
	return fmt.Sprintf("PIC-%03d", m.counter), nil
}

type mockFolderRepo struct {
	folders []*secondary.FolderRecord
	counter int
}

func newMockFolderRepo() *mockFolderRepo {
	return &mockFolderRepo{}
}

func (m *mockFolderRepo) Create(ctx context.Context, folder *secondary.FolderRecord) error {
	for _, f := range m.folders {
		if f.Location == folder.Location {
			return fmt.Errorf("UNIQUE constraint failed: lookup_folders.location")
		}
	}
	copied := *folder
	m.folders = append(m.folders, &copied)
	return nil
}

func (m *mockFolderRepo) GetByLocation(ctx context.Context, location string) (*secondary.FolderRecord, error) {
	for _, f := range m.folders {
		if f.Location == location {
			copied := *f
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("lookup folder '%s': %w", location, library.ErrNotFound)
}

func (m *mockFolderRepo) List(ctx context.Context) ([]*secondary.FolderRecord, error) {
	records := make([]*secondary.FolderRecord, len(m.folders))
	for i, f := range m.folders {
		copied := *f
		records[i] = &copied
	}
	return records, nil
}

func (m *mockFolderRepo) Delete(ctx context.Context, id string) error {
	for i, f := range m.folders {
		if f.ID == id {
			m.folders = append(m.folders[:i], m.folders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("lookup folder %s: %w", id, library.ErrNotFound)
}

func (m *mockFolderRepo) GetNextID(ctx context.Context) (string, error) {
	m.counter++
	return fmt.Sprintf("DIR-%03d", m.counter), nil
}

type mockSyncLogRepo struct {
	entries []*secondary.SyncLogRecord
	counter int
}

func newMockSyncLogRepo() *mockSyncLogRepo {
	return &mockSyncLogRepo{}
}

func (m *mockSyncLogRepo) Create(ctx context.Context, entry *secondary.SyncLogRecord) error {
	copied := *entry
	m.entries = append(m.entries, &copied)
	return nil
}

func (m *mockSyncLogRepo) List(ctx context.Context, limit int) ([]*secondary.SyncLogRecord, error) {
	records := make([]*secondary.SyncLogRecord, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		copied := *m.entries[i]
		records = append(records, &copied)
		if limit > 0 && len(records) == limit {
			break
		}
	}
	return records, nil
}

func (m *mockSyncLogRepo) GetNextID(ctx context.Context) (string, error) {
	m.counter++
	return fmt.Sprintf("LOG-%04d", m.counter), nil
}

func (m *mockSyncLogRepo) PruneOlderThan(ctx context.Context, days int) (int, error) {
	return 0, nil
}

// actions returns the recorded (action, game name) pairs in write order.
func (m *mockSyncLogRepo) actions() []string {
	result := make([]string, len(m.entries))
	for i, e := range m.entries {
		result[i] = e.Action + " " + e.GameName
	}
	return result
}

// mockScanner serves canned scan results per location. Locations listed in
// missing return ErrNotFound like a deleted folder would.
type mockScanner struct {
	results map[string]map[string]string
	missing map[string]bool
}

func newMockScanner() *mockScanner {
	return &mockScanner{
		results: make(map[string]map[string]string),
		missing: make(map[string]bool),
	}
}

func (m *mockScanner) Scan(ctx context.Context, location string) (map[string]string, error) {
	if m.missing[location] {
		return nil, fmt.Errorf("lookup folder '%s': %w", location, library.ErrNotFound)
	}
	found := make(map[string]string)
	for name, executable := range m.results[location] {
		found[name] = executable
	}
	return found, nil
}

// mockArtworkClient resolves names and images from fixed tables. Names
// absent from gridIDs are misses; down makes every call an upstream failure.
type mockArtworkClient struct {
	gridIDs     map[string]int64
	images      map[int64][]byte
	down        bool
	searchCalls int
	fetchCalls  int
}

func newMockArtworkClient() *mockArtworkClient {
	return &mockArtworkClient{
		gridIDs: make(map[string]int64),
		images:  make(map[int64][]byte),
	}
}

func (m *mockArtworkClient) SearchByName(ctx context.Context, name string) (int64, error) {
	m.searchCalls++
	if m.down {
		return 0, fmt.Errorf("search '%s': %w", name, library.ErrUpstreamUnavailable)
	}
	id, ok := m.gridIDs[name]
	if !ok {
		return 0, fmt.Errorf("no exact match for '%s': %w", name, library.ErrNotFound)
	}
	return id, nil
}

func (m *mockArtworkClient) FetchImage(ctx context.Context, gridID int64) ([]byte, error) {
	m.fetchCalls++
	if m.down {
		return nil, fmt.Errorf("fetch grid %d: %w", gridID, library.ErrUpstreamUnavailable)
	}
	image, ok := m.images[gridID]
	if !ok {
		return nil, fmt.Errorf("no artwork for grid %d: %w", gridID, library.ErrArtworkMissing)
	}
	return image, nil
}

// mockLauncher records launch calls and optionally fails them.
type mockLauncher struct {
	launched []string
	fail     bool
}

func (m *mockLauncher) Launch(ctx context.Context, executable string) error {
	if m.fail {
		return fmt.Errorf("failed to start '%s': %w", executable, library.ErrLaunchFailed)
	}
	m.launched = append(m.launched, executable)
	return nil
}
