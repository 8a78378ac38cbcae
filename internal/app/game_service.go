// Package app contains the service implementations behind the primary ports.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/arcade/internal/artwork"
	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/primary"
	"github.com/example/arcade/internal/ports/secondary"
)

// GameServiceImpl implements the GameService interface.
type GameServiceImpl struct {
	gameRepo     secondary.GameRepository
	categoryRepo secondary.CategoryRepository
	pictureRepo  secondary.PictureRepository
	artClient    secondary.ArtworkClient
}

// NewGameService creates a new GameService with injected dependencies.
func NewGameService(
	gameRepo secondary.GameRepository,
	categoryRepo secondary.CategoryRepository,
	pictureRepo secondary.PictureRepository,
	artClient secondary.ArtworkClient,
) *GameServiceImpl {
	return &GameServiceImpl{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
		pictureRepo:  pictureRepo,
		artClient:    artClient,
	}
}

// CreateGame creates a game together with its artwork. The artwork is fetched
// and validated before the game row is written; if storing the picture fails
// afterward, the game row is deleted again so the catalog never holds a game
// without artwork.
func (s *GameServiceImpl) CreateGame(ctx context.Context, req primary.CreateGameRequest) (*primary.CreateGameResponse, error) {
	category, err := s.categoryRepo.GetByName(ctx, req.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category '%s': %w", req.Category, err)
	}

	// Idempotent: an existing identity is returned, not recreated.
	if existing, err := s.gameRepo.GetByNameAndCategory(ctx, req.Name, category.ID); err == nil {
		return &primary.CreateGameResponse{
			GameID:  existing.ID,
			Game:    s.recordToGame(existing, category.Name),
			Existed: true,
		}, nil
	} else if !errors.Is(err, library.ErrNotFound) {
		return nil, err
	}

	gridID := req.GridID
	if gridID == 0 {
		gridID, err = s.artClient.SearchByName(ctx, req.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve grid ID for '%s': %w", req.Name, err)
		}
	}

	image, err := s.artClient.FetchImage(ctx, gridID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artwork for '%s': %w", req.Name, err)
	}

	image, err = artwork.Process(image)
	if err != nil {
		return nil, fmt.Errorf("failed to process artwork for '%s': %w", req.Name, err)
	}

	nextID, err := s.gameRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate game ID: %w", err)
	}

	record := &secondary.GameRecord{
		ID:              nextID,
		Name:            req.Name,
		CategoryID:      category.ID,
		Executable:      req.Executable,
		GridID:          gridID,
		ParentDirectory: library.ParentDirectory(req.Executable),
	}

	if err := s.gameRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err := s.storePicture(ctx, nextID, image); err != nil {
		// Roll the game back so creation stays all-or-nothing.
		_ = s.gameRepo.Delete(ctx, nextID)
		return nil, fmt.Errorf("failed to store artwork for '%s': %w", req.Name, err)
	}

	created, err := s.gameRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created game: %w", err)
	}

	return &primary.CreateGameResponse{
		GameID: created.ID,
		Game:   s.recordToGame(created, category.Name),
	}, nil
}

func (s *GameServiceImpl) storePicture(ctx context.Context, gameID string, data []byte) error {
	pictureID, err := s.pictureRepo.GetNextID(ctx)
	if err != nil {
		return fmt.Errorf("failed to generate picture ID: %w", err)
	}

	return s.pictureRepo.Create(ctx, &secondary.PictureRecord{
		ID:     pictureID,
		GameID: gameID,
		Data:   data,
	})
}

// GetGame retrieves a game by its (name, category) identity.
func (s *GameServiceImpl) GetGame(ctx context.Context, name, category string) (*primary.Game, error) {
	categoryRecord, err := s.categoryRepo.GetByName(ctx, category)
	if err != nil {
		return nil, err
	}

	record, err := s.gameRepo.GetByNameAndCategory(ctx, name, categoryRecord.ID)
	if err != nil {
		return nil, err
	}

	return s.recordToGame(record, categoryRecord.Name), nil
}

// ListGames retrieves games matching the given filters.
func (s *GameServiceImpl) ListGames(ctx context.Context, filters primary.GameFilters) ([]*primary.Game, error) {
	categoryNames := make(map[string]string)
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}

	var records []*secondary.GameRecord
	if filters.Category != "" {
		category, err := s.categoryRepo.GetByName(ctx, filters.Category)
		if err != nil {
			return nil, err
		}
		records, err = s.gameRepo.ListByCategory(ctx, category.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list games: %w", err)
		}
	} else {
		records, err = s.gameRepo.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list games: %w", err)
		}
	}

	games := make([]*primary.Game, len(records))
	for i, r := range records {
		games[i] = s.recordToGame(r, categoryNames[r.CategoryID])
	}
	return games, nil
}

// DeleteGame removes a game and its pictures. Pictures go first; the store
// does not cascade.
func (s *GameServiceImpl) DeleteGame(ctx context.Context, name, category string) error {
	categoryRecord, err := s.categoryRepo.GetByName(ctx, category)
	if err != nil {
		return err
	}

	record, err := s.gameRepo.GetByNameAndCategory(ctx, name, categoryRecord.ID)
	if err != nil {
		return err
	}

	if _, err := s.pictureRepo.DeleteByGame(ctx, record.ID); err != nil {
		return fmt.Errorf("failed to delete pictures for '%s': %w", name, err)
	}

	return s.gameRepo.Delete(ctx, record.ID)
}

// GetPicture returns the stored artwork bytes for a game.
func (s *GameServiceImpl) GetPicture(ctx context.Context, name, category string) ([]byte, error) {
	categoryRecord, err := s.categoryRepo.GetByName(ctx, category)
	if err != nil {
		return nil, err
	}

	record, err := s.gameRepo.GetByNameAndCategory(ctx, name, categoryRecord.ID)
	if err != nil {
		return nil, err
	}

	picture, err := s.pictureRepo.GetByGame(ctx, record.ID)
	if err != nil {
		return nil, err
	}

	return picture.Data, nil
}

func (s *GameServiceImpl) recordToGame(r *secondary.GameRecord, categoryName string) *primary.Game {
	return &primary.Game{
		ID:              r.ID,
		Name:            r.Name,
		Category:        categoryName,
		Executable:      r.Executable,
		GridID:          r.GridID,
		LastPlayed:      r.LastPlayed,
		ParentDirectory: r.ParentDirectory,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Ensure GameServiceImpl implements the interface.
var _ primary.GameService = (*GameServiceImpl)(nil)
