package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/arcade/internal/ports/primary"
	"github.com/example/arcade/internal/ports/secondary"
)

// LaunchServiceImpl implements the LaunchService interface.
type LaunchServiceImpl struct {
	gameRepo     secondary.GameRepository
	categoryRepo secondary.CategoryRepository
	launcher     secondary.Launcher
	now          func() time.Time
}

// NewLaunchService creates a new LaunchService with injected dependencies.
func NewLaunchService(
	gameRepo secondary.GameRepository,
	categoryRepo secondary.CategoryRepository,
	launcher secondary.Launcher,
) *LaunchServiceImpl {
	return &LaunchServiceImpl{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
		launcher:     launcher,
		now:          time.Now,
	}
}

// Launch looks up a game, stamps last-played, and starts the executable. The
// timestamp records the attempt: it is written before the process starts and
// stays in place when the launch fails.
func (s *LaunchServiceImpl) Launch(ctx context.Context, req primary.LaunchRequest) (*primary.LaunchResponse, error) {
	category, err := s.categoryRepo.GetByName(ctx, req.Category)
	if err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetByNameAndCategory(ctx, req.Name, category.ID)
	if err != nil {
		return nil, err
	}

	lastPlayed := s.now().UTC().Format(time.RFC3339)
	if err := s.gameRepo.UpdateLastPlayed(ctx, game.ID, lastPlayed); err != nil {
		return nil, fmt.Errorf("failed to stamp last played: %w", err)
	}

	if err := s.launcher.Launch(ctx, game.Executable); err != nil {
		return nil, err
	}

	return &primary.LaunchResponse{
		GameID:     game.ID,
		Executable: game.Executable,
		LastPlayed: lastPlayed,
	}, nil
}

// Ensure LaunchServiceImpl implements the interface.
var _ primary.LaunchService = (*LaunchServiceImpl)(nil)
