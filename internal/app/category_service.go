package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/example/arcade/internal/core/library"
	"github.com/example/arcade/internal/ports/primary"
	"github.com/example/arcade/internal/ports/secondary"
)

// CategoryServiceImpl implements the CategoryService interface.
type CategoryServiceImpl struct {
	categoryRepo secondary.CategoryRepository
	gameRepo     secondary.GameRepository
	pictureRepo  secondary.PictureRepository
}

// NewCategoryService creates a new CategoryService with injected dependencies.
func NewCategoryService(
	categoryRepo secondary.CategoryRepository,
	gameRepo secondary.GameRepository,
	pictureRepo secondary.PictureRepository,
) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		categoryRepo: categoryRepo,
		gameRepo:     gameRepo,
		pictureRepo:  pictureRepo,
	}
}

// CreateCategory creates a category, returning the existing one if the name
// is already taken.
func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, name string) (*primary.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("category name must not be empty")
	}

	existing, err := s.categoryRepo.GetByName(ctx, name)
	if err == nil {
		return s.recordToCategory(ctx, existing)
	}
	if !errors.Is(err, library.ErrNotFound) {
		return nil, err
	}

	nextID, err := s.categoryRepo.GetNextID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to generate category ID: %w", err)
	}

	record := &secondary.CategoryRecord{
		ID:   nextID,
		Name: name,
	}

	if err := s.categoryRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	created, err := s.categoryRepo.GetByID(ctx, nextID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch created category: %w", err)
	}

	return s.recordToCategory(ctx, created)
}

// GetCategory retrieves a category by name.
func (s *CategoryServiceImpl) GetCategory(ctx context.Context, name string) (*primary.Category, error) {
	record, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.recordToCategory(ctx, record)
}

// ListCategories retrieves all categories with their game counts.
func (s *CategoryServiceImpl) ListCategories(ctx context.Context) ([]*primary.Category, error) {
	records, err := s.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	categories := make([]*primary.Category, len(records))
	for i, r := range records {
		category, err := s.recordToCategory(ctx, r)
		if err != nil {
			return nil, err
		}
		categories[i] = category
	}
	return categories, nil
}

// DeleteCategory removes a category. A category that still owns games is
// protected unless force is set, in which case its games and their pictures
// are removed with it.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, name string, force bool) error {
	record, err := s.categoryRepo.GetByName(ctx, name)
	if err != nil {
		return err
	}

	count, err := s.categoryRepo.CountGames(ctx, record.ID)
	if err != nil {
		return err
	}

	if count > 0 {
		if !force {
			return fmt.Errorf("category '%s' still has %d game(s); use force to delete them too", name, count)
		}

		games, err := s.gameRepo.ListByCategory(ctx, record.ID)
		if err != nil {
			return fmt.Errorf("failed to list games in category: %w", err)
		}
		for _, game := range games {
			if _, err := s.pictureRepo.DeleteByGame(ctx, game.ID); err != nil {
				return fmt.Errorf("failed to delete pictures for '%s': %w", game.Name, err)
			}
			if err := s.gameRepo.Delete(ctx, game.ID); err != nil {
				return fmt.Errorf("failed to delete game '%s': %w", game.Name, err)
			}
		}
	}

	return s.categoryRepo.Delete(ctx, record.ID)
}

func (s *CategoryServiceImpl) recordToCategory(ctx context.Context, r *secondary.CategoryRecord) (*primary.Category, error) {
	count, err := s.categoryRepo.CountGames(ctx, r.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count games: %w", err)
	}

	return &primary.Category{
		ID:        r.ID,
		Name:      r.Name,
		GameCount: count,
		CreatedAt: r.CreatedAt,
	}, nil
}

// Ensure CategoryServiceImpl implements the interface.
var _ primary.CategoryService = (*CategoryServiceImpl)(nil)
