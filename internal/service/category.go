package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/greenmart/pos/internal/models"
	"github.com/greenmart/pos/internal/repo"
)

type CategoryService struct {
	Repo *repo.GormRepo
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	return s.Repo.GetCategories(ctx)
}

func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name required", ErrValidation)
	}

	if _, err := s.Repo.GetCategoryByName(ctx, name); err == nil {
		return nil, fmt.Errorf("%w: category already exists", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return s.Repo.CreateCategory(ctx, &models.Category{Name: name})
}

func (s *CategoryService) RenameCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name required", ErrValidation)
	}

	// Products keep their free-string category name; a rename does not cascade.
	return s.Repo.RenameCategory(ctx, id, name)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	return s.Repo.DeleteCategory(ctx, id)
}
