package services

import (
	"context"
	"strings"

	"hotel-backoffice/models"
)

type CategoryService struct {
	Categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{Categories: categories}
}

func (s *CategoryService) Create(ctx context.Context, name string, amenities []string) (*models.Category, error) {
	category := &models.Category{
		Name:      strings.TrimSpace(name),
		Amenities: amenities,
		Rooms:     []models.Room{},
	}
	if err := s.Categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetAll returns every category with its rooms populated.
func (s *CategoryService) GetAll(ctx context.Context) ([]models.Category, error) {
	return s.Categories.FindAll(ctx)
}
