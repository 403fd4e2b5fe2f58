package services

import (
	"context"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"
)

// MenuService is the public, read-only view of the catalog: active
// categories and available items only.
type MenuService struct {
	categories *repository.CategoryRepository
	items      *repository.FoodItemRepository
}

func NewMenuService(categories *repository.CategoryRepository, items *repository.FoodItemRepository) *MenuService {
	return &MenuService{categories: categories, items: items}
}

func (s *MenuService) Categories(ctx context.Context) ([]entity.Category, error) {
	return s.categories.ListActive(ctx)
}

func (s *MenuService) Items(ctx context.Context, f repository.FoodItemFilter) (repository.Page[entity.FoodItem], error) {
	f.OnlyAvailable = true
	return s.items.List(ctx, f)
}

// Item hides unavailable items and items of inactive categories.
func (s *MenuService) Item(ctx context.Context, id uint) (*entity.FoodItem, error) {
	f, err := s.items.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !f.IsAvailable || !f.Category.CategoryStatus || f.Category.ID == 0 {
		return nil, ErrNotFound
	}
	return f, nil
}
