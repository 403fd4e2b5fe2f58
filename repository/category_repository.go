package repository

import (
	"context"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

type CategoryFilter struct {
	Search string
	Sort   string // name | name_desc | discount | discount_desc
	Page   int
	Limit  int
}

var categorySorts = map[string]string{
	"name":          "category_name ASC",
	"name_desc":     "category_name DESC",
	"discount":      "category_discount ASC",
	"discount_desc": "category_discount DESC",
}

func (r *CategoryRepository) List(ctx context.Context, f CategoryFilter) (Page[entity.Category], error) {
	page, limit := NormalizePage(f.Page, f.Limit)

	q := r.DB.WithContext(ctx).Model(&entity.Category{})
	if f.Search != "" {
		q = q.Where("LOWER(category_name) LIKE ?", likePattern(f.Search))
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[entity.Category]{}, err
	}

	order, ok := categorySorts[f.Sort]
	if !ok {
		order = categorySorts["name"]
	}
	var items []entity.Category
	if err := q.Order(order).Order("id ASC").Scopes(paginate(page, limit)).Find(&items).Error; err != nil {
		return Page[entity.Category]{}, err
	}
	return NewPage(items, page, limit, total), nil
}

// ListActive feeds the public menu.
func (r *CategoryRepository) ListActive(ctx context.Context) ([]entity.Category, error) {
	var items []entity.Category
	err := r.DB.WithContext(ctx).
		Where("category_status = ?", true).
		Order("category_name ASC").
		Find(&items).Error
	return items, err
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*entity.Category, error) {
	var c entity.Category
	if err := r.DB.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) NameTaken(ctx context.Context, name string, exceptID uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Category{}).
		Where("LOWER(category_name) = LOWER(?) AND id <> ?", name, exceptID).
		Count(&count).Error
	return count > 0, err
}

func (r *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.Category{}).Where("id = ?", id).Updates(updates).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&entity.Category{}, id).Error
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Category{}).Count(&count).Error
	return count, err
}

// CountItems tells whether a category still has food items attached.
func (r *CategoryRepository) CountItems(ctx context.Context, id uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.FoodItem{}).Where("category_id = ?", id).Count(&count).Error
	return count, err
}
