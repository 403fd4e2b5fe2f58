package repository

import (
	"context"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"gorm.io/gorm"
)

type FoodItemRepository struct {
	DB *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{DB: db}
}

type FoodItemFilter struct {
	CategoryID    uint
	Search        string
	Sort          string // name | name_desc | price | price_desc | rating | rating_desc
	OnlyAvailable bool
	Page          int
	Limit         int
}

var foodItemSorts = map[string]string{
	"name":        "food_items.item_name ASC",
	"name_desc":   "food_items.item_name DESC",
	"price":       "food_items.selling_price ASC",
	"price_desc":  "food_items.selling_price DESC",
	"rating":      "food_items.rating ASC",
	"rating_desc": "food_items.rating DESC",
}

// SortKeys lists the accepted FoodItemFilter.Sort values.
func SortKeys() []string {
	return []string{"name", "name_desc", "price", "price_desc", "rating", "rating_desc"}
}

func (r *FoodItemRepository) List(ctx context.Context, f FoodItemFilter) (Page[entity.FoodItem], error) {
	page, limit := NormalizePage(f.Page, f.Limit)

	q := r.DB.WithContext(ctx).Model(&entity.FoodItem{})
	if f.CategoryID != 0 {
		q = q.Where("food_items.category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(food_items.item_name) LIKE ?", likePattern(f.Search))
	}
	if f.OnlyAvailable {
		q = q.Where("food_items.is_available = ?", true).
			Joins("JOIN categories ON categories.id = food_items.category_id AND categories.category_status = ? AND categories.deleted_at IS NULL", true)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return Page[entity.FoodItem]{}, err
	}

	order, ok := foodItemSorts[f.Sort]
	if !ok {
		order = foodItemSorts["name"]
	}
	var items []entity.FoodItem
	err := q.Preload("Category").Preload("ItemType").
		Order(order).Order("food_items.id ASC").
		Scopes(paginate(page, limit)).
		Find(&items).Error
	if err != nil {
		return Page[entity.FoodItem]{}, err
	}
	return NewPage(items, page, limit, total), nil
}

func (r *FoodItemRepository) FindByID(ctx context.Context, id uint) (*entity.FoodItem, error) {
	var f entity.FoodItem
	err := r.DB.WithContext(ctx).
		Preload("Category").
		Preload("ItemType").
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// FindBasics loads only what the cart needs to price a line.
func (r *FoodItemRepository) FindBasics(ctx context.Context, id uint) (*entity.FoodItem, error) {
	var f entity.FoodItem
	err := r.DB.WithContext(ctx).
		Select("id, item_name, selling_price, is_available").
		First(&f, id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FoodItemRepository) Create(ctx context.Context, f *entity.FoodItem) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

func (r *FoodItemRepository) Update(ctx context.Context, id uint, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.FoodItem{}).Where("id = ?", id).Updates(updates).Error
}

func (r *FoodItemRepository) Delete(ctx context.Context, id uint) error {
	return r.DB.WithContext(ctx).Delete(&entity.FoodItem{}, id).Error
}

func (r *FoodItemRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.FoodItem{}).Count(&count).Error
	return count, err
}
