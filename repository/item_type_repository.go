package repository

import (
	"context"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"gorm.io/gorm"
)

type ItemTypeRepository struct {
	DB *gorm.DB
}

func NewItemTypeRepository(db *gorm.DB) *ItemTypeRepository {
	return &ItemTypeRepository{DB: db}
}

func (r *ItemTypeRepository) FindAll(ctx context.Context) ([]entity.ItemType, error) {
	var items []entity.ItemType
	err := r.DB.WithContext(ctx).Order("item_type_name ASC").Find(&items).Error
	return items, err
}

func (r *ItemTypeRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.ItemType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ItemTypeRepository) Create(ctx context.Context, t *entity.ItemType) error {
	return r.DB.WithContext(ctx).Create(t).Error
}

func (r *ItemTypeRepository) NameTaken(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.ItemType{}).
		Where("LOWER(item_type_name) = LOWER(?)", name).
		Count(&count).Error
	return count > 0, err
}
