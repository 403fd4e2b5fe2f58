package repository

import (
	"context"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"gorm.io/gorm"
)

// UserRepository talks to the users table only.
type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// usernames compare case-insensitively
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error
	return count, err
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) Update(ctx context.Context, userID uint, updates map[string]any) error {
	return r.DB.WithContext(ctx).Model(&entity.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}
