package entity

import (
	"gorm.io/gorm"
)

type ItemType struct {
	gorm.Model
	ItemTypeName string `gorm:"size:50;uniqueIndex;not null" json:"itemTypeName"`

	FoodItems []FoodItem `json:"-"`
}
