package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	CategoryName        string `gorm:"size:30;uniqueIndex;not null" json:"categoryName"`
	CategoryDescription string `gorm:"size:1500" json:"categoryDescription"`
	CategoryImagePath   string `json:"categoryImagePath"`
	CategoryStatus      bool   `gorm:"not null" json:"categoryStatus"`
	CategoryDiscount    int    `gorm:"not null;default:0" json:"categoryDiscount"` // percent, 0..100

	FoodItems []FoodItem `json:"-"`
}
