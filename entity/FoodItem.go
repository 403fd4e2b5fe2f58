package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	ItemName        string          `gorm:"size:100;not null;index" json:"itemName"`
	ItemDescription string          `gorm:"size:1500" json:"itemDescription"`
	ItemImagePath   string          `json:"itemImagePath"`
	ActualPrice     decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"actualPrice"`
	DiscountPer     int             `gorm:"not null;default:0" json:"discountPer"`
	SellingPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"sellingPrice"`
	Rating          float64         `json:"rating"`
	RatingCount     int             `json:"ratingCount"`

	IsAvailable  bool `gorm:"not null" json:"isAvailable"`
	IsBestSeller bool `json:"isBestSeller"`
	IsFastMoving bool `json:"isFastMoving"`
	IsBreakfast  bool `json:"isBreakfast"`
	IsLunch      bool `json:"isLunch"`
	IsDinner     bool `json:"isDinner"`

	CategoryID uint     `gorm:"index" json:"categoryId"`
	Category   Category `json:"category,omitempty"` // preload on list/detail

	ItemTypeID uint     `json:"itemTypeId"`
	ItemType   ItemType `json:"itemType,omitempty"`
}

// DiscountedPrice applies DiscountPer to ActualPrice, rounded to cents.
func (f *FoodItem) DiscountedPrice() decimal.Decimal {
	keep := decimal.NewFromInt(int64(100 - f.DiscountPer)).Div(decimal.NewFromInt(100))
	return f.ActualPrice.Mul(keep).Round(2)
}
