package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderLine struct {
	gorm.Model
	OrderID    uint            `gorm:"index;not null" json:"orderId"`
	FoodItemID uint            `gorm:"not null" json:"foodItemId"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"unitPrice"`
}
