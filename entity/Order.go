package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const OrderStatusPlaced = "Placed"

// Order is the persisted order header. Rows are only ever inserted.
type Order struct {
	gorm.Model
	UserID        uint            `gorm:"index;not null" json:"userId"`
	User          User            `json:"-"`
	OrderDate     time.Time       `gorm:"not null" json:"orderDate"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"totalAmount"`
	PaymentMethod PaymentMethod   `gorm:"size:20;not null" json:"paymentMethod"`
	OrderStatus   string          `gorm:"size:50;not null" json:"orderStatus"`

	// preload only on detail
	Lines []OrderLine `json:"lines,omitempty"`
}
