package repository

import (
	"context"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Writes (always inside the caller's transaction) ----------------

// CreateOrder inserts the header; o.ID holds the generated id afterwards.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

// ---------------- Reads ----------------

type OrderSummary struct {
	ID            uint      `json:"id"`
	UserID        uint      `json:"userId"`
	OrderDate     time.Time `json:"orderDate"`
	TotalAmount   string    `json:"totalAmount"`
	PaymentMethod string    `json:"paymentMethod"`
	OrderStatus   string    `json:"orderStatus"`
}

func toSummaries(orders []entity.Order) []OrderSummary {
	out := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, OrderSummary{
			ID:            o.ID,
			UserID:        o.UserID,
			OrderDate:     o.OrderDate,
			TotalAmount:   o.TotalAmount.StringFixed(2),
			PaymentMethod: string(o.PaymentMethod),
			OrderStatus:   o.OrderStatus,
		})
	}
	return out
}

func (r *OrderRepository) ListForUser(ctx context.Context, userID uint, limit int) ([]OrderSummary, error) {
	if limit <= 0 || limit > MaxLimit {
		limit = 50
	}
	var orders []entity.Order
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return toSummaries(orders), nil
}

func (r *OrderRepository) GetForUser(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.WithContext(ctx).
		Preload("Lines").
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.WithContext(ctx).Preload("Lines").First(&o, orderID).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// ListAll is the staff order board, newest first.
func (r *OrderRepository) ListAll(ctx context.Context, page, limit int) (Page[OrderSummary], error) {
	page, limit = NormalizePage(page, limit)

	var total int64
	if err := r.DB.WithContext(ctx).Model(&entity.Order{}).Count(&total).Error; err != nil {
		return Page[OrderSummary]{}, err
	}
	var orders []entity.Order
	err := r.DB.WithContext(ctx).
		Order("id DESC").
		Scopes(paginate(page, limit)).
		Find(&orders).Error
	if err != nil {
		return Page[OrderSummary]{}, err
	}
	return NewPage(toSummaries(orders), page, limit, total), nil
}

func (r *OrderRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.Order{}).
		Where("order_date >= ?", since).
		Count(&count).Error
	return count, err
}

func (r *OrderRepository) CountLines(ctx context.Context, orderID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&entity.OrderLine{}).Where("order_id = ?", orderID).Count(&count).Error
	return count, err
}
