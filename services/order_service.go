package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/cart"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/logger"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/metrics"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	DB        *gorm.DB
	Repo      *repository.OrderRepository
	Publisher OrderPublisher
	Metrics   *metrics.ServerMetrics
	Log       *slog.Logger
	Now       func() time.Time
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	pub OrderPublisher,
	m *metrics.ServerMetrics,
	log *slog.Logger,
) *OrderService {
	if log == nil {
		log = logger.Discard()
	}
	return &OrderService{DB: db, Repo: repo, Publisher: pub, Metrics: m, Log: log, Now: time.Now}
}

type PlaceOrderIn struct {
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod"`
}

type PlaceOrderRes struct {
	OrderID       uint                 `json:"orderId"`
	Total         decimal.Decimal      `json:"total"`
	PaymentMethod entity.PaymentMethod `json:"paymentMethod"`
	OnlinePayment bool                 `json:"showOnlineAlert"`
	Lines         int                  `json:"lines"`
}

type CheckoutSummary struct {
	Cart           CartView               `json:"cart"`
	Total          decimal.Decimal        `json:"total"`
	PaymentMethods []entity.PaymentMethod `json:"paymentMethods"`
}

func checkoutPreconditions(userID uint, c cart.Cart) error {
	if userID == 0 {
		return ErrUnauthenticated
	}
	if len(c) == 0 {
		return ErrEmptyCart
	}
	return nil
}

// Checkout is the payment selection step: same preconditions as
// PlaceOrder, no writes.
func (s *OrderService) Checkout(userID uint, sess cart.Session) (*CheckoutSummary, error) {
	c := cart.Load(sess)
	if err := checkoutPreconditions(userID, c); err != nil {
		return nil, err
	}
	return &CheckoutSummary{
		Cart:           NewCartView(c),
		Total:          cart.Total(c),
		PaymentMethods: entity.PaymentMethods(),
	}, nil
}

// PlaceOrder turns the session cart into an order header plus one line per
// cart line, all in one transaction, and then empties the cart. Prices come
// from the cart snapshot, never from the catalog.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, sess cart.Session, paymentMethod string) (*PlaceOrderRes, error) {
	c := cart.Load(sess)
	if err := checkoutPreconditions(userID, c); err != nil {
		return nil, err
	}
	pm, err := entity.ParsePaymentMethod(paymentMethod)
	if err != nil {
		return nil, ErrInvalidPaymentMethod
	}

	total := cart.Total(c)
	order := entity.Order{
		UserID:        userID,
		OrderDate:     s.Now(),
		TotalAmount:   total,
		PaymentMethod: pm,
		OrderStatus:   entity.OrderStatusPlaced,
	}

	var persistErr *OrderPersistenceError
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			persistErr = &OrderPersistenceError{Step: "header", Err: err}
			return persistErr
		}
		for _, l := range c {
			line := entity.OrderLine{
				OrderID:    order.ID,
				FoodItemID: l.FoodItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.Price,
			}
			if err := s.Repo.CreateOrderLine(tx, &line); err != nil {
				persistErr = &OrderPersistenceError{Step: "line", Err: err}
				return persistErr
			}
		}
		return nil
	})
	if err != nil {
		s.Metrics.OrderPlaced(string(pm), "error")
		if !errors.As(err, &persistErr) {
			persistErr = &OrderPersistenceError{Step: "transaction", Err: err}
		}
		s.Log.ErrorContext(ctx, "place order failed",
			"user_id", userID, "step", persistErr.Step, "error", persistErr.Err)
		return nil, persistErr
	}
	s.Metrics.OrderPlaced(string(pm), "ok")

	// order is committed; a failure here only leaves a stale cart behind
	if err := cart.Clear(sess); err != nil {
		s.Log.WarnContext(ctx, "clear cart after order", "order_id", order.ID, "error", err)
	}

	s.Log.InfoContext(ctx, "order placed",
		"order_id", order.ID, "user_id", userID, "total", total.StringFixed(2),
		"payment_method", string(pm), "lines", len(c))

	if s.Publisher != nil {
		ev := OrderPlaced{
			OrderID:       order.ID,
			UserID:        userID,
			TotalAmount:   total.StringFixed(2),
			PaymentMethod: string(pm),
			Lines:         len(c),
			PlacedAt:      order.OrderDate,
		}
		if err := s.Publisher.PublishOrderPlaced(ctx, ev); err != nil {
			s.Log.WarnContext(ctx, "publish order placed", "order_id", order.ID, "error", err)
		}
	}

	return &PlaceOrderRes{
		OrderID:       order.ID,
		Total:         total,
		PaymentMethod: pm,
		OnlinePayment: pm.IsOnline(),
		Lines:         len(c),
	}, nil
}

// ----- List & Detail -----

func (s *OrderService) ListForUser(ctx context.Context, userID uint, limit int) ([]repository.OrderSummary, error) {
	return s.Repo.ListForUser(ctx, userID, limit)
}

func (s *OrderService) DetailForUser(ctx context.Context, userID, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetForUser(ctx, userID, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

func (s *OrderService) ListAll(ctx context.Context, page, limit int) (repository.Page[repository.OrderSummary], error) {
	return s.Repo.ListAll(ctx, page, limit)
}

func (s *OrderService) Detail(ctx context.Context, orderID uint) (*entity.Order, error) {
	o, err := s.Repo.GetByID(ctx, orderID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}
