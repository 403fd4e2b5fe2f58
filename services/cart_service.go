package services

import (
	"context"
	"errors"

	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/cart"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/metrics"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"

	"gorm.io/gorm"
)

// CartService reads the cart out of the visitor session, runs one cart
// operation and writes the result back.
type CartService struct {
	Items   *repository.FoodItemRepository
	Metrics *metrics.ServerMetrics
}

func NewCartService(items *repository.FoodItemRepository, m *metrics.ServerMetrics) *CartService {
	return &CartService{Items: items, Metrics: m}
}

// LookupItem makes the food item table the cart's catalog.
func (s *CartService) LookupItem(ctx context.Context, id uint) (cart.Item, error) {
	f, err := s.Items.FindBasics(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return cart.Item{}, cart.ErrItemNotFound
	}
	if err != nil {
		return cart.Item{}, err
	}
	return cart.Item{ID: f.ID, Name: f.ItemName, SellingPrice: f.SellingPrice, IsAvailable: f.IsAvailable}, nil
}

type CartLineView struct {
	FoodItemID uint   `json:"foodItemId"`
	Name       string `json:"name"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
	Subtotal   string `json:"subtotal"`
}

type CartView struct {
	Lines []CartLineView `json:"lines"`
	Count int            `json:"count"`
	Total string         `json:"total"`
}

func NewCartView(c cart.Cart) CartView {
	lines := make([]CartLineView, 0, len(c))
	for _, l := range c {
		lines = append(lines, CartLineView{
			FoodItemID: l.FoodItemID,
			Name:       l.Name,
			Price:      l.Price.StringFixed(2),
			Quantity:   l.Quantity,
			Subtotal:   l.Subtotal().StringFixed(2),
		})
	}
	return CartView{Lines: lines, Count: c.Count(), Total: c.Total().StringFixed(2)}
}

func (s *CartService) View(sess cart.Session) CartView {
	return NewCartView(cart.Load(sess))
}

// Add puts one unit of the item in the cart. On ErrItemNotFound the session
// is left alone.
func (s *CartService) Add(ctx context.Context, sess cart.Session, itemID uint) (CartView, cart.Line, error) {
	c, err := cart.AddItem(ctx, cart.Load(sess), itemID, s)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			s.Metrics.CartOp("add", "not_found")
		} else {
			s.Metrics.CartOp("add", "error")
		}
		return CartView{}, cart.Line{}, err
	}
	if err := cart.Save(sess, c); err != nil {
		s.Metrics.CartOp("add", "error")
		return CartView{}, cart.Line{}, err
	}
	s.Metrics.CartOp("add", "ok")
	line, _ := c.Find(itemID)
	return NewCartView(c), line, nil
}

// Decrement takes one unit off. The returned line is the state before the
// call, so callers can still name a line that has just been removed.
func (s *CartService) Decrement(sess cart.Session, itemID uint) (CartView, cart.Outcome, cart.Line, error) {
	before := cart.Load(sess)
	prev, _ := before.Find(itemID)

	c, outcome := cart.DecrementItem(before, itemID)
	if outcome == cart.NotFound {
		s.Metrics.CartOp("decrement", outcome.String())
		return NewCartView(c), outcome, prev, nil
	}
	if err := cart.Save(sess, c); err != nil {
		s.Metrics.CartOp("decrement", "error")
		return CartView{}, outcome, prev, err
	}
	s.Metrics.CartOp("decrement", outcome.String())
	return NewCartView(c), outcome, prev, nil
}

func (s *CartService) Remove(sess cart.Session, itemID uint) (CartView, cart.Line, bool, error) {
	before := cart.Load(sess)
	prev, _ := before.Find(itemID)

	c, removed := cart.RemoveItem(before, itemID)
	if !removed {
		s.Metrics.CartOp("remove", "not_found")
		return NewCartView(c), prev, false, nil
	}
	if err := cart.Save(sess, c); err != nil {
		s.Metrics.CartOp("remove", "error")
		return CartView{}, prev, true, err
	}
	s.Metrics.CartOp("remove", "ok")
	return NewCartView(c), prev, true, nil
}
