// Package cart keeps the shopping cart of one visitor session.
//
// Every operation takes the current Cart and returns the next one; reading
// from and writing to the session is left to the caller (see Load and Save).
package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemNotFound is returned by AddItem when the catalog has no
	// active item for the requested id.
	ErrItemNotFound = errors.New("item not found")
	// ErrCorrupt marks a session payload that cannot be turned into a cart.
	// Load recovers from it by starting over with an empty cart.
	ErrCorrupt = errors.New("corrupt cart payload")
)

// Line is one food item in the cart. Name and Price are captured when the
// item is first added and are never refreshed from the catalog.
type Line struct {
	FoodItemID uint            `json:"foodItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Quantity   int             `json:"quantity"`
}

// Subtotal is Price × Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an ordered list of lines, at most one per food item.
type Cart []Line

// Item is what the catalog reports about a food item.
type Item struct {
	ID           uint
	Name         string
	SellingPrice decimal.Decimal
	IsAvailable  bool
}

// Catalog resolves food items for AddItem. Implementations return
// ErrItemNotFound (possibly wrapped) when the id is unknown.
type Catalog interface {
	LookupItem(ctx context.Context, id uint) (Item, error)
}

// CatalogFunc adapts a plain function to Catalog.
type CatalogFunc func(ctx context.Context, id uint) (Item, error)

func (f CatalogFunc) LookupItem(ctx context.Context, id uint) (Item, error) { return f(ctx, id) }

// Outcome reports what DecrementItem did.
type Outcome int

const (
	NotFound Outcome = iota
	Decremented
	Removed
)

func (o Outcome) String() string {
	switch o {
	case Decremented:
		return "decremented"
	case Removed:
		return "removed"
	default:
		return "not_found"
	}
}

func (c Cart) index(id uint) int {
	for i := range c {
		if c[i].FoodItemID == id {
			return i
		}
	}
	return -1
}

func (c Cart) clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Find returns the line for id, if any.
func (c Cart) Find(id uint) (Line, bool) {
	if i := c.index(id); i >= 0 {
		return c[i], true
	}
	return Line{}, false
}

// Count is the number of units across all lines.
func (c Cart) Count() int {
	n := 0
	for _, l := range c {
		n += l.Quantity
	}
	return n
}

func (c Cart) Total() decimal.Decimal { return Total(c) }

// AddItem adds one unit of the food item. An existing line only gains
// quantity; a new line snapshots the catalog's current name and price.
// Unknown and unavailable items both fail with ErrItemNotFound and leave
// c untouched.
func AddItem(ctx context.Context, c Cart, id uint, catalog Catalog) (Cart, error) {
	it, err := catalog.LookupItem(ctx, id)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			return c, ErrItemNotFound
		}
		return c, fmt.Errorf("lookup item %d: %w", id, err)
	}
	if !it.IsAvailable {
		return c, ErrItemNotFound
	}

	next := c.clone()
	if i := next.index(id); i >= 0 {
		next[i].Quantity++
		return next, nil
	}
	return append(next, Line{
		FoodItemID: it.ID,
		Name:       it.Name,
		Price:      it.SellingPrice,
		Quantity:   1,
	}), nil
}

// DecrementItem takes one unit off the line for id and drops the line once
// its quantity reaches zero.
func DecrementItem(c Cart, id uint) (Cart, Outcome) {
	i := c.index(id)
	if i < 0 {
		return c, NotFound
	}
	next := c.clone()
	next[i].Quantity--
	if next[i].Quantity <= 0 {
		return append(next[:i], next[i+1:]...), Removed
	}
	return next, Decremented
}

// RemoveItem drops the line for id regardless of quantity. The bool is
// false when there was nothing to remove.
func RemoveItem(c Cart, id uint) (Cart, bool) {
	i := c.index(id)
	if i < 0 {
		return c, false
	}
	next := c.clone()
	return append(next[:i], next[i+1:]...), true
}

// Total sums Price × Quantity over all lines.
func Total(c Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c {
		sum = sum.Add(l.Subtotal())
	}
	return sum
}
