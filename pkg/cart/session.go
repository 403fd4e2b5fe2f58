package cart

import (
	"encoding/json"
	"fmt"
)

// SessionKey is where the serialized cart lives in the visitor session.
const SessionKey = "ShoppingCart"

// Session is the per-visitor key/value store the cart is kept in.
type Session interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}

// Load reads the cart from the session. A missing or unreadable payload
// yields an empty cart.
func Load(s Session) Cart {
	raw, ok := s.Get(SessionKey)
	if !ok || raw == "" {
		return Cart{}
	}
	c, err := Decode(raw)
	if err != nil {
		return Cart{}
	}
	return c
}

// Save overwrites the session's cart with c.
func Save(s Session, c Cart) error {
	raw, err := Encode(c)
	if err != nil {
		return err
	}
	return s.Set(SessionKey, raw)
}

// Clear drops the cart from the session.
func Clear(s Session) error {
	return s.Remove(SessionKey)
}

// Encode renders c as a JSON array of {foodItemId,name,price,quantity}.
func Encode(c Cart) (string, error) {
	if c == nil {
		c = Cart{}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode cart: %w", err)
	}
	return string(b), nil
}

// Decode parses a payload written by Encode. Payloads that break the cart
// invariants (duplicate items, quantity below one) are rejected with
// ErrCorrupt just like malformed JSON.
func Decode(raw string) (Cart, error) {
	var c Cart
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	seen := make(map[uint]struct{}, len(c))
	for _, l := range c {
		if l.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %d has quantity %d", ErrCorrupt, l.FoodItemID, l.Quantity)
		}
		if _, dup := seen[l.FoodItemID]; dup {
			return nil, fmt.Errorf("%w: item %d listed twice", ErrCorrupt, l.FoodItemID)
		}
		seen[l.FoodItemID] = struct{}{}
	}
	if c == nil {
		c = Cart{}
	}
	return c, nil
}
