package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type stubCatalog map[uint]Item

func (s stubCatalog) LookupItem(_ context.Context, id uint) (Item, error) {
	it, ok := s[id]
	if !ok {
		return Item{}, ErrItemNotFound
	}
	return it, nil
}

var menu = stubCatalog{
	42: {ID: 42, Name: "Burger", SellingPrice: price("5.00"), IsAvailable: true},
	7:  {ID: 7, Name: "Lassi", SellingPrice: price("2.50"), IsAvailable: true},
	9:  {ID: 9, Name: "Biryani", SellingPrice: price("11.25"), IsAvailable: false},
}

func TestAddItem_SameItemMergesIntoOneLine(t *testing.T) {
	ctx := context.Background()
	c := Cart{}
	var err error
	for i := 0; i < 5; i++ {
		c, err = AddItem(ctx, c, 42, menu)
		require.NoError(t, err)
	}

	require.Len(t, c, 1)
	assert.Equal(t, uint(42), c[0].FoodItemID)
	assert.Equal(t, 5, c[0].Quantity)
	assert.Equal(t, "Burger", c[0].Name)
}

func TestAddItem_KeepsSnapshotWhenCatalogChanges(t *testing.T) {
	ctx := context.Background()
	cat := stubCatalog{42: {ID: 42, Name: "Burger", SellingPrice: price("5.00"), IsAvailable: true}}

	c, err := AddItem(ctx, Cart{}, 42, cat)
	require.NoError(t, err)

	cat[42] = Item{ID: 42, Name: "Deluxe Burger", SellingPrice: price("9.00"), IsAvailable: true}
	c, err = AddItem(ctx, c, 42, cat)
	require.NoError(t, err)

	require.Len(t, c, 1)
	assert.Equal(t, "Burger", c[0].Name)
	assert.True(t, c[0].Price.Equal(price("5.00")))
	assert.Equal(t, 2, c[0].Quantity)
}

func TestAddItem_UnknownOrUnavailable(t *testing.T) {
	ctx := context.Background()
	start := Cart{{FoodItemID: 7, Name: "Lassi", Price: price("2.50"), Quantity: 1}}

	for _, id := range []uint{404, 9} {
		got, err := AddItem(ctx, start, id, menu)
		assert.ErrorIs(t, err, ErrItemNotFound)
		assert.Equal(t, start, got)
	}
}

func TestAddItem_LookupFailureIsWrapped(t *testing.T) {
	boom := errors.New("db down")
	cat := CatalogFunc(func(context.Context, uint) (Item, error) { return Item{}, boom })

	_, err := AddItem(context.Background(), Cart{}, 1, cat)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrItemNotFound)
}

func TestAddItem_DoesNotMutateInput(t *testing.T) {
	ctx := context.Background()
	start := Cart{{FoodItemID: 42, Name: "Burger", Price: price("5.00"), Quantity: 1}}

	next, err := AddItem(ctx, start, 42, menu)
	require.NoError(t, err)
	assert.Equal(t, 1, start[0].Quantity)
	assert.Equal(t, 2, next[0].Quantity)
}

func TestDecrementItem(t *testing.T) {
	c := Cart{
		{FoodItemID: 42, Name: "Burger", Price: price("5.00"), Quantity: 2},
		{FoodItemID: 7, Name: "Lassi", Price: price("2.50"), Quantity: 1},
	}

	c, out := DecrementItem(c, 42)
	assert.Equal(t, Decremented, out)
	l, ok := c.Find(42)
	require.True(t, ok)
	assert.Equal(t, 1, l.Quantity)

	c, out = DecrementItem(c, 7)
	assert.Equal(t, Removed, out)
	_, ok = c.Find(7)
	assert.False(t, ok)
	assert.Len(t, c, 1)

	c, out = DecrementItem(c, 99)
	assert.Equal(t, NotFound, out)
	assert.Len(t, c, 1)
}

func TestRemoveItem(t *testing.T) {
	c := Cart{
		{FoodItemID: 42, Name: "Burger", Price: price("5.00"), Quantity: 3},
		{FoodItemID: 7, Name: "Lassi", Price: price("2.50"), Quantity: 1},
	}

	c, ok := RemoveItem(c, 42)
	assert.True(t, ok)
	require.Len(t, c, 1)
	assert.Equal(t, uint(7), c[0].FoodItemID)

	c, ok = RemoveItem(c, 42)
	assert.False(t, ok)
	assert.Len(t, c, 1)
}

func TestTotal(t *testing.T) {
	assert.True(t, Total(Cart{}).IsZero())
	assert.True(t, Total(nil).IsZero())

	c := Cart{
		{FoodItemID: 42, Price: price("5.00"), Quantity: 3},
		{FoodItemID: 7, Price: price("2.50"), Quantity: 2},
		{FoodItemID: 8, Price: price("0.10"), Quantity: 3},
	}
	assert.Equal(t, "20.3", c.Total().String())
	assert.Equal(t, 8, c.Count())
}

func TestTotal_MatchesLinesAfterMixedOperations(t *testing.T) {
	ctx := context.Background()
	c := Cart{}
	ops := []struct {
		op string
		id uint
	}{
		{"add", 42}, {"add", 7}, {"add", 42}, {"add", 7}, {"dec", 7},
		{"add", 42}, {"rm", 7}, {"add", 7}, {"dec", 42}, {"dec", 99},
	}
	for _, o := range ops {
		switch o.op {
		case "add":
			var err error
			c, err = AddItem(ctx, c, o.id, menu)
			require.NoError(t, err)
		case "dec":
			c, _ = DecrementItem(c, o.id)
		case "rm":
			c, _ = RemoveItem(c, o.id)
		}

		want := decimal.Zero
		for _, l := range c {
			require.GreaterOrEqual(t, l.Quantity, 1)
			want = want.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
		}
		assert.True(t, want.Equal(Total(c)), "after %s %d", o.op, o.id)
	}

	burger, _ := c.Find(42)
	lassi, _ := c.Find(7)
	assert.Equal(t, 2, burger.Quantity)
	assert.Equal(t, 1, lassi.Quantity)
}

func TestWalkthrough(t *testing.T) {
	ctx := context.Background()
	c, err := AddItem(ctx, Cart{}, 42, menu)
	require.NoError(t, err)
	c, err = AddItem(ctx, c, 42, menu)
	require.NoError(t, err)
	require.Equal(t, Cart{{FoodItemID: 42, Name: "Burger", Price: price("5.00"), Quantity: 2}}, c)

	c, out := DecrementItem(c, 42)
	assert.Equal(t, Decremented, out)
	assert.Equal(t, Cart{{FoodItemID: 42, Name: "Burger", Price: price("5.00"), Quantity: 1}}, c)
	assert.True(t, Total(c).Equal(price("5")))
}
