package services

import (
	"context"
	"testing"

	"github.com/AmaraNavaneetha/Flavour-Hub/entity"
	"github.com/AmaraNavaneetha/Flavour-Hub/pkg/cart"
	"github.com/AmaraNavaneetha/Flavour-Hub/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_Walkthrough(t *testing.T) {
	db := newTestDB(t)
	items := seedMenu(t, db,
		entity.FoodItem{ItemName: "Burger", SellingPrice: dec("5.00"), IsAvailable: true},
		entity.FoodItem{ItemName: "Lassi", SellingPrice: dec("2.50"), IsAvailable: true},
	)
	svc := NewCartService(repository.NewFoodItemRepository(db), nil)
	sess := memSession{}
	ctx := context.Background()
	burger, lassi := items[0].ID, items[1].ID

	view, line, err := svc.Add(ctx, sess, burger)
	require.NoError(t, err)
	assert.Equal(t, "Burger", line.Name)
	assert.Equal(t, "5.00", view.Total)

	_, _, err = svc.Add(ctx, sess, burger)
	require.NoError(t, err)
	view, _, err = svc.Add(ctx, sess, lassi)
	require.NoError(t, err)
	assert.Equal(t, "12.50", view.Total)
	assert.Equal(t, 3, view.Count)

	view, outcome, prev, err := svc.Decrement(sess, burger)
	require.NoError(t, err)
	assert.Equal(t, cart.Decremented, outcome)
	assert.Equal(t, 2, prev.Quantity)
	assert.Equal(t, "7.50", view.Total)

	view, outcome, _, err = svc.Decrement(sess, lassi)
	require.NoError(t, err)
	assert.Equal(t, cart.Removed, outcome)
	assert.Equal(t, "5.00", view.Total)

	_, outcome, _, err = svc.Decrement(sess, lassi)
	require.NoError(t, err)
	assert.Equal(t, cart.NotFound, outcome)

	view, prev, removed, err := svc.Remove(sess, burger)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, "Burger", prev.Name)
	assert.Equal(t, "0.00", view.Total)
	assert.Empty(t, view.Lines)
	assert.Empty(t, cart.Load(sess))
}

func TestCartService_AddUnknownOrUnavailable(t *testing.T) {
	db := newTestDB(t)
	items := seedMenu(t, db,
		entity.FoodItem{ItemName: "Burger", SellingPrice: dec("5.00"), IsAvailable: true},
		entity.FoodItem{ItemName: "Sold out", SellingPrice: dec("1.00"), IsAvailable: false},
	)
	svc := NewCartService(repository.NewFoodItemRepository(db), nil)
	sess := memSession{}
	ctx := context.Background()

	_, _, err := svc.Add(ctx, sess, items[0].ID)
	require.NoError(t, err)
	before, _ := sess.Get(cart.SessionKey)

	_, _, err = svc.Add(ctx, sess, 9999)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
	_, _, err = svc.Add(ctx, sess, items[1].ID)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)

	after, _ := sess.Get(cart.SessionKey)
	assert.Equal(t, before, after)
}

func TestCartService_DeletedItemIsNotFound(t *testing.T) {
	db := newTestDB(t)
	items := seedMenu(t, db, entity.FoodItem{ItemName: "Burger", SellingPrice: dec("5.00"), IsAvailable: true})
	require.NoError(t, db.Delete(&entity.FoodItem{}, items[0].ID).Error)
	svc := NewCartService(repository.NewFoodItemRepository(db), nil)

	_, err := svc.LookupItem(context.Background(), items[0].ID)
	assert.ErrorIs(t, err, cart.ErrItemNotFound)
}
