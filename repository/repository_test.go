package repository

import (
	"context"
	"testing"
	"time"

	"github.com/AmaraNavaneetha/Flavour-Hub/configs"
	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configs.OpenDatabase("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	return db
}

func seedItems(t *testing.T, db *gorm.DB) (entity.Category, entity.Category) {
	t.Helper()
	mains := entity.Category{CategoryName: "Mains", CategoryStatus: true}
	drinks := entity.Category{CategoryName: "Drinks", CategoryStatus: true}
	require.NoError(t, db.Create(&mains).Error)
	require.NoError(t, db.Create(&drinks).Error)
	typ := entity.ItemType{ItemTypeName: "Veg"}
	require.NoError(t, db.Create(&typ).Error)

	items := []entity.FoodItem{
		{ItemName: "Paneer Tikka", SellingPrice: decimal.RequireFromString("180"), Rating: 4.5, IsAvailable: true, CategoryID: mains.ID},
		{ItemName: "Dal Makhani", SellingPrice: decimal.RequireFromString("150"), Rating: 4.8, IsAvailable: true, CategoryID: mains.ID},
		{ItemName: "Aloo Paratha", SellingPrice: decimal.RequireFromString("90"), Rating: 3.9, IsAvailable: false, CategoryID: mains.ID},
		{ItemName: "Mango Lassi", SellingPrice: decimal.RequireFromString("70"), Rating: 4.1, IsAvailable: true, CategoryID: drinks.ID},
		{ItemName: "Masala Chai", SellingPrice: decimal.RequireFromString("30"), Rating: 4.6, IsAvailable: true, CategoryID: drinks.ID},
	}
	for i := range items {
		items[i].ItemTypeID = typ.ID
		items[i].ActualPrice = items[i].SellingPrice
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return mains, drinks
}

func names(items []entity.FoodItem) []string {
	out := make([]string, 0, len(items))
	for _, f := range items {
		out = append(out, f.ItemName)
	}
	return out
}

func TestFoodItemList_FilterSortPaginate(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodItemRepository(db)
	mains, drinks := seedItems(t, db)
	ctx := context.Background()

	page, err := repo.List(ctx, FoodItemFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, []string{"Aloo Paratha", "Dal Makhani", "Mango Lassi", "Masala Chai", "Paneer Tikka"}, names(page.Items))

	page, err = repo.List(ctx, FoodItemFilter{CategoryID: mains.ID, Sort: "price_desc"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Paneer Tikka", "Dal Makhani", "Aloo Paratha"}, names(page.Items))
	assert.Equal(t, "Mains", page.Items[0].Category.CategoryName)
	assert.Equal(t, "Veg", page.Items[0].ItemType.ItemTypeName)

	page, err = repo.List(ctx, FoodItemFilter{Search: "  MASALA ", OnlyAvailable: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Masala Chai"}, names(page.Items))

	page, err = repo.List(ctx, FoodItemFilter{OnlyAvailable: true, Sort: "rating_desc", Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(4), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, []string{"Paneer Tikka", "Mango Lassi"}, names(page.Items))

	require.NoError(t, db.Model(&entity.Category{}).Where("id = ?", drinks.ID).Update("category_status", false).Error)
	page, err = repo.List(ctx, FoodItemFilter{OnlyAvailable: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"Dal Makhani", "Paneer Tikka"}, names(page.Items))
}

func TestFoodItemList_UnknownSortFallsBackToName(t *testing.T) {
	db := newTestDB(t)
	repo := NewFoodItemRepository(db)
	seedItems(t, db)

	page, err := repo.List(context.Background(), FoodItemFilter{Sort: "id; DROP TABLE food_items", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"Aloo Paratha"}, names(page.Items))
}

func TestCategoryList(t *testing.T) {
	db := newTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()
	for i, name := range []string{"Soups", "Starters", "Desserts"} {
		require.NoError(t, repo.Create(ctx, &entity.Category{CategoryName: name, CategoryDiscount: i * 10, CategoryStatus: i != 1}))
	}

	page, err := repo.List(ctx, CategoryFilter{Sort: "discount_desc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Desserts", page.Items[0].CategoryName)

	page, err = repo.List(ctx, CategoryFilter{Search: "s", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 3, page.TotalPages)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)

	taken, err := repo.NameTaken(ctx, "SOUPS", 0)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestSessionRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()
	now := time.Now()
	id := uuid.NewString()

	require.NoError(t, repo.Put(ctx, id, "ShoppingCart", "[]", now.Add(time.Minute)))
	require.NoError(t, repo.Put(ctx, id, "ShoppingCart", `[{"foodItemId":1}]`, now.Add(time.Minute)))
	require.NoError(t, repo.Put(ctx, id, "Other", "x", now.Add(-time.Minute)))

	got, err := repo.Load(ctx, id, now)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"ShoppingCart": `[{"foodItemId":1}]`}, got)

	require.NoError(t, repo.Touch(ctx, id, now.Add(time.Hour)))
	got, err = repo.Load(ctx, id, now.Add(30*time.Minute))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	n, err := repo.PurgeExpired(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	require.NoError(t, repo.Put(ctx, id, "a", "1", now.Add(time.Minute)))
	require.NoError(t, repo.Delete(ctx, id, "a"))
	got, err = repo.Load(ctx, id, now)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, repo.Put(ctx, id, "b", "2", now.Add(time.Minute)))
	require.NoError(t, repo.Destroy(ctx, id))
	got, err = repo.Load(ctx, id, now)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNormalizePage(t *testing.T) {
	p, l := NormalizePage(0, 0)
	assert.Equal(t, 1, p)
	assert.Equal(t, DefaultLimit, l)

	p, l = NormalizePage(3, MaxLimit+1)
	assert.Equal(t, 3, p)
	assert.Equal(t, DefaultLimit, l)

	empty := NewPage[int](nil, 1, 10, 0)
	assert.NotNil(t, empty.Items)
	assert.Zero(t, empty.TotalPages)
}
