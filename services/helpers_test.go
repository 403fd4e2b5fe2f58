package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/AmaraNavaneetha/Flavour-Hub/configs"
	"github.com/AmaraNavaneetha/Flavour-Hub/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

type memSession map[string]string

func (m memSession) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m memSession) Set(key, value string) error {
	m[key] = value
	return nil
}

func (m memSession) Remove(key string) error {
	delete(m, key)
	return nil
}

// seedMenu creates one category, one item type and the given items.
func seedMenu(t *testing.T, db *gorm.DB, items ...entity.FoodItem) []entity.FoodItem {
	t.Helper()
	cat := entity.Category{CategoryName: "Mains", CategoryStatus: true}
	require.NoError(t, db.Create(&cat).Error)
	typ := entity.ItemType{ItemTypeName: "Veg"}
	require.NoError(t, db.Create(&typ).Error)

	for i := range items {
		items[i].CategoryID = cat.ID
		items[i].ItemTypeID = typ.ID
		if items[i].ActualPrice.IsZero() {
			items[i].ActualPrice = items[i].SellingPrice
		}
		require.NoError(t, db.Create(&items[i]).Error)
	}
	return items
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// failCreates makes every insert into table fail once `after` inserts into
// it have gone through.
func failCreates(t *testing.T, db *gorm.DB, table string, after int) {
	t.Helper()
	n := 0
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_"+table, func(tx *gorm.DB) {
		if tx.Statement.Table != table {
			return
		}
		n++
		if n > after {
			_ = tx.AddError(errors.New("injected failure"))
		}
	})
	require.NoError(t, err)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []OrderPlaced
	err    error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, ev OrderPlaced) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}
