package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	value     string
	expiresAt time.Time
}

type memStore struct {
	rows    map[string]map[string]row
	failPut error
}

func newMemStore() *memStore { return &memStore{rows: map[string]map[string]row{}} }

func (m *memStore) Load(_ context.Context, id string, now time.Time) (map[string]string, error) {
	out := map[string]string{}
	for k, r := range m.rows[id] {
		if r.expiresAt.After(now) {
			out[k] = r.value
		}
	}
	return out, nil
}

func (m *memStore) Put(_ context.Context, id, key, value string, expiresAt time.Time) error {
	if m.failPut != nil {
		return m.failPut
	}
	if m.rows[id] == nil {
		m.rows[id] = map[string]row{}
	}
	m.rows[id][key] = row{value: value, expiresAt: expiresAt}
	return nil
}

func (m *memStore) Delete(_ context.Context, id, key string) error {
	delete(m.rows[id], key)
	return nil
}

func (m *memStore) Destroy(_ context.Context, id string) error {
	delete(m.rows, id)
	return nil
}

func TestOpen_InvalidIDStartsFresh(t *testing.T) {
	store := newMemStore()
	for _, id := range []string{"", "not-a-uuid", "../../etc"} {
		s, err := Open(context.Background(), store, id, time.Minute)
		require.NoError(t, err)
		assert.True(t, s.Fresh())
		assert.True(t, ValidID(s.ID))
		assert.NotEqual(t, id, s.ID)
	}
}

func TestSetGetAcrossRequests(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	first, err := Open(ctx, store, "", time.Minute)
	require.NoError(t, err)
	require.NoError(t, first.Set("ShoppingCart", "[]"))

	second, err := Open(ctx, store, first.ID, time.Minute)
	require.NoError(t, err)
	assert.False(t, second.Fresh())
	v, ok := second.Get("ShoppingCart")
	assert.True(t, ok)
	assert.Equal(t, "[]", v)

	require.NoError(t, second.Remove("ShoppingCart"))
	_, ok = second.Get("ShoppingCart")
	assert.False(t, ok)

	third, err := Open(ctx, store, first.ID, time.Minute)
	require.NoError(t, err)
	_, ok = third.Get("ShoppingCart")
	assert.False(t, ok)
}

func TestExpiredValuesAreInvisible(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s, err := Open(ctx, store, "", time.Minute)
	require.NoError(t, err)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Minute) }
	require.NoError(t, s.Set("k", "v"))

	again, err := Open(ctx, store, s.ID, time.Minute)
	require.NoError(t, err)
	_, ok := again.Get("k")
	assert.False(t, ok)
}

func TestSetFailureKeepsOldValue(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s, err := Open(ctx, store, "", time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "old"))

	store.failPut = errors.New("disk full")
	assert.Error(t, s.Set("k", "new"))
	v, _ := s.Get("k")
	assert.Equal(t, "old", v)
}

func TestDestroy(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	s, err := Open(ctx, store, "", time.Minute)
	require.NoError(t, err)
	require.NoError(t, s.Set("a", "1"))
	require.NoError(t, s.Set("b", "2"))

	require.NoError(t, s.Destroy())
	_, ok := s.Get("a")
	assert.False(t, ok)
	assert.Empty(t, store.rows[s.ID])
}

type touchingStore struct {
	*memStore
	touched []string
}

func (s *touchingStore) Touch(_ context.Context, id string, expiresAt time.Time) error {
	s.touched = append(s.touched, id)
	for k, r := range s.rows[id] {
		r.expiresAt = expiresAt
		s.rows[id][k] = r
	}
	return nil
}

func TestOpen_SlidesExpiry(t *testing.T) {
	ctx := context.Background()
	store := &touchingStore{memStore: newMemStore()}

	empty, err := Open(ctx, store, NewID(), time.Minute)
	require.NoError(t, err)
	assert.Empty(t, store.touched, "nothing to extend")

	require.NoError(t, empty.Set("k", "v"))
	_, err = Open(ctx, store, empty.ID, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []string{empty.ID}, store.touched)
}
