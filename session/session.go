// Package session holds the per-visitor key/value state that backs the
// shopping cart. A Session is created for one request and must not be
// shared between requests; concurrent requests from the same visitor each
// get their own copy and the last write wins.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Store persists session values. repository.SessionRepository is the
// database-backed implementation.
type Store interface {
	Load(ctx context.Context, sessionID string, now time.Time) (map[string]string, error)
	Put(ctx context.Context, sessionID, key, value string, expiresAt time.Time) error
	Delete(ctx context.Context, sessionID, key string) error
	Destroy(ctx context.Context, sessionID string) error
}

// Toucher is implemented by stores that can extend a session without
// rewriting its values.
type Toucher interface {
	Touch(ctx context.Context, sessionID string, expiresAt time.Time) error
}

type Session struct {
	ID string

	ctx    context.Context // request scoped
	store  Store
	ttl    time.Duration
	now    func() time.Time
	values map[string]string
	fresh  bool
}

// NewID mints an identifier for a visitor without a session.
func NewID() string { return uuid.NewString() }

// ValidID rejects anything that is not a uuid so clients cannot pick
// arbitrary keys.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// Open loads the session id from store. An empty or invalid id starts a
// new session. Opening a live session slides its expiry.
func Open(ctx context.Context, store Store, id string, ttl time.Duration) (*Session, error) {
	s := &Session{ID: id, ctx: ctx, store: store, ttl: ttl, now: time.Now}
	if !ValidID(id) {
		s.ID = NewID()
		s.values = map[string]string{}
		s.fresh = true
		return s, nil
	}
	values, err := store.Load(ctx, id, s.now())
	if err != nil {
		return nil, err
	}
	s.values = values
	if t, ok := store.(Toucher); ok && len(values) > 0 {
		if err := t.Touch(ctx, id, s.now().Add(ttl)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Fresh reports whether the session was minted by this request.
func (s *Session) Fresh() bool { return s.fresh }

func (s *Session) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set writes through to the store.
func (s *Session) Set(key, value string) error {
	if err := s.store.Put(s.ctx, s.ID, key, value, s.now().Add(s.ttl)); err != nil {
		return err
	}
	s.values[key] = value
	return nil
}

func (s *Session) Remove(key string) error {
	if err := s.store.Delete(s.ctx, s.ID, key); err != nil {
		return err
	}
	delete(s.values, key)
	return nil
}

// Destroy drops every key, as on logout.
func (s *Session) Destroy() error {
	if err := s.store.Destroy(s.ctx, s.ID); err != nil {
		return err
	}
	s.values = map[string]string{}
	return nil
}
