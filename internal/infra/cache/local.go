package cache

import (
	"context"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"ticketing-notifier/internal/pkg/clock"
)

type localEntry struct {
	value     string
	expiresAt time.Time
}

// LocalStore keeps entries in process memory. It is only correct for a single instance.
// Expiry is judged against the injected clock; go-cache's own janitor just reclaims memory.
type LocalStore struct {
	mu    sync.Mutex
	items *gocache.Cache
	clock clock.Clock
}

func NewLocalStore(clock clock.Clock, cleanupInterval time.Duration) *LocalStore {
	if cleanupInterval <= 0 {
		cleanupInterval = time.Minute
	}
	return &LocalStore{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
		clock: clock,
	}
}

func (s *LocalStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.lookup(key)
	if !ok {
		return "", false, nil
	}
	return e.value, true, nil
}

func (s *LocalStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(key, value, ttl)
	return nil
}

func (s *LocalStore) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lookup(key); ok {
		return false, nil
	}
	s.put(key, value, ttl)
	return true, nil
}

func (s *LocalStore) Has(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.lookup(key)
	return ok, nil
}

func (s *LocalStore) lookup(key string) (localEntry, bool) {
	raw, ok := s.items.Get(key)
	if !ok {
		return localEntry{}, false
	}
	e := raw.(localEntry)
	if !e.expiresAt.IsZero() && !s.clock.Now().Before(e.expiresAt) {
		s.items.Delete(key)
		return localEntry{}, false
	}
	return e, true
}

func (s *LocalStore) put(key, value string, ttl time.Duration) {
	e := localEntry{value: value}
	janitorTTL := gocache.NoExpiration
	if ttl > 0 {
		e.expiresAt = s.clock.Now().Add(ttl)
		janitorTTL = ttl
	}
	s.items.Set(key, e, janitorTTL)
}
