package store

import (
	"context"
	"sync"
	"time"

	"github.com/mikiasgoitom/DailyWish/internal/domain/contract"
)

// MemoryStore keeps counters and sets in process memory. It is meant for local runs
// and tests; a single mutex makes every operation atomic.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]int64
	sets     map[string]map[string]struct{}
	expiry   map[string]time.Time
	now      func() time.Time
}

var _ contract.IKeyValueStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		counters: make(map[string]int64),
		sets:     make(map[string]map[string]struct{}),
		expiry:   make(map[string]time.Time),
		now:      time.Now,
	}
}

// evictIfExpired must be called with mu held.
func (s *MemoryStore) evictIfExpired(key string) {
	deadline, ok := s.expiry[key]
	if !ok || s.now().Before(deadline) {
		return
	}
	delete(s.counters, key)
	delete(s.sets, key)
	delete(s.expiry, key)
}

func (s *MemoryStore) Get(ctx context.Context, key string) (int64, bool, error) {
	if err := ctx.Err(); err != nil {
		return 0, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)
	v, ok := s.counters[key]
	return v, ok, nil
}

func (s *MemoryStore) Increment(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)
	s.counters[key]++
	return s.counters[key], nil
}

func (s *MemoryStore) AddToSet(ctx context.Context, key, member string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)
	set, ok := s.sets[key]
	if !ok {
		set = make(map[string]struct{})
		s.sets[key] = set
	}
	if _, exists := set[member]; exists {
		return false, nil
	}
	set[member] = struct{}{}
	return true, nil
}

func (s *MemoryStore) IsMember(ctx context.Context, key, member string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)
	_, ok := s.sets[key][member]
	return ok, nil
}

func (s *MemoryStore) Expire(ctx context.Context, key string, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictIfExpired(key)
	_, isCounter := s.counters[key]
	_, isSet := s.sets[key]
	if !isCounter && !isSet {
		return nil
	}
	s.expiry[key] = s.now().Add(ttl)
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
