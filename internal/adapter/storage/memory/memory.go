// Package memory holds process-local stores used when Redis is disabled.
// State is lost on restart and is not shared between replicas.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// DraftStore implements ports.DraftStore. Drafts are stored as JSON so
// callers never share pointers with the store.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[domain.WalletAddress]entry
	ttl    time.Duration
	now    func() time.Time
}

// NewDraftStore creates an in-memory draft store.
func NewDraftStore(ttl time.Duration) *DraftStore {
	return &DraftStore{drafts: make(map[domain.WalletAddress]entry), ttl: ttl, now: time.Now}
}

func (s *DraftStore) Get(_ context.Context, owner domain.WalletAddress) (*domain.OwnershipDraft, error) {
	s.mu.Lock()
	e, ok := s.drafts[owner]
	if ok && e.expired(s.now()) {
		delete(s.drafts, owner)
		ok = false
	}
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	var d domain.OwnershipDraft
	if err := json.Unmarshal(e.value, &d); err != nil {
		return nil, fmt.Errorf("decoding draft: %w", err)
	}
	return &d, nil
}

func (s *DraftStore) Save(_ context.Context, owner domain.WalletAddress, draft *domain.OwnershipDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}

	e := entry{value: data}
	if s.ttl > 0 {
		e.expiresAt = s.now().Add(s.ttl)
	}
	s.mu.Lock()
	s.drafts[owner] = e
	s.mu.Unlock()
	return nil
}

func (s *DraftStore) Delete(_ context.Context, owner domain.WalletAddress) error {
	s.mu.Lock()
	delete(s.drafts, owner)
	s.mu.Unlock()
	return nil
}

// ChallengeStore implements ports.ChallengeStore.
type ChallengeStore struct {
	mu         sync.Mutex
	challenges map[domain.WalletAddress]entry
	now        func() time.Time
}

// NewChallengeStore creates an in-memory challenge store.
func NewChallengeStore() *ChallengeStore {
	return &ChallengeStore{challenges: make(map[domain.WalletAddress]entry), now: time.Now}
}

func (s *ChallengeStore) Save(_ context.Context, owner domain.WalletAddress, message string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.challenges[owner] = entry{value: []byte(message), expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *ChallengeStore) Consume(_ context.Context, owner domain.WalletAddress) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.challenges[owner]
	delete(s.challenges, owner)
	if !ok || e.expired(s.now()) {
		return "", nil
	}
	return string(e.value), nil
}

// RateLimitStore implements ports.RateLimitStore with fixed windows.
type RateLimitStore struct {
	mu       sync.Mutex
	counters map[string]*counter
	now      func() time.Time
}

type counter struct {
	count   int64
	resetAt int64
}

// NewRateLimitStore creates an in-memory rate limit store.
func NewRateLimitStore() *RateLimitStore {
	return &RateLimitStore{counters: make(map[string]*counter), now: time.Now}
}

func (s *RateLimitStore) Allow(_ context.Context, key string, limit int64, window time.Duration) (*ports.RateLimitResult, error) {
	secs := int64(window.Seconds())
	if secs < 1 {
		secs = 1
	}
	now := s.now().Unix()
	windowID := now / secs
	k := fmt.Sprintf("%s:%d:%d", key, secs, windowID)

	s.mu.Lock()
	for ck, c := range s.counters {
		if c.resetAt <= now {
			delete(s.counters, ck)
		}
	}
	c, ok := s.counters[k]
	if !ok {
		c = &counter{resetAt: (windowID + 1) * secs}
		s.counters[k] = c
	}
	c.count++
	count, resetAt := c.count, c.resetAt
	s.mu.Unlock()

	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return &ports.RateLimitResult{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}
