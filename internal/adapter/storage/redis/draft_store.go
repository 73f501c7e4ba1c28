package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"chatmint-studio/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// DraftStore implements ports.DraftStore. Drafts are JSON values that
// expire after ttl of inactivity.
type DraftStore struct {
	client *goredis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewDraftStore creates a new Redis-backed draft store.
func NewDraftStore(client *goredis.Client, ttl time.Duration, log zerolog.Logger) *DraftStore {
	return &DraftStore{client: client, ttl: ttl, log: log}
}

// Get returns nil, nil if the wallet has no draft. Unreadable drafts are
// dropped so the wallet can start over.
func (s *DraftStore) Get(ctx context.Context, owner domain.WalletAddress) (*domain.OwnershipDraft, error) {
	data, err := s.client.Get(ctx, walletKey(draftPrefix, owner)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis draft get: %w", err)
	}

	var d domain.OwnershipDraft
	if err := json.Unmarshal(data, &d); err != nil {
		s.log.Warn().Err(err).Str("wallet", owner.String()).Msg("ignoring unreadable ownership draft")
		return nil, nil
	}
	return &d, nil
}

// Save writes the draft and refreshes its expiry.
func (s *DraftStore) Save(ctx context.Context, owner domain.WalletAddress, draft *domain.OwnershipDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("encoding draft: %w", err)
	}
	if err := s.client.Set(ctx, walletKey(draftPrefix, owner), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis draft set: %w", err)
	}
	return nil
}

// Delete removes the draft. Missing drafts are not an error.
func (s *DraftStore) Delete(ctx context.Context, owner domain.WalletAddress) error {
	if err := s.client.Del(ctx, walletKey(draftPrefix, owner)).Err(); err != nil {
		return fmt.Errorf("redis draft del: %w", err)
	}
	return nil
}
