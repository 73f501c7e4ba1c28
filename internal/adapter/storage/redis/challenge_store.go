package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chatmint-studio/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ChallengeStore implements ports.ChallengeStore. Each wallet has at most
// one live challenge; issuing a new one replaces the old.
type ChallengeStore struct {
	client *goredis.Client
}

// NewChallengeStore creates a new Redis-backed challenge store.
func NewChallengeStore(client *goredis.Client) *ChallengeStore {
	return &ChallengeStore{client: client}
}

// Save stores message for ttl.
func (s *ChallengeStore) Save(ctx context.Context, owner domain.WalletAddress, message string, ttl time.Duration) error {
	if err := s.client.Set(ctx, walletKey(challengePrefix, owner), message, ttl).Err(); err != nil {
		return fmt.Errorf("redis challenge set: %w", err)
	}
	return nil
}

// Consume atomically reads and deletes the challenge so it can only be
// verified once.
func (s *ChallengeStore) Consume(ctx context.Context, owner domain.WalletAddress) (string, error) {
	msg, err := s.client.GetDel(ctx, walletKey(challengePrefix, owner)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redis challenge getdel: %w", err)
	}
	return msg, nil
}
