package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// StoreCheck reports on the Redis server holding drafts, sign-in
// challenges and rate-limit counters.
type StoreCheck struct {
	client *goredis.Client
}

func NewStoreCheck(client *goredis.Client) *StoreCheck {
	return &StoreCheck{client: client}
}

func (s *StoreCheck) Name() string { return "redis" }

func (s *StoreCheck) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s: %w", s.client.Options().Addr, err)
	}
	return nil
}
