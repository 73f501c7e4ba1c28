package redis

import (
	"context"
	"fmt"

	"chatmint-studio/config"
	"chatmint-studio/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Key prefixes. Gallery keys are configured separately.
const (
	draftPrefix     = "draft:"
	challengePrefix = "challenge:"
	ratePrefix      = "ratelimit:"
)

// NewClient connects to Redis and fails fast when the server cannot be
// reached within the dial timeout.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	opts := &goredis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout

		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.DialTimeout)
		defer cancel()
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis %s unreachable: %w", opts.Addr, err)
	}

	log.Info().
		Str("addr", opts.Addr).
		Int("db", opts.DB).
		Int("pool_size", opts.PoolSize).
		Msg("Redis ready")
	return client, nil
}

// walletKey scopes a key to one wallet. Addresses are checksummed, so
// input in any casing maps to the same key.
func walletKey(prefix string, owner domain.WalletAddress) string {
	return prefix + owner.String()
}
