// Package storage picks the gallery, draft, challenge and rate-limit
// backends from configuration.
package storage

import (
	"context"
	"fmt"

	"chatmint-studio/config"
	"chatmint-studio/internal/adapter/storage/localfile"
	"chatmint-studio/internal/adapter/storage/memory"
	pgStorage "chatmint-studio/internal/adapter/storage/postgres"
	redisStorage "chatmint-studio/internal/adapter/storage/redis"
	"chatmint-studio/internal/core/ports"

	"github.com/rs/zerolog"
)

// Stores holds the configured backends. Without Redis, drafts, challenges
// and rate-limit counters live in process memory.
type Stores struct {
	Gallery    ports.GalleryRepository
	Drafts     ports.DraftStore
	Challenges ports.ChallengeStore
	RateLimits ports.RateLimitStore
	Audit      ports.AuditRepository // nil without PostgreSQL
	Health     []ports.HealthChecker

	closers []func()
}

// Close releases every connection opened by Open.
func (s *Stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}

// Open connects to Redis and PostgreSQL when enabled and wires the stores.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Stores, error) {
	s := &Stores{}
	fail := func(err error) (*Stores, error) {
		s.Close()
		return nil, err
	}

	var redisGallery *redisStorage.GalleryStore
	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return fail(err)
		}
		s.closers = append(s.closers, func() { _ = rdb.Close() })
		s.Drafts = redisStorage.NewDraftStore(rdb, cfg.Gallery.DraftTTL, log)
		s.Challenges = redisStorage.NewChallengeStore(rdb)
		s.RateLimits = redisStorage.NewRateLimitStore(rdb)
		s.Health = append(s.Health, redisStorage.NewStoreCheck(rdb))
		redisGallery = redisStorage.NewGalleryStore(rdb, cfg.Gallery.Key, log)
	} else {
		log.Warn().Msg("Redis disabled; drafts, challenges and rate limits are kept in memory")
		s.Drafts = memory.NewDraftStore(cfg.Gallery.DraftTTL)
		s.Challenges = memory.NewChallengeStore()
		s.RateLimits = memory.NewRateLimitStore()
	}

	var pgGallery *pgStorage.GalleryRepo
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			return fail(err)
		}
		s.closers = append(s.closers, pool.Close)
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			return fail(err)
		}
		s.Audit = pgStorage.NewAuditRepo(pool)
		s.Health = append(s.Health, pgStorage.NewSchemaCheck(pool))
		pgGallery = pgStorage.NewGalleryRepo(pool, log)
	}

	switch cfg.Gallery.Backend {
	case config.GalleryBackendRedis:
		if redisGallery == nil {
			return fail(fmt.Errorf("gallery backend %q needs redis.enabled", cfg.Gallery.Backend))
		}
		s.Gallery = redisGallery
	case config.GalleryBackendPostgres:
		if pgGallery == nil {
			return fail(fmt.Errorf("gallery backend %q needs database.enabled", cfg.Gallery.Backend))
		}
		s.Gallery = pgGallery
	default:
		fileStore, err := localfile.NewGalleryStore(cfg.Gallery.Dir, cfg.Gallery.Key, log)
		if err != nil {
			return fail(err)
		}
		s.Gallery = fileStore
		s.Health = append(s.Health, localfile.NewDirCheck(cfg.Gallery.Dir))
	}

	log.Info().Str("backend", cfg.Gallery.Backend).Msg("gallery store ready")
	return s, nil
}
