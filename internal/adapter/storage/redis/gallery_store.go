package redis

import (
	"context"
	"errors"
	"fmt"

	"chatmint-studio/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const maxGalleryTxRetries = 10

// GalleryStore implements ports.GalleryRepository. Each wallet's gallery
// is one JSON array under "<key>:<wallet>"; updates run as WATCH/MULTI
// transactions so concurrent writers never lose a record.
type GalleryStore struct {
	client *goredis.Client
	key    string
	log    zerolog.Logger
}

// NewGalleryStore creates a new Redis-backed gallery store.
func NewGalleryStore(client *goredis.Client, key string, log zerolog.Logger) *GalleryStore {
	return &GalleryStore{client: client, key: key, log: log}
}

type stringGetter interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
}

// List returns the wallet's records, oldest first.
func (s *GalleryStore) List(ctx context.Context, owner domain.WalletAddress) ([]domain.AssetRecord, error) {
	return s.read(ctx, s.client, owner)
}

// Append adds record at the end of the wallet's gallery.
func (s *GalleryStore) Append(ctx context.Context, owner domain.WalletAddress, record domain.AssetRecord) error {
	_, err := s.update(ctx, owner, func(records []domain.AssetRecord) ([]domain.AssetRecord, bool) {
		return append(records, record), true
	})
	return err
}

// Remove deletes the first record with id.
func (s *GalleryStore) Remove(ctx context.Context, owner domain.WalletAddress, id int64) (bool, error) {
	return s.update(ctx, owner, func(records []domain.AssetRecord) ([]domain.AssetRecord, bool) {
		return domain.RemoveAsset(records, id)
	})
}

func (s *GalleryStore) galleryKey(owner domain.WalletAddress) string {
	return s.key + ":" + owner.String()
}

func (s *GalleryStore) read(ctx context.Context, g stringGetter, owner domain.WalletAddress) ([]domain.AssetRecord, error) {
	data, err := g.Get(ctx, s.galleryKey(owner)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return []domain.AssetRecord{}, nil
		}
		return nil, fmt.Errorf("redis gallery get: %w", err)
	}

	records, err := domain.DecodeGallery(data)
	if err != nil {
		s.log.Warn().Err(err).Str("wallet", owner.String()).Msg("gallery data is malformed, treating as empty")
		return []domain.AssetRecord{}, nil
	}
	return records, nil
}

func (s *GalleryStore) update(
	ctx context.Context,
	owner domain.WalletAddress,
	fn func([]domain.AssetRecord) ([]domain.AssetRecord, bool),
) (bool, error) {
	key := s.galleryKey(owner)
	var changed bool

	txf := func(tx *goredis.Tx) error {
		records, err := s.read(ctx, tx, owner)
		if err != nil {
			return err
		}
		next, ok := fn(records)
		changed = ok
		if !ok {
			return nil
		}

		data, err := domain.EncodeGallery(next)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			return nil
		})
		return err
	}

	for i := 0; i < maxGalleryTxRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if err == nil {
			return changed, nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return false, fmt.Errorf("redis gallery update: %w", err)
	}
	return false, fmt.Errorf("redis gallery update: gave up after %d conflicting writes", maxGalleryTxRetries)
}
