package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chatmint-studio/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// GalleryRepo implements ports.GalleryRepository with one JSONB row per
// wallet. Mutations lock the row with SELECT ... FOR UPDATE so concurrent
// appends are serialised.
type GalleryRepo struct {
	pool Pool
	log  zerolog.Logger
	now  func() time.Time
}

// NewGalleryRepo creates a new GalleryRepo.
func NewGalleryRepo(pool Pool, log zerolog.Logger) *GalleryRepo {
	return &GalleryRepo{pool: pool, log: log, now: time.Now}
}

// List returns the wallet's records, oldest first.
func (r *GalleryRepo) List(ctx context.Context, owner domain.WalletAddress) ([]domain.AssetRecord, error) {
	var data []byte
	err := r.pool.QueryRow(ctx, `SELECT data FROM galleries WHERE wallet = $1`, owner.String()).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.AssetRecord{}, nil
		}
		return nil, fmt.Errorf("select gallery: %w", err)
	}
	return r.decode(owner, data), nil
}

// Append adds record at the end of the wallet's gallery.
func (r *GalleryRepo) Append(ctx context.Context, owner domain.WalletAddress, record domain.AssetRecord) error {
	_, err := r.update(ctx, owner, func(records []domain.AssetRecord) ([]domain.AssetRecord, bool) {
		return append(records, record), true
	})
	return err
}

// Remove deletes the first record with id.
func (r *GalleryRepo) Remove(ctx context.Context, owner domain.WalletAddress, id int64) (bool, error) {
	return r.update(ctx, owner, func(records []domain.AssetRecord) ([]domain.AssetRecord, bool) {
		return domain.RemoveAsset(records, id)
	})
}

func (r *GalleryRepo) update(
	ctx context.Context,
	owner domain.WalletAddress,
	fn func([]domain.AssetRecord) ([]domain.AssetRecord, bool),
) (bool, error) {
	wallet := owner.String()
	var changed bool

	err := inTx(ctx, r.pool, func(tx pgx.Tx) error {
		// Make sure the row exists so FOR UPDATE has something to lock.
		if _, err := tx.Exec(ctx,
			`INSERT INTO galleries (wallet, data, updated_at) VALUES ($1, '[]'::jsonb, $2)
			 ON CONFLICT (wallet) DO NOTHING`,
			wallet, r.now().UTC(),
		); err != nil {
			return fmt.Errorf("ensure gallery row: %w", err)
		}

		var data []byte
		if err := tx.QueryRow(ctx, `SELECT data FROM galleries WHERE wallet = $1 FOR UPDATE`, wallet).Scan(&data); err != nil {
			return fmt.Errorf("lock gallery: %w", err)
		}

		var next []domain.AssetRecord
		next, changed = fn(r.decode(owner, data))
		if !changed {
			return nil
		}

		payload, err := domain.EncodeGallery(next)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`UPDATE galleries SET data = $2, updated_at = $3 WHERE wallet = $1`,
			wallet, payload, r.now().UTC(),
		); err != nil {
			return fmt.Errorf("update gallery: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return changed, nil
}

func (r *GalleryRepo) decode(owner domain.WalletAddress, data []byte) []domain.AssetRecord {
	records, err := domain.DecodeGallery(data)
	if err != nil {
		r.log.Warn().Err(err).Str("wallet", owner.String()).Msg("gallery data is malformed, treating as empty")
		return []domain.AssetRecord{}
	}
	return records
}

// inTx commits when fn succeeds. A failed commit is reported as is; the
// row lock is released either way.
func inTx(ctx context.Context, pool Pool, fn func(pgx.Tx) error) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin gallery tx: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rollback gallery tx: %w", rbErr))
		}
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit gallery tx: %w", err)
	}
	return nil
}
