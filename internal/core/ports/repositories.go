package ports

import (
	"context"
	"time"

	"chatmint-studio/internal/core/domain"
)

// GalleryRepository keeps each wallet's registered assets. Every mutation
// is an atomic read-modify-write of the wallet's whole collection.
type GalleryRepository interface {
	List(ctx context.Context, owner domain.WalletAddress) ([]domain.AssetRecord, error)
	Append(ctx context.Context, owner domain.WalletAddress, record domain.AssetRecord) error
	// Remove deletes the first record with id. Absent ids are not an error.
	Remove(ctx context.Context, owner domain.WalletAddress, id int64) (bool, error)
}

// DraftStore persists one in-progress ownership draft per wallet.
type DraftStore interface {
	// Get returns nil, nil when the wallet has no draft.
	Get(ctx context.Context, owner domain.WalletAddress) (*domain.OwnershipDraft, error)
	Save(ctx context.Context, owner domain.WalletAddress, draft *domain.OwnershipDraft) error
	Delete(ctx context.Context, owner domain.WalletAddress) error
}

// ChallengeStore keeps one-time wallet sign-in challenges.
type ChallengeStore interface {
	Save(ctx context.Context, owner domain.WalletAddress, message string, ttl time.Duration) error
	// Consume returns and deletes the challenge, or "" when none is live.
	Consume(ctx context.Context, owner domain.WalletAddress) (string, error)
}

// AuditRepository persists audit log entries.
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix seconds
}
