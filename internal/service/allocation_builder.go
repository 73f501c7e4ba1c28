package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/internal/core/ports"
	"chatmint-studio/pkg/apperror"

	"github.com/rs/zerolog"
)

// AllocationBuilderImpl implements ports.AllocationBuilder on top of a
// DraftStore. Each call loads the wallet's draft, applies one edit and
// saves it back while holding that wallet's lock.
type AllocationBuilderImpl struct {
	drafts ports.DraftStore
	locks  *walletLocks
	log    zerolog.Logger
	now    func() time.Time
}

// NewAllocationBuilder creates a new allocation builder.
func NewAllocationBuilder(drafts ports.DraftStore, log zerolog.Logger) *AllocationBuilderImpl {
	return &AllocationBuilderImpl{
		drafts: drafts,
		locks:  newWalletLocks(),
		log:    log,
		now:    time.Now,
	}
}

// GetDraft returns the wallet's draft, or a fresh empty one.
func (b *AllocationBuilderImpl) GetDraft(ctx context.Context, owner domain.WalletAddress) (*domain.OwnershipDraft, error) {
	return b.load(ctx, owner)
}

// SetDraftPercentage stores the raw percentage text. Text that is not a
// number, is negative, or exceeds the remaining budget is ignored and the
// draft is returned unchanged. Empty text clears the field.
func (b *AllocationBuilderImpl) SetDraftPercentage(ctx context.Context, owner domain.WalletAddress, text string) (*domain.OwnershipDraft, error) {
	return b.edit(ctx, owner, func(d *domain.OwnershipDraft) (bool, error) {
		if strings.TrimSpace(text) == "" {
			d.Pending.PercentageText = ""
			return true, nil
		}
		pct, err := domain.ParsePercent(text)
		if err != nil || pct.IsNegative() {
			return false, nil
		}
		remaining := domain.BasisPointsToPercent(d.Allocation.RemainingBudget())
		if pct.GreaterThan(remaining) {
			return false, nil
		}
		d.Pending.PercentageText = text
		return true, nil
	})
}

// SetDraftWallet stores the raw wallet text together with the result of
// validating it right away.
func (b *AllocationBuilderImpl) SetDraftWallet(ctx context.Context, owner domain.WalletAddress, text string) (*domain.OwnershipDraft, error) {
	return b.edit(ctx, owner, func(d *domain.OwnershipDraft) (bool, error) {
		d.Pending.WalletAddressText = text
		d.Pending.ValidatedAddress = nil
		if addr, err := domain.ParseWalletAddress(text); err == nil {
			d.Pending.ValidatedAddress = &addr
		}
		return true, nil
	})
}

// CommitDraft turns the pending entry into a co-owner share. On failure the
// pending entry is left exactly as it was so the user can correct it.
func (b *AllocationBuilderImpl) CommitDraft(ctx context.Context, owner domain.WalletAddress) (*domain.OwnershipDraft, error) {
	return b.edit(ctx, owner, func(d *domain.OwnershipDraft) (bool, error) {
		pct, err := domain.ParsePercent(d.Pending.PercentageText)
		if err != nil || domain.IsBelowMinimumPercent(pct) {
			return false, apperror.ErrPercentageOutOfRange()
		}
		if d.Pending.ValidatedAddress == nil {
			return false, apperror.ErrInvalidAddress()
		}

		addr := *d.Pending.ValidatedAddress
		if err := d.Allocation.AddShare(addr, domain.PercentToBasisPoints(pct)); err != nil {
			return false, err
		}

		b.log.Info().
			Str("wallet", owner.String()).
			Str("co_owner", addr.String()).
			Str("percent", pct.String()).
			Msg("co-owner share committed")

		d.Pending = domain.DraftCoOwner{}
		return true, nil
	})
}

// RemoveCoOwner drops a committed share. Unknown addresses are a no-op.
func (b *AllocationBuilderImpl) RemoveCoOwner(ctx context.Context, owner domain.WalletAddress, address string) (*domain.OwnershipDraft, error) {
	addr, err := domain.ParseWalletAddress(address)
	if err != nil {
		return nil, err
	}
	return b.edit(ctx, owner, func(d *domain.OwnershipDraft) (bool, error) {
		if err := d.Allocation.RemoveShare(addr); err != nil {
			return false, err
		}
		return true, nil
	})
}

// Discard forgets the wallet's draft entirely.
func (b *AllocationBuilderImpl) Discard(ctx context.Context, owner domain.WalletAddress) error {
	unlock := b.locks.lock(owner)
	defer unlock()

	if err := b.drafts.Delete(ctx, owner); err != nil {
		return apperror.ErrStorageError(err)
	}
	return nil
}

// edit applies fn to the current draft. The draft is saved only when fn
// reports a change and returns no error.
func (b *AllocationBuilderImpl) edit(ctx context.Context, owner domain.WalletAddress, fn func(*domain.OwnershipDraft) (bool, error)) (*domain.OwnershipDraft, error) {
	unlock := b.locks.lock(owner)
	defer unlock()

	d, err := b.load(ctx, owner)
	if err != nil {
		return nil, err
	}

	changed, err := fn(d)
	if err != nil {
		return nil, err
	}
	if !changed {
		return d, nil
	}

	d.UpdatedAt = b.now().UTC()
	if err := b.drafts.Save(ctx, owner, d); err != nil {
		return nil, apperror.ErrStorageError(err)
	}
	return d, nil
}

func (b *AllocationBuilderImpl) load(ctx context.Context, owner domain.WalletAddress) (*domain.OwnershipDraft, error) {
	d, err := b.drafts.Get(ctx, owner)
	if err != nil {
		return nil, apperror.ErrStorageError(err)
	}
	if d != nil && d.Allocation != nil && d.Allocation.PrimaryOwner().Equal(owner) && !d.Allocation.IsFrozen() {
		return d, nil
	}
	if d != nil {
		b.log.Warn().Str("wallet", owner.String()).Msg("discarding unusable ownership draft")
	}

	alloc, err := domain.NewOwnershipAllocation(owner)
	if err != nil {
		return nil, err
	}
	return &domain.OwnershipDraft{Allocation: alloc}, nil
}

// walletLocks serialises draft edits per wallet within this process.
type walletLocks struct {
	mu    sync.Mutex
	locks map[domain.WalletAddress]*walletLock
}

type walletLock struct {
	mu   sync.Mutex
	refs int
}

func newWalletLocks() *walletLocks {
	return &walletLocks{locks: make(map[domain.WalletAddress]*walletLock)}
}

func (w *walletLocks) lock(owner domain.WalletAddress) (unlock func()) {
	w.mu.Lock()
	l, ok := w.locks[owner]
	if !ok {
		l = &walletLock{}
		w.locks[owner] = l
	}
	l.refs++
	w.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		w.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(w.locks, owner)
		}
		w.mu.Unlock()
	}
}
