package memory

import (
	"context"
	"testing"
	"time"

	"chatmint-studio/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	ownerA = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	ownerB = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

func mustWallet(t *testing.T, s string) domain.WalletAddress {
	t.Helper()
	w, err := domain.ParseWalletAddress(s)
	require.NoError(t, err)
	return w
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestDraftStore(t *testing.T) {
	clk := &clock{t: time.Unix(1_700_000_000, 0)}
	store := NewDraftStore(time.Hour)
	store.now = clk.now
	ctx := context.Background()
	owner := mustWallet(t, ownerA)

	got, err := store.Get(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)

	alloc, err := domain.NewOwnershipAllocation(owner)
	require.NoError(t, err)
	require.NoError(t, alloc.AddShare(mustWallet(t, ownerB), 500))
	draft := &domain.OwnershipDraft{Allocation: alloc, Pending: domain.DraftCoOwner{PercentageText: "3"}}
	require.NoError(t, store.Save(ctx, owner, draft))

	got, err = store.Get(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.BasisPoints(500), got.Allocation.TotalCoOwnerBasisPoints())

	// Mutating the returned draft must not change the stored one.
	require.NoError(t, got.Allocation.RemoveShare(mustWallet(t, ownerB)))
	again, err := store.Get(ctx, owner)
	require.NoError(t, err)
	assert.True(t, again.Allocation.HasCoOwners())

	clk.advance(2 * time.Hour)
	got, err = store.Get(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got, "drafts expire")

	require.NoError(t, store.Save(ctx, owner, draft))
	require.NoError(t, store.Delete(ctx, owner))
	got, err = store.Get(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestChallengeStore(t *testing.T) {
	clk := &clock{t: time.Unix(1_700_000_000, 0)}
	store := NewChallengeStore()
	store.now = clk.now
	ctx := context.Background()
	owner := mustWallet(t, ownerA)

	require.NoError(t, store.Save(ctx, owner, "hello", time.Minute))
	msg, err := store.Consume(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "hello", msg)

	msg, err = store.Consume(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, msg)

	require.NoError(t, store.Save(ctx, owner, "late", time.Minute))
	clk.advance(time.Minute)
	msg, err = store.Consume(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, msg, "expired challenges are not returned")
}

func TestRateLimitStore(t *testing.T) {
	clk := &clock{t: time.Unix(1_700_000_040, 0)}
	store := NewRateLimitStore()
	store.now = clk.now
	ctx := context.Background()

	for i := int64(1); i <= 2; i++ {
		res, err := store.Allow(ctx, "k", 2, time.Minute)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2-i, res.Remaining)
	}

	res, err := store.Allow(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.False(t, res.Allowed)
	assert.Equal(t, int64(1_700_000_040/60+1)*60, res.ResetAt)

	res, err = store.Allow(ctx, "other", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)

	clk.advance(time.Minute)
	res, err = store.Allow(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Len(t, store.counters, 1, "old windows are pruned")
}
