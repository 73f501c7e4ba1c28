package redis

import (
	"context"
	"testing"
	"time"

	"chatmint-studio/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStore_RoundTrip(t *testing.T) {
	_, client := newTestClient(t)
	store := NewDraftStore(client, time.Hour, zerolog.Nop())
	ctx := context.Background()
	owner := mustWallet(t, ownerA)

	got, err := store.Get(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)

	alloc, err := domain.NewOwnershipAllocation(owner)
	require.NoError(t, err)
	require.NoError(t, alloc.AddShare(mustWallet(t, ownerB), 2550))
	validated := mustWallet(t, ownerB)
	draft := &domain.OwnershipDraft{
		Allocation: alloc,
		Pending:    domain.DraftCoOwner{PercentageText: "12.5", WalletAddressText: "0xfb69", ValidatedAddress: &validated},
	}
	require.NoError(t, store.Save(ctx, owner, draft))

	got, err = store.Get(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.BasisPoints(2550), got.Allocation.TotalCoOwnerBasisPoints())
	assert.Equal(t, "12.5", got.Pending.PercentageText)
	assert.Equal(t, "0xfb69", got.Pending.WalletAddressText)
	require.NotNil(t, got.Pending.ValidatedAddress)
	assert.True(t, got.Pending.ValidatedAddress.Equal(validated))

	require.NoError(t, store.Delete(ctx, owner))
	got, err = store.Get(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, store.Delete(ctx, owner), "deleting a missing draft is fine")
}

func TestDraftStore_Expires(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewDraftStore(client, time.Minute, zerolog.Nop())
	ctx := context.Background()
	owner := mustWallet(t, ownerA)

	alloc, err := domain.NewOwnershipAllocation(owner)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, owner, &domain.OwnershipDraft{Allocation: alloc}))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, owner)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDraftStore_UnreadableDraftIsDropped(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewDraftStore(client, time.Hour, zerolog.Nop())
	owner := mustWallet(t, ownerA)

	require.NoError(t, mr.Set(walletKey(draftPrefix, owner), `{"allocation": 42}`))

	got, err := store.Get(context.Background(), owner)
	require.NoError(t, err)
	assert.Nil(t, got)
}
