package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeStore_ConsumeOnce(t *testing.T) {
	_, client := newTestClient(t)
	store := NewChallengeStore(client)
	ctx := context.Background()
	owner := mustWallet(t, ownerA)

	require.NoError(t, store.Save(ctx, owner, "sign me", time.Minute))

	msg, err := store.Consume(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "sign me", msg)

	msg, err = store.Consume(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, msg, "a challenge can only be consumed once")
}

func TestChallengeStore_NewChallengeReplacesOld(t *testing.T) {
	_, client := newTestClient(t)
	store := NewChallengeStore(client)
	ctx := context.Background()
	owner := mustWallet(t, ownerA)

	require.NoError(t, store.Save(ctx, owner, "first", time.Minute))
	require.NoError(t, store.Save(ctx, owner, "second", time.Minute))

	msg, err := store.Consume(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "second", msg)
}

func TestChallengeStore_Expires(t *testing.T) {
	mr, client := newTestClient(t)
	store := NewChallengeStore(client)
	ctx := context.Background()
	owner := mustWallet(t, ownerA)

	require.NoError(t, store.Save(ctx, owner, "sign me", time.Minute))
	mr.FastForward(2 * time.Minute)

	msg, err := store.Consume(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestChallengeStore_WalletsAreIndependent(t *testing.T) {
	_, client := newTestClient(t)
	store := NewChallengeStore(client)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, mustWallet(t, ownerA), "for A", time.Minute))

	msg, err := store.Consume(ctx, mustWallet(t, ownerB))
	require.NoError(t, err)
	assert.Empty(t, msg)
}
