package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

func TestSubscribeRejectsUnknownProtocol(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)

	err := k.Subscribe(ctx, user, []string{"mars", "ghost"})
	require.ErrorIs(t, err, types.ErrInvalidProtocol)

	// atomic: the valid half is not applied either
	require.Empty(t, k.GetSubscription(ctx, user))
}

func TestSubscribeIsIdempotent(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)

	require.NoError(t, k.Subscribe(ctx, user, []string{"mars", "luna"}))
	require.NoError(t, k.Subscribe(ctx, user, []string{"luna", "fin"}))

	require.Equal(t, []string{"mars", "luna", "fin"}, k.GetSubscription(ctx, user))
}

func TestUnsubscribeRemovesOnlyNamed(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars", "luna")

	require.NoError(t, k.Unsubscribe(ctx, user, []string{"luna", "never-subscribed"}))

	require.Equal(t, []string{"mars"}, k.GetSubscription(ctx, user))
	require.True(t, k.IsSubscribed(ctx, user, "mars"))
	require.False(t, k.IsSubscribed(ctx, user, "luna"))
}

func TestUnsubscribeLastProtocolDeletesRow(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")

	require.NoError(t, k.Unsubscribe(ctx, user, []string{"mars"}))

	require.Empty(t, k.GetSubscription(ctx, user))
	require.Empty(t, k.GetAllSubscriptions(ctx))
}

func TestUnsubscribeWithoutSubscriptionIsNoOp(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)

	require.NoError(t, k.Unsubscribe(ctx, user, []string{"mars"}))
	require.Empty(t, k.GetAllSubscriptions(ctx))
}
