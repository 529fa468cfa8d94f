package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/restake-zone/restake/x/autoclaim/keeper"
	"github.com/restake-zone/restake/x/autoclaim/types"
)

func TestRegisterQueryServerExposesAllMethods(t *testing.T) {
	k, _, _, _ := setupKeeper(t)

	rec := &serviceRecorder{}
	types.RegisterQueryServer(rec, keeper.NewQueryServerImpl(*k))

	require.NotNil(t, rec.desc)
	require.Equal(t, "restake.autoclaim.v1.Query", rec.desc.ServiceName)
	require.ElementsMatch(t,
		[]string{"Config", "Subscriptions", "SubscribedProtocols", "PendingOperations"},
		methodNames(rec.desc),
	)
}

func TestQueryConfig(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	qs := keeper.NewQueryServerImpl(*k)

	resp, err := qs.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, owner, resp.Owner)
	require.Equal(t, uint32(5), resp.MaxParallelClaims)
	require.Len(t, resp.ProtocolConfigs, 3)
}

func TestQueryConfigNilRequest(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	qs := keeper.NewQueryServerImpl(*k)

	_, err := qs.Config(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQuerySubscriptions(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")
	subscribe(t, k, ctx, otherUser, "luna", "fin")
	qs := keeper.NewQueryServerImpl(*k)

	resp, err := qs.Subscriptions(ctx, &types.QuerySubscriptionsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Subscriptions, 2)
}

func TestQuerySubscribedProtocols(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars", "luna")
	qs := keeper.NewQueryServerImpl(*k)

	resp, err := qs.SubscribedProtocols(ctx, &types.QuerySubscribedProtocolsRequest{User: user})
	require.NoError(t, err)
	require.Len(t, resp.Protocols, 2)
	require.Equal(t, "mars", resp.Protocols[0].Protocol)
	require.Nil(t, resp.Protocols[0].LastAutoclaim)
}

func TestQuerySubscribedProtocolsRejectsBadAddress(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	qs := keeper.NewQueryServerImpl(*k)

	_, err := qs.SubscribedProtocols(ctx, &types.QuerySubscribedProtocolsRequest{User: "not-bech32"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestQueryPendingOperations(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")

	_, err := k.ClaimAndStake(ctx, owner, []types.UserProtocols{
		{User: user, Protocols: []string{"mars"}},
	})
	require.NoError(t, err)

	qs := keeper.NewQueryServerImpl(*k)
	resp, err := qs.PendingOperations(ctx, &types.QueryPendingOperationsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Operations, 1)
}
