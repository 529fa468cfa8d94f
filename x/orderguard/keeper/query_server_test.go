package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/restake-zone/restake/x/orderguard/keeper"
	"github.com/restake-zone/restake/x/orderguard/types"
)

func TestRegisterQueryServerExposesAllMethods(t *testing.T) {
	k, _, _ := setupGuard(t)

	rec := &serviceRecorder{}
	types.RegisterQueryServer(rec, keeper.NewQueryServerImpl(*k))

	require.NotNil(t, rec.desc)
	require.Equal(t, "restake.orderguard.v1.Query", rec.desc.ServiceName)
	require.ElementsMatch(t,
		[]string{"Config", "Markets", "Orders"},
		methodNames(rec.desc),
	)
}

func TestQueryGuardConfig(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	qs := keeper.NewQueryServerImpl(*k)

	resp, err := qs.Config(ctx, &types.QueryConfigRequest{})
	require.NoError(t, err)
	require.Equal(t, guardOwner, resp.Owner)
}

func TestQueryMarkets(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	qs := keeper.NewQueryServerImpl(*k)

	resp, err := qs.Markets(ctx, &types.QueryMarketsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Markets, 1)
	require.Equal(t, marketContract, resp.Markets[0].Contract)
}

func TestQueryOrders(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))
	placeOrder(t, k, ctx, types.SideSell, math.LegacyNewDec(12))
	qs := keeper.NewQueryServerImpl(*k)

	resp, err := qs.Orders(ctx, &types.QueryOrdersRequest{User: trader})
	require.NoError(t, err)
	require.Len(t, resp.Orders, 2)
}

func TestQueryOrdersRejectsBadAddress(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	qs := keeper.NewQueryServerImpl(*k)

	_, err := qs.Orders(ctx, &types.QueryOrdersRequest{User: "not-bech32"})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = qs.Orders(ctx, nil)
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
