package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	"github.com/restake-zone/restake/x/orderguard/keeper"
	"github.com/restake-zone/restake/x/orderguard/types"
)

// serviceRecorder captures service registrations the way the app's msg and
// query routers receive them.
type serviceRecorder struct {
	desc *grpc.ServiceDesc
	impl interface{}
}

func (r *serviceRecorder) RegisterService(desc *grpc.ServiceDesc, impl interface{}) {
	r.desc = desc
	r.impl = impl
}

func methodNames(desc *grpc.ServiceDesc) []string {
	names := make([]string, 0, len(desc.Methods))
	for _, m := range desc.Methods {
		names = append(names, m.MethodName)
	}
	return names
}

func TestRegisterMsgServerExposesAllMethods(t *testing.T) {
	k, _, _ := setupGuard(t)

	rec := &serviceRecorder{}
	types.RegisterMsgServer(rec, keeper.NewMsgServerImpl(*k))

	require.NotNil(t, rec.desc)
	require.Equal(t, "restake.orderguard.v1.Msg", rec.desc.ServiceName)
	require.ElementsMatch(t,
		[]string{"AddMarket", "PlaceOrder", "ExecuteSlTp"},
		methodNames(rec.desc),
	)
}

func TestMsgServerAddMarket(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	srv := keeper.NewMsgServerImpl(*k)

	_, err := srv.AddMarket(ctx, &types.MsgAddMarket{
		Sender:   guardOwner,
		Contract: "contract-new",
		Denoms:   types.Denoms{Base: "ubase", Quote: "uquote"},
	})
	require.NoError(t, err)

	_, found := k.GetMarket(ctx, "contract-new")
	require.True(t, found)
}

func TestMsgServerAddMarketRejectsNonOwner(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	srv := keeper.NewMsgServerImpl(*k)

	_, err := srv.AddMarket(ctx, &types.MsgAddMarket{
		Sender:   trader,
		Contract: "contract-new",
		Denoms:   types.Denoms{Base: "ubase", Quote: "uquote"},
	})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestMsgServerPlaceOrderThroughServiceDesc(t *testing.T) {
	k, ctx, host := setupGuard(t)

	rec := &serviceRecorder{}
	types.RegisterMsgServer(rec, keeper.NewMsgServerImpl(*k))

	msg := types.NewMsgPlaceOrder(
		trader, marketContract, types.SideBuy, math.LegacyNewDec(10), math.NewInt(500),
		decPtr(math.LegacyNewDec(8)), nil,
	)

	var handled bool
	for _, m := range rec.desc.Methods {
		if m.MethodName != "PlaceOrder" {
			continue
		}
		handled = true
		dec := func(v interface{}) error {
			*v.(*types.MsgPlaceOrder) = *msg
			return nil
		}
		resp, err := m.Handler(rec.impl, ctx, dec, nil)
		require.NoError(t, err)
		require.Equal(t, types.PlaceOrderBase, resp.(*types.MsgPlaceOrderResponse).Handle)
	}
	require.True(t, handled)
	require.Len(t, host.Dispatches, 1)
}

func TestMsgServerExecuteSlTp(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))
	srv := keeper.NewMsgServerImpl(*k)

	resp, err := srv.ExecuteSlTp(ctx, types.NewMsgExecuteSlTp(
		guardOwner, trader, marketContract, types.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(8), math.NewInt(500),
	))
	require.NoError(t, err)
	require.Equal(t, types.TriggerStopLoss, resp.Trigger)
}

func TestMsgServerRejectsInvalidMessage(t *testing.T) {
	k, ctx, host := setupGuard(t)
	srv := keeper.NewMsgServerImpl(*k)

	_, err := srv.PlaceOrder(ctx, &types.MsgPlaceOrder{Sender: "not-bech32"})
	require.Error(t, err)
	require.Empty(t, host.Dispatches)
}
