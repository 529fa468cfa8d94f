package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/restake-zone/restake/testutil/keeper"
	"github.com/restake-zone/restake/x/orderguard/keeper"
	"github.com/restake-zone/restake/x/orderguard/types"
)

var (
	guardOwner = testkeeper.TestAddr(11)
	trader     = testkeeper.TestAddr(12)
)

const marketContract = "contract-fin-market"

func setupGuard(t *testing.T) (*keeper.Keeper, sdk.Context, *testkeeper.OrderMockHost) {
	k, ctx, host := testkeeper.OrderguardKeeper(t)
	k.InitGenesis(ctx, types.GenesisState{
		Params: types.Params{Owner: guardOwner},
		Markets: []types.Market{
			{Contract: marketContract, Denoms: types.Denoms{Base: "ubase", Quote: "uquote"}},
		},
	})
	return k, ctx, host
}

func decPtr(d math.LegacyDec) *math.LegacyDec { return &d }

func placeOrder(t *testing.T, k *keeper.Keeper, ctx sdk.Context, side types.Side, price math.LegacyDec) uint64 {
	t.Helper()
	resp, err := k.PlaceOrder(ctx, types.NewMsgPlaceOrder(
		trader, marketContract, side, price, math.NewInt(500),
		decPtr(math.LegacyNewDec(8)), decPtr(math.LegacyNewDec(15)),
	))
	require.NoError(t, err)
	return resp.Handle
}

func TestAddMarketRequiresOwner(t *testing.T) {
	k, ctx, _ := setupGuard(t)

	market := types.Market{Contract: "contract-new", Denoms: types.Denoms{Base: "ubase", Quote: "uquote"}}
	require.ErrorIs(t, k.AddMarket(ctx, trader, market), types.ErrUnauthorized)
	require.NoError(t, k.AddMarket(ctx, guardOwner, market))

	_, found := k.GetMarket(ctx, "contract-new")
	require.True(t, found)
}

func TestPlaceOrderRejectsUnknownMarket(t *testing.T) {
	k, ctx, host := setupGuard(t)

	_, err := k.PlaceOrder(ctx, types.NewMsgPlaceOrder(
		trader, "contract-ghost", types.SideBuy, math.LegacyNewDec(10), math.NewInt(500),
		decPtr(math.LegacyNewDec(8)), nil,
	))
	require.ErrorIs(t, err, types.ErrInvalidMarket)
	require.Empty(t, host.Dispatches)
}

func TestPlaceOrderRequiresATrigger(t *testing.T) {
	k, ctx, _ := setupGuard(t)

	_, err := k.PlaceOrder(ctx, types.NewMsgPlaceOrder(
		trader, marketContract, types.SideBuy, math.LegacyNewDec(10), math.NewInt(500),
		nil, nil,
	))
	require.ErrorIs(t, err, types.ErrInvalidOrder)
}

func TestPlaceOrderEscrowsSideDeposit(t *testing.T) {
	k, ctx, host := setupGuard(t)

	h := placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))
	require.Equal(t, types.PlaceOrderBase, h)

	op := host.Last().Op
	require.Equal(t, trader, op.User)
	require.Equal(t, marketContract, op.Contract)
	require.JSONEq(t, `{"submit_order":{"side":"buy","price":"10.000000000000000000"}}`, string(op.Msg))
	// buy side escrows the quote denom
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uquote", math.NewInt(500))), op.Funds)

	// sell side escrows the base denom
	placeOrder(t, k, ctx, types.SideSell, math.LegacyNewDec(12))
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("ubase", math.NewInt(500))), host.Last().Op.Funds)

	// the row rests immediately
	order, found := k.GetOrder(ctx, trader, marketContract, types.SideBuy, math.LegacyNewDec(10))
	require.True(t, found)
	require.Equal(t, math.NewInt(500), order.Amount)
}

func TestPlaceOrderRejectsDuplicateKey(t *testing.T) {
	k, ctx, host := setupGuard(t)

	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))
	_, err := k.PlaceOrder(ctx, types.NewMsgPlaceOrder(
		trader, marketContract, types.SideBuy, math.LegacyNewDec(10), math.NewInt(100),
		decPtr(math.LegacyNewDec(9)), nil,
	))
	require.ErrorIs(t, err, types.ErrInvalidOrder)
	require.Len(t, host.Dispatches, 1)

	// same price on the other side is a distinct order
	placeOrder(t, k, ctx, types.SideSell, math.LegacyNewDec(10))
	require.Len(t, host.Dispatches, 2)
}

func TestFailedPlacementRollsOrderBack(t *testing.T) {
	k, ctx, _ := setupGuard(t)

	h := placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: false, Err: "insufficient funds"}))

	_, found := k.GetOrder(ctx, trader, marketContract, types.SideBuy, math.LegacyNewDec(10))
	require.False(t, found)
}

func TestSettledPlacementKeepsOrderResting(t *testing.T) {
	k, ctx, _ := setupGuard(t)

	h := placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: true}))

	_, found := k.GetOrder(ctx, trader, marketContract, types.SideBuy, math.LegacyNewDec(10))
	require.True(t, found)
}

func TestExecuteSlTpRequiresOwner(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))

	_, err := k.ExecuteSlTp(ctx, types.NewMsgExecuteSlTp(
		trader, trader, marketContract, types.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(8), math.NewInt(500),
	))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestExecuteSlTpMatchesStoredTriggerExactly(t *testing.T) {
	k, ctx, host := setupGuard(t)
	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))

	// 8 is the stop-loss, 15 the take-profit; anything else is rejected
	_, err := k.ExecuteSlTp(ctx, types.NewMsgExecuteSlTp(
		guardOwner, trader, marketContract, types.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(9), math.NewInt(500),
	))
	require.ErrorIs(t, err, types.ErrInvalidTrigger)

	resp, err := k.ExecuteSlTp(ctx, types.NewMsgExecuteSlTp(
		guardOwner, trader, marketContract, types.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(8), math.NewInt(500),
	))
	require.NoError(t, err)
	require.Equal(t, types.TriggerStopLoss, resp.Trigger)
	require.Equal(t, types.TriggerBase, resp.Handle)
	require.JSONEq(t,
		`{"retract_and_swap":{"side":"buy","price":"10.000000000000000000","amount":"500"}}`,
		string(host.Last().Op.Msg),
	)
}

func TestExecuteSlTpCapsClaimAmount(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))

	_, err := k.ExecuteSlTp(ctx, types.NewMsgExecuteSlTp(
		guardOwner, trader, marketContract, types.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(15), math.NewInt(501),
	))
	require.ErrorIs(t, err, types.ErrInvalidOrder)
}

func TestSettledTriggerRemovesOrder(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))

	resp, err := k.ExecuteSlTp(ctx, types.NewMsgExecuteSlTp(
		guardOwner, trader, marketContract, types.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(15), math.NewInt(500),
	))
	require.NoError(t, err)

	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: resp.Handle, Success: true}))
	_, found := k.GetOrder(ctx, trader, marketContract, types.SideBuy, math.LegacyNewDec(10))
	require.False(t, found)
}

func TestFailedTriggerKeepsOrderForRetry(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))

	resp, err := k.ExecuteSlTp(ctx, types.NewMsgExecuteSlTp(
		guardOwner, trader, marketContract, types.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(15), math.NewInt(500),
	))
	require.NoError(t, err)

	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: resp.Handle, Success: false, Err: "contract paused"}))
	_, found := k.GetOrder(ctx, trader, marketContract, types.SideBuy, math.LegacyNewDec(10))
	require.True(t, found)

	// and the guard can fire again
	resp, err = k.ExecuteSlTp(ctx, types.NewMsgExecuteSlTp(
		guardOwner, trader, marketContract, types.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(15), math.NewInt(500),
	))
	require.NoError(t, err)
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: resp.Handle, Success: true}))
}

func TestOrderReplyUnknownHandle(t *testing.T) {
	k, ctx, _ := setupGuard(t)

	require.ErrorIs(t, k.HandleReply(ctx, types.Reply{Handle: 7, Success: true}), types.ErrInvalidReplyId)
	require.ErrorIs(t, k.HandleReply(ctx, types.Reply{Handle: types.PlaceOrderBase + 3, Success: true}), types.ErrInvalidReplyId)
}

func TestOrderReplyConsumedExactlyOnce(t *testing.T) {
	k, ctx, _ := setupGuard(t)

	h := placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: true}))
	require.ErrorIs(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: true}), types.ErrInvalidReplyId)
}

func TestGuardGenesisRoundTrip(t *testing.T) {
	k, ctx, _ := setupGuard(t)
	placeOrder(t, k, ctx, types.SideBuy, math.LegacyNewDec(10))
	placeOrder(t, k, ctx, types.SideSell, math.LegacyNewDec(12))

	exported := k.ExportGenesis(ctx)
	require.Len(t, exported.Markets, 1)
	require.Len(t, exported.Orders, 2)

	fresh, freshCtx, _ := testkeeper.OrderguardKeeper(t)
	fresh.InitGenesis(freshCtx, *exported)
	require.ElementsMatch(t, exported.Orders, fresh.ExportGenesis(freshCtx).Orders)
	require.Equal(t, exported.Params, fresh.ExportGenesis(freshCtx).Params)
}
