package ante_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/app/ante"
	testkeeper "github.com/restake-zone/restake/testutil/keeper"
	orderguardtypes "github.com/restake-zone/restake/x/orderguard/types"
)

var (
	guardOwner  = testkeeper.TestAddr(41)
	guardTrader = testkeeper.TestAddr(42)
)

const guardMarket = "contract-fin-market"

func setupOrderguardDecorator(t *testing.T) (ante.OrderguardDecorator, sdk.Context) {
	t.Helper()
	k, ctx, _ := testkeeper.OrderguardKeeper(t)

	k.InitGenesis(ctx, orderguardtypes.GenesisState{
		Params: orderguardtypes.Params{Owner: guardOwner},
		Markets: []orderguardtypes.Market{
			{Contract: guardMarket, Denoms: orderguardtypes.Denoms{Base: "ubase", Quote: "uquote"}},
		},
		Orders: []orderguardtypes.OrderRecord{
			{
				User:   guardTrader,
				Market: guardMarket,
				Side:   orderguardtypes.SideBuy,
				Price:  math.LegacyNewDec(10),
				Order: orderguardtypes.UserOrder{
					Amount:  math.NewInt(500),
					PriceSL: triggerPtr(math.LegacyNewDec(8)),
				},
			},
		},
	})

	return ante.NewOrderguardDecorator(*k), ctx
}

func triggerPtr(d math.LegacyDec) *math.LegacyDec { return &d }

func TestOrderguardDecoratorAllowsKnownMarket(t *testing.T) {
	dec, ctx := setupOrderguardDecorator(t)

	tx := mockTx{msgs: []sdk.Msg{orderguardtypes.NewMsgPlaceOrder(
		guardTrader, guardMarket, orderguardtypes.SideSell, math.LegacyNewDec(12), math.NewInt(100),
		triggerPtr(math.LegacyNewDec(9)), nil,
	)}}
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}

func TestOrderguardDecoratorRejectsUnknownMarket(t *testing.T) {
	dec, ctx := setupOrderguardDecorator(t)

	tx := mockTx{msgs: []sdk.Msg{orderguardtypes.NewMsgPlaceOrder(
		guardTrader, "contract-ghost", orderguardtypes.SideBuy, math.LegacyNewDec(10), math.NewInt(100),
		triggerPtr(math.LegacyNewDec(8)), nil,
	)}}
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.ErrorIs(t, err, orderguardtypes.ErrInvalidMarket)
}

func TestOrderguardDecoratorRequiresTrigger(t *testing.T) {
	dec, ctx := setupOrderguardDecorator(t)

	tx := mockTx{msgs: []sdk.Msg{orderguardtypes.NewMsgPlaceOrder(
		guardTrader, guardMarket, orderguardtypes.SideBuy, math.LegacyNewDec(10), math.NewInt(100),
		nil, nil,
	)}}
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.ErrorIs(t, err, orderguardtypes.ErrInvalidOrder)
}

func TestOrderguardDecoratorRejectsTriggerWithoutOrder(t *testing.T) {
	dec, ctx := setupOrderguardDecorator(t)

	tx := mockTx{msgs: []sdk.Msg{orderguardtypes.NewMsgExecuteSlTp(
		guardOwner, guardTrader, guardMarket, orderguardtypes.SideSell,
		math.LegacyNewDec(99), math.LegacyNewDec(8), math.NewInt(100),
	)}}
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.ErrorIs(t, err, orderguardtypes.ErrOrderNotFound)
}

func TestOrderguardDecoratorAllowsTriggerOnRestingOrder(t *testing.T) {
	dec, ctx := setupOrderguardDecorator(t)

	tx := mockTx{msgs: []sdk.Msg{orderguardtypes.NewMsgExecuteSlTp(
		guardOwner, guardTrader, guardMarket, orderguardtypes.SideBuy,
		math.LegacyNewDec(10), math.LegacyNewDec(8), math.NewInt(100),
	)}}
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}

func TestOrderguardDecoratorSkipsSimulation(t *testing.T) {
	dec, ctx := setupOrderguardDecorator(t)

	tx := mockTx{msgs: []sdk.Msg{orderguardtypes.NewMsgPlaceOrder(
		guardTrader, "contract-ghost", orderguardtypes.SideBuy, math.LegacyNewDec(10), math.NewInt(100),
		triggerPtr(math.LegacyNewDec(8)), nil,
	)}}
	_, err := dec.AnteHandle(ctx, tx, true, passThrough)
	require.NoError(t, err)
}
