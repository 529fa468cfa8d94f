package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/x/orderguard/types"
)

func dec(s string) math.LegacyDec { return math.LegacyMustNewDecFromStr(s) }

func decPtr(s string) *math.LegacyDec {
	d := dec(s)
	return &d
}

func TestSideDeposit(t *testing.T) {
	denoms := types.Denoms{Base: "ubase", Quote: "uquote"}
	require.Equal(t, "uquote", types.SideBuy.Deposit(denoms))
	require.Equal(t, "ubase", types.SideSell.Deposit(denoms))
}

func TestDenomsValidate(t *testing.T) {
	require.NoError(t, types.Denoms{Base: "ubase", Quote: "uquote"}.Validate())
	require.Error(t, types.Denoms{Base: "ubase", Quote: "ubase"}.Validate())
	require.Error(t, types.Denoms{Base: "!", Quote: "uquote"}.Validate())
}

func TestUserOrderValidate(t *testing.T) {
	valid := types.UserOrder{Amount: math.NewInt(100), PriceSL: decPtr("8")}
	require.NoError(t, valid.Validate())

	require.ErrorIs(t, types.UserOrder{Amount: math.NewInt(100)}.Validate(), types.ErrInvalidOrder)
	require.ErrorIs(t, types.UserOrder{Amount: math.ZeroInt(), PriceSL: decPtr("8")}.Validate(), types.ErrInvalidOrder)
	require.ErrorIs(t, types.UserOrder{Amount: math.NewInt(100), PriceTP: decPtr("0")}.Validate(), types.ErrInvalidOrder)
}

func TestMatchTrigger(t *testing.T) {
	order := types.UserOrder{Amount: math.NewInt(100), PriceSL: decPtr("8"), PriceTP: decPtr("15")}

	trigger, err := order.MatchTrigger(dec("8"))
	require.NoError(t, err)
	require.Equal(t, types.TriggerStopLoss, trigger)

	trigger, err = order.MatchTrigger(dec("15"))
	require.NoError(t, err)
	require.Equal(t, types.TriggerTakeProfit, trigger)

	_, err = order.MatchTrigger(dec("10"))
	require.ErrorIs(t, err, types.ErrInvalidTrigger)

	// a one-sided order only matches its own trigger
	slOnly := types.UserOrder{Amount: math.NewInt(100), PriceSL: decPtr("8")}
	_, err = slOnly.MatchTrigger(dec("15"))
	require.ErrorIs(t, err, types.ErrInvalidTrigger)
}

func TestOrderKeyRoundTrip(t *testing.T) {
	key := types.OrderKey("user-a", "market-a", types.SideBuy, dec("10.5"))
	other := types.OrderKey("user-a", "market-a", types.SideSell, dec("10.5"))
	require.NotEqual(t, key, other)
}
