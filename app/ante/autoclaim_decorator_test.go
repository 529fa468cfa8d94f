package ante_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/app/ante"
	testkeeper "github.com/restake-zone/restake/testutil/keeper"
	autoclaimtypes "github.com/restake-zone/restake/x/autoclaim/types"
)

var (
	anteOwner = testkeeper.TestAddr(21)
	anteUser  = testkeeper.TestAddr(22)
)

func passThrough(ctx sdk.Context, _ sdk.Tx, _ bool) (sdk.Context, error) {
	return ctx, nil
}

func setupAutoclaimDecorator(t *testing.T) (ante.AutoclaimDecorator, sdk.Context) {
	t.Helper()
	k, ctx, _, _ := testkeeper.AutoclaimKeeper(t)

	k.InitGenesis(ctx, autoclaimtypes.GenesisState{
		Params: autoclaimtypes.NewParams(anteOwner, 2),
		ProtocolConfigs: []autoclaimtypes.ProtocolConfig{
			testkeeper.ClaimAndStakeConfig("mars", math.LegacyZeroDec(), anteOwner, "contract-mars-claim", "contract-mars-stake", "ureward"),
		},
	})

	return ante.NewAutoclaimDecorator(*k), ctx
}

func claimBatch(sender string, pairs ...autoclaimtypes.UserProtocols) sdk.Tx {
	return mockTx{msgs: []sdk.Msg{autoclaimtypes.NewMsgClaimAndStake(sender, pairs)}}
}

func TestAutoclaimDecoratorAllowsRegisteredProtocol(t *testing.T) {
	dec, ctx := setupAutoclaimDecorator(t)

	tx := claimBatch(anteOwner, autoclaimtypes.UserProtocols{User: anteUser, Protocols: []string{"mars"}})
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}

func TestAutoclaimDecoratorRejectsUnknownProtocol(t *testing.T) {
	dec, ctx := setupAutoclaimDecorator(t)

	tx := claimBatch(anteOwner, autoclaimtypes.UserProtocols{User: anteUser, Protocols: []string{"ghost"}})
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.ErrorIs(t, err, autoclaimtypes.ErrInvalidProtocol)
}

func TestAutoclaimDecoratorRejectsEmptyBatch(t *testing.T) {
	dec, ctx := setupAutoclaimDecorator(t)

	tx := claimBatch(anteOwner)
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "empty")
}

func TestAutoclaimDecoratorEnforcesBatchCap(t *testing.T) {
	dec, ctx := setupAutoclaimDecorator(t)

	// Cap is 2 pairs; three users claiming the same protocol exceed it.
	tx := claimBatch(anteOwner,
		autoclaimtypes.UserProtocols{User: testkeeper.TestAddr(31), Protocols: []string{"mars"}},
		autoclaimtypes.UserProtocols{User: testkeeper.TestAddr(32), Protocols: []string{"mars"}},
		autoclaimtypes.UserProtocols{User: testkeeper.TestAddr(33), Protocols: []string{"mars"}},
	)
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.ErrorIs(t, err, autoclaimtypes.ErrTooManyMessages)
}

func TestAutoclaimDecoratorSkipsSimulation(t *testing.T) {
	dec, ctx := setupAutoclaimDecorator(t)

	tx := claimBatch(anteOwner, autoclaimtypes.UserProtocols{User: anteUser, Protocols: []string{"ghost"}})
	_, err := dec.AnteHandle(ctx, tx, true, passThrough)
	require.NoError(t, err)
}

func TestAutoclaimDecoratorRejectsUnknownSubscription(t *testing.T) {
	dec, ctx := setupAutoclaimDecorator(t)

	tx := mockTx{msgs: []sdk.Msg{autoclaimtypes.NewMsgSubscribe(anteUser, []string{"mars", "ghost"})}}
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.ErrorIs(t, err, autoclaimtypes.ErrInvalidProtocol)
}

func TestAutoclaimDecoratorIgnoresForeignMessages(t *testing.T) {
	dec, ctx := setupAutoclaimDecorator(t)

	tx := mockTx{msgs: []sdk.Msg{mockMsg{}}}
	_, err := dec.AnteHandle(ctx, tx, false, passThrough)
	require.NoError(t, err)
}
