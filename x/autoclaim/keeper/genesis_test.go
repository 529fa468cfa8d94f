package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/restake-zone/restake/testutil/keeper"
	"github.com/restake-zone/restake/x/autoclaim/types"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx, _, _ := testkeeper.AutoclaimKeeper(t)

	genesis := types.GenesisState{
		Params: types.NewParams(owner, 8),
		ProtocolConfigs: []types.ProtocolConfig{
			testkeeper.ClaimAndStakeConfig("mars", math.LegacyNewDecWithPrec(1, 2), feeCollector, "claim-c", "stake-c", rewardDenom),
			testkeeper.ClaimOnlyConfig("fin", math.LegacyZeroDec(), feeCollector, []string{"market-a"}),
		},
		Subscriptions: []types.SubscriptionRecord{
			{User: user, Protocols: []string{"mars"}},
			{User: otherUser, Protocols: []string{"mars", "fin"}},
		},
		ExecutionRecords: []types.ExecutionRecord{
			{User: user, Protocol: "mars", LastAutoclaim: time.Date(2026, 2, 20, 8, 30, 0, 0, time.UTC)},
		},
	}
	k.InitGenesis(ctx, genesis)

	exported := k.ExportGenesis(ctx)
	require.Equal(t, genesis.Params, exported.Params)
	require.ElementsMatch(t, genesis.ProtocolConfigs, exported.ProtocolConfigs)
	require.ElementsMatch(t, genesis.Subscriptions, exported.Subscriptions)
	require.ElementsMatch(t, genesis.ExecutionRecords, exported.ExecutionRecords)
}

func TestInitGenesisRejectsInvalidState(t *testing.T) {
	k, ctx, _, _ := testkeeper.AutoclaimKeeper(t)

	// subscription to a protocol absent from the registry
	genesis := types.GenesisState{
		Params: types.NewParams(owner, 5),
		Subscriptions: []types.SubscriptionRecord{
			{User: user, Protocols: []string{"ghost"}},
		},
	}
	require.Panics(t, func() { k.InitGenesis(ctx, genesis) })
}

func TestExportDropsPendingOperations(t *testing.T) {
	k, ctx, host, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")

	_, err := k.ClaimAndStake(ctx, owner, []types.UserProtocols{
		{User: user, Protocols: []string{"mars"}},
	})
	require.NoError(t, err)
	require.Len(t, host.Dispatches, 1)
	require.Len(t, k.GetAllPendingOperations(ctx), 1)

	exported := k.ExportGenesis(ctx)

	fresh, freshCtx, _, _ := testkeeper.AutoclaimKeeper(t)
	fresh.InitGenesis(freshCtx, *exported)
	require.Empty(t, fresh.GetAllPendingOperations(freshCtx))
}

func TestDefaultGenesisRequiresOwner(t *testing.T) {
	require.Error(t, types.DefaultGenesis().Validate())
}
