package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

// InitGenesis initializes the autoclaim module state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, pc := range genState.ProtocolConfigs {
		if err := k.SetProtocolConfig(ctx, pc); err != nil {
			panic(err)
		}
	}

	for _, sub := range genState.Subscriptions {
		if err := k.setSubscription(ctx, sub.User, sub.Protocols); err != nil {
			panic(err)
		}
	}

	for _, rec := range genState.ExecutionRecords {
		if err := k.SetExecutionData(ctx, rec.User, rec.Protocol, types.ExecutionData{LastAutoclaim: rec.LastAutoclaim}); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the autoclaim module state as a genesis state.
// Pending operations are deliberately not exported: a halted chain has no
// host to settle them, so the table starts empty after a restart.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:           k.GetParams(ctx),
		ProtocolConfigs:  k.GetAllProtocolConfigs(ctx),
		Subscriptions:    k.GetAllSubscriptions(ctx),
		ExecutionRecords: k.GetAllExecutionRecords(ctx),
	}
}
