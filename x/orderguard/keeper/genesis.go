package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/orderguard/types"
)

// InitGenesis initializes the orderguard module state from a genesis state.
func (k Keeper) InitGenesis(ctx sdk.Context, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}

	for _, m := range genState.Markets {
		if err := k.SetMarket(ctx, m); err != nil {
			panic(err)
		}
	}

	for _, o := range genState.Orders {
		if err := k.SetOrder(ctx, o.User, o.Market, o.Side, o.Price, o.Order); err != nil {
			panic(err)
		}
	}
}

// ExportGenesis returns the orderguard module state as a genesis state.
// Pending rows are not exported; the table starts empty after a restart.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	return &types.GenesisState{
		Params:  k.GetParams(ctx),
		Markets: k.GetAllMarkets(ctx),
		Orders:  k.GetAllOrders(ctx),
	}
}
