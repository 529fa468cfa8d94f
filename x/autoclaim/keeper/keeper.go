package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
	"github.com/restake-zone/restake/x/shared/handle"
)

// Keeper of the autoclaim store
type Keeper struct {
	storeKey   storetypes.StoreKey
	memKey     storetypes.StoreKey
	cdc        codec.BinaryCodec
	bankKeeper types.BankKeeper
	host       types.OperationHost
	handles    *handle.Allocator
	metrics    *AutoclaimMetrics
}

// NewKeeper creates a new autoclaim Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	memKey storetypes.StoreKey,
	bankKeeper types.BankKeeper,
	host types.OperationHost,
) *Keeper {
	k := &Keeper{
		storeKey:   key,
		memKey:     memKey,
		cdc:        cdc,
		bankKeeper: bankKeeper,
		host:       host,
	}
	k.handles = handle.NewAllocator(key, handleErrors{}, types.ModuleName)
	k.metrics = NewAutoclaimMetrics()
	return k
}

// handleErrors adapts allocator failures to the module's error registry.
type handleErrors struct{}

func (handleErrors) ExhaustedError(msg string) error {
	return errorsmod.Wrap(types.ErrHandleExhausted, msg)
}

// getStore returns the KVStore for the autoclaim module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns the module logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
