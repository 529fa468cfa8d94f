package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/orderguard/types"
	"github.com/restake-zone/restake/x/shared/handle"
)

// Keeper of the orderguard store
type Keeper struct {
	storeKey storetypes.StoreKey
	cdc      codec.BinaryCodec
	host     types.OperationHost
	handles  *handle.Allocator
}

// NewKeeper creates a new orderguard Keeper instance
func NewKeeper(
	cdc codec.BinaryCodec,
	key storetypes.StoreKey,
	host types.OperationHost,
) *Keeper {
	k := &Keeper{
		storeKey: key,
		cdc:      cdc,
		host:     host,
	}
	k.handles = handle.NewAllocator(key, handleErrors{}, types.ModuleName)
	return k
}

type handleErrors struct{}

func (handleErrors) ExhaustedError(msg string) error {
	return errorsmod.Wrap(types.ErrHandleExhausted, msg)
}

// getStore returns the KVStore for the orderguard module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns the module logger
func (k Keeper) Logger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}
