package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/x/orderguard/keeper"
	"github.com/restake-zone/restake/x/orderguard/types"
)

// DispatchedOrderOp is one operation recorded by the order mock host.
type DispatchedOrderOp struct {
	Handle uint64
	Op     types.Operation
}

// OrderMockHost records dispatched order operations.
type OrderMockHost struct {
	Dispatches  []DispatchedOrderOp
	DispatchErr error
}

// Dispatch implements types.OperationHost
func (h *OrderMockHost) Dispatch(ctx sdk.Context, handle uint64, op types.Operation) error {
	if h.DispatchErr != nil {
		return h.DispatchErr
	}
	h.Dispatches = append(h.Dispatches, DispatchedOrderOp{Handle: handle, Op: op})
	return nil
}

// Last returns the most recently dispatched operation.
func (h *OrderMockHost) Last() DispatchedOrderOp {
	return h.Dispatches[len(h.Dispatches)-1]
}

// OrderguardKeeper creates a test keeper for the orderguard module backed by
// an in-memory store, with a recording mock host.
func OrderguardKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *OrderMockHost) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	host := &OrderMockHost{}
	k := keeper.NewKeeper(cdc, storeKey, host)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return k, ctx, host
}
