package handle_test

import (
	"errors"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/x/shared/handle"
)

var errExhausted = errors.New("exhausted")

type testErrors struct{}

func (testErrors) ExhaustedError(msg string) error { return errExhausted }

func testContext(t *testing.T) (sdk.Context, storetypes.StoreKey) {
	storeKey := storetypes.NewKVStoreKey("test")

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	return sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()), storeKey
}

func TestAllocatorAssignsMonotonically(t *testing.T) {
	ctx, storeKey := testContext(t)
	alloc := handle.NewAllocator(storeKey, testErrors{}, "mod")

	base := 1 * handle.RangeWidth
	for i := uint64(0); i < 5; i++ {
		h, err := alloc.Next(ctx, base)
		require.NoError(t, err)
		require.Equal(t, base+i, h)
	}
	require.Equal(t, uint64(5), alloc.Peek(ctx, base))
}

func TestAllocatorRangesAreIndependent(t *testing.T) {
	ctx, storeKey := testContext(t)
	alloc := handle.NewAllocator(storeKey, testErrors{}, "mod")

	a, err := alloc.Next(ctx, 1*handle.RangeWidth)
	require.NoError(t, err)
	b, err := alloc.Next(ctx, 2*handle.RangeWidth)
	require.NoError(t, err)

	require.Equal(t, 1*handle.RangeWidth, a)
	require.Equal(t, 2*handle.RangeWidth, b)
}

func TestAllocatorModulesAreIndependent(t *testing.T) {
	ctx, storeKey := testContext(t)
	first := handle.NewAllocator(storeKey, testErrors{}, "first")
	second := handle.NewAllocator(storeKey, testErrors{}, "second")

	base := 1 * handle.RangeWidth
	h, err := first.Next(ctx, base)
	require.NoError(t, err)
	require.Equal(t, base, h)

	h, err = second.Next(ctx, base)
	require.NoError(t, err)
	require.Equal(t, base, h, "a fresh module namespace starts from the range base")
}

func TestInRangeAndIndex(t *testing.T) {
	base := 3 * handle.RangeWidth

	require.True(t, handle.InRange(base, base))
	require.True(t, handle.InRange(base+handle.RangeWidth-1, base))
	require.False(t, handle.InRange(base-1, base))
	require.False(t, handle.InRange(base+handle.RangeWidth, base))

	require.Equal(t, uint64(7), handle.Index(base+7, base))
}
