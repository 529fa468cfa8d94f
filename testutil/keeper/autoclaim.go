package keeper

import (
	"context"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/x/autoclaim/keeper"
	"github.com/restake-zone/restake/x/autoclaim/types"
)

// DispatchedOp is one operation recorded by the mock host.
type DispatchedOp struct {
	Handle uint64
	Op     types.Operation
}

// MockHost records dispatched operations so tests can inspect them and feed
// replies back through the keeper.
type MockHost struct {
	Dispatches  []DispatchedOp
	DispatchErr error
}

// Dispatch implements types.OperationHost
func (h *MockHost) Dispatch(ctx sdk.Context, handle uint64, op types.Operation) error {
	if h.DispatchErr != nil {
		return h.DispatchErr
	}
	h.Dispatches = append(h.Dispatches, DispatchedOp{Handle: handle, Op: op})
	return nil
}

// Last returns the most recently dispatched operation.
func (h *MockHost) Last() DispatchedOp {
	return h.Dispatches[len(h.Dispatches)-1]
}

// MockBank is an in-memory balance ledger keyed by address and denom.
type MockBank struct {
	balances map[string]sdk.Coins
}

// NewMockBank creates an empty mock bank
func NewMockBank() *MockBank {
	return &MockBank{balances: make(map[string]sdk.Coins)}
}

// SetBalance overwrites an address's balance in one denom.
func (b *MockBank) SetBalance(addr string, coin sdk.Coin) {
	cur := b.balances[addr]
	if found, old := cur.Find(coin.Denom); found {
		cur = cur.Sub(old)
	}
	b.balances[addr] = cur.Add(coin)
}

// GetBalance implements types.BankKeeper
func (b *MockBank) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balances[addr.String()].AmountOf(denom))
}

// AutoclaimKeeper creates a test keeper for the autoclaim module backed by
// an in-memory store, with a recording mock host and a mock bank ledger.
func AutoclaimKeeper(t testing.TB) (*keeper.Keeper, sdk.Context, *MockHost, *MockBank) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	memStoreKey := storetypes.NewMemoryStoreKey(types.MemStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(memStoreKey, storetypes.StoreTypeMemory, nil)
	require.NoError(t, stateStore.LoadLatestVersion())

	registry := codectypes.NewInterfaceRegistry()
	cdc := codec.NewProtoCodec(registry)

	host := &MockHost{}
	bank := NewMockBank()

	k := keeper.NewKeeper(cdc, storeKey, memStoreKey, bank, host)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	return k, ctx, host, bank
}

// TestAddr builds a deterministic test account address from a seed byte.
func TestAddr(seed byte) string {
	bz := make([]byte, 20)
	for i := range bz {
		bz[i] = seed
	}
	return sdk.AccAddress(bz).String()
}

// ClaimAndStakeConfig builds a registry entry for a claim-and-stake protocol
// with the given fee.
func ClaimAndStakeConfig(protocol string, fee math.LegacyDec, feeAddr, claimContract, stakeContract, denom string) types.ProtocolConfig {
	return types.ProtocolConfig{
		Protocol:      protocol,
		FeePercentage: fee,
		FeeAddress:    feeAddr,
		Strategy:      types.NewClaimAndStakeStrategy(types.ProviderDAODAO, claimContract, stakeContract, denom),
	}
}

// ClaimOnlyConfig builds a registry entry for a claim-only FIN protocol.
func ClaimOnlyConfig(protocol string, fee math.LegacyDec, feeAddr string, markets []string) types.ProtocolConfig {
	return types.ProtocolConfig{
		Protocol:      protocol,
		FeePercentage: fee,
		FeeAddress:    feeAddr,
		Strategy:      types.NewClaimOnlyFINStrategy(markets),
	}
}
