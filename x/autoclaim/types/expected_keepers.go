package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the external balance ledger consulted for reward-denom
// balance snapshots before and after a claim settles.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// OperationHost is the environment's message-execution runtime. Dispatch
// queues an operation for asynchronous settlement under the given handle; the
// host performs it after the current invocation commits and delivers exactly
// one reply per handle, in dispatch order, via the module's reply entry
// point. Relied-upon guarantee, not enforced here: a dispatched operation is
// always settled and its reply delivered before the overall call completes.
type OperationHost interface {
	Dispatch(ctx sdk.Context, handle uint64, op Operation) error
}
