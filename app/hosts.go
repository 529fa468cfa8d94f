package app

import (
	"encoding/json"
	"fmt"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"

	autoclaimtypes "github.com/restake-zone/restake/x/autoclaim/types"
	orderguardtypes "github.com/restake-zone/restake/x/orderguard/types"
)

// operationRouter executes dispatched operations against the chain's own
// message router. Contract executions are routed as wasm MsgExecuteContract;
// coin transfers go through the bank keeper directly. Each execution runs in
// a cached context so a failed operation rolls back only its own writes.
type operationRouter struct {
	router *baseapp.MsgServiceRouter
	bank   bankkeeper.Keeper
}

func newOperationRouter(router *baseapp.MsgServiceRouter, bank bankkeeper.Keeper) *operationRouter {
	return &operationRouter{router: router, bank: bank}
}

func (r *operationRouter) execContract(ctx sdk.Context, user, contract string, msg json.RawMessage, funds sdk.Coins) error {
	exec := &wasmtypes.MsgExecuteContract{
		Sender:   user,
		Contract: contract,
		Msg:      wasmtypes.RawContractMessage(msg),
		Funds:    funds,
	}

	handler := r.router.Handler(exec)
	if handler == nil {
		// only possible on a router built without the wasm module, e.g.
		// a stripped-down test app
		return fmt.Errorf("no route for %T", exec)
	}

	cacheCtx, write := ctx.CacheContext()
	if _, err := handler(cacheCtx, exec); err != nil {
		return err
	}
	write()
	return nil
}

func (r *operationRouter) send(ctx sdk.Context, from, to string, amount sdk.Coins) error {
	fromAddr, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return err
	}
	toAddr, err := sdk.AccAddressFromBech32(to)
	if err != nil {
		return err
	}

	cacheCtx, write := ctx.CacheContext()
	if err := r.bank.SendCoins(cacheCtx, fromAddr, toAddr, amount); err != nil {
		return err
	}
	write()
	return nil
}

// autoclaimHost settles autoclaim operations in the same transaction that
// dispatched them: the operation is executed immediately and its outcome fed
// back as a reply. The settle callback is bound after the keeper exists
// because keeper and host reference each other.
type autoclaimHost struct {
	ops    *operationRouter
	settle func(sdk.Context, autoclaimtypes.Reply) error
}

var _ autoclaimtypes.OperationHost = (*autoclaimHost)(nil)

// Dispatch implements autoclaimtypes.OperationHost
func (h *autoclaimHost) Dispatch(ctx sdk.Context, handle uint64, op autoclaimtypes.Operation) error {
	var err error
	switch op.Kind {
	case autoclaimtypes.OperationExecContract:
		err = h.ops.execContract(ctx, op.ExecContract.User, op.ExecContract.Contract, op.ExecContract.Msg, op.ExecContract.Funds)
	case autoclaimtypes.OperationSend:
		err = h.ops.send(ctx, op.Send.User, op.Send.ToAddress, op.Send.Amount)
	default:
		err = fmt.Errorf("unknown operation kind %q", op.Kind)
	}

	reply := autoclaimtypes.Reply{Handle: handle, Success: err == nil}
	if err != nil {
		reply.Err = err.Error()
	}
	return h.settle(ctx, reply)
}

// orderguardHost settles orderguard operations the same way. All orderguard
// operations are contract executions.
type orderguardHost struct {
	ops    *operationRouter
	settle func(sdk.Context, orderguardtypes.Reply) error
}

var _ orderguardtypes.OperationHost = (*orderguardHost)(nil)

// Dispatch implements orderguardtypes.OperationHost
func (h *orderguardHost) Dispatch(ctx sdk.Context, handle uint64, op orderguardtypes.Operation) error {
	err := h.ops.execContract(ctx, op.User, op.Contract, op.Msg, op.Funds)

	reply := orderguardtypes.Reply{Handle: handle, Success: err == nil}
	if err != nil {
		reply.Err = err.Error()
	}
	return h.settle(ctx, reply)
}
