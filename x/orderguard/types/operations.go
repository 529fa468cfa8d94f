package types

import (
	"encoding/json"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Operation is an order-book instruction dispatched to the host for
// asynchronous settlement: execute Msg on the market Contract on behalf of
// User, attaching Funds.
type Operation struct {
	User     string          `json:"user"`
	Contract string          `json:"contract"`
	Msg      json.RawMessage `json:"msg"`
	Funds    sdk.Coins       `json:"funds,omitempty"`
}

// Reply reports the settlement outcome of a dispatched operation.
type Reply struct {
	Handle  uint64 `json:"handle"`
	Success bool   `json:"success"`
	Err     string `json:"err,omitempty"`
}

// order-book contract payloads

type submitOrderMsg struct {
	SubmitOrder submitOrderParams `json:"submit_order"`
}

type submitOrderParams struct {
	Side  Side   `json:"side"`
	Price string `json:"price"`
}

type retractAndSwapMsg struct {
	RetractAndSwap retractAndSwapParams `json:"retract_and_swap"`
}

type retractAndSwapParams struct {
	Side   Side   `json:"side"`
	Price  string `json:"price"`
	Amount string `json:"amount"`
}

// NewSubmitOrderOperation builds the limit-order placement instruction,
// escrowing the order amount as funds.
func NewSubmitOrderOperation(user, market string, side Side, price math.LegacyDec, deposit sdk.Coin) (Operation, error) {
	msg, err := json.Marshal(submitOrderMsg{SubmitOrder: submitOrderParams{
		Side:  side,
		Price: price.String(),
	}})
	if err != nil {
		return Operation{}, err
	}

	return Operation{
		User:     user,
		Contract: market,
		Msg:      msg,
		Funds:    sdk.NewCoins(deposit),
	}, nil
}

// NewRetractAndSwapOperation builds the trigger execution instruction:
// retract the resting order and market-swap the claimed amount.
func NewRetractAndSwapOperation(user, market string, side Side, price math.LegacyDec, amount math.Int) (Operation, error) {
	msg, err := json.Marshal(retractAndSwapMsg{RetractAndSwap: retractAndSwapParams{
		Side:   side,
		Price:  price.String(),
		Amount: amount.String(),
	}})
	if err != nil {
		return Operation{}, err
	}

	return Operation{
		User:     user,
		Contract: market,
		Msg:      msg,
	}, nil
}

// OperationHost is the environment's message-execution runtime, settling
// dispatched operations asynchronously and delivering exactly one reply per
// handle.
type OperationHost interface {
	Dispatch(ctx sdk.Context, handle uint64, op Operation) error
}

// PendingOrder is the correlation payload stored per dispatched operation.
// It carries the full order key so the reply handler can finish the
// lifecycle transition the reply settles.
type PendingOrder struct {
	User    string         `json:"user"`
	Market  string         `json:"market"`
	Side    Side           `json:"side"`
	Price   math.LegacyDec `json:"price"`
	Trigger Trigger        `json:"trigger,omitempty"`
}
