package ante

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// DefaultMaxMemoBytes caps memo payloads. Restake batches and trigger
// executions carry their data in message fields, so memos stay small.
const DefaultMaxMemoBytes = 512

// MemoLimitDecorator rejects transactions whose memo exceeds a byte cap.
// Runs ahead of the auth memo check to bound payloads before any decoding
// work is charged.
type MemoLimitDecorator struct {
	maxBytes int
}

func NewMemoLimitDecorator(maxBytes int) MemoLimitDecorator {
	return MemoLimitDecorator{maxBytes: maxBytes}
}

// AnteHandle implements sdk.AnteDecorator.
func (d MemoLimitDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if withMemo, ok := tx.(sdk.TxWithMemo); ok {
		if memo := withMemo.GetMemo(); len(memo) > d.maxBytes {
			return ctx, errorsmod.Wrapf(sdkerrors.ErrInvalidRequest, "memo too large: %d bytes (max %d)", len(memo), d.maxBytes)
		}
	}

	return next(ctx, tx, simulate)
}
