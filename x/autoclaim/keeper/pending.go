package keeper

import (
	"encoding/binary"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

// setPendingOperation writes a pending row under the dispatch handle.
func (k Keeper) setPendingOperation(ctx sdk.Context, handle uint64, op types.PendingOperation) error {
	bz, err := json.Marshal(op)
	if err != nil {
		return fmt.Errorf("failed to marshal pending operation: %w", err)
	}

	k.getStore(ctx).Set(types.PendingOperationKey(handle), bz)
	return nil
}

// GetPendingOperation returns the pending row for a handle without consuming
// it.
func (k Keeper) GetPendingOperation(ctx sdk.Context, handle uint64) (types.PendingOperation, bool) {
	bz := k.getStore(ctx).Get(types.PendingOperationKey(handle))
	if bz == nil {
		return types.PendingOperation{}, false
	}

	var op types.PendingOperation
	if err := json.Unmarshal(bz, &op); err != nil {
		panic(fmt.Errorf("failed to unmarshal pending operation: %w", err))
	}
	return op, true
}

// takePendingOperation consumes the pending row for a handle: the row is
// deleted, so a second delivery of the same handle fails the missing-row
// check. A missing row means the host delivered a reply this module never
// dispatched.
func (k Keeper) takePendingOperation(ctx sdk.Context, handle uint64) (types.PendingOperation, error) {
	op, found := k.GetPendingOperation(ctx, handle)
	if !found {
		return types.PendingOperation{}, errorsmod.Wrapf(types.ErrInvalidReplyId, "no pending operation for handle %d", handle)
	}

	k.getStore(ctx).Delete(types.PendingOperationKey(handle))
	return op, nil
}

// GetAllPendingOperations returns every outstanding pending row in handle
// order.
func (k Keeper) GetAllPendingOperations(ctx sdk.Context) []types.PendingOperationRecord {
	store := prefix.NewStore(k.getStore(ctx), types.PendingOperationKeyPrefix)

	var records []types.PendingOperationRecord
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		if len(key) != 8 {
			continue
		}

		var op types.PendingOperation
		if err := json.Unmarshal(iterator.Value(), &op); err != nil {
			panic(fmt.Errorf("failed to unmarshal pending operation: %w", err))
		}
		records = append(records, types.PendingOperationRecord{
			Handle:    binary.BigEndian.Uint64(key),
			Operation: op,
		})
	}
	return records
}
