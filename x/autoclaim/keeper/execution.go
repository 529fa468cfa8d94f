package keeper

import (
	"bytes"
	"encoding/json"
	"fmt"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

// SetExecutionData records per-(user, protocol) execution metadata.
func (k Keeper) SetExecutionData(ctx sdk.Context, user, protocol string, data types.ExecutionData) error {
	bz, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal execution data: %w", err)
	}

	k.getStore(ctx).Set(types.ExecutionDataKey(user, protocol), bz)
	return nil
}

// GetExecutionData returns the execution metadata for (user, protocol).
// A missing row means no claim has ever settled for the pair.
func (k Keeper) GetExecutionData(ctx sdk.Context, user, protocol string) (types.ExecutionData, bool) {
	bz := k.getStore(ctx).Get(types.ExecutionDataKey(user, protocol))
	if bz == nil {
		return types.ExecutionData{}, false
	}

	var data types.ExecutionData
	if err := json.Unmarshal(bz, &data); err != nil {
		panic(fmt.Errorf("failed to unmarshal execution data: %w", err))
	}
	return data, true
}

// GetAllExecutionRecords returns every execution row flattened for genesis
// export and queries.
func (k Keeper) GetAllExecutionRecords(ctx sdk.Context) []types.ExecutionRecord {
	store := prefix.NewStore(k.getStore(ctx), types.ExecutionDataKeyPrefix)

	var records []types.ExecutionRecord
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		user, protocol, ok := splitExecutionKey(iterator.Key())
		if !ok {
			continue
		}

		var data types.ExecutionData
		if err := json.Unmarshal(iterator.Value(), &data); err != nil {
			panic(fmt.Errorf("failed to unmarshal execution data: %w", err))
		}
		records = append(records, types.ExecutionRecord{
			User:          user,
			Protocol:      protocol,
			LastAutoclaim: data.LastAutoclaim,
		})
	}
	return records
}

// splitExecutionKey splits a prefix-stripped execution key back into its
// (user, protocol) parts at the separator byte.
func splitExecutionKey(key []byte) (user, protocol string, ok bool) {
	sep := bytes.IndexByte(key, 0x00)
	if sep < 0 {
		return "", "", false
	}
	return string(key[:sep]), string(key[sep+1:]), true
}
