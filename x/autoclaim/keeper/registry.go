package keeper

import (
	"encoding/json"
	"fmt"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

// SetProtocolConfig upserts a protocol registry entry.
func (k Keeper) SetProtocolConfig(ctx sdk.Context, config types.ProtocolConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal protocol config: %w", err)
	}

	k.getStore(ctx).Set(types.ProtocolConfigKey(config.Protocol), bz)
	return nil
}

// GetProtocolConfig returns the registry entry for a protocol id.
func (k Keeper) GetProtocolConfig(ctx sdk.Context, protocol string) (types.ProtocolConfig, bool) {
	bz := k.getStore(ctx).Get(types.ProtocolConfigKey(protocol))
	if bz == nil {
		return types.ProtocolConfig{}, false
	}

	var config types.ProtocolConfig
	if err := json.Unmarshal(bz, &config); err != nil {
		panic(fmt.Errorf("failed to unmarshal protocol config: %w", err))
	}
	return config, true
}

// HasProtocolConfig reports whether a protocol id is registered.
func (k Keeper) HasProtocolConfig(ctx sdk.Context, protocol string) bool {
	return k.getStore(ctx).Has(types.ProtocolConfigKey(protocol))
}

// GetAllProtocolConfigs returns every registry entry in key order.
func (k Keeper) GetAllProtocolConfigs(ctx sdk.Context) []types.ProtocolConfig {
	store := prefix.NewStore(k.getStore(ctx), types.ProtocolConfigKeyPrefix)

	var configs []types.ProtocolConfig
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var config types.ProtocolConfig
		if err := json.Unmarshal(iterator.Value(), &config); err != nil {
			panic(fmt.Errorf("failed to unmarshal protocol config: %w", err))
		}
		configs = append(configs, config)
	}
	return configs
}
