package keeper

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

// SetParams stores the global module configuration.
func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal params: %w", err)
	}

	k.getStore(ctx).Set(types.ParamsKey, bz)
	return nil
}

// GetParams returns the global module configuration. Params are always set
// at genesis, so a missing row means the store is uninitialized.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.Params{MaxParallelClaims: types.DefaultMaxParallelClaims}
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		panic(fmt.Errorf("failed to unmarshal params: %w", err))
	}
	return params
}

// UpdateConfig overwrites the provided configuration fields and upserts the
// provided registry entries. Zero-valued fields keep their stored value;
// registry entries not mentioned are never removed. Owner-only.
func (k Keeper) UpdateConfig(ctx sdk.Context, caller string, msg *types.MsgUpdateConfig) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}

	params := k.GetParams(ctx)
	if msg.Owner != "" {
		params.Owner = msg.Owner
	}
	if msg.MaxParallelClaims != 0 {
		params.MaxParallelClaims = msg.MaxParallelClaims
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	for _, pc := range msg.ProtocolConfigs {
		if err := k.SetProtocolConfig(ctx, pc); err != nil {
			return err
		}
	}

	k.Logger(ctx).Info("config updated",
		"owner", params.Owner,
		"max_parallel_claims", params.MaxParallelClaims,
		"protocols_upserted", len(msg.ProtocolConfigs),
	)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAutoclaim,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionUpdateConfig),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
		),
	)
	return nil
}

// assertOwner rejects any caller other than the configured owner.
func (k Keeper) assertOwner(ctx sdk.Context, caller string) error {
	params := k.GetParams(ctx)
	if params.Owner == "" {
		return types.ErrNoOwner
	}
	if caller != params.Owner {
		return errorsmod.Wrapf(types.ErrUnauthorized, "caller %s is not the owner", caller)
	}
	return nil
}
