package keeper

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

// GetSubscription returns the user's subscribed protocol ids in
// first-insertion order. A missing row is an empty subscription.
func (k Keeper) GetSubscription(ctx sdk.Context, user string) []string {
	bz := k.getStore(ctx).Get(types.SubscriptionKey(user))
	if bz == nil {
		return nil
	}

	var protocols []string
	if err := json.Unmarshal(bz, &protocols); err != nil {
		panic(fmt.Errorf("failed to unmarshal subscription: %w", err))
	}
	return protocols
}

// setSubscription stores the user's protocol list, removing the row when the
// list becomes empty.
func (k Keeper) setSubscription(ctx sdk.Context, user string, protocols []string) error {
	store := k.getStore(ctx)
	key := types.SubscriptionKey(user)

	if len(protocols) == 0 {
		store.Delete(key)
		return nil
	}

	bz, err := json.Marshal(protocols)
	if err != nil {
		return fmt.Errorf("failed to marshal subscription: %w", err)
	}
	store.Set(key, bz)
	return nil
}

// IsSubscribed reports whether the user is subscribed to the protocol.
func (k Keeper) IsSubscribed(ctx sdk.Context, user, protocol string) bool {
	for _, p := range k.GetSubscription(ctx, user) {
		if p == protocol {
			return true
		}
	}
	return false
}

// Subscribe appends the listed protocols to the user's subscription set.
// Every id is validated against the registry before anything is written, so
// a single unknown id rejects the whole call. Already-present ids are
// silently kept; insertion order is preserved.
func (k Keeper) Subscribe(ctx sdk.Context, user string, protocols []string) error {
	for _, p := range protocols {
		if !k.HasProtocolConfig(ctx, p) {
			return errorsmod.Wrapf(types.ErrInvalidProtocol, "unknown protocol %q", p)
		}
	}

	current := k.GetSubscription(ctx, user)
	present := make(map[string]bool, len(current))
	for _, p := range current {
		present[p] = true
	}

	for _, p := range protocols {
		if !present[p] {
			current = append(current, p)
			present[p] = true
		}
	}

	if err := k.setSubscription(ctx, user, current); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAutoclaim,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionSubscribe),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyUser, user),
			sdk.NewAttribute(types.AttributeKeyProtocols, fmt.Sprintf("%v", protocols)),
		),
	)
	return nil
}

// Unsubscribe removes the listed protocols from the user's subscription set.
// Ids the user is not subscribed to are no-ops; unknown ids are no-ops too.
func (k Keeper) Unsubscribe(ctx sdk.Context, user string, protocols []string) error {
	drop := make(map[string]bool, len(protocols))
	for _, p := range protocols {
		drop[p] = true
	}

	current := k.GetSubscription(ctx, user)
	kept := current[:0]
	for _, p := range current {
		if !drop[p] {
			kept = append(kept, p)
		}
	}

	if err := k.setSubscription(ctx, user, kept); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAutoclaim,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionUnsubscribe),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyUser, user),
			sdk.NewAttribute(types.AttributeKeyProtocols, fmt.Sprintf("%v", protocols)),
		),
	)
	return nil
}

// GetAllSubscriptions returns every (user, protocols) pair in key order.
func (k Keeper) GetAllSubscriptions(ctx sdk.Context) []types.SubscriptionRecord {
	store := prefix.NewStore(k.getStore(ctx), types.SubscriptionKeyPrefix)

	var records []types.SubscriptionRecord
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var protocols []string
		if err := json.Unmarshal(iterator.Value(), &protocols); err != nil {
			panic(fmt.Errorf("failed to unmarshal subscription: %w", err))
		}
		records = append(records, types.SubscriptionRecord{
			User:      string(iterator.Key()),
			Protocols: protocols,
		})
	}
	return records
}
