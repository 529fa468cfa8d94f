package keeper

import (
	"bytes"
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/orderguard/types"
)

// SetParams stores the module configuration.
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

// GetParams returns the module configuration.
func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	bz := k.getStore(ctx).Get(types.ParamsKey)
	if bz == nil {
		return types.Params{}
	}

	var params types.Params
	if err := json.Unmarshal(bz, &params); err != nil {
		panic(fmt.Errorf("failed to unmarshal params: %w", err))
	}
	return params
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

// SetMarket upserts a market registry entry.
func (k Keeper) SetMarket(ctx sdk.Context, market types.Market) error {
	if err := market.Denoms.Validate(); err != nil {
		return err
	}

	bz, err := json.Marshal(market)
	if err != nil {
		return fmt.Errorf("failed to marshal market: %w", err)
	}
	k.getStore(ctx).Set(types.MarketKey(market.Contract), bz)
	return nil
}

// GetMarket returns the registry entry for a market contract.
func (k Keeper) GetMarket(ctx sdk.Context, contract string) (types.Market, bool) {
	bz := k.getStore(ctx).Get(types.MarketKey(contract))
	if bz == nil {
		return types.Market{}, false
	}

	var market types.Market
	if err := json.Unmarshal(bz, &market); err != nil {
		panic(fmt.Errorf("failed to unmarshal market: %w", err))
	}
	return market, true
}

// GetAllMarkets returns every registered market in key order.
func (k Keeper) GetAllMarkets(ctx sdk.Context) []types.Market {
	store := prefix.NewStore(k.getStore(ctx), types.MarketKeyPrefix)

	var markets []types.Market
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var market types.Market
		if err := json.Unmarshal(iterator.Value(), &market); err != nil {
			panic(fmt.Errorf("failed to unmarshal market: %w", err))
		}
		markets = append(markets, market)
	}
	return markets
}

// SetOrder stores a guarded order under its composite key.
func (k Keeper) SetOrder(ctx sdk.Context, user, market string, side types.Side, price math.LegacyDec, order types.UserOrder) error {
	bz, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to marshal order: %w", err)
	}
	k.getStore(ctx).Set(types.OrderKey(user, market, side, price), bz)
	return nil
}

// GetOrder returns the guarded order at the composite key.
func (k Keeper) GetOrder(ctx sdk.Context, user, market string, side types.Side, price math.LegacyDec) (types.UserOrder, bool) {
	bz := k.getStore(ctx).Get(types.OrderKey(user, market, side, price))
	if bz == nil {
		return types.UserOrder{}, false
	}

	var order types.UserOrder
	if err := json.Unmarshal(bz, &order); err != nil {
		panic(fmt.Errorf("failed to unmarshal order: %w", err))
	}
	return order, true
}

// DeleteOrder removes the guarded order at the composite key.
func (k Keeper) DeleteOrder(ctx sdk.Context, user, market string, side types.Side, price math.LegacyDec) {
	k.getStore(ctx).Delete(types.OrderKey(user, market, side, price))
}

// GetUserOrders returns one user's resting orders in key order.
func (k Keeper) GetUserOrders(ctx sdk.Context, user string) []types.OrderRecord {
	store := prefix.NewStore(k.getStore(ctx), types.OrderUserPrefix(user))

	var records []types.OrderRecord
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		record, ok := decodeOrderEntry(user, iterator.Key(), iterator.Value())
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

// GetAllOrders returns every resting order for genesis export.
func (k Keeper) GetAllOrders(ctx sdk.Context) []types.OrderRecord {
	store := prefix.NewStore(k.getStore(ctx), types.OrderKeyPrefix)

	var records []types.OrderRecord
	iterator := store.Iterator(nil, nil)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()
		sep := bytes.IndexByte(key, 0x00)
		if sep < 0 {
			continue
		}
		record, ok := decodeOrderEntry(string(key[:sep]), key[sep+1:], iterator.Value())
		if !ok {
			continue
		}
		records = append(records, record)
	}
	return records
}

// decodeOrderEntry rebuilds an OrderRecord from a user-stripped key
// (market \x00 side \x00 price) and the stored order bytes.
func decodeOrderEntry(user string, key, value []byte) (types.OrderRecord, bool) {
	parts := bytes.SplitN(key, []byte{0x00}, 3)
	if len(parts) != 3 {
		return types.OrderRecord{}, false
	}

	price, err := math.LegacyNewDecFromStr(string(parts[2]))
	if err != nil {
		return types.OrderRecord{}, false
	}

	var order types.UserOrder
	if err := json.Unmarshal(value, &order); err != nil {
		panic(fmt.Errorf("failed to unmarshal order: %w", err))
	}

	return types.OrderRecord{
		User:   user,
		Market: string(parts[0]),
		Side:   types.Side(parts[1]),
		Price:  price,
		Order:  order,
	}, true
}

// setPendingOrder writes a pending row under the dispatch handle.
func (k Keeper) setPendingOrder(ctx sdk.Context, handle uint64, pending types.PendingOrder) error {
	bz, err := json.Marshal(pending)
	if err != nil {
		return fmt.Errorf("failed to marshal pending order: %w", err)
	}
	k.getStore(ctx).Set(types.PendingOrderKey(handle), bz)
	return nil
}

// takePendingOrder consumes the pending row for a handle.
func (k Keeper) takePendingOrder(ctx sdk.Context, handle uint64) (types.PendingOrder, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PendingOrderKey(handle))
	if bz == nil {
		return types.PendingOrder{}, errorsmod.Wrapf(types.ErrInvalidReplyId, "no pending order for handle %d", handle)
	}

	var pending types.PendingOrder
	if err := json.Unmarshal(bz, &pending); err != nil {
		panic(fmt.Errorf("failed to unmarshal pending order: %w", err))
	}

	store.Delete(types.PendingOrderKey(handle))
	return pending, nil
}
