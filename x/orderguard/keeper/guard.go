package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/app/telemetry"
	"github.com/restake-zone/restake/x/orderguard/types"
)

// AddMarket registers an order-book contract and its traded pair.
// Owner-only. Re-registering a contract overwrites its denoms.
func (k Keeper) AddMarket(ctx sdk.Context, caller string, market types.Market) error {
	if err := k.assertOwner(ctx, caller); err != nil {
		return err
	}

	if err := k.SetMarket(ctx, market); err != nil {
		return err
	}

	k.Logger(ctx).Info("market registered",
		"contract", market.Contract,
		"base", market.Denoms.Base,
		"quote", market.Denoms.Quote,
	)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderguard,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionAddMarket),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyMarket, market.Contract),
		),
	)
	return nil
}

// PlaceOrder records a guarded order and dispatches its placement on the
// market contract. The order row is written up front and rolled back if the
// host reports the placement failed.
func (k Keeper) PlaceOrder(ctx sdk.Context, msg *types.MsgPlaceOrder) (*types.MsgPlaceOrderResponse, error) {
	market, found := k.GetMarket(ctx, msg.Market)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrInvalidMarket, "market %q is not registered", msg.Market)
	}

	if _, exists := k.GetOrder(ctx, msg.Sender, msg.Market, msg.Side, msg.Price); exists {
		return nil, errorsmod.Wrapf(types.ErrInvalidOrder, "an order already rests at %s/%s", msg.Side, msg.Price)
	}

	order := types.UserOrder{Amount: msg.Amount, PriceSL: msg.PriceSL, PriceTP: msg.PriceTP}
	if err := order.Validate(); err != nil {
		return nil, err
	}
	if err := k.SetOrder(ctx, msg.Sender, msg.Market, msg.Side, msg.Price, order); err != nil {
		return nil, err
	}

	h, err := k.handles.Next(ctx, types.PlaceOrderBase)
	if err != nil {
		return nil, err
	}
	if err := k.setPendingOrder(ctx, h, types.PendingOrder{
		User:   msg.Sender,
		Market: msg.Market,
		Side:   msg.Side,
		Price:  msg.Price,
	}); err != nil {
		return nil, err
	}

	deposit := sdk.NewCoin(msg.Side.Deposit(market.Denoms), msg.Amount)
	op, err := types.NewSubmitOrderOperation(msg.Sender, msg.Market, msg.Side, msg.Price, deposit)
	if err != nil {
		return nil, err
	}
	if err := k.host.Dispatch(ctx, h, op); err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("dispatched order placement",
		"handle", h,
		"user", msg.Sender,
		"market", msg.Market,
		"side", msg.Side,
		"price", msg.Price.String(),
		"amount", msg.Amount.String(),
	)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderguard,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionPlaceOrder),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyHandle, fmt.Sprintf("%d", h)),
			sdk.NewAttribute(types.AttributeKeyUser, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyMarket, msg.Market),
			sdk.NewAttribute(types.AttributeKeySide, string(msg.Side)),
			sdk.NewAttribute(types.AttributeKeyPrice, msg.Price.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.String()),
		),
	)

	return &types.MsgPlaceOrderResponse{Handle: h}, nil
}

// ExecuteSlTp fires a guard trigger on a resting order. Owner-only. The
// trigger price must equal the order's stored stop-loss or take-profit
// price; the claim amount must not exceed the resting amount. The order is
// removed only when the host confirms the trigger settled.
func (k Keeper) ExecuteSlTp(ctx sdk.Context, msg *types.MsgExecuteSlTp) (*types.MsgExecuteSlTpResponse, error) {
	if err := k.assertOwner(ctx, msg.Sender); err != nil {
		return nil, err
	}

	if _, found := k.GetMarket(ctx, msg.Market); !found {
		return nil, errorsmod.Wrapf(types.ErrInvalidMarket, "market %q is not registered", msg.Market)
	}

	order, found := k.GetOrder(ctx, msg.User, msg.Market, msg.Side, msg.Price)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrOrderNotFound, "no order at %s/%s for %s", msg.Side, msg.Price, msg.User)
	}

	trigger, err := order.MatchTrigger(msg.TriggerPrice)
	if err != nil {
		return nil, err
	}
	if msg.ClaimAmount.GT(order.Amount) {
		return nil, errorsmod.Wrapf(types.ErrInvalidOrder, "claim amount %s exceeds resting amount %s", msg.ClaimAmount, order.Amount)
	}

	h, err := k.handles.Next(ctx, types.TriggerBase)
	if err != nil {
		return nil, err
	}
	if err := k.setPendingOrder(ctx, h, types.PendingOrder{
		User:    msg.User,
		Market:  msg.Market,
		Side:    msg.Side,
		Price:   msg.Price,
		Trigger: trigger,
	}); err != nil {
		return nil, err
	}

	op, err := types.NewRetractAndSwapOperation(msg.User, msg.Market, msg.Side, msg.Price, msg.ClaimAmount)
	if err != nil {
		return nil, err
	}

	_, span := telemetry.StartTriggerSpan(ctx.Context(), msg.Market, string(msg.Side), msg.Price.String())
	err = k.host.Dispatch(ctx, h, op)
	telemetry.SetSpanStatus(span, err == nil, "trigger dispatch")
	span.End()
	if err != nil {
		return nil, err
	}

	k.Logger(ctx).Info("dispatched trigger execution",
		"handle", h,
		"user", msg.User,
		"market", msg.Market,
		"trigger", trigger,
		"claim_amount", msg.ClaimAmount.String(),
	)
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeOrderguard,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionExecuteSlTp),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyHandle, fmt.Sprintf("%d", h)),
			sdk.NewAttribute(types.AttributeKeyUser, msg.User),
			sdk.NewAttribute(types.AttributeKeyMarket, msg.Market),
			sdk.NewAttribute(types.AttributeKeyTrigger, string(trigger)),
		),
	)

	return &types.MsgExecuteSlTpResponse{Handle: h, Trigger: trigger}, nil
}

// HandleReply settles the outcome of a dispatched order operation. A failed
// placement rolls the order row back; a settled trigger removes it. Failed
// triggers keep the order resting so the guard can fire again.
func (k Keeper) HandleReply(ctx sdk.Context, reply types.Reply) error {
	decoded, err := types.DecodeHandle(reply.Handle)
	if err != nil {
		return err
	}

	pending, err := k.takePendingOrder(ctx, reply.Handle)
	if err != nil {
		return err
	}

	result := types.ResultOk
	if !reply.Success {
		result = types.ResultFailed
	}

	switch decoded.Stage {
	case types.StagePlace:
		if !reply.Success {
			k.DeleteOrder(ctx, pending.User, pending.Market, pending.Side, pending.Price)
		}
	case types.StageTrigger:
		if reply.Success {
			k.DeleteOrder(ctx, pending.User, pending.Market, pending.Side, pending.Price)
		}
	}

	k.Logger(ctx).Info("order operation settled",
		"stage", decoded.Stage,
		"handle", reply.Handle,
		"user", pending.User,
		"market", pending.Market,
		"result", result,
		"error", reply.Err,
	)

	attrs := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyAction, types.ActionOrderSettled),
		sdk.NewAttribute(types.AttributeKeyResult, result),
		sdk.NewAttribute(types.AttributeKeyHandle, fmt.Sprintf("%d", reply.Handle)),
		sdk.NewAttribute(types.AttributeKeyUser, pending.User),
		sdk.NewAttribute(types.AttributeKeyMarket, pending.Market),
		sdk.NewAttribute(types.AttributeKeySide, string(pending.Side)),
		sdk.NewAttribute(types.AttributeKeyPrice, pending.Price.String()),
	}
	if pending.Trigger != "" {
		attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyTrigger, string(pending.Trigger)))
	}
	if !reply.Success {
		attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyError, reply.Err))
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeOrderguard, attrs...))
	return nil
}
