package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	orderguardkeeper "github.com/restake-zone/restake/x/orderguard/keeper"
	orderguardtypes "github.com/restake-zone/restake/x/orderguard/types"
)

// OrderguardDecorator validates orderguard module-specific transaction
// requirements
type OrderguardDecorator struct {
	keeper orderguardkeeper.Keeper
}

// NewOrderguardDecorator creates a new OrderguardDecorator
func NewOrderguardDecorator(keeper orderguardkeeper.Keeper) OrderguardDecorator {
	return OrderguardDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (od OrderguardDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	msgs := tx.GetMsgs()
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case *orderguardtypes.MsgPlaceOrder:
			if err := od.validatePlaceOrder(ctx, msg); err != nil {
				return ctx, err
			}
		case *orderguardtypes.MsgExecuteSlTp:
			if err := od.validateExecuteSlTp(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validatePlaceOrder rejects placements against unknown markets before any
// escrow is attempted.
func (od OrderguardDecorator) validatePlaceOrder(ctx sdk.Context, msg *orderguardtypes.MsgPlaceOrder) error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, found := od.keeper.GetMarket(ctx, msg.Market); !found {
		return orderguardtypes.ErrInvalidMarket.Wrapf("market %q is not registered", msg.Market)
	}

	if msg.PriceSL == nil && msg.PriceTP == nil {
		return orderguardtypes.ErrInvalidOrder.Wrap("order needs a stop-loss or take-profit trigger")
	}

	ctx.GasMeter().ConsumeGas(GasPerOrderPlacement, "order placement validation")

	return nil
}

// validateExecuteSlTp checks the trigger targets a market and an order that
// exist; trigger-price matching stays in the keeper.
func (od OrderguardDecorator) validateExecuteSlTp(ctx sdk.Context, msg *orderguardtypes.MsgExecuteSlTp) error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if _, found := od.keeper.GetMarket(ctx, msg.Market); !found {
		return orderguardtypes.ErrInvalidMarket.Wrapf("market %q is not registered", msg.Market)
	}

	if _, found := od.keeper.GetOrder(ctx, msg.User, msg.Market, msg.Side, msg.Price); !found {
		return orderguardtypes.ErrOrderNotFound.Wrapf("no resting order for %s on %s at %s", msg.User, msg.Market, msg.Price)
	}

	ctx.GasMeter().ConsumeGas(GasPerTriggerExecution, "trigger validation")

	return nil
}
