package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	autoclaimkeeper "github.com/restake-zone/restake/x/autoclaim/keeper"
	autoclaimtypes "github.com/restake-zone/restake/x/autoclaim/types"
)

// AutoclaimDecorator validates autoclaim module-specific transaction
// requirements before execution. Batches that cannot possibly dispatch are
// rejected here so they never reach the keeper.
type AutoclaimDecorator struct {
	keeper autoclaimkeeper.Keeper
}

// NewAutoclaimDecorator creates a new AutoclaimDecorator
func NewAutoclaimDecorator(keeper autoclaimkeeper.Keeper) AutoclaimDecorator {
	return AutoclaimDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (ad AutoclaimDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	msgs := tx.GetMsgs()
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case *autoclaimtypes.MsgClaimAndStake:
			if err := ad.validateClaimAndStake(ctx, msg); err != nil {
				return ctx, err
			}
		case *autoclaimtypes.MsgClaimOnly:
			if err := ad.validateClaimOnly(ctx, msg); err != nil {
				return ctx, err
			}
		case *autoclaimtypes.MsgSubscribe:
			if err := ad.validateSubscribe(ctx, msg); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

// validateClaimAndStake bounds the batch and checks every named protocol is
// registered before the dispatcher spends gas on it.
func (ad AutoclaimDecorator) validateClaimAndStake(ctx sdk.Context, msg *autoclaimtypes.MsgClaimAndStake) error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	params := ad.keeper.GetParams(ctx)

	pairs := 0
	for _, up := range msg.UsersProtocols {
		if _, err := sdk.AccAddressFromBech32(up.User); err != nil {
			return sdkerrors.ErrInvalidAddress.Wrapf("invalid user address %q: %s", up.User, err)
		}
		for _, protocol := range up.Protocols {
			if !ad.keeper.HasProtocolConfig(ctx, protocol) {
				return autoclaimtypes.ErrInvalidProtocol.Wrapf("protocol %q is not registered", protocol)
			}
			pairs++
		}
	}

	if pairs == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("claim batch is empty")
	}

	if uint32(pairs) > params.MaxParallelClaims {
		return autoclaimtypes.ErrTooManyMessages.Wrapf("%d claim pairs exceed the cap of %d", pairs, params.MaxParallelClaims)
	}

	ctx.GasMeter().ConsumeGas(GasPerClaimPair*uint64(pairs), "claim batch validation")

	return nil
}

func (ad AutoclaimDecorator) validateClaimOnly(ctx sdk.Context, msg *autoclaimtypes.MsgClaimOnly) error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	if !ad.keeper.HasProtocolConfig(ctx, msg.Protocol) {
		return autoclaimtypes.ErrInvalidProtocol.Wrapf("protocol %q is not registered", msg.Protocol)
	}

	if len(msg.UsersContracts) == 0 {
		return sdkerrors.ErrInvalidRequest.Wrap("claim batch is empty")
	}

	params := ad.keeper.GetParams(ctx)
	if uint32(len(msg.UsersContracts)) > params.MaxParallelClaims {
		return autoclaimtypes.ErrTooManyMessages.Wrapf("%d claim pairs exceed the cap of %d", len(msg.UsersContracts), params.MaxParallelClaims)
	}

	ctx.GasMeter().ConsumeGas(GasPerClaimPair*uint64(len(msg.UsersContracts)), "claim batch validation")

	return nil
}

// validateSubscribe rejects subscriptions to protocols that are not in the
// registry. The keeper repeats this check atomically at execution time.
func (ad AutoclaimDecorator) validateSubscribe(ctx sdk.Context, msg *autoclaimtypes.MsgSubscribe) error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return sdkerrors.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	for _, protocol := range msg.Protocols {
		if !ad.keeper.HasProtocolConfig(ctx, protocol) {
			return autoclaimtypes.ErrInvalidProtocol.Wrapf("protocol %q is not registered", protocol)
		}
	}

	return nil
}
