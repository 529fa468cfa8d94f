package keeper

import (
	"fmt"
	"time"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

// HandleReply settles the outcome of a dispatched operation. The handle is
// decoded once at this boundary into its stage and in-range index; everything
// past the switch works with the decoded form. A handle outside every stage
// range, or one whose pending row is missing, means the host delivered a
// reply this module never asked for, which is fatal.
func (k Keeper) HandleReply(ctx sdk.Context, reply types.Reply) error {
	decoded, err := types.DecodeHandle(reply.Handle)
	if err != nil {
		return err
	}

	pending, err := k.takePendingOperation(ctx, reply.Handle)
	if err != nil {
		return err
	}
	k.metrics.PendingOperations.Dec()

	switch decoded.Stage {
	case types.StageClaim:
		if pending.Kind != types.PendingKindClaimAndStake || pending.ClaimAndStake == nil {
			return errorsmod.Wrapf(types.ErrInvalidReplyId, "handle %d carries a %s row in the claim range", reply.Handle, pending.Kind)
		}
		return k.settleClaim(ctx, decoded.Index, reply, *pending.ClaimAndStake)

	case types.StageStake:
		if pending.Kind != types.PendingKindSettlement || pending.Settlement == nil {
			return errorsmod.Wrapf(types.ErrInvalidReplyId, "handle %d carries a %s row in the stake range", reply.Handle, pending.Kind)
		}
		k.settleFollowUp(ctx, types.ActionStake, reply, *pending.Settlement)
		return nil

	case types.StageFeeSend:
		if pending.Kind != types.PendingKindSettlement || pending.Settlement == nil {
			return errorsmod.Wrapf(types.ErrInvalidReplyId, "handle %d carries a %s row in the fee-send range", reply.Handle, pending.Kind)
		}
		k.settleFollowUp(ctx, types.ActionChargeFee, reply, *pending.Settlement)
		return nil

	case types.StageClaimOnly:
		if pending.Kind != types.PendingKindClaimOnly || pending.ClaimOnly == nil {
			return errorsmod.Wrapf(types.ErrInvalidReplyId, "handle %d carries a %s row in the claim-only range", reply.Handle, pending.Kind)
		}
		return k.settleClaimOnly(ctx, reply, *pending.ClaimOnly)
	}

	return errorsmod.Wrapf(types.ErrInvalidReplyId, "handle %d decoded to unknown stage", reply.Handle)
}

// settleClaim handles the claim-stage reply of the claim-and-stake pipeline.
// On success the claimed amount is the reward-denom balance delta since
// dispatch; the fee is floored out of it and the rest is staked. The stake
// follow-up always goes out; the fee send only when the fee is positive.
// Both reuse the claim's index in their own handle ranges.
func (k Keeper) settleClaim(ctx sdk.Context, index uint64, reply types.Reply, pending types.PendingClaimAndStake) error {
	if !reply.Success {
		k.Logger(ctx).Info("claim failed",
			"handle", reply.Handle,
			"user", pending.User,
			"protocol", pending.Protocol,
			"error", reply.Err,
		)
		k.metrics.ClaimsFailed.WithLabelValues(pending.Protocol).Inc()
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAutoclaim,
				sdk.NewAttribute(types.AttributeKeyAction, types.ActionClaim),
				sdk.NewAttribute(types.AttributeKeyResult, types.ResultFailed),
				sdk.NewAttribute(types.AttributeKeyHandle, fmt.Sprintf("%d", reply.Handle)),
				sdk.NewAttribute(types.AttributeKeyProtocol, pending.Protocol),
				sdk.NewAttribute(types.AttributeKeyAddress, pending.User),
				sdk.NewAttribute(types.AttributeKeyError, reply.Err),
			),
		)
		return nil
	}

	config, found := k.GetProtocolConfig(ctx, pending.Protocol)
	if !found {
		return errorsmod.Wrapf(types.ErrInvalidProtocol, "protocol %q vanished from the registry", pending.Protocol)
	}
	if config.Strategy.Type != types.StrategyClaimAndStake || config.Strategy.ClaimAndStake == nil {
		return errorsmod.Wrapf(types.ErrInvalidStrategy, "protocol %q is no longer claim-and-stake", pending.Protocol)
	}
	strategy := config.Strategy.ClaimAndStake

	userAddr, err := sdk.AccAddressFromBech32(pending.User)
	if err != nil {
		return errorsmod.Wrapf(types.ErrInvalidAddress, "pending user address %q: %s", pending.User, err)
	}

	balanceAfter := k.bankKeeper.GetBalance(ctx, userAddr, strategy.RewardDenom)
	claimed := balanceAfter.Amount.Sub(pending.BalanceBefore)
	if !claimed.IsPositive() {
		return errorsmod.Wrapf(types.ErrNoRewards, "claim for %s on %s moved no funds", pending.User, pending.Protocol)
	}

	fee := config.FeePercentage.MulInt(claimed).TruncateInt()
	stake := claimed.Sub(fee)
	if !stake.IsPositive() {
		return errorsmod.Wrapf(types.ErrNoRewards, "nothing left to stake after the %s fee", fee.String())
	}

	stakeHandle := types.ClaimAndStakeStakeBase + index
	stakeOp, err := types.NewStakeOperation(pending.User, strategy.StakeContract, sdk.NewCoin(strategy.RewardDenom, stake))
	if err != nil {
		return err
	}
	if err := k.setPendingOperation(ctx, stakeHandle, types.PendingOperation{
		Kind:       types.PendingKindSettlement,
		Settlement: &types.PendingSettlement{User: pending.User, Protocol: pending.Protocol, Amount: stake},
	}); err != nil {
		return err
	}
	if err := k.host.Dispatch(ctx, stakeHandle, stakeOp); err != nil {
		return err
	}
	k.metrics.PendingOperations.Inc()

	if fee.IsPositive() {
		sendHandle := types.ClaimAndStakeSendBase + index
		sendOp := types.NewSendOperation(pending.User, config.FeeAddress, sdk.NewCoin(strategy.RewardDenom, fee))
		if err := k.setPendingOperation(ctx, sendHandle, types.PendingOperation{
			Kind:       types.PendingKindSettlement,
			Settlement: &types.PendingSettlement{User: pending.User, Protocol: pending.Protocol, Amount: fee},
		}); err != nil {
			return err
		}
		if err := k.host.Dispatch(ctx, sendHandle, sendOp); err != nil {
			return err
		}
		k.metrics.PendingOperations.Inc()
		k.metrics.FeesCharged.WithLabelValues(pending.Protocol).Inc()
	}

	now := ctx.BlockTime()
	if err := k.SetExecutionData(ctx, pending.User, pending.Protocol, types.ExecutionData{LastAutoclaim: now}); err != nil {
		return err
	}

	k.Logger(ctx).Info("claim settled",
		"handle", reply.Handle,
		"user", pending.User,
		"protocol", pending.Protocol,
		"claimed", claimed.String(),
		"fee", fee.String(),
		"stake", stake.String(),
	)
	k.metrics.ClaimsSettled.WithLabelValues(pending.Protocol).Inc()

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAutoclaim,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionClaim),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyHandle, fmt.Sprintf("%d", reply.Handle)),
			sdk.NewAttribute(types.AttributeKeyProtocol, pending.Protocol),
			sdk.NewAttribute(types.AttributeKeyAddress, pending.User),
			sdk.NewAttribute(types.AttributeKeyToken, strategy.RewardDenom),
			sdk.NewAttribute(types.AttributeKeyTokensClaimed, claimed.String()),
			sdk.NewAttribute(types.AttributeKeyFeeToCharge, fee.String()),
			sdk.NewAttribute(types.AttributeKeyTokensToStake, stake.String()),
			sdk.NewAttribute(types.AttributeKeyTimestamp, now.UTC().Format(time.RFC3339)),
		),
	)
	return nil
}

// settleFollowUp records the outcome of a stake or fee-send reply. These
// stages are observational: a failure here ends the pipeline with an event
// and a log line, nothing is unwound.
func (k Keeper) settleFollowUp(ctx sdk.Context, action string, reply types.Reply, pending types.PendingSettlement) {
	result := types.ResultOk
	if !reply.Success {
		result = types.ResultFailed
	}

	switch {
	case action == types.ActionStake && reply.Success:
		k.metrics.StakesSettled.WithLabelValues(pending.Protocol).Inc()
	case action == types.ActionStake:
		k.metrics.StakesFailed.WithLabelValues(pending.Protocol).Inc()
	case !reply.Success:
		k.metrics.FeeSendFailed.WithLabelValues(pending.Protocol).Inc()
	}

	k.Logger(ctx).Info("follow-up settled",
		"action", action,
		"handle", reply.Handle,
		"user", pending.User,
		"protocol", pending.Protocol,
		"amount", pending.Amount.String(),
		"result", result,
		"error", reply.Err,
	)

	attrs := []sdk.Attribute{
		sdk.NewAttribute(types.AttributeKeyAction, action),
		sdk.NewAttribute(types.AttributeKeyResult, result),
		sdk.NewAttribute(types.AttributeKeyHandle, fmt.Sprintf("%d", reply.Handle)),
		sdk.NewAttribute(types.AttributeKeyProtocol, pending.Protocol),
		sdk.NewAttribute(types.AttributeKeyAddress, pending.User),
		sdk.NewAttribute(types.AttributeKeyTokensToStake, pending.Amount.String()),
	}
	if !reply.Success {
		attrs = append(attrs, sdk.NewAttribute(types.AttributeKeyError, reply.Err))
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeAutoclaim, attrs...))
}

// settleClaimOnly handles the single-stage claim-only reply. Success stamps
// the execution record; failure only reports.
func (k Keeper) settleClaimOnly(ctx sdk.Context, reply types.Reply, pending types.PendingClaimOnly) error {
	if !reply.Success {
		k.metrics.ClaimsFailed.WithLabelValues(pending.Protocol).Inc()
		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeAutoclaim,
				sdk.NewAttribute(types.AttributeKeyAction, types.ActionClaim),
				sdk.NewAttribute(types.AttributeKeyResult, types.ResultFailed),
				sdk.NewAttribute(types.AttributeKeyHandle, fmt.Sprintf("%d", reply.Handle)),
				sdk.NewAttribute(types.AttributeKeyProtocol, pending.Protocol),
				sdk.NewAttribute(types.AttributeKeyAddress, pending.User),
				sdk.NewAttribute(types.AttributeKeyContractAddress, pending.MarketContract),
				sdk.NewAttribute(types.AttributeKeyError, reply.Err),
			),
		)
		return nil
	}

	now := ctx.BlockTime()
	if err := k.SetExecutionData(ctx, pending.User, pending.Protocol, types.ExecutionData{LastAutoclaim: now}); err != nil {
		return err
	}

	k.metrics.ClaimsSettled.WithLabelValues(pending.Protocol).Inc()
	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAutoclaim,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionClaim),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyHandle, fmt.Sprintf("%d", reply.Handle)),
			sdk.NewAttribute(types.AttributeKeyProtocol, pending.Protocol),
			sdk.NewAttribute(types.AttributeKeyAddress, pending.User),
			sdk.NewAttribute(types.AttributeKeyContractAddress, pending.MarketContract),
			sdk.NewAttribute(types.AttributeKeyTimestamp, now.UTC().Format(time.RFC3339)),
		),
	)
	return nil
}
