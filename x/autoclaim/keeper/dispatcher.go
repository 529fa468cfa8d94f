package keeper

import (
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/app/telemetry"
	"github.com/restake-zone/restake/x/autoclaim/types"
)

// ClaimAndStake starts the claim/stake/fee pipeline for a batch of
// (user, protocols) pairs. Owner-only. The batch cap is checked before any
// dispatch, so a too-large batch is rejected whole. Unsubscribed pairs and
// pairs whose protocol is not configured for claim-and-stake are skipped and
// reported back, never treated as fatal.
func (k Keeper) ClaimAndStake(ctx sdk.Context, caller string, usersProtocols []types.UserProtocols) (*types.MsgClaimAndStakeResponse, error) {
	if err := k.assertOwner(ctx, caller); err != nil {
		return nil, err
	}

	params := k.GetParams(ctx)

	total := 0
	for _, up := range usersProtocols {
		total += len(up.Protocols)
	}
	if total > int(params.MaxParallelClaims) {
		return nil, errorsmod.Wrapf(types.ErrTooManyMessages, "%d pairs exceed the cap of %d", total, params.MaxParallelClaims)
	}

	var (
		dispatched uint32
		ignored    []string
	)

	for _, up := range usersProtocols {
		userAddr, err := sdk.AccAddressFromBech32(up.User)
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrInvalidAddress, "invalid user address %q: %s", up.User, err)
		}

		for _, protocol := range up.Protocols {
			if !k.IsSubscribed(ctx, up.User, protocol) {
				ignored = append(ignored, ignoredPair(up.User, protocol))
				continue
			}

			config, found := k.GetProtocolConfig(ctx, protocol)
			if !found || config.Strategy.Type != types.StrategyClaimAndStake {
				ignored = append(ignored, ignoredPair(up.User, protocol))
				continue
			}
			strategy := config.Strategy.ClaimAndStake

			balanceBefore := k.bankKeeper.GetBalance(ctx, userAddr, strategy.RewardDenom)

			h, err := k.handles.Next(ctx, types.ClaimAndStakeClaimBase)
			if err != nil {
				return nil, err
			}

			pending := types.PendingOperation{
				Kind: types.PendingKindClaimAndStake,
				ClaimAndStake: &types.PendingClaimAndStake{
					User:          up.User,
					Protocol:      protocol,
					BalanceBefore: balanceBefore.Amount,
				},
			}
			if err := k.setPendingOperation(ctx, h, pending); err != nil {
				return nil, err
			}

			op, err := types.NewClaimOperation(strategy.Provider, up.User, strategy.ClaimContract)
			if err != nil {
				return nil, errorsmod.Wrap(types.ErrInvalidStrategy, err.Error())
			}

			_, span := telemetry.StartDispatchSpan(ctx.Context(), h, "claim_and_stake", protocol)
			err = k.host.Dispatch(ctx, h, op)
			telemetry.SetSpanStatus(span, err == nil, "claim dispatch")
			span.End()
			if err != nil {
				return nil, err
			}

			k.Logger(ctx).Info("dispatched claim",
				"handle", h,
				"user", up.User,
				"protocol", protocol,
				"balance_before", balanceBefore.Amount.String(),
			)
			k.metrics.ClaimsDispatched.WithLabelValues(protocol).Inc()
			k.metrics.PendingOperations.Inc()
			dispatched++
		}
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAutoclaim,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionClaimAndStake),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyIgnoredCount, fmt.Sprintf("%d", len(ignored))),
			sdk.NewAttribute(types.AttributeKeyIgnoredPairs, strings.Join(ignored, ",")),
		),
	)

	return &types.MsgClaimAndStakeResponse{
		DispatchedCount: dispatched,
		IgnoredCount:    uint32(len(ignored)),
		IgnoredPairs:    ignored,
	}, nil
}

// ClaimOnly starts withdraw-only claims against one claim-only protocol's
// market contracts. Owner-only. The protocol must exist and be configured
// with the claim-only strategy; markets outside the strategy's whitelist are
// skipped and reported back.
func (k Keeper) ClaimOnly(ctx sdk.Context, caller, protocol string, usersContracts []types.UserContract) (*types.MsgClaimOnlyResponse, error) {
	if err := k.assertOwner(ctx, caller); err != nil {
		return nil, err
	}

	config, found := k.GetProtocolConfig(ctx, protocol)
	if !found {
		return nil, errorsmod.Wrapf(types.ErrInvalidProtocol, "unknown protocol %q", protocol)
	}
	if config.Strategy.Type != types.StrategyClaimOnlyFIN {
		return nil, errorsmod.Wrapf(types.ErrInvalidStrategy, "protocol %q is not claim-only", protocol)
	}
	strategy := config.Strategy.ClaimOnlyFIN

	params := k.GetParams(ctx)
	if len(usersContracts) > int(params.MaxParallelClaims) {
		return nil, errorsmod.Wrapf(types.ErrTooManyMessages, "%d pairs exceed the cap of %d", len(usersContracts), params.MaxParallelClaims)
	}

	var (
		dispatched uint32
		ignored    []string
	)

	for _, uc := range usersContracts {
		if !strategy.Supports(uc.Contract) {
			ignored = append(ignored, ignoredPair(uc.User, uc.Contract))
			continue
		}

		h, err := k.handles.Next(ctx, types.ClaimOnlyClaimBase)
		if err != nil {
			return nil, err
		}

		pending := types.PendingOperation{
			Kind: types.PendingKindClaimOnly,
			ClaimOnly: &types.PendingClaimOnly{
				Protocol:       protocol,
				User:           uc.User,
				MarketContract: uc.Contract,
			},
		}
		if err := k.setPendingOperation(ctx, h, pending); err != nil {
			return nil, err
		}

		op, err := types.NewFINWithdrawOperation(uc.User, uc.Contract)
		if err != nil {
			return nil, err
		}

		_, span := telemetry.StartDispatchSpan(ctx.Context(), h, "claim_only", protocol)
		err = k.host.Dispatch(ctx, h, op)
		telemetry.SetSpanStatus(span, err == nil, "withdraw dispatch")
		span.End()
		if err != nil {
			return nil, err
		}

		k.Logger(ctx).Info("dispatched withdraw",
			"handle", h,
			"user", uc.User,
			"protocol", protocol,
			"market", uc.Contract,
		)
		k.metrics.ClaimsDispatched.WithLabelValues(protocol).Inc()
		k.metrics.PendingOperations.Inc()
		dispatched++
	}

	ctx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAutoclaim,
			sdk.NewAttribute(types.AttributeKeyAction, types.ActionClaimOnly),
			sdk.NewAttribute(types.AttributeKeyResult, types.ResultOk),
			sdk.NewAttribute(types.AttributeKeyProtocol, protocol),
			sdk.NewAttribute(types.AttributeKeyIgnoredCount, fmt.Sprintf("%d", len(ignored))),
			sdk.NewAttribute(types.AttributeKeyIgnoredMarkets, strings.Join(ignored, ",")),
		),
	)

	return &types.MsgClaimOnlyResponse{
		DispatchedCount: dispatched,
		IgnoredCount:    uint32(len(ignored)),
		IgnoredMarkets:  ignored,
	}, nil
}

func ignoredPair(user, target string) string {
	return user + "/" + target
}
