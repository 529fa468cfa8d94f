package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the autoclaim MsgServer
// interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// UpdateConfig overwrites global configuration and upserts registry entries
func (ms msgServer) UpdateConfig(goCtx context.Context, msg *types.MsgUpdateConfig) (*types.MsgUpdateConfigResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.UpdateConfig(ctx, msg.Sender, msg); err != nil {
		return nil, err
	}
	return &types.MsgUpdateConfigResponse{}, nil
}

// ClaimAndStake starts the claim/stake/fee pipeline for a batch of users
func (ms msgServer) ClaimAndStake(goCtx context.Context, msg *types.MsgClaimAndStake) (*types.MsgClaimAndStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return ms.Keeper.ClaimAndStake(ctx, msg.Sender, msg.UsersProtocols)
}

// ClaimOnly starts withdraw-only claims for one protocol's markets
func (ms msgServer) ClaimOnly(goCtx context.Context, msg *types.MsgClaimOnly) (*types.MsgClaimOnlyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return ms.Keeper.ClaimOnly(ctx, msg.Sender, msg.Protocol, msg.UsersContracts)
}

// Subscribe authorizes automated claiming for the sender
func (ms msgServer) Subscribe(goCtx context.Context, msg *types.MsgSubscribe) (*types.MsgSubscribeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.Subscribe(ctx, msg.Sender, msg.Protocols); err != nil {
		return nil, err
	}
	return &types.MsgSubscribeResponse{}, nil
}

// Unsubscribe revokes automated claiming for the sender
func (ms msgServer) Unsubscribe(goCtx context.Context, msg *types.MsgUnsubscribe) (*types.MsgUnsubscribeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.Unsubscribe(ctx, msg.Sender, msg.Protocols); err != nil {
		return nil, err
	}
	return &types.MsgUnsubscribeResponse{}, nil
}
