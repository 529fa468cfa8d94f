package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/x/orderguard/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the orderguard MsgServer
// interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// AddMarket registers an order-book contract
func (ms msgServer) AddMarket(goCtx context.Context, msg *types.MsgAddMarket) (*types.MsgAddMarketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	if err := ms.Keeper.AddMarket(ctx, msg.Sender, types.Market{Contract: msg.Contract, Denoms: msg.Denoms}); err != nil {
		return nil, err
	}
	return &types.MsgAddMarketResponse{}, nil
}

// PlaceOrder places a guarded limit order
func (ms msgServer) PlaceOrder(goCtx context.Context, msg *types.MsgPlaceOrder) (*types.MsgPlaceOrderResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return ms.Keeper.PlaceOrder(ctx, msg)
}

// ExecuteSlTp fires a stop-loss or take-profit trigger
func (ms msgServer) ExecuteSlTp(goCtx context.Context, msg *types.MsgExecuteSlTp) (*types.MsgExecuteSlTpResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return ms.Keeper.ExecuteSlTp(ctx, msg)
}
