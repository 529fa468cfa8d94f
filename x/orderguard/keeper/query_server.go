package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/restake-zone/restake/x/orderguard/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the orderguard QueryServer
// interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Config returns the module configuration
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryConfigResponse{Owner: qs.GetParams(ctx).Owner}, nil
}

// Markets returns the registered market contracts
func (qs queryServer) Markets(goCtx context.Context, req *types.QueryMarketsRequest) (*types.QueryMarketsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryMarketsResponse{Markets: qs.GetAllMarkets(ctx)}, nil
}

// Orders returns one user's resting guarded orders
func (qs queryServer) Orders(goCtx context.Context, req *types.QueryOrdersRequest) (*types.QueryOrdersResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	if req.User == "" {
		return nil, status.Error(codes.InvalidArgument, "user cannot be empty")
	}
	if _, err := sdk.AccAddressFromBech32(req.User); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user address: %s", err)
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryOrdersResponse{Orders: qs.GetUserOrders(ctx, req.User)}, nil
}
