package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the autoclaim QueryServer
// interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Config returns the owner, dispatch cap, and protocol registry
func (qs queryServer) Config(goCtx context.Context, req *types.QueryConfigRequest) (*types.QueryConfigResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	params := qs.GetParams(ctx)

	return &types.QueryConfigResponse{
		Owner:             params.Owner,
		MaxParallelClaims: params.MaxParallelClaims,
		ProtocolConfigs:   qs.GetAllProtocolConfigs(ctx),
	}, nil
}

// Subscriptions returns every (user, protocols) subscription pair
func (qs queryServer) Subscriptions(goCtx context.Context, req *types.QuerySubscriptionsRequest) (*types.QuerySubscriptionsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QuerySubscriptionsResponse{
		Subscriptions: qs.GetAllSubscriptions(ctx),
	}, nil
}

// SubscribedProtocols returns one user's subscriptions with last claim times
func (qs queryServer) SubscribedProtocols(goCtx context.Context, req *types.QuerySubscribedProtocolsRequest) (*types.QuerySubscribedProtocolsResponse, error) {
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

	var protocols []types.SubscribedProtocol
	for _, p := range qs.GetSubscription(ctx, req.User) {
		entry := types.SubscribedProtocol{Protocol: p}
		if data, found := qs.GetExecutionData(ctx, req.User, p); found {
			t := data.LastAutoclaim
			entry.LastAutoclaim = &t
		}
		protocols = append(protocols, entry)
	}

	return &types.QuerySubscribedProtocolsResponse{Protocols: protocols}, nil
}

// PendingOperations returns the outstanding in-flight operations
func (qs queryServer) PendingOperations(goCtx context.Context, req *types.QueryPendingOperationsRequest) (*types.QueryPendingOperationsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	return &types.QueryPendingOperationsResponse{
		Operations: qs.GetAllPendingOperations(ctx),
	}, nil
}
