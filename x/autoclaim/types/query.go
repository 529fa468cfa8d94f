package types

import (
	"context"
	"fmt"
	"time"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// QueryServer is the server API for the autoclaim Query service.
type QueryServer interface {
	// Config returns the owner, dispatch cap, and full protocol registry.
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	// Subscriptions returns every (user, protocols) subscription pair.
	Subscriptions(context.Context, *QuerySubscriptionsRequest) (*QuerySubscriptionsResponse, error)
	// SubscribedProtocols returns the protocols one user is subscribed to,
	// with the last successful claim time per protocol.
	SubscribedProtocols(context.Context, *QuerySubscribedProtocolsRequest) (*QuerySubscribedProtocolsResponse, error)
	// PendingOperations returns the outstanding in-flight operations.
	PendingOperations(context.Context, *QueryPendingOperationsRequest) (*QueryPendingOperationsResponse, error)
}

// QueryConfigRequest is the request for the Config query.
type QueryConfigRequest struct{}

func (m *QueryConfigRequest) Reset()         { *m = QueryConfigRequest{} }
func (m *QueryConfigRequest) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryConfigRequest) ProtoMessage()    {}

// QueryConfigResponse is the response for the Config query.
type QueryConfigResponse struct {
	Owner             string           `json:"owner"`
	MaxParallelClaims uint32           `json:"max_parallel_claims"`
	ProtocolConfigs   []ProtocolConfig `json:"protocol_configs"`
}

func (m *QueryConfigResponse) Reset()         { *m = QueryConfigResponse{} }
func (m *QueryConfigResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryConfigResponse) ProtoMessage()    {}

// QuerySubscriptionsRequest is the request for the Subscriptions query.
type QuerySubscriptionsRequest struct{}

func (m *QuerySubscriptionsRequest) Reset()         { *m = QuerySubscriptionsRequest{} }
func (m *QuerySubscriptionsRequest) String() string { return fmt.Sprintf("%v", *m) }
func (*QuerySubscriptionsRequest) ProtoMessage()    {}

// QuerySubscriptionsResponse is the response for the Subscriptions query.
type QuerySubscriptionsResponse struct {
	Subscriptions []SubscriptionRecord `json:"subscriptions"`
}

func (m *QuerySubscriptionsResponse) Reset()         { *m = QuerySubscriptionsResponse{} }
func (m *QuerySubscriptionsResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*QuerySubscriptionsResponse) ProtoMessage()    {}

// QuerySubscribedProtocolsRequest is the request for the SubscribedProtocols
// query.
type QuerySubscribedProtocolsRequest struct {
	User string `json:"user"`
}

func (m *QuerySubscribedProtocolsRequest) Reset()         { *m = QuerySubscribedProtocolsRequest{} }
func (m *QuerySubscribedProtocolsRequest) String() string { return fmt.Sprintf("%v", *m) }
func (*QuerySubscribedProtocolsRequest) ProtoMessage()    {}

// SubscribedProtocol is one protocol a user is subscribed to. LastAutoclaim
// is nil when no claim has ever settled for the pair.
type SubscribedProtocol struct {
	Protocol      string     `json:"protocol"`
	LastAutoclaim *time.Time `json:"last_autoclaim,omitempty"`
}

// QuerySubscribedProtocolsResponse is the response for the
// SubscribedProtocols query.
type QuerySubscribedProtocolsResponse struct {
	Protocols []SubscribedProtocol `json:"protocols"`
}

func (m *QuerySubscribedProtocolsResponse) Reset()         { *m = QuerySubscribedProtocolsResponse{} }
func (m *QuerySubscribedProtocolsResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*QuerySubscribedProtocolsResponse) ProtoMessage()    {}

// QueryPendingOperationsRequest is the request for the PendingOperations
// query.
type QueryPendingOperationsRequest struct{}

func (m *QueryPendingOperationsRequest) Reset()         { *m = QueryPendingOperationsRequest{} }
func (m *QueryPendingOperationsRequest) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryPendingOperationsRequest) ProtoMessage()    {}

// PendingOperationRecord pairs a dispatch handle with its pending row.
type PendingOperationRecord struct {
	Handle    uint64           `json:"handle"`
	Operation PendingOperation `json:"operation"`
}

// QueryPendingOperationsResponse is the response for the PendingOperations
// query.
type QueryPendingOperationsResponse struct {
	Operations []PendingOperationRecord `json:"operations"`
}

func (m *QueryPendingOperationsResponse) Reset()         { *m = QueryPendingOperationsResponse{} }
func (m *QueryPendingOperationsResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryPendingOperationsResponse) ProtoMessage()    {}

// RegisterQueryServer registers the Query service implementation with the
// provided registrar (the app's grpc query router).
func RegisterQueryServer(s grpc1.Server, srv QueryServer) {
	s.RegisterService(&_Query_serviceDesc, srv)
}

func _Query_Config_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryConfigRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Config(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Query/Config",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Config(ctx, req.(*QueryConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Subscriptions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySubscriptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Subscriptions(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Query/Subscriptions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Subscriptions(ctx, req.(*QuerySubscriptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_SubscribedProtocols_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QuerySubscribedProtocolsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).SubscribedProtocols(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Query/SubscribedProtocols",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).SubscribedProtocols(ctx, req.(*QuerySubscribedProtocolsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_PendingOperations_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryPendingOperationsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).PendingOperations(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Query/PendingOperations",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).PendingOperations(ctx, req.(*QueryPendingOperationsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "restake.autoclaim.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Config",
			Handler:    _Query_Config_Handler,
		},
		{
			MethodName: "Subscriptions",
			Handler:    _Query_Subscriptions_Handler,
		},
		{
			MethodName: "SubscribedProtocols",
			Handler:    _Query_SubscribedProtocols_Handler,
		},
		{
			MethodName: "PendingOperations",
			Handler:    _Query_PendingOperations_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "restake/autoclaim/v1/query.proto",
}
