package types

import (
	"context"
	"fmt"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// QueryServer is the server API for the orderguard Query service.
type QueryServer interface {
	// Config returns the module configuration.
	Config(context.Context, *QueryConfigRequest) (*QueryConfigResponse, error)
	// Markets returns the registered market contracts.
	Markets(context.Context, *QueryMarketsRequest) (*QueryMarketsResponse, error)
	// Orders returns one user's resting guarded orders.
	Orders(context.Context, *QueryOrdersRequest) (*QueryOrdersResponse, error)
}

// QueryConfigRequest is the request for the Config query.
type QueryConfigRequest struct{}

func (m *QueryConfigRequest) Reset()         { *m = QueryConfigRequest{} }
func (m *QueryConfigRequest) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryConfigRequest) ProtoMessage()    {}

// QueryConfigResponse is the response for the Config query.
type QueryConfigResponse struct {
	Owner string `json:"owner"`
}

func (m *QueryConfigResponse) Reset()         { *m = QueryConfigResponse{} }
func (m *QueryConfigResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryConfigResponse) ProtoMessage()    {}

// QueryMarketsRequest is the request for the Markets query.
type QueryMarketsRequest struct{}

func (m *QueryMarketsRequest) Reset()         { *m = QueryMarketsRequest{} }
func (m *QueryMarketsRequest) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryMarketsRequest) ProtoMessage()    {}

// QueryMarketsResponse is the response for the Markets query.
type QueryMarketsResponse struct {
	Markets []Market `json:"markets"`
}

func (m *QueryMarketsResponse) Reset()         { *m = QueryMarketsResponse{} }
func (m *QueryMarketsResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryMarketsResponse) ProtoMessage()    {}

// QueryOrdersRequest is the request for the Orders query.
type QueryOrdersRequest struct {
	User string `json:"user"`
}

func (m *QueryOrdersRequest) Reset()         { *m = QueryOrdersRequest{} }
func (m *QueryOrdersRequest) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryOrdersRequest) ProtoMessage()    {}

// QueryOrdersResponse is the response for the Orders query.
type QueryOrdersResponse struct {
	Orders []OrderRecord `json:"orders"`
}

func (m *QueryOrdersResponse) Reset()         { *m = QueryOrdersResponse{} }
func (m *QueryOrdersResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*QueryOrdersResponse) ProtoMessage()    {}

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
		FullMethod: "/restake.orderguard.v1.Query/Config",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Config(ctx, req.(*QueryConfigRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Markets_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryMarketsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Markets(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.orderguard.v1.Query/Markets",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Markets(ctx, req.(*QueryMarketsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _Query_Orders_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(QueryOrdersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(QueryServer).Orders(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.orderguard.v1.Query/Orders",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(QueryServer).Orders(ctx, req.(*QueryOrdersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var _Query_serviceDesc = grpc.ServiceDesc{
	ServiceName: "restake.orderguard.v1.Query",
	HandlerType: (*QueryServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Config",
			Handler:    _Query_Config_Handler,
		},
		{
			MethodName: "Markets",
			Handler:    _Query_Markets_Handler,
		},
		{
			MethodName: "Orders",
			Handler:    _Query_Orders_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "restake/orderguard/v1/query.proto",
}
