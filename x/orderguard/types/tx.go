package types

import (
	"context"
	"fmt"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// MsgServer is the server API for the orderguard Msg service.
type MsgServer interface {
	// AddMarket registers an order-book contract. Owner-only.
	AddMarket(context.Context, *MsgAddMarket) (*MsgAddMarketResponse, error)
	// PlaceOrder places a guarded limit order on a registered market.
	PlaceOrder(context.Context, *MsgPlaceOrder) (*MsgPlaceOrderResponse, error)
	// ExecuteSlTp fires a stop-loss or take-profit trigger. Owner-only.
	ExecuteSlTp(context.Context, *MsgExecuteSlTp) (*MsgExecuteSlTpResponse, error)
}

// MsgAddMarketResponse is the response for MsgAddMarket.
type MsgAddMarketResponse struct{}

func (m *MsgAddMarketResponse) Reset()         { *m = MsgAddMarketResponse{} }
func (m *MsgAddMarketResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgAddMarketResponse) ProtoMessage()    {}

// MsgPlaceOrderResponse carries the dispatch handle of the placement
// operation.
type MsgPlaceOrderResponse struct {
	Handle uint64 `json:"handle"`
}

func (m *MsgPlaceOrderResponse) Reset()         { *m = MsgPlaceOrderResponse{} }
func (m *MsgPlaceOrderResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgPlaceOrderResponse) ProtoMessage()    {}

// MsgExecuteSlTpResponse carries the dispatch handle of the trigger
// operation and which guard condition fired.
type MsgExecuteSlTpResponse struct {
	Handle  uint64  `json:"handle"`
	Trigger Trigger `json:"trigger"`
}

func (m *MsgExecuteSlTpResponse) Reset()         { *m = MsgExecuteSlTpResponse{} }
func (m *MsgExecuteSlTpResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgExecuteSlTpResponse) ProtoMessage()    {}

// RegisterMsgServer registers the Msg service implementation with the
// provided registrar (the app's msg service router).
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_AddMarket_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgAddMarket)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).AddMarket(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.orderguard.v1.Msg/AddMarket",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).AddMarket(ctx, req.(*MsgAddMarket))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_PlaceOrder_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgPlaceOrder)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).PlaceOrder(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.orderguard.v1.Msg/PlaceOrder",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).PlaceOrder(ctx, req.(*MsgPlaceOrder))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_ExecuteSlTp_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgExecuteSlTp)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).ExecuteSlTp(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.orderguard.v1.Msg/ExecuteSlTp",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).ExecuteSlTp(ctx, req.(*MsgExecuteSlTp))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "restake.orderguard.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "AddMarket",
			Handler:    _Msg_AddMarket_Handler,
		},
		{
			MethodName: "PlaceOrder",
			Handler:    _Msg_PlaceOrder_Handler,
		},
		{
			MethodName: "ExecuteSlTp",
			Handler:    _Msg_ExecuteSlTp_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "restake/orderguard/v1/tx.proto",
}
