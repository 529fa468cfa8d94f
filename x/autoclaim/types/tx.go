package types

import (
	"context"
	"fmt"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	"google.golang.org/grpc"
)

// MsgServer is the server API for the autoclaim Msg service.
type MsgServer interface {
	// UpdateConfig overwrites global configuration and upserts protocol
	// registry entries. Owner-only.
	UpdateConfig(context.Context, *MsgUpdateConfig) (*MsgUpdateConfigResponse, error)
	// ClaimAndStake starts the claim/stake/fee pipeline for a batch of
	// users. Owner-only.
	ClaimAndStake(context.Context, *MsgClaimAndStake) (*MsgClaimAndStakeResponse, error)
	// ClaimOnly starts withdraw-only claims against one protocol's market
	// contracts. Owner-only.
	ClaimOnly(context.Context, *MsgClaimOnly) (*MsgClaimOnlyResponse, error)
	// Subscribe authorizes automated claiming for the sender.
	Subscribe(context.Context, *MsgSubscribe) (*MsgSubscribeResponse, error)
	// Unsubscribe revokes automated claiming for the sender.
	Unsubscribe(context.Context, *MsgUnsubscribe) (*MsgUnsubscribeResponse, error)
}

// MsgUpdateConfigResponse is the response for MsgUpdateConfig.
type MsgUpdateConfigResponse struct{}

func (m *MsgUpdateConfigResponse) Reset()         { *m = MsgUpdateConfigResponse{} }
func (m *MsgUpdateConfigResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUpdateConfigResponse) ProtoMessage()    {}

// MsgClaimAndStakeResponse reports how many claims were dispatched and which
// (user, protocol) pairs were skipped.
type MsgClaimAndStakeResponse struct {
	DispatchedCount uint32   `json:"dispatched_count"`
	IgnoredCount    uint32   `json:"ignored_count"`
	IgnoredPairs    []string `json:"ignored_pairs,omitempty"`
}

func (m *MsgClaimAndStakeResponse) Reset()         { *m = MsgClaimAndStakeResponse{} }
func (m *MsgClaimAndStakeResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimAndStakeResponse) ProtoMessage()    {}

// MsgClaimOnlyResponse reports how many withdraws were dispatched and which
// (user, contract) pairs were skipped.
type MsgClaimOnlyResponse struct {
	DispatchedCount uint32   `json:"dispatched_count"`
	IgnoredCount    uint32   `json:"ignored_count"`
	IgnoredMarkets  []string `json:"ignored_markets,omitempty"`
}

func (m *MsgClaimOnlyResponse) Reset()         { *m = MsgClaimOnlyResponse{} }
func (m *MsgClaimOnlyResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimOnlyResponse) ProtoMessage()    {}

// MsgSubscribeResponse is the response for MsgSubscribe.
type MsgSubscribeResponse struct{}

func (m *MsgSubscribeResponse) Reset()         { *m = MsgSubscribeResponse{} }
func (m *MsgSubscribeResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSubscribeResponse) ProtoMessage()    {}

// MsgUnsubscribeResponse is the response for MsgUnsubscribe.
type MsgUnsubscribeResponse struct{}

func (m *MsgUnsubscribeResponse) Reset()         { *m = MsgUnsubscribeResponse{} }
func (m *MsgUnsubscribeResponse) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUnsubscribeResponse) ProtoMessage()    {}

// RegisterMsgServer registers the Msg service implementation with the
// provided registrar (the app's msg service router).
func RegisterMsgServer(s grpc1.Server, srv MsgServer) {
	s.RegisterService(&_Msg_serviceDesc, srv)
}

func _Msg_UpdateConfig_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUpdateConfig)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).UpdateConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Msg/UpdateConfig",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).UpdateConfig(ctx, req.(*MsgUpdateConfig))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_ClaimAndStake_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgClaimAndStake)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).ClaimAndStake(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Msg/ClaimAndStake",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).ClaimAndStake(ctx, req.(*MsgClaimAndStake))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_ClaimOnly_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgClaimOnly)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).ClaimOnly(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Msg/ClaimOnly",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).ClaimOnly(ctx, req.(*MsgClaimOnly))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Subscribe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgSubscribe)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Subscribe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Msg/Subscribe",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Subscribe(ctx, req.(*MsgSubscribe))
	}
	return interceptor(ctx, in, info, handler)
}

func _Msg_Unsubscribe_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(MsgUnsubscribe)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MsgServer).Unsubscribe(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/restake.autoclaim.v1.Msg/Unsubscribe",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MsgServer).Unsubscribe(ctx, req.(*MsgUnsubscribe))
	}
	return interceptor(ctx, in, info, handler)
}

var _Msg_serviceDesc = grpc.ServiceDesc{
	ServiceName: "restake.autoclaim.v1.Msg",
	HandlerType: (*MsgServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "UpdateConfig",
			Handler:    _Msg_UpdateConfig_Handler,
		},
		{
			MethodName: "ClaimAndStake",
			Handler:    _Msg_ClaimAndStake_Handler,
		},
		{
			MethodName: "ClaimOnly",
			Handler:    _Msg_ClaimOnly_Handler,
		},
		{
			MethodName: "Subscribe",
			Handler:    _Msg_Subscribe_Handler,
		},
		{
			MethodName: "Unsubscribe",
			Handler:    _Msg_Unsubscribe_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "restake/autoclaim/v1/tx.proto",
}
