package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"

	testkeeper "github.com/restake-zone/restake/testutil/keeper"
	"github.com/restake-zone/restake/x/autoclaim/keeper"
	"github.com/restake-zone/restake/x/autoclaim/types"
)

// serviceRecorder captures service registrations the way the app's msg and
// query routers receive them.
type serviceRecorder struct {
	desc *grpc.ServiceDesc
	impl interface{}
}

func (r *serviceRecorder) RegisterService(desc *grpc.ServiceDesc, impl interface{}) {
	r.desc = desc
	r.impl = impl
}

func methodNames(desc *grpc.ServiceDesc) []string {
	names := make([]string, 0, len(desc.Methods))
	for _, m := range desc.Methods {
		names = append(names, m.MethodName)
	}
	return names
}

// invoke routes a message through the registered service descriptor, the same
// path a decoded tx takes after the router resolves its type URL.
func invoke(t *testing.T, rec *serviceRecorder, method string, ctx sdk.Context, msg interface{}) (interface{}, error) {
	t.Helper()
	for _, m := range rec.desc.Methods {
		if m.MethodName != method {
			continue
		}
		dec := func(v interface{}) error {
			switch dst := v.(type) {
			case *types.MsgSubscribe:
				*dst = *msg.(*types.MsgSubscribe)
			case *types.MsgUnsubscribe:
				*dst = *msg.(*types.MsgUnsubscribe)
			case *types.MsgClaimAndStake:
				*dst = *msg.(*types.MsgClaimAndStake)
			case *types.MsgClaimOnly:
				*dst = *msg.(*types.MsgClaimOnly)
			case *types.MsgUpdateConfig:
				*dst = *msg.(*types.MsgUpdateConfig)
			default:
				t.Fatalf("unexpected message type %T", v)
			}
			return nil
		}
		return m.Handler(rec.impl, ctx, dec, nil)
	}
	t.Fatalf("method %s not registered", method)
	return nil, nil
}

func TestRegisterMsgServerExposesAllMethods(t *testing.T) {
	k, _, _, _ := setupKeeper(t)

	rec := &serviceRecorder{}
	types.RegisterMsgServer(rec, keeper.NewMsgServerImpl(*k))

	require.NotNil(t, rec.desc)
	require.Equal(t, "restake.autoclaim.v1.Msg", rec.desc.ServiceName)
	require.ElementsMatch(t,
		[]string{"UpdateConfig", "ClaimAndStake", "ClaimOnly", "Subscribe", "Unsubscribe"},
		methodNames(rec.desc),
	)
}

func TestMsgServerSubscribeThroughServiceDesc(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)

	rec := &serviceRecorder{}
	types.RegisterMsgServer(rec, keeper.NewMsgServerImpl(*k))

	resp, err := invoke(t, rec, "Subscribe", ctx, &types.MsgSubscribe{
		Sender:    user,
		Protocols: []string{"mars"},
	})
	require.NoError(t, err)
	require.IsType(t, &types.MsgSubscribeResponse{}, resp)
	require.Equal(t, []string{"mars"}, k.GetSubscription(ctx, user))
}

func TestMsgServerRejectsInvalidMessage(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	_, err := srv.Subscribe(ctx, &types.MsgSubscribe{
		Sender:    "not-bech32",
		Protocols: []string{"mars"},
	})
	require.Error(t, err)
	require.Empty(t, k.GetSubscription(ctx, user))
}

func TestMsgServerUpdateConfig(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	cfg := testkeeper.ClaimAndStakeConfig("venus", math.LegacyZeroDec(), feeCollector, "contract-venus-claim", "contract-venus-stake", rewardDenom)
	_, err := srv.UpdateConfig(ctx, &types.MsgUpdateConfig{
		Sender:            owner,
		MaxParallelClaims: 7,
		ProtocolConfigs:   []types.ProtocolConfig{cfg},
	})
	require.NoError(t, err)
	require.Equal(t, uint32(7), k.GetParams(ctx).MaxParallelClaims)

	_, found := k.GetProtocolConfig(ctx, "venus")
	require.True(t, found)
}

func TestMsgServerClaimAndStake(t *testing.T) {
	k, ctx, host, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")
	srv := keeper.NewMsgServerImpl(*k)

	resp, err := srv.ClaimAndStake(ctx, &types.MsgClaimAndStake{
		Sender:         owner,
		UsersProtocols: []types.UserProtocols{{User: user, Protocols: []string{"mars"}}},
	})
	require.NoError(t, err)
	require.Equal(t, uint32(1), resp.DispatchedCount)
	require.Len(t, host.Dispatches, 1)
}

func TestMsgServerClaimOnly(t *testing.T) {
	k, ctx, host, _ := setupKeeper(t)
	srv := keeper.NewMsgServerImpl(*k)

	resp, err := srv.ClaimOnly(ctx, &types.MsgClaimOnly{
		Sender:         owner,
		Protocol:       "fin",
		UsersContracts: []types.UserContract{{User: user, Contract: "market-a"}},
	})
	require.NoError(t, err)
	require.Equal(t, uint32(1), resp.DispatchedCount)
	require.Len(t, host.Dispatches, 1)
}

func TestMsgServerUnsubscribe(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars", "luna")
	srv := keeper.NewMsgServerImpl(*k)

	_, err := srv.Unsubscribe(ctx, &types.MsgUnsubscribe{
		Sender:    user,
		Protocols: []string{"mars"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"luna"}, k.GetSubscription(ctx, user))
}
