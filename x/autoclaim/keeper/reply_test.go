package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	testkeeper "github.com/restake-zone/restake/testutil/keeper"
	"github.com/restake-zone/restake/x/autoclaim/keeper"
	"github.com/restake-zone/restake/x/autoclaim/types"
)

// dispatchClaim runs a single-pair claim-and-stake batch and returns the
// claim handle.
func dispatchClaim(t *testing.T, k *keeper.Keeper, ctx sdk.Context, protocol string) uint64 {
	t.Helper()
	resp, err := k.ClaimAndStake(ctx, owner, []types.UserProtocols{
		{User: user, Protocols: []string{protocol}},
	})
	require.NoError(t, err)
	require.Equal(t, uint32(1), resp.DispatchedCount)
	return types.ClaimAndStakeClaimBase + uint64(0)
}

func TestReplyUnknownRangeIsFatal(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)

	err := k.HandleReply(ctx, types.Reply{Handle: 12345, Success: true})
	require.ErrorIs(t, err, types.ErrInvalidReplyId)
}

func TestReplyMissingPendingRowIsFatal(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)

	err := k.HandleReply(ctx, types.Reply{Handle: types.ClaimAndStakeClaimBase + 9, Success: true})
	require.ErrorIs(t, err, types.ErrInvalidReplyId)
}

func TestClaimReplySplitsFeeAndStake(t *testing.T) {
	k, ctx, host, bank := setupKeeper(t)
	ctx = ctx.WithBlockTime(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	subscribe(t, k, ctx, user, "luna")

	h := dispatchClaim(t, k, ctx, "luna")

	// the host settles the claim: 1000 ureward arrive
	bank.SetBalance(user, sdk.NewCoin(rewardDenom, math.NewInt(1000)))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: true}))

	// 5% fee: 50 to the collector, 950 staked
	require.Len(t, host.Dispatches, 3)

	stakeOp := host.Dispatches[1]
	require.Equal(t, types.ClaimAndStakeStakeBase, stakeOp.Handle)
	require.Equal(t, types.OperationExecContract, stakeOp.Op.Kind)
	require.Equal(t, "contract-luna-stake", stakeOp.Op.ExecContract.Contract)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin(rewardDenom, math.NewInt(950))), stakeOp.Op.ExecContract.Funds)

	sendOp := host.Dispatches[2]
	require.Equal(t, types.ClaimAndStakeSendBase, sendOp.Handle)
	require.Equal(t, types.OperationSend, sendOp.Op.Kind)
	require.Equal(t, feeCollector, sendOp.Op.Send.ToAddress)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin(rewardDenom, math.NewInt(50))), sendOp.Op.Send.Amount)

	data, found := k.GetExecutionData(ctx, user, "luna")
	require.True(t, found)
	require.Equal(t, ctx.BlockTime(), data.LastAutoclaim)
}

func TestClaimReplyZeroFeeSkipsFeeSend(t *testing.T) {
	k, ctx, host, bank := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")

	h := dispatchClaim(t, k, ctx, "mars")

	bank.SetBalance(user, sdk.NewCoin(rewardDenom, math.NewInt(1000)))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: true}))

	// only the stake follow-up, the full 1000
	require.Len(t, host.Dispatches, 2)
	stakeOp := host.Last()
	require.Equal(t, types.ClaimAndStakeStakeBase, stakeOp.Handle)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin(rewardDenom, math.NewInt(1000))), stakeOp.Op.ExecContract.Funds)
}

func TestClaimReplyConsumedExactlyOnce(t *testing.T) {
	k, ctx, _, bank := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")

	h := dispatchClaim(t, k, ctx, "mars")

	bank.SetBalance(user, sdk.NewCoin(rewardDenom, math.NewInt(10)))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: true}))

	err := k.HandleReply(ctx, types.Reply{Handle: h, Success: true})
	require.ErrorIs(t, err, types.ErrInvalidReplyId)
}

func TestClaimReplyFailureOnlyReports(t *testing.T) {
	k, ctx, host, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")

	h := dispatchClaim(t, k, ctx, "mars")

	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: false, Err: "contract panicked"}))

	// no follow-ups, no execution record
	require.Len(t, host.Dispatches, 1)
	_, found := k.GetExecutionData(ctx, user, "mars")
	require.False(t, found)

	// the row is gone regardless of outcome
	_, found = k.GetPendingOperation(ctx, h)
	require.False(t, found)
}

func TestClaimReplyNoRewards(t *testing.T) {
	k, ctx, _, _ := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")

	h := dispatchClaim(t, k, ctx, "mars")

	// balance never moved
	err := k.HandleReply(ctx, types.Reply{Handle: h, Success: true})
	require.ErrorIs(t, err, types.ErrNoRewards)
}

func TestMixedOutcomeBatch(t *testing.T) {
	k, ctx, host, bank := setupKeeper(t)
	ctx = ctx.WithBlockTime(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	subscribe(t, k, ctx, user, "mars", "luna")

	resp, err := k.ClaimAndStake(ctx, owner, []types.UserProtocols{
		{User: user, Protocols: []string{"mars", "luna"}},
	})
	require.NoError(t, err)
	require.Equal(t, uint32(2), resp.DispatchedCount)

	marsHandle := host.Dispatches[0].Handle
	lunaHandle := host.Dispatches[1].Handle

	// mars settles with 1000 claimed at 0% fee
	bank.SetBalance(user, sdk.NewCoin(rewardDenom, math.NewInt(1000)))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: marsHandle, Success: true}))

	// luna fails inside the claim contract
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: lunaHandle, Success: false, Err: "no distribution"}))

	// mars staked the full claim, no fee op
	require.Len(t, host.Dispatches, 3)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin(rewardDenom, math.NewInt(1000))), host.Last().Op.ExecContract.Funds)

	_, found := k.GetExecutionData(ctx, user, "mars")
	require.True(t, found)
	_, found = k.GetExecutionData(ctx, user, "luna")
	require.False(t, found)
}

func TestRepliesSettleInAnyOrder(t *testing.T) {
	k, ctx, host, bank := setupKeeper(t)
	subscribe(t, k, ctx, user, "mars")
	subscribe(t, k, ctx, otherUser, "mars")

	_, err := k.ClaimAndStake(ctx, owner, []types.UserProtocols{
		{User: user, Protocols: []string{"mars"}},
		{User: otherUser, Protocols: []string{"mars"}},
	})
	require.NoError(t, err)

	first := host.Dispatches[0].Handle
	second := host.Dispatches[1].Handle

	bank.SetBalance(user, sdk.NewCoin(rewardDenom, math.NewInt(100)))
	bank.SetBalance(otherUser, sdk.NewCoin(rewardDenom, math.NewInt(200)))

	// deliver in reverse dispatch order
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: second, Success: true}))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: first, Success: true}))

	_, found := k.GetExecutionData(ctx, user, "mars")
	require.True(t, found)
	_, found = k.GetExecutionData(ctx, otherUser, "mars")
	require.True(t, found)
}

func TestStakeAndFeeRepliesAreObservational(t *testing.T) {
	k, ctx, host, bank := setupKeeper(t)
	subscribe(t, k, ctx, user, "luna")

	h := dispatchClaim(t, k, ctx, "luna")
	bank.SetBalance(user, sdk.NewCoin(rewardDenom, math.NewInt(1000)))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: true}))

	stakeHandle := host.Dispatches[1].Handle
	sendHandle := host.Dispatches[2].Handle

	// a failed stake ends the pipeline without touching state
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: stakeHandle, Success: false, Err: "stake contract full"}))
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: sendHandle, Success: true}))

	// both rows consumed: redelivery is fatal
	require.ErrorIs(t, k.HandleReply(ctx, types.Reply{Handle: stakeHandle, Success: true}), types.ErrInvalidReplyId)
	require.ErrorIs(t, k.HandleReply(ctx, types.Reply{Handle: sendHandle, Success: true}), types.ErrInvalidReplyId)
}

func TestClaimOnlyReplySetsLastAutoclaim(t *testing.T) {
	k, ctx, host, _ := setupKeeper(t)
	ctx = ctx.WithBlockTime(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	_, err := k.ClaimOnly(ctx, owner, "fin", []types.UserContract{{User: user, Contract: "market-a"}})
	require.NoError(t, err)

	h := host.Last().Handle
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: true}))

	data, found := k.GetExecutionData(ctx, user, "fin")
	require.True(t, found)
	require.Equal(t, ctx.BlockTime(), data.LastAutoclaim)
}

func TestClaimOnlyReplyFailureLeavesNoRecord(t *testing.T) {
	k, ctx, host, _ := setupKeeper(t)

	_, err := k.ClaimOnly(ctx, owner, "fin", []types.UserContract{{User: user, Contract: "market-b"}})
	require.NoError(t, err)

	h := host.Last().Handle
	require.NoError(t, k.HandleReply(ctx, types.Reply{Handle: h, Success: false, Err: "withdraw failed"}))

	_, found := k.GetExecutionData(ctx, user, "fin")
	require.False(t, found)
}

// TestFeeSplitProperty drives the full claim settlement with random claim
// amounts and fee rates and checks the conservation invariant: the fee is
// the floored share and fee plus stake always reassemble the claimed amount.
func TestFeeSplitProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		claimed := rapid.Int64Range(1, 1_000_000_000_000).Draw(rt, "claimed")
		feeBps := rapid.Int64Range(0, 9_999).Draw(rt, "feeBps")

		k, ctx, host, bank := testkeeper.AutoclaimKeeper(t)
		feePct := math.LegacyNewDec(feeBps).QuoInt64(10_000)
		k.InitGenesis(ctx, types.GenesisState{
			Params: types.NewParams(owner, 5),
			ProtocolConfigs: []types.ProtocolConfig{
				testkeeper.ClaimAndStakeConfig("p", feePct, feeCollector, "claim-c", "stake-c", rewardDenom),
			},
		})
		require.NoError(t, k.Subscribe(ctx, user, []string{"p"}))

		_, err := k.ClaimAndStake(ctx, owner, []types.UserProtocols{
			{User: user, Protocols: []string{"p"}},
		})
		require.NoError(t, err)

		bank.SetBalance(user, sdk.NewCoin(rewardDenom, math.NewInt(claimed)))
		h := host.Dispatches[0].Handle
		err = k.HandleReply(ctx, types.Reply{Handle: h, Success: true})

		expectedFee := feePct.MulInt64(claimed).TruncateInt()
		expectedStake := math.NewInt(claimed).Sub(expectedFee)

		if !expectedStake.IsPositive() {
			require.ErrorIs(rt, err, types.ErrNoRewards)
			return
		}
		require.NoError(rt, err)

		var stake, fee math.Int
		fee = math.ZeroInt()
		for _, d := range host.Dispatches[1:] {
			switch {
			case d.Op.Kind == types.OperationExecContract:
				stake = d.Op.ExecContract.Funds.AmountOf(rewardDenom)
			case d.Op.Kind == types.OperationSend:
				fee = d.Op.Send.Amount.AmountOf(rewardDenom)
			}
		}

		require.Equal(rt, expectedFee.String(), fee.String())
		require.Equal(rt, expectedStake.String(), stake.String())
		require.Equal(rt, math.NewInt(claimed).String(), fee.Add(stake).String())
	})
}
