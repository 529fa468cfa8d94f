package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/x/autoclaim/types"
	"github.com/restake-zone/restake/x/shared/handle"
)

func TestDecodeHandle(t *testing.T) {
	tests := []struct {
		handle uint64
		stage  types.Stage
		index  uint64
	}{
		{types.ClaimAndStakeClaimBase, types.StageClaim, 0},
		{types.ClaimAndStakeClaimBase + 41, types.StageClaim, 41},
		{types.ClaimAndStakeStakeBase + 41, types.StageStake, 41},
		{types.ClaimAndStakeSendBase + 41, types.StageFeeSend, 41},
		{types.ClaimOnlyClaimBase + 7, types.StageClaimOnly, 7},
		{types.ClaimOnlyClaimBase + handle.RangeWidth - 1, types.StageClaimOnly, handle.RangeWidth - 1},
	}
	for _, tc := range tests {
		decoded, err := types.DecodeHandle(tc.handle)
		require.NoError(t, err)
		require.Equal(t, tc.stage, decoded.Stage)
		require.Equal(t, tc.index, decoded.Index)
	}
}

func TestDecodeHandleOutOfRange(t *testing.T) {
	for _, h := range []uint64{0, 1, types.ClaimAndStakeClaimBase - 1, types.ClaimOnlyClaimBase + handle.RangeWidth} {
		_, err := types.DecodeHandle(h)
		require.ErrorIs(t, err, types.ErrInvalidReplyId, "handle %d", h)
	}
}

func TestStageString(t *testing.T) {
	require.Equal(t, "claim", types.StageClaim.String())
	require.Equal(t, "fee_send", types.StageFeeSend.String())
	require.Equal(t, "unknown", types.Stage(99).String())
}
