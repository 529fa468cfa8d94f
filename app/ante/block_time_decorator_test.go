package ante_test

import (
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/app/ante"
)

func TestBlockTimeDecorator(t *testing.T) {
	chain := sdk.ChainAnteDecorators(ante.NewBlockTimeDecorator())

	// far-future block time is rejected
	ctx := sdk.Context{}.WithBlockHeight(10).WithBlockTime(time.Now().Add(5 * time.Minute))
	_, err := chain(ctx, nil, false)
	require.ErrorContains(t, err, "too far in the future")

	// same block passes under simulation
	_, err = chain(ctx, nil, true)
	require.NoError(t, err)

	// genesis block is exempt
	_, err = chain(sdk.Context{}.WithBlockHeight(1).WithBlockTime(time.Now().Add(5*time.Minute)), nil, false)
	require.NoError(t, err)

	// historical block times pass, catch-up replays old blocks
	_, err = chain(sdk.Context{}.WithBlockHeight(10).WithBlockTime(time.Now().Add(-24*time.Hour)), nil, false)
	require.NoError(t, err)
}

func TestValidateBlockTime(t *testing.T) {
	now := time.Now()
	prev := now.Add(-10 * time.Second)

	tests := []struct {
		name          string
		blockTime     time.Time
		prevBlockTime time.Time
		errorContains string
	}{
		{"current time", now, prev, ""},
		{"equal to previous", prev, prev, ""},
		{"no previous time", now, time.Time{}, ""},
		{"at future limit", now.Add(ante.MaxFutureBlockTime), prev, ""},
		{"past future limit", now.Add(ante.MaxFutureBlockTime + time.Second), prev, "too far in the future"},
		{"before previous", prev.Add(-time.Second), prev, "before previous block time"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ante.ValidateBlockTime(tc.blockTime, tc.prevBlockTime, now)
			if tc.errorContains == "" {
				require.NoError(t, err)
			} else {
				require.ErrorContains(t, err, tc.errorContains)
			}
		})
	}
}

func TestHasTimeJump(t *testing.T) {
	base := time.Now()
	threshold := time.Minute

	steady := []time.Time{base, base.Add(5 * time.Second), base.Add(10 * time.Second)}
	require.False(t, ante.HasTimeJump(steady, threshold))

	jump := []time.Time{base, base.Add(5 * time.Second), base.Add(10 * time.Minute)}
	require.True(t, ante.HasTimeJump(jump, threshold))

	backwards := []time.Time{base, base.Add(10 * time.Second), base.Add(5 * time.Second)}
	require.True(t, ante.HasTimeJump(backwards, threshold))

	require.False(t, ante.HasTimeJump([]time.Time{base}, threshold))
	require.False(t, ante.HasTimeJump(nil, threshold))

	// exactly at threshold is tolerated
	require.False(t, ante.HasTimeJump([]time.Time{base, base.Add(threshold)}, threshold))
}
