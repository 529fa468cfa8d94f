package ante

import (
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

// MaxFutureBlockTime bounds how far ahead of wall clock a block timestamp may
// sit. Execution records and stop-loss/take-profit triggers are stamped with
// block time, so a proposer publishing future timestamps could make restake
// runs and trigger windows appear earlier than they happened.
const MaxFutureBlockTime = 30 * time.Second

// BlockTimeDecorator rejects transactions in blocks whose timestamp runs
// ahead of the node's clock by more than MaxFutureBlockTime. Past timestamps
// are never rejected here: nodes replaying history during catch-up see
// arbitrarily old block times.
type BlockTimeDecorator struct{}

func NewBlockTimeDecorator() BlockTimeDecorator {
	return BlockTimeDecorator{}
}

// AnteHandle implements sdk.AnteDecorator.
func (btd BlockTimeDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (sdk.Context, error) {
	if simulate || ctx.BlockHeight() <= 1 {
		return next(ctx, tx, simulate)
	}

	now := time.Now()
	if bt := ctx.BlockTime(); bt.After(now.Add(MaxFutureBlockTime)) {
		return ctx, sdkerrors.ErrInvalidRequest.Wrapf(
			"block time %s is too far in the future (max drift %s from %s)",
			bt, MaxFutureBlockTime, now,
		)
	}

	return next(ctx, tx, simulate)
}

// ValidateBlockTime checks a block timestamp against the previous block's
// timestamp and the local clock. Monotonicity can only be checked here, with
// the caller supplying the previous time; the decorator has no access to it.
func ValidateBlockTime(blockTime, prevBlockTime, currentTime time.Time) error {
	if blockTime.After(currentTime.Add(MaxFutureBlockTime)) {
		return fmt.Errorf(
			"block time %s is too far in the future (max drift %s from %s)",
			blockTime, MaxFutureBlockTime, currentTime,
		)
	}
	if !prevBlockTime.IsZero() && blockTime.Before(prevBlockTime) {
		return fmt.Errorf("block time %s is before previous block time %s", blockTime, prevBlockTime)
	}
	return nil
}

// HasTimeJump reports whether consecutive block times in the sample either go
// backwards or advance by more than threshold. Used by monitoring to flag
// proposers gaming trigger windows.
func HasTimeJump(blockTimes []time.Time, threshold time.Duration) bool {
	for i := 1; i < len(blockTimes); i++ {
		diff := blockTimes[i].Sub(blockTimes[i-1])
		if diff < 0 || diff > threshold {
			return true
		}
	}
	return false
}
