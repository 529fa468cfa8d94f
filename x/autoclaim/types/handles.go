package types

import (
	sdkerrors "cosmossdk.io/errors"

	"github.com/restake-zone/restake/x/shared/handle"
)

// Stage identifies which pipeline stage produced a dispatch handle.
type Stage uint8

const (
	StageClaim Stage = iota + 1
	StageStake
	StageFeeSend
	StageClaimOnly
)

// String returns the stage name used in logs and events.
func (s Stage) String() string {
	switch s {
	case StageClaim:
		return "claim"
	case StageStake:
		return "stake"
	case StageFeeSend:
		return "fee_send"
	case StageClaimOnly:
		return "claim_only"
	}
	return "unknown"
}

// Dispatch-handle range bases. Each stage owns a disjoint range, so the
// numeric handle alone determines the stage of an incoming reply. Stake and
// fee-send handles reuse the index of the claim handle that spawned them, so
// the whole chain of a claim shares one index across ranges.
const (
	ClaimAndStakeClaimBase = 1 * handle.RangeWidth
	ClaimAndStakeStakeBase = 2 * handle.RangeWidth
	ClaimAndStakeSendBase  = 3 * handle.RangeWidth
	ClaimOnlyClaimBase     = 4 * handle.RangeWidth
)

// DecodedHandle is the result of the boundary decode step: the stage a reply
// belongs to and its index within the stage range.
type DecodedHandle struct {
	Stage Stage
	Index uint64
}

// DecodeHandle maps a raw reply handle to its stage and in-range index.
// Handles outside every known range indicate a reply this module never
// dispatched, which is a host invariant violation.
func DecodeHandle(h uint64) (DecodedHandle, error) {
	switch {
	case handle.InRange(h, ClaimAndStakeClaimBase):
		return DecodedHandle{Stage: StageClaim, Index: handle.Index(h, ClaimAndStakeClaimBase)}, nil
	case handle.InRange(h, ClaimAndStakeStakeBase):
		return DecodedHandle{Stage: StageStake, Index: handle.Index(h, ClaimAndStakeStakeBase)}, nil
	case handle.InRange(h, ClaimAndStakeSendBase):
		return DecodedHandle{Stage: StageFeeSend, Index: handle.Index(h, ClaimAndStakeSendBase)}, nil
	case handle.InRange(h, ClaimOnlyClaimBase):
		return DecodedHandle{Stage: StageClaimOnly, Index: handle.Index(h, ClaimOnlyClaimBase)}, nil
	default:
		return DecodedHandle{}, sdkerrors.Wrapf(ErrInvalidReplyId, "handle %d outside every stage range", h)
	}
}
