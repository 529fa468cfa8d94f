package types

import (
	sdkerrors "cosmossdk.io/errors"

	"github.com/restake-zone/restake/x/shared/handle"
)

// Stage identifies which pipeline stage produced a dispatch handle.
type Stage uint8

const (
	StagePlace Stage = iota + 1
	StageTrigger
)

// String returns the stage name used in logs and events.
func (s Stage) String() string {
	switch s {
	case StagePlace:
		return "place"
	case StageTrigger:
		return "trigger"
	}
	return "unknown"
}

// Dispatch-handle range bases. Handles are namespaced per module, so these
// only need to be disjoint among orderguard's own stages.
const (
	PlaceOrderBase = 1 * handle.RangeWidth
	TriggerBase    = 2 * handle.RangeWidth
)

// DecodedHandle is a reply handle decoded into its stage and in-range index.
type DecodedHandle struct {
	Stage Stage
	Index uint64
}

// DecodeHandle maps a raw reply handle to its stage and in-range index.
func DecodeHandle(h uint64) (DecodedHandle, error) {
	switch {
	case handle.InRange(h, PlaceOrderBase):
		return DecodedHandle{Stage: StagePlace, Index: handle.Index(h, PlaceOrderBase)}, nil
	case handle.InRange(h, TriggerBase):
		return DecodedHandle{Stage: StageTrigger, Index: handle.Index(h, TriggerBase)}, nil
	default:
		return DecodedHandle{}, sdkerrors.Wrapf(ErrInvalidReplyId, "handle %d outside every stage range", h)
	}
}
