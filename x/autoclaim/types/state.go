package types

import (
	"time"

	"cosmossdk.io/math"
)

// ExecutionData is per-(user, protocol) execution metadata. It is written
// only when a claim stage settles successfully; absence means the pair has
// never claimed.
type ExecutionData struct {
	LastAutoclaim time.Time `json:"last_autoclaim"`
}

// PendingKind tags the pending-operation payload union.
type PendingKind string

const (
	PendingKindClaimAndStake PendingKind = "claim_and_stake"
	PendingKindClaimOnly     PendingKind = "claim_only"
	PendingKindSettlement    PendingKind = "settlement"
)

// PendingClaimAndStake is the correlation payload for a dispatched claim in
// the claim-and-stake pipeline: everything the reply handler needs to compute
// the claimed amount and issue the follow-up stages.
type PendingClaimAndStake struct {
	User          string   `json:"user"`
	Protocol      string   `json:"protocol"`
	BalanceBefore math.Int `json:"balance_before"`
}

// PendingClaimOnly is the correlation payload for a dispatched claim-only
// withdraw.
type PendingClaimOnly struct {
	Protocol       string `json:"protocol"`
	User           string `json:"user"`
	MarketContract string `json:"market_contract"`
}

// PendingSettlement is the correlation payload for a dispatched stake or
// fee-send follow-up. Amount is the coin amount the operation moves; it only
// feeds events and logs, the settlement stages change no further state.
type PendingSettlement struct {
	User     string   `json:"user"`
	Protocol string   `json:"protocol"`
	Amount   math.Int `json:"amount"`
}

// PendingOperation is the tagged union stored in the pending-operation table,
// keyed by dispatch handle. A row is written once at dispatch time, read
// exactly once when the reply arrives, and deleted on consumption.
type PendingOperation struct {
	Kind          PendingKind           `json:"kind"`
	ClaimAndStake *PendingClaimAndStake `json:"claim_and_stake,omitempty"`
	ClaimOnly     *PendingClaimOnly     `json:"claim_only,omitempty"`
	Settlement    *PendingSettlement    `json:"settlement,omitempty"`
}

// SubscriptionRecord pairs a user with their ordered protocol subscriptions.
// Used in genesis and query listings.
type SubscriptionRecord struct {
	User      string   `json:"user"`
	Protocols []string `json:"protocols"`
}

// ExecutionRecord flattens ExecutionData for genesis and queries.
type ExecutionRecord struct {
	User          string    `json:"user"`
	Protocol      string    `json:"protocol"`
	LastAutoclaim time.Time `json:"last_autoclaim"`
}
