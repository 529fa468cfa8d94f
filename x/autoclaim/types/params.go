package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultMaxParallelClaims caps the (user, protocol) pairs processed in a
// single claim batch.
const DefaultMaxParallelClaims = uint32(20)

// Params is the global module configuration. Ownership is fixed at genesis
// and only changed by the current owner; an empty owner is never a valid
// stored state.
type Params struct {
	Owner             string `json:"owner"`
	MaxParallelClaims uint32 `json:"max_parallel_claims"`
}

// NewParams creates module params.
func NewParams(owner string, maxParallelClaims uint32) Params {
	return Params{
		Owner:             owner,
		MaxParallelClaims: maxParallelClaims,
	}
}

// Validate checks the params are well-formed.
func (p Params) Validate() error {
	if p.Owner == "" {
		return ErrNoOwner
	}
	if _, err := sdk.AccAddressFromBech32(p.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	if p.MaxParallelClaims == 0 {
		return fmt.Errorf("max parallel claims must be positive")
	}
	return nil
}
