package types

import (
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState holds the full autoclaim module state.
type GenesisState struct {
	Params           Params               `json:"params"`
	ProtocolConfigs  []ProtocolConfig     `json:"protocol_configs"`
	Subscriptions    []SubscriptionRecord `json:"subscriptions"`
	ExecutionRecords []ExecutionRecord    `json:"execution_records"`
}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return fmt.Sprintf("%v", *m) }
func (*GenesisState) ProtoMessage()    {}

// NewGenesisState creates a new genesis state for the autoclaim module.
func NewGenesisState(params Params, configs []ProtocolConfig, subs []SubscriptionRecord, records []ExecutionRecord) *GenesisState {
	return &GenesisState{
		Params:           params,
		ProtocolConfigs:  configs,
		Subscriptions:    subs,
		ExecutionRecords: records,
	}
}

// DefaultGenesis returns the default genesis state for the autoclaim module.
// The owner is intentionally left empty: a chain must set it explicitly, and
// Validate rejects a genesis without one.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:           Params{MaxParallelClaims: DefaultMaxParallelClaims},
		ProtocolConfigs:  []ProtocolConfig{},
		Subscriptions:    []SubscriptionRecord{},
		ExecutionRecords: []ExecutionRecord{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	known := make(map[string]bool, len(gs.ProtocolConfigs))
	for _, pc := range gs.ProtocolConfigs {
		if strings.TrimSpace(pc.Protocol) == "" {
			return fmt.Errorf("protocol id cannot be empty")
		}
		if known[pc.Protocol] {
			return fmt.Errorf("duplicate protocol config for %q", pc.Protocol)
		}
		known[pc.Protocol] = true
		if err := pc.Validate(); err != nil {
			return fmt.Errorf("protocol %q: %w", pc.Protocol, err)
		}
	}

	seenUsers := make(map[string]bool, len(gs.Subscriptions))
	for _, sub := range gs.Subscriptions {
		if _, err := sdk.AccAddressFromBech32(sub.User); err != nil {
			return fmt.Errorf("invalid subscription user %q: %w", sub.User, err)
		}
		if seenUsers[sub.User] {
			return fmt.Errorf("duplicate subscription record for %q", sub.User)
		}
		seenUsers[sub.User] = true
		seenProtos := make(map[string]bool, len(sub.Protocols))
		for _, p := range sub.Protocols {
			if !known[p] {
				return fmt.Errorf("subscription for %q references unknown protocol %q", sub.User, p)
			}
			if seenProtos[p] {
				return fmt.Errorf("subscription for %q lists protocol %q twice", sub.User, p)
			}
			seenProtos[p] = true
		}
	}

	for _, rec := range gs.ExecutionRecords {
		if _, err := sdk.AccAddressFromBech32(rec.User); err != nil {
			return fmt.Errorf("invalid execution record user %q: %w", rec.User, err)
		}
		if !known[rec.Protocol] {
			return fmt.Errorf("execution record for %q references unknown protocol %q", rec.User, rec.Protocol)
		}
	}

	return nil
}
