package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// GenesisState holds the full orderguard module state.
type GenesisState struct {
	Params  Params        `json:"params"`
	Markets []Market      `json:"markets"`
	Orders  []OrderRecord `json:"orders"`
}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return fmt.Sprintf("%v", *m) }
func (*GenesisState) ProtoMessage()    {}

// DefaultGenesis returns the default genesis state for the orderguard
// module. Like autoclaim, the owner must be set before the state validates.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Markets: []Market{},
		Orders:  []OrderRecord{},
	}
}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	known := make(map[string]bool, len(gs.Markets))
	for _, m := range gs.Markets {
		if m.Contract == "" {
			return fmt.Errorf("market contract cannot be empty")
		}
		if known[m.Contract] {
			return fmt.Errorf("duplicate market %q", m.Contract)
		}
		known[m.Contract] = true
		if err := m.Denoms.Validate(); err != nil {
			return fmt.Errorf("market %q: %w", m.Contract, err)
		}
	}

	for _, o := range gs.Orders {
		if _, err := sdk.AccAddressFromBech32(o.User); err != nil {
			return fmt.Errorf("invalid order user %q: %w", o.User, err)
		}
		if !known[o.Market] {
			return fmt.Errorf("order for %q references unknown market %q", o.User, o.Market)
		}
		if !o.Side.Valid() {
			return fmt.Errorf("order for %q has unknown side %q", o.User, o.Side)
		}
		if o.Price.IsNil() || !o.Price.IsPositive() {
			return fmt.Errorf("order for %q has non-positive price", o.User)
		}
		if err := o.Order.Validate(); err != nil {
			return fmt.Errorf("order for %q: %w", o.User, err)
		}
	}

	return nil
}
