package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// StakingProvider identifies the family of claim/stake contracts a
// claim-and-stake protocol runs on. The provider determines the payload of
// the claim instruction dispatched to the claim contract.
type StakingProvider string

const (
	ProviderDAODAO    StakingProvider = "DAO_DAO"
	ProviderCWRewards StakingProvider = "CW_REWARDS"
)

// Valid reports whether the provider is a known variant.
func (p StakingProvider) Valid() bool {
	switch p {
	case ProviderDAODAO, ProviderCWRewards:
		return true
	}
	return false
}

// StrategyType tags the strategy union variant.
type StrategyType string

const (
	// StrategyClaimAndStake is the two/three-hop chain: claim the user's
	// rewards, stake them, and send the fee portion to the fee address.
	StrategyClaimAndStake StrategyType = "claim_and_stake"

	// StrategyClaimOnlyFIN is the single-hop chain: withdraw filled orders
	// on a whitelisted FIN market, nothing else.
	StrategyClaimOnlyFIN StrategyType = "claim_only_fin"
)

// ClaimAndStakeStrategy configures the claim -> stake [-> fee send] pipeline.
type ClaimAndStakeStrategy struct {
	Provider      StakingProvider `json:"provider"`
	ClaimContract string          `json:"claim_contract"`
	StakeContract string          `json:"stake_contract"`
	RewardDenom   string          `json:"reward_denom"`
}

// ClaimOnlyFINStrategy configures the claim-only pipeline, scoped to a
// whitelist of market contracts.
type ClaimOnlyFINStrategy struct {
	SupportedMarkets []string `json:"supported_markets"`
}

// Supports reports whether the market contract is whitelisted.
func (s ClaimOnlyFINStrategy) Supports(market string) bool {
	for _, m := range s.SupportedMarkets {
		if m == market {
			return true
		}
	}
	return false
}

// Strategy is the closed tagged union of protocol execution strategies.
// Exactly one variant pointer is set, selected by Type.
type Strategy struct {
	Type          StrategyType           `json:"type"`
	ClaimAndStake *ClaimAndStakeStrategy `json:"claim_and_stake,omitempty"`
	ClaimOnlyFIN  *ClaimOnlyFINStrategy  `json:"claim_only_fin,omitempty"`
}

// NewClaimAndStakeStrategy builds a claim-and-stake strategy.
func NewClaimAndStakeStrategy(provider StakingProvider, claimContract, stakeContract, rewardDenom string) Strategy {
	return Strategy{
		Type: StrategyClaimAndStake,
		ClaimAndStake: &ClaimAndStakeStrategy{
			Provider:      provider,
			ClaimContract: claimContract,
			StakeContract: stakeContract,
			RewardDenom:   rewardDenom,
		},
	}
}

// NewClaimOnlyFINStrategy builds a claim-only strategy for the given markets.
func NewClaimOnlyFINStrategy(markets []string) Strategy {
	return Strategy{
		Type:         StrategyClaimOnlyFIN,
		ClaimOnlyFIN: &ClaimOnlyFINStrategy{SupportedMarkets: markets},
	}
}

// String returns the strategy tag.
func (s Strategy) String() string {
	return string(s.Type)
}

// Validate checks the union is well-formed: a known tag with exactly the
// matching variant populated.
func (s Strategy) Validate() error {
	switch s.Type {
	case StrategyClaimAndStake:
		if s.ClaimAndStake == nil || s.ClaimOnlyFIN != nil {
			return sdkerrors.Wrap(ErrInvalidStrategy, "claim_and_stake variant not populated")
		}
		cs := s.ClaimAndStake
		if !cs.Provider.Valid() {
			return sdkerrors.Wrapf(ErrInvalidStrategy, "unknown staking provider %q", cs.Provider)
		}
		if cs.ClaimContract == "" || cs.StakeContract == "" {
			return sdkerrors.Wrap(ErrInvalidStrategy, "claim and stake contract addresses cannot be empty")
		}
		if err := sdk.ValidateDenom(cs.RewardDenom); err != nil {
			return sdkerrors.Wrapf(ErrInvalidStrategy, "invalid reward denom: %s", err)
		}
		return nil
	case StrategyClaimOnlyFIN:
		if s.ClaimOnlyFIN == nil || s.ClaimAndStake != nil {
			return sdkerrors.Wrap(ErrInvalidStrategy, "claim_only_fin variant not populated")
		}
		if len(s.ClaimOnlyFIN.SupportedMarkets) == 0 {
			return sdkerrors.Wrap(ErrInvalidStrategy, "supported markets cannot be empty")
		}
		return nil
	default:
		return sdkerrors.Wrapf(ErrInvalidStrategy, "unknown strategy type %q", s.Type)
	}
}

// ProtocolConfig is a protocol registry entry: identity, fee terms, and
// execution strategy. Cross-field consistency beyond Validate is not
// enforced; an unreachable fee address surfaces later as a failed fee-send.
type ProtocolConfig struct {
	Protocol      string         `json:"protocol"`
	FeePercentage math.LegacyDec `json:"fee_percentage"`
	FeeAddress    string         `json:"fee_address"`
	Strategy      Strategy       `json:"strategy"`
}

// Validate checks the registry entry is storable.
func (pc ProtocolConfig) Validate() error {
	if pc.Protocol == "" {
		return fmt.Errorf("protocol id cannot be empty")
	}
	if pc.FeePercentage.IsNil() || pc.FeePercentage.IsNegative() || pc.FeePercentage.GT(math.LegacyOneDec()) {
		return fmt.Errorf("fee percentage must be in [0,1]")
	}
	if pc.FeeAddress == "" {
		return fmt.Errorf("fee address cannot be empty")
	}
	return pc.Strategy.Validate()
}
