package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/restake-zone/restake/x/autoclaim/types"
)

func validConfig() types.ProtocolConfig {
	return types.ProtocolConfig{
		Protocol:      "mars",
		FeePercentage: math.LegacyNewDecWithPrec(5, 2),
		FeeAddress:    "restake1feeaddress",
		Strategy:      types.NewClaimAndStakeStrategy(types.ProviderDAODAO, "claim-contract", "stake-contract", "ureward"),
	}
}

func TestProtocolConfigValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*types.ProtocolConfig)
	}{
		{"empty protocol", func(pc *types.ProtocolConfig) { pc.Protocol = "" }},
		{"nil fee", func(pc *types.ProtocolConfig) { pc.FeePercentage = math.LegacyDec{} }},
		{"negative fee", func(pc *types.ProtocolConfig) { pc.FeePercentage = math.LegacyNewDec(-1) }},
		{"fee above one", func(pc *types.ProtocolConfig) { pc.FeePercentage = math.LegacyNewDec(2) }},
		{"empty fee address", func(pc *types.ProtocolConfig) { pc.FeeAddress = "" }},
		{"unknown provider", func(pc *types.ProtocolConfig) { pc.Strategy.ClaimAndStake.Provider = "UNKNOWN" }},
		{"empty claim contract", func(pc *types.ProtocolConfig) { pc.Strategy.ClaimAndStake.ClaimContract = "" }},
		{"bad reward denom", func(pc *types.ProtocolConfig) { pc.Strategy.ClaimAndStake.RewardDenom = "!" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pc := validConfig()
			tc.mutate(&pc)
			require.Error(t, pc.Validate())
		})
	}
}

func TestStrategyUnionIsClosed(t *testing.T) {
	// unknown tag
	require.ErrorIs(t, types.Strategy{Type: "margin_trade"}.Validate(), types.ErrInvalidStrategy)

	// tag without its variant
	require.ErrorIs(t, types.Strategy{Type: types.StrategyClaimAndStake}.Validate(), types.ErrInvalidStrategy)

	// both variants populated at once
	s := types.NewClaimAndStakeStrategy(types.ProviderCWRewards, "c", "s", "udenom")
	s.ClaimOnlyFIN = &types.ClaimOnlyFINStrategy{SupportedMarkets: []string{"m"}}
	require.ErrorIs(t, s.Validate(), types.ErrInvalidStrategy)

	// claim-only needs at least one market
	require.ErrorIs(t, types.NewClaimOnlyFINStrategy(nil).Validate(), types.ErrInvalidStrategy)
	require.NoError(t, types.NewClaimOnlyFINStrategy([]string{"market-a"}).Validate())
}

func TestClaimOnlyFINSupports(t *testing.T) {
	s := types.ClaimOnlyFINStrategy{SupportedMarkets: []string{"market-a", "market-b"}}
	require.True(t, s.Supports("market-a"))
	require.False(t, s.Supports("market-c"))
}
