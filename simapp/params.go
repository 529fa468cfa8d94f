package simapp

import (
	"math/rand"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/types/simulation"
)

// Simulation parameter constants
const (
	// Staking parameters
	StakePerAccount           = "stake_per_account"
	InitiallyBondedValidators = "initially_bonded_validators"

	// Bank parameters
	InitialAccountBalance = "initial_account_balance"

	// Autoclaim parameters
	InitialProtocolCount = "initial_protocol_count"
	SubscriptionProb     = "subscription_probability"
	ClaimBatchProb       = "claim_batch_probability"
	MaxFeePercentage     = "max_fee_percentage"

	// Orderguard parameters
	InitialMarketCount = "initial_market_count"
	PlaceOrderProb     = "place_order_probability"
	TriggerProb        = "trigger_probability"
)

// SimulationParams defines the parameters for the simulation
type SimulationParams struct {
	// Account parameters
	StakePerAccount       math.Int
	InitialAccountBalance math.Int

	// Staking parameters
	InitiallyBondedValidators int

	// Autoclaim parameters
	InitialProtocolCount int
	SubscriptionProb     math.LegacyDec
	ClaimBatchProb       math.LegacyDec
	MaxFeePercentage     math.LegacyDec

	// Orderguard parameters
	InitialMarketCount int
	PlaceOrderProb     math.LegacyDec
	TriggerProb        math.LegacyDec
}

// DefaultSimulationParams returns default simulation parameters
func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		StakePerAccount:           math.NewInt(100000000000),  // 100k tokens
		InitialAccountBalance:     math.NewInt(1000000000000), // 1M tokens
		InitiallyBondedValidators: 50,
		InitialProtocolCount:      5,
		SubscriptionProb:          math.LegacyNewDecWithPrec(30, 2), // 30%
		ClaimBatchProb:            math.LegacyNewDecWithPrec(20, 2), // 20%
		MaxFeePercentage:          math.LegacyNewDecWithPrec(10, 2), // 10%
		InitialMarketCount:        3,
		PlaceOrderProb:            math.LegacyNewDecWithPrec(15, 2), // 15%
		TriggerProb:               math.LegacyNewDecWithPrec(5, 2),  // 5%
	}
}

// RandomizedParams creates randomized simulation parameters
func RandomizedParams(r *rand.Rand) SimulationParams {
	return SimulationParams{
		StakePerAccount:           simulation.RandomAmount(r, math.NewInt(1000000000000)),
		InitialAccountBalance:     simulation.RandomAmount(r, math.NewInt(10000000000000)),
		InitiallyBondedValidators: simulation.RandIntBetween(r, 10, 100),
		InitialProtocolCount:      simulation.RandIntBetween(r, 1, 10),
		SubscriptionProb:          simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(50, 2)),
		ClaimBatchProb:            simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(40, 2)),
		MaxFeePercentage:          simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(25, 2)),
		InitialMarketCount:        simulation.RandIntBetween(r, 1, 6),
		PlaceOrderProb:            simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(30, 2)),
		TriggerProb:               simulation.RandomDecAmount(r, math.LegacyNewDecWithPrec(20, 2)),
	}
}

// ParamChanges intentionally returns no legacy param changes because Cosmos SDK v0.50
// removed ParamChange proposals in favor of MsgUpdateParams governance flow.
// Simulations that need parameter mutations should craft MsgUpdateParams transactions
// through module-specific simulation packages instead of legacy param changes.
func ParamChanges(_ *rand.Rand) []simulation.LegacyParamChange {
	return []simulation.LegacyParamChange{}
}

// RandomAccounts creates random accounts for simulation
func RandomAccounts(r *rand.Rand, n int) []simulation.Account {
	// Use the SDK's RandomAccounts function instead
	return simulation.RandomAccounts(r, n)
}

// WeightedOperations returns the default weighted operations for simulation.
// This shim exists for backward compatibility; callers should prefer the app's
// SimulationManager().WeightedOperations(simState).
func WeightedOperations() []simulation.WeightedOperation {
	return []simulation.WeightedOperation{}
}
