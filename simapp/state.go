package simapp

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	simtypes "github.com/cosmos/cosmos-sdk/types/simulation"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"

	"github.com/restake-zone/restake/app"
	autoclaimtypes "github.com/restake-zone/restake/x/autoclaim/types"
	orderguardtypes "github.com/restake-zone/restake/x/orderguard/types"
)

// AppStateFn returns the initial application state using a genesis or the simulation parameters
func AppStateFn(
	cdc codec.JSONCodec,
	simManager *module.SimulationManager,
	genesisState map[string]json.RawMessage,
) simtypes.AppStateFn {
	return func(
		r *rand.Rand,
		accs []simtypes.Account,
		config simtypes.Config,
	) (json.RawMessage, []simtypes.Account, string, time.Time) {
		// Randomize initial parameters
		var (
			numAccs            = 100
			numInitiallyBonded = 50
			initialStake       = math.NewInt(100000000000)
		)

		if len(accs) == 0 {
			accs = simtypes.RandomAccounts(r, numAccs)
		}

		// Generate random genesis time
		startTime := simtypes.RandTimestamp(r)

		// Generate randomized genesis state on top of the defaults
		appParams := make(simtypes.AppParams)

		if genesisState == nil {
			genesisState = app.NewDefaultGenesisState(config.ChainID)
		}
		appState := make(map[string]json.RawMessage, len(genesisState))
		for mod, raw := range genesisState {
			appState[mod] = raw
		}

		// Auth genesis
		authGenesis := RandomizedAuthGenesisState(r, accs)
		appState[authtypes.ModuleName] = cdc.MustMarshalJSON(&authGenesis)

		// Bank genesis
		bankGenesis := RandomizedBankGenesisState(r, accs)
		appState[banktypes.ModuleName] = cdc.MustMarshalJSON(&bankGenesis)

		// Staking genesis
		stakingGenesis := RandomizedStakingGenesisState(r, accs, initialStake, numAccs, numInitiallyBonded)
		appState[stakingtypes.ModuleName] = cdc.MustMarshalJSON(&stakingGenesis)

		// Autoclaim and orderguard store plain JSON state, so marshal with
		// encoding/json rather than the proto codec.
		autoclaimGenesis := RandomizedAutoclaimGenesisState(r, accs)
		appState[autoclaimtypes.ModuleName] = mustJSON(&autoclaimGenesis)

		orderguardGenesis := RandomizedOrderguardGenesisState(r, accs)
		appState[orderguardtypes.ModuleName] = mustJSON(&orderguardGenesis)

		// Use simulation manager to randomize all other genesis states
		simState := &module.SimulationState{
			AppParams: appParams,
			Cdc:       cdc,
			Rand:      r,
			Accounts:  accs,
			GenState:  appState,
		}
		simManager.GenerateGenesisStates(simState)

		appStateJSON, err := json.MarshalIndent(appState, "", "  ")
		if err != nil {
			panic(err)
		}

		return appStateJSON, accs, config.ChainID, startTime
	}
}

func mustJSON(v interface{}) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

// RandomizedAuthGenesisState generates a random auth genesis state
func RandomizedAuthGenesisState(r *rand.Rand, accs []simtypes.Account) authtypes.GenesisState {
	accountNumber := uint64(0)

	genesisAccounts := make([]authtypes.GenesisAccount, len(accs))
	for i, acc := range accs {
		bacc := authtypes.NewBaseAccountWithAddress(acc.Address)
		bacc.AccountNumber = accountNumber
		accountNumber++

		genesisAccounts[i] = bacc
	}

	authGenesis := authtypes.NewGenesisState(
		authtypes.DefaultParams(),
		genesisAccounts,
	)

	return *authGenesis
}

// RandomizedBankGenesisState generates a random bank genesis state
func RandomizedBankGenesisState(r *rand.Rand, accs []simtypes.Account) banktypes.GenesisState {
	// Create initial balances
	balances := make([]banktypes.Balance, len(accs))
	totalSupply := sdk.NewCoins()

	for i, acc := range accs {
		// Random balance between 1M and 10M urstk
		balance := simtypes.RandIntBetween(r, 1000000, 10000000)
		coins := sdk.NewCoins(sdk.NewInt64Coin(app.BondDenom, int64(balance)))

		balances[i] = banktypes.Balance{
			Address: acc.Address.String(),
			Coins:   coins,
		}

		totalSupply = totalSupply.Add(coins...)
	}

	// Reward denom balances so claim flows have something to move
	for i := range accs {
		rewardBalance := simtypes.RandIntBetween(r, 100000, 1000000)
		rewardCoins := sdk.NewCoins(sdk.NewInt64Coin("ureward", int64(rewardBalance)))

		balances[i].Coins = balances[i].Coins.Add(rewardCoins...)
		totalSupply = totalSupply.Add(rewardCoins...)
	}

	bankGenesis := banktypes.NewGenesisState(
		banktypes.DefaultParams(),
		balances,
		totalSupply,
		[]banktypes.Metadata{
			{
				Description: "The native token of the restake chain",
				DenomUnits: []*banktypes.DenomUnit{
					{Denom: "urstk", Exponent: uint32(0), Aliases: []string{"microrstk"}},
					{Denom: "RSTK", Exponent: uint32(6), Aliases: []string{}},
				},
				Base:    "urstk",
				Display: "RSTK",
				Name:    "Restake",
				Symbol:  "RSTK",
			},
		},
		[]banktypes.SendEnabled{},
	)

	return *bankGenesis
}

// RandomizedStakingGenesisState generates a random staking genesis state
func RandomizedStakingGenesisState(
	r *rand.Rand,
	accs []simtypes.Account,
	initialStake math.Int,
	numAccs, numInitiallyBonded int,
) stakingtypes.GenesisState {
	// Create validators from first N accounts
	validators := make([]stakingtypes.Validator, numInitiallyBonded)
	delegations := make([]stakingtypes.Delegation, numInitiallyBonded)

	for i := 0; i < numInitiallyBonded && i < len(accs); i++ {
		pubKeyAny, err := codectypes.NewAnyWithValue(accs[i].ConsKey.PubKey())
		if err != nil {
			panic(err)
		}

		val := stakingtypes.Validator{
			OperatorAddress:   sdk.ValAddress(accs[i].Address).String(),
			ConsensusPubkey:   pubKeyAny,
			Jailed:            false,
			Status:            stakingtypes.Bonded,
			Tokens:            initialStake,
			DelegatorShares:   math.LegacyNewDecFromInt(initialStake),
			Description:       stakingtypes.Description{Moniker: fmt.Sprintf("validator-%d", i)},
			UnbondingHeight:   int64(0),
			UnbondingTime:     time.Unix(0, 0).UTC(),
			Commission:        stakingtypes.NewCommission(math.LegacyZeroDec(), math.LegacyZeroDec(), math.LegacyZeroDec()),
			MinSelfDelegation: math.OneInt(),
		}

		validators[i] = val

		delegations[i] = stakingtypes.Delegation{
			DelegatorAddress: accs[i].Address.String(),
			ValidatorAddress: sdk.ValAddress(accs[i].Address).String(),
			Shares:           math.LegacyNewDecFromInt(initialStake),
		}
	}

	stakingGenesis := stakingtypes.NewGenesisState(
		stakingtypes.DefaultParams(),
		validators,
		delegations,
	)

	return *stakingGenesis
}

// RandomizedAutoclaimGenesisState generates a random autoclaim genesis state:
// a registry of claim-and-stake protocols and a random subset of subscribers.
func RandomizedAutoclaimGenesisState(r *rand.Rand, accs []simtypes.Account) autoclaimtypes.GenesisState {
	owner, _ := simtypes.RandomAcc(r, accs)

	numProtocols := simtypes.RandIntBetween(r, 1, 8)
	configs := make([]autoclaimtypes.ProtocolConfig, numProtocols)
	names := make([]string, numProtocols)
	for i := 0; i < numProtocols; i++ {
		name := fmt.Sprintf("protocol-%d", i)
		names[i] = name
		feeAcc, _ := simtypes.RandomAcc(r, accs)
		configs[i] = autoclaimtypes.ProtocolConfig{
			Protocol:      name,
			FeePercentage: simtypes.RandomDecAmount(r, math.LegacyNewDecWithPrec(25, 2)),
			FeeAddress:    feeAcc.Address.String(),
			Strategy: autoclaimtypes.NewClaimAndStakeStrategy(
				autoclaimtypes.ProviderDAODAO,
				fmt.Sprintf("contract-%d-claim", i),
				fmt.Sprintf("contract-%d-stake", i),
				"ureward",
			),
		}
	}

	var subs []autoclaimtypes.SubscriptionRecord
	for _, acc := range accs {
		if r.Intn(100) >= 30 {
			continue
		}
		protocol := names[r.Intn(numProtocols)]
		subs = append(subs, autoclaimtypes.SubscriptionRecord{
			User:      acc.Address.String(),
			Protocols: []string{protocol},
		})
	}

	return autoclaimtypes.GenesisState{
		Params:           autoclaimtypes.NewParams(owner.Address.String(), autoclaimtypes.DefaultMaxParallelClaims),
		ProtocolConfigs:  configs,
		Subscriptions:    subs,
		ExecutionRecords: []autoclaimtypes.ExecutionRecord{},
	}
}

// RandomizedOrderguardGenesisState generates a random orderguard genesis
// state with a handful of guarded markets.
func RandomizedOrderguardGenesisState(r *rand.Rand, accs []simtypes.Account) orderguardtypes.GenesisState {
	owner, _ := simtypes.RandomAcc(r, accs)

	numMarkets := simtypes.RandIntBetween(r, 1, 5)
	markets := make([]orderguardtypes.Market, numMarkets)
	for i := 0; i < numMarkets; i++ {
		markets[i] = orderguardtypes.Market{
			Contract: fmt.Sprintf("contract-market-%d", i),
			Denoms: orderguardtypes.Denoms{
				Base:  fmt.Sprintf("ubase%d", i),
				Quote: "urstk",
			},
		}
	}

	return orderguardtypes.GenesisState{
		Params:  orderguardtypes.Params{Owner: owner.Address.String()},
		Markets: markets,
		Orders:  []orderguardtypes.OrderRecord{},
	}
}

// RandomizeParamChanges randomizes all parameters for simulation
func RandomizeParamChanges(r *rand.Rand) []simtypes.LegacyParamChange {
	return ParamChanges(r)
}
