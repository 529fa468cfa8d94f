package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	cmttypes "github.com/cometbft/cometbft/types"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/input"
	"github.com/cosmos/cosmos-sdk/server"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/cosmos/cosmos-sdk/version"
	"github.com/cosmos/cosmos-sdk/x/genutil"
	genutiltypes "github.com/cosmos/cosmos-sdk/x/genutil/types"
	"github.com/cosmos/go-bip39"
	"github.com/spf13/cobra"

	"github.com/restake-zone/restake/app"
)

const (
	flagOverwrite    = "overwrite"
	flagRecover      = "recover"
	flagDefaultDenom = "default-denom"
)

// Consensus parameters sized for the chain's 4-second block target. Claim
// batches fan out into several contract executions per transaction, so the
// block gas ceiling is set well above the SDK default.
const (
	maxBlockBytes        int64 = 2_097_152   // 2 MB
	maxBlockGas          int64 = 100_000_000 // 100M gas
	evidenceMaxAgeBlocks int64 = 500_000     // ~23 days at 4s blocks
	evidenceMaxBytes     int64 = 1_048_576   // 1 MB
)

// InitCmd returns a command that initializes the validator key, node key,
// and genesis file for a restake node. The CometBFT config itself is tuned
// by initCometBFTConfig and written by the server pre-run hook.
func InitCmd(mbm module.BasicManager, defaultNodeHome string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [moniker]",
		Short: "Initialize private validator, p2p, genesis, and application configuration files",
		Long: `Initialize validator and node configuration files.

Example:
  restaked init my-node --chain-id restake-testnet-1 --home ~/.restake
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx := client.GetClientContextFromCmd(cmd)
			cdc := clientCtx.Codec

			serverCtx := server.GetServerContextFromCmd(cmd)
			config := serverCtx.Config
			config.SetRoot(clientCtx.HomeDir)

			chainID, _ := cmd.Flags().GetString(flags.FlagChainID)
			if chainID == "" {
				chainID = fmt.Sprintf("restake-%v", time.Now().Unix())
			}

			// With --recover the node key is derived from an operator-provided
			// mnemonic instead of fresh entropy, so a machine can be rebuilt
			// with the same node identity.
			var mnemonic string
			if recoverKey, _ := cmd.Flags().GetBool(flagRecover); recoverKey {
				inBuf := bufio.NewReader(cmd.InOrStdin())
				value, err := input.GetString("Enter your bip39 mnemonic", inBuf)
				if err != nil {
					return err
				}
				if !bip39.IsMnemonicValid(value) {
					return errors.New("invalid bip39 mnemonic")
				}
				mnemonic = value
			}

			nodeID, _, err := genutil.InitializeNodeValidatorFilesFromMnemonic(config, mnemonic)
			if err != nil {
				return err
			}

			config.Moniker = args[0]

			genFile := config.GenesisFile()
			overwrite, _ := cmd.Flags().GetBool(flagOverwrite)
			if _, err := os.Stat(genFile); err == nil && !overwrite {
				return fmt.Errorf("genesis.json file already exists: %v", genFile)
			}

			// The module defaults are written in terms of the bond denom, so
			// overriding it here rewrites staking, mint, gov, and crisis
			// genesis in one place.
			if defaultDenom, _ := cmd.Flags().GetString(flagDefaultDenom); defaultDenom != "" {
				sdk.DefaultBondDenom = defaultDenom
			}

			appState, err := json.MarshalIndent(mbm.DefaultGenesis(cdc), "", " ")
			if err != nil {
				return fmt.Errorf("failed to marshal default genesis state: %w", err)
			}

			consensusParams := cmttypes.DefaultConsensusParams()
			consensusParams.Block.MaxBytes = maxBlockBytes
			consensusParams.Block.MaxGas = maxBlockGas
			consensusParams.Evidence.MaxAgeNumBlocks = evidenceMaxAgeBlocks
			consensusParams.Evidence.MaxAgeDuration = 21 * 24 * time.Hour
			consensusParams.Evidence.MaxBytes = evidenceMaxBytes

			appGenesis := &genutiltypes.AppGenesis{
				AppName:    version.AppName,
				AppVersion: version.Version,
				ChainID:    chainID,
				AppState:   appState,
				Consensus: &genutiltypes.ConsensusGenesis{
					Validators: nil,
					Params:     consensusParams,
				},
			}

			if err := genutil.ExportGenesisFile(appGenesis, genFile); err != nil {
				return fmt.Errorf("failed to export genesis file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized node %q on chain %q\n", config.Moniker, chainID)
			fmt.Fprintf(cmd.OutOrStdout(), "Node ID: %s\n", nodeID)
			fmt.Fprintf(cmd.OutOrStdout(), "Genesis file: %s\n", genFile)

			return nil
		},
	}

	cmd.Flags().String(flags.FlagChainID, "", "genesis file chain-id, if left blank will be randomly created")
	cmd.Flags().Bool(flagOverwrite, false, "overwrite the genesis.json file")
	cmd.Flags().Bool(flagRecover, false, "provide seed phrase to recover existing key instead of creating")
	cmd.Flags().String(flagDefaultDenom, app.BondDenom, "default denomination for the chain")
	cmd.Flags().String(flags.FlagHome, defaultNodeHome, "node's home directory")

	return cmd
}
