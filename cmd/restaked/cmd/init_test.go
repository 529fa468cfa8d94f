package cmd_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/restake-zone/restake/cmd/restaked/cmd"
)

func executeInit(t *testing.T, home string, extraArgs ...string) error {
	t.Helper()

	rootCmd := cmd.NewRootCmd(true)
	args := append([]string{"init", "test-node", "--chain-id", "restake-test-1", "--home", home}, extraArgs...)
	rootCmd.SetArgs(args)

	return svrcmd.Execute(rootCmd, "RESTAKED", home)
}

func TestInitCmdWritesGenesis(t *testing.T) {
	home := t.TempDir()

	if err := executeInit(t, home); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	genFile := filepath.Join(home, "config", "genesis.json")
	bz, err := os.ReadFile(genFile)
	if err != nil {
		t.Fatalf("Failed to read genesis file: %v", err)
	}
	genesis := string(bz)

	if !strings.Contains(genesis, `"chain_id": "restake-test-1"`) {
		t.Error("Expected chain_id in genesis file")
	}

	// The app state must carry the restake module sections and the bond
	// denom override applied by init.
	for _, want := range []string{`"autoclaim"`, `"orderguard"`, `"urstk"`} {
		if !strings.Contains(genesis, want) {
			t.Errorf("Expected genesis to contain %s", want)
		}
	}

	// Node identity files are created alongside the genesis.
	for _, f := range []string{"node_key.json", "priv_validator_key.json"} {
		if _, err := os.Stat(filepath.Join(home, "config", f)); err != nil {
			t.Errorf("Expected %s to exist: %v", f, err)
		}
	}
}

func TestInitCmdRefusesOverwrite(t *testing.T) {
	home := t.TempDir()

	if err := executeInit(t, home); err != nil {
		t.Fatalf("first init failed: %v", err)
	}

	err := executeInit(t, home)
	if err == nil {
		t.Fatal("Expected second init without --overwrite to fail")
	}
	if !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Expected already-exists error, got: %v", err)
	}

	if err := executeInit(t, home, "--overwrite"); err != nil {
		t.Errorf("init --overwrite failed: %v", err)
	}
}

func TestInitCmdRecoverRejectsBadMnemonic(t *testing.T) {
	home := t.TempDir()

	rootCmd := cmd.NewRootCmd(true)
	rootCmd.SetArgs([]string{"init", "test-node", "--chain-id", "restake-test-1", "--home", home, "--recover"})
	rootCmd.SetIn(strings.NewReader("definitely not a valid mnemonic\n"))

	err := svrcmd.Execute(rootCmd, "RESTAKED", home)
	if err == nil {
		t.Fatal("Expected init --recover with a bad mnemonic to fail")
	}
	if !strings.Contains(err.Error(), "mnemonic") {
		t.Errorf("Expected mnemonic validation error, got: %v", err)
	}
}
