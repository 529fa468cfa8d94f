package app_test

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBeginBlocker_ModuleOrder(t *testing.T) {
	// Verify BeginBlocker calls modules in correct order:
	// 1. mint - inflation/block rewards first
	// 2. distribution - distribute rewards
	// 3. slashing - check for slashing conditions
	// 4. evidence - process evidence
	// 5. staking - process unbonding
	// 6. autoclaim - claim scheduling
	// 7. orderguard - order bookkeeping
	t.Run("module order verification", func(t *testing.T) {
		// This requires full app setup
		t.Skip("Requires integration test with full app - see integration_test.go")
	})
}

func TestEndBlocker_ModuleOrder(t *testing.T) {
	// Verify EndBlocker calls modules in correct order:
	// 1. crisis - check invariants
	// 2. gov - process proposals
	// 3. staking - validator set updates
	// 4. autoclaim - settle outstanding operations
	// 5. orderguard - settle outstanding placements
	t.Run("module order verification", func(t *testing.T) {
		t.Skip("Requires integration test with full app - see integration_test.go")
	})
}

func TestBeginBlocker_TracingEnabled(t *testing.T) {
	// Verify OpenTelemetry tracing is invoked when telemetryProvider is set
	t.Skip("Requires telemetry setup")
}

func TestEndBlocker_TracingEnabled(t *testing.T) {
	// Verify OpenTelemetry tracing is invoked when telemetryProvider is set
	t.Skip("Requires telemetry setup")
}

func TestBeginBlocker_PanicsAreCaptured(t *testing.T) {
	// Verify that panics in BeginBlocker are properly handled
	t.Skip("Requires integration test with mock panic")
}

func TestEndBlocker_ValidatorSetUpdates(t *testing.T) {
	// Verify that EndBlocker returns correct validator set updates
	t.Skip("Requires integration test with validator changes")
}

// TestInitChainer verifies genesis initialization
func TestInitChainer_CustomModules(t *testing.T) {
	t.Run("autoclaim module genesis", func(t *testing.T) {
		t.Skip("Requires integration test")
	})

	t.Run("orderguard module genesis", func(t *testing.T) {
		t.Skip("Requires integration test")
	})
}

// Helper to verify module was called
func assertModuleCalled(t *testing.T, moduleName string, called bool) {
	require.True(t, called, "Module %s should have been called", moduleName)
}
