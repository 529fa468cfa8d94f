package keeper

import (
	"testing"

	"cosmossdk.io/log"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/baseapp"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/restake-zone/restake/app"
)

// SetupTestApp initializes a test application with all modules
func SetupTestApp(t *testing.T) (*app.RestakeApp, sdk.Context) {
	t.Helper()

	db := dbm.NewMemDB()
	testApp := app.NewRestakeApp(
		log.NewNopLogger(),
		db,
		nil,
		true,
		simtestutil.EmptyAppOptions{},
		baseapp.SetChainID("restake-test-1"),
	)

	ctx := testApp.BaseApp.NewContextLegacy(false, cmtproto.Header{ChainID: "restake-test-1", Height: 1})

	return testApp, ctx
}
