package ante

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	txsigning "cosmossdk.io/x/tx/signing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/tx/signing"
	"github.com/cosmos/cosmos-sdk/x/auth/ante"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	autoclaimkeeper "github.com/restake-zone/restake/x/autoclaim/keeper"
	orderguardkeeper "github.com/restake-zone/restake/x/orderguard/keeper"
)

// HandlerOptions are the options required for constructing a default SDK AnteHandler.
type HandlerOptions struct {
	AccountKeeper    ante.AccountKeeper
	BankKeeper       authtypes.BankKeeper
	FeegrantKeeper   ante.FeegrantKeeper
	SignModeHandler  *txsigning.HandlerMap
	SigGasConsumer   func(meter storetypes.GasMeter, sig signing.SignatureV2, params authtypes.Params) error
	AutoclaimKeeper  *autoclaimkeeper.Keeper
	OrderguardKeeper *orderguardkeeper.Keeper
}

// NewAnteHandler returns an AnteHandler that checks and increments sequence
// numbers, checks signatures & account numbers, and deducts fees from the first
// signer. It also includes custom decorators for the restake modules.
func NewAnteHandler(options HandlerOptions) (sdk.AnteHandler, error) {
	if options.AccountKeeper == nil {
		return nil, fmt.Errorf("account keeper is required for ante builder")
	}

	if options.BankKeeper == nil {
		return nil, fmt.Errorf("bank keeper is required for ante builder")
	}

	if options.SignModeHandler == nil {
		return nil, fmt.Errorf("sign mode handler is required for ante builder")
	}

	anteDecorators := []sdk.AnteDecorator{
		ante.NewSetUpContextDecorator(), // outermost AnteDecorator. SetUpContext must be called first
		NewBlockTimeDecorator(),
		NewMemoLimitDecorator(DefaultMaxMemoBytes),
		ante.NewExtensionOptionsDecorator(nil),
		ante.NewValidateBasicDecorator(),
		ante.NewTxTimeoutHeightDecorator(),
		ante.NewValidateMemoDecorator(options.AccountKeeper),
		ante.NewConsumeGasForTxSizeDecorator(options.AccountKeeper),
		ante.NewDeductFeeDecorator(options.AccountKeeper, options.BankKeeper, options.FeegrantKeeper, nil),
		ante.NewSetPubKeyDecorator(options.AccountKeeper), // SetPubKeyDecorator must be called before all signature verification decorators
		ante.NewValidateSigCountDecorator(options.AccountKeeper),
		ante.NewSigGasConsumeDecorator(options.AccountKeeper, options.SigGasConsumer),
		ante.NewSigVerificationDecorator(options.AccountKeeper, options.SignModeHandler),
		ante.NewIncrementSequenceDecorator(options.AccountKeeper),
	}

	// Add custom module decorators
	if options.AutoclaimKeeper != nil {
		anteDecorators = append(anteDecorators, NewAutoclaimDecorator(*options.AutoclaimKeeper))
	}

	if options.OrderguardKeeper != nil {
		anteDecorators = append(anteDecorators, NewOrderguardDecorator(*options.OrderguardKeeper))
	}

	return sdk.ChainAnteDecorators(anteDecorators...), nil
}
