package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/orderguard concrete
// types on the provided LegacyAmino codec.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgAddMarket{}, "restake/orderguard/MsgAddMarket", nil)
	cdc.RegisterConcrete(&MsgPlaceOrder{}, "restake/orderguard/MsgPlaceOrder", nil)
	cdc.RegisterConcrete(&MsgExecuteSlTp{}, "restake/orderguard/MsgExecuteSlTp", nil)
}

// RegisterInterfaces registers the x/orderguard message types with the
// interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgAddMarket{},
		&MsgPlaceOrder{},
		&MsgExecuteSlTp{},
	)
}

var (
	amino = codec.NewLegacyAmino()
	// ModuleCdc references the global x/orderguard module codec
	ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
