package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the necessary x/autoclaim concrete types
// on the provided LegacyAmino codec. These types are used for Amino JSON
// serialization.
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgUpdateConfig{}, "restake/autoclaim/MsgUpdateConfig", nil)
	cdc.RegisterConcrete(&MsgClaimAndStake{}, "restake/autoclaim/MsgClaimAndStake", nil)
	cdc.RegisterConcrete(&MsgClaimOnly{}, "restake/autoclaim/MsgClaimOnly", nil)
	cdc.RegisterConcrete(&MsgSubscribe{}, "restake/autoclaim/MsgSubscribe", nil)
	cdc.RegisterConcrete(&MsgUnsubscribe{}, "restake/autoclaim/MsgUnsubscribe", nil)
}

// RegisterInterfaces registers the x/autoclaim message types with the
// interface registry
func RegisterInterfaces(registry codectypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgUpdateConfig{},
		&MsgClaimAndStake{},
		&MsgClaimOnly{},
		&MsgSubscribe{},
		&MsgUnsubscribe{},
	)
}

var (
	amino = codec.NewLegacyAmino()
	// ModuleCdc references the global x/autoclaim module codec
	ModuleCdc = codec.NewProtoCodec(codectypes.NewInterfaceRegistry())
)

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
