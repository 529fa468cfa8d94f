package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgUpdateConfig  = "update_config"
	TypeMsgClaimAndStake = "claim_and_stake"
	TypeMsgClaimOnly     = "claim_only"
	TypeMsgSubscribe     = "subscribe"
	TypeMsgUnsubscribe   = "unsubscribe"
)

// Ensure all message types implement the sdk.Msg interface
var (
	_ sdk.Msg = &MsgUpdateConfig{}
	_ sdk.Msg = &MsgClaimAndStake{}
	_ sdk.Msg = &MsgClaimOnly{}
	_ sdk.Msg = &MsgSubscribe{}
	_ sdk.Msg = &MsgUnsubscribe{}
)

// UserProtocols pairs a user address with the protocols to claim for them.
type UserProtocols struct {
	User      string   `json:"user"`
	Protocols []string `json:"protocols"`
}

// UserContract pairs a user address with the market contract to withdraw
// from in a claim-only batch.
type UserContract struct {
	User     string `json:"user"`
	Contract string `json:"contract"`
}

// MsgUpdateConfig overwrites global configuration fields and upserts protocol
// registry entries. Owner-only.
type MsgUpdateConfig struct {
	Sender            string           `json:"sender"`
	Owner             string           `json:"owner,omitempty"`
	MaxParallelClaims uint32           `json:"max_parallel_claims,omitempty"`
	ProtocolConfigs   []ProtocolConfig `json:"protocol_configs,omitempty"`
}

// NewMsgUpdateConfig creates a new MsgUpdateConfig instance
func NewMsgUpdateConfig(sender, owner string, maxParallelClaims uint32, configs []ProtocolConfig) *MsgUpdateConfig {
	return &MsgUpdateConfig{
		Sender:            sender,
		Owner:             owner,
		MaxParallelClaims: maxParallelClaims,
		ProtocolConfigs:   configs,
	}
}

func (m *MsgUpdateConfig) Reset()         { *m = MsgUpdateConfig{} }
func (m *MsgUpdateConfig) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUpdateConfig) ProtoMessage()    {}

// XXX_MessageName returns the fully-qualified proto name, used by the msg
// service router to derive the type URL.
func (*MsgUpdateConfig) XXX_MessageName() string { return "restake.autoclaim.v1.MsgUpdateConfig" }

// Route implements the sdk.Msg interface
func (m MsgUpdateConfig) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgUpdateConfig) Type() string { return TypeMsgUpdateConfig }

// GetSigners implements the sdk.Msg interface
func (m MsgUpdateConfig) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic implements the sdk.Msg interface
func (m MsgUpdateConfig) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if m.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid owner address: %s", err)
		}
	}
	for _, pc := range m.ProtocolConfigs {
		if err := pc.Validate(); err != nil {
			return sdkerrors.Wrapf(ErrInvalidProtocol, "protocol %q: %s", pc.Protocol, err)
		}
	}
	return nil
}

// MsgClaimAndStake triggers the claim-and-stake pipeline for a batch of
// (user, protocols) pairs. Owner-only.
type MsgClaimAndStake struct {
	Sender         string          `json:"sender"`
	UsersProtocols []UserProtocols `json:"users_protocols"`
}

// NewMsgClaimAndStake creates a new MsgClaimAndStake instance
func NewMsgClaimAndStake(sender string, usersProtocols []UserProtocols) *MsgClaimAndStake {
	return &MsgClaimAndStake{
		Sender:         sender,
		UsersProtocols: usersProtocols,
	}
}

func (m *MsgClaimAndStake) Reset()         { *m = MsgClaimAndStake{} }
func (m *MsgClaimAndStake) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimAndStake) ProtoMessage()    {}

func (*MsgClaimAndStake) XXX_MessageName() string { return "restake.autoclaim.v1.MsgClaimAndStake" }

// Route implements the sdk.Msg interface
func (m MsgClaimAndStake) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgClaimAndStake) Type() string { return TypeMsgClaimAndStake }

// GetSigners implements the sdk.Msg interface
func (m MsgClaimAndStake) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic implements the sdk.Msg interface
func (m MsgClaimAndStake) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if len(m.UsersProtocols) == 0 {
		return sdkerrors.Wrap(ErrInvalidProtocol, "users_protocols cannot be empty")
	}
	for _, up := range m.UsersProtocols {
		if _, err := sdk.AccAddressFromBech32(up.User); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid user address %q: %s", up.User, err)
		}
	}
	return nil
}

// MsgClaimOnly triggers the claim-only pipeline for one protocol across a
// batch of (user, market contract) pairs. Owner-only.
type MsgClaimOnly struct {
	Sender         string         `json:"sender"`
	Protocol       string         `json:"protocol"`
	UsersContracts []UserContract `json:"users_contracts"`
}

// NewMsgClaimOnly creates a new MsgClaimOnly instance
func NewMsgClaimOnly(sender, protocol string, usersContracts []UserContract) *MsgClaimOnly {
	return &MsgClaimOnly{
		Sender:         sender,
		Protocol:       protocol,
		UsersContracts: usersContracts,
	}
}

func (m *MsgClaimOnly) Reset()         { *m = MsgClaimOnly{} }
func (m *MsgClaimOnly) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgClaimOnly) ProtoMessage()    {}

func (*MsgClaimOnly) XXX_MessageName() string { return "restake.autoclaim.v1.MsgClaimOnly" }

// Route implements the sdk.Msg interface
func (m MsgClaimOnly) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgClaimOnly) Type() string { return TypeMsgClaimOnly }

// GetSigners implements the sdk.Msg interface
func (m MsgClaimOnly) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic implements the sdk.Msg interface
func (m MsgClaimOnly) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if m.Protocol == "" {
		return sdkerrors.Wrap(ErrInvalidProtocol, "protocol cannot be empty")
	}
	if len(m.UsersContracts) == 0 {
		return sdkerrors.Wrap(ErrInvalidProtocol, "users_contracts cannot be empty")
	}
	for _, uc := range m.UsersContracts {
		if _, err := sdk.AccAddressFromBech32(uc.User); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid user address %q: %s", uc.User, err)
		}
		if uc.Contract == "" {
			return sdkerrors.Wrap(ErrInvalidAddress, "market contract cannot be empty")
		}
	}
	return nil
}

// MsgSubscribe authorizes automated claiming for the sender on the listed
// protocols.
type MsgSubscribe struct {
	Sender    string   `json:"sender"`
	Protocols []string `json:"protocols"`
}

// NewMsgSubscribe creates a new MsgSubscribe instance
func NewMsgSubscribe(sender string, protocols []string) *MsgSubscribe {
	return &MsgSubscribe{Sender: sender, Protocols: protocols}
}

func (m *MsgSubscribe) Reset()         { *m = MsgSubscribe{} }
func (m *MsgSubscribe) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgSubscribe) ProtoMessage()    {}

func (*MsgSubscribe) XXX_MessageName() string { return "restake.autoclaim.v1.MsgSubscribe" }

// Route implements the sdk.Msg interface
func (m MsgSubscribe) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgSubscribe) Type() string { return TypeMsgSubscribe }

// GetSigners implements the sdk.Msg interface
func (m MsgSubscribe) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic implements the sdk.Msg interface
func (m MsgSubscribe) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if len(m.Protocols) == 0 {
		return sdkerrors.Wrap(ErrInvalidProtocol, "protocols cannot be empty")
	}
	for _, p := range m.Protocols {
		if p == "" {
			return sdkerrors.Wrap(ErrInvalidProtocol, "protocol id cannot be empty")
		}
	}
	return nil
}

// MsgUnsubscribe revokes automated claiming for the sender on the listed
// protocols.
type MsgUnsubscribe struct {
	Sender    string   `json:"sender"`
	Protocols []string `json:"protocols"`
}

// NewMsgUnsubscribe creates a new MsgUnsubscribe instance
func NewMsgUnsubscribe(sender string, protocols []string) *MsgUnsubscribe {
	return &MsgUnsubscribe{Sender: sender, Protocols: protocols}
}

func (m *MsgUnsubscribe) Reset()         { *m = MsgUnsubscribe{} }
func (m *MsgUnsubscribe) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgUnsubscribe) ProtoMessage()    {}

func (*MsgUnsubscribe) XXX_MessageName() string { return "restake.autoclaim.v1.MsgUnsubscribe" }

// Route implements the sdk.Msg interface
func (m MsgUnsubscribe) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgUnsubscribe) Type() string { return TypeMsgUnsubscribe }

// GetSigners implements the sdk.Msg interface
func (m MsgUnsubscribe) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic implements the sdk.Msg interface
func (m MsgUnsubscribe) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if len(m.Protocols) == 0 {
		return sdkerrors.Wrap(ErrInvalidProtocol, "protocols cannot be empty")
	}
	return nil
}
