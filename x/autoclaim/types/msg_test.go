package types

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
)

var (
	validAddress   = "cosmos1zg69v7ys40x77y352eufp27daufrg4ncnjqz7q"
	otherAddress   = sdk.AccAddress([]byte("other_______________")).String()
	invalidAddress = "invalid"
)

func sampleConfig() ProtocolConfig {
	return ProtocolConfig{
		Protocol:      "mars",
		FeePercentage: math.LegacyNewDecWithPrec(5, 2),
		FeeAddress:    otherAddress,
		Strategy:      NewClaimAndStakeStrategy(ProviderDAODAO, "claim-contract", "stake-contract", "ureward"),
	}
}

func TestMsgUpdateConfig_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *MsgUpdateConfig
		wantErr error
	}{
		{
			name: "valid full update",
			msg:  NewMsgUpdateConfig(validAddress, otherAddress, 10, []ProtocolConfig{sampleConfig()}),
		},
		{
			name: "valid partial update keeps zero fields",
			msg:  NewMsgUpdateConfig(validAddress, "", 0, nil),
		},
		{
			name:    "invalid sender",
			msg:     NewMsgUpdateConfig(invalidAddress, "", 0, nil),
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "invalid owner",
			msg:     NewMsgUpdateConfig(validAddress, invalidAddress, 0, nil),
			wantErr: ErrInvalidAddress,
		},
		{
			name: "invalid protocol config",
			msg: NewMsgUpdateConfig(validAddress, "", 0, []ProtocolConfig{
				{Protocol: "", FeePercentage: math.LegacyZeroDec()},
			}),
			wantErr: ErrInvalidProtocol,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgClaimAndStake_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *MsgClaimAndStake
		wantErr error
	}{
		{
			name: "valid",
			msg: NewMsgClaimAndStake(validAddress, []UserProtocols{
				{User: otherAddress, Protocols: []string{"mars"}},
			}),
		},
		{
			name:    "invalid sender",
			msg:     NewMsgClaimAndStake(invalidAddress, []UserProtocols{{User: otherAddress, Protocols: []string{"mars"}}}),
			wantErr: ErrInvalidAddress,
		},
		{
			name:    "empty batch",
			msg:     NewMsgClaimAndStake(validAddress, nil),
			wantErr: ErrInvalidProtocol,
		},
		{
			name:    "invalid user",
			msg:     NewMsgClaimAndStake(validAddress, []UserProtocols{{User: invalidAddress, Protocols: []string{"mars"}}}),
			wantErr: ErrInvalidAddress,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgClaimOnly_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		msg     *MsgClaimOnly
		wantErr error
	}{
		{
			name: "valid",
			msg:  NewMsgClaimOnly(validAddress, "fin", []UserContract{{User: otherAddress, Contract: "market-a"}}),
		},
		{
			name:    "empty protocol",
			msg:     NewMsgClaimOnly(validAddress, "", []UserContract{{User: otherAddress, Contract: "market-a"}}),
			wantErr: ErrInvalidProtocol,
		},
		{
			name:    "empty batch",
			msg:     NewMsgClaimOnly(validAddress, "fin", nil),
			wantErr: ErrInvalidProtocol,
		},
		{
			name:    "empty market contract",
			msg:     NewMsgClaimOnly(validAddress, "fin", []UserContract{{User: otherAddress, Contract: ""}}),
			wantErr: ErrInvalidAddress,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.msg.ValidateBasic()
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgSubscribe_ValidateBasic(t *testing.T) {
	require.NoError(t, NewMsgSubscribe(validAddress, []string{"mars"}).ValidateBasic())
	require.ErrorIs(t, NewMsgSubscribe(invalidAddress, []string{"mars"}).ValidateBasic(), ErrInvalidAddress)
	require.ErrorIs(t, NewMsgSubscribe(validAddress, nil).ValidateBasic(), ErrInvalidProtocol)
	require.ErrorIs(t, NewMsgSubscribe(validAddress, []string{""}).ValidateBasic(), ErrInvalidProtocol)
}

func TestMsgUnsubscribe_ValidateBasic(t *testing.T) {
	require.NoError(t, NewMsgUnsubscribe(validAddress, []string{"mars"}).ValidateBasic())
	require.ErrorIs(t, NewMsgUnsubscribe(validAddress, nil).ValidateBasic(), ErrInvalidProtocol)
}

func TestMsgGetSigners(t *testing.T) {
	signers := NewMsgSubscribe(validAddress, []string{"mars"}).GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, validAddress, signers[0].String())
}
