package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Message type URLs
const (
	TypeMsgAddMarket   = "add_market"
	TypeMsgPlaceOrder  = "place_order"
	TypeMsgExecuteSlTp = "execute_sl_tp"
)

// Ensure all message types implement the sdk.Msg interface
var (
	_ sdk.Msg = &MsgAddMarket{}
	_ sdk.Msg = &MsgPlaceOrder{}
	_ sdk.Msg = &MsgExecuteSlTp{}
)

// MsgAddMarket registers an order-book contract and its traded pair.
// Owner-only.
type MsgAddMarket struct {
	Sender   string `json:"sender"`
	Contract string `json:"contract"`
	Denoms   Denoms `json:"denoms"`
}

// NewMsgAddMarket creates a new MsgAddMarket instance
func NewMsgAddMarket(sender, contract string, denoms Denoms) *MsgAddMarket {
	return &MsgAddMarket{Sender: sender, Contract: contract, Denoms: denoms}
}

func (m *MsgAddMarket) Reset()         { *m = MsgAddMarket{} }
func (m *MsgAddMarket) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgAddMarket) ProtoMessage()    {}

// XXX_MessageName returns the fully-qualified proto name, used by the msg
// service router to derive the type URL.
func (*MsgAddMarket) XXX_MessageName() string { return "restake.orderguard.v1.MsgAddMarket" }

// Route implements the sdk.Msg interface
func (m MsgAddMarket) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgAddMarket) Type() string { return TypeMsgAddMarket }

// GetSigners implements the sdk.Msg interface
func (m MsgAddMarket) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic implements the sdk.Msg interface
func (m MsgAddMarket) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if m.Contract == "" {
		return sdkerrors.Wrap(ErrInvalidMarket, "contract address cannot be empty")
	}
	return m.Denoms.Validate()
}

// MsgPlaceOrder places a guarded limit order on a registered market.
type MsgPlaceOrder struct {
	Sender  string          `json:"sender"`
	Market  string          `json:"market"`
	Side    Side            `json:"side"`
	Price   math.LegacyDec  `json:"price"`
	Amount  math.Int        `json:"amount"`
	PriceSL *math.LegacyDec `json:"price_sl,omitempty"`
	PriceTP *math.LegacyDec `json:"price_tp,omitempty"`
}

// NewMsgPlaceOrder creates a new MsgPlaceOrder instance
func NewMsgPlaceOrder(sender, market string, side Side, price math.LegacyDec, amount math.Int, priceSL, priceTP *math.LegacyDec) *MsgPlaceOrder {
	return &MsgPlaceOrder{
		Sender:  sender,
		Market:  market,
		Side:    side,
		Price:   price,
		Amount:  amount,
		PriceSL: priceSL,
		PriceTP: priceTP,
	}
}

func (m *MsgPlaceOrder) Reset()         { *m = MsgPlaceOrder{} }
func (m *MsgPlaceOrder) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgPlaceOrder) ProtoMessage()    {}

func (*MsgPlaceOrder) XXX_MessageName() string { return "restake.orderguard.v1.MsgPlaceOrder" }

// Route implements the sdk.Msg interface
func (m MsgPlaceOrder) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgPlaceOrder) Type() string { return TypeMsgPlaceOrder }

// GetSigners implements the sdk.Msg interface
func (m MsgPlaceOrder) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic implements the sdk.Msg interface
func (m MsgPlaceOrder) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if m.Market == "" {
		return sdkerrors.Wrap(ErrInvalidMarket, "market contract cannot be empty")
	}
	if !m.Side.Valid() {
		return sdkerrors.Wrapf(ErrInvalidOrder, "unknown side %q", m.Side)
	}
	if m.Price.IsNil() || !m.Price.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrder, "price must be positive")
	}
	order := UserOrder{Amount: m.Amount, PriceSL: m.PriceSL, PriceTP: m.PriceTP}
	return order.Validate()
}

// MsgExecuteSlTp fires a stop-loss or take-profit trigger on a resting
// order. Owner-only.
type MsgExecuteSlTp struct {
	Sender       string         `json:"sender"`
	User         string         `json:"user"`
	Market       string         `json:"market"`
	Side         Side           `json:"side"`
	Price        math.LegacyDec `json:"price"`
	TriggerPrice math.LegacyDec `json:"trigger_price"`
	ClaimAmount  math.Int       `json:"claim_amount"`
}

// NewMsgExecuteSlTp creates a new MsgExecuteSlTp instance
func NewMsgExecuteSlTp(sender, user, market string, side Side, price, triggerPrice math.LegacyDec, claimAmount math.Int) *MsgExecuteSlTp {
	return &MsgExecuteSlTp{
		Sender:       sender,
		User:         user,
		Market:       market,
		Side:         side,
		Price:        price,
		TriggerPrice: triggerPrice,
		ClaimAmount:  claimAmount,
	}
}

func (m *MsgExecuteSlTp) Reset()         { *m = MsgExecuteSlTp{} }
func (m *MsgExecuteSlTp) String() string { return fmt.Sprintf("%v", *m) }
func (*MsgExecuteSlTp) ProtoMessage()    {}

func (*MsgExecuteSlTp) XXX_MessageName() string { return "restake.orderguard.v1.MsgExecuteSlTp" }

// Route implements the sdk.Msg interface
func (m MsgExecuteSlTp) Route() string { return RouterKey }

// Type implements the sdk.Msg interface
func (m MsgExecuteSlTp) Type() string { return TypeMsgExecuteSlTp }

// GetSigners implements the sdk.Msg interface
func (m MsgExecuteSlTp) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic implements the sdk.Msg interface
func (m MsgExecuteSlTp) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.User); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid user address: %s", err)
	}
	if m.Market == "" {
		return sdkerrors.Wrap(ErrInvalidMarket, "market contract cannot be empty")
	}
	if !m.Side.Valid() {
		return sdkerrors.Wrapf(ErrInvalidOrder, "unknown side %q", m.Side)
	}
	if m.Price.IsNil() || !m.Price.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrder, "price must be positive")
	}
	if m.TriggerPrice.IsNil() || !m.TriggerPrice.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrder, "trigger price must be positive")
	}
	if m.ClaimAmount.IsNil() || !m.ClaimAmount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrder, "claim amount must be positive")
	}
	return nil
}
