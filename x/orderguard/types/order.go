package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params is the global module configuration.
type Params struct {
	Owner string `json:"owner"`
}

// Validate checks the params are well-formed.
func (p Params) Validate() error {
	if p.Owner == "" {
		return ErrNoOwner
	}
	if _, err := sdk.AccAddressFromBech32(p.Owner); err != nil {
		return fmt.Errorf("invalid owner address: %w", err)
	}
	return nil
}

// Denoms is the base/quote pair a market trades.
type Denoms struct {
	Base  string `json:"base"`
	Quote string `json:"quote"`
}

// Validate checks both denoms are well-formed and distinct.
func (d Denoms) Validate() error {
	if err := sdk.ValidateDenom(d.Base); err != nil {
		return fmt.Errorf("invalid base denom: %w", err)
	}
	if err := sdk.ValidateDenom(d.Quote); err != nil {
		return fmt.Errorf("invalid quote denom: %w", err)
	}
	if d.Base == d.Quote {
		return fmt.Errorf("base and quote denom must differ")
	}
	return nil
}

// Market is a registered order-book contract and the pair it trades.
type Market struct {
	Contract string `json:"contract"`
	Denoms   Denoms `json:"denoms"`
}

// Side is the order-book side an order rests on.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Valid reports whether the side is a known variant.
func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Deposit returns the denom an order on this side escrows.
func (s Side) Deposit(d Denoms) string {
	if s == SideBuy {
		return d.Quote
	}
	return d.Base
}

// UserOrder is the guarded limit order: the resting amount plus optional
// stop-loss and take-profit trigger prices.
type UserOrder struct {
	Amount  math.Int        `json:"amount"`
	PriceSL *math.LegacyDec `json:"price_sl,omitempty"`
	PriceTP *math.LegacyDec `json:"price_tp,omitempty"`
}

// Validate checks the order is placeable. At least one trigger must be set,
// otherwise there is nothing to guard.
func (o UserOrder) Validate() error {
	if o.Amount.IsNil() || !o.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrder, "amount must be positive")
	}
	if o.PriceSL == nil && o.PriceTP == nil {
		return sdkerrors.Wrap(ErrInvalidOrder, "at least one of price_sl and price_tp must be set")
	}
	if o.PriceSL != nil && !o.PriceSL.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrder, "price_sl must be positive")
	}
	if o.PriceTP != nil && !o.PriceTP.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidOrder, "price_tp must be positive")
	}
	return nil
}

// Trigger identifies which guard condition fired.
type Trigger string

const (
	TriggerStopLoss   Trigger = "stop_loss"
	TriggerTakeProfit Trigger = "take_profit"
)

// MatchTrigger returns the trigger whose stored price equals the given
// trigger price, or an error when neither matches.
func (o UserOrder) MatchTrigger(price math.LegacyDec) (Trigger, error) {
	if o.PriceSL != nil && o.PriceSL.Equal(price) {
		return TriggerStopLoss, nil
	}
	if o.PriceTP != nil && o.PriceTP.Equal(price) {
		return TriggerTakeProfit, nil
	}
	return "", sdkerrors.Wrapf(ErrInvalidTrigger, "price %s matches neither stop-loss nor take-profit", price)
}

// OrderRecord flattens a stored order with its key parts for genesis and
// query listings.
type OrderRecord struct {
	User   string         `json:"user"`
	Market string         `json:"market"`
	Side   Side           `json:"side"`
	Price  math.LegacyDec `json:"price"`
	Order  UserOrder      `json:"order"`
}
