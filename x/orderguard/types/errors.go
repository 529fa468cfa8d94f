package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Orderguard module sentinel errors
var (
	ErrUnauthorized    = sdkerrors.Register(ModuleName, 2, "you have no permissions to execute this function")
	ErrInvalidMarket   = sdkerrors.Register(ModuleName, 3, "unknown market contract")
	ErrInvalidOrder    = sdkerrors.Register(ModuleName, 4, "invalid order")
	ErrOrderNotFound   = sdkerrors.Register(ModuleName, 5, "order not found")
	ErrInvalidTrigger  = sdkerrors.Register(ModuleName, 6, "order has no matching trigger price")
	ErrInvalidReplyId  = sdkerrors.Register(ModuleName, 7, "invalid reply id")
	ErrInvalidAddress  = sdkerrors.Register(ModuleName, 8, "invalid address")
	ErrHandleExhausted = sdkerrors.Register(ModuleName, 9, "dispatch handle range exhausted")
	ErrNoOwner         = sdkerrors.Register(ModuleName, 10, "owner should be specified")
)
