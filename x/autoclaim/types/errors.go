package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// Autoclaim module sentinel errors
var (
	ErrUnauthorized    = sdkerrors.Register(ModuleName, 2, "you have no permissions to execute this function")
	ErrInvalidProtocol = sdkerrors.Register(ModuleName, 3, "unsupported protocol")
	ErrInvalidStrategy = sdkerrors.Register(ModuleName, 4, "unsupported strategy")
	ErrTooManyMessages = sdkerrors.Register(ModuleName, 5, "too many protocols to claim")
	ErrNoRewards       = sdkerrors.Register(ModuleName, 6, "no rewards available")
	ErrInvalidReplyId  = sdkerrors.Register(ModuleName, 7, "invalid reply id")
	ErrInvalidAddress  = sdkerrors.Register(ModuleName, 8, "invalid address")
	ErrHandleExhausted = sdkerrors.Register(ModuleName, 9, "dispatch handle range exhausted")
	ErrNoOwner         = sdkerrors.Register(ModuleName, 10, "owner should be specified")
)
