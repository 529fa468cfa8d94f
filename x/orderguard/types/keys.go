package types

import (
	"cosmossdk.io/math"
)

// Store key prefixes. The module namespace byte is 0x06; each logical table
// gets its own second byte.
var (
	// ParamsKey is the key for the global module configuration
	ParamsKey = []byte{0x06, 0x01}

	// MarketKeyPrefix is the prefix for the market registry, keyed by
	// contract address
	MarketKeyPrefix = []byte{0x06, 0x02}

	// OrderKeyPrefix is the prefix for user orders, keyed by
	// (user, market, side, price)
	OrderKeyPrefix = []byte{0x06, 0x03}

	// PendingOrderKeyPrefix is the prefix for pending-operation rows,
	// keyed by big-endian dispatch handle
	PendingOrderKeyPrefix = []byte{0x06, 0x04}
)

// MarketKey returns the registry store key for a market contract address.
func MarketKey(contract string) []byte {
	return append(MarketKeyPrefix, []byte(contract)...)
}

// OrderKey returns the store key for (user, market, side, price). The parts
// are joined with a separator byte; the price uses its fixed-point decimal
// string, which is unique per value.
func OrderKey(user, market string, side Side, price math.LegacyDec) []byte {
	key := append(OrderKeyPrefix, []byte(user)...)
	key = append(key, 0x00)
	key = append(key, []byte(market)...)
	key = append(key, 0x00)
	key = append(key, []byte(side)...)
	key = append(key, 0x00)
	return append(key, []byte(price.String())...)
}

// OrderUserPrefix returns the prefix covering all of one user's orders.
func OrderUserPrefix(user string) []byte {
	key := append(OrderKeyPrefix, []byte(user)...)
	return append(key, 0x00)
}

// PendingOrderKey returns the pending-table store key for a handle.
func PendingOrderKey(handle uint64) []byte {
	bz := make([]byte, 8)
	for i := 0; i < 8; i++ {
		bz[7-i] = byte(handle >> (8 * i))
	}
	return append(PendingOrderKeyPrefix, bz...)
}
