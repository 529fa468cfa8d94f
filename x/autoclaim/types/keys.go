package types

// Store key prefixes. The module namespace byte is 0x05; each logical table
// gets its own second byte.
var (
	// ParamsKey is the key for the global module configuration
	ParamsKey = []byte{0x05, 0x01}

	// ProtocolConfigKeyPrefix is the prefix for protocol registry entries,
	// keyed by protocol id
	ProtocolConfigKeyPrefix = []byte{0x05, 0x02}

	// SubscriptionKeyPrefix is the prefix for user subscription sets,
	// keyed by user address
	SubscriptionKeyPrefix = []byte{0x05, 0x03}

	// PendingOperationKeyPrefix is the prefix for pending-operation rows,
	// keyed by big-endian dispatch handle
	PendingOperationKeyPrefix = []byte{0x05, 0x04}

	// ExecutionDataKeyPrefix is the prefix for per-(user, protocol)
	// execution metadata
	ExecutionDataKeyPrefix = []byte{0x05, 0x05}
)

// ProtocolConfigKey returns the registry store key for a protocol id.
func ProtocolConfigKey(protocol string) []byte {
	return append(ProtocolConfigKeyPrefix, []byte(protocol)...)
}

// SubscriptionKey returns the subscription store key for a user address.
func SubscriptionKey(user string) []byte {
	return append(SubscriptionKeyPrefix, []byte(user)...)
}

// PendingOperationKey returns the pending-table store key for a handle.
func PendingOperationKey(handle uint64) []byte {
	bz := make([]byte, 8)
	for i := 0; i < 8; i++ {
		bz[7-i] = byte(handle >> (8 * i))
	}
	return append(PendingOperationKeyPrefix, bz...)
}

// ExecutionDataKey returns the execution metadata key for (user, protocol).
// The user address has a fixed bech32 form, so a separator byte keeps the
// composite key unambiguous.
func ExecutionDataKey(user, protocol string) []byte {
	key := append(ExecutionDataKeyPrefix, []byte(user)...)
	key = append(key, 0x00)
	return append(key, []byte(protocol)...)
}
