package types

// Event types for the autoclaim module
const (
	// EventTypeAutoclaim is the single event type; the action attribute
	// identifies the stage or entry point that emitted it.
	EventTypeAutoclaim = "autoclaim"
)

// Action attribute values
const (
	ActionClaimAndStake = "execute_claim_and_stake"
	ActionClaimOnly     = "execute_claim_only"
	ActionClaim         = "claim"
	ActionStake         = "stake"
	ActionChargeFee     = "charge_fee"
	ActionSubscribe     = "subscribe"
	ActionUnsubscribe   = "unsubscribe"
	ActionUpdateConfig  = "update_config"
)

// Result attribute values
const (
	ResultOk     = "ok"
	ResultFailed = "failed"
)

// Event attribute keys
const (
	AttributeKeyAction          = "action"
	AttributeKeyResult          = "result"
	AttributeKeyHandle          = "handle"
	AttributeKeyProtocol        = "protocol"
	AttributeKeyAddress         = "address"
	AttributeKeyContractAddress = "contract_address"
	AttributeKeyToken           = "token"
	AttributeKeyTokensClaimed   = "tokens_claimed"
	AttributeKeyFeeToCharge     = "fee_to_charge"
	AttributeKeyTokensToStake   = "tokens_to_stake"
	AttributeKeyTimestamp       = "timestamp"
	AttributeKeyError           = "error"
	AttributeKeyIgnoredCount    = "ignored_count"
	AttributeKeyIgnoredPairs    = "ignored_pairs"
	AttributeKeyIgnoredMarkets  = "ignored_markets"
	AttributeKeyUser            = "user"
	AttributeKeyProtocols       = "protocols"
)
