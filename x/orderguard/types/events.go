package types

// Event types for the orderguard module
const (
	EventTypeOrderguard = "orderguard"
)

// Action attribute values
const (
	ActionAddMarket    = "add_market"
	ActionPlaceOrder   = "place_order"
	ActionExecuteSlTp  = "execute_sl_tp"
	ActionOrderSettled = "order_settled"
)

// Result attribute values
const (
	ResultOk     = "ok"
	ResultFailed = "failed"
)

// Event attribute keys
const (
	AttributeKeyAction  = "action"
	AttributeKeyResult  = "result"
	AttributeKeyHandle  = "handle"
	AttributeKeyUser    = "user"
	AttributeKeyMarket  = "market"
	AttributeKeySide    = "side"
	AttributeKeyPrice   = "price"
	AttributeKeyAmount  = "amount"
	AttributeKeyTrigger = "trigger"
	AttributeKeyError   = "error"
)
