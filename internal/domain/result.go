package domain

// RejectReason classifies why a request was not applied. The client never
// sees these: every failure is silent on the wire (the replicated state
// simply does not change). Reasons exist for logging, metrics and tests.
type RejectReason string

const (
	RejectNone RejectReason = "" // accepted

	RejectRateLimited    RejectReason = "rate_limited"
	RejectOnCooldown     RejectReason = "on_cooldown"
	RejectDuplicateSeq   RejectReason = "duplicate_seq"
	RejectUnknownPlayer  RejectReason = "unknown_player"
	RejectStalePickup    RejectReason = "stale_pickup"
	RejectOutOfRange     RejectReason = "out_of_range"
	RejectBadIndex       RejectReason = "bad_index"
	RejectEmptySlot      RejectReason = "empty_slot"
	RejectUnknownItem    RejectReason = "unknown_item"
	RejectUnknownRecipe  RejectReason = "unknown_recipe"
	RejectNoIngredients  RejectReason = "missing_ingredients"
	RejectInventoryFull  RejectReason = "inventory_full"
	RejectNoStock        RejectReason = "no_stock"
	RejectInvalidRequest RejectReason = "invalid_request"
)

// Result is the internal outcome of one request against an inventory or
// resource source. Accepted is true for applied mutations and for logical
// no-ops (e.g. using a weapon slot); Placed reports how many units were
// actually deposited for operations that can partially place resources.
type Result struct {
	Accepted bool
	Reason   RejectReason
	Placed   int
	NoOp     bool
}

// Accept returns an accepted result.
func Accept() Result {
	return Result{Accepted: true}
}

// AcceptPlaced returns an accepted result reporting the placed quantity.
func AcceptPlaced(placed int) Result {
	return Result{Accepted: true, Placed: placed}
}

// AcceptNoOp returns an accepted result that changed nothing, used for
// operations on items that do not support the action.
func AcceptNoOp() Result {
	return Result{Accepted: true, NoOp: true}
}

// Reject returns a rejected result with the given reason.
func Reject(reason RejectReason) Result {
	return Result{Reason: reason}
}
