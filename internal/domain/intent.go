package domain

// Intent represents the coarse classification of what a customer turn is
// trying to accomplish.
type Intent string

const (
	// IntentOrderFood - customer is placing or amending an order
	IntentOrderFood Intent = "order_food"
	// IntentGetMenu - customer asked to see the menu
	IntentGetMenu Intent = "get_menu"
	// IntentQuestionAnswer - general question about the business
	IntentQuestionAnswer Intent = "question_answer"
	// IntentUnknown - classifier could not determine an intent
	IntentUnknown Intent = "unknown"
)

// ActionKind type - the closed set of things the orchestrator can decide to
// do for a turn. Actions are selected by the intent branch, never looked up
// by name from model output.
type ActionKind string

const (
	// ActionAskField - prompt for the next missing order field
	ActionAskField ActionKind = "ASK_FIELD"
	// ActionVerifyOrder - present the order summary for confirmation
	ActionVerifyOrder ActionKind = "VERIFY_ORDER"
	// ActionSubmitOrder - persist the confirmed order
	ActionSubmitOrder ActionKind = "SUBMIT_ORDER"
	// ActionShowMenu - render the catalog
	ActionShowMenu ActionKind = "SHOW_MENU"
	// ActionAnswerQuestion - answer a general question via FAQ context
	ActionAnswerQuestion ActionKind = "ANSWER_QUESTION"
	// ActionAcknowledge - generic conversational acknowledgement
	ActionAcknowledge ActionKind = "ACKNOWLEDGE"
)

// Action is the typed decision for one turn. Field is set only for
// ActionAskField.
type Action struct {
	Kind  ActionKind
	Field SlotField
}
