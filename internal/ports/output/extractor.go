package output

import (
	"context"

	"brewpub-assistant/internal/domain"
)

// Extractor interface - Output port
// Defines what the dialogue core needs from the natural-language
// classification/extraction collaborator. Every method takes the ordered
// conversation context and the latest customer text. Field extractors are
// stateless and work on the latest text alone; the history is supplied so
// context-dependent calls (intent classification, small talk) can replay it,
// and implementations are free to ignore it elsewhere. The boolean result
// distinguishes "nothing found in this text" (normal, drive the ask-again
// flow) from a value. A non-nil error means the collaborator itself failed;
// callers retry once and then degrade the call to not-found for the turn.
// Implementations must treat malformed structured output as not-found,
// never as an error that could crash a turn.
type Extractor interface {
	// ExtractName pulls the customer's name out of free text.
	ExtractName(ctx context.Context, history []domain.ChatMessage, userText string) (string, bool, error)

	// ExtractPhone pulls a phone number in canonical NNN-NNN-NNNN form.
	// The sentinel 000-000-0000 is reported as not found.
	ExtractPhone(ctx context.Context, history []domain.ChatMessage, userText string) (string, bool, error)

	// ExtractEmail pulls an email address out of free text.
	ExtractEmail(ctx context.Context, history []domain.ChatMessage, userText string) (string, bool, error)

	// ExtractPaymentMethod pulls one of cash/card/both out of free text.
	ExtractPaymentMethod(ctx context.Context, history []domain.ChatMessage, userText string) (domain.PaymentMethod, bool, error)

	// ExtractOrderItems pulls raw item name -> quantity pairs out of free
	// text. The known slots snapshot lets the collaborator avoid re-emitting
	// items the order already carries.
	ExtractOrderItems(ctx context.Context, history []domain.ChatMessage, userText string, known domain.OrderSlots) (map[string]int, bool, error)

	// ExtractConfirmation reads a yes/no answer to the verification summary.
	ExtractConfirmation(ctx context.Context, history []domain.ChatMessage, userText string) (bool, bool, error)

	// ClassifyIntent assigns one of the closed intent labels to the turn.
	ClassifyIntent(ctx context.Context, history []domain.ChatMessage, userText string) (domain.Intent, error)

	// MatchMenuItem resolves a raw item name against the catalog, correcting
	// near-spelling to the canonical name. Not found means the item is not
	// on the menu and must be dropped from the order.
	MatchMenuItem(ctx context.Context, rawName string, menu domain.Menu) (string, bool, error)

	// ClassifyQuestion picks the FAQ category a general question belongs to,
	// or not found when no category matches.
	ClassifyQuestion(ctx context.Context, userText string, categories []string) (string, bool, error)
}
