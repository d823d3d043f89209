package input

import (
	"context"

	"brewpub-assistant/internal/domain"
)

// AssistantService interface - Input port (use case)
// Defines what callers can do with the ordering assistant.
type AssistantService interface {
	// HandleTurn processes one conversation turn and returns the assistant's
	// reply. A nil message is allowed only for the very first turn of a
	// session and triggers the greeting.
	HandleTurn(ctx context.Context, request domain.TurnRequest) (*domain.TurnResponse, error)

	// ResetSession abandons a conversation and discards its state.
	ResetSession(ctx context.Context, sessionID string) error

	// Menu renders the current catalog as customer-facing text.
	Menu(ctx context.Context) (string, error)

	// Order fetches a submitted order by ID.
	Order(ctx context.Context, id string) (*domain.OrderResponse, error)
}
