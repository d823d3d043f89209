package output

import (
	"context"

	"brewpub-assistant/internal/domain"
)

// MenuStore interface - Output port
// Read-only access to the catalog snapshot. The menu is owned and updated by
// the persistence collaborator; this core only reads it.
type MenuStore interface {
	// GetMenu loads the full catalog grouped into the drink section and the
	// ordered food sections.
	GetMenu(ctx context.Context) (domain.Menu, error)
}

// FAQStore interface - Output port
// Access to the business-information documents used when answering general
// questions.
type FAQStore interface {
	// Categories returns the set of FAQ category names, used to classify
	// incoming questions.
	Categories(ctx context.Context) ([]string, error)

	// ReadAll returns the content stored under one category, or empty when
	// the category holds nothing.
	ReadAll(ctx context.Context, category string) (string, error)
}

// OrderRepository interface - Output port
// Defines what the application needs from order persistence. No update or
// delete is required by the dialogue core.
type OrderRepository interface {
	// InsertOrder persists one confirmed order with its lines.
	InsertOrder(ctx context.Context, order *domain.Order) error

	// GetOrder fetches a submitted order by ID.
	GetOrder(ctx context.Context, id string) (*domain.OrderResponse, error)
}
