package output

import (
	"context"

	"brewpub-assistant/internal/domain"
)

// Responder interface - Output port
// Phrasing-only generation calls. These never carry order state decisions;
// the orchestrator falls back to fixed strings when a call fails so a
// customer-visible turn always produces a reply.
type Responder interface {
	// Greeting produces the opening message of a conversation.
	Greeting(ctx context.Context) (string, error)

	// SmallTalk produces a brief response that keeps the conversation going
	// when no intent could be determined.
	SmallTalk(ctx context.Context, history []domain.ChatMessage, userText string) (string, error)

	// AnswerWithContext answers a general question grounded on the given
	// FAQ category content.
	AnswerWithContext(ctx context.Context, question, faqContext string) (string, error)

	// AnswerWithoutContext answers a general question with no matching FAQ
	// category, directing the customer to the given contact phone.
	AnswerWithoutContext(ctx context.Context, question, contactPhone string) (string, error)

	// Summarize condenses evicted history turns into at most wordBudget words.
	Summarize(ctx context.Context, turns []domain.ChatMessage, wordBudget int) (string, error)
}
