package domain

// ChatRole represents the author of a conversation turn
type ChatRole string

const (
	// ChatRoleUser - turn written by the customer
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant - turn written by the assistant
	ChatRoleAssistant ChatRole = "assistant"
	// ChatRoleSystem - internal turn (slot audit entries, history summaries)
	ChatRoleSystem ChatRole = "system"
)

// ChatMessage represents a single conversation turn.
// Turns are immutable once appended; their order is replayed verbatim as
// context for extraction and classification calls.
type ChatMessage struct {
	Role    ChatRole `json:"role"`
	Content string   `json:"content"`
}

// Summarizer condenses a batch of evicted turns into one short summary.
// Implementations are fallible; ChatHistory falls back to a placeholder
// when summarization fails so evicted context is never dropped silently.
type Summarizer func(turns []ChatMessage) (string, error)

// FallbackSummary is recorded when the summarization collaborator fails.
// Earlier commitments already live in the order slots, so the marker only
// needs to make the gap visible in the transcript.
const FallbackSummary = "Previous chat summary: earlier turns were condensed but the summary is unavailable."

// evictionBatchSize is how many of the oldest turns are folded into one
// summary turn when the history exceeds its capacity.
const evictionBatchSize = 3

// ChatHistory is a bounded ordered log of conversation turns.
// When an append would leave the history over capacity, the three oldest
// turns are replaced by a single synthesized system summary turn.
// Not safe for concurrent use; each session is processed sequentially.
type ChatHistory struct {
	turns     []ChatMessage
	capacity  int
	summarize Summarizer
}

// NewChatHistory creates an empty history bounded to capacity turns.
func NewChatHistory(capacity int) *ChatHistory {
	if capacity < evictionBatchSize+1 {
		capacity = evictionBatchSize + 1
	}
	return &ChatHistory{
		turns:    make([]ChatMessage, 0, capacity),
		capacity: capacity,
	}
}

// SetSummarizer installs the summarization callback used on eviction.
// The orchestrator refreshes it each turn with the current request context.
func (h *ChatHistory) SetSummarizer(fn Summarizer) {
	h.summarize = fn
}

// Append adds a turn and enforces the capacity invariant.
// Returns true when an eviction-summarization happened.
func (h *ChatHistory) Append(role ChatRole, text string) bool {
	h.turns = append(h.turns, ChatMessage{Role: role, Content: text})
	if len(h.turns) <= h.capacity {
		return false
	}

	evicted := make([]ChatMessage, evictionBatchSize)
	copy(evicted, h.turns[:evictionBatchSize])
	h.turns = h.turns[evictionBatchSize:]

	summary := FallbackSummary
	if h.summarize != nil {
		if s, err := h.summarize(evicted); err == nil && s != "" {
			summary = "Previous chat summary: " + s
		}
	}
	h.turns = append([]ChatMessage{{Role: ChatRoleSystem, Content: summary}}, h.turns...)
	return true
}

// Len returns the number of retained turns.
func (h *ChatHistory) Len() int {
	return len(h.turns)
}

// Empty reports whether the conversation has started.
func (h *ChatHistory) Empty() bool {
	return len(h.turns) == 0
}

// Turns returns a copy of the ordered conversation turns.
func (h *ChatHistory) Turns() []ChatMessage {
	if len(h.turns) == 0 {
		return []ChatMessage{}
	}
	out := make([]ChatMessage, len(h.turns))
	copy(out, h.turns)
	return out
}

// Capacity returns the configured maximum length.
func (h *ChatHistory) Capacity() int {
	return h.capacity
}
