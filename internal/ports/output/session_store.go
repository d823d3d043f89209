package output

import "brewpub-assistant/internal/domain"

// SessionStore interface - Output port
// Defines what the application needs for managing conversation sessions.
// Sessions store the chat history and partially-filled order slots per
// conversation. Implementations must be thread-safe for concurrent access;
// individual sessions are only ever mutated by one turn at a time.
type SessionStore interface {
	// GetSession retrieves a conversation session by session ID.
	// Returns the session if found and not expired, or nil if the session
	// does not exist or has expired. Implementations should perform lazy
	// cleanup of expired sessions and update LastAccessTime for valid ones.
	// Returns an error only if there is a storage access failure.
	GetSession(sessionID string) (*domain.ConversationSession, error)

	// UpdateSession creates or updates a conversation session.
	// The session's LastAccessTime should be updated to the current time.
	// If a session with the same SessionID already exists, it is overwritten.
	UpdateSession(session *domain.ConversationSession) error

	// DeleteSession removes a conversation session by session ID.
	// Deleting a non-existent session is not an error.
	DeleteSession(sessionID string) error
}
