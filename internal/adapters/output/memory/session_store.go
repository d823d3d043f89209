package memory

import (
	"sync"
	"time"

	"brewpub-assistant/internal/domain"
	"brewpub-assistant/internal/ports/output"
)

// Compile-time check to ensure MemorySessionStore implements SessionStore interface
var _ output.SessionStore = (*MemorySessionStore)(nil)

// MemorySessionStore struct - Output adapter for in-memory session storage
// Uses sync.Map for thread-safe concurrent access to conversation sessions.
// Stores session configuration for timeout and history capacity to be used
// when creating new sessions.
type MemorySessionStore struct {
	sessions        sync.Map
	timeout         time.Duration
	historyCapacity int
}

// NewMemorySessionStore creates a new in-memory session store with
// configurable session parameters.
// timeout: Duration after which sessions expire
// historyCapacity: Maximum chat turns retained before summarization-eviction
func NewMemorySessionStore(timeout time.Duration, historyCapacity int) *MemorySessionStore {
	return &MemorySessionStore{
		timeout:         timeout,
		historyCapacity: historyCapacity,
	}
}

// GetTimeout returns the configured session timeout duration.
func (m *MemorySessionStore) GetTimeout() time.Duration {
	return m.timeout
}

// GetHistoryCapacity returns the configured chat history capacity.
func (m *MemorySessionStore) GetHistoryCapacity() int {
	return m.historyCapacity
}

// GetSession retrieves a conversation session by session ID.
// Returns the session if found and not expired, or nil if the session
// does not exist or has expired. Expired sessions are deleted (lazy cleanup).
// LastAccessTime is updated for valid sessions.
func (m *MemorySessionStore) GetSession(sessionID string) (*domain.ConversationSession, error) {
	value, exists := m.sessions.Load(sessionID)
	if !exists {
		return nil, nil
	}

	session, ok := value.(*domain.ConversationSession)
	if !ok {
		// If data is malformed, delete and return nil
		m.sessions.Delete(sessionID)
		return nil, nil
	}

	// Check if session is expired
	if session.IsExpired() {
		// Lazy cleanup: delete expired session
		m.sessions.Delete(sessionID)
		return nil, nil
	}

	// Update LastAccessTime for valid session
	session.LastAccessTime = time.Now()

	return session, nil
}

// UpdateSession creates or updates a conversation session.
// The session's LastAccessTime is updated to the current time before storing.
func (m *MemorySessionStore) UpdateSession(session *domain.ConversationSession) error {
	// Update LastAccessTime
	session.LastAccessTime = time.Now()

	// Store session with session ID as key
	m.sessions.Store(session.SessionID, session)

	return nil
}

// DeleteSession removes a conversation session by session ID.
// This operation is idempotent - deleting a non-existent session does not return an error.
func (m *MemorySessionStore) DeleteSession(sessionID string) error {
	m.sessions.Delete(sessionID)
	return nil
}
