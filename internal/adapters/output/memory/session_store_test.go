package memory

import (
	"testing"
	"time"

	"brewpub-assistant/internal/domain"
)

// Default test configuration values
const (
	testTimeout         = 30 * time.Minute
	testHistoryCapacity = 6
)

// TestNewMemorySessionStoreStoresConfiguration tests that the store keeps its
// timeout and history capacity configuration.
func TestNewMemorySessionStoreStoresConfiguration(t *testing.T) {
	timeout := 45 * time.Minute
	capacity := 12

	store := NewMemorySessionStore(timeout, capacity)

	if store == nil {
		t.Fatal("expected NewMemorySessionStore to return non-nil store")
	}
	if store.GetTimeout() != timeout {
		t.Errorf("expected timeout %v, got %v", timeout, store.GetTimeout())
	}
	if store.GetHistoryCapacity() != capacity {
		t.Errorf("expected history capacity %d, got %d", capacity, store.GetHistoryCapacity())
	}
}

// TestGetSessionReturnsNilForUnknownSession tests the miss path.
func TestGetSessionReturnsNilForUnknownSession(t *testing.T) {
	store := NewMemorySessionStore(testTimeout, testHistoryCapacity)

	session, err := store.GetSession("never-stored")
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if session != nil {
		t.Error("expected nil for an unknown session")
	}
}

// TestUpdateAndGetSessionRoundTrip tests basic store and retrieve.
func TestUpdateAndGetSessionRoundTrip(t *testing.T) {
	store := NewMemorySessionStore(testTimeout, testHistoryCapacity)
	session := domain.NewConversationSession("s1", store.GetTimeout(), store.GetHistoryCapacity())
	session.SetUserName("Dean")

	if err := store.UpdateSession(session); err != nil {
		t.Fatalf("expected no error on UpdateSession, got %v", err)
	}

	retrieved, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("expected no error on GetSession, got %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected the stored session back")
	}
	if retrieved.Order.UserName == nil || *retrieved.Order.UserName != "Dean" {
		t.Error("expected the session state to survive the round trip")
	}
}

// TestGetSessionReturnsNilForExpiredSession tests lazy expiry cleanup.
func TestGetSessionReturnsNilForExpiredSession(t *testing.T) {
	store := NewMemorySessionStore(5*time.Minute, testHistoryCapacity)
	session := domain.NewConversationSession("s1", store.GetTimeout(), store.GetHistoryCapacity())

	// Manually set LastAccessTime to simulate an expired session.
	session.LastAccessTime = time.Now().Add(-6 * time.Minute)

	// Store directly in sync.Map to bypass UpdateSession's LastAccessTime update
	store.sessions.Store("s1", session)

	retrieved, err := store.GetSession("s1")
	if err != nil {
		t.Errorf("expected no error on GetSession, got %v", err)
	}
	if retrieved != nil {
		t.Error("expected nil for an expired session")
	}

	// The expired entry is gone; a second lookup also misses.
	if _, exists := store.sessions.Load("s1"); exists {
		t.Error("expected the expired session to be deleted lazily")
	}
}

// TestGetSessionRefreshesLastAccessTime tests the inactivity clock reset.
func TestGetSessionRefreshesLastAccessTime(t *testing.T) {
	store := NewMemorySessionStore(testTimeout, testHistoryCapacity)
	session := domain.NewConversationSession("s1", store.GetTimeout(), store.GetHistoryCapacity())
	stale := time.Now().Add(-10 * time.Minute)
	session.LastAccessTime = stale
	store.sessions.Store("s1", session)

	retrieved, err := store.GetSession("s1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !retrieved.LastAccessTime.After(stale) {
		t.Error("expected LastAccessTime to be refreshed on access")
	}
}

// TestDeleteSessionIsIdempotent tests that deleting twice is not an error.
func TestDeleteSessionIsIdempotent(t *testing.T) {
	store := NewMemorySessionStore(testTimeout, testHistoryCapacity)
	session := domain.NewConversationSession("s1", store.GetTimeout(), store.GetHistoryCapacity())
	if err := store.UpdateSession(session); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if err := store.DeleteSession("s1"); err != nil {
		t.Errorf("expected no error on first delete, got %v", err)
	}
	if err := store.DeleteSession("s1"); err != nil {
		t.Errorf("expected no error on repeated delete, got %v", err)
	}

	retrieved, _ := store.GetSession("s1")
	if retrieved != nil {
		t.Error("expected the session to be gone after delete")
	}
}
