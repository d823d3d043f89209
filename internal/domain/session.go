package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// ConversationSession owns the state of one ordering conversation: the
// bounded chat history, the partially-filled order slots, the current intent
// and the verification flags. The orchestrator exclusively owns and mutates
// one session per active conversation; nothing here is safe for concurrent
// mutation.
type ConversationSession struct {
	SessionID      string
	History        *ChatHistory
	Order          OrderSlots
	Intent         Intent
	OrderComplete  bool
	OrderVerified  bool
	AwaitingAnswer bool // verification summary shown, waiting for yes/no
	LastAccessTime time.Time
	timeout        time.Duration
}

// NewConversationSession creates a session with the configured inactivity
// timeout and chat history capacity.
func NewConversationSession(sessionID string, timeout time.Duration, historyCapacity int) *ConversationSession {
	return &ConversationSession{
		SessionID:      sessionID,
		History:        NewChatHistory(historyCapacity),
		Intent:         IntentUnknown,
		LastAccessTime: time.Now(),
		timeout:        timeout,
	}
}

// IsExpired checks if the session has exceeded the configured timeout.
func (s *ConversationSession) IsExpired() bool {
	return time.Since(s.LastAccessTime) > s.timeout
}

// State derives the slot-filling state machine position.
func (s *ConversationSession) State() OrderState {
	switch {
	case s.OrderVerified:
		return OrderStateVerified
	case s.OrderComplete:
		return OrderStateComplete
	case s.Order.Empty():
		return OrderStateEmpty
	default:
		return OrderStatePartiallyFilled
	}
}

// SetUserName fills the user_name slot.
func (s *ConversationSession) SetUserName(name string) {
	s.Order.UserName = &name
	s.recordSlotUpdate(SlotUserName, name)
}

// SetUserPhone fills the user_phone slot. The extractor's not-found sentinel
// is rejected so it can never leak into an order.
func (s *ConversationSession) SetUserPhone(phone string) error {
	if phone == PhoneNotFoundSentinel {
		return fmt.Errorf("%w: phone sentinel %s", ErrInvalidRequest, PhoneNotFoundSentinel)
	}
	s.Order.UserPhone = &phone
	s.recordSlotUpdate(SlotUserPhone, phone)
	return nil
}

// SetUserEmail fills the user_email slot.
func (s *ConversationSession) SetUserEmail(email string) {
	s.Order.UserEmail = &email
	s.recordSlotUpdate(SlotUserEmail, email)
}

// SetPaymentMethod fills the payment_method slot.
func (s *ConversationSession) SetPaymentMethod(method PaymentMethod) {
	s.Order.PaymentMethod = &method
	s.recordSlotUpdate(SlotPaymentMethod, string(method))
}

// SetOrderItems merges freshly normalized lines into the order_items slot.
// The extractor prompt only emits newly mentioned items, so a line whose item
// the order already carries adds to its quantity instead of replacing it.
func (s *ConversationSession) SetOrderItems(items map[string]OrderItemLine) {
	if len(items) == 0 {
		return
	}
	if s.Order.OrderItems == nil {
		s.Order.OrderItems = make(map[string]OrderItemLine, len(items))
	}
	for name, line := range items {
		if existing, ok := s.Order.OrderItems[name]; ok {
			line.Quantity += existing.Quantity
			line.LineTotal = float64(line.Quantity) * line.UnitPrice
		}
		s.Order.OrderItems[name] = line
	}
	names := make([]string, 0, len(s.Order.OrderItems))
	for name, line := range s.Order.OrderItems {
		names = append(names, fmt.Sprintf("%s x%d", name, line.Quantity))
	}
	sort.Strings(names)
	s.recordSlotUpdate(SlotOrderItems, strings.Join(names, ", "))
}

// recordSlotUpdate appends an audit turn to the transcript and re-evaluates
// completeness. Filling a slot invalidates any prior verification.
func (s *ConversationSession) recordSlotUpdate(field SlotField, rendered string) {
	s.History.Append(ChatRoleSystem, fmt.Sprintf("Order update: %s = %s", field, rendered))
	s.OrderVerified = false
	s.AwaitingAnswer = false
	s.Order.OrderTotal = nil
	s.OrderComplete = s.Order.Complete()
}

// ResetOrder clears the order slots and flags after submission or explicit
// cancellation. The chat history is retained; the conversation may continue.
func (s *ConversationSession) ResetOrder() {
	s.Order = OrderSlots{}
	s.OrderComplete = false
	s.OrderVerified = false
	s.AwaitingAnswer = false
}
