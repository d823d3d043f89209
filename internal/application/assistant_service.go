package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brewpub-assistant/internal/domain"
	"brewpub-assistant/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Defaults applied when the config layer passes zero values
const (
	defaultSessionTimeout  = 30 * time.Minute
	defaultHistoryCapacity = 6
	defaultCallTimeout     = 30 * time.Second
	defaultSummaryWords    = 150
)

// Fixed fallbacks - a turn always produces a reply, even when the phrasing
// collaborator is down
const (
	fallbackGreeting    = "Welcome to the brewpub! How can I help you today?"
	fallbackSmallTalk   = "Got it! Is there anything else I can help you with?"
	fallbackMenuMessage = "Sorry, I can't pull up the menu right now. Please try again in a moment."
	confirmPrompt       = "Is everything correct? (yes/no)"
	reconfirmPrompt     = "Sorry, I didn't catch that. Is the order correct? (yes/no)"
	denialReply         = "No problem, nothing has been placed. What would you like to change?"
	submitFailedReply   = "I'm sorry, your order could not be placed just now. Say yes to try again, or no to make changes."
)

// fieldPrompts - the next-missing-field prompt per slot
var fieldPrompts = map[domain.SlotField]string{
	domain.SlotOrderItems:    "What would you like to order?",
	domain.SlotUserName:      "What is your name?",
	domain.SlotUserPhone:     "What is a good phone number for your order?",
	domain.SlotUserEmail:     "What email should we send your receipt to?",
	domain.SlotPaymentMethod: "Will you be paying with cash, card, or both?",
}

// AssistantConfig struct - tunables for the dialogue orchestrator
type AssistantConfig struct {
	SessionTimeout  time.Duration
	HistoryCapacity int
	CallTimeout     time.Duration // per collaborator call
	BusinessName    string
	ContactPhone    string
	SummaryWords    int
}

// AssistantService struct - Application service implementing the dialogue
// orchestrator: it consumes a customer turn, drives extraction, updates the
// order slots, and decides the next prompt or hands off to verification and
// submission.
type AssistantService struct {
	extractor  output.Extractor
	responder  output.Responder
	sessions   output.SessionStore
	menuStore  output.MenuStore
	faqStore   output.FAQStore
	orders     output.OrderRepository
	normalizer *ItemNormalizer
	config     AssistantConfig
}

// NewAssistantService func - Creates new assistant service
func NewAssistantService(
	extractor output.Extractor,
	responder output.Responder,
	sessions output.SessionStore,
	menuStore output.MenuStore,
	faqStore output.FAQStore,
	orders output.OrderRepository,
	config AssistantConfig,
) *AssistantService {
	if config.SessionTimeout <= 0 {
		config.SessionTimeout = defaultSessionTimeout
	}
	if config.HistoryCapacity <= 0 {
		config.HistoryCapacity = defaultHistoryCapacity
	}
	if config.CallTimeout <= 0 {
		config.CallTimeout = defaultCallTimeout
	}
	if config.SummaryWords <= 0 {
		config.SummaryWords = defaultSummaryWords
	}
	return &AssistantService{
		extractor:  extractor,
		responder:  responder,
		sessions:   sessions,
		menuStore:  menuStore,
		faqStore:   faqStore,
		orders:     orders,
		normalizer: NewItemNormalizer(extractor),
		config:     config,
	}
}

// HandleTurn func - Use case: process one conversation turn.
// Turns for one session are processed strictly sequentially by the caller;
// collaborator failures degrade to not-found so the turn still replies.
func (s *AssistantService) HandleTurn(ctx context.Context, request domain.TurnRequest) (*domain.TurnResponse, error) {
	if request.SessionID == "" {
		return nil, fmt.Errorf("%w: missing session id", domain.ErrInvalidRequest)
	}

	sess, err := s.sessions.GetSession(request.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if sess == nil {
		sess = domain.NewConversationSession(request.SessionID, s.config.SessionTimeout, s.config.HistoryCapacity)
	}
	sess.History.SetSummarizer(s.summarizer(ctx))

	// First contact: emit the greeting and nothing else.
	if sess.History.Empty() {
		reply := s.greet(ctx)
		sess.History.Append(domain.ChatRoleAssistant, reply)
		if err := s.sessions.UpdateSession(sess); err != nil {
			return nil, fmt.Errorf("failed to store session: %w", err)
		}
		return s.turnResponse(sess, reply), nil
	}

	if request.Message == nil || strings.TrimSpace(*request.Message) == "" {
		return nil, fmt.Errorf("%w: empty message on an active conversation", domain.ErrInvalidRequest)
	}
	userText := strings.TrimSpace(*request.Message)
	sess.History.Append(domain.ChatRoleUser, userText)

	var reply string
	if sess.AwaitingAnswer {
		// The verification summary is on the table; a yes/no answer takes
		// precedence over the normal extraction pipeline.
		reply = s.handleConfirmation(ctx, sess, userText)
	} else {
		s.runExtractors(ctx, sess, userText)
		sess.Intent = s.classifyIntent(ctx, sess, userText)
		action := s.decideAction(sess)
		reply = s.executeAction(ctx, sess, action, userText)
	}

	sess.History.Append(domain.ChatRoleAssistant, reply)
	if err := s.sessions.UpdateSession(sess); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	return s.turnResponse(sess, reply), nil
}

// ResetSession func - Use case: abandon a conversation
func (s *AssistantService) ResetSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: missing session id", domain.ErrInvalidRequest)
	}
	return s.sessions.DeleteSession(sessionID)
}

// Menu func - Use case: render the catalog
func (s *AssistantService) Menu(ctx context.Context) (string, error) {
	cctx, cancel := s.callContext(ctx)
	defer cancel()
	menu, err := s.menuStore.GetMenu(cctx)
	if err != nil {
		logrus.Errorln(err)
		return "", err
	}
	return menu.Render(), nil
}

// Order func - Use case: fetch a submitted order
func (s *AssistantService) Order(ctx context.Context, id string) (*domain.OrderResponse, error) {
	cctx, cancel := s.callContext(ctx)
	defer cancel()
	return s.orders.GetOrder(cctx, id)
}

// runExtractors runs the ordered field extractor pipeline. All extractors
// run every turn; each hit updates its slot immediately. Failed calls have
// already been retried once by the adapter and degrade to not-found here.
func (s *AssistantService) runExtractors(ctx context.Context, sess *domain.ConversationSession, userText string) {
	history := sess.History.Turns()

	if raw, found := s.extractItems(ctx, history, userText, sess.Order); found {
		s.normalizeAndSet(ctx, sess, raw)
	}

	if email, found := s.degrade1(s.extractor.ExtractEmail)(ctx, history, userText); found {
		sess.SetUserEmail(email)
	}
	if name, found := s.degrade1(s.extractor.ExtractName)(ctx, history, userText); found {
		sess.SetUserName(name)
	}
	if phone, found := s.degrade1(s.extractor.ExtractPhone)(ctx, history, userText); found {
		if err := sess.SetUserPhone(phone); err != nil {
			// Sentinel leaked through the adapter filter; never accept it.
			logrus.Warnf("Rejected phone value for session %s: %v", sess.SessionID, err)
		}
	}

	cctx, cancel := s.callContext(ctx)
	method, found, err := s.extractor.ExtractPaymentMethod(cctx, history, userText)
	cancel()
	if err != nil {
		logrus.Warnf("Payment method extraction degraded to not-found: %v", err)
	} else if found {
		sess.SetPaymentMethod(method)
	}
}

// degrade1 wraps a string extractor call with the per-call timeout and the
// degrade-to-not-found policy.
func (s *AssistantService) degrade1(
	call func(context.Context, []domain.ChatMessage, string) (string, bool, error),
) func(context.Context, []domain.ChatMessage, string) (string, bool) {
	return func(ctx context.Context, history []domain.ChatMessage, userText string) (string, bool) {
		cctx, cancel := s.callContext(ctx)
		defer cancel()
		value, found, err := call(cctx, history, userText)
		if err != nil {
			logrus.Warnf("Extraction degraded to not-found: %v", err)
			return "", false
		}
		return value, found
	}
}

func (s *AssistantService) extractItems(ctx context.Context, history []domain.ChatMessage, userText string, known domain.OrderSlots) (map[string]int, bool) {
	cctx, cancel := s.callContext(ctx)
	defer cancel()
	raw, found, err := s.extractor.ExtractOrderItems(cctx, history, userText, known)
	if err != nil {
		logrus.Warnf("Order item extraction degraded to not-found: %v", err)
		return nil, false
	}
	return raw, found && len(raw) > 0
}

// normalizeAndSet reconciles raw items against the catalog and installs the
// surviving lines. A catalog read failure skips the update for this turn
// rather than failing it.
func (s *AssistantService) normalizeAndSet(ctx context.Context, sess *domain.ConversationSession, raw map[string]int) {
	cctx, cancel := s.callContext(ctx)
	menu, err := s.menuStore.GetMenu(cctx)
	cancel()
	if err != nil {
		logrus.Errorf("Catalog unavailable, keeping previous order items: %v", err)
		return
	}
	normalized := s.normalizer.Normalize(ctx, menu, raw)
	if len(normalized) == 0 {
		logrus.Infof("No extracted items survived menu normalization for session %s", sess.SessionID)
		return
	}
	sess.SetOrderItems(normalized)
}

func (s *AssistantService) classifyIntent(ctx context.Context, sess *domain.ConversationSession, userText string) domain.Intent {
	cctx, cancel := s.callContext(ctx)
	defer cancel()
	intent, err := s.extractor.ClassifyIntent(cctx, sess.History.Turns(), userText)
	if err != nil {
		logrus.Warnf("Intent classification degraded to unknown: %v", err)
		return domain.IntentUnknown
	}
	return intent
}

// decideAction maps the session state and intent onto the closed action set.
func (s *AssistantService) decideAction(sess *domain.ConversationSession) domain.Action {
	switch sess.Intent {
	case domain.IntentOrderFood:
		if sess.OrderComplete {
			return domain.Action{Kind: domain.ActionVerifyOrder}
		}
		missing := sess.Order.MissingFields()
		return domain.Action{Kind: domain.ActionAskField, Field: missing[0]}
	case domain.IntentGetMenu:
		return domain.Action{Kind: domain.ActionShowMenu}
	case domain.IntentQuestionAnswer:
		return domain.Action{Kind: domain.ActionAnswerQuestion}
	default:
		return domain.Action{Kind: domain.ActionAcknowledge}
	}
}

func (s *AssistantService) executeAction(ctx context.Context, sess *domain.ConversationSession, action domain.Action, userText string) string {
	switch action.Kind {
	case domain.ActionAskField:
		return fieldPrompts[action.Field]

	case domain.ActionVerifyOrder:
		return s.presentSummary(sess)

	case domain.ActionSubmitOrder:
		return s.submitOrder(ctx, sess)

	case domain.ActionShowMenu:
		rendered, err := s.Menu(ctx)
		if err != nil {
			return fallbackMenuMessage
		}
		return "Here is our menu:\n" + rendered

	case domain.ActionAnswerQuestion:
		return s.answerQuestion(ctx, userText)

	default:
		return s.acknowledge(ctx, sess, userText)
	}
}

// presentSummary recomputes the order total from the line totals and puts the
// verification summary on the table.
func (s *AssistantService) presentSummary(sess *domain.ConversationSession) string {
	total := sess.Order.Total()
	sess.Order.OrderTotal = &total
	sess.AwaitingAnswer = true
	return sess.Order.Summary() + "\n" + confirmPrompt
}

// handleConfirmation resolves the customer's answer to the verification
// summary: confirm submits, deny routes back to slot filling, anything else
// re-asks.
func (s *AssistantService) handleConfirmation(ctx context.Context, sess *domain.ConversationSession, userText string) string {
	cctx, cancel := s.callContext(ctx)
	confirmed, found, err := s.extractor.ExtractConfirmation(cctx, sess.History.Turns(), userText)
	cancel()
	if err != nil {
		logrus.Warnf("Confirmation extraction degraded to not-found: %v", err)
		found = false
	}
	if !found {
		return reconfirmPrompt
	}

	if !confirmed {
		// Back to PartiallyFilled: keep the slots so the customer corrects a
		// single field instead of starting over.
		sess.AwaitingAnswer = false
		sess.OrderVerified = false
		return denialReply
	}

	sess.OrderVerified = true
	return s.executeAction(ctx, sess, domain.Action{Kind: domain.ActionSubmitOrder}, userText)
}

// submitOrder packages the verified slots and hands them to persistence.
// Failure is surfaced conversationally and the order stays verified so a
// repeated confirmation retries the submission.
func (s *AssistantService) submitOrder(ctx context.Context, sess *domain.ConversationSession) string {
	order, err := domain.NewOrderFromSlots(&sess.Order)
	if err != nil {
		logrus.Errorf("Refusing submission for session %s: %v", sess.SessionID, err)
		sess.AwaitingAnswer = false
		sess.OrderVerified = false
		missing := sess.Order.MissingFields()
		if len(missing) > 0 {
			return fieldPrompts[missing[0]]
		}
		return fallbackSmallTalk
	}

	cctx, cancel := s.callContext(ctx)
	err = s.orders.InsertOrder(cctx, order)
	cancel()
	if err != nil {
		logrus.Errorf("Order submission failed for session %s: %v", sess.SessionID, err)
		return submitFailedReply
	}

	total := *order.OrderTotal
	sess.ResetOrder()
	return fmt.Sprintf("Thank you! Your order has been placed. Your total is $%.2f. See you soon!", total)
}

// answerQuestion classifies a general question against the FAQ categories and
// answers with category-scoped context, or falls back to the contact message.
func (s *AssistantService) answerQuestion(ctx context.Context, question string) string {
	cctx, cancel := s.callContext(ctx)
	categories, err := s.faqStore.Categories(cctx)
	cancel()
	if err != nil {
		logrus.Errorf("FAQ categories unavailable: %v", err)
		return s.contactFallback(ctx, question)
	}

	cctx, cancel = s.callContext(ctx)
	category, found, err := s.extractor.ClassifyQuestion(cctx, question, categories)
	cancel()
	if err != nil {
		logrus.Warnf("Question classification degraded to not-found: %v", err)
		found = false
	}
	if !found {
		return s.contactFallback(ctx, question)
	}

	cctx, cancel = s.callContext(ctx)
	faqContext, err := s.faqStore.ReadAll(cctx, category)
	cancel()
	if err != nil || faqContext == "" {
		if err != nil {
			logrus.Errorf("FAQ read failed for category %q: %v", category, err)
		}
		return s.contactFallback(ctx, question)
	}

	cctx, cancel = s.callContext(ctx)
	answer, err := s.responder.AnswerWithContext(cctx, question, faqContext)
	cancel()
	if err != nil {
		logrus.Warnf("Grounded answer generation failed: %v", err)
		return s.contactFallback(ctx, question)
	}
	return answer
}

func (s *AssistantService) contactFallback(ctx context.Context, question string) string {
	cctx, cancel := s.callContext(ctx)
	defer cancel()
	answer, err := s.responder.AnswerWithoutContext(cctx, question, s.config.ContactPhone)
	if err != nil {
		logrus.Warnf("Fallback answer generation failed: %v", err)
		return fmt.Sprintf("I'm not sure about that one. Please call us at %s or reach out on social media and we'll help you out.", s.config.ContactPhone)
	}
	return answer
}

// acknowledge keeps the conversation going when no intent was determined,
// nudging toward the next missing field while an order is in progress.
func (s *AssistantService) acknowledge(ctx context.Context, sess *domain.ConversationSession, userText string) string {
	cctx, cancel := s.callContext(ctx)
	reply, err := s.responder.SmallTalk(cctx, sess.History.Turns(), userText)
	cancel()
	if err != nil {
		logrus.Warnf("Small talk generation failed, using fallback: %v", err)
		reply = fallbackSmallTalk
	}
	if sess.State() == domain.OrderStatePartiallyFilled {
		missing := sess.Order.MissingFields()
		if len(missing) > 0 {
			reply = reply + " " + fieldPrompts[missing[0]]
		}
	}
	return reply
}

func (s *AssistantService) greet(ctx context.Context) string {
	cctx, cancel := s.callContext(ctx)
	defer cancel()
	greeting, err := s.responder.Greeting(cctx)
	if err != nil {
		logrus.Warnf("Greeting generation failed, using fallback: %v", err)
		if s.config.BusinessName != "" {
			return fmt.Sprintf("Welcome to %s! How can I help you today?", s.config.BusinessName)
		}
		return fallbackGreeting
	}
	return greeting
}

// summarizer builds the eviction summarization callback for this turn's
// context. Summarization failures surface as the history's fallback summary.
func (s *AssistantService) summarizer(ctx context.Context) domain.Summarizer {
	return func(turns []domain.ChatMessage) (string, error) {
		cctx, cancel := s.callContext(ctx)
		defer cancel()
		summary, err := s.responder.Summarize(cctx, turns, s.config.SummaryWords)
		if err != nil {
			logrus.Warnf("History summarization failed, recording fallback summary: %v", err)
			return "", err
		}
		return summary, nil
	}
}

func (s *AssistantService) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.config.CallTimeout)
}

func (s *AssistantService) turnResponse(sess *domain.ConversationSession, reply string) *domain.TurnResponse {
	return &domain.TurnResponse{
		SessionID: sess.SessionID,
		Reply:     reply,
		Intent:    sess.Intent,
		State:     sess.State(),
	}
}
