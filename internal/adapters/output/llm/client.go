package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"brewpub-assistant/configs"
	"brewpub-assistant/internal/domain"
	"brewpub-assistant/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time checks: one adapter serves both collaborator ports
var (
	_ output.Extractor = (*ClientAdapter)(nil)
	_ output.Responder = (*ClientAdapter)(nil)
)

// ClientAdapter struct - Output adapter for an OpenAI-compatible
// chat-completions API, serving both the extraction/classification port and
// the phrasing port. Prompt wording lives entirely here; the core depends
// only on the port contracts.
type ClientAdapter struct {
	httpClient  *http.Client
	baseURL     string
	configModel string
	timeout     time.Duration

	// Model caching
	cachedModel string
	modelMu     sync.RWMutex
}

// NewClientAdapter func - Creates new completion client adapter
func NewClientAdapter(config configs.LLM) (*ClientAdapter, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = "http://localhost:1234"
	}

	// Remove trailing slash if present
	baseURL = strings.TrimSuffix(baseURL, "/")

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &ClientAdapter{
		httpClient:  httpClient,
		baseURL:     baseURL,
		configModel: config.Model,
		timeout:     timeout,
	}

	logrus.Infof("Completion client adapter initialized with base URL: %s, timeout: %v", baseURL, timeout)

	return adapter, nil
}

// Retry configuration constants. A failed call is retried at most once and
// then the caller degrades the field to not-found for the turn.
const (
	maxAttempts = 2
	retryDelay  = 1 * time.Second
)

// notFoundMarker is what every extraction prompt instructs the model to emit
// when the requested value is absent from the text.
const notFoundMarker = "None"

var phonePattern = regexp.MustCompile(`^\d{3}-\d{3}-\d{4}$`)

// doWithRetry executes an operation, retrying once on transient failure
func (a *ClientAdapter) doWithRetry(ctx context.Context, operation func() (*http.Response, error)) (*http.Response, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := operation()

		if err != nil {
			if !a.isTransientError(err, 0) {
				return nil, err
			}
			lastErr = err
			logrus.Warnf("Completion request attempt %d/%d failed: %v", attempt, maxAttempts, err)
		} else if resp != nil {
			if resp.StatusCode >= 200 && resp.StatusCode < 300 {
				return resp, nil
			}

			// Don't retry on 4xx client errors
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				body, _ := io.ReadAll(resp.Body)
				resp.Body.Close()
				return nil, fmt.Errorf("%w: status %d - %s", domain.ErrInvalidRequest, resp.StatusCode, string(body))
			}

			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			lastErr = fmt.Errorf("server error: status %d - %s", resp.StatusCode, string(body))
			logrus.Warnf("Completion request attempt %d/%d failed with status %d", attempt, maxAttempts, resp.StatusCode)
		}

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
			case <-time.After(retryDelay):
			}
		}
	}

	return nil, fmt.Errorf("%w: %v after %d attempts", domain.ErrExtractorUnavailable, lastErr, maxAttempts)
}

// isTransientError determines if an error or status code is transient and should be retried
func (a *ClientAdapter) isTransientError(err error, statusCode int) bool {
	if statusCode >= 500 && statusCode < 600 {
		return true
	}
	if statusCode >= 400 && statusCode < 500 {
		return false
	}
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	errMsg := strings.ToLower(err.Error())
	transientPatterns := []string{
		"connection refused",
		"connection reset",
		"no such host",
		"network is unreachable",
		"i/o timeout",
		"eof",
	}
	for _, pattern := range transientPatterns {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

// ListModels queries the /v1/models endpoint to retrieve available models
func (a *ClientAdapter) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	url := fmt.Sprintf("%s/v1/models", a.baseURL)

	resp, err := a.doWithRetry(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		return a.httpClient.Do(req)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer resp.Body.Close()

	var modelsResp modelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&modelsResp); err != nil {
		return nil, fmt.Errorf("failed to parse models response: %w", err)
	}

	models := make([]domain.ModelInfo, len(modelsResp.Data))
	for i, m := range modelsResp.Data {
		models[i] = domain.ModelInfo{
			ID:      m.ID,
			Object:  m.Object,
			OwnedBy: m.OwnedBy,
		}
	}

	return models, nil
}

// getModel returns the model to use for requests, with caching
func (a *ClientAdapter) getModel(ctx context.Context) (string, error) {
	a.modelMu.RLock()
	if a.cachedModel != "" {
		model := a.cachedModel
		a.modelMu.RUnlock()
		return model, nil
	}
	a.modelMu.RUnlock()

	a.modelMu.Lock()
	defer a.modelMu.Unlock()

	if a.cachedModel != "" {
		return a.cachedModel, nil
	}

	if a.configModel != "" {
		a.cachedModel = a.configModel
		logrus.Infof("Using configured model: %s", a.cachedModel)
		return a.cachedModel, nil
	}

	models, err := a.ListModels(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get models for selection: %w", err)
	}
	if len(models) == 0 {
		return "", fmt.Errorf("%w: no models available", domain.ErrExtractorUnavailable)
	}

	a.cachedModel = models[0].ID
	logrus.Infof("Selected first available model: %s", a.cachedModel)

	return a.cachedModel, nil
}

// chat sends one non-streaming completion request and returns the trimmed
// text of the first choice.
func (a *ClientAdapter) chat(ctx context.Context, messages []domain.ChatMessage, temperature float64, maxTokens int) (string, error) {
	model, err := a.getModel(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get model: %w", err)
	}

	reqBody := chatCompletionAPIRequest{
		Model:    model,
		Messages: make([]chatMessageAPI, len(messages)),
	}
	for i, msg := range messages {
		reqBody.Messages[i] = chatMessageAPI{
			Role:    string(msg.Role),
			Content: msg.Content,
		}
	}
	reqBody.Temperature = &temperature
	if maxTokens > 0 {
		reqBody.MaxTokens = &maxTokens
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/chat/completions", a.baseURL)

	resp, err := a.doWithRetry(ctx, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		return a.httpClient.Do(req)
	})
	if err != nil {
		return "", fmt.Errorf("failed to send chat completion request: %w", err)
	}
	defer resp.Body.Close()

	var apiResp chatCompletionAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to parse chat completion response: %w", err)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(apiResp.Choices[0].Message.Content), nil
}

// stripFences removes markdown code fences some models wrap structured
// output in.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ---------------------------------------------------------------------------
// Extractor port
// ---------------------------------------------------------------------------

// ExtractName pulls the customer's name out of free text
func (a *ClientAdapter) ExtractName(ctx context.Context, history []domain.ChatMessage, userText string) (string, bool, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a system whose purpose is to extract the name from a string of text. " +
			"You will output only the name of the user and nothing else. " +
			"If a name cannot be found, output " + notFoundMarker + "."},
		{Role: domain.ChatRoleUser, Content: "My name is Preston."},
		{Role: domain.ChatRoleAssistant, Content: "Preston"},
		{Role: domain.ChatRoleUser, Content: "Hi, my name is Sandra, but you can call me Sandy."},
		{Role: domain.ChatRoleAssistant, Content: "Sandy"},
		{Role: domain.ChatRoleUser, Content: "can I get a towel?"},
		{Role: domain.ChatRoleAssistant, Content: notFoundMarker},
		{Role: domain.ChatRoleUser, Content: "Hey, this is Dean. Can I place an order to be picked up?"},
		{Role: domain.ChatRoleAssistant, Content: "Dean"},
		{Role: domain.ChatRoleUser, Content: userText},
	}
	result, err := a.chat(ctx, messages, 0.5, 24)
	if err != nil {
		return "", false, err
	}
	if result == notFoundMarker || result == "" {
		return "", false, nil
	}
	return result, true, nil
}

// ExtractPhone pulls a phone number in canonical NNN-NNN-NNNN form. The
// service signals absence with the 000-000-0000 sentinel; that and anything
// off-format is reported as not found.
func (a *ClientAdapter) ExtractPhone(ctx context.Context, history []domain.ChatMessage, userText string) (string, bool, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a system whose purpose is to extract the phone number from a string of text. " +
			"You will output only the phone number of the user, formatted as NNN-NNN-NNNN, and nothing else. " +
			"If a phone number cannot be found, output " + domain.PhoneNotFoundSentinel + "."},
		{Role: domain.ChatRoleUser, Content: "My phone number is 123-456-7890."},
		{Role: domain.ChatRoleAssistant, Content: "123-456-7890"},
		{Role: domain.ChatRoleUser, Content: "hey, can you call me back at 8529517536?"},
		{Role: domain.ChatRoleAssistant, Content: "852-951-7536"},
		{Role: domain.ChatRoleUser, Content: "what time is it right now?"},
		{Role: domain.ChatRoleAssistant, Content: domain.PhoneNotFoundSentinel},
		{Role: domain.ChatRoleUser, Content: "If you have any questions, feel free to reach out to me at (555) 123-4567."},
		{Role: domain.ChatRoleAssistant, Content: "555-123-4567"},
		{Role: domain.ChatRoleUser, Content: userText},
	}
	result, err := a.chat(ctx, messages, 0.5, 24)
	if err != nil {
		return "", false, err
	}
	if result == domain.PhoneNotFoundSentinel || !phonePattern.MatchString(result) {
		return "", false, nil
	}
	return result, true, nil
}

// ExtractEmail pulls an email address out of free text
func (a *ClientAdapter) ExtractEmail(ctx context.Context, history []domain.ChatMessage, userText string) (string, bool, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a system whose purpose is to extract the email from a string of text. " +
			"You will output only the email of the user and nothing else. " +
			"If an email cannot be found, output " + notFoundMarker + "."},
		{Role: domain.ChatRoleUser, Content: "Could you please send me the details at john.doe@example.com?"},
		{Role: domain.ChatRoleAssistant, Content: "john.doe@example.com"},
		{Role: domain.ChatRoleUser, Content: "can you please send me your email? I want to forward you a message."},
		{Role: domain.ChatRoleAssistant, Content: notFoundMarker},
		{Role: domain.ChatRoleUser, Content: "The document is attached. My email is jane.roberts@gmail.com."},
		{Role: domain.ChatRoleAssistant, Content: "jane.roberts@gmail.com"},
		{Role: domain.ChatRoleUser, Content: userText},
	}
	result, err := a.chat(ctx, messages, 0.5, 48)
	if err != nil {
		return "", false, err
	}
	if result == notFoundMarker || !strings.Contains(result, "@") {
		return "", false, nil
	}
	return result, true, nil
}

// ExtractPaymentMethod pulls one of cash/card/both out of free text
func (a *ClientAdapter) ExtractPaymentMethod(ctx context.Context, history []domain.ChatMessage, userText string) (domain.PaymentMethod, bool, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a system whose purpose is to extract the payment method from a string of text. " +
			"You will output only the payment method of the user and nothing else. " +
			"If a payment method cannot be found, output " + notFoundMarker + ". " +
			"The three payment methods are:\nCash,\nCard,\nBoth"},
		{Role: domain.ChatRoleUser, Content: "I'll be paying with cash."},
		{Role: domain.ChatRoleAssistant, Content: "Cash"},
		{Role: domain.ChatRoleUser, Content: "can you put it on my credit card?"},
		{Role: domain.ChatRoleAssistant, Content: "Card"},
		{Role: domain.ChatRoleUser, Content: "Is it possible to split the bill between cash and card?"},
		{Role: domain.ChatRoleAssistant, Content: "Both"},
		{Role: domain.ChatRoleUser, Content: "I'll pay for it tomorrow."},
		{Role: domain.ChatRoleAssistant, Content: notFoundMarker},
		{Role: domain.ChatRoleUser, Content: userText},
	}
	result, err := a.chat(ctx, messages, 0.5, 8)
	if err != nil {
		return "", false, err
	}
	switch strings.ToLower(result) {
	case "cash":
		return domain.PaymentMethodCash, true, nil
	case "card":
		return domain.PaymentMethodCard, true, nil
	case "both":
		return domain.PaymentMethodBoth, true, nil
	default:
		return "", false, nil
	}
}

// orderItemsPayload is the structured shape the extraction prompt asks for
type orderItemsPayload map[string]struct {
	ItemQty int `json:"item_qty"`
}

// ExtractOrderItems pulls raw item name -> quantity pairs out of free text.
// Malformed structured output is degraded to not-found, never an error.
func (a *ClientAdapter) ExtractOrderItems(ctx context.Context, history []domain.ChatMessage, userText string, known domain.OrderSlots) (map[string]int, bool, error) {
	system := "You are a system whose purpose is to extract the items from an order and the quantity " +
		"of said items out of a string of text. You will output only the items and their " +
		"quantities and nothing else. The output will be in the following format:\n```\n" +
		"{\"ITEM NAME\": {\"item_qty\": INTEGER}, \"SECOND ITEM NAME\": {\"item_qty\": INTEGER}}" +
		"\n```\nIf no food or drink items are ordered, return " + notFoundMarker + "."
	if len(known.OrderItems) > 0 {
		names := make([]string, 0, len(known.OrderItems))
		for name := range known.OrderItems {
			names = append(names, name)
		}
		system += "\nThe order already contains: " + strings.Join(names, ", ") + ". Only output newly mentioned items."
	}

	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: system},
		{Role: domain.ChatRoleUser, Content: "I'd like to order 2 cheeseburgers and 3 fries."},
		{Role: domain.ChatRoleAssistant, Content: `{"cheeseburger": {"item_qty": 2}, "fries": {"item_qty": 3}}`},
		{Role: domain.ChatRoleUser, Content: "I'm done eating. Let's go to the movies and then head home."},
		{Role: domain.ChatRoleAssistant, Content: notFoundMarker},
		{Role: domain.ChatRoleUser, Content: "I'll take 10 beef tacos, and he'll have five chicken quesadillas."},
		{Role: domain.ChatRoleAssistant, Content: `{"beef taco": {"item_qty": 10}, "chicken quesadilla": {"item_qty": 5}}`},
		{Role: domain.ChatRoleUser, Content: userText},
	}
	result, err := a.chat(ctx, messages, 0.5, 512)
	if err != nil {
		return nil, false, err
	}
	if result == notFoundMarker {
		return nil, false, nil
	}

	var payload orderItemsPayload
	if err := json.Unmarshal([]byte(stripFences(result)), &payload); err != nil {
		// Unparseable item list; treat like nothing was found this turn.
		logrus.Warnf("%v: %v (payload %q)", domain.ErrMalformedExtraction, err, result)
		return nil, false, nil
	}
	if len(payload) == 0 {
		return nil, false, nil
	}

	items := make(map[string]int, len(payload))
	for name, entry := range payload {
		items[name] = entry.ItemQty
	}
	return items, true, nil
}

// ExtractConfirmation reads a yes/no answer to the verification summary
func (a *ClientAdapter) ExtractConfirmation(ctx context.Context, history []domain.ChatMessage, userText string) (bool, bool, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a system that determines whether the user confirmed or denied " +
			"the order summary they were just shown. Output only Yes, No, or " + notFoundMarker + "."},
		{Role: domain.ChatRoleUser, Content: "yes that's right"},
		{Role: domain.ChatRoleAssistant, Content: "Yes"},
		{Role: domain.ChatRoleUser, Content: "no, the phone number is wrong"},
		{Role: domain.ChatRoleAssistant, Content: "No"},
		{Role: domain.ChatRoleUser, Content: "what beers do you have on tap?"},
		{Role: domain.ChatRoleAssistant, Content: notFoundMarker},
		{Role: domain.ChatRoleUser, Content: userText},
	}
	result, err := a.chat(ctx, messages, 0.2, 4)
	if err != nil {
		return false, false, err
	}
	switch strings.ToLower(result) {
	case "yes":
		return true, true, nil
	case "no":
		return false, true, nil
	default:
		return false, false, nil
	}
}

// ClassifyIntent assigns one of the closed intent labels to the turn
func (a *ClientAdapter) ClassifyIntent(ctx context.Context, history []domain.ChatMessage, userText string) (domain.Intent, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a system that assigns an intent to the user's input. " +
			"You can only pick intents from the options. The intent options are as follows:\n```\n" +
			"order food,\nget menu,\nquestion answer,\n```\n" +
			"Only output the user's intent. If an intent can't be determined, output " + notFoundMarker + "."},
		{Role: domain.ChatRoleUser, Content: "how are you today?"},
		{Role: domain.ChatRoleAssistant, Content: notFoundMarker},
		{Role: domain.ChatRoleUser, Content: "can I take a look at the menu?"},
		{Role: domain.ChatRoleAssistant, Content: "get menu"},
		{Role: domain.ChatRoleUser, Content: "When are you guys open?"},
		{Role: domain.ChatRoleAssistant, Content: "question answer"},
		{Role: domain.ChatRoleUser, Content: "can I get a cheeseburger?"},
		{Role: domain.ChatRoleAssistant, Content: "order food"},
	}
	messages = append(messages, boundedHistory(history, 6)...)
	messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: userText})

	result, err := a.chat(ctx, messages, 0.5, 10)
	if err != nil {
		return domain.IntentUnknown, err
	}
	switch strings.ToLower(result) {
	case "order food":
		return domain.IntentOrderFood, nil
	case "get menu":
		return domain.IntentGetMenu, nil
	case "question answer":
		return domain.IntentQuestionAnswer, nil
	default:
		return domain.IntentUnknown, nil
	}
}

// MatchMenuItem resolves a raw item name against the catalog, correcting
// near-spelling to the canonical name
func (a *ClientAdapter) MatchMenuItem(ctx context.Context, rawName string, menu domain.Menu) (string, bool, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a system whose purpose is to cross check whether an item in the " +
			"order is on the provided menu. If the order item is not on the menu, output " + notFoundMarker + ". " +
			"If the order item is on the menu, correct its spelling and output the corrected order item. " +
			"If the order item is on the menu and doesn't need correction, output the order item.\nThe menu is:\n```\n" +
			menu.Render() + "\n```"},
		{Role: domain.ChatRoleUser, Content: "cheeseburger"},
		{Role: domain.ChatRoleAssistant, Content: "Classic Cheeseburger"},
		{Role: domain.ChatRoleUser, Content: "Cocacola"},
		{Role: domain.ChatRoleAssistant, Content: notFoundMarker},
		{Role: domain.ChatRoleUser, Content: "velvet lagr"},
		{Role: domain.ChatRoleAssistant, Content: "Velvet Lager"},
		{Role: domain.ChatRoleUser, Content: rawName},
	}
	result, err := a.chat(ctx, messages, 0.5, 20)
	if err != nil {
		return "", false, err
	}
	if result == notFoundMarker || result == "" {
		return "", false, nil
	}
	// Only accept corrections that actually exist in the catalog.
	if _, ok := menu.PriceOf(result); !ok {
		logrus.Warnf("Menu match returned %q which is not in the catalog", result)
		return "", false, nil
	}
	return result, true, nil
}

// ClassifyQuestion picks the FAQ category a general question belongs to
func (a *ClientAdapter) ClassifyQuestion(ctx context.Context, userText string, categories []string) (string, bool, error) {
	if len(categories) == 0 {
		return "", false, nil
	}
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: fmt.Sprintf("Determine the classification of the following question and "+
			"choose from %s or %s. Output only the classification.", strings.Join(categories, ", "), notFoundMarker)},
		{Role: domain.ChatRoleUser, Content: userText},
	}
	result, err := a.chat(ctx, messages, 0.2, 24)
	if err != nil {
		return "", false, err
	}
	for _, category := range categories {
		if strings.EqualFold(result, category) {
			return category, true, nil
		}
	}
	return "", false, nil
}

// ---------------------------------------------------------------------------
// Responder port
// ---------------------------------------------------------------------------

// Greeting produces the opening message of a conversation
func (a *ClientAdapter) Greeting(ctx context.Context) (string, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a helpful assistant that answers questions about the brewpub. " +
			"Give the user a short greeting and ask them how you can help them."},
	}
	return a.chat(ctx, messages, 0.5, 50)
}

// SmallTalk produces a brief response that keeps the conversation going
func (a *ClientAdapter) SmallTalk(ctx context.Context, history []domain.ChatMessage, userText string) (string, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "You are a nice assistant that responds to the user's input. " +
			"Just supply a brief response to the user to continue the conversation."},
	}
	messages = append(messages, boundedHistory(history, 4)...)
	messages = append(messages, domain.ChatMessage{Role: domain.ChatRoleUser, Content: userText})
	return a.chat(ctx, messages, 0.5, 50)
}

// AnswerWithContext answers a general question grounded on FAQ content
func (a *ClientAdapter) AnswerWithContext(ctx context.Context, question, faqContext string) (string, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "The following is information about the brewpub: " + faqContext + "."},
		{Role: domain.ChatRoleSystem, Content: "Return a concise answer to the user prompt."},
		{Role: domain.ChatRoleSystem, Content: "If the user prompt is not answered, ask the user to rephrase their " +
			"question or contact the brewpub directly."},
		{Role: domain.ChatRoleUser, Content: question},
	}
	return a.chat(ctx, messages, 0.5, 500)
}

// AnswerWithoutContext answers a general question with no matching FAQ category
func (a *ClientAdapter) AnswerWithoutContext(ctx context.Context, question, contactPhone string) (string, error) {
	messages := []domain.ChatMessage{
		{Role: domain.ChatRoleSystem, Content: "Inform the customer to please call the brewpub at " + contactPhone +
			" or reach out on social media/email to get an answer to their question."},
		{Role: domain.ChatRoleSystem, Content: "Return a concise answer to the user prompt."},
		{Role: domain.ChatRoleUser, Content: question},
	}
	return a.chat(ctx, messages, 0.5, 500)
}

// Summarize condenses evicted history turns into at most wordBudget words
func (a *ClientAdapter) Summarize(ctx context.Context, turns []domain.ChatMessage, wordBudget int) (string, error) {
	messages := make([]domain.ChatMessage, 0, len(turns)+1)
	messages = append(messages, turns...)
	messages = append(messages, domain.ChatMessage{
		Role:    domain.ChatRoleUser,
		Content: fmt.Sprintf("Summarize the main facts in the above chat in %d words or less.", wordBudget),
	})
	return a.chat(ctx, messages, 0.5, 1000)
}

// boundedHistory returns at most the last n turns of the conversation
func boundedHistory(history []domain.ChatMessage, n int) []domain.ChatMessage {
	if len(history) <= n {
		return history
	}
	return history[len(history)-n:]
}

// API request/response structures for the OpenAI-compatible API

// chatMessageAPI represents a message in the API request
type chatMessageAPI struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatCompletionAPIRequest represents the request body for chat completions
type chatCompletionAPIRequest struct {
	Model       string           `json:"model"`
	Messages    []chatMessageAPI `json:"messages"`
	Temperature *float64         `json:"temperature,omitempty"`
	MaxTokens   *int             `json:"max_tokens,omitempty"`
}

// chatCompletionAPIResponse represents the response from chat completions
type chatCompletionAPIResponse struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// modelsResponse represents the response from the /v1/models endpoint
type modelsResponse struct {
	Object string `json:"object"`
	Data   []struct {
		ID      string `json:"id"`
		Object  string `json:"object"`
		OwnedBy string `json:"owned_by"`
	} `json:"data"`
}
