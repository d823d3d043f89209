package domain

import "errors"

var (
	// ErrExtractorUnavailable indicates the extraction service is unavailable
	ErrExtractorUnavailable = errors.New("extraction service unavailable")

	// ErrExtractorTimeout indicates a request to the extraction service timed out
	ErrExtractorTimeout = errors.New("extraction service request timeout")

	// ErrInvalidRequest indicates an invalid request was made (4xx client errors)
	ErrInvalidRequest = errors.New("invalid request")

	// ErrMalformedExtraction indicates the extraction service returned
	// unparseable structured output; callers degrade it to "not found"
	ErrMalformedExtraction = errors.New("malformed extraction payload")

	// ErrOrderIncomplete indicates submission was attempted before every
	// required slot was filled
	ErrOrderIncomplete = errors.New("order is not complete")

	// ErrOrderNotPersisted indicates the persistence collaborator rejected a
	// confirmed order; never swallowed, always surfaced conversationally
	ErrOrderNotPersisted = errors.New("order could not be persisted")

	// ErrOrderNotFound indicates the requested order does not exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrSessionNotFound indicates the referenced conversation session does
	// not exist or has expired
	ErrSessionNotFound = errors.New("session not found")
)
