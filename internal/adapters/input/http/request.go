package http

type (
	// TurnRequest struct - HTTP request DTO
	// Message is omitted on the first turn of a session to request the
	// greeting; every later turn must carry it.
	TurnRequest struct {
		SessionID string  `json:"session_id" validate:"required,max=100" form:"session_id" query:"session_id"`
		Message   *string `json:"message" validate:"omitempty,max=2000" form:"message" query:"message"`
	}
)
