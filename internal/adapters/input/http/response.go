package http

import (
	"net/http"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Data not found"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

type (
	// TurnResponse struct - HTTP response DTO for one conversation turn
	TurnResponse struct {
		SessionID string `json:"session_id" mapstructure:"session_id"`
		Reply     string `json:"reply" mapstructure:"reply"`
		Intent    string `json:"intent,omitempty" mapstructure:"intent"`
		State     string `json:"state,omitempty" mapstructure:"state"`
	}

	// MenuResponse struct - HTTP response DTO for the rendered catalog
	MenuResponse struct {
		Menu string `json:"menu" mapstructure:"menu"`
	}
)
