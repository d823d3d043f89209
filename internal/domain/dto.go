package domain

import (
	"time"

	"github.com/google/uuid"
)

// DTOs (Data Transfer Objects) - Domain layer request/response structures

type (
	// TurnRequest struct - Domain request DTO for one conversation turn.
	// Message is nil only for the very first turn, which triggers the greeting.
	TurnRequest struct {
		SessionID string
		Message   *string
	}

	// TurnResponse struct - Domain response DTO for one conversation turn
	TurnResponse struct {
		SessionID string
		Reply     string
		Intent    Intent
		State     OrderState
	}

	// OrderResponse struct - Domain response DTO for a submitted order
	OrderResponse struct {
		ID            *uuid.UUID          `json:"id,omitempty"`
		UserName      *string             `json:"user_name,omitempty"`
		UserPhone     *string             `json:"user_phone,omitempty"`
		UserEmail     *string             `json:"user_email,omitempty"`
		PaymentMethod *string             `json:"payment_method,omitempty"`
		OrderTotal    *float64            `json:"order_total,omitempty"`
		Lines         []OrderLineResponse `json:"lines,omitempty"`
		CreatedAt     *time.Time          `json:"created_at,omitempty"`
	}

	// OrderLineResponse struct - Domain response DTO for one order line
	OrderLineResponse struct {
		ItemName  *string  `json:"item_name,omitempty"`
		Quantity  *int     `json:"quantity,omitempty"`
		UnitPrice *float64 `json:"unit_price,omitempty"`
		LineTotal *float64 `json:"line_total,omitempty"`
	}

	// ModelInfo struct - metadata for one model exposed by the completion
	// collaborator
	ModelInfo struct {
		ID      string
		Object  string
		OwnedBy string
	}
)
