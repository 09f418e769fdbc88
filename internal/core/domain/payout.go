package domain

import (
	"time"

	"github.com/google/uuid"
)

// PayoutDeliveryStatus represents the delivery state of a payout event.
type PayoutDeliveryStatus string

const (
	PayoutDeliveryPending   PayoutDeliveryStatus = "PENDING"
	PayoutDeliveryDelivered PayoutDeliveryStatus = "DELIVERED"
	PayoutDeliveryFailed    PayoutDeliveryStatus = "FAILED"
)

// PayoutDelivery tracks one payout event across its delivery attempts.
// The payload itself is not stored because it carries the unsealed account number.
type PayoutDelivery struct {
	ID           uuid.UUID            `json:"id"`
	WithdrawalID uuid.UUID            `json:"withdrawal_id"`
	EventType    string               `json:"event_type"`
	WebhookURL   string               `json:"webhook_url"`
	HTTPStatus   *int                 `json:"http_status"`
	Attempt      int                  `json:"attempt"`
	Status       PayoutDeliveryStatus `json:"status"`
	NextRetryAt  *time.Time           `json:"next_retry_at"`
	LastError    *string              `json:"last_error"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}
