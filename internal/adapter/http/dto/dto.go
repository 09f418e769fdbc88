package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TransferRequest is the request body for a P2P transfer.
// Amount accepts a JSON number or a decimal string.
type TransferRequest struct {
	RecipientEmail string          `json:"recipient_email" binding:"required,email,max=254"`
	Amount         decimal.Decimal `json:"amount"`
	Notes          string          `json:"notes" binding:"max=255"`
	Fingerprint    json.RawMessage `json:"fingerprint,omitempty"`
}

// WithdrawalRequest is the request body for a withdrawal.
type WithdrawalRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	Method        string          `json:"method" binding:"required,safe_id,max=32"`
	AccountNumber string          `json:"account_number" binding:"required,account_no"`
	AccountName   string          `json:"account_name" binding:"required,max=100"`
	Fingerprint   json.RawMessage `json:"fingerprint,omitempty"`
}

// WithdrawalStatusRequest is the admin request body for a withdrawal transition.
type WithdrawalStatusRequest struct {
	Status string  `json:"status" binding:"required,oneof=processing completed rejected"`
	Note   *string `json:"note,omitempty" binding:"omitempty,max=500"`
}

// TransactionResponse is the response body for an accepted transfer or withdrawal.
type TransactionResponse struct {
	Kind         string  `json:"kind"`
	TransferID   *string `json:"transfer_id,omitempty"`
	WithdrawalID *string `json:"withdrawal_id,omitempty"`
	NewBalance   string  `json:"new_balance"`
	RiskLevel    string  `json:"risk_level"`
	DelayMs      int64   `json:"delay_ms"`
}

// BalanceResponse is the response for the balance query.
type BalanceResponse struct {
	Balance string `json:"balance"`
}

// TransferResponse is a settled transfer as seen by either participant.
type TransferResponse struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Amount     string `json:"amount"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// WithdrawalResponse is the admin view of a withdrawal. The destination
// account number is never returned.
type WithdrawalResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Amount      string  `json:"amount"`
	Fee         string  `json:"fee"`
	NetAmount   string  `json:"net_amount"`
	Method      string  `json:"method"`
	AccountName string  `json:"account_name"`
	Status      string  `json:"status"`
	AdminNote   *string `json:"admin_note,omitempty"`
	CreatedAt   string  `json:"created_at"`
	ProcessedAt *string `json:"processed_at,omitempty"`
	CompletedAt *string `json:"completed_at,omitempty"`
	RejectedAt  *string `json:"rejected_at,omitempty"`
}

// PayoutDeliveryResponse is the admin view of one payout delivery.
type PayoutDeliveryResponse struct {
	ID          string  `json:"id"`
	EventType   string  `json:"event_type"`
	Status      string  `json:"status"`
	Attempt     int     `json:"attempt"`
	HTTPStatus  *int    `json:"http_status,omitempty"`
	LastError   *string `json:"last_error,omitempty"`
	NextRetryAt *string `json:"next_retry_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
