package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalStatus is the lifecycle state of a withdrawal request.
type WithdrawalStatus string

const (
	WithdrawalStatusPending    WithdrawalStatus = "pending"
	WithdrawalStatusProcessing WithdrawalStatus = "processing"
	WithdrawalStatusCompleted  WithdrawalStatus = "completed"
	WithdrawalStatusRejected   WithdrawalStatus = "rejected"
)

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalStatusPending:    {WithdrawalStatusProcessing, WithdrawalStatusRejected},
	WithdrawalStatusProcessing: {WithdrawalStatusCompleted, WithdrawalStatusRejected},
}

// IsValid reports whether s is a known status.
func (s WithdrawalStatus) IsValid() bool {
	switch s {
	case WithdrawalStatusPending, WithdrawalStatusProcessing,
		WithdrawalStatusCompleted, WithdrawalStatusRejected:
		return true
	}
	return false
}

// IsTerminal returns true for completed and rejected.
func (s WithdrawalStatus) IsTerminal() bool {
	return s == WithdrawalStatusCompleted || s == WithdrawalStatusRejected
}

// CanTransitionTo reports whether the state machine allows s -> next.
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	for _, allowed := range withdrawalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Withdrawal is a request to move saldo out of the system. The full Amount
// is debited at creation; NetAmount is what the payout rail receives.
type Withdrawal struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	Amount           decimal.Decimal  `json:"amount"`
	Fee              decimal.Decimal  `json:"fee"`
	NetAmount        decimal.Decimal  `json:"net_amount"`
	Method           string           `json:"method"`
	AccountNumberEnc string           `json:"-"` // sealed destination account
	AccountName      string           `json:"account_name"`
	Status           WithdrawalStatus `json:"status"`
	AdminNote        *string          `json:"admin_note,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	ProcessedAt      *time.Time       `json:"processed_at,omitempty"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
	RejectedAt       *time.Time       `json:"rejected_at,omitempty"`
}

// WithdrawalFee returns the fee and net amount for a withdrawal: a flat fee
// below the threshold, none at or above it.
func WithdrawalFee(amount, flatFee, feeFreeThreshold decimal.Decimal) (fee, net decimal.Decimal) {
	fee = decimal.Zero
	if amount.LessThan(feeFreeThreshold) {
		fee = flatFee
	}
	return fee, amount.Sub(fee)
}
