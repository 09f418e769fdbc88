package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the account owner as known to the ledger. Accounts are created
// and authenticated elsewhere; the ledger only reads them.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"` // public identifier used to address transfers
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountBalance is the single saldo row per user. The stored value is never negative.
type AccountBalance struct {
	UserID    uuid.UUID       `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	UpdatedAt time.Time       `json:"updated_at"`
}
