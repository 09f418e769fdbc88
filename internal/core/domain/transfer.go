package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transfer is an immutable record of a committed peer-to-peer balance movement.
type Transfer struct {
	ID         uuid.UUID       `json:"id"`
	SenderID   uuid.UUID       `json:"sender_id"`
	ReceiverID uuid.UUID       `json:"receiver_id"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// BuildTransferDuplicateKey formats "sender:receiver:amount" with a canonical amount.
func BuildTransferDuplicateKey(senderID, receiverID uuid.UUID, amount decimal.Decimal) string {
	return senderID.String() + ":" + receiverID.String() + ":" + amount.StringFixed(2)
}
