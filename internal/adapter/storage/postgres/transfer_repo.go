package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saldo-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TransferRepo implements ports.TransferRepository.
type TransferRepo struct {
	pool Pool
}

// NewTransferRepo creates a new TransferRepo.
func NewTransferRepo(pool Pool) *TransferRepo {
	return &TransferRepo{pool: pool}
}

// Create inserts a transfer record within a transaction.
func (r *TransferRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Transfer) error {
	query := `INSERT INTO transfers (id, sender_id, receiver_id, amount, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, t.ID, t.SenderID, t.ReceiverID, t.Amount, t.Notes, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert transfer: %w", err)
	}
	return nil
}

// ExistsRecent reports whether an identical sender/receiver/amount transfer
// was committed at or after since.
func (r *TransferRepo) ExistsRecent(ctx context.Context, tx pgx.Tx, senderID, receiverID uuid.UUID, amount decimal.Decimal, since time.Time) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM transfers
		WHERE sender_id = $1 AND receiver_id = $2 AND amount = $3 AND created_at >= $4)`

	var exists bool
	if err := tx.QueryRow(ctx, query, senderID, receiverID, amount, since).Scan(&exists); err != nil {
		return false, fmt.Errorf("check recent transfer: %w", err)
	}
	return exists, nil
}

// GetByID fetches a transfer by id.
func (r *TransferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error) {
	query := `SELECT id, sender_id, receiver_id, amount, notes, created_at FROM transfers WHERE id = $1`

	t := &domain.Transfer{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.SenderID, &t.ReceiverID, &t.Amount, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transfer by id: %w", err)
	}
	return t, nil
}
