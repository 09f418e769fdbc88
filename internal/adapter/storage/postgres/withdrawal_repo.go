package postgres

import (
	"context"
	"errors"
	"fmt"

	"saldo-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const withdrawalColumns = `id, user_id, amount, fee, net_amount, method, account_number_enc, account_name,
	status, admin_note, created_at, processed_at, completed_at, rejected_at`

// WithdrawalRepo implements ports.WithdrawalRepository.
type WithdrawalRepo struct {
	pool Pool
}

// NewWithdrawalRepo creates a new WithdrawalRepo.
func NewWithdrawalRepo(pool Pool) *WithdrawalRepo {
	return &WithdrawalRepo{pool: pool}
}

// Create inserts a withdrawal within a transaction.
func (r *WithdrawalRepo) Create(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `INSERT INTO withdrawals (id, user_id, amount, fee, net_amount, method, account_number_enc,
		account_name, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		w.ID, w.UserID, w.Amount, w.Fee, w.NetAmount, w.Method, w.AccountNumberEnc,
		w.AccountName, w.Status, w.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert withdrawal: %w", err)
	}
	return nil
}

// GetByID fetches a withdrawal without locking.
func (r *WithdrawalRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1`
	w, err := scanWithdrawal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get withdrawal by id: %w", err)
	}
	return w, nil
}

// GetByIDForUpdate fetches a withdrawal with a row lock.
// This MUST be called within a transaction.
func (r *WithdrawalRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdrawals WHERE id = $1 FOR UPDATE`
	w, err := scanWithdrawal(tx.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("get withdrawal for update: %w", err)
	}
	return w, nil
}

// UpdateStatus persists the status, note and lifecycle timestamps of w.
func (r *WithdrawalRepo) UpdateStatus(ctx context.Context, tx pgx.Tx, w *domain.Withdrawal) error {
	query := `UPDATE withdrawals
		SET status = $1, admin_note = $2, processed_at = $3, completed_at = $4, rejected_at = $5
		WHERE id = $6`

	tag, err := tx.Exec(ctx, query, w.Status, w.AdminNote, w.ProcessedAt, w.CompletedAt, w.RejectedAt, w.ID)
	if err != nil {
		return fmt.Errorf("update withdrawal status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("withdrawal not found: %s", w.ID)
	}
	return nil
}

// scanWithdrawal returns nil, nil when the row does not exist.
func scanWithdrawal(row pgx.Row) (*domain.Withdrawal, error) {
	w := &domain.Withdrawal{}
	err := row.Scan(
		&w.ID, &w.UserID, &w.Amount, &w.Fee, &w.NetAmount, &w.Method, &w.AccountNumberEnc, &w.AccountName,
		&w.Status, &w.AdminNote, &w.CreatedAt, &w.ProcessedAt, &w.CompletedAt, &w.RejectedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return w, nil
}
