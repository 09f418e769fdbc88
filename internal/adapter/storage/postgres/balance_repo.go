package postgres

import (
	"context"
	"errors"
	"fmt"

	"saldo-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// BalanceRepo implements ports.BalanceRepository.
type BalanceRepo struct {
	pool Pool
}

// NewBalanceRepo creates a new BalanceRepo.
func NewBalanceRepo(pool Pool) *BalanceRepo {
	return &BalanceRepo{pool: pool}
}

// Get reads a user's balance outside any transaction.
func (r *BalanceRepo) Get(ctx context.Context, userID uuid.UUID) (*domain.AccountBalance, error) {
	query := `SELECT user_id, balance, updated_at FROM balances WHERE user_id = $1`

	b := &domain.AccountBalance{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(&b.UserID, &b.Balance, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return b, nil
}

// Debit subtracts amount only if the balance covers it. The WHERE clause is
// the authoritative sufficiency check; ok is false when it did not match.
func (r *BalanceRepo) Debit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	query := `UPDATE balances SET balance = balance - $1, updated_at = NOW()
		WHERE user_id = $2 AND balance >= $1
		RETURNING balance`
	return r.apply(ctx, tx, "debit balance", query, amount, userID)
}

// Credit adds amount; ok is false when the user has no balance row.
func (r *BalanceRepo) Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, bool, error) {
	query := `UPDATE balances SET balance = balance + $1, updated_at = NOW()
		WHERE user_id = $2
		RETURNING balance`
	return r.apply(ctx, tx, "credit balance", query, amount, userID)
}

func (r *BalanceRepo) apply(ctx context.Context, tx pgx.Tx, op, query string, amount decimal.Decimal, userID uuid.UUID) (decimal.Decimal, bool, error) {
	var balance decimal.Decimal
	err := tx.QueryRow(ctx, query, amount, userID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("%s: %w", op, err)
	}
	return balance, true, nil
}
