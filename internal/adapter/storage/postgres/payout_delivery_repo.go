package postgres

import (
	"context"
	"fmt"

	"saldo-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// PayoutDeliveryRepo implements ports.PayoutDeliveryRepository.
type PayoutDeliveryRepo struct {
	pool Pool
}

// NewPayoutDeliveryRepo creates a new PayoutDeliveryRepo.
func NewPayoutDeliveryRepo(pool Pool) *PayoutDeliveryRepo {
	return &PayoutDeliveryRepo{pool: pool}
}

// Create inserts a new delivery record.
func (r *PayoutDeliveryRepo) Create(ctx context.Context, d *domain.PayoutDelivery) error {
	query := `INSERT INTO payout_deliveries
		(id, withdrawal_id, event_type, webhook_url, http_status, attempt, status, next_retry_at, last_error, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.WithdrawalID, d.EventType, d.WebhookURL,
		d.HTTPStatus, d.Attempt, string(d.Status),
		d.NextRetryAt, d.LastError, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payout delivery: %w", err)
	}
	return nil
}

// Update stores the outcome of the latest attempt.
func (r *PayoutDeliveryRepo) Update(ctx context.Context, d *domain.PayoutDelivery) error {
	query := `UPDATE payout_deliveries
		SET http_status = $1, attempt = $2, status = $3, next_retry_at = $4, last_error = $5, updated_at = $6
		WHERE id = $7`

	_, err := r.pool.Exec(ctx, query,
		d.HTTPStatus, d.Attempt, string(d.Status),
		d.NextRetryAt, d.LastError, d.UpdatedAt, d.ID,
	)
	if err != nil {
		return fmt.Errorf("update payout delivery: %w", err)
	}
	return nil
}

// ListByWithdrawal returns every delivery for a withdrawal, newest first.
func (r *PayoutDeliveryRepo) ListByWithdrawal(ctx context.Context, withdrawalID uuid.UUID) ([]domain.PayoutDelivery, error) {
	query := `SELECT id, withdrawal_id, event_type, webhook_url, http_status, attempt, status,
		next_retry_at, last_error, created_at, updated_at
		FROM payout_deliveries
		WHERE withdrawal_id = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, withdrawalID)
	if err != nil {
		return nil, fmt.Errorf("query payout deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []domain.PayoutDelivery
	for rows.Next() {
		var d domain.PayoutDelivery
		var status string
		if err := rows.Scan(
			&d.ID, &d.WithdrawalID, &d.EventType, &d.WebhookURL, &d.HTTPStatus, &d.Attempt, &status,
			&d.NextRetryAt, &d.LastError, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan payout delivery: %w", err)
		}
		d.Status = domain.PayoutDeliveryStatus(status)
		deliveries = append(deliveries, d)
	}
	return deliveries, rows.Err()
}
