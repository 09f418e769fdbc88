package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityRepo implements ports.ActivityRepository.
type ActivityRepo struct {
	pool Pool
}

// NewActivityRepo creates a new ActivityRepo.
func NewActivityRepo(pool Pool) *ActivityRepo {
	return &ActivityRepo{pool: pool}
}

// CountTransactionsSince counts transfers sent and withdrawals created by the user since the given time.
func (r *ActivityRepo) CountTransactionsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error) {
	query := `SELECT
		(SELECT COUNT(*) FROM transfers WHERE sender_id = $1 AND created_at >= $2) +
		(SELECT COUNT(*) FROM withdrawals WHERE user_id = $1 AND created_at >= $2)`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, since).Scan(&count); err != nil {
		return 0, fmt.Errorf("count recent transactions: %w", err)
	}
	return count, nil
}
