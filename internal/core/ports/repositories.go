package ports

import (
	"context"
	"time"

	"saldo-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// UserRepository reads account owners. Missing rows return nil, nil.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// BalanceRepository mutates saldo rows. Debit and Credit must run inside a
// transaction; the bool result is false when no row matched (insufficient
// balance for Debit, unknown user for Credit).
type BalanceRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.AccountBalance, error)
	Debit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, bool, error)
	Credit(ctx context.Context, tx pgx.Tx, userID uuid.UUID, amount decimal.Decimal) (decimal.Decimal, bool, error)
}

// TransferRepository persists transfer records.
type TransferRepository interface {
	Create(ctx context.Context, tx pgx.Tx, transfer *domain.Transfer) error
	ExistsRecent(ctx context.Context, tx pgx.Tx, senderID, receiverID uuid.UUID, amount decimal.Decimal, since time.Time) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Transfer, error)
}

// WithdrawalRepository persists withdrawal requests and their transitions.
type WithdrawalRepository interface {
	Create(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Withdrawal, error)
	UpdateStatus(ctx context.Context, tx pgx.Tx, withdrawal *domain.Withdrawal) error
}

// ActivityRepository answers velocity questions over committed transactions.
type ActivityRepository interface {
	// CountTransactionsSince counts transfers sent plus withdrawals created by the user.
	CountTransactionsSince(ctx context.Context, userID uuid.UUID, since time.Time) (int, error)
}

// SecurityLogRepository stores and queries security snapshots.
type SecurityLogRepository interface {
	Create(ctx context.Context, snapshot *domain.SecuritySnapshot) error
	// LastSuccessfulWithLocation returns the newest successful snapshot with non-zero coordinates.
	LastSuccessfulWithLocation(ctx context.Context, userID uuid.UUID) (*domain.SecuritySnapshot, error)
	// RecentFingerprints returns up to limit distinct combined hashes from successful snapshots, newest first.
	RecentFingerprints(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]string, error)
	// CountDistinctIPsSince counts distinct IPs of any snapshot status, excluding excludeIP.
	CountDistinctIPsSince(ctx context.Context, userID uuid.UUID, since time.Time, excludeIP string) (int, error)
}

// PayoutDeliveryRepository tracks payout webhook deliveries.
type PayoutDeliveryRepository interface {
	Create(ctx context.Context, delivery *domain.PayoutDelivery) error
	Update(ctx context.Context, delivery *domain.PayoutDelivery) error
	ListByWithdrawal(ctx context.Context, withdrawalID uuid.UUID) ([]domain.PayoutDelivery, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
