package ports

import (
	"context"
	"time"

	"saldo-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HealthChecker checks external dependency health.
type HealthChecker interface {
	// Ping verifies connectivity. Returns nil if healthy.
	Ping(ctx context.Context) error
	// Name returns the dependency name (e.g., "postgresql", "redis").
	Name() string
}

// EncryptionService seals sensitive fields with AES-256-GCM. The associated
// value binds a ciphertext to its owner; Decrypt fails if it differs.
type EncryptionService interface {
	Encrypt(plaintext string, associated string) (string, error)
	Decrypt(ciphertext string, associated string) (string, error)
}

// SignatureService handles HMAC-SHA256 signing and verification.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(userID uuid.UUID, sessionID string, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	UserID    uuid.UUID
	SessionID string
	Role      string
}

// SubmissionGuard is a short-lived distributed lock used to reject
// concurrent duplicate submissions before they reach the database.
type SubmissionGuard interface {
	// Acquire returns false if the key is already held.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// GeoCache is the shared (L2) cache for resolved locations.
type GeoCache interface {
	Get(ctx context.Context, ip string) (*domain.GeoData, error) // nil, nil on miss
	Set(ctx context.Context, ip string, data *domain.GeoData, ttl time.Duration) error
}

// GeoProvider queries the external geolocation service.
type GeoProvider interface {
	Lookup(ctx context.Context, ip string) (*domain.GeoData, error)
}

// GeoResolver maps an IP to location data. nil, nil means no data
// (private, loopback or unknown address).
type GeoResolver interface {
	Resolve(ctx context.Context, ip string) (*domain.GeoData, error)
}

// FingerprintComparator decides device novelty and derives stored device ids.
type FingerprintComparator interface {
	IsNovel(current string, known []string) bool
	DeviceID(userAgent string, fp *domain.BrowserFingerprint) string
}

// --- Service Ports (Business Logic) ---

// RiskEvaluator produces a verdict for a pending transaction.
type RiskEvaluator interface {
	Evaluate(ctx context.Context, in RiskInput) *domain.Verdict
}

// RiskInput describes the attempt being evaluated.
type RiskInput struct {
	UserID  uuid.UUID
	Kind    domain.TransactionKind
	Amount  decimal.Decimal
	Request domain.RequestContext
}

// SecurityAuditService appends security snapshots. Record is synchronous so
// the row is visible to the next evaluation; failures are logged, not returned.
type SecurityAuditService interface {
	Record(ctx context.Context, snapshot *domain.SecuritySnapshot)
}

// LedgerService owns every balance mutation.
type LedgerService interface {
	ValidateTransfer(senderID, receiverID uuid.UUID, amount decimal.Decimal) error
	Transfer(ctx context.Context, cmd TransferCommand) (*TransferResult, error)
	ValidateWithdrawal(amount decimal.Decimal) error
	CreateWithdrawal(ctx context.Context, cmd WithdrawalCommand) (*WithdrawalResult, error)
	TransitionWithdrawal(ctx context.Context, id uuid.UUID, to domain.WithdrawalStatus, note *string) (*domain.Withdrawal, error)
	GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	// GetTransfer returns a transfer visible to userID as sender or receiver.
	GetTransfer(ctx context.Context, userID, id uuid.UUID) (*domain.Transfer, error)
	GetWithdrawal(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error)
}

// TransferCommand holds validated input for a ledger transfer.
type TransferCommand struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Amount     decimal.Decimal
	Notes      string
}

// TransferResult carries the committed record and both post-commit balances.
type TransferResult struct {
	Transfer        *domain.Transfer
	SenderBalance   decimal.Decimal
	ReceiverBalance decimal.Decimal
}

// WithdrawalCommand holds validated input for a withdrawal request.
type WithdrawalCommand struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Method        string
	AccountNumber string
	AccountName   string
}

// WithdrawalResult carries the pending record and the post-debit balance.
type WithdrawalResult struct {
	Withdrawal *domain.Withdrawal
	Balance    decimal.Decimal
}

// TransactionService runs the risk gate and the ledger for one attempt.
type TransactionService interface {
	Transfer(ctx context.Context, req TransferRequest) (*domain.TransactionOutcome, error)
	Withdraw(ctx context.Context, req WithdrawalRequest) (*domain.TransactionOutcome, error)
}

// TransferRequest is a transfer as submitted by an authenticated user.
type TransferRequest struct {
	SenderID       uuid.UUID
	RecipientEmail string
	Amount         decimal.Decimal
	Notes          string
	Request        domain.RequestContext
}

// WithdrawalRequest is a withdrawal as submitted by an authenticated user.
type WithdrawalRequest struct {
	UserID        uuid.UUID
	Amount        decimal.Decimal
	Method        string
	AccountNumber string
	AccountName   string
	Request       domain.RequestContext
}

// PayoutNotifier hands withdrawal events to the downstream payout rail.
type PayoutNotifier interface {
	NotifyWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) error
}
