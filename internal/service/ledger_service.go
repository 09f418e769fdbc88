package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"saldo-ledger/config"
	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"
	"github.com/shopspring/decimal"
)

const txRetryBackoff = 20 * time.Millisecond

// LedgerServiceImpl implements ports.LedgerService. Every balance change runs
// in a single serializable transaction; sufficiency is enforced by the
// conditional debit, not by a prior read.
type LedgerServiceImpl struct {
	balances    ports.BalanceRepository
	transfers   ports.TransferRepository
	withdrawals ports.WithdrawalRepository
	guard       ports.SubmissionGuard
	encSvc      ports.EncryptionService
	transactor  ports.DBTransactor
	isRetryable func(error) bool
	log         zerolog.Logger
	now         func() time.Time

	minTransfer      decimal.Decimal
	minWithdrawal    decimal.Decimal
	withdrawalFee    decimal.Decimal
	feeFreeThreshold decimal.Decimal
	duplicateWindow  time.Duration
	maxAttempts      int
}

// NewLedgerService creates a new LedgerServiceImpl. guard may be nil, in
// which case duplicate suppression relies on the database check alone.
// isRetryable classifies errors after which the whole unit is re-run.
func NewLedgerService(
	balances ports.BalanceRepository,
	transfers ports.TransferRepository,
	withdrawals ports.WithdrawalRepository,
	guard ports.SubmissionGuard,
	encSvc ports.EncryptionService,
	transactor ports.DBTransactor,
	isRetryable func(error) bool,
	cfg config.LedgerConfig,
	log zerolog.Logger,
) *LedgerServiceImpl {
	if isRetryable == nil {
		isRetryable = func(error) bool { return false }
	}
	attempts := cfg.MaxTxAttempts
	if attempts < 1 {
		attempts = 1
	}
	return &LedgerServiceImpl{
		balances:         balances,
		transfers:        transfers,
		withdrawals:      withdrawals,
		guard:            guard,
		encSvc:           encSvc,
		transactor:       transactor,
		isRetryable:      isRetryable,
		log:              log,
		now:              func() time.Time { return time.Now().UTC() },
		minTransfer:      decimal.NewFromInt(cfg.MinTransferAmount),
		minWithdrawal:    decimal.NewFromInt(cfg.MinWithdrawalAmount),
		withdrawalFee:    decimal.NewFromInt(cfg.WithdrawalFee),
		feeFreeThreshold: decimal.NewFromInt(cfg.FeeFreeThreshold),
		duplicateWindow:  cfg.DuplicateWindow,
		maxAttempts:      attempts,
	}
}

// ValidateTransfer checks the amount and the parties without touching storage.
func (s *LedgerServiceImpl) ValidateTransfer(senderID, receiverID uuid.UUID, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	if amount.LessThan(s.minTransfer) {
		return apperror.ErrBelowMinimum(s.minTransfer.String())
	}
	if senderID == receiverID {
		return apperror.ErrSelfTransfer()
	}
	return nil
}

// Transfer moves amount from sender to receiver atomically.
func (s *LedgerServiceImpl) Transfer(ctx context.Context, cmd ports.TransferCommand) (*ports.TransferResult, error) {
	if err := s.ValidateTransfer(cmd.SenderID, cmd.ReceiverID, cmd.Amount); err != nil {
		return nil, err
	}

	key := domain.BuildTransferDuplicateKey(cmd.SenderID, cmd.ReceiverID, cmd.Amount)
	guarded, err := s.acquire(ctx, key)
	if err != nil {
		return nil, err
	}

	var result *ports.TransferResult
	err = s.withRetry(ctx, "transfer", func(ctx context.Context) error {
		r, err := s.transferOnce(ctx, cmd)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		if guarded {
			s.release(ctx, key)
		}
		return nil, toAppError(err)
	}

	s.log.Info().
		Str("transfer_id", result.Transfer.ID.String()).
		Str("sender_id", cmd.SenderID.String()).
		Str("receiver_id", cmd.ReceiverID.String()).
		Str("amount", cmd.Amount.String()).
		Msg("Transfer committed")

	return result, nil
}

func (s *LedgerServiceImpl) transferOnce(ctx context.Context, cmd ports.TransferCommand) (*ports.TransferResult, error) {
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	now := s.now()

	dup, err := s.transfers.ExistsRecent(ctx, dbTx, cmd.SenderID, cmd.ReceiverID, cmd.Amount, now.Add(-s.duplicateWindow))
	if err != nil {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}
	if dup {
		return nil, apperror.ErrDuplicateSubmission()
	}

	senderBalance, ok, err := s.balances.Debit(ctx, dbTx, cmd.SenderID, cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("debit sender: %w", err)
	}
	if !ok {
		return nil, apperror.ErrInsufficientFunds()
	}

	receiverBalance, ok, err := s.balances.Credit(ctx, dbTx, cmd.ReceiverID, cmd.Amount)
	if err != nil {
		return nil, fmt.Errorf("credit receiver: %w", err)
	}
	if !ok {
		return nil, apperror.ErrRecipientNotFound()
	}

	transfer := &domain.Transfer{
		ID:         uuid.New(),
		SenderID:   cmd.SenderID,
		ReceiverID: cmd.ReceiverID,
		Amount:     cmd.Amount,
		Notes:      cmd.Notes,
		CreatedAt:  now,
	}
	if err := s.transfers.Create(ctx, dbTx, transfer); err != nil {
		return nil, fmt.Errorf("create transfer: %w", err)
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}

	return &ports.TransferResult{
		Transfer:        transfer,
		SenderBalance:   senderBalance,
		ReceiverBalance: receiverBalance,
	}, nil
}

// ValidateWithdrawal checks the amount against the minimum and the fee.
func (s *LedgerServiceImpl) ValidateWithdrawal(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	if amount.LessThan(s.minWithdrawal) {
		return apperror.ErrBelowMinimum(s.minWithdrawal.String())
	}
	if _, net := domain.WithdrawalFee(amount, s.withdrawalFee, s.feeFreeThreshold); !net.IsPositive() {
		return apperror.ErrInvalidAmount()
	}
	return nil
}

// ValidateWithdrawalDestination requires every payout destination field.
func ValidateWithdrawalDestination(method, accountNumber, accountName string) error {
	if strings.TrimSpace(method) == "" || strings.TrimSpace(accountNumber) == "" || strings.TrimSpace(accountName) == "" {
		return apperror.Validation("method, account_number and account_name are required")
	}
	return nil
}

// CreateWithdrawal debits the full amount and records a pending withdrawal.
func (s *LedgerServiceImpl) CreateWithdrawal(ctx context.Context, cmd ports.WithdrawalCommand) (*ports.WithdrawalResult, error) {
	if err := s.ValidateWithdrawal(cmd.Amount); err != nil {
		return nil, err
	}
	if err := ValidateWithdrawalDestination(cmd.Method, cmd.AccountNumber, cmd.AccountName); err != nil {
		return nil, err
	}

	accountEnc, err := s.encSvc.Encrypt(cmd.AccountNumber, cmd.UserID.String())
	if err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("encrypt account number: %w", err))
	}

	fee, net := domain.WithdrawalFee(cmd.Amount, s.withdrawalFee, s.feeFreeThreshold)

	var result *ports.WithdrawalResult
	err = s.withRetry(ctx, "withdrawal", func(ctx context.Context) error {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		balance, ok, err := s.balances.Debit(ctx, dbTx, cmd.UserID, cmd.Amount)
		if err != nil {
			return fmt.Errorf("debit user: %w", err)
		}
		if !ok {
			return apperror.ErrInsufficientFunds()
		}

		w := &domain.Withdrawal{
			ID:               uuid.New(),
			UserID:           cmd.UserID,
			Amount:           cmd.Amount,
			Fee:              fee,
			NetAmount:        net,
			Method:           cmd.Method,
			AccountNumberEnc: accountEnc,
			AccountName:      cmd.AccountName,
			Status:           domain.WithdrawalStatusPending,
			CreatedAt:        s.now(),
		}
		if err := s.withdrawals.Create(ctx, dbTx, w); err != nil {
			return fmt.Errorf("create withdrawal: %w", err)
		}

		if err := dbTx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}

		result = &ports.WithdrawalResult{Withdrawal: w, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	s.log.Info().
		Str("withdrawal_id", result.Withdrawal.ID.String()).
		Str("user_id", cmd.UserID.String()).
		Str("amount", cmd.Amount.String()).
		Str("fee", fee.String()).
		Msg("Withdrawal created")

	return result, nil
}

// TransitionWithdrawal moves a withdrawal along its lifecycle. Rejection
// returns the full debited amount to the user in the same transaction.
func (s *LedgerServiceImpl) TransitionWithdrawal(ctx context.Context, id uuid.UUID, to domain.WithdrawalStatus, note *string) (*domain.Withdrawal, error) {
	if !to.IsValid() {
		return nil, apperror.Validation("unknown withdrawal status: " + string(to))
	}

	var updated *domain.Withdrawal
	err := s.withRetry(ctx, "withdrawal_transition", func(ctx context.Context) error {
		dbTx, err := s.transactor.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer dbTx.Rollback(ctx) //nolint:errcheck

		w, err := s.withdrawals.GetByIDForUpdate(ctx, dbTx, id)
		if err != nil {
			return fmt.Errorf("lock withdrawal: %w", err)
		}
		if w == nil {
			return apperror.ErrNotFound("Withdrawal")
		}
		if w.Status.IsTerminal() {
			return apperror.ErrWithdrawalClosed(string(w.Status))
		}
		if !w.Status.CanTransitionTo(to) {
			return apperror.ErrInvalidTransition(string(w.Status), string(to))
		}

		now := s.now()
		switch to {
		case domain.WithdrawalStatusProcessing:
			w.ProcessedAt = &now
		case domain.WithdrawalStatusCompleted:
			w.CompletedAt = &now
		case domain.WithdrawalStatusRejected:
			w.RejectedAt = &now
			if _, ok, err := s.balances.Credit(ctx, dbTx, w.UserID, w.Amount); err != nil {
				return fmt.Errorf("refund withdrawal: %w", err)
			} else if !ok {
				return fmt.Errorf("refund withdrawal: no balance row for user %s", w.UserID)
			}
		}
		w.Status = to
		if note != nil {
			w.AdminNote = note
		}

		if err := s.withdrawals.UpdateStatus(ctx, dbTx, w); err != nil {
			return fmt.Errorf("update withdrawal: %w", err)
		}
		if err := dbTx.Commit(ctx); err != nil {
			return fmt.Errorf("commit tx: %w", err)
		}

		updated = w
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	s.log.Info().
		Str("withdrawal_id", id.String()).
		Str("status", string(to)).
		Msg("Withdrawal status changed")

	return updated, nil
}

// GetBalance returns the user's current balance. A user without a balance
// row has a zero balance.
func (s *LedgerServiceImpl) GetBalance(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	b, err := s.balances.Get(ctx, userID)
	if err != nil {
		return decimal.Zero, apperror.ErrDatabaseError(fmt.Errorf("get balance: %w", err))
	}
	if b == nil {
		return decimal.Zero, nil
	}
	return b.Balance, nil
}

// withRetry re-runs unit when it fails with a serialization failure or deadlock.
func (s *LedgerServiceImpl) withRetry(ctx context.Context, op string, unit func(ctx context.Context) error) error {
	attempt := 0
	backoff := retry.WithMaxRetries(uint64(s.maxAttempts-1), retry.NewConstant(txRetryBackoff))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := unit(ctx)
		if err != nil && s.isRetryable(err) {
			s.log.Warn().Err(err).Str("operation", op).Int("attempt", attempt).Msg("Ledger transaction conflict, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

func (s *LedgerServiceImpl) acquire(ctx context.Context, key string) (bool, error) {
	if s.guard == nil {
		return false, nil
	}
	ok, err := s.guard.Acquire(ctx, key, s.duplicateWindow)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Submission guard unavailable, relying on database check")
		return false, nil
	}
	if !ok {
		return false, apperror.ErrDuplicateSubmission()
	}
	return true, nil
}

func (s *LedgerServiceImpl) release(ctx context.Context, key string) {
	if err := s.guard.Release(ctx, key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("Failed to release submission guard")
	}
}

// toAppError keeps business errors and reports everything else as internal.
func toAppError(err error) error {
	if apperror.CodeOf(err) != "" {
		return err
	}
	return apperror.InternalError(err)
}

// GetTransfer returns the transfer if userID took part in it. Transfers of
// other users are reported as not found.
func (s *LedgerServiceImpl) GetTransfer(ctx context.Context, userID, id uuid.UUID) (*domain.Transfer, error) {
	t, err := s.transfers.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get transfer: %w", err))
	}
	if t == nil || (t.SenderID != userID && t.ReceiverID != userID) {
		return nil, apperror.ErrNotFound("Transfer")
	}
	return t, nil
}

// GetWithdrawal returns a withdrawal without locking it.
func (s *LedgerServiceImpl) GetWithdrawal(ctx context.Context, id uuid.UUID) (*domain.Withdrawal, error) {
	w, err := s.withdrawals.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get withdrawal: %w", err))
	}
	if w == nil {
		return nil, apperror.ErrNotFound("Withdrawal")
	}
	return w, nil
}
