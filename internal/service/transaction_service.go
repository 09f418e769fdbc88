package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/pkg/apperror"
	"saldo-ledger/pkg/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// TransactionServiceImpl implements ports.TransactionService: validation,
// risk gate, enforced delay, ledger mutation and a security snapshot for
// every attempt.
type TransactionServiceImpl struct {
	users        ports.UserRepository
	risk         ports.RiskEvaluator
	ledger       ports.LedgerService
	audit        ports.SecurityAuditService
	fingerprints ports.FingerprintComparator
	payouts      ports.PayoutNotifier
	metrics      *metrics.Recorder
	sleep        func(time.Duration)
	log          zerolog.Logger
}

// NewTransactionService creates a new TransactionServiceImpl. payouts and
// recorder may be nil.
func NewTransactionService(
	users ports.UserRepository,
	risk ports.RiskEvaluator,
	ledger ports.LedgerService,
	audit ports.SecurityAuditService,
	fingerprints ports.FingerprintComparator,
	payouts ports.PayoutNotifier,
	recorder *metrics.Recorder,
	log zerolog.Logger,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		users:        users,
		risk:         risk,
		ledger:       ledger,
		audit:        audit,
		fingerprints: fingerprints,
		payouts:      payouts,
		metrics:      recorder,
		sleep:        time.Sleep,
		log:          log,
	}
}

// Transfer runs a P2P transfer attempt. Request cancellation is ignored once
// the attempt has been accepted.
func (s *TransactionServiceImpl) Transfer(ctx context.Context, req ports.TransferRequest) (*domain.TransactionOutcome, error) {
	ctx = context.WithoutCancel(ctx)
	kind := domain.TransactionKindTransfer
	snap := s.newSnapshot(req.SenderID, kind, req.Amount, req.Request)

	// Amount errors take precedence over recipient errors.
	recipient, lookupErr := s.resolveRecipient(ctx, req.RecipientEmail)
	receiverID := uuid.Nil
	if recipient != nil {
		receiverID = recipient.ID
	}
	if err := s.ledger.ValidateTransfer(req.SenderID, receiverID, req.Amount); err != nil {
		return nil, s.fail(ctx, snap, domain.SnapshotStatusFailed, err)
	}
	if lookupErr != nil {
		return nil, s.fail(ctx, snap, domain.SnapshotStatusFailed, lookupErr)
	}

	verdict, err := s.gate(ctx, snap, req.Request)
	if err != nil {
		return nil, err
	}

	result, err := s.ledger.Transfer(ctx, ports.TransferCommand{
		SenderID:   req.SenderID,
		ReceiverID: receiverID,
		Amount:     req.Amount,
		Notes:      req.Notes,
	})
	if err != nil {
		return nil, s.fail(ctx, snap, domain.SnapshotStatusFailed, err)
	}

	s.succeed(ctx, snap, result.Transfer.ID)

	return &domain.TransactionOutcome{
		Allowed:    true,
		Kind:       kind,
		TransferID: &result.Transfer.ID,
		NewBalance: result.SenderBalance,
		RiskLevel:  verdict.RiskLevel,
		Delay:      verdict.Delay,
	}, nil
}

// Withdraw runs a withdrawal attempt and hands the pending withdrawal to the
// payout rail after commit.
func (s *TransactionServiceImpl) Withdraw(ctx context.Context, req ports.WithdrawalRequest) (*domain.TransactionOutcome, error) {
	ctx = context.WithoutCancel(ctx)
	kind := domain.TransactionKindWithdrawal
	snap := s.newSnapshot(req.UserID, kind, req.Amount, req.Request)

	if err := s.ledger.ValidateWithdrawal(req.Amount); err != nil {
		return nil, s.fail(ctx, snap, domain.SnapshotStatusFailed, err)
	}
	if err := ValidateWithdrawalDestination(req.Method, req.AccountNumber, req.AccountName); err != nil {
		return nil, s.fail(ctx, snap, domain.SnapshotStatusFailed, err)
	}

	verdict, err := s.gate(ctx, snap, req.Request)
	if err != nil {
		return nil, err
	}

	result, err := s.ledger.CreateWithdrawal(ctx, ports.WithdrawalCommand{
		UserID:        req.UserID,
		Amount:        req.Amount,
		Method:        req.Method,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
	})
	if err != nil {
		return nil, s.fail(ctx, snap, domain.SnapshotStatusFailed, err)
	}

	s.succeed(ctx, snap, result.Withdrawal.ID)

	if s.payouts != nil {
		if err := s.payouts.NotifyWithdrawal(ctx, result.Withdrawal); err != nil {
			s.log.Warn().Err(err).Str("withdrawal_id", result.Withdrawal.ID.String()).Msg("Payout notification not sent")
		}
	}

	return &domain.TransactionOutcome{
		Allowed:      true,
		Kind:         kind,
		WithdrawalID: &result.Withdrawal.ID,
		NewBalance:   result.Balance,
		RiskLevel:    verdict.RiskLevel,
		Delay:        verdict.Delay,
	}, nil
}

// gate evaluates risk and enforces the verdict. A blocked attempt is recorded
// and held for the penalty delay before its error is returned; an allowed
// attempt is held for the required delay before the ledger is touched.
func (s *TransactionServiceImpl) gate(ctx context.Context, snap *domain.SecuritySnapshot, rc domain.RequestContext) (*domain.Verdict, error) {
	verdict := s.risk.Evaluate(ctx, ports.RiskInput{
		UserID:  snap.UserID,
		Kind:    snap.Kind,
		Amount:  snap.Amount,
		Request: rc,
	})
	snap.ApplyGeo(verdict.Geo)
	snap.RiskLevel = verdict.RiskLevel
	s.metrics.RiskVerdict(string(snap.Kind), string(verdict.RiskLevel), verdict.Allowed, verdict.Delay)

	if !verdict.Allowed {
		err := verdict.Err
		if err == nil {
			err = apperror.InternalError(errors.New("risk evaluation denied without a reason"))
		}
		status := domain.SnapshotStatusBlocked
		if strings.HasPrefix(apperror.CodeOf(err), "SYS_") {
			status = domain.SnapshotStatusFailed
		}
		err = s.fail(ctx, snap, status, err)
		if verdict.Delay > 0 {
			s.sleep(verdict.Delay)
		}
		return nil, err
	}

	if verdict.RequiresDelay {
		s.log.Info().
			Str("user_id", snap.UserID.String()).
			Str("kind", string(snap.Kind)).
			Str("risk_level", string(verdict.RiskLevel)).
			Dur("delay", verdict.Delay).
			Strs("reasons", verdict.Reasons).
			Msg("Holding transaction for risk delay")
		s.sleep(verdict.Delay)
	}
	return verdict, nil
}

func (s *TransactionServiceImpl) resolveRecipient(ctx context.Context, email string) (*domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperror.Validation("recipient_email is required")
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("lookup recipient: %w", err))
	}
	if user == nil {
		return nil, apperror.ErrRecipientNotFound()
	}
	return user, nil
}

func (s *TransactionServiceImpl) newSnapshot(userID uuid.UUID, kind domain.TransactionKind, amount decimal.Decimal, rc domain.RequestContext) *domain.SecuritySnapshot {
	snap := &domain.SecuritySnapshot{
		UserID:            userID,
		Kind:              kind,
		Amount:            amount,
		IPAddress:         rc.IPAddress,
		UserAgent:         rc.UserAgent,
		SessionID:         rc.SessionID,
		DeviceFingerprint: s.fingerprints.DeviceID(rc.UserAgent, rc.Fingerprint),
		RiskLevel:         domain.RiskLevelLow,
	}
	snap.ApplyFingerprint(rc.Fingerprint)
	return snap
}

// fail records a failed or blocked snapshot. AppErrors are returned with the
// attempt's risk level in their details.
func (s *TransactionServiceImpl) fail(ctx context.Context, snap *domain.SecuritySnapshot, status domain.SnapshotStatus, err error) error {
	reason := failReason(err)
	snap.Status = status
	snap.FailReason = &reason
	s.audit.Record(ctx, snap)

	code := apperror.CodeOf(err)
	if code == "" {
		code = "SYS_000"
	}
	s.metrics.LedgerOperation(string(snap.Kind), code)

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.WithDetail("risk_level", string(snap.RiskLevel))
	}
	return err
}

func (s *TransactionServiceImpl) succeed(ctx context.Context, snap *domain.SecuritySnapshot, referenceID uuid.UUID) {
	snap.Status = domain.SnapshotStatusSuccess
	snap.ReferenceID = &referenceID
	s.audit.Record(ctx, snap)
	s.metrics.LedgerOperation(string(snap.Kind), "ok")
}

// failReason is the client-safe message for AppErrors and the raw text otherwise.
func failReason(err error) string {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
