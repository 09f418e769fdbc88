package service

import (
	"context"
	"time"

	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SecurityAuditServiceImpl implements ports.SecurityAuditService.
type SecurityAuditServiceImpl struct {
	repo ports.SecurityLogRepository
	now  func() time.Time
	log  zerolog.Logger
}

// NewSecurityAuditService creates a new security audit service.
// If repo is nil, snapshots are only written to the logger.
func NewSecurityAuditService(repo ports.SecurityLogRepository, log zerolog.Logger) *SecurityAuditServiceImpl {
	return &SecurityAuditServiceImpl{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log,
	}
}

// Record persists the snapshot before returning so the next evaluation for
// the same user sees it.
func (s *SecurityAuditServiceImpl) Record(ctx context.Context, snapshot *domain.SecuritySnapshot) {
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	if snapshot.CreatedAt.IsZero() {
		snapshot.CreatedAt = s.now()
	}
	if snapshot.RiskLevel == "" {
		snapshot.RiskLevel = domain.RiskLevelLow
	}
	snapshot.FitColumns()

	event := s.log.Info()
	if snapshot.Status != domain.SnapshotStatusSuccess {
		event = s.log.Warn()
	}
	event = event.
		Str("user_id", snapshot.UserID.String()).
		Str("kind", string(snapshot.Kind)).
		Str("status", string(snapshot.Status)).
		Str("risk_level", string(snapshot.RiskLevel)).
		Str("ip", snapshot.IPAddress).
		Str("country", snapshot.Country)
	if snapshot.FailReason != nil {
		event = event.Str("fail_reason", *snapshot.FailReason)
	}
	event.Msg("security snapshot")

	if s.repo == nil {
		return
	}
	if err := s.repo.Create(ctx, snapshot); err != nil {
		s.log.Error().Err(err).
			Str("user_id", snapshot.UserID.String()).
			Str("status", string(snapshot.Status)).
			Msg("failed to persist security snapshot")
	}
}
