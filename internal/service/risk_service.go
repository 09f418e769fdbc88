package service

import (
	"context"
	"fmt"
	"time"

	"saldo-ledger/config"
	"saldo-ledger/internal/core/domain"
	"saldo-ledger/internal/core/ports"
	"saldo-ledger/pkg/apperror"

	"github.com/rs/zerolog"
)

// RiskServiceImpl implements ports.RiskEvaluator. Stages run in a fixed
// order; the first blocking stage ends the evaluation.
type RiskServiceImpl struct {
	activity     ports.ActivityRepository
	securityLogs ports.SecurityLogRepository
	geo          ports.GeoResolver
	fingerprints ports.FingerprintComparator
	rules        RiskRules
	cfg          config.RiskConfig
	now          func() time.Time
	log          zerolog.Logger
}

// NewRiskService creates a new RiskServiceImpl.
func NewRiskService(
	activity ports.ActivityRepository,
	securityLogs ports.SecurityLogRepository,
	geo ports.GeoResolver,
	fingerprints ports.FingerprintComparator,
	cfg config.RiskConfig,
	log zerolog.Logger,
) *RiskServiceImpl {
	return &RiskServiceImpl{
		activity:     activity,
		securityLogs: securityLogs,
		geo:          geo,
		fingerprints: fingerprints,
		rules:        NewRiskRules(cfg),
		cfg:          cfg,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log,
	}
}

// Evaluate gathers every signal for the attempt and folds the rule results
// into a verdict. It never returns nil.
func (s *RiskServiceImpl) Evaluate(ctx context.Context, in ports.RiskInput) *domain.Verdict {
	v := domain.NewVerdict()
	now := s.now()
	userID := in.UserID.String()

	// apply folds d and reports whether evaluation must stop.
	apply := func(d domain.RiskDelta) bool {
		v.Apply(d)
		return !v.Allowed
	}

	// 1. Rate limit. A failed count refuses the attempt.
	count, err := s.activity.CountTransactionsSince(ctx, in.UserID, now.Add(-s.cfg.RateLimitWindow))
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Rate limit count failed")
		v.Deny(apperror.InternalError(fmt.Errorf("count recent transactions: %w", err)), "rate limit unavailable")
		return v
	}
	if apply(s.rules.RateLimit(count)) {
		return v
	}

	// 2. Geolocation.
	geo, err := s.geo.Resolve(ctx, in.Request.IPAddress)
	if err != nil {
		s.log.Warn().Err(err).Str("ip", in.Request.IPAddress).Msg("Geolocation unavailable, continuing without it")
		geo = nil
	}
	v.Geo = geo
	if apply(s.rules.Geo(geo, in.Amount)) {
		return v
	}

	// 3. Impossible travel.
	if geo.HasCoordinates() {
		last, err := s.securityLogs.LastSuccessfulWithLocation(ctx, in.UserID)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("Location history unavailable, skipping travel check")
		} else if apply(s.rules.Travel(last, geo, now)) {
			return v
		}
	}

	// 4. Device fingerprint novelty.
	if fp := in.Request.Fingerprint; fp != nil && fp.CombinedHash != "" {
		known, err := s.securityLogs.RecentFingerprints(ctx, in.UserID, now.Add(-s.cfg.FingerprintLookback), s.cfg.FingerprintHistoryLimit)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("Fingerprint history unavailable, skipping device check")
		} else {
			apply(s.rules.Fingerprint(s.fingerprints.IsNovel(fp.CombinedHash, known), in.Amount))
		}
	}

	// 5. Multiple source addresses.
	others, err := s.securityLogs.CountDistinctIPsSince(ctx, in.UserID, now.Add(-s.cfg.MultiIPWindow), in.Request.IPAddress)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", userID).Msg("IP history unavailable, skipping multi-ip check")
	} else {
		apply(s.rules.MultiIP(others))
	}

	// 6. Amount tiers.
	apply(s.rules.Amount(in.Amount))

	s.log.Debug().
		Str("user_id", userID).
		Str("kind", string(in.Kind)).
		Str("risk_level", string(v.RiskLevel)).
		Dur("delay", v.Delay).
		Strs("reasons", v.Reasons).
		Msg("Risk evaluated")

	return v
}
