package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"saldo-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// SecurityLogRepo implements ports.SecurityLogRepository.
type SecurityLogRepo struct {
	pool Pool
}

// NewSecurityLogRepo creates a new SecurityLogRepo.
func NewSecurityLogRepo(pool Pool) *SecurityLogRepo {
	return &SecurityLogRepo{pool: pool}
}

// Create appends a snapshot. Snapshots are never updated.
func (r *SecurityLogRepo) Create(ctx context.Context, s *domain.SecuritySnapshot) error {
	query := `INSERT INTO security_logs (id, user_id, kind, amount, reference_id, ip_address, user_agent,
		session_id, device_fingerprint, canvas_hash, webgl_hash, timezone, screen_resolution,
		fingerprint_hash, country, city, latitude, longitude, isp, is_vpn_proxy,
		risk_level, status, fail_reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
		$19, $20, $21, $22, $23, $24)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.UserID, s.Kind, s.Amount, s.ReferenceID, s.IPAddress, s.UserAgent,
		s.SessionID, s.DeviceFingerprint, s.CanvasHash, s.WebGLHash, s.Timezone, s.ScreenResolution,
		s.FingerprintHash, s.Country, s.City, s.Latitude, s.Longitude, s.ISP, s.IsVPNProxy,
		s.RiskLevel, s.Status, s.FailReason, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert security log: %w", err)
	}
	return nil
}

// LastSuccessfulWithLocation returns the newest successful snapshot that carries coordinates.
func (r *SecurityLogRepo) LastSuccessfulWithLocation(ctx context.Context, userID uuid.UUID) (*domain.SecuritySnapshot, error) {
	query := `SELECT id, ip_address, country, city, latitude, longitude, created_at
		FROM security_logs
		WHERE user_id = $1 AND status = 'success' AND (latitude <> 0 OR longitude <> 0)
		ORDER BY created_at DESC
		LIMIT 1`

	s := &domain.SecuritySnapshot{UserID: userID, Status: domain.SnapshotStatusSuccess}
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&s.ID, &s.IPAddress, &s.Country, &s.City, &s.Latitude, &s.Longitude, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last located snapshot: %w", err)
	}
	return s, nil
}

// RecentFingerprints returns distinct combined fingerprint hashes of
// successful snapshots since the given time, most recently seen first.
func (r *SecurityLogRepo) RecentFingerprints(ctx context.Context, userID uuid.UUID, since time.Time, limit int) ([]string, error) {
	query := `SELECT fingerprint_hash
		FROM security_logs
		WHERE user_id = $1 AND status = 'success' AND fingerprint_hash <> '' AND created_at >= $2
		GROUP BY fingerprint_hash
		ORDER BY MAX(created_at) DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, userID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent fingerprints: %w", err)
	}
	defer rows.Close()

	var hashes []string
	for rows.Next() {
		var h string
		if err := rows.Scan(&h); err != nil {
			return nil, fmt.Errorf("scan fingerprint: %w", err)
		}
		hashes = append(hashes, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fingerprints: %w", err)
	}
	return hashes, nil
}

// CountDistinctIPsSince counts distinct addresses seen on any snapshot since
// the given time, not counting excludeIP.
func (r *SecurityLogRepo) CountDistinctIPsSince(ctx context.Context, userID uuid.UUID, since time.Time, excludeIP string) (int, error) {
	query := `SELECT COUNT(DISTINCT ip_address)
		FROM security_logs
		WHERE user_id = $1 AND created_at >= $2 AND ip_address <> $3 AND ip_address <> ''`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID, since, excludeIP).Scan(&count); err != nil {
		return 0, fmt.Errorf("count distinct ips: %w", err)
	}
	return count, nil
}
