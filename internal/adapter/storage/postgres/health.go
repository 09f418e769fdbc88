package postgres

import "context"

// HealthCheck implements ports.HealthChecker for PostgreSQL.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks PostgreSQL connectivity through the pool.
func (h *HealthCheck) Ping(ctx context.Context) error {
	return h.pool.Ping(ctx)
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
