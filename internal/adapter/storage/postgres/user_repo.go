package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"saldo-ledger/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// UserRepo implements ports.UserRepository.
type UserRepo struct {
	pool Pool
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(pool Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// GetByEmail fetches a user by email, case-insensitively.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, name, created_at FROM users WHERE lower(email) = $1`
	return r.scanOne(ctx, "get user by email", query, strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepo) scanOne(ctx context.Context, op, query string, arg any) (*domain.User, error) {
	u := &domain.User{}
	err := r.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}
