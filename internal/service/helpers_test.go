package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	commitErr error
	committed bool
}

func (m *mockTx) Rollback(_ context.Context) error { return nil }

func (m *mockTx) Commit(_ context.Context) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}

// errConflict stands in for a serialization failure reported by the database.
var errConflict = errors.New("could not serialize access due to concurrent update")

func isTestConflict(err error) bool {
	return errors.Is(err, errConflict)
}

func conflict(op string) error {
	return fmt.Errorf("%s: %w", op, errConflict)
}

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
