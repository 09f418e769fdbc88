package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userRows(id uuid.UUID, email string) *pgxmock.Rows {
	return pgxmock.NewRows([]string{"id", "email", "name", "created_at"}).
		AddRow(id, email, "Dewi", time.Now().UTC().Truncate(time.Microsecond))
}

func TestUserRepo_GetByEmail_Normalizes(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM users WHERE lower\\(email\\)").
		WithArgs("dewi@example.com").
		WillReturnRows(userRows(id, "Dewi@Example.com"))

	u, err := repo.GetByEmail(context.Background(), "  Dewi@Example.COM ")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, id, u.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_GetByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM users WHERE lower\\(email\\)").
		WithArgs("ghost@example.com").
		WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.NoError(t, err)
	assert.Nil(t, u)
}
