package store

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantErr: ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantErr: ErrDuplicate},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, wantErr: ErrUnavailable},
		{name: "connection failure", err: errors.New("connection refused"), wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := mapError("op", tt.err)
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
}

func TestMigrationVersions(t *testing.T) {
	t.Parallel()

	versions, err := migrationVersions()
	assert.NoError(t, err)
	assert.Equal(t, []string{"001_create_users.sql"}, versions)
}
