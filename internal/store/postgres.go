package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

const defaultPoolSize = 10

const uniqueViolation = "23505"

// PostgresStore implements UserStore using pgxpool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// PostgresOption configures a PostgresStore.
type PostgresOption func(*pgxpool.Config)

// WithPoolSize sets the maximum number of pooled connections.
func WithPoolSize(n int) PostgresOption {
	return func(c *pgxpool.Config) {
		if n > 0 {
			c.MaxConns = int32(n) //nolint:gosec // pool size is a small configured value
		}
	}
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(
	ctx context.Context,
	connString string,
	opts ...PostgresOption,
) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize
	for _, opt := range opts {
		opt(cfg)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// AddUser inserts u and fills in its generated ID and timestamps. Role
// defaults to RoleUser when empty.
func (s *PostgresStore) AddUser(ctx context.Context, u *domain.User) error {
	if u.Role == "" {
		u.Role = domain.RoleUser
	}
	if !u.Role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, u.Role)
	}

	args := pgx.NamedArgs{
		"auth_id": u.AuthID,
		"email":   strings.TrimSpace(u.Email),
		"name":    u.Name,
		"role":    string(u.Role),
	}

	if err := scanUser(s.pool.QueryRow(ctx, queryInsertUser, args), u); err != nil {
		return mapError("adding user", err)
	}
	return nil
}

// GetByEmail returns the active user with the given email.
func (s *PostgresStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.queryUser(ctx, "getting user by email", queryGetUserByEmail,
		pgx.NamedArgs{"email": strings.TrimSpace(email)})
}

// GetByAuthID returns the active user with the given auth provider ID.
func (s *PostgresStore) GetByAuthID(ctx context.Context, authID string) (*domain.User, error) {
	return s.queryUser(ctx, "getting user by auth id", queryGetUserByAuthID,
		pgx.NamedArgs{"auth_id": authID})
}

// UpdateByAuthID applies upd to the active user with the given auth ID and
// returns the refreshed row.
func (s *PostgresStore) UpdateByAuthID(
	ctx context.Context,
	authID string,
	upd domain.UserUpdate,
) (*domain.User, error) {
	return s.queryUser(ctx, "updating user by auth id", queryUpdateUserByAuthID, pgx.NamedArgs{
		"auth_id": authID,
		"name":    upd.Name,
		"email":   upd.Email,
	})
}

// UpdateByEmail applies upd to the active user with the given email and
// returns the refreshed row.
func (s *PostgresStore) UpdateByEmail(
	ctx context.Context,
	email string,
	upd domain.UserUpdate,
) (*domain.User, error) {
	return s.queryUser(ctx, "updating user by email", queryUpdateUserByEmail, pgx.NamedArgs{
		"email":     strings.TrimSpace(email),
		"name":      upd.Name,
		"new_email": upd.Email,
	})
}

// UpdateRole changes the role of the active user with the given email.
func (s *PostgresStore) UpdateRole(
	ctx context.Context,
	email string,
	role domain.Role,
) (*domain.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}
	return s.queryUser(ctx, "updating user role", queryUpdateUserRole, pgx.NamedArgs{
		"email": strings.TrimSpace(email),
		"role":  string(role),
	})
}

// DeleteUser soft deletes the active user with the given auth ID.
func (s *PostgresStore) DeleteUser(ctx context.Context, authID string) error {
	tag, err := s.pool.Exec(ctx, querySoftDeleteUser, pgx.NamedArgs{"auth_id": authID})
	if err != nil {
		return mapError("deleting user", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListUsers returns active users matching q and the total match count.
func (s *PostgresStore) ListUsers(ctx context.Context, q *UserQuery) ([]domain.User, int, error) {
	if q == nil {
		q = &UserQuery{}
	}
	if q.Role != nil && !q.Role.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidRole, *q.Role)
	}

	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, mapError("counting users", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, mapError("listing users", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := scanUser(rows, &u); err != nil {
			return nil, 0, mapError("scanning user", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError("iterating users", err)
	}

	return users, total, nil
}

func (s *PostgresStore) queryUser(
	ctx context.Context,
	op, query string,
	args pgx.NamedArgs,
) (*domain.User, error) {
	u := &domain.User{}
	if err := scanUser(s.pool.QueryRow(ctx, query, args), u); err != nil {
		return nil, mapError(op, err)
	}
	return u, nil
}

func scanUser(row pgx.Row, u *domain.User) error {
	var role string
	err := row.Scan(
		&u.ID, &u.AuthID, &u.Email, &u.Name, &role,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	u.Role = domain.Role(role)
	return nil
}

// mapError translates pgx errors into repository errors.
func mapError(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}

	return fmt.Errorf("%w: %s: %w", ErrUnavailable, op, err)
}
