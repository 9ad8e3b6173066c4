// Package store defines the user repository for opty-search. Handlers depend
// on the UserStore interface, never on the concrete PostgreSQL
// implementation, so they can be tested without a running database.
package store

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// Repository errors.
var (
	// ErrNotFound is returned when no active user matches a lookup.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate is returned when an email or auth ID is already taken.
	ErrDuplicate = errors.New("user already exists")
	// ErrInvalidRole is returned for roles other than user and supervisor.
	ErrInvalidRole = errors.New("invalid role")
	// ErrUnavailable wraps any other database failure.
	ErrUnavailable = errors.New("user store unavailable")
)

// UserQuery defines optional filters for listing users.
type UserQuery struct {
	Role   *domain.Role
	Limit  int // default 100
	Offset int
}

// UserStore defines all user data access operations. Reads only ever see
// active users; DeleteUser is a soft delete.
type UserStore interface {
	AddUser(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByAuthID(ctx context.Context, authID string) (*domain.User, error)
	UpdateByAuthID(ctx context.Context, authID string, upd domain.UserUpdate) (*domain.User, error)
	UpdateByEmail(ctx context.Context, email string, upd domain.UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, authID string) error
	ListUsers(ctx context.Context, q *UserQuery) ([]domain.User, int, error)
	UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)

	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
}
