package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/opty-search/internal/store"
	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// UsersHandler serves user account management.
type UsersHandler struct {
	store store.UserStore
	log   *slog.Logger
}

// NewUsersHandler creates a new UsersHandler.
func NewUsersHandler(s store.UserStore, log *slog.Logger) *UsersHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UsersHandler{store: s, log: log}
}

// --- Input/Output types ---

// ListUsersInput is the input for listing users.
type ListUsersInput struct {
	Role   string `query:"role"   doc:"Filter by role"                   enum:"user,supervisor,"`
	Limit  int    `query:"limit"  doc:"Number of results (default 100)" minimum:"0" maximum:"500"`
	Offset int    `query:"offset" doc:"Pagination offset"               minimum:"0"`
}

// ListUsersOutput is the response for listing users.
type ListUsersOutput struct {
	Body struct {
		Users  []domain.User `json:"users"`
		Total  int           `json:"total"`
		Limit  int           `json:"limit"`
		Offset int           `json:"offset"`
	}
}

// CreateUserInput is the input for registering a user.
type CreateUserInput struct {
	Body struct {
		AuthID string `json:"auth_id" minLength:"1" doc:"Identifier issued by the auth provider"`
		Email  string `json:"email"   format:"email" doc:"Account email"`
		Name   string `json:"name,omitempty"         doc:"Display name"`
		Role   string `json:"role,omitempty"         doc:"Role (default user)" enum:"user,supervisor"`
	}
}

// UserOutput wraps a single user.
type UserOutput struct {
	Body domain.User
}

// AuthIDInput addresses a user by auth provider ID.
type AuthIDInput struct {
	AuthID string `path:"auth_id" doc:"Auth provider user ID"`
}

// EmailInput addresses a user by email.
type EmailInput struct {
	Email string `path:"email" doc:"Account email"`
}

// UpdateUserInput updates the profile of the user with the given auth ID.
type UpdateUserInput struct {
	AuthID string `path:"auth_id" doc:"Auth provider user ID"`
	Body   domain.UserUpdate
}

// UpdateRoleInput changes the role of the user with the given email.
type UpdateRoleInput struct {
	Email string `path:"email" doc:"Account email"`
	Body  struct {
		Role string `json:"role" enum:"user,supervisor" doc:"New role"`
	}
}

// --- Handlers ---

// ListUsers returns active users, optionally filtered by role.
func (h *UsersHandler) ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error) {
	q := &store.UserQuery{Limit: input.Limit, Offset: input.Offset}
	if input.Role != "" {
		role := domain.Role(input.Role)
		q.Role = &role
	}

	users, total, err := h.store.ListUsers(ctx, q)
	if err != nil {
		return nil, h.storeError("listing users", err)
	}

	resp := &ListUsersOutput{}
	resp.Body.Users = users
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// CreateUser registers a new account.
func (h *UsersHandler) CreateUser(ctx context.Context, input *CreateUserInput) (*UserOutput, error) {
	u := &domain.User{
		AuthID: input.Body.AuthID,
		Email:  input.Body.Email,
		Name:   input.Body.Name,
		Role:   domain.Role(input.Body.Role),
	}

	if err := h.store.AddUser(ctx, u); err != nil {
		return nil, h.storeError("adding user", err)
	}
	return &UserOutput{Body: *u}, nil
}

// GetUser returns the user with the given auth ID.
func (h *UsersHandler) GetUser(ctx context.Context, input *AuthIDInput) (*UserOutput, error) {
	u, err := h.store.GetByAuthID(ctx, input.AuthID)
	if err != nil {
		return nil, h.storeError("getting user", err)
	}
	return &UserOutput{Body: *u}, nil
}

// GetUserByEmail returns the user with the given email.
func (h *UsersHandler) GetUserByEmail(ctx context.Context, input *EmailInput) (*UserOutput, error) {
	u, err := h.store.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, h.storeError("getting user by email", err)
	}
	return &UserOutput{Body: *u}, nil
}

// UpdateUser changes the name or email of a user.
func (h *UsersHandler) UpdateUser(ctx context.Context, input *UpdateUserInput) (*UserOutput, error) {
	if input.Body.Empty() {
		return nil, huma.Error400BadRequest("nothing to update")
	}

	u, err := h.store.UpdateByAuthID(ctx, input.AuthID, input.Body)
	if err != nil {
		return nil, h.storeError("updating user", err)
	}
	return &UserOutput{Body: *u}, nil
}

// UpdateRole changes the role of the user with the given email.
func (h *UsersHandler) UpdateRole(ctx context.Context, input *UpdateRoleInput) (*UserOutput, error) {
	role, err := domain.ParseRole(input.Body.Role)
	if err != nil {
		return nil, huma.Error422UnprocessableEntity(err.Error())
	}

	u, err := h.store.UpdateRole(ctx, input.Email, role)
	if err != nil {
		return nil, h.storeError("updating role", err)
	}
	return &UserOutput{Body: *u}, nil
}

// DeleteUser deactivates the user with the given auth ID.
func (h *UsersHandler) DeleteUser(ctx context.Context, input *AuthIDInput) (*struct{}, error) {
	if err := h.store.DeleteUser(ctx, input.AuthID); err != nil {
		return nil, h.storeError("deleting user", err)
	}
	return nil, nil
}

func (h *UsersHandler) storeError(op string, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("user not found")
	case errors.Is(err, store.ErrDuplicate):
		return huma.Error409Conflict("user already exists")
	case errors.Is(err, store.ErrInvalidRole):
		return huma.Error422UnprocessableEntity("invalid role")
	default:
		h.log.Error(op+" failed", "error", err)
		return huma.Error500InternalServerError(op + " failed")
	}
}

// RegisterUserRoutes registers user endpoints with the Huma API.
func RegisterUserRoutes(api huma.API, h *UsersHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-users",
		Method:      http.MethodGet,
		Path:        "/api/v1/users",
		Summary:     "List users",
		Description: "Returns active users with optional role filter and pagination.",
		Tags:        []string{"users"},
	}, h.ListUsers)

	huma.Register(api, huma.Operation{
		OperationID:   "create-user",
		Method:        http.MethodPost,
		Path:          "/api/v1/users",
		Summary:       "Create a user",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusConflict},
	}, h.CreateUser)

	huma.Register(api, huma.Operation{
		OperationID: "get-user",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/{auth_id}",
		Summary:     "Get a user by auth ID",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetUser)

	huma.Register(api, huma.Operation{
		OperationID: "update-user",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/{auth_id}",
		Summary:     "Update a user",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound, http.StatusConflict},
	}, h.UpdateUser)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-user",
		Method:        http.MethodDelete,
		Path:          "/api/v1/users/{auth_id}",
		Summary:       "Deactivate a user",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteUser)

	huma.Register(api, huma.Operation{
		OperationID: "get-user-by-email",
		Method:      http.MethodGet,
		Path:        "/api/v1/users/by-email/{email}",
		Summary:     "Get a user by email",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetUserByEmail)

	huma.Register(api, huma.Operation{
		OperationID: "update-user-role",
		Method:      http.MethodPut,
		Path:        "/api/v1/users/by-email/{email}/role",
		Summary:     "Change a user's role",
		Tags:        []string{"users"},
		Errors:      []int{http.StatusNotFound},
	}, h.UpdateRole)
}
