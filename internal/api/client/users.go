package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/donaldgifford/opty-search/pkg/types"
)

// UsersResponse wraps a paginated users response.
type UsersResponse struct {
	Users  []domain.User `json:"users"`
	Total  int           `json:"total"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Role   string
	Limit  int
	Offset int
}

// CreateUserRequest is the body of the create-user endpoint.
type CreateUserRequest struct {
	AuthID string `json:"auth_id"`
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
}

// ListUsers returns active users matching params.
func (c *Client) ListUsers(ctx context.Context, params *ListUsersParams) (*UsersResponse, error) {
	q := url.Values{}
	if params.Role != "" {
		q.Set("role", params.Role)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/users"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp UsersResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateUser registers a user.
func (c *Client) CreateUser(ctx context.Context, req *CreateUserRequest) (*domain.User, error) {
	var u domain.User
	if err := c.post(ctx, "/api/v1/users", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser returns the user with the given auth ID.
func (c *Client) GetUser(ctx context.Context, authID string) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "/api/v1/users/"+url.PathEscape(authID), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUserByEmail returns the user with the given email.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := c.get(ctx, "/api/v1/users/by-email/"+url.PathEscape(email), &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateUser changes the profile of the user with the given auth ID.
func (c *Client) UpdateUser(ctx context.Context, authID string, upd domain.UserUpdate) (*domain.User, error) {
	var u domain.User
	if err := c.put(ctx, "/api/v1/users/"+url.PathEscape(authID), upd, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateRole changes the role of the user with the given email.
func (c *Client) UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	var u domain.User
	body := map[string]string{"role": string(role)}
	if err := c.put(ctx, "/api/v1/users/by-email/"+url.PathEscape(email)+"/role", body, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// DeleteUser deactivates the user with the given auth ID.
func (c *Client) DeleteUser(ctx context.Context, authID string) error {
	return c.del(ctx, "/api/v1/users/"+url.PathEscape(authID))
}
