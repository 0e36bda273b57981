package api

import (
	"context"
	"net/http"
	"strconv"

	apperrors "spendview/internal/errors"
	"spendview/internal/models"
	"spendview/internal/pagination"
)

// PaginatedUsers fetches one page of user accounts. Admin only.
func (c *Client) PaginatedUsers(ctx context.Context, token string, page pagination.PageRequest) (*pagination.Result[models.User], error) {
	var out pagination.Result[models.User]
	path := "/users/getallusers?" + page.Query().Encode()
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out, apperrors.ErrServer, "Failed to fetch users"); err != nil {
		return nil, err
	}
	return &out, nil
}

// User fetches a single user by id. Admin only.
func (c *Client) User(ctx context.Context, token string, id int) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/users/getuserbyid/"+strconv.Itoa(id), token, nil, &out, apperrors.ErrServer, "Failed to fetch user"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateUser creates an account on behalf of an administrator. Unlike
// Register, the call is authenticated and may set the role.
func (c *Client) CreateUser(ctx context.Context, token string, in models.UserInsert) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPost, "/users/registeruser", token, in, &out, apperrors.ErrServer, "Failed to create user"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateUser updates an existing account's profile fields.
func (c *Client) UpdateUser(ctx context.Context, token string, id int, in models.UserUpdate) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodPut, "/users/updateuser/"+strconv.Itoa(id), token, in, &out, apperrors.ErrServer, "Failed to update user"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUser deletes an account by id. Admin only.
func (c *Client) DeleteUser(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/users/delete/"+strconv.Itoa(id), token, nil, nil, apperrors.ErrServer, "Failed to delete user")
}
