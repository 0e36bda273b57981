package api

import (
	"context"
	"net/http"
	"strconv"

	apperrors "spendview/internal/errors"
	"spendview/internal/models"
	"spendview/internal/pagination"
)

// PaginatedExpenses fetches one page of the user's expenses.
func (c *Client) PaginatedExpenses(ctx context.Context, token string, page pagination.PageRequest) (*pagination.Result[models.Expense], error) {
	var out pagination.Result[models.Expense]
	path := "/expenses/getpaginateduserexpenses?" + page.Query().Encode()
	if err := c.do(ctx, http.MethodGet, path, token, nil, &out, apperrors.ErrServer, "Failed to fetch expenses"); err != nil {
		return nil, err
	}
	return &out, nil
}

// Expense fetches a single expense by id.
func (c *Client) Expense(ctx context.Context, token string, id int) (*models.Expense, error) {
	var out models.Expense
	if err := c.do(ctx, http.MethodGet, "/expenses/getexpensebyid/"+strconv.Itoa(id), token, nil, &out, apperrors.ErrServer, "Failed to fetch expense"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateExpense creates a new expense.
func (c *Client) CreateExpense(ctx context.Context, token string, in models.ExpenseInsert) (*models.Expense, error) {
	var out models.Expense
	if err := c.do(ctx, http.MethodPost, "/expenses/createexpense", token, in, &out, apperrors.ErrServer, "Failed to create expense"); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateExpense replaces an existing expense.
func (c *Client) UpdateExpense(ctx context.Context, token string, id int, in models.ExpenseInsert) (*models.Expense, error) {
	var out models.Expense
	if err := c.do(ctx, http.MethodPut, "/expenses/updateexpense/"+strconv.Itoa(id), token, in, &out, apperrors.ErrServer, "Failed to update expense"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteExpense deletes an expense by id.
func (c *Client) DeleteExpense(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/expenses/deleteexpense/"+strconv.Itoa(id), token, nil, nil, apperrors.ErrServer, "Failed to delete expense")
}
