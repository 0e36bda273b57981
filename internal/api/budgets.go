package api

import (
	"context"
	"net/http"
	"strconv"

	apperrors "spendview/internal/errors"
	"spendview/internal/models"
)

// UserBudgets fetches all of the user's budgets.
func (c *Client) UserBudgets(ctx context.Context, token string) ([]models.Budget, error) {
	var out []models.Budget
	if err := c.do(ctx, http.MethodGet, "/budgets/getuserbudgets", token, nil, &out, apperrors.ErrServer, "Failed to fetch budgets"); err != nil {
		return nil, err
	}
	return out, nil
}

// Budget fetches a single budget by id.
func (c *Client) Budget(ctx context.Context, token string, id int) (*models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, http.MethodGet, "/budgets/getbudgetbyid/"+strconv.Itoa(id), token, nil, &out, apperrors.ErrServer, "Failed to fetch budget"); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBudget creates a new budget.
func (c *Client) CreateBudget(ctx context.Context, token string, in models.BudgetInsert) (*models.Budget, error) {
	var out models.Budget
	if err := c.do(ctx, http.MethodPost, "/budgets/createbudget", token, in, &out, apperrors.ErrServer, "Failed to create budget"); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBudget deletes a budget by id.
func (c *Client) DeleteBudget(ctx context.Context, token string, id int) error {
	return c.do(ctx, http.MethodDelete, "/budgets/deletebudget/"+strconv.Itoa(id), token, nil, nil, apperrors.ErrServer, "Failed to delete budget")
}
