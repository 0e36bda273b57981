package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"spendview/internal/budget"
	apperrors "spendview/internal/errors"
	"spendview/internal/logger"
	"spendview/internal/middleware"
	"spendview/internal/models"
	"spendview/internal/pagination"
)

// Expenses renders the expense list with the running total and the budget
// table. Expenses and budgets are fetched concurrently; if either fetch
// fails the whole load fails with a single error and nothing partial is
// rendered.
func (h *Handlers) Expenses(c *gin.Context) {
	s := middleware.CurrentSession(c)

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		page = pagination.PageRequest{}
	}
	page.Defaults()

	var (
		result  *pagination.Result[models.Expense]
		budgets []models.Budget
	)
	g, ctx := errgroup.WithContext(c.Request.Context())
	g.Go(func() error {
		var err error
		result, err = h.client.PaginatedExpenses(ctx, s.Token, page)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = h.client.UserBudgets(ctx, s.Token)
		return err
	})
	if err := g.Wait(); err != nil {
		h.failPage(c, "expenses", err, nil)
		return
	}

	c.HTML(http.StatusOK, "expenses", h.view(c, gin.H{
		"Result":  result,
		"Total":   budget.TotalSpent(result.Data),
		"Budgets": budget.ComputeStatus(budgets, result.Data),
		"Flash":   c.Query("flash"),
		"Error":   c.Query("error"),
	}))
}

// NewExpense renders the create form with category suggestions drawn from
// the user's existing expenses.
func (h *Handlers) NewExpense(c *gin.Context) {
	categories := h.categorySuggestions(c)
	c.HTML(http.StatusOK, "expense_form", h.view(c, gin.H{
		"Categories": categories,
		"Form":       models.ExpenseInsert{},
	}))
}

// CreateExpense validates and submits a new expense, then reloads the
// list wholesale.
func (h *Handlers) CreateExpense(c *gin.Context) {
	var in models.ExpenseInsert
	if err := c.ShouldBind(&in); err != nil {
		h.failPage(c, "expense_form", bindingError(err), gin.H{
			"Categories": h.categorySuggestions(c),
			"Form":       in,
		})
		return
	}

	if _, err := h.client.CreateExpense(c.Request.Context(), middleware.CurrentSession(c).Token, in); err != nil {
		h.failPage(c, "expense_form", err, gin.H{
			"Categories": h.categorySuggestions(c),
			"Form":       in,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/expenses?flash="+url.QueryEscape("Expense created"))
}

// EditExpense renders the edit form pre-filled from the backend's copy.
func (h *Handlers) EditExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		h.failPage(c, "expenses", err, nil)
		return
	}

	s := middleware.CurrentSession(c)
	expense, err := h.client.Expense(c.Request.Context(), s.Token, id)
	if err != nil {
		h.failPage(c, "expenses", err, nil)
		return
	}

	form := models.ExpenseInsert{
		Title:  expense.Title,
		Amount: expense.Amount,
		Date:   expense.Date.Time,
	}
	if expense.Category != nil {
		form.CategoryName = expense.Category.Name
	}

	c.HTML(http.StatusOK, "expense_form", h.view(c, gin.H{
		"Categories": h.categorySuggestions(c),
		"Form":       form,
		"EditID":     id,
	}))
}

// UpdateExpense validates and submits a replacement for an expense.
func (h *Handlers) UpdateExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		h.failPage(c, "expenses", err, nil)
		return
	}

	var in models.ExpenseInsert
	if err := c.ShouldBind(&in); err != nil {
		h.failPage(c, "expense_form", bindingError(err), gin.H{
			"Categories": h.categorySuggestions(c),
			"Form":       in,
			"EditID":     id,
		})
		return
	}

	if _, err := h.client.UpdateExpense(c.Request.Context(), middleware.CurrentSession(c).Token, id, in); err != nil {
		h.failPage(c, "expense_form", err, gin.H{
			"Categories": h.categorySuggestions(c),
			"Form":       in,
			"EditID":     id,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/expenses?flash="+url.QueryEscape("Expense updated"))
}

// DeleteExpense deletes an expense after backend confirmation. The list is
// reloaded wholesale either way; a failed delete changes nothing.
func (h *Handlers) DeleteExpense(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/expenses?error="+url.QueryEscape(errorMessage(err)))
		return
	}

	if err := h.client.DeleteExpense(c.Request.Context(), middleware.CurrentSession(c).Token, id); err != nil {
		if isCode(err, apperrors.ErrSessionExpired.Code) {
			h.sessions.Logout(c)
			c.Redirect(http.StatusSeeOther, "/login?from="+url.QueryEscape("/expenses"))
			return
		}
		c.Redirect(http.StatusSeeOther, "/expenses?error="+url.QueryEscape(errorMessage(err)))
		return
	}

	c.Redirect(http.StatusSeeOther, "/expenses?flash="+url.QueryEscape("Expense deleted"))
}

// categorySuggestions derives the category picker set from the user's
// expenses, deduplicated in first-seen order. The set is best-effort: a
// fetch failure just yields an empty picker, since the backend remains
// the source of truth for categories.
func (h *Handlers) categorySuggestions(c *gin.Context) []models.Category {
	s := middleware.CurrentSession(c)
	page := pagination.PageRequest{}
	page.Defaults()

	result, err := h.client.PaginatedExpenses(c.Request.Context(), s.Token, page)
	if err != nil {
		logger.Get().Warnw("could not load category suggestions", "error", err.Error())
		return nil
	}
	return budget.UniqueCategories(result.Data)
}
