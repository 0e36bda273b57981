package handlers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "spendview/internal/errors"
	"spendview/internal/middleware"
	"spendview/internal/models"
)

// NewBudget renders the budget creation form. The category selector is
// backed by the categories appearing on the user's expenses; with no
// categorized expenses yet there is nothing to budget against.
func (h *Handlers) NewBudget(c *gin.Context) {
	today := time.Now()
	c.HTML(http.StatusOK, "budget_form", h.view(c, gin.H{
		"Categories": h.categorySuggestions(c),
		"Form": models.BudgetInsert{
			StartDate: today,
			EndDate:   today.AddDate(0, 1, 0),
		},
	}))
}

// CreateBudget validates the form, the window ordering included, and
// submits the new budget.
func (h *Handlers) CreateBudget(c *gin.Context) {
	var in models.BudgetInsert
	if err := c.ShouldBind(&in); err != nil {
		h.failPage(c, "budget_form", bindingError(err), gin.H{
			"Categories": h.categorySuggestions(c),
			"Form":       in,
		})
		return
	}

	if _, err := h.client.CreateBudget(c.Request.Context(), middleware.CurrentSession(c).Token, in); err != nil {
		h.failPage(c, "budget_form", err, gin.H{
			"Categories": h.categorySuggestions(c),
			"Form":       in,
		})
		return
	}

	c.Redirect(http.StatusSeeOther, "/expenses?flash="+url.QueryEscape("Budget created"))
}

// DeleteBudget deletes a budget after backend confirmation, then reloads
// the expense list wholesale.
func (h *Handlers) DeleteBudget(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/expenses?error="+url.QueryEscape(errorMessage(err)))
		return
	}

	if err := h.client.DeleteBudget(c.Request.Context(), middleware.CurrentSession(c).Token, id); err != nil {
		if isCode(err, apperrors.ErrSessionExpired.Code) {
			h.sessions.Logout(c)
			c.Redirect(http.StatusSeeOther, "/login?from="+url.QueryEscape("/expenses"))
			return
		}
		c.Redirect(http.StatusSeeOther, "/expenses?error="+url.QueryEscape(errorMessage(err)))
		return
	}

	c.Redirect(http.StatusSeeOther, "/expenses?flash="+url.QueryEscape("Budget deleted"))
}
