// Package budget derives display state for budgets from the current
// expense set. Spent amounts are never persisted; they are recomputed on
// every render.
package budget

import "spendview/internal/models"

// nearLimitRatio is the share of a budget's limit above which spending is
// flagged as close to the limit.
const nearLimitRatio = 0.80

// Status is a budget enriched with the spend computed against it. Spent
// duplicates the embedded SpentAmount as a plain value for rendering.
type Status struct {
	models.Budget
	Spent      float64
	Remaining  float64
	OverBudget bool
	NearLimit  bool
}

// ComputeStatus fills in spent amounts and limit flags for each budget.
// An expense counts toward a budget when its category id matches and its
// date falls inside the budget window, boundaries included. Pure: no I/O,
// inputs are not modified.
//
// A zero-limit budget has no defined spend ratio; any positive spend
// against one is treated as over budget, and zero spend as neither over
// nor near.
func ComputeStatus(budgets []models.Budget, expenses []models.Expense) []Status {
	statuses := make([]Status, 0, len(budgets))
	for _, b := range budgets {
		var spent float64
		for _, e := range expenses {
			if e.Category == nil || e.Category.ID != b.CategoryID {
				continue
			}
			if e.Date.Before(b.StartDate.Time) || e.Date.After(b.EndDate.Time) {
				continue
			}
			spent += e.Amount
		}

		s := Status{Budget: b, Spent: spent}
		amount := spent
		s.SpentAmount = &amount
		s.Remaining = b.LimitAmount - spent
		switch {
		case b.LimitAmount == 0:
			s.OverBudget = spent > 0
		case spent > b.LimitAmount:
			s.OverBudget = true
		case spent/b.LimitAmount > nearLimitRatio:
			s.NearLimit = true
		}
		statuses = append(statuses, s)
	}
	return statuses
}

// TotalSpent sums the amounts of all expenses, with no filtering.
func TotalSpent(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// UniqueCategories collects each distinct expense category once, in
// first-seen order, skipping uncategorized expenses. The result is a
// presentation convenience for category pickers, not an authoritative
// registry.
func UniqueCategories(expenses []models.Expense) []models.Category {
	seen := make(map[int]bool)
	var categories []models.Category
	for _, e := range expenses {
		if e.Category == nil || seen[e.Category.ID] {
			continue
		}
		seen[e.Category.ID] = true
		categories = append(categories, *e.Category)
	}
	return categories
}
