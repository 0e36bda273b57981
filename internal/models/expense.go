package models

import "time"

// Category is the nested category reference carried on an expense.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Expense mirrors the backend's read-only expense representation. The
// category is optional: uncategorized expenses carry none.
type Expense struct {
	ID       int       `json:"id"`
	Title    string    `json:"title"`
	Amount   float64   `json:"amount"`
	Date     Date      `json:"date"`
	Category *Category `json:"category,omitempty"`
}

// ExpenseInsert is the payload for creating or replacing an expense. The
// backend resolves CategoryName to an existing category or creates one.
type ExpenseInsert struct {
	Title        string    `json:"title" form:"title" binding:"required"`
	Amount       float64   `json:"amount" form:"amount" binding:"gte=0"`
	Date         time.Time `json:"date" form:"date" time_format:"2006-01-02" binding:"required"`
	CategoryName string    `json:"categoryName" form:"categoryName" binding:"required"`
}
