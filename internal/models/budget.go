package models

import "time"

// Budget mirrors the backend's read-only budget representation.
// SpentAmount is never authoritative: the backend sends null and the
// client recomputes it from the current expense set on every render.
type Budget struct {
	ID           int      `json:"id"`
	UserID       int      `json:"userId"`
	CategoryID   int      `json:"categoryId"`
	CategoryName string   `json:"categoryName"`
	LimitAmount  float64  `json:"limitAmount"`
	SpentAmount  *float64 `json:"spentAmount"`
	StartDate    Date     `json:"startDate"`
	EndDate      Date     `json:"endDate"`
}

// BudgetInsert is the payload for creating a budget. The end of the
// window must fall after its start.
type BudgetInsert struct {
	CategoryID  int       `json:"categoryId" form:"categoryId" binding:"required,min=1"`
	LimitAmount float64   `json:"limitAmount" form:"limitAmount" binding:"required,gt=0"`
	StartDate   time.Time `json:"startDate" form:"startDate" time_format:"2006-01-02" binding:"required"`
	EndDate     time.Time `json:"endDate" form:"endDate" time_format:"2006-01-02" binding:"required,gtfield=StartDate"`
}
