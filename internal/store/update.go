package store

import (
	"time"

	"github.com/expense-manager/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Update describes a partial update of an expense. Only the fields that
// are set are applied.
type Update struct {
	UserID      *uint64          `json:"userId"`
	Amount      *decimal.Decimal `json:"amount"`
	Category    *string          `json:"category"`
	Description *string          `json:"description"`
	Date        *time.Time       `json:"date"`
}

func (u Update) apply(expense *models.Expense) {
	if u.UserID != nil {
		expense.UserID = *u.UserID
	}

	if u.Amount != nil {
		expense.Amount = *u.Amount
	}

	if u.Category != nil {
		expense.Category = *u.Category
	}

	if u.Description != nil {
		expense.Description = *u.Description
	}

	if u.Date != nil {
		expense.Date = *u.Date
	}
}
