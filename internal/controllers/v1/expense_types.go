package v1

import (
	"time"

	"github.com/expense-manager/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ExpenseEditable struct {
	UserID      uint64          `json:"userId" example:"17"`                                            // ID of the user the expense belongs to
	Amount      decimal.Decimal `json:"amount" example:"14.50"`                                         // The amount spent, must be positive
	Category    string          `json:"category" example:"Groceries"`                                   // Category the expense is filed under
	Description string          `json:"description" example:"Weekly shopping"`                          // What the money was spent on
	Date        time.Time       `json:"date" example:"2024-05-01T00:00:00Z" default:"current timestamp"` // Date of the expense
}

// model returns the database resource for the editable fields
func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		UserID:      editable.UserID,
		Amount:      editable.Amount,
		Category:    editable.Category,
		Description: editable.Description,
		Date:        editable.Date,
	}
}

type ExpenseResponse struct {
	Data  *models.Expense `json:"data"`  // Data for the expense
	Error *string         `json:"error"` // The error, if any occurred
}

type ExpenseListResponse struct {
	Data  []models.Expense `json:"data"`  // List of expenses
	Error *string          `json:"error"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Category  string    `form:"category"`                           // Filter by category, matched case-insensitively
	FromDate  time.Time `form:"fromDate" time_format:"2006-01-02" time_utc:"1"`  // Expenses at and after this date
	UntilDate time.Time `form:"untilDate" time_format:"2006-01-02" time_utc:"1"` // Expenses before and at this date
	Keyword   string    `form:"keyword"`                            // Filter by keyword in the description
	Offset    uint      `form:"offset"`                             // The offset of the first Expense returned. Defaults to 0.
	Limit     int       `form:"limit,default=50"`                   // Maximum number of Expenses to return. Defaults to 50.
}

type DateRangeQuery struct {
	StartDate time.Time `form:"startDate" time_format:"2006-01-02" time_utc:"1" example:"2024-05-01"` // First day of the range, inclusive
	EndDate   time.Time `form:"endDate" time_format:"2006-01-02" time_utc:"1" example:"2024-05-31"`   // Last day of the range, inclusive
}

type RecategorizeRequest struct {
	Mapping models.CategoryMapping `json:"mapping"` // Old category names or glob patterns to new names
}

type DiscountRequest struct {
	Category string          `json:"category" example:"Groceries"` // Category to apply the discount to
	Percent  decimal.Decimal `json:"percent" example:"10"`         // Discount percentage, must be between 0 and 100 exclusive
}

// ChangedResponse reports how many expenses a bulk update modified.
type ChangedResponse struct {
	Data  *Changed `json:"data"`  // Data for the bulk update
	Error *string  `json:"error"` // The error, if any occurred
}

type Changed struct {
	Changed int `json:"changed" example:"3"` // Number of expenses that were modified
}
