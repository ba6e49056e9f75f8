package v1

import (
	"time"

	"github.com/expense-manager/backend/internal/stats"
	"github.com/shopspring/decimal"
)

type Totals struct {
	Total   decimal.Decimal `json:"total" example:"327.80"`  // Sum of all matched expense amounts
	Average decimal.Decimal `json:"average" example:"40.98"` // Average amount of the matched expenses
	Count   int             `json:"count" example:"8"`       // Number of matched expenses
}

type TotalsResponse struct {
	Data  *Totals `json:"data"`  // Data for the totals
	Error *string `json:"error"` // The error, if any occurred
}

type DailyAverage struct {
	Average   decimal.Decimal `json:"average" example:"15"`     // Average amount spent per day of the window
	StartDate *time.Time      `json:"startDate" example:"2024-01-01T00:00:00Z"` // First day of the window, if one was requested
	EndDate   *time.Time      `json:"endDate" example:"2024-01-31T00:00:00Z"`   // Last day of the window, if one was requested
}

type DailyAverageResponse struct {
	Data  *DailyAverage `json:"data"`  // Data for the daily average
	Error *string       `json:"error"` // The error, if any occurred
}

type PeakDayResponse struct {
	Data  *stats.DayTotal `json:"data"`  // The day with the highest total spending
	Error *string         `json:"error"` // The error, if any occurred
}

type CategoryTotalListResponse struct {
	Data  []stats.CategoryTotal `json:"data"`  // Per-category totals, ordered by total descending
	Error *string               `json:"error"` // The error, if any occurred
}

type MonthResponse struct {
	Data  *stats.MonthSummary `json:"data"`  // Data for the month
	Error *string             `json:"error"` // The error, if any occurred
}
