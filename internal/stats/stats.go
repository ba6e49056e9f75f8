// Package stats implements read-only queries and aggregations over a
// snapshot of the expense collection.
//
// None of the functions mutate the expenses passed in. Callers hand in
// the snapshot returned by the store so that a query never interleaves
// with a mutation.
package stats

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/expense-manager/backend/internal/models"
	"github.com/expense-manager/backend/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// ErrNoExpenses is returned by aggregations that are undefined over an
// empty collection.
var ErrNoExpenses = errors.New("there are no expenses matching your query")

// CategoryTotal is the sum of all expense amounts of one category.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`  // Name of the category
	Total    decimal.Decimal `json:"total" example:"1021.17"`  // Sum of all amounts
}

// DayTotal is the sum of all expense amounts of one calendar day.
type DayTotal struct {
	Day   time.Time       `json:"day" example:"2024-05-01T00:00:00Z"` // The calendar day in UTC
	Total decimal.Decimal `json:"total" example:"121.94"`             // Sum of all amounts on that day
}

// MonthSummary aggregates the expenses of one calendar month.
type MonthSummary struct {
	Month      types.Month     `json:"month" example:"2024-05-01T00:00:00Z"` // The month
	Total      decimal.Decimal `json:"total" example:"1337.42"`              // Total spent in the month
	Count      int             `json:"count" example:"21"`                   // Number of expenses in the month
	Categories []CategoryTotal `json:"categories"`                           // Per-category breakdown, highest total first
}

// FilterByCategory returns the expenses belonging to the category,
// matched case-insensitively. The input order is preserved.
func FilterByCategory(expenses []models.Expense, category string) []models.Expense {
	var matches []models.Expense
	for _, expense := range expenses {
		if expense.MatchesCategory(category) {
			matches = append(matches, expense)
		}
	}

	return matches
}

// FilterByDateRange returns the expenses dated within the range.
// Both ends are inclusive.
func FilterByDateRange(expenses []models.Expense, start, end time.Time) []models.Expense {
	var matches []models.Expense
	for _, expense := range expenses {
		if expense.InDateRange(start, end) {
			matches = append(matches, expense)
		}
	}

	return matches
}

// SearchByKeyword returns the expenses whose description contains the
// keyword, matched case-insensitively.
func SearchByKeyword(expenses []models.Expense, keyword string) []models.Expense {
	var matches []models.Expense
	for _, expense := range expenses {
		if expense.ContainsKeyword(keyword) {
			matches = append(matches, expense)
		}
	}

	return matches
}

// FindDuplicates returns the expenses whose content has already
// appeared earlier in the collection. The first occurrence is never
// flagged, only the repeats.
func FindDuplicates(expenses []models.Expense) []models.Expense {
	seen := make(map[string]struct{}, len(expenses))

	var duplicates []models.Expense
	for _, expense := range expenses {
		key := fmt.Sprintf("%d\x00%s\x00%s\x00%s\x00%d",
			expense.UserID,
			expense.Amount.String(),
			expense.Category,
			expense.Description,
			expense.Date.UnixNano(),
		)

		if _, ok := seen[key]; ok {
			duplicates = append(duplicates, expense)
			continue
		}
		seen[key] = struct{}{}
	}

	return duplicates
}

// Recent returns up to limit expenses, most recent date first. Ties
// keep the collection order.
func Recent(expenses []models.Expense, limit int) []models.Expense {
	if limit <= 0 {
		return nil
	}

	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)

	slices.SortStableFunc(sorted, func(a, b models.Expense) int {
		return b.Date.Compare(a.Date)
	})

	if limit > len(sorted) {
		limit = len(sorted)
	}

	return sorted[:limit]
}

// Total returns the sum of all amounts, zero for an empty collection.
func Total(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	return total
}

// Average returns the mean amount, zero for an empty collection.
func Average(expenses []models.Expense) decimal.Decimal {
	if len(expenses) == 0 {
		return decimal.Zero
	}

	return Total(expenses).Div(decimal.NewFromInt(int64(len(expenses))))
}

// TotalsByCategory returns the summed amount per category, with one
// entry per distinct category name.
func TotalsByCategory(expenses []models.Expense) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
	}

	return totals
}

// TopCategories returns up to limit categories ranked by their total
// amount, highest first. Equal totals are ranked by category name
// ascending so that the order is deterministic.
func TopCategories(expenses []models.Expense, limit int) []CategoryTotal {
	ranked := rankCategories(expenses)

	if limit < 0 {
		limit = 0
	}
	if limit > len(ranked) {
		limit = len(ranked)
	}

	return ranked[:limit]
}

// Monthly summarizes the expenses of the given calendar month.
func Monthly(expenses []models.Expense, month types.Month) MonthSummary {
	var matches []models.Expense
	for _, expense := range expenses {
		if month.Contains(expense.Date) {
			matches = append(matches, expense)
		}
	}

	return MonthSummary{
		Month:      month,
		Total:      Total(matches),
		Count:      len(matches),
		Categories: rankCategories(matches),
	}
}

// DailyAverage returns the total amount spent in the window divided by
// the number of calendar days in it, both ends inclusive. A zero start
// or end extends the window to the first or last expense day. The
// result is zero when no expense falls within the window.
func DailyAverage(expenses []models.Expense, start, end time.Time) decimal.Decimal {
	first, last, ok := expenseSpan(expenses)
	if !ok {
		return decimal.Zero
	}

	if start.IsZero() {
		start = first
	}
	if end.IsZero() {
		end = last
	}

	startDay := day(start)
	endDay := day(end)
	if endDay.Before(startDay) {
		return decimal.Zero
	}

	total := decimal.Zero
	matched := false
	for _, expense := range expenses {
		if expenseDay := expense.Day(); !expenseDay.Before(startDay) && !expenseDay.After(endDay) {
			total = total.Add(expense.Amount)
			matched = true
		}
	}

	if !matched {
		return decimal.Zero
	}

	days := int64(endDay.Sub(startDay)/(24*time.Hour)) + 1
	return total.Div(decimal.NewFromInt(days))
}

// PeakDay returns the calendar day with the highest summed amount.
// It fails with ErrNoExpenses over an empty collection.
func PeakDay(expenses []models.Expense) (DayTotal, error) {
	if len(expenses) == 0 {
		return DayTotal{}, ErrNoExpenses
	}

	totals := make(map[time.Time]decimal.Decimal)
	for _, expense := range expenses {
		expenseDay := expense.Day()
		totals[expenseDay] = totals[expenseDay].Add(expense.Amount)
	}

	var peak DayTotal
	for expenseDay, total := range totals {
		if peak.Day.IsZero() ||
			total.GreaterThan(peak.Total) ||
			(total.Equal(peak.Total) && expenseDay.Before(peak.Day)) {
			peak = DayTotal{Day: expenseDay, Total: total}
		}
	}

	return peak, nil
}

// rankCategories returns all categories with their totals, highest
// total first, name ascending on equal totals.
func rankCategories(expenses []models.Expense) []CategoryTotal {
	totals := TotalsByCategory(expenses)

	ranked := make([]CategoryTotal, 0, len(totals))
	for category, total := range totals {
		ranked = append(ranked, CategoryTotal{Category: category, Total: total})
	}

	slices.SortStableFunc(ranked, func(a, b CategoryTotal) int {
		if !a.Total.Equal(b.Total) {
			return b.Total.Cmp(a.Total)
		}
		return strings.Compare(a.Category, b.Category)
	})

	return ranked
}

// expenseSpan returns the first and last expense day.
func expenseSpan(expenses []models.Expense) (first, last time.Time, ok bool) {
	for _, expense := range expenses {
		expenseDay := expense.Day()
		if first.IsZero() || expenseDay.Before(first) {
			first = expenseDay
		}
		if expenseDay.After(last) {
			last = expenseDay
		}
	}

	return first, last, !first.IsZero()
}

func day(t time.Time) time.Time {
	year, month, dayOfMonth := t.In(time.UTC).Date()
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}
