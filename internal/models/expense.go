package models

import (
	"sort"
	"strings"
	"time"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single expense record.
type Expense struct {
	Model
	UserID      uint64          `json:"userId" example:"17"`                                 // ID of the user owning the expense
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.50"`    // Amount of money spent
	Category    string          `json:"category" example:"Food"`                             // Category of the expense
	Description string          `json:"description" example:"Weekly groceries"`              // What the money was spent on
	Date        time.Time       `json:"date" example:"2024-05-01T00:00:00Z"`                 // Day the expense occurred
}

// CategoryMapping maps lowercase category names to replacements.
// Keys may be glob patterns, e.g. "grocer*".
type CategoryMapping map[string]string

// AfterFind enforces the date to be in UTC after reading from the database.
func (e *Expense) AfterFind(tx *gorm.DB) (err error) {
	err = e.Model.AfterFind(tx)
	if err != nil {
		return err
	}

	e.Date = e.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - trims whitespace from string fields
//   - sets the timezone for the date to UTC, defaulting to the current time
func (e *Expense) BeforeSave(_ *gorm.DB) (err error) {
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// IsValid reports whether the expense satisfies the data integrity
// requirements: a positive amount and non-blank category and description.
func (e Expense) IsValid() bool {
	return e.Amount.IsPositive() &&
		strings.TrimSpace(e.Category) != "" &&
		strings.TrimSpace(e.Description) != ""
}

// MatchesCategory checks case-insensitively whether the expense belongs
// to the target category.
func (e Expense) MatchesCategory(target string) bool {
	return strings.EqualFold(e.Category, target)
}

// InDateRange reports whether the expense date falls within the range.
// Both ends are inclusive.
func (e Expense) InDateRange(start, end time.Time) bool {
	return !e.Date.Before(start) && !e.Date.After(end)
}

// ContainsKeyword checks case-insensitively whether the keyword occurs
// in the description.
func (e Expense) ContainsKeyword(keyword string) bool {
	return strings.Contains(strings.ToLower(e.Description), strings.ToLower(keyword))
}

// ApplyDiscount reduces the amount by the given percentage and reports
// whether the amount was changed. Percentages outside the open interval
// (0, 100) leave the amount untouched.
func (e *Expense) ApplyDiscount(percent decimal.Decimal) bool {
	hundred := decimal.NewFromInt(100)
	if !percent.IsPositive() || percent.GreaterThanOrEqual(hundred) {
		return false
	}

	e.Amount = e.Amount.Mul(hundred.Sub(percent)).Div(hundred)
	return true
}

// Recategorize replaces the category if the mapping contains an entry
// matching the category name. Entries are matched case-insensitively,
// an exact entry wins over glob patterns, patterns are tried in lexical
// order so that the result does not depend on map iteration order.
// Reports whether the category changed.
func (e *Expense) Recategorize(mapping CategoryMapping) bool {
	key := strings.ToLower(strings.TrimSpace(e.Category))

	patterns := make([]string, 0, len(mapping))
	for pattern := range mapping {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	for _, pattern := range patterns {
		if strings.ToLower(pattern) == key {
			e.Category = mapping[pattern]
			return true
		}
	}

	for _, pattern := range patterns {
		if glob.Glob(strings.ToLower(pattern), key) {
			e.Category = mapping[pattern]
			return true
		}
	}

	return false
}

// Clone returns a copy of the expense with the given ID. The copy does
// not carry the timestamps of the original.
func (e Expense) Clone(newID uint64) Expense {
	return Expense{
		Model:       Model{ID: newID},
		UserID:      e.UserID,
		Amount:      e.Amount,
		Category:    e.Category,
		Description: e.Description,
		Date:        e.Date,
	}
}

// Equal checks if two expenses have the same content. The ID and the
// timestamps are ignored, which makes Equal the basis for duplicate
// detection.
func (e Expense) Equal(other Expense) bool {
	return e.UserID == other.UserID &&
		e.Amount.Equal(other.Amount) &&
		e.Category == other.Category &&
		e.Description == other.Description &&
		e.Date.Equal(other.Date)
}

// Day returns the calendar day the expense occurred on in UTC.
func (e Expense) Day() time.Time {
	year, month, day := e.Date.In(time.UTC).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
