// Package interchange converts expenses to and from their flat field
// representation, which is used at the HTTP boundary and for bulk
// export and import.
package interchange

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/expense-manager/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ErrDeserialization is returned when an external representation is
// malformed or incomplete. It is wrapped with details about the field
// that caused it.
var ErrDeserialization = errors.New("the expense data is malformed or incomplete")

// Fields lists the field names of the flat representation in document
// order. It doubles as the CSV header.
var Fields = []string{"id", "user_id", "amount", "category", "description", "date"}

// FlatMap is the flat field representation of an expense. Dates are
// encoded as ISO-8601 strings, amounts as decimal strings so that no
// precision is lost in transit.
type FlatMap map[string]any

// ToFlatMap returns the flat representation of the expense.
func ToFlatMap(expense models.Expense) FlatMap {
	return FlatMap{
		"id":          expense.ID,
		"user_id":     expense.UserID,
		"amount":      expense.Amount.String(),
		"category":    expense.Category,
		"description": expense.Description,
		"date":        expense.Date.Format(time.RFC3339),
	}
}

// FromFlatMap parses the flat representation back into an expense.
//
// The user_id, amount, category and description fields are required, a
// missing date defaults to the time returned by now. Unparseable values
// fail with an error wrapping ErrDeserialization.
func FromFlatMap(data FlatMap, now func() time.Time) (models.Expense, error) {
	if now == nil {
		now = time.Now
	}

	var expense models.Expense
	var err error

	// The ID is optional: it is absent before a record is stored
	if _, ok := data["id"]; ok {
		expense.ID, err = uintField(data, "id")
		if err != nil {
			return models.Expense{}, err
		}
	}

	expense.UserID, err = requiredUintField(data, "user_id")
	if err != nil {
		return models.Expense{}, err
	}

	expense.Amount, err = amountField(data)
	if err != nil {
		return models.Expense{}, err
	}

	expense.Category, err = requiredStringField(data, "category")
	if err != nil {
		return models.Expense{}, err
	}

	expense.Description, err = requiredStringField(data, "description")
	if err != nil {
		return models.Expense{}, err
	}

	expense.Date, err = dateField(data, now)
	if err != nil {
		return models.Expense{}, err
	}

	return expense, nil
}

func missingField(key string) error {
	return fmt.Errorf("%w: the %s field is missing", ErrDeserialization, key)
}

func invalidField(key string, value any) error {
	return fmt.Errorf("%w: %v is not a valid value for the %s field", ErrDeserialization, value, key)
}

// uintField converts the many representations an integer can arrive in
// from JSON or CSV documents.
func uintField(data FlatMap, key string) (uint64, error) {
	switch value := data[key].(type) {
	case uint64:
		return value, nil
	case int:
		if value < 0 {
			return 0, invalidField(key, value)
		}
		return uint64(value), nil
	case int64:
		if value < 0 {
			return 0, invalidField(key, value)
		}
		return uint64(value), nil
	case float64:
		if value < 0 || value != float64(uint64(value)) {
			return 0, invalidField(key, value)
		}
		return uint64(value), nil
	case json.Number:
		parsed, err := strconv.ParseUint(value.String(), 10, 64)
		if err != nil {
			return 0, invalidField(key, value)
		}
		return parsed, nil
	case string:
		parsed, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return 0, invalidField(key, value)
		}
		return parsed, nil
	default:
		return 0, invalidField(key, value)
	}
}

func requiredUintField(data FlatMap, key string) (uint64, error) {
	if _, ok := data[key]; !ok {
		return 0, missingField(key)
	}

	return uintField(data, key)
}

func amountField(data FlatMap) (decimal.Decimal, error) {
	raw, ok := data["amount"]
	if !ok {
		return decimal.Decimal{}, missingField("amount")
	}

	switch value := raw.(type) {
	case decimal.Decimal:
		return value, nil
	case string:
		parsed, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Decimal{}, invalidField("amount", value)
		}
		return parsed, nil
	case json.Number:
		parsed, err := decimal.NewFromString(value.String())
		if err != nil {
			return decimal.Decimal{}, invalidField("amount", value)
		}
		return parsed, nil
	case float64:
		return decimal.NewFromFloat(value), nil
	case int:
		return decimal.NewFromInt(int64(value)), nil
	case int64:
		return decimal.NewFromInt(value), nil
	default:
		return decimal.Decimal{}, invalidField("amount", raw)
	}
}

func requiredStringField(data FlatMap, key string) (string, error) {
	raw, ok := data[key]
	if !ok {
		return "", missingField(key)
	}

	value, ok := raw.(string)
	if !ok {
		return "", invalidField(key, raw)
	}

	return value, nil
}

func dateField(data FlatMap, now func() time.Time) (time.Time, error) {
	raw, ok := data["date"]
	if !ok {
		return now().In(time.UTC), nil
	}

	value, ok := raw.(string)
	if !ok {
		return time.Time{}, invalidField("date", raw)
	}

	// Full timestamps and plain dates are accepted
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", value)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s is not an ISO-8601 date", ErrDeserialization, value)
	}

	return parsed.In(time.UTC), nil
}
