package models

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Display returns a single-line representation of the expense for
// human consumption, using the currency symbol of the given locale.
func (e Expense) Display(tag language.Tag) string {
	cur, _ := currency.FromTag(tag)

	return fmt.Sprintf("%s | %-15s | %s%8s | %s",
		e.Date.Format("2006-01-02"),
		e.Category,
		fmt.Sprintf("%s", currency.Symbol(cur)),
		e.Amount.StringFixed(2),
		e.Description,
	)
}
