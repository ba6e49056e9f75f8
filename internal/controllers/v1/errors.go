package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/expense-manager/backend/internal/models"
	"github.com/expense-manager/backend/internal/stats"
)

type httpError struct {
	Error string `json:"error" example:"the ID specified in the URL is not a valid number"`
}

// status returns the appropriate status for an error returned by the
// store or the database layer
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, stats.ErrNoExpenses) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errExpenseNotFound = fmt.Errorf("%w expense matching your query", models.ErrResourceNotFound)

// Filter errors
var (
	errCategoryParameter = errors.New("the category parameter must be set")
	errKeywordParameter  = errors.New("the keyword parameter must be set")
	errDateParameters    = errors.New("the startDate and endDate parameters must be set")
)

// Bulk update errors
var (
	errMappingEmpty = errors.New("the mapping must contain at least one entry")
)

// Import and export errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports .json and .csv files")
	errUnknownFormat   = errors.New("the format parameter must be one of 'json' or 'csv'")
)
