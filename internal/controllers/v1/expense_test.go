package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/expense-manager/backend/internal/controllers/v1"
	"github.com/expense-manager/backend/internal/store"
	"github.com/expense-manager/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) createTestExpense(editable v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.store, suite.T(), http.MethodPost, "http://example.com/v1/expenses", editable)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)

	return response
}

func testExpense() v1.ExpenseEditable {
	return v1.ExpenseEditable{
		UserID:      17,
		Amount:      decimal.NewFromFloat(14.50),
		Category:    "Groceries",
		Description: "Weekly shopping",
		Date:        time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *TestSuiteStandard) TestExpenseCreate() {
	response := suite.createTestExpense(testExpense())

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), uint64(1), response.Data.ID)
	assert.Equal(suite.T(), "Groceries", response.Data.Category)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(14.50)))
}

func (suite *TestSuiteStandard) TestExpenseCreateInvalid() {
	tests := []struct {
		name string
		body any
	}{
		{"Broken body", `{ "amount": 2" }`},
		{"Negative amount", v1.ExpenseEditable{UserID: 17, Amount: decimal.NewFromInt(-1), Category: "Food", Description: "Test"}},
		{"No category", v1.ExpenseEditable{UserID: 17, Amount: decimal.NewFromInt(1), Description: "Test"}},
		{"No description", v1.ExpenseEditable{UserID: 17, Amount: decimal.NewFromInt(1), Category: "Food"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.store, t, http.MethodPost, "http://example.com/v1/expenses", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseGet() {
	created := suite.createTestExpense(testExpense())

	r := test.Request(suite.store, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%d", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), created.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestExpenseGetNotFound() {
	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/4000", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/NotAnID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseOptions() {
	created := suite.createTestExpense(testExpense())

	tests := []struct {
		name   string
		id     string // path at the /v1/expenses endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No expense with this ID", "4000", http.StatusNotFound},
		{"Not a valid ID", "NotParseableAsID", http.StatusBadRequest},
		{"Expense exists", fmt.Sprint(created.Data.ID), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/expenses/%s", tt.id)
			r := test.Request(suite.store, t, http.MethodOptions, path, "")
			assert.Equal(t, tt.status, r.Code)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, PUT, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseUpdate() {
	created := suite.createTestExpense(testExpense())

	description := "Monthly shopping"
	update := store.Update{Description: &description}

	r := test.Request(suite.store, suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/expenses/%d", created.Data.ID), update)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Monthly shopping", response.Data.Description)
	assert.Equal(suite.T(), "Groceries", response.Data.Category, "Fields that are not part of the update must not change")
}

func (suite *TestSuiteStandard) TestExpenseUpdateInvalid() {
	created := suite.createTestExpense(testExpense())

	amount := decimal.NewFromInt(-10)
	update := store.Update{Amount: &amount}

	r := test.Request(suite.store, suite.T(), http.MethodPut, fmt.Sprintf("http://example.com/v1/expenses/%d", created.Data.ID), update)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The expense is unchanged
	r = test.Request(suite.store, suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/%d", created.Data.ID), "")
	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Amount.Equal(decimal.NewFromFloat(14.50)))
}

func (suite *TestSuiteStandard) TestExpenseUpdateNotFound() {
	r := test.Request(suite.store, suite.T(), http.MethodPatch, "http://example.com/v1/expenses/4000", store.Update{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseDelete() {
	created := suite.createTestExpense(testExpense())

	r := test.Request(suite.store, suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%d", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.store, suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/expenses/%d", created.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpenseList() {
	food := testExpense()

	transport := testExpense()
	transport.Category = "Transport"
	transport.Description = "Bus ticket"
	transport.Date = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	suite.createTestExpense(food)
	suite.createTestExpense(transport)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 2},
		{"Category", "category=transport", 1},
		{"From date", "fromDate=2024-05-15", 1},
		{"Until date", "untilDate=2024-05-15", 1},
		{"Keyword", "keyword=bus", 1},
		{"Offset", "offset=1", 1},
		{"Offset past the end", "offset=2", 0},
		{"Limit", "limit=1", 1},
		{"Limit zero", "limit=0", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.store, t, http.MethodGet, "http://example.com/v1/expenses?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestExpenseFilterByCategory() {
	suite.createTestExpense(testExpense())

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/filter/by-category?category=GROCERIES", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1, "Category matching is case-insensitive")

	r = test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/filter/by-category", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseFilterByDate() {
	expense := testExpense()
	expense.Date = time.Date(2024, 5, 14, 18, 30, 0, 0, time.UTC)
	suite.createTestExpense(expense)

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"Range includes the date", "startDate=2024-05-01&endDate=2024-05-31", 1},
		{"Range ends on the day itself", "startDate=2024-05-01&endDate=2024-05-14", 1},
		{"Range before", "startDate=2024-04-01&endDate=2024-04-30", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.store, t, http.MethodGet, "http://example.com/v1/expenses/filter/by-date?"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/filter/by-date?startDate=2024-05-01", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseSearch() {
	suite.createTestExpense(testExpense())

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/search?keyword=SHOP", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 1)

	r = test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/search", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseDuplicates() {
	suite.createTestExpense(testExpense())
	suite.createTestExpense(testExpense())

	other := testExpense()
	other.Description = "Another thing entirely"
	suite.createTestExpense(other)

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/duplicates", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1, "Only the second occurrence is a duplicate")
	assert.Equal(suite.T(), uint64(2), response.Data[0].ID)
}

func (suite *TestSuiteStandard) TestExpenseRecent() {
	for i := 1; i <= 7; i++ {
		expense := testExpense()
		expense.Date = time.Date(2024, 5, i, 0, 0, 0, 0, time.UTC)
		suite.createTestExpense(expense)
	}

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/expenses/recent", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 5, "Defaults to the 5 most recent expenses")
	assert.Equal(suite.T(), 7, response.Data[0].Date.Day(), "Most recent expense comes first")
}

func (suite *TestSuiteStandard) TestExpenseRecategorize() {
	suite.createTestExpense(testExpense())

	misc := testExpense()
	misc.Category = "Misc stuff"
	suite.createTestExpense(misc)

	body := v1.RecategorizeRequest{
		Mapping: map[string]string{"Misc*": "Other"},
	}

	r := test.Request(suite.store, suite.T(), http.MethodPost, "http://example.com/v1/expenses/recategorize", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChangedResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 1, response.Data.Changed)

	r = test.Request(suite.store, suite.T(), http.MethodPost, "http://example.com/v1/expenses/recategorize", v1.RecategorizeRequest{})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpenseDiscount() {
	expense := testExpense()
	expense.Amount = decimal.NewFromInt(100)
	created := suite.createTestExpense(expense)

	body := v1.DiscountRequest{
		Category: "groceries",
		Percent:  decimal.NewFromInt(10),
	}

	r := test.Request(suite.store, suite.T(), http.MethodPost, "http://example.com/v1/expenses/discount", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChangedResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 1, response.Data.Changed)

	updated, ok := suite.store.Get(created.Data.ID)
	require.True(suite.T(), ok)
	assert.True(suite.T(), updated.Amount.Equal(decimal.NewFromInt(90)), "amount is %s", updated.Amount)
}

func (suite *TestSuiteStandard) TestExpenseDiscountOutOfRange() {
	suite.createTestExpense(testExpense())

	body := v1.DiscountRequest{
		Category: "Groceries",
		Percent:  decimal.NewFromInt(150),
	}

	r := test.Request(suite.store, suite.T(), http.MethodPost, "http://example.com/v1/expenses/discount", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ChangedResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), 0, response.Data.Changed, "Percentages outside (0, 100) change nothing")
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	suite.CloseDB()

	suite.createTestExpense(testExpense(), http.StatusInternalServerError)
}
