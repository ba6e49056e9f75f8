package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/expense-manager/backend/internal/controllers/v1"
	"github.com/expense-manager/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedStatsExpenses creates a small set of expenses across two months
// and three categories.
func (suite *TestSuiteStandard) seedStatsExpenses() {
	for _, e := range []v1.ExpenseEditable{
		{UserID: 1, Amount: decimal.NewFromInt(100), Category: "Groceries", Description: "Big shop", Date: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: 1, Amount: decimal.NewFromInt(50), Category: "Transport", Description: "Fuel", Date: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)},
		{UserID: 1, Amount: decimal.NewFromInt(30), Category: "Groceries", Description: "Top up", Date: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)},
		{UserID: 1, Amount: decimal.NewFromInt(20), Category: "Fun", Description: "Cinema", Date: time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	} {
		suite.createTestExpense(e)
	}
}

func (suite *TestSuiteStandard) TestStatsTotals() {
	suite.seedStatsExpenses()

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/stats/total", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(200)), "total is %s", response.Data.Total)
	assert.True(suite.T(), response.Data.Average.Equal(decimal.NewFromInt(50)), "average is %s", response.Data.Average)
	assert.Equal(suite.T(), 4, response.Data.Count)
}

func (suite *TestSuiteStandard) TestStatsTotalsEmpty() {
	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/stats/total", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TotalsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Total.IsZero())
	assert.True(suite.T(), response.Data.Average.IsZero(), "Average over no expenses is zero, not an error")
}

func (suite *TestSuiteStandard) TestStatsDailyAverage() {
	suite.createTestExpense(v1.ExpenseEditable{UserID: 1, Amount: decimal.NewFromInt(10), Category: "Food", Description: "Day one", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)})
	suite.createTestExpense(v1.ExpenseEditable{UserID: 1, Amount: decimal.NewFromInt(20), Category: "Food", Description: "Day two", Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)})

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/stats/daily-average", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DailyAverageResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Average.Equal(decimal.NewFromInt(15)), "average is %s", response.Data.Average)
	assert.Nil(suite.T(), response.Data.StartDate)

	// An explicit window spreads the total over all its days
	r = test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/stats/daily-average?startDate=2024-01-01&endDate=2024-01-03", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.Average.Equal(decimal.NewFromInt(10)), "average is %s", response.Data.Average)
	require.NotNil(suite.T(), response.Data.StartDate)
}

func (suite *TestSuiteStandard) TestStatsPeakDay() {
	suite.seedStatsExpenses()

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/stats/peak-day", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.PeakDayResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), response.Data.Day)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(150)), "total is %s", response.Data.Total)
}

func (suite *TestSuiteStandard) TestStatsPeakDayEmpty() {
	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/stats/peak-day", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestStatsTopCategories() {
	suite.seedStatsExpenses()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"Default limit", "", []string{"Groceries", "Transport", "Fun"}},
		{"Limit 2", "?limit=2", []string{"Groceries", "Transport"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(suite.store, t, http.MethodGet, "http://example.com/v1/stats/top-categories"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.CategoryTotalListResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, len(tt.want))

			for i, category := range tt.want {
				assert.Equal(t, category, response.Data[i].Category)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestSummaryByCategory() {
	suite.seedStatsExpenses()

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/summary/by-category", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoryTotalListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	assert.Equal(suite.T(), "Groceries", response.Data[0].Category)
	assert.True(suite.T(), response.Data[0].Total.Equal(decimal.NewFromInt(130)), "total is %s", response.Data[0].Total)
}

func (suite *TestSuiteStandard) TestMonth() {
	suite.seedStatsExpenses()

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/months/2024-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), "2024-05", response.Data.Month.String())
	assert.Equal(suite.T(), 3, response.Data.Count)
	assert.True(suite.T(), response.Data.Total.Equal(decimal.NewFromInt(180)), "total is %s", response.Data.Total)

	r = test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/months/NotAMonth", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
