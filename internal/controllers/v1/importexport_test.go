package v1_test

import (
	"net/http"
	"strings"
	"testing"

	v1 "github.com/expense-manager/backend/internal/controllers/v1"
	"github.com/expense-manager/backend/internal/interchange"
	"github.com/expense-manager/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportJSON() {
	suite.createTestExpense(testExpense())

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Type"), "application/json")
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), ".json")

	parsed, skipped, err := interchange.DecodeJSON(r.Body, nil)
	require.Nil(suite.T(), err)
	require.Empty(suite.T(), skipped)
	require.Len(suite.T(), parsed, 1)
	assert.Equal(suite.T(), "Weekly shopping", parsed[0].Description)
}

func (suite *TestSuiteStandard) TestExportCSV() {
	suite.createTestExpense(testExpense())

	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/export?format=csv", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Contains(suite.T(), r.Header().Get("Content-Type"), "text/csv")
	assert.True(suite.T(), strings.HasPrefix(r.Body.String(), "id,user_id,amount,category,description,date"))
}

func (suite *TestSuiteStandard) TestExportUnknownFormat() {
	r := test.Request(suite.store, suite.T(), http.MethodGet, "http://example.com/v1/export?format=xml", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestImportJSON() {
	document := `[
		{"user_id": 17, "amount": "10.50", "category": "Food", "description": "Groceries", "date": "2024-05-01T00:00:00Z"},
		{"user_id": 17, "amount": "-3", "category": "Food", "description": "Broken amount", "date": "2024-05-01T00:00:00Z"},
		{"amount": "10"}
	]`

	body, headers := test.MultipartFile(suite.T(), "expenses.json", document)
	r := test.Request(suite.store, suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 1, response.Data.Imported)
	assert.Equal(suite.T(), 2, response.Data.Skipped, "Records that cannot be parsed or fail validation are skipped")
	assert.Len(suite.T(), response.Data.Errors, 2)

	assert.Equal(suite.T(), 1, suite.store.Count())
}

func (suite *TestSuiteStandard) TestImportCSV() {
	document := "id,user_id,amount,category,description,date\n" +
		"1,17,10.50,Food,Groceries,2024-05-01\n" +
		"2,17,3.20,Transport,Bus ticket,2024-05-02\n"

	body, headers := test.MultipartFile(suite.T(), "expenses.csv", document)
	r := test.Request(suite.store, suite.T(), http.MethodPost, "http://example.com/v1/import", body, headers)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ImportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), 2, response.Data.Imported)
	assert.Equal(suite.T(), 0, response.Data.Skipped)

	// IDs from the file are not reused
	_, ok := suite.store.Get(1)
	assert.True(suite.T(), ok)
}

func (suite *TestSuiteStandard) TestImportErrors() {
	tests := []struct {
		name     string
		filename string
		content  string
	}{
		{"Wrong file suffix", "expenses.xml", "<expenses />"},
		{"Malformed JSON", "expenses.json", "not json"},
		{"Malformed CSV", "expenses.csv", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			body, headers := test.MultipartFile(t, tt.filename, tt.content)
			r := test.Request(suite.store, t, http.MethodPost, "http://example.com/v1/import", body, headers)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestImportNoFile() {
	r := test.Request(suite.store, suite.T(), http.MethodPost, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
