package v1

import (
	"net/http"
	"time"

	"github.com/expense-manager/backend/internal/httputil"
	"github.com/expense-manager/backend/internal/stats"
	"github.com/expense-manager/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenses)
		r.GET("", GetExpenses)
		r.POST("", CreateExpense)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.PUT("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}

	// Queries over the whole collection
	{
		r.GET("/filter/by-category", GetExpensesByCategory)
		r.GET("/filter/by-date", GetExpensesByDateRange)
		r.GET("/search", SearchExpenses)
		r.GET("/duplicates", GetDuplicateExpenses)
		r.GET("/recent", GetRecentExpenses)
	}

	// Bulk updates
	{
		r.POST("/recategorize", RecategorizeExpenses)
		r.POST("/discount", DiscountExpenses)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenses(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	if _, ok := expenses.Get(uri.ID); !ok {
		c.JSON(status(errExpenseNotFound), httpError{
			Error: errExpenseNotFound.Error(),
		})
		return
	}

	httputil.OptionsGetPatchPutDelete(c)
}

// @Summary		Create expense
// @Description	Creates a new expense
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses [post]
func CreateExpense(c *gin.Context) {
	var editable ExpenseEditable
	if err := httputil.BindData(c, &editable); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense := editable.model()
	if err := expenses.Add(&expense); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, ExpenseResponse{Data: &expense})
}

// @Summary		Get expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			category	query	string	false	"Filter by category, matched case-insensitively"
// @Param			fromDate	query	string	false	"Expenses at and after this date, formatted as 2006-01-02"
// @Param			untilDate	query	string	false	"Expenses before and at this date, formatted as 2006-01-02"
// @Param			keyword		query	string	false	"Filter by keyword in the description"
// @Param			offset		query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &e,
		})
		return
	}

	list := expenses.All()

	if filter.Category != "" {
		list = stats.FilterByCategory(list, filter.Category)
	}

	if !filter.FromDate.IsZero() || !filter.UntilDate.IsZero() {
		until := filter.UntilDate
		if until.IsZero() {
			until = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
		}

		// The end of the range is pushed to the last instant of the day
		// so that expenses with a time of day are matched, too.
		until = until.AddDate(0, 0, 1).Add(-time.Nanosecond)
		list = stats.FilterByDateRange(list, filter.FromDate, until)
	}

	if filter.Keyword != "" {
		list = stats.SearchByKeyword(list, filter.Keyword)
	}

	// The pagination happens after all filters are applied
	if int(filter.Offset) >= len(list) {
		list = nil
	} else {
		list = list[filter.Offset:]
	}

	if filter.Limit >= 0 && filter.Limit < len(list) {
		list = list[:filter.Limit]
	}

	c.JSON(http.StatusOK, ExpenseListResponse{Data: list})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense, ok := expenses.Get(uri.ID)
	if !ok {
		e := errExpenseNotFound.Error()
		c.JSON(status(errExpenseNotFound), ExpenseResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only values to be updated need to be specified.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		uint64			true	"ID of the expense"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseResponse{
			Error: &e,
		})
		return
	}

	var update store.Update
	if err := httputil.BindData(c, &update); err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	found, err := expenses.Update(uri.ID, update)
	if !found {
		e := errExpenseNotFound.Error()
		c.JSON(status(errExpenseNotFound), ExpenseResponse{
			Error: &e,
		})
		return
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &e,
		})
		return
	}

	expense, _ := expenses.Get(uri.ID)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &expense})
}

// @Summary		Delete expense
// @Description	Deletes an expense
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		uint64	true	"ID of the expense"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	found, err := expenses.Remove(uri.ID)
	if !found {
		c.JSON(status(errExpenseNotFound), httpError{
			Error: errExpenseNotFound.Error(),
		})
		return
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Expenses by category
// @Description	Returns all expenses filed under the category
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Param			category	query		string	true	"Category, matched case-insensitively"
// @Router			/v1/expenses/filter/by-category [get]
func GetExpensesByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		e := errCategoryParameter.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: stats.FilterByCategory(expenses.All(), category),
	})
}

// @Summary		Expenses by date range
// @Description	Returns all expenses dated within the range, both ends inclusive
// @Tags			Expenses
// @Produce		json
// @Success		200			{object}	ExpenseListResponse
// @Failure		400			{object}	ExpenseListResponse
// @Param			startDate	query		string	true	"First day of the range, formatted as 2006-01-02"
// @Param			endDate		query		string	true	"Last day of the range, formatted as 2006-01-02"
// @Router			/v1/expenses/filter/by-date [get]
func GetExpensesByDateRange(c *gin.Context) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &e,
		})
		return
	}

	if query.StartDate.IsZero() || query.EndDate.IsZero() {
		e := errDateParameters.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &e,
		})
		return
	}

	// The end of the range is pushed to the last instant of the day so
	// that expenses with a time of day are matched, too.
	end := query.EndDate.AddDate(0, 0, 1).Add(-time.Nanosecond)

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: stats.FilterByDateRange(expenses.All(), query.StartDate, end),
	})
}

// @Summary		Search expenses
// @Description	Returns all expenses whose description contains the keyword, matched case-insensitively
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	ExpenseListResponse
// @Param			keyword	query		string	true	"Keyword to search for"
// @Router			/v1/expenses/search [get]
func SearchExpenses(c *gin.Context) {
	keyword := c.Query("keyword")
	if keyword == "" {
		e := errKeywordParameter.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: stats.SearchByKeyword(expenses.All(), keyword),
	})
}

// @Summary		Duplicate expenses
// @Description	Returns all expenses that occur more than once with the same user, amount, category, description and date. The first occurrence is not part of the list.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Router			/v1/expenses/duplicates [get]
func GetDuplicateExpenses(c *gin.Context) {
	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: stats.FindDuplicates(expenses.All()),
	})
}

// @Summary		Recent expenses
// @Description	Returns the most recent expenses, ordered by date descending
// @Tags			Expenses
// @Produce		json
// @Success		200		{object}	ExpenseListResponse
// @Failure		400		{object}	ExpenseListResponse
// @Param			limit	query		int	false	"Number of expenses to return. Defaults to 5."
// @Router			/v1/expenses/recent [get]
func GetRecentExpenses(c *gin.Context) {
	var query struct {
		Limit int `form:"limit,default=5"`
	}
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: stats.Recent(expenses.All(), query.Limit),
	})
}

// @Summary		Recategorize expenses
// @Description	Renames categories in bulk. Keys of the mapping are existing category names or glob patterns, values are the replacement names. An exact match takes precedence over patterns.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ChangedResponse
// @Failure		400		{object}	ChangedResponse
// @Failure		500		{object}	ChangedResponse
// @Param			mapping	body		RecategorizeRequest	true	"Mapping"
// @Router			/v1/expenses/recategorize [post]
func RecategorizeExpenses(c *gin.Context) {
	var request RecategorizeRequest
	if err := httputil.BindData(c, &request); err != nil {
		e := err.Error()
		c.JSON(status(err), ChangedResponse{
			Error: &e,
		})
		return
	}

	if len(request.Mapping) == 0 {
		e := errMappingEmpty.Error()
		c.JSON(http.StatusBadRequest, ChangedResponse{
			Error: &e,
		})
		return
	}

	changed, err := expenses.RecategorizeAll(request.Mapping)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChangedResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ChangedResponse{Data: &Changed{Changed: changed}})
}

// @Summary		Discount expenses
// @Description	Applies a percentage discount to all expenses of a category
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200			{object}	ChangedResponse
// @Failure		400			{object}	ChangedResponse
// @Failure		500			{object}	ChangedResponse
// @Param			discount	body		DiscountRequest	true	"Discount"
// @Router			/v1/expenses/discount [post]
func DiscountExpenses(c *gin.Context) {
	var request DiscountRequest
	if err := httputil.BindData(c, &request); err != nil {
		e := err.Error()
		c.JSON(status(err), ChangedResponse{
			Error: &e,
		})
		return
	}

	changed, err := expenses.DiscountCategory(request.Category, request.Percent)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ChangedResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ChangedResponse{Data: &Changed{Changed: changed}})
}
