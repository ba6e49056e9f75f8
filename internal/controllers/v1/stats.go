package v1

import (
	"net/http"

	"github.com/expense-manager/backend/internal/httputil"
	"github.com/expense-manager/backend/internal/stats"
	"github.com/expense-manager/backend/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterStatsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/total", func(c *gin.Context) { httputil.OptionsGet(c) })
	r.GET("/total", GetTotals)

	r.OPTIONS("/daily-average", func(c *gin.Context) { httputil.OptionsGet(c) })
	r.GET("/daily-average", GetDailyAverage)

	r.OPTIONS("/peak-day", func(c *gin.Context) { httputil.OptionsGet(c) })
	r.GET("/peak-day", GetPeakDay)

	r.OPTIONS("/top-categories", func(c *gin.Context) { httputil.OptionsGet(c) })
	r.GET("/top-categories", GetTopCategories)
}

// RegisterSummaryRoutes registers the routes for summaries with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/by-category", func(c *gin.Context) { httputil.OptionsGet(c) })
	r.GET("/by-category", GetCategorySummary)
}

// RegisterMonthRoutes registers the routes for month summaries with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month", OptionsMonth)
	r.GET("/:month", GetMonth)
}

// @Summary		Totals
// @Description	Returns the total and average amount over all expenses
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	TotalsResponse
// @Router			/v1/stats/total [get]
func GetTotals(c *gin.Context) {
	list := expenses.All()

	c.JSON(http.StatusOK, TotalsResponse{
		Data: &Totals{
			Total:   stats.Total(list),
			Average: stats.Average(list),
			Count:   len(list),
		},
	})
}

// @Summary		Daily average
// @Description	Returns the average amount spent per day. Without parameters the window spans from the earliest to the latest expense, a window with no expenses averages to zero.
// @Tags			Stats
// @Produce		json
// @Success		200			{object}	DailyAverageResponse
// @Failure		400			{object}	DailyAverageResponse
// @Param			startDate	query		string	false	"First day of the window, formatted as 2006-01-02"
// @Param			endDate		query		string	false	"Last day of the window, formatted as 2006-01-02"
// @Router			/v1/stats/daily-average [get]
func GetDailyAverage(c *gin.Context) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DailyAverageResponse{
			Error: &e,
		})
		return
	}

	data := DailyAverage{
		Average: stats.DailyAverage(expenses.All(), query.StartDate, query.EndDate),
	}

	if !query.StartDate.IsZero() {
		data.StartDate = &query.StartDate
	}
	if !query.EndDate.IsZero() {
		data.EndDate = &query.EndDate
	}

	c.JSON(http.StatusOK, DailyAverageResponse{Data: &data})
}

// @Summary		Peak spending day
// @Description	Returns the day with the highest total spending. When multiple days are tied, the earliest one is returned.
// @Tags			Stats
// @Produce		json
// @Success		200	{object}	PeakDayResponse
// @Failure		404	{object}	PeakDayResponse
// @Router			/v1/stats/peak-day [get]
func GetPeakDay(c *gin.Context) {
	peak, err := stats.PeakDay(expenses.All())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PeakDayResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, PeakDayResponse{Data: &peak})
}

// @Summary		Top categories
// @Description	Returns the categories with the highest total spending, ordered by total descending. Ties are broken by category name.
// @Tags			Stats
// @Produce		json
// @Success		200		{object}	CategoryTotalListResponse
// @Failure		400		{object}	CategoryTotalListResponse
// @Param			limit	query		int	false	"Number of categories to return. Defaults to 5."
// @Router			/v1/stats/top-categories [get]
func GetTopCategories(c *gin.Context) {
	var query struct {
		Limit int `form:"limit,default=5"`
	}
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CategoryTotalListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoryTotalListResponse{
		Data: stats.TopCategories(expenses.All(), query.Limit),
	})
}

// @Summary		Summary by category
// @Description	Returns the total spending for every category, ordered by total descending
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	CategoryTotalListResponse
// @Router			/v1/summary/by-category [get]
func GetCategorySummary(c *gin.Context) {
	list := expenses.All()

	c.JSON(http.StatusOK, CategoryTotalListResponse{
		Data: stats.TopCategories(list, len(list)),
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [options]
func OptionsMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Month summary
// @Description	Returns the total, the number of expenses and the per-category breakdown for a month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Param			month	path		string	true	"The month in YYYY-MM format"
// @Router			/v1/months/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIMonth
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, MonthResponse{
			Error: &e,
		})
		return
	}

	summary := stats.Monthly(expenses.All(), types.MonthOf(uri.Month))
	c.JSON(http.StatusOK, MonthResponse{Data: &summary})
}
