package v1

import (
	"net/http"

	"github.com/expense-manager/backend/internal/httputil"
	"github.com/expense-manager/backend/internal/models"
	"github.com/expense-manager/backend/internal/store"
	"github.com/gin-gonic/gin"
)

// expenses is the collection all handlers in this package operate on.
// It is set once during route registration.
var expenses *store.Store

// Register sets the store for the v1 API and registers all v1 routes
// with the RouterGroup that is passed.
func Register(r *gin.RouterGroup, s *store.Store) {
	expenses = s

	RegisterRootRoutes(r)
	RegisterExpenseRoutes(r.Group("/expenses"))
	RegisterStatsRoutes(r.Group("/stats"))
	RegisterSummaryRoutes(r.Group("/summary"))
	RegisterMonthRoutes(r.Group("/months"))
	RegisterExportRoutes(r.Group("/export"))
	RegisterImportRoutes(r.Group("/import"))
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Expenses string `json:"expenses" example:"https://example.com/v1/expenses"` // URL of the expense collection endpoint
	Stats    string `json:"stats" example:"https://example.com/v1/stats"`       // URL of the statistics endpoints
	Summary  string `json:"summary" example:"https://example.com/v1/summary"`   // URL of the summary endpoints
	Months   string `json:"months" example:"https://example.com/v1/months"`     // URL of the month summary endpoint
	Export   string `json:"export" example:"https://example.com/v1/export"`     // URL of the export endpoint
	Import   string `json:"import" example:"https://example.com/v1/import"`     // URL of the import endpoint
}

// GetRoot returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Expenses: url + "/v1/expenses",
			Stats:    url + "/v1/stats",
			Summary:  url + "/v1/summary",
			Months:   url + "/v1/months",
			Export:   url + "/v1/export",
			Import:   url + "/v1/import",
		},
	})
}

// OptionsRoot returns the allowed HTTP verbs
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}
