package v1

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/expense-manager/backend/internal/httputil"
	"github.com/expense-manager/backend/internal/interchange"
	"github.com/expense-manager/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", ImportExpenses)
}

type ImportResult struct {
	Imported int      `json:"imported" example:"40"` // Number of expenses that were created
	Skipped  int      `json:"skipped" example:"2"`   // Number of records that were skipped
	Errors   []string `json:"errors"`                // One entry per skipped record
}

type ImportResponse struct {
	Data  *ImportResult `json:"data"`  // Data for the import
	Error *string       `json:"error"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export expenses
// @Description	Exports all expenses as a JSON or CSV document
// @Tags			Export
// @Produce		json
// @Produce		text/csv
// @Success		200
// @Failure		400		{object}	httpError
// @Param			format	query		string	false	"Export format, one of 'json' or 'csv'. Defaults to 'json'."
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	format := c.DefaultQuery("format", "json")

	var buf bytes.Buffer
	var contentType string
	var err error

	switch format {
	case "json":
		contentType = "application/json"
		err = interchange.EncodeJSON(&buf, expenses.All())
	case "csv":
		contentType = "text/csv"
		err = interchange.EncodeCSV(&buf, expenses.All())
	default:
		c.JSON(http.StatusBadRequest, httpError{
			Error: errUnknownFormat.Error(),
		})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("expenses-%s.%s", time.Now().UTC().Format("2006-01-02"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(http.StatusOK, contentType, buf.Bytes())
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import expenses
// @Description	Creates expenses from an uploaded JSON or CSV document. Records that cannot be parsed or that fail validation are skipped and reported, all others are created.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"The file to import"
// @Router			/v1/import [post]
func ImportExpenses(c *gin.Context) {
	f, format, err := uploadedFile(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}
	defer f.Close()

	var records []models.Expense
	var badRecords []interchange.RecordError
	switch format {
	case "json":
		records, badRecords, err = interchange.DecodeJSON(f, expenses.Now)
	case "csv":
		records, badRecords, err = interchange.DecodeCSV(f, expenses.Now)
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &e,
		})
		return
	}

	result := ImportResult{Errors: []string{}}
	for _, bad := range badRecords {
		result.Skipped++
		result.Errors = append(result.Errors, bad.Error())
	}

	for _, record := range records {
		// Imported expenses always get fresh IDs
		record.ID = 0

		if err := expenses.Add(&record); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("expense %q for %s: %s", record.Description, record.Amount, err))
			continue
		}

		result.Imported++
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: &result})
}

// uploadedFile returns the form file and the format derived from its
// suffix, and handles potential errors.
func uploadedFile(c *gin.Context) (multipart.File, string, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, "", errNoFilePost
	}

	if err != nil {
		return nil, "", err
	}

	var format string
	switch {
	case strings.HasSuffix(formFile.Filename, ".json"):
		format = "json"
	case strings.HasSuffix(formFile.Filename, ".csv"):
		format = "csv"
	default:
		return nil, "", errWrongFileSuffix
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, "", err
	}

	return f, format, nil
}
