package v1

import (
	"net/http"

	"github.com/card-ledger/backend/internal/auth"
	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/ledger"
	"github.com/card-ledger/backend/internal/models"
	"github.com/card-ledger/backend/internal/types"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterReportRoutes registers the routes for reports with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsReportList)
		r.GET("", GetStoredReports)
		r.POST("", CreateReport)
	}

	// Reports calculated on request
	{
		r.OPTIONS("/expenses", OptionsReportCalculated)
		r.GET("/expenses", GetExpenseReport)
		r.OPTIONS("/incomes", OptionsReportCalculated)
		r.GET("/incomes", GetIncomeReport)
		r.OPTIONS("/summary", OptionsReportCalculated)
		r.GET("/summary", GetSummaryReport)
	}

	// Stored report with ID
	{
		r.OPTIONS("/:id", OptionsReportDetail)
		r.GET("/:id", GetStoredReport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Security		BearerAuth
// @Router			/v1/reports [options]
func OptionsReportList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Security		BearerAuth
// @Router			/v1/reports/expenses [options]
// @Router			/v1/reports/incomes [options]
// @Router			/v1/reports/summary [options]
func OptionsReportCalculated(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reports
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/reports/{id} [options]
func OptionsReportDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Report{})
}

// @Summary		Expense report
// @Description	Returns the sum of all expenses per month and tag in the period
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	ReportResponse
// @Failure		400			{object}	ReportResponse
// @Failure		500			{object}	ReportResponse
// @Param			startDate	query		string	false	"Start of the period. Defaults to 30 days before now"
// @Param			endDate		query		string	false	"End of the period. Defaults to now"
// @Param			card		query		string	false	"Only expenses on this card"
// @Param			tag			query		string	false	"Only expenses with this tag"
// @Security		BearerAuth
// @Router			/v1/reports/expenses [get]
func GetExpenseReport(c *gin.Context) {
	calculateReport(c, types.ReportExpense)
}

// @Summary		Income report
// @Description	Returns the sum of all incomes per month and source in the period
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	ReportResponse
// @Failure		400			{object}	ReportResponse
// @Failure		500			{object}	ReportResponse
// @Param			startDate	query		string	false	"Start of the period. Defaults to 30 days before now"
// @Param			endDate		query		string	false	"End of the period. Defaults to now"
// @Param			source		query		string	false	"Only incomes from this source"
// @Param			tag			query		string	false	"Only incomes with this tag"
// @Security		BearerAuth
// @Router			/v1/reports/incomes [get]
func GetIncomeReport(c *gin.Context) {
	calculateReport(c, types.ReportIncome)
}

// @Summary		Summary report
// @Description	Returns the total income and the total expenses in the period. The total amount is the income minus the expenses.
// @Tags			Reports
// @Produce		json
// @Success		200			{object}	ReportResponse
// @Failure		400			{object}	ReportResponse
// @Failure		500			{object}	ReportResponse
// @Param			startDate	query		string	false	"Start of the period. Defaults to 30 days before now"
// @Param			endDate		query		string	false	"End of the period. Defaults to now"
// @Security		BearerAuth
// @Router			/v1/reports/summary [get]
func GetSummaryReport(c *gin.Context) {
	calculateReport(c, types.ReportSummary)
}

func calculateReport(c *gin.Context, kind types.ReportType) {
	var filter ReportQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ReportResponse{
			Error: &s,
		})
		return
	}

	period, ledgerFilter, err := filter.parse()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	report, err := ledger.GenerateReport(models.DB, auth.Owner(c), kind, period, ledgerFilter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &s,
		})
		return
	}

	data := newReport(report)
	c.JSON(http.StatusOK, ReportResponse{Data: &data})
}

// @Summary		Store report
// @Description	Calculates a report and stores a copy of it. Stored reports cannot be changed or deleted.
// @Tags			Reports
// @Accept			json
// @Produce		json
// @Success		201		{object}	StoredReportResponse
// @Failure		400		{object}	StoredReportResponse
// @Failure		500		{object}	StoredReportResponse
// @Param			report	body		ReportCreate	true	"Report"
// @Security		BearerAuth
// @Router			/v1/reports [post]
func CreateReport(c *gin.Context) {
	var data ReportCreate
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StoredReportResponse{
			Error: &s,
		})
		return
	}

	filter := ledger.Filter{
		CardID: data.CardID,
		Tag:    data.Tag,
		Source: data.Source,
	}

	report, err := ledger.GenerateReport(models.DB, auth.Owner(c), data.Type, ledger.DateRange{Start: data.StartDate, End: data.EndDate}, filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StoredReportResponse{
			Error: &s,
		})
		return
	}

	stored, err := ledger.SaveReport(models.DB, auth.Owner(c), report, filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StoredReportResponse{
			Error: &s,
		})
		return
	}

	r := newStoredReport(c, stored)
	c.JSON(http.StatusCreated, StoredReportResponse{Data: &r})
}

// @Summary		Get stored reports
// @Description	Returns a list of stored reports, most recent first
// @Tags			Reports
// @Produce		json
// @Success		200		{object}	StoredReportListResponse
// @Failure		400		{object}	StoredReportListResponse
// @Failure		500		{object}	StoredReportListResponse
// @Param			type	query		string	false	"Filter by type"
// @Param			offset	query		uint	false	"The offset of the first report returned. Defaults to 0."
// @Param			limit	query		int		false	"Maximum number of reports to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/reports [get]
func GetStoredReports(c *gin.Context) {
	var filter StoredReportQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, StoredReportListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StoredReportListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Scopes(owned(c)).
		Order("created_at DESC").
		Where(&filterModel, queryFields...)

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var reports []models.Report
	err = q.Preload("Details", orderedDetails).Find(&reports).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StoredReportListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StoredReportListResponse{
			Error: &s,
		})
		return
	}

	data := make([]StoredReport, 0, len(reports))
	for _, report := range reports {
		data = append(data, newStoredReport(c, report))
	}

	c.JSON(http.StatusOK, StoredReportListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get stored report
// @Description	Returns a specific stored report
// @Tags			Reports
// @Produce		json
// @Success		200	{object}	StoredReportResponse
// @Failure		400	{object}	StoredReportResponse
// @Failure		404	{object}	StoredReportResponse
// @Failure		500	{object}	StoredReportResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/reports/{id} [get]
func GetStoredReport(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StoredReportResponse{
			Error: &s,
		})
		return
	}

	var report models.Report
	err = models.DB.Scopes(owned(c)).Preload("Details", orderedDetails).First(&report, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StoredReportResponse{
			Error: &s,
		})
		return
	}

	r := newStoredReport(c, report)
	c.JSON(http.StatusOK, StoredReportResponse{Data: &r})
}

func orderedDetails(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}
