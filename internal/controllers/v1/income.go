package v1

import (
	"fmt"
	"net/http"

	"github.com/card-ledger/backend/internal/auth"
	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/ledger"
	"github.com/card-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterIncomeRoutes registers the routes for incomes with
// the RouterGroup that is passed.
func RegisterIncomeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsIncomeList)
		r.GET("", GetIncomes)
		r.POST("", CreateIncomes)
	}

	// Income with ID
	{
		r.OPTIONS("/:id", OptionsIncomeDetail)
		r.GET("/:id", GetIncome)
		r.PATCH("/:id", UpdateIncome)
		r.DELETE("/:id", DeleteIncome)
		r.OPTIONS("/:id/received", OptionsIncomeReceived)
		r.POST("/:id/received", ReceiveIncome)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Security		BearerAuth
// @Router			/v1/incomes [options]
func OptionsIncomeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/incomes/{id} [options]
func OptionsIncomeDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Income{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Incomes
// @Success		204
// @Param			id	path	URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/incomes/{id}/received [options]
func OptionsIncomeReceived(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create incomes
// @Description	Creates new incomes. For recurring incomes, the next occurrence is calculated from the date and the frequency.
// @Tags			Incomes
// @Produce		json
// @Success		201		{object}	IncomeCreateResponse
// @Failure		400		{object}	IncomeCreateResponse
// @Failure		500		{object}	IncomeCreateResponse
// @Param			incomes	body		[]IncomeEditable	true	"Incomes"
// @Security		BearerAuth
// @Router			/v1/incomes [post]
func CreateIncomes(c *gin.Context) {
	var editables []IncomeEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), IncomeCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := IncomeCreateResponse{}

	for _, editable := range editables {
		// Unknown frequencies are only accepted by the ledger for
		// incomes that are not created through the API
		err = editable.Recurring.Frequency.Validate()
		if err != nil {
			status = r.appendError(fmt.Errorf("%w: %w", models.ErrValidation, err), status)
			continue
		}

		income, err := ledger.CreateIncome(models.DB, auth.Owner(c), editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newIncome(c, income)
		r.Data = append(r.Data, IncomeResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get incomes
// @Description	Returns a list of incomes, most recent first
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeListResponse
// @Failure		400	{object}	IncomeListResponse
// @Failure		500	{object}	IncomeListResponse
// @Param			status		query	string	false	"Filter by status"
// @Param			tag			query	string	false	"Filter by tag"
// @Param			source		query	string	false	"Filter by source"
// @Param			description	query	string	false	"Filter by description"
// @Param			recurring	query	bool	false	"Is the income recurring?"
// @Param			fromDate	query	string	false	"Incomes at and after this date"
// @Param			untilDate	query	string	false	"Incomes before and at this date"
// @Param			offset		query	uint	false	"The offset of the first Income returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Incomes to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/incomes [get]
func GetIncomes(c *gin.Context) {
	var filter IncomeQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, IncomeListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Scopes(owned(c)).
		Order(models.DateTime(models.DB, "date") + " DESC, created_at DESC").
		Where(&filterModel, queryFields...)

	q = stringFilter(q, setFields, "Source", "source", filter.Source)
	q = stringFilter(q, setFields, "Description", "description", filter.Description)

	if slices.Contains(setFields, "Recurring") {
		q = q.Where("recurring_is_recurring = ?", filter.Recurring)
	}

	q, err = dateFilter(q, "date", filter.FromDate, filter.UntilDate)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var incomes []models.Income
	err = q.Find(&incomes).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Income, 0, len(incomes))
	for _, income := range incomes {
		data = append(data, newIncome(c, income))
	}

	c.JSON(http.StatusOK, IncomeListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get income
// @Description	Returns a specific income
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/incomes/{id} [get]
func GetIncome(c *gin.Context) {
	income, ok := getIncome(c)
	if !ok {
		return
	}

	data := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &data})
}

// @Summary		Update income
// @Description	Updates an existing income. Only values to be updated need to be specified. Date and recurrence cannot be updated.
// @Tags			Incomes
// @Accept			json
// @Produce		json
// @Success		200		{object}	IncomeResponse
// @Failure		400		{object}	IncomeResponse
// @Failure		404		{object}	IncomeResponse
// @Failure		500		{object}	IncomeResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			income	body		IncomeEditable	true	"Income"
// @Security		BearerAuth
// @Router			/v1/incomes/{id} [patch]
func UpdateIncome(c *gin.Context) {
	income, ok := getIncome(c)
	if !ok {
		return
	}

	updateFields, err := httputil.GetBodyFields(c, IncomeEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(updateFields, any("Date")) || slices.Contains(updateFields, any("Recurring")) {
		s := errIncomeFieldNotUpdatable.Error()
		c.JSON(http.StatusBadRequest, IncomeResponse{
			Error: &s,
		})
		return
	}

	var data IncomeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	// The updated income is validated as a whole. If it is not valid,
	// the update is rolled back.
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&income).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			return err
		}

		err = tx.First(&income, "id = ?", income.ID).Error
		if err != nil {
			return err
		}

		return income.Validate()
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	r := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &r})
}

// @Summary		Mark income as received
// @Description	Sets the status of an income to Received
// @Tags			Incomes
// @Produce		json
// @Success		200	{object}	IncomeResponse
// @Failure		400	{object}	IncomeResponse
// @Failure		404	{object}	IncomeResponse
// @Failure		500	{object}	IncomeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/incomes/{id}/received [post]
func ReceiveIncome(c *gin.Context) {
	income, ok := getIncome(c)
	if !ok {
		return
	}

	err := income.MarkReceived(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return
	}

	r := newIncome(c, income)
	c.JSON(http.StatusOK, IncomeResponse{Data: &r})
}

// @Summary		Delete income
// @Description	Deletes an income
// @Tags			Incomes
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/incomes/{id} [delete]
func DeleteIncome(c *gin.Context) {
	resourceDelete(c, models.Income{})
}

// getIncome reads the income with the ID from the path. If that fails,
// the error response is written and false is returned.
func getIncome(c *gin.Context) (models.Income, bool) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return models.Income{}, false
	}

	var income models.Income
	err = models.DB.Scopes(owned(c)).First(&income, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), IncomeResponse{
			Error: &s,
		})
		return models.Income{}, false
	}

	return income, true
}
