package v1

import (
	"net/http"

	"github.com/card-ledger/backend/internal/auth"
	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/ledger"
	"github.com/card-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Security		BearerAuth
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// @Summary		Create expenses
// @Description	Creates new expenses. A card expense with more than one installment is stored as one record per installment, one month apart each.
// @Description	The balance of the card is increased by the amount once.
// @Tags			Expenses
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		404			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Security		BearerAuth
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		records, err := ledger.CreateExpense(models.DB, auth.Owner(c), editable.model())
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		group := ExpenseGroupResponse{Data: make([]Expense, 0, len(records))}
		for _, record := range records {
			data, err := expenseWithCard(c, record)
			if err != nil {
				s := err.Error()
				group.Error = &s
				break
			}
			group.Data = append(group.Data, data)
		}
		r.Data = append(r.Data, group)
	}

	c.JSON(status, r)
}

// @Summary		Get expenses
// @Description	Returns a list of expenses, most recent first
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		400	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Param			type		query	string	false	"Filter by type"
// @Param			status		query	string	false	"Filter by status"
// @Param			tag			query	string	false	"Filter by tag"
// @Param			card		query	string	false	"Filter by card ID. Empty for expenses without card"
// @Param			group		query	string	false	"Filter by installment group ID. Empty for single payments"
// @Param			description	query	string	false	"Filter by description"
// @Param			fromDate	query	string	false	"Expenses at and after this date"
// @Param			untilDate	query	string	false	"Expenses before and at this date"
// @Param			offset		query	uint	false	"The offset of the first Expense returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Expenses to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/expenses [get]
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ExpenseListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	cardID, groupID, err := filter.ids()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Scopes(owned(c)).
		Order(models.DateTime(models.DB, "date") + " DESC, created_at DESC").
		Where(&filterModel, queryFields...)

	q = idFilter(q, setFields, "CardID", "card_id", cardID)
	q = idFilter(q, setFields, "InstallmentGroupID", "installment_group_id", groupID)
	q = stringFilter(q, setFields, "Description", "description", filter.Description)

	q, err = dateFilter(q, "date", filter.FromDate, filter.UntilDate)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var expenses []models.Expense
	err = q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	cards, err := expenseCards(c, expenses)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Expense, 0, len(expenses))
	for _, expense := range expenses {
		var card *models.Card
		if expense.CardID != nil {
			if cc, ok := cards[*expense.CardID]; ok {
				card = &cc
			}
		}
		data = append(data, newExpense(c, expense, card))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.Scopes(owned(c)).First(&expense, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	data, err := expenseWithCard(c, expense)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &data})
}

// @Summary		Update expense
// @Description	Updates an existing expense. Only description, tag and status can be updated. Updates never change the balance of a card.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseUpdate	true	"Expense"
// @Security		BearerAuth
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.Scopes(owned(c)).First(&expense, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	bodyFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updatable := []any{"Description", "Tag", "Status"}
	for _, field := range bodyFields {
		if !slices.Contains(updatable, field) {
			s := errExpenseFieldNotUpdatable.Error()
			c.JSON(http.StatusBadRequest, ExpenseResponse{
				Error: &s,
			})
			return
		}
	}

	var data ExpenseUpdate
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	if slices.Contains(bodyFields, any("Status")) {
		if err := data.Status.Validate(); err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ExpenseResponse{
				Error: &s,
			})
			return
		}
	}

	if len(bodyFields) > 0 {
		err = models.DB.Model(&expense).Select("", bodyFields...).Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseResponse{
				Error: &s,
			})
			return
		}
	}

	r, err := expenseWithCard(c, expense)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, ExpenseResponse{Data: &r})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Other installments of the same expense and the balance of the card are not changed.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	resourceDelete(c, models.Expense{})
}

// idFilter filters on a UUID column. An ID that is explicitly set to the
// empty string in the query matches all rows where the column is NULL.
func idFilter(query *gorm.DB, setFields []string, field, column string, id uuid.UUID) *gorm.DB {
	if id != uuid.Nil {
		return query.Where(column+" = ?", id)
	} else if slices.Contains(setFields, field) {
		return query.Where(column + " IS NULL")
	}

	return query
}

// expenseCards loads the cards of all card expenses, including deleted ones.
func expenseCards(c *gin.Context, expenses []models.Expense) (map[uuid.UUID]models.Card, error) {
	var ids []uuid.UUID
	for _, expense := range expenses {
		if expense.CardID != nil && !slices.Contains(ids, *expense.CardID) {
			ids = append(ids, *expense.CardID)
		}
	}

	cards := make(map[uuid.UUID]models.Card, len(ids))
	if len(ids) == 0 {
		return cards, nil
	}

	var found []models.Card
	err := models.DB.Unscoped().Scopes(owned(c)).Where("id IN ?", ids).Find(&found).Error
	if err != nil {
		return nil, err
	}

	for _, card := range found {
		cards[card.ID] = card
	}

	return cards, nil
}

// expenseWithCard returns the API representation of a single expense.
func expenseWithCard(c *gin.Context, expense models.Expense) (Expense, error) {
	cards, err := expenseCards(c, []models.Expense{expense})
	if err != nil {
		return Expense{}, err
	}

	var card *models.Card
	if expense.CardID != nil {
		if cc, ok := cards[*expense.CardID]; ok {
			card = &cc
		}
	}

	return newExpense(c, expense, card), nil
}
