package v1

import (
	"net/http"

	"github.com/card-ledger/backend/internal/auth"
	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterCardRoutes registers the routes for cards with
// the RouterGroup that is passed.
func RegisterCardRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCardList)
		r.GET("", GetCards)
		r.POST("", CreateCards)
	}

	// Card with ID
	{
		r.OPTIONS("/:id", OptionsCardDetail)
		r.GET("/:id", GetCard)
		r.PATCH("/:id", UpdateCard)
		r.DELETE("/:id", DeleteCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Security		BearerAuth
// @Router			/v1/cards [options]
func OptionsCardList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Cards
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/cards/{id} [options]
func OptionsCardDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Card{})
}

// @Summary		Create cards
// @Description	Creates new cards
// @Tags			Cards
// @Produce		json
// @Success		201		{object}	CardCreateResponse
// @Failure		400		{object}	CardCreateResponse
// @Failure		500		{object}	CardCreateResponse
// @Param			cards	body		[]CardEditable	true	"Cards"
// @Security		BearerAuth
// @Router			/v1/cards [post]
func CreateCards(c *gin.Context) {
	var editables []CardEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CardCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := CardCreateResponse{}

	for _, editable := range editables {
		card := editable.model()
		card.OwnerID = auth.Owner(c)
		card.Balance = decimal.Zero

		err = card.Validate()
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		err = models.DB.Create(&card).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCard(c, card)
		r.Data = append(r.Data, CardResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get cards
// @Description	Returns a list of cards
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CardListResponse
// @Failure		400	{object}	CardListResponse
// @Failure		500	{object}	CardListResponse
// @Param			name		query	string	false	"Filter by name"
// @Param			brand		query	string	false	"Filter by brand"
// @Param			type		query	string	false	"Filter by type"
// @Param			isActive	query	bool	false	"Is the card in use?"
// @Param			search		query	string	false	"Search for this text in name and brand"
// @Param			offset		query	uint	false	"The offset of the first Card returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Cards to return. Defaults to 50."
// @Security		BearerAuth
// @Router			/v1/cards [get]
func GetCards(c *gin.Context) {
	var filter CardQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CardListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel, err := filter.model()
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardListResponse{
			Error: &s,
		})
		return
	}

	q := models.DB.
		Scopes(owned(c)).
		Order("name ASC").
		Where(&filterModel, queryFields...)

	q = stringFilter(q, setFields, "Name", "name", filter.Name)
	q = searchFilter(models.DB, q, filter.Search, "name", "brand")

	if slices.Contains(setFields, "IsActive") {
		q = q.Where("archived = ?", !filter.IsActive)
	}

	q, limit := paginate(q, setFields, filter.Offset, filter.Limit)

	var cards []models.Card
	err = q.Find(&cards).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Card, 0, len(cards))
	for _, card := range cards {
		data = append(data, newCard(c, card))
	}

	c.JSON(http.StatusOK, CardListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get card
// @Description	Returns a specific card
// @Tags			Cards
// @Produce		json
// @Success		200	{object}	CardResponse
// @Failure		400	{object}	CardResponse
// @Failure		404	{object}	CardResponse
// @Failure		500	{object}	CardResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/cards/{id} [get]
func GetCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	var card models.Card
	err = models.DB.Scopes(owned(c)).First(&card, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	data := newCard(c, card)
	c.JSON(http.StatusOK, CardResponse{Data: &data})
}

// @Summary		Update card
// @Description	Update an existing card. Only values to be updated need to be specified. The balance cannot be changed.
// @Tags			Cards
// @Accept			json
// @Produce		json
// @Success		200		{object}	CardResponse
// @Failure		400		{object}	CardResponse
// @Failure		404		{object}	CardResponse
// @Failure		500		{object}	CardResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			card	body		CardEditable	true	"Card"
// @Security		BearerAuth
// @Router			/v1/cards/{id} [patch]
func UpdateCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	var card models.Card
	err = models.DB.Scopes(owned(c)).First(&card, "id = ?", uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, CardEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	var data CardEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	// The API calls it isActive, the database stores the inverse
	for i, field := range updateFields {
		if field == "IsActive" {
			updateFields[i] = "Archived"
		}
	}

	// The updated card is validated as a whole. If it is not valid,
	// the update is rolled back.
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&card).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			return err
		}

		err = tx.First(&card, "id = ?", card.ID).Error
		if err != nil {
			return err
		}

		return card.Validate()
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CardResponse{
			Error: &s,
		})
		return
	}

	r := newCard(c, card)
	c.JSON(http.StatusOK, CardResponse{Data: &r})
}

// @Summary		Delete card
// @Description	Deletes a card. Expenses on the card are kept.
// @Tags			Cards
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Failure		404	{object}	httperror.Error
// @Failure		500	{object}	httperror.Error
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Security		BearerAuth
// @Router			/v1/cards/{id} [delete]
func DeleteCard(c *gin.Context) {
	resourceDelete(c, models.Card{})
}
