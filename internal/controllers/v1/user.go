package v1

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/card-ledger/backend/internal/auth"
	"github.com/card-ledger/backend/internal/httputil"
	"github.com/card-ledger/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type users struct {
	issuer auth.Issuer
}

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
//
// Registration and login do not need authentication, all other
// routes do.
func RegisterUserRoutes(r *gin.RouterGroup, issuer auth.Issuer) {
	u := users{issuer: issuer}

	r.OPTIONS("/register", OptionsUserRegister)
	r.POST("/register", u.Register)

	r.OPTIONS("/login", OptionsUserLogin)
	r.POST("/login", u.Login)

	r.OPTIONS("/me", OptionsUserMe)
	r.GET("/me", issuer.Middleware(), GetMe)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/register [options]
func OptionsUserRegister(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/login [options]
func OptionsUserLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users/me [options]
func OptionsUserMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Register
// @Description	Creates a new user and returns an access token for it
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		201		{object}	TokenResponse
// @Failure		400		{object}	TokenResponse
// @Failure		500		{object}	TokenResponse
// @Param			user	body		UserRegistration	true	"User"
// @Router			/v1/users/register [post]
func (u users) Register(c *gin.Context) {
	var data UserRegistration
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	user := models.User{
		Name:  data.Name,
		Email: data.Email,
	}

	err = user.Validate()
	if err == nil && utf8.RuneCountInString(data.Password) < models.MinPasswordLength {
		err = models.ErrUserPassword
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	user.PasswordHash, err = auth.HashPassword(data.Password)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{Error: &s})
		return
	}

	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	u.respondWithToken(c, http.StatusCreated, user)
}

// @Summary		Log in
// @Description	Returns an access token for the user
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200			{object}	TokenResponse
// @Failure		400			{object}	TokenResponse
// @Failure		401			{object}	TokenResponse
// @Failure		500			{object}	TokenResponse
// @Param			credentials	body		UserLogin	true	"Credentials"
// @Router			/v1/users/login [post]
func (u users) Login(c *gin.Context) {
	var data UserLogin
	err := httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(data.Email))).Error

	// Unknown users get the same error as wrong passwords
	if errors.Is(err, models.ErrResourceNotFound) {
		err = auth.ErrInvalidCredentials
	} else if err == nil {
		err = auth.CheckPassword(user.PasswordHash, data.Password)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), TokenResponse{Error: &s})
		return
	}

	u.respondWithToken(c, http.StatusOK, user)
}

func (u users) respondWithToken(c *gin.Context, code int, user models.User) {
	token, expires, err := u.issuer.IssueToken(user.ID)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, TokenResponse{Error: &s})
		return
	}

	c.JSON(code, TokenResponse{
		Data: &Token{
			Token:     token,
			ExpiresAt: expires.UTC(),
			User:      newUser(c, user),
		},
	})
}

// @Summary		Current user
// @Description	Returns the user the access token was issued for
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		401	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Security		BearerAuth
// @Router			/v1/users/me [get]
func GetMe(c *gin.Context) {
	var user models.User
	err := models.DB.First(&user, "id = ?", auth.Owner(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}
