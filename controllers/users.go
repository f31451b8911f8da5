package controllers

import (
	"net/http"

	"github.com/CPU-commits/Academy_BBackoffice/forms"
	"github.com/CPU-commits/Academy_BBackoffice/res"
	"github.com/CPU-commits/Academy_BBackoffice/services"
	"github.com/CPU-commits/Academy_BBackoffice/settings"
	"github.com/gin-gonic/gin"
)

// Services
var usersService = services.NewUsersService()

// Settings
var settingsData = settings.GetSettings()

// Session cookie lifetime in seconds, same as the token expiration
const COOKIE_MAX_AGE = 60 * 60 * 24

type UsersController struct{}

func setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		maxAge,
		"/",
		"",
		settingsData.NODE_ENV == "prod",
		true,
	)
}

// Feed
// Register godoc
// @Summary     Register user
// @Description Register a back office user
// @Tags        users
// @Tags        roles.admin
// @Accept      json
// @Produce     json
// @Success     201 {object} res.Response{body=smaps.UserMap}
// @Failure     400 {object} res.Response{} "Bad body"
// @Failure     409 {object} res.Response{} "Ya existe un usuario con este email"
// @Router      /registration [post]
func (user *UsersController) Register(c *gin.Context) {
	var registration *forms.RegistrationForm
	if err := c.BindJSON(&registration); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	// Insert
	inserted, errRes := usersService.Register(registration)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["user"] = inserted
	c.JSON(http.StatusCreated, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Login godoc
// @Summary     Login
// @Description Validate credentials and set the session cookie
// @Tags        users
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.UserMap}
// @Failure     400 {object} res.Response{} "Bad body"
// @Failure     401 {object} res.Response{} "Credenciales inválidas"
// @Router      /login [post]
func (user *UsersController) Login(c *gin.Context) {
	var login *forms.LoginForm
	if err := c.BindJSON(&login); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	userData, token, errRes := usersService.Login(login)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	setSessionCookie(c, token, COOKIE_MAX_AGE)
	// Response
	response := make(map[string]interface{})
	response["user"] = userData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}

// Logout godoc
// @Summary     Logout
// @Description Clear the session cookie
// @Tags        users
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{}
// @Router      /logout [get]
func (user *UsersController) Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(200, &res.Response{
		Success: true,
	})
}

// Query
// Auth godoc
// @Summary     Auth
// @Description Get the session user from the cookie
// @Tags        users
// @Accept      json
// @Produce     json
// @Success     200 {object} res.Response{body=smaps.UserMap}
// @Failure     401 {object} res.Response{} "Unauthorized"
// @Failure     404 {object} res.Response{} "No existe este usuario"
// @Router      /auth [post]
func (user *UsersController) Auth(c *gin.Context) {
	claims, err := services.NewClaimsFromContext(c)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, &res.Response{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	userData, errRes := usersService.GetUserFromClaims(claims)
	if errRes != nil {
		c.AbortWithStatusJSON(errRes.StatusCode, &res.Response{
			Success: false,
			Message: errRes.Err.Error(),
		})
		return
	}
	// Response
	response := make(map[string]interface{})
	response["user"] = userData
	c.JSON(200, &res.Response{
		Success: true,
		Data:    response,
	})
}
