package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lmontay/pizzeria-backoffice/internal/models"
	"github.com/lmontay/pizzeria-backoffice/internal/services"
)

// AuthController exposes registration and the single-session login/logout
// over HTTP. A successful login both claims the domain's session slot and
// issues the bearer token the protected routes expect.
type AuthController struct {
	accounts          services.AccountService
	jwtSecret         []byte
	pizzaioloPassword string
}

// NewAuthController creates the controller with the signing secret and the
// back-office password.
func NewAuthController(accounts services.AccountService, jwtSecret, pizzaioloPassword string) *AuthController {
	return &AuthController{
		accounts:          accounts,
		jwtSecret:         []byte(jwtSecret),
		pizzaioloPassword: pizzaioloPassword,
	}
}

type registerRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Surname   string `json:"surname"`
	FirstName string `json:"first_name"`
	Address   string `json:"address"`
	Age       int    `json:"age"`
}

// Register godoc
// @Summary Register a new client account
// @Tags auth
// @Accept json
// @Produce json
// @Param account body registerRequest true "Account details"
// @Success 201 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Router /api/v1/public/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	info := &models.PersonalInfo{
		Surname:   req.Surname,
		FirstName: req.FirstName,
		Address:   req.Address,
		Age:       req.Age,
	}
	switch ac.accounts.Register(req.Email, req.Password, info) {
	case services.RegisterOK:
		c.JSON(http.StatusCreated, gin.H{"message": "account_created"})
	case services.RegisterDuplicateEmail:
		c.JSON(http.StatusConflict, models.NewAPIError(models.ErrEmailTaken, "email is already registered"))
	default:
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, "invalid email, password or personal info"))
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Connect a client and claim the session slot
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Router /api/v1/public/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	if !ac.accounts.Login(req.Email, req.Password) {
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrInvalidCredentials, "email or password is incorrect"))
		return
	}

	client := ac.accounts.CurrentSession()
	tokenString, err := ac.issueToken(client.Email(), "client")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "token generation failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": tokenString,
		"token_type":   "Bearer",
		"expires_in":   86400,
		"client": gin.H{
			"email":      client.Email(),
			"surname":    client.Account.Info.Surname,
			"first_name": client.Account.Info.FirstName,
		},
	})
}

type pizzaioloLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// PizzaioloLogin godoc
// @Summary Authenticate the pizzaiolo for back-office operations
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body pizzaioloLoginRequest true "Back-office password"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} models.APIError
// @Router /api/v1/public/pizzaiolo-login [post]
func (ac *AuthController) PizzaioloLogin(c *gin.Context) {
	var req pizzaioloLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	if req.Password != ac.pizzaioloPassword {
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrInvalidCredentials, "wrong back-office password"))
		return
	}

	tokenString, err := ac.issueToken("pizzaiolo@backoffice", "pizzaiolo")
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "token generation failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": tokenString,
		"token_type":   "Bearer",
		"expires_in":   86400,
	})
}

// Logout godoc
// @Summary Disconnect the current client
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	if !ac.accounts.Logout() {
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrNotConnected, "no client is connected"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "disconnected"})
}

func (ac *AuthController) issueToken(email, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"role":  role,
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
		"iat":   time.Now().Unix(),
	})
	return token.SignedString(ac.jwtSecret)
}
