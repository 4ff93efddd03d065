package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmontay/pizzeria-backoffice/internal/models"
	"github.com/lmontay/pizzeria-backoffice/internal/services"
)

// CatalogController handles HTTP requests against the pizza catalog
type CatalogController interface {
	// GetPizzas lists the catalog
	GetPizzas(c *gin.Context)
	// GetPizzaByName retrieves a single pizza
	GetPizzaByName(c *gin.Context)
	// GetIngredients lists the known ingredients
	GetIngredients(c *gin.Context)
	// CreateIngredient registers a new ingredient
	CreateIngredient(c *gin.Context)
	// SetIngredientPrice changes an ingredient's unit price
	SetIngredientPrice(c *gin.Context)
	// ToggleForbidden flips a (ingredient, category) prohibition
	ToggleForbidden(c *gin.Context)
	// CreatePizza registers a new pizza
	CreatePizza(c *gin.Context)
	// AddIngredient adds an ingredient to a pizza
	AddIngredient(c *gin.Context)
	// RemoveIngredient removes an ingredient from a pizza
	RemoveIngredient(c *gin.Context)
	// SetPrice fixes a pizza's manual sale price
	SetPrice(c *gin.Context)
	// SetPhoto attaches a photo to a pizza
	SetPhoto(c *gin.Context)
	// VerifyIngredients lists a pizza's currently forbidden ingredients
	VerifyIngredients(c *gin.Context)
}

type catalogController struct {
	catalog services.CatalogService
}

// NewCatalogController creates a new instance of CatalogController
func NewCatalogController(catalog services.CatalogService) CatalogController {
	return &catalogController{catalog: catalog}
}

// GetPizzas godoc
// @Summary List the pizza catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Pizza
// @Router /api/v1/public/pizzas [get]
func (cc *catalogController) GetPizzas(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, cc.catalog.Pizzas())
}

// GetPizzaByName godoc
// @Summary Get a pizza by name
// @Tags catalog
// @Produce json
// @Param name path string true "Pizza name (case-insensitive)"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{name} [get]
func (cc *catalogController) GetPizzaByName(ctx *gin.Context) {
	pizza := cc.catalog.PizzaByName(ctx.Param("name"))
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// GetIngredients godoc
// @Summary List the known ingredients
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Ingredient
// @Router /api/v1/public/ingredients [get]
func (cc *catalogController) GetIngredients(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, cc.catalog.Ingredients())
}

type ingredientRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price" binding:"required"`
}

// CreateIngredient godoc
// @Summary Register a new ingredient
// @Tags catalog
// @Accept json
// @Produce json
// @Param ingredient body ingredientRequest true "Ingredient"
// @Success 201 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients [post]
func (cc *catalogController) CreateIngredient(ctx *gin.Context) {
	var req ingredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	switch err := cc.catalog.CreateIngredient(req.Name, req.Price); {
	case err == nil:
		ctx.JSON(http.StatusCreated, cc.catalog.IngredientByName(req.Name))
	case errors.Is(err, services.ErrIngredientExists):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrIngredientExists, err.Error()))
	default:
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
	}
}

type priceRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// SetIngredientPrice godoc
// @Summary Change an ingredient's unit price
// @Tags catalog
// @Accept json
// @Produce json
// @Param name path string true "Ingredient name"
// @Param price body priceRequest true "New price"
// @Success 200 {object} models.Ingredient
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/ingredients/{name}/price [put]
func (cc *catalogController) SetIngredientPrice(ctx *gin.Context) {
	var req priceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	name := ctx.Param("name")
	switch err := cc.catalog.SetIngredientPrice(name, req.Price); {
	case err == nil:
		ctx.JSON(http.StatusOK, cc.catalog.IngredientByName(name))
	case errors.Is(err, services.ErrIngredientNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, err.Error()))
	default:
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
	}
}

type forbiddenRequest struct {
	Ingredient string          `json:"ingredient" binding:"required"`
	Category   models.Category `json:"category" binding:"required"`
}

// ToggleForbidden godoc
// @Summary Toggle a forbidden (ingredient, category) pair
// @Tags catalog
// @Accept json
// @Produce json
// @Param pair body forbiddenRequest true "Prohibition to toggle"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/forbidden [post]
func (cc *catalogController) ToggleForbidden(ctx *gin.Context) {
	var req forbiddenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}
	if _, err := models.ParseCategory(string(req.Category)); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	if !cc.catalog.ToggleForbidden(req.Ingredient, req.Category) {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, "ingredient not found"))
		return
	}
	ing := cc.catalog.IngredientByName(req.Ingredient)
	ctx.JSON(http.StatusOK, gin.H{"forbidden": cc.catalog.IsForbidden(req.Category, ing)})
}

type createPizzaRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category models.Category `json:"category" binding:"required"`
}

// CreatePizza godoc
// @Summary Register a new pizza
// @Tags catalog
// @Accept json
// @Produce json
// @Param pizza body createPizzaRequest true "Pizza"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas [post]
func (cc *catalogController) CreatePizza(ctx *gin.Context) {
	var req createPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}
	if _, err := models.ParseCategory(string(req.Category)); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
		return
	}

	pizza := cc.catalog.CreatePizza(req.Name, req.Category)
	if pizza == nil {
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrPizzaExists, "pizza name is blank or already used"))
		return
	}
	ctx.JSON(http.StatusCreated, pizza)
}

type pizzaIngredientRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
}

// AddIngredient godoc
// @Summary Add an ingredient to a pizza
// @Tags catalog
// @Accept json
// @Produce json
// @Param name path string true "Pizza name"
// @Param ingredient body pizzaIngredientRequest true "Ingredient name"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{name}/ingredients [post]
func (cc *catalogController) AddIngredient(ctx *gin.Context) {
	var req pizzaIngredientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	pizza := cc.catalog.PizzaByName(ctx.Param("name"))
	switch err := cc.catalog.AddIngredientToPizza(pizza, req.Ingredient); {
	case err == nil:
		ctx.JSON(http.StatusOK, pizza)
	case errors.Is(err, services.ErrPizzaNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, err.Error()))
	case errors.Is(err, services.ErrIngredientNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, err.Error()))
	case errors.Is(err, services.ErrIngredientForbidden):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrIngredientForbidden, err.Error()))
	default:
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
	}
}

// RemoveIngredient godoc
// @Summary Remove an ingredient from a pizza
// @Tags catalog
// @Produce json
// @Param name path string true "Pizza name"
// @Param ingredient path string true "Ingredient name"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{name}/ingredients/{ingredient} [delete]
func (cc *catalogController) RemoveIngredient(ctx *gin.Context) {
	pizza := cc.catalog.PizzaByName(ctx.Param("name"))
	switch err := cc.catalog.RemoveIngredientFromPizza(pizza, ctx.Param("ingredient")); {
	case err == nil:
		ctx.JSON(http.StatusOK, pizza)
	case errors.Is(err, services.ErrPizzaNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, err.Error()))
	default:
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrIngredientNotFound, err.Error()))
	}
}

// SetPrice godoc
// @Summary Fix a pizza's manual sale price
// @Description The price is rejected when it is below the computed minimum price
// @Tags catalog
// @Accept json
// @Produce json
// @Param name path string true "Pizza name"
// @Param price body priceRequest true "Sale price"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{name}/price [put]
func (cc *catalogController) SetPrice(ctx *gin.Context) {
	var req priceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	pizza := cc.catalog.PizzaByName(ctx.Param("name"))
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}
	if !cc.catalog.SetManualPrice(pizza, req.Price) {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrPriceBelowMinimum,
			"price is below the computed minimum price",
			map[string]interface{}{"minimum_price": pizza.MinimumPrice()}))
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

type photoRequest struct {
	Photo string `json:"photo" binding:"required"`
}

// SetPhoto godoc
// @Summary Attach a photo to a pizza
// @Tags catalog
// @Accept json
// @Produce json
// @Param name path string true "Pizza name"
// @Param photo body photoRequest true "Photo path"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{name}/photo [put]
func (cc *catalogController) SetPhoto(ctx *gin.Context) {
	var req photoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	pizza := cc.catalog.PizzaByName(ctx.Param("name"))
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}
	if !cc.catalog.SetPhoto(pizza, req.Photo) {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed,
			"photo must be a jpg, jpeg, png or gif file"))
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// VerifyIngredients godoc
// @Summary List a pizza's ingredients that are now forbidden for its category
// @Description Surfaces prohibitions added after the ingredient was already on the pizza
// @Tags catalog
// @Produce json
// @Param name path string true "Pizza name"
// @Success 200 {object} map[string][]string
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/pizzas/{name}/verify [get]
func (cc *catalogController) VerifyIngredients(ctx *gin.Context) {
	pizza := cc.catalog.PizzaByName(ctx.Param("name"))
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}
	forbidden := cc.catalog.VerifyPizzaIngredients(pizza)
	if forbidden == nil {
		forbidden = []string{}
	}
	ctx.JSON(http.StatusOK, gin.H{"forbidden_ingredients": forbidden})
}
