package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmontay/pizzeria-backoffice/internal/models"
	"github.com/lmontay/pizzeria-backoffice/internal/services"
)

// FilterController applies and clears the catalog filter. The filter keeps
// predicates, not pizzas: every apply re-reads the catalog's contents.
type FilterController struct {
	filter services.FilterService
}

// NewFilterController creates a new filter controller.
func NewFilterController(filter services.FilterService) *FilterController {
	return &FilterController{filter: filter}
}

type filterRequest struct {
	Category    *models.Category `json:"category,omitempty"`
	Ingredients []string         `json:"ingredients,omitempty"`
	MaxPrice    *float64         `json:"max_price,omitempty"`
}

// Apply godoc
// @Summary Set filter predicates and return the matching pizzas
// @Description Absent fields leave the corresponding predicate untouched; the predicates are ANDed
// @Tags filter
// @Accept json
// @Produce json
// @Param filters body filterRequest true "Predicates to set"
// @Success 200 {array} models.Pizza
// @Failure 400 {object} models.APIError
// @Router /api/v1/public/filter [post]
func (fc *FilterController) Apply(ctx *gin.Context) {
	var req filterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	if req.Category != nil {
		if _, err := models.ParseCategory(string(*req.Category)); err != nil {
			ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
			return
		}
		fc.filter.SetCategory(*req.Category)
	}
	if len(req.Ingredients) > 0 {
		fc.filter.SetIngredients(req.Ingredients...)
	}
	if req.MaxPrice != nil {
		fc.filter.SetMaxPrice(*req.MaxPrice)
	}

	fc.respondMatches(ctx)
}

// Matches godoc
// @Summary Return the pizzas passing the currently set predicates
// @Tags filter
// @Produce json
// @Success 200 {array} models.Pizza
// @Router /api/v1/public/filter [get]
func (fc *FilterController) Matches(ctx *gin.Context) {
	fc.respondMatches(ctx)
}

// Clear godoc
// @Summary Unset every filter predicate
// @Tags filter
// @Produce json
// @Success 204
// @Router /api/v1/public/filter [delete]
func (fc *FilterController) Clear(ctx *gin.Context) {
	fc.filter.Clear()
	ctx.JSON(http.StatusNoContent, nil)
}

func (fc *FilterController) respondMatches(ctx *gin.Context) {
	matches := fc.filter.Matches()
	if matches == nil {
		matches = []*models.Pizza{}
	}
	ctx.JSON(http.StatusOK, matches)
}
