package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmontay/pizzeria-backoffice/internal/models"
	"github.com/lmontay/pizzeria-backoffice/internal/services"
)

// ReviewController exposes review submission and reads.
type ReviewController struct {
	reviews services.ReviewService
	catalog services.CatalogService
}

// NewReviewController creates a new review controller.
func NewReviewController(reviews services.ReviewService, catalog services.CatalogService) *ReviewController {
	return &ReviewController{reviews: reviews, catalog: catalog}
}

type reviewRequest struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
}

type reviewResponse struct {
	Score   int    `json:"score"`
	Comment string `json:"comment"`
	Author  string `json:"author"`
}

// Submit godoc
// @Summary Review a pizza the connected client has received
// @Tags reviews
// @Accept json
// @Produce json
// @Param name path string true "Pizza name"
// @Param review body reviewRequest true "Score in [0,5] and optional comment"
// @Success 201 {object} map[string]string
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/pizzas/{name}/reviews [post]
func (rc *ReviewController) Submit(ctx *gin.Context) {
	var req reviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}

	pizza := rc.catalog.PizzaByName(ctx.Param("name"))
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}

	switch err := rc.reviews.Submit(pizza, req.Score, req.Comment); {
	case err == nil:
		ctx.JSON(http.StatusCreated, gin.H{"message": "review_recorded"})
	case errors.Is(err, services.ErrNotConnected):
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrNotConnected, err.Error()))
	case errors.Is(err, services.ErrReviewNotEligible):
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrReviewNotEligible, err.Error()))
	case errors.Is(err, services.ErrAlreadyReviewed):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrAlreadyReviewed, err.Error()))
	default:
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
	}
}

// List godoc
// @Summary List a pizza's reviews
// @Tags reviews
// @Produce json
// @Param name path string true "Pizza name"
// @Success 200 {array} reviewResponse
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{name}/reviews [get]
func (rc *ReviewController) List(ctx *gin.Context) {
	pizza := rc.catalog.PizzaByName(ctx.Param("name"))
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}

	res := []reviewResponse{}
	for _, r := range rc.reviews.ReviewsOf(pizza) {
		res = append(res, reviewResponse{
			Score:   r.Score,
			Comment: r.Comment,
			Author:  r.Author.Email(),
		})
	}
	ctx.JSON(http.StatusOK, res)
}

// AverageScore godoc
// @Summary Get a pizza's mean review score
// @Description The score is -1 when the pizza has no reviews yet
// @Tags reviews
// @Produce json
// @Param name path string true "Pizza name"
// @Success 200 {object} map[string]float64
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{name}/score [get]
func (rc *ReviewController) AverageScore(ctx *gin.Context) {
	pizza := rc.catalog.PizzaByName(ctx.Param("name"))
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"average_score": rc.reviews.AverageScore(pizza)})
}
