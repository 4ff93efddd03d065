package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lmontay/pizzeria-backoffice/internal/models"
	"github.com/lmontay/pizzeria-backoffice/internal/services"
)

// StatsController exposes the pizzaiolo's aggregate figures. All the
// aggregations run over the fulfilled orders and the current catalog.
type StatsController struct {
	orders  services.OrderService
	catalog services.CatalogService
}

// NewStatsController creates a new statistics controller.
func NewStatsController(orders services.OrderService, catalog services.CatalogService) *StatsController {
	return &StatsController{orders: orders, catalog: catalog}
}

// TotalBenefit godoc
// @Summary Total benefit over all fulfilled orders
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]float64
// @Security BearerAuth
// @Router /api/v1/protected/admin/stats/benefit [get]
func (sc *StatsController) TotalBenefit(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"total_benefit": services.TotalBenefit(sc.orders.Fulfilled()),
	})
}

// BenefitByPizza godoc
// @Summary Benefit grouped by catalog pizza
// @Description Pizzas never ordered report 0 rather than being omitted
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]float64
// @Security BearerAuth
// @Router /api/v1/protected/admin/stats/benefit-by-pizza [get]
func (sc *StatsController) BenefitByPizza(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, services.BenefitByPizza(sc.orders.Fulfilled(), sc.catalog.Pizzas()))
}

// BenefitByClient godoc
// @Summary Benefit grouped by client email
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]float64
// @Security BearerAuth
// @Router /api/v1/protected/admin/stats/benefit-by-client [get]
func (sc *StatsController) BenefitByClient(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, services.BenefitByClient(sc.orders.Fulfilled()))
}

// PizzaCountByClient godoc
// @Summary Number of pizzas ordered, grouped by client email
// @Tags stats
// @Produce json
// @Success 200 {object} map[string]int
// @Security BearerAuth
// @Router /api/v1/protected/admin/stats/pizza-count-by-client [get]
func (sc *StatsController) PizzaCountByClient(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, services.PizzaCountByClient(sc.orders.Fulfilled()))
}

// PizzaOrderCount godoc
// @Summary How many units of one pizza were ordered
// @Tags stats
// @Produce json
// @Param name path string true "Pizza name"
// @Success 200 {object} map[string]int
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/stats/pizzas/{name}/count [get]
func (sc *StatsController) PizzaOrderCount(ctx *gin.Context) {
	pizza := sc.catalog.PizzaByName(ctx.Param("name"))
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"count": services.OrderCount(sc.orders.Fulfilled(), pizza),
	})
}

// Ranking godoc
// @Summary Catalog pizzas ranked by descending order count
// @Description Ties keep the catalog's insertion order
// @Tags stats
// @Produce json
// @Success 200 {array} models.Pizza
// @Security BearerAuth
// @Router /api/v1/protected/admin/stats/ranking [get]
func (sc *StatsController) Ranking(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, services.Ranking(sc.orders.Fulfilled(), sc.catalog.Pizzas()))
}
