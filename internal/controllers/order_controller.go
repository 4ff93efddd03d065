package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lmontay/pizzeria-backoffice/internal/models"
	"github.com/lmontay/pizzeria-backoffice/internal/services"
)

// OrderController drives the order lifecycle for the connected client, plus
// the ledger-wide reads and the bulk fulfilment used by the pizzaiolo.
type OrderController struct {
	orders   services.OrderService
	catalog  services.CatalogService
	accounts services.AccountService
}

// NewOrderController creates a new order controller.
func NewOrderController(orders services.OrderService, catalog services.CatalogService, accounts services.AccountService) *OrderController {
	return &OrderController{orders: orders, catalog: catalog, accounts: accounts}
}

// Begin godoc
// @Summary Start a new empty order for the connected client
// @Tags orders
// @Produce json
// @Success 201 {object} models.Order
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders [post]
func (oc *OrderController) Begin(ctx *gin.Context) {
	order, err := oc.orders.Begin()
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrNotConnected, err.Error()))
		return
	}
	ctx.JSON(http.StatusCreated, order)
}

type addPizzaRequest struct {
	Pizza string `json:"pizza" binding:"required"`
	Count int    `json:"count" binding:"required"`
}

// AddPizza godoc
// @Summary Add pizzas to an order still being built
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order id"
// @Param line body addPizzaRequest true "Pizza name and unit count"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id}/pizzas [post]
func (oc *OrderController) AddPizza(ctx *gin.Context) {
	order, ok := oc.lookupOrder(ctx)
	if !ok {
		return
	}

	var req addPizzaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}
	pizza := oc.catalog.PizzaByName(req.Pizza)
	if pizza == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "pizza not found"))
		return
	}

	if err := oc.orders.AddPizza(order, pizza, req.Count); err != nil {
		oc.respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// Validate godoc
// @Summary Validate an order
// @Tags orders
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} models.Order
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id}/validate [post]
func (oc *OrderController) Validate(ctx *gin.Context) {
	order, ok := oc.lookupOrder(ctx)
	if !ok {
		return
	}
	if err := oc.orders.Validate(order); err != nil {
		oc.respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// Cancel godoc
// @Summary Cancel an order, deleting it from the ledger
// @Tags orders
// @Produce json
// @Param id path int true "Order id"
// @Success 204
// @Failure 401 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 409 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders/{id} [delete]
func (oc *OrderController) Cancel(ctx *gin.Context) {
	order, ok := oc.lookupOrder(ctx)
	if !ok {
		return
	}
	if err := oc.orders.Cancel(order); err != nil {
		oc.respondOrderError(ctx, err)
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

// MyOrders godoc
// @Summary List the connected client's orders
// @Tags orders
// @Produce json
// @Param state query string false "Filter: in-progress or processed"
// @Success 200 {array} models.Order
// @Failure 401 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/orders [get]
func (oc *OrderController) MyOrders(ctx *gin.Context) {
	client := oc.accounts.CurrentSession()
	if client == nil {
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrNotConnected, "no client is connected"))
		return
	}

	var orders []*models.Order
	switch ctx.Query("state") {
	case "in-progress":
		orders = client.OpenOrders()
	case "processed":
		orders = client.ProcessedOrders()
	default:
		orders = client.Orders
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	ctx.JSON(http.StatusOK, orders)
}

// LedgerOrders godoc
// @Summary List all orders in the ledger
// @Tags orders
// @Produce json
// @Param state query string false "Filter: in-progress, processed or fulfilled"
// @Success 200 {array} models.Order
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders [get]
func (oc *OrderController) LedgerOrders(ctx *gin.Context) {
	var orders []*models.Order
	switch ctx.Query("state") {
	case "in-progress":
		orders = oc.orders.InProgress()
	case "processed":
		orders = oc.orders.Processed()
	case "fulfilled":
		orders = oc.orders.Fulfilled()
	default:
		orders = oc.orders.All()
	}
	if orders == nil {
		orders = []*models.Order{}
	}
	ctx.JSON(http.StatusOK, orders)
}

// FulfillValidated godoc
// @Summary Move every validated order to fulfilled
// @Description Idempotent: calling it again right away transitions nothing
// @Tags orders
// @Produce json
// @Success 200 {array} models.Order
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders/fulfill [post]
func (oc *OrderController) FulfillValidated(ctx *gin.Context) {
	fulfilled := oc.orders.FulfillValidated()
	if fulfilled == nil {
		fulfilled = []*models.Order{}
	}
	ctx.JSON(http.StatusOK, fulfilled)
}

// RecomputeTotal godoc
// @Summary Rebuild an order's total from its current line items
// @Tags orders
// @Produce json
// @Param id path int true "Order id"
// @Success 200 {object} models.Order
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/protected/admin/orders/{id}/recompute [post]
func (oc *OrderController) RecomputeTotal(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "invalid order id"))
		return
	}
	order := oc.orders.OrderByID(id)
	if order == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "order not found"))
		return
	}
	if err := oc.orders.RecomputeTotal(order); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, err.Error()))
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// lookupOrder resolves the :id path parameter against the ledger.
func (oc *OrderController) lookupOrder(ctx *gin.Context) (*models.Order, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "invalid order id"))
		return nil, false
	}
	order := oc.orders.OrderByID(id)
	if order == nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "order not found"))
		return nil, false
	}
	return order, true
}

func (oc *OrderController) respondOrderError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotConnected):
		ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrNotConnected, err.Error()))
	case errors.Is(err, services.ErrOrderNotOwned):
		ctx.JSON(http.StatusForbidden, models.NewAPIError(models.ErrOrderNotOwned, err.Error()))
	case errors.Is(err, services.ErrOrderNotEditable), errors.Is(err, services.ErrOrderFulfilled):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrOrderNotEditable, err.Error()))
	case errors.Is(err, services.ErrInvalidCount):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrValidationFailed, err.Error()))
	default:
		// Validate on a non-Created order lands here.
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrIllegalTransition, err.Error()))
	}
}
