package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
)

// orderFixture wires the catalog, accounts and orders together with one
// priced pizza and a connected client.
type orderFixture struct {
	catalog  CatalogService
	accounts AccountService
	orders   OrderService
	pizza    *models.Pizza
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	require.NoError(t, catalog.CreateIngredient("mushroom", 1.00))
	pizza := catalog.CreatePizza("Regina", models.CategoryMeat)
	require.NoError(t, catalog.AddIngredientToPizza(pizza, "ham"))
	require.NoError(t, catalog.AddIngredientToPizza(pizza, "mushroom"))

	accounts := NewAccountService()
	require.Equal(t, RegisterOK, accounts.Register("alice@example.com", "pass", testInfo()))
	require.True(t, accounts.Login("alice@example.com", "pass"))

	return &orderFixture{
		catalog:  catalog,
		accounts: accounts,
		orders:   NewOrderService(accounts),
		pizza:    pizza,
	}
}

func TestBeginRequiresSession(t *testing.T) {
	fx := newOrderFixture(t)
	fx.accounts.Logout()

	_, err := fx.orders.Begin()
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestBeginAttachesOrderToClient(t *testing.T) {
	fx := newOrderFixture(t)

	o, err := fx.orders.Begin()
	require.NoError(t, err)
	assert.Equal(t, 1, o.ID)
	assert.Equal(t, models.OrderCreated, o.State)
	assert.Equal(t, o, fx.accounts.CurrentSession().OrderByID(1))

	o2, err := fx.orders.Begin()
	require.NoError(t, err)
	assert.Equal(t, 2, o2.ID)
}

func TestAddPizzaGuards(t *testing.T) {
	fx := newOrderFixture(t)
	o, err := fx.orders.Begin()
	require.NoError(t, err)

	assert.ErrorIs(t, fx.orders.AddPizza(o, fx.pizza, 0), ErrInvalidCount)
	assert.ErrorIs(t, fx.orders.AddPizza(nil, fx.pizza, 1), ErrNilOrder)

	require.NoError(t, fx.orders.AddPizza(o, fx.pizza, 2))
	assert.Len(t, o.Pizzas, 2)
	assert.InDelta(t, 8.40, o.Total, 0.001)

	// A validated order is frozen.
	require.NoError(t, fx.orders.Validate(o))
	assert.ErrorIs(t, fx.orders.AddPizza(o, fx.pizza, 1), ErrOrderNotEditable)
}

func TestAddPizzaRejectsForeignOrder(t *testing.T) {
	fx := newOrderFixture(t)
	o, err := fx.orders.Begin()
	require.NoError(t, err)

	require.Equal(t, RegisterOK, fx.accounts.Register("bob@example.com", "pass", testInfo()))
	require.True(t, fx.accounts.Login("bob@example.com", "pass"))

	assert.ErrorIs(t, fx.orders.AddPizza(o, fx.pizza, 1), ErrOrderNotOwned)
	assert.ErrorIs(t, fx.orders.Validate(o), ErrOrderNotOwned)
	assert.ErrorIs(t, fx.orders.Cancel(o), ErrOrderNotOwned)
}

func TestValidateTwiceFails(t *testing.T) {
	fx := newOrderFixture(t)
	o, err := fx.orders.Begin()
	require.NoError(t, err)
	require.NoError(t, fx.orders.AddPizza(o, fx.pizza, 1))

	require.NoError(t, fx.orders.Validate(o))
	assert.Error(t, fx.orders.Validate(o))
}

func TestCancelRemovesOrderEverywhere(t *testing.T) {
	fx := newOrderFixture(t)
	o, err := fx.orders.Begin()
	require.NoError(t, err)

	require.NoError(t, fx.orders.Cancel(o))
	assert.Nil(t, fx.orders.OrderByID(o.ID))
	assert.Nil(t, fx.accounts.CurrentSession().OrderByID(o.ID))
	assert.Empty(t, fx.orders.All())
}

func TestCancelFulfilledFails(t *testing.T) {
	fx := newOrderFixture(t)
	o, err := fx.orders.Begin()
	require.NoError(t, err)
	require.NoError(t, fx.orders.Validate(o))
	fx.orders.FulfillValidated()

	assert.ErrorIs(t, fx.orders.Cancel(o), ErrOrderFulfilled)
	assert.NotNil(t, fx.orders.OrderByID(o.ID))
}

func TestFulfillValidatedIsSinglePass(t *testing.T) {
	fx := newOrderFixture(t)

	created, err := fx.orders.Begin()
	require.NoError(t, err)
	validated, err := fx.orders.Begin()
	require.NoError(t, err)
	require.NoError(t, fx.orders.Validate(validated))

	fulfilled := fx.orders.FulfillValidated()
	require.Len(t, fulfilled, 1)
	assert.Equal(t, validated, fulfilled[0])
	assert.Equal(t, models.OrderFulfilled, validated.State)
	assert.Equal(t, models.OrderCreated, created.State)

	// Nothing left to transition on the second call.
	assert.Empty(t, fx.orders.FulfillValidated())
}

func TestOrderClassification(t *testing.T) {
	fx := newOrderFixture(t)

	created, err := fx.orders.Begin()
	require.NoError(t, err)
	validated, err := fx.orders.Begin()
	require.NoError(t, err)
	require.NoError(t, fx.orders.Validate(validated))
	fulfilled, err := fx.orders.Begin()
	require.NoError(t, err)
	require.NoError(t, fx.orders.Validate(fulfilled))
	fulfilled.ForceState(models.OrderFulfilled)

	assert.Equal(t, []*models.Order{created}, fx.orders.InProgress())
	assert.Equal(t, []*models.Order{validated, fulfilled}, fx.orders.Processed())
	assert.Equal(t, []*models.Order{fulfilled}, fx.orders.Fulfilled())
	assert.Equal(t, []*models.Order{fulfilled}, fx.orders.FulfilledFor(fx.accounts.CurrentSession()))
	assert.Len(t, fx.orders.All(), 3)
}

func TestRecomputeTotalNeedsNoSession(t *testing.T) {
	fx := newOrderFixture(t)
	o, err := fx.orders.Begin()
	require.NoError(t, err)
	require.NoError(t, fx.orders.AddPizza(o, fx.pizza, 1))
	fx.accounts.Logout()

	require.True(t, fx.catalog.SetManualPrice(fx.pizza, 9.90))
	require.NoError(t, fx.orders.RecomputeTotal(o))
	assert.InDelta(t, 9.90, o.Total, 0.001)

	assert.ErrorIs(t, fx.orders.RecomputeTotal(nil), ErrNilOrder)
}

func TestRestoreOrderBypassesGuards(t *testing.T) {
	fx := newOrderFixture(t)
	fx.accounts.Logout()
	client := fx.accounts.ClientByEmail("alice@example.com")

	o := fx.orders.RestoreOrder(client, models.OrderFulfilled, []*models.Pizza{fx.pizza, fx.pizza})

	assert.Equal(t, models.OrderFulfilled, o.State)
	assert.Len(t, o.Pizzas, 2)
	assert.InDelta(t, 8.40, o.Total, 0.001)
	assert.Equal(t, o, client.OrderByID(o.ID))
}

func TestOrdersReset(t *testing.T) {
	fx := newOrderFixture(t)
	_, err := fx.orders.Begin()
	require.NoError(t, err)

	fx.orders.Reset()

	assert.Empty(t, fx.orders.All())
	// The id sequence restarts.
	o, err := fx.orders.Begin()
	require.NoError(t, err)
	assert.Equal(t, 1, o.ID)
}
