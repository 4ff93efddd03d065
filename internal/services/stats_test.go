package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
)

// statsFixture builds two clients with fulfilled orders over a two-pizza
// catalog. Regina sells at 9.00 against a 4.20 minimum (benefit 4.80);
// Margherita has no manual price, so its benefit is zero.
type statsFixture struct {
	catalog    CatalogService
	orders     OrderService
	regina     *models.Pizza
	margherita *models.Pizza
	fulfilled  []*models.Order
}

func newStatsFixture(t *testing.T) *statsFixture {
	t.Helper()
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	require.NoError(t, catalog.CreateIngredient("mushroom", 1.00))
	require.NoError(t, catalog.CreateIngredient("tomato", 0.80))

	regina := catalog.CreatePizza("Regina", models.CategoryMeat)
	require.NoError(t, catalog.AddIngredientToPizza(regina, "ham"))
	require.NoError(t, catalog.AddIngredientToPizza(regina, "mushroom"))
	require.True(t, catalog.SetManualPrice(regina, 9.00))

	margherita := catalog.CreatePizza("Margherita", models.CategoryVegetarian)
	require.NoError(t, catalog.AddIngredientToPizza(margherita, "tomato"))

	accounts := NewAccountService()
	require.Equal(t, RegisterOK, accounts.Register("alice@example.com", "pass", testInfo()))
	require.Equal(t, RegisterOK, accounts.Register("bob@example.com", "pass", testInfo()))
	orders := NewOrderService(accounts)

	alice := accounts.ClientByEmail("alice@example.com")
	bob := accounts.ClientByEmail("bob@example.com")

	// Alice: two Reginas and a Margherita. Bob: one Regina.
	orders.RestoreOrder(alice, models.OrderFulfilled, []*models.Pizza{regina, regina, margherita})
	orders.RestoreOrder(bob, models.OrderFulfilled, []*models.Pizza{regina})
	// An order still in progress never counts.
	orders.RestoreOrder(bob, models.OrderCreated, []*models.Pizza{margherita})

	return &statsFixture{
		catalog:    catalog,
		orders:     orders,
		regina:     regina,
		margherita: margherita,
		fulfilled:  orders.Fulfilled(),
	}
}

func TestPizzaBenefit(t *testing.T) {
	fx := newStatsFixture(t)

	assert.InDelta(t, 4.80, PizzaBenefit(fx.regina), 0.001)
	// Without a manual price the pizza sells at its minimum.
	assert.InDelta(t, 0.0, PizzaBenefit(fx.margherita), 0.001)
	assert.Equal(t, 0.0, PizzaBenefit(nil))
}

func TestTotalBenefit(t *testing.T) {
	fx := newStatsFixture(t)

	// Three Reginas at 4.80 margin each.
	assert.InDelta(t, 14.40, TotalBenefit(fx.fulfilled), 0.001)
	assert.Equal(t, 0.0, TotalBenefit(nil))
}

func TestBenefitByPizzaZeroFillsCatalog(t *testing.T) {
	fx := newStatsFixture(t)

	res := BenefitByPizza(fx.fulfilled, fx.catalog.Pizzas())
	require.Len(t, res, 2)
	assert.InDelta(t, 14.40, res["Regina"], 0.001)
	// Never sold in a fulfilled order, but still present at zero.
	assert.InDelta(t, 0.0, res["Margherita"], 0.001)
	assert.Contains(t, res, "Margherita")
}

func TestBenefitByClient(t *testing.T) {
	fx := newStatsFixture(t)

	res := BenefitByClient(fx.fulfilled)
	require.Len(t, res, 2)
	assert.InDelta(t, 9.60, res["alice@example.com"], 0.001)
	assert.InDelta(t, 4.80, res["bob@example.com"], 0.001)
}

func TestPizzaCountByClient(t *testing.T) {
	fx := newStatsFixture(t)

	res := PizzaCountByClient(fx.fulfilled)
	assert.Equal(t, map[string]int{
		"alice@example.com": 3,
		"bob@example.com":   1,
	}, res)
}

func TestOrderCount(t *testing.T) {
	fx := newStatsFixture(t)

	assert.Equal(t, 3, OrderCount(fx.fulfilled, fx.regina))
	assert.Equal(t, 1, OrderCount(fx.fulfilled, fx.margherita))
	assert.Equal(t, 0, OrderCount(nil, fx.regina))
}

func TestRanking(t *testing.T) {
	fx := newStatsFixture(t)

	ranked := Ranking(fx.fulfilled, fx.catalog.Pizzas())
	require.Len(t, ranked, 2)
	assert.Equal(t, fx.regina, ranked[0])
	assert.Equal(t, fx.margherita, ranked[1])
}

func TestRankingTiesKeepCatalogOrder(t *testing.T) {
	fx := newStatsFixture(t)

	// With no orders everything ties at zero and the catalog order wins.
	ranked := Ranking(nil, fx.catalog.Pizzas())
	assert.Equal(t, []*models.Pizza{fx.regina, fx.margherita}, ranked)
}
