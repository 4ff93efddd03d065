package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
)

func TestCreateIngredientValidation(t *testing.T) {
	catalog := NewCatalogService()

	require.NoError(t, catalog.CreateIngredient("tomato", 0.80))

	assert.ErrorIs(t, catalog.CreateIngredient("  ", 1.00), ErrBlankName)
	assert.ErrorIs(t, catalog.CreateIngredient("tomato", 2.00), ErrIngredientExists)
	assert.ErrorIs(t, catalog.CreateIngredient("basil", 0), ErrInvalidPrice)
	assert.ErrorIs(t, catalog.CreateIngredient("basil", -1), ErrInvalidPrice)

	assert.Len(t, catalog.Ingredients(), 1)
}

func TestSetIngredientPrice(t *testing.T) {
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("tomato", 0.80))

	require.NoError(t, catalog.SetIngredientPrice("tomato", 1.20))
	assert.InDelta(t, 1.20, catalog.IngredientByName("tomato").Price, 0.001)

	assert.ErrorIs(t, catalog.SetIngredientPrice("tomato", 0), ErrInvalidPrice)
	assert.ErrorIs(t, catalog.SetIngredientPrice("basil", 1.00), ErrIngredientNotFound)
}

func TestToggleForbiddenFlips(t *testing.T) {
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	ham := catalog.IngredientByName("ham")

	// Unknown ingredient is the only failure.
	assert.False(t, catalog.ToggleForbidden("bacon", models.CategoryVegetarian))

	assert.True(t, catalog.ToggleForbidden("ham", models.CategoryVegetarian))
	assert.True(t, catalog.IsForbidden(models.CategoryVegetarian, ham))
	// Other categories are unaffected.
	assert.False(t, catalog.IsForbidden(models.CategoryMeat, ham))

	// A second toggle lifts the prohibition.
	assert.True(t, catalog.ToggleForbidden("ham", models.CategoryVegetarian))
	assert.False(t, catalog.IsForbidden(models.CategoryVegetarian, ham))
}

func TestSetForbiddenIsIdempotent(t *testing.T) {
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	ham := catalog.IngredientByName("ham")

	assert.True(t, catalog.SetForbidden("ham", models.CategoryVegetarian))
	assert.True(t, catalog.SetForbidden("ham", models.CategoryVegetarian))
	assert.True(t, catalog.IsForbidden(models.CategoryVegetarian, ham))

	assert.False(t, catalog.SetForbidden("bacon", models.CategoryVegetarian))
}

func TestCreatePizza(t *testing.T) {
	catalog := NewCatalogService()

	p := catalog.CreatePizza("Margherita", models.CategoryVegetarian)
	require.NotNil(t, p)

	assert.Nil(t, catalog.CreatePizza("  ", models.CategoryMeat))
	// Duplicate names are rejected case-insensitively.
	assert.Nil(t, catalog.CreatePizza("MARGHERITA", models.CategoryMeat))

	assert.Equal(t, p, catalog.PizzaByName("margherita"))
	assert.Len(t, catalog.Pizzas(), 1)
}

func TestAddIngredientToPizza(t *testing.T) {
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("tomato", 0.80))
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	catalog.ToggleForbidden("ham", models.CategoryVegetarian)

	p := catalog.CreatePizza("Margherita", models.CategoryVegetarian)
	require.NotNil(t, p)

	require.NoError(t, catalog.AddIngredientToPizza(p, "tomato"))
	assert.True(t, p.HasIngredient("tomato"))

	assert.ErrorIs(t, catalog.AddIngredientToPizza(p, "basil"), ErrIngredientNotFound)
	assert.ErrorIs(t, catalog.AddIngredientToPizza(p, "ham"), ErrIngredientForbidden)

	stranger := models.NewPizza("Calzone", models.CategoryRegional)
	assert.ErrorIs(t, catalog.AddIngredientToPizza(stranger, "tomato"), ErrPizzaNotFound)
	assert.ErrorIs(t, catalog.AddIngredientToPizza(nil, "tomato"), ErrPizzaNotFound)
}

func TestRemoveIngredientFromPizza(t *testing.T) {
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("tomato", 0.80))
	p := catalog.CreatePizza("Margherita", models.CategoryVegetarian)
	require.NoError(t, catalog.AddIngredientToPizza(p, "tomato"))

	require.NoError(t, catalog.RemoveIngredientFromPizza(p, "tomato"))
	assert.ErrorIs(t, catalog.RemoveIngredientFromPizza(p, "tomato"), ErrIngredientNotOnPizza)
	assert.ErrorIs(t, catalog.RemoveIngredientFromPizza(p, "basil"), ErrIngredientNotFound)
}

func TestSetManualPriceEnforcesMinimum(t *testing.T) {
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	require.NoError(t, catalog.CreateIngredient("mushroom", 1.00))

	p := catalog.CreatePizza("Regina", models.CategoryMeat)
	require.NoError(t, catalog.AddIngredientToPizza(p, "ham"))
	require.NoError(t, catalog.AddIngredientToPizza(p, "mushroom"))
	// Minimum is 3.00 * 1.4 = 4.20.

	assert.False(t, catalog.SetManualPrice(p, 4.00))
	assert.Nil(t, p.SalePrice)

	assert.True(t, catalog.SetManualPrice(p, 4.20))
	assert.InDelta(t, 4.20, p.Price(), 0.001)

	assert.False(t, catalog.SetManualPrice(nil, 10.00))
}

func TestSetPhotoAcceptsOnlyImageFiles(t *testing.T) {
	catalog := NewCatalogService()
	p := catalog.CreatePizza("Regina", models.CategoryMeat)

	testCases := []struct {
		path string
		ok   bool
	}{
		{"regina.jpg", true},
		{"regina.JPEG", true},
		{"regina.png", true},
		{"regina.gif", true},
		{"regina.bmp", false},
		{"regina", false},
		{"", false},
	}
	for _, tt := range testCases {
		assert.Equal(t, tt.ok, catalog.SetPhoto(p, tt.path), "path %q", tt.path)
	}
	assert.Equal(t, "regina.gif", p.Photo)
}

func TestVerifyPizzaIngredientsDetectsRetroactiveProhibition(t *testing.T) {
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	require.NoError(t, catalog.CreateIngredient("tomato", 0.80))

	p := catalog.CreatePizza("Margherita", models.CategoryVegetarian)
	require.NoError(t, catalog.AddIngredientToPizza(p, "ham"))
	require.NoError(t, catalog.AddIngredientToPizza(p, "tomato"))
	assert.Empty(t, catalog.VerifyPizzaIngredients(p))

	// Forbidding after the fact does not strip the ingredient, but the
	// verification surfaces it.
	catalog.ToggleForbidden("ham", models.CategoryVegetarian)
	assert.True(t, p.HasIngredient("ham"))
	assert.Equal(t, []string{"ham"}, catalog.VerifyPizzaIngredients(p))
}

func TestCatalogReset(t *testing.T) {
	catalog := NewCatalogService()
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	catalog.CreatePizza("Regina", models.CategoryMeat)
	catalog.ToggleForbidden("ham", models.CategoryVegetarian)

	catalog.Reset()

	assert.Empty(t, catalog.Ingredients())
	assert.Empty(t, catalog.Pizzas())
	// A fresh ingredient with the old name starts unforbidden.
	require.NoError(t, catalog.CreateIngredient("ham", 2.00))
	assert.False(t, catalog.IsForbidden(models.CategoryVegetarian, catalog.IngredientByName("ham")))
}
