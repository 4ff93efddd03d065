package services

import (
	"strings"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
	log "github.com/sirupsen/logrus"
)

// CatalogService owns the pizza catalog: ingredient definitions, pizza
// recipes, and the per-category forbidden-ingredient matrix.
type CatalogService interface {
	// CreateIngredient registers a new ingredient. It fails when the name
	// is blank or already used, or the price is not strictly positive.
	CreateIngredient(name string, price float64) error
	// SetIngredientPrice changes an ingredient's unit price.
	SetIngredientPrice(name string, price float64) error
	// ToggleForbidden flips the forbidden flag of (ingredient, category).
	// It returns false only when the ingredient name is unknown.
	ToggleForbidden(name string, category models.Category) bool
	// SetForbidden marks (ingredient, category) forbidden without flipping
	// an already-set prohibition. The restore path relies on this being
	// idempotent. It returns false when the ingredient name is unknown.
	SetForbidden(name string, category models.Category) bool
	// IsForbidden reports whether the ingredient is forbidden for pizzas
	// of the given category.
	IsForbidden(category models.Category, ing *models.Ingredient) bool
	// CreatePizza registers a new pizza. It returns nil when the name is
	// blank or already used.
	CreatePizza(name string, category models.Category) *models.Pizza
	// AddIngredientToPizza adds an ingredient, by name, to a catalog pizza.
	AddIngredientToPizza(p *models.Pizza, name string) error
	// RemoveIngredientFromPizza removes an ingredient, by name, from a
	// catalog pizza.
	RemoveIngredientFromPizza(p *models.Pizza, name string) error
	// SetManualPrice fixes a pizza's sale price. It returns false when the
	// pizza is unknown or the price is below the computed minimum.
	SetManualPrice(p *models.Pizza, price float64) bool
	// SetPhoto attaches a photo path to a pizza. Only jpg, jpeg, png and
	// gif files are accepted.
	SetPhoto(p *models.Pizza, path string) bool
	// VerifyPizzaIngredients returns the names of ingredients currently on
	// the pizza that are forbidden for its category. Prohibitions added
	// after an ingredient was attached surface here.
	VerifyPizzaIngredients(p *models.Pizza) []string
	// PizzaByName finds a pizza by name, case-insensitively.
	PizzaByName(name string) *models.Pizza
	// IngredientByName finds an ingredient by its exact name.
	IngredientByName(name string) *models.Ingredient
	// Pizzas returns the catalog's pizzas in insertion order.
	Pizzas() []*models.Pizza
	// Ingredients returns the known ingredients in insertion order.
	Ingredients() []*models.Ingredient
	// Reset drops every ingredient, pizza and prohibition.
	Reset()
}

type catalogService struct {
	ingredients []*models.Ingredient
	pizzas      []*models.Pizza
	forbidden   map[models.Category][]*models.Ingredient
}

// NewCatalogService creates an empty catalog.
func NewCatalogService() CatalogService {
	return &catalogService{
		forbidden: make(map[models.Category][]*models.Ingredient),
	}
}

func (s *catalogService) CreateIngredient(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if s.IngredientByName(name) != nil {
		return ErrIngredientExists
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	s.ingredients = append(s.ingredients, models.NewIngredient(name, price))
	log.WithFields(log.Fields{"ingredient": name, "price": price}).Debug("ingredient created")
	return nil
}

func (s *catalogService) SetIngredientPrice(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return ErrBlankName
	}
	if price <= 0 {
		return ErrInvalidPrice
	}
	ing := s.IngredientByName(name)
	if ing == nil {
		return ErrIngredientNotFound
	}
	ing.Price = price
	return nil
}

func (s *catalogService) ToggleForbidden(name string, category models.Category) bool {
	ing := s.IngredientByName(name)
	if ing == nil {
		return false
	}
	list := s.forbidden[category]
	for idx, cur := range list {
		if cur == ing {
			s.forbidden[category] = append(list[:idx], list[idx+1:]...)
			return true
		}
	}
	s.forbidden[category] = append(list, ing)
	return true
}

func (s *catalogService) SetForbidden(name string, category models.Category) bool {
	ing := s.IngredientByName(name)
	if ing == nil {
		return false
	}
	if !s.IsForbidden(category, ing) {
		s.forbidden[category] = append(s.forbidden[category], ing)
	}
	return true
}

func (s *catalogService) IsForbidden(category models.Category, ing *models.Ingredient) bool {
	for _, cur := range s.forbidden[category] {
		if cur == ing {
			return true
		}
	}
	return false
}

func (s *catalogService) CreatePizza(name string, category models.Category) *models.Pizza {
	if strings.TrimSpace(name) == "" {
		return nil
	}
	if s.PizzaByName(name) != nil {
		return nil
	}
	p := models.NewPizza(name, category)
	s.pizzas = append(s.pizzas, p)
	log.WithFields(log.Fields{"pizza": name, "category": category}).Debug("pizza created")
	return p
}

func (s *catalogService) AddIngredientToPizza(p *models.Pizza, name string) error {
	if !s.hasPizza(p) {
		return ErrPizzaNotFound
	}
	ing := s.IngredientByName(name)
	if ing == nil {
		return ErrIngredientNotFound
	}
	if s.IsForbidden(p.Category, ing) {
		return ErrIngredientForbidden
	}
	p.AddIngredient(ing)
	return nil
}

func (s *catalogService) RemoveIngredientFromPizza(p *models.Pizza, name string) error {
	if !s.hasPizza(p) {
		return ErrPizzaNotFound
	}
	ing := s.IngredientByName(name)
	if ing == nil {
		return ErrIngredientNotFound
	}
	if !p.RemoveIngredient(ing.Name) {
		return ErrIngredientNotOnPizza
	}
	return nil
}

func (s *catalogService) SetManualPrice(p *models.Pizza, price float64) bool {
	if !s.hasPizza(p) {
		return false
	}
	if price < p.MinimumPrice() {
		return false
	}
	p.SetSalePrice(price)
	return true
}

func (s *catalogService) SetPhoto(p *models.Pizza, path string) bool {
	if !s.hasPizza(p) {
		return false
	}
	if strings.TrimSpace(path) == "" {
		return false
	}
	lower := strings.ToLower(path)
	if !strings.HasSuffix(lower, ".jpg") && !strings.HasSuffix(lower, ".jpeg") &&
		!strings.HasSuffix(lower, ".png") && !strings.HasSuffix(lower, ".gif") {
		return false
	}
	p.Photo = path
	return true
}

func (s *catalogService) VerifyPizzaIngredients(p *models.Pizza) []string {
	if !s.hasPizza(p) {
		return nil
	}
	var names []string
	for _, ing := range p.Ingredients {
		if s.IsForbidden(p.Category, ing) {
			names = append(names, ing.Name)
		}
	}
	return names
}

func (s *catalogService) PizzaByName(name string) *models.Pizza {
	for _, p := range s.pizzas {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

func (s *catalogService) IngredientByName(name string) *models.Ingredient {
	for _, ing := range s.ingredients {
		if ing.Name == name {
			return ing
		}
	}
	return nil
}

func (s *catalogService) Pizzas() []*models.Pizza {
	return append([]*models.Pizza(nil), s.pizzas...)
}

func (s *catalogService) Ingredients() []*models.Ingredient {
	return append([]*models.Ingredient(nil), s.ingredients...)
}

func (s *catalogService) Reset() {
	s.ingredients = nil
	s.pizzas = nil
	s.forbidden = make(map[models.Category][]*models.Ingredient)
}

func (s *catalogService) hasPizza(p *models.Pizza) bool {
	if p == nil {
		return false
	}
	for _, cur := range s.pizzas {
		if cur == p {
			return true
		}
	}
	return false
}
