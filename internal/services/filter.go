package services

import (
	"strings"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
)

// FilterService composes up to three independent predicates over the
// catalog's pizzas: category equality, ingredient superset and price
// ceiling. The service holds predicates, never data: Matches always reads
// the catalog's current contents.
type FilterService interface {
	// SetCategory keeps only pizzas of the given category.
	SetCategory(c models.Category)
	// SetIngredients keeps only pizzas containing ALL the named
	// ingredients. Names are matched case-insensitively. Successive calls
	// accumulate names.
	SetIngredients(names ...string)
	// SetMaxPrice keeps only pizzas with a price at most max. A max of
	// zero or less is ignored.
	SetMaxPrice(max float64)
	// Clear unsets all three predicates.
	Clear()
	// Matches returns the catalog pizzas passing every set predicate.
	Matches() []*models.Pizza
}

type filterService struct {
	catalog     CatalogService
	category    *models.Category
	ingredients map[string]bool
	maxPrice    *float64
}

// NewFilterService creates a filter with no predicates set.
func NewFilterService(catalog CatalogService) FilterService {
	return &filterService{
		catalog:     catalog,
		ingredients: make(map[string]bool),
	}
}

func (s *filterService) SetCategory(c models.Category) {
	s.category = &c
}

func (s *filterService) SetIngredients(names ...string) {
	for _, name := range names {
		if strings.TrimSpace(name) != "" {
			s.ingredients[strings.ToLower(name)] = true
		}
	}
}

func (s *filterService) SetMaxPrice(max float64) {
	if max <= 0 {
		return
	}
	s.maxPrice = &max
}

func (s *filterService) Clear() {
	s.category = nil
	s.ingredients = make(map[string]bool)
	s.maxPrice = nil
}

func (s *filterService) Matches() []*models.Pizza {
	var res []*models.Pizza
	for _, p := range s.catalog.Pizzas() {
		if s.category != nil && p.Category != *s.category {
			continue
		}
		if len(s.ingredients) > 0 && !containsAll(p, s.ingredients) {
			continue
		}
		if s.maxPrice != nil && p.Price() > *s.maxPrice {
			continue
		}
		res = append(res, p)
	}
	return res
}

func containsAll(p *models.Pizza, wanted map[string]bool) bool {
	present := make(map[string]bool, len(p.Ingredients))
	for _, ing := range p.Ingredients {
		present[strings.ToLower(ing.Name)] = true
	}
	for name := range wanted {
		if !present[name] {
			return false
		}
	}
	return true
}
