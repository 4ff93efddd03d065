package models

import (
	"fmt"
	"math"
)

// Pizza is a catalog entry: a named recipe with a category, an ordered list
// of distinct ingredients, an optional manually fixed sale price and an
// optional photo. Identity is the name; lookups are case-insensitive.
type Pizza struct {
	Name        string        `json:"name"`
	Category    Category      `json:"category"`
	Ingredients []*Ingredient `json:"ingredients"`
	// SalePrice is the manually fixed price. When nil the computed
	// minimum price applies.
	SalePrice *float64  `json:"sale_price,omitempty"`
	Photo     string    `json:"photo,omitempty"`
	Reviews   []*Review `json:"reviews,omitempty"`
}

// NewPizza creates a pizza with no ingredients and no manual price.
func NewPizza(name string, category Category) *Pizza {
	return &Pizza{Name: name, Category: category}
}

// AddIngredient appends an ingredient to the recipe. Adding an ingredient
// already present (by name) is a no-op, so the list never holds duplicates.
func (p *Pizza) AddIngredient(ing *Ingredient) {
	if ing == nil {
		return
	}
	if p.HasIngredient(ing.Name) {
		return
	}
	p.Ingredients = append(p.Ingredients, ing)
}

// RemoveIngredient removes an ingredient by name. It reports whether the
// ingredient was present.
func (p *Pizza) RemoveIngredient(name string) bool {
	for idx, ing := range p.Ingredients {
		if ing.Name == name {
			p.Ingredients = append(p.Ingredients[:idx], p.Ingredients[idx+1:]...)
			return true
		}
	}
	return false
}

// HasIngredient reports whether the recipe contains an ingredient with the
// given name (case-sensitive, matching ingredient identity).
func (p *Pizza) HasIngredient(name string) bool {
	for _, ing := range p.Ingredients {
		if ing.Name == name {
			return true
		}
	}
	return false
}

// Price returns the current sale price: the manual price when one is set,
// otherwise the computed minimum price.
func (p *Pizza) Price() float64 {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.MinimumPrice()
}

// MinimumPrice computes the floor price of the pizza: the sum of its
// ingredient prices with a 40% margin, rounded up to the nearest 0.10.
func (p *Pizza) MinimumPrice() float64 {
	total := 0.0
	for _, ing := range p.Ingredients {
		total += ing.Price
	}
	withMargin := total * 1.4
	return math.Ceil(withMargin*10) / 10
}

// SetSalePrice fixes the manual sale price.
func (p *Pizza) SetSalePrice(price float64) {
	p.SalePrice = &price
}

// AverageScore returns the mean review score, or -1 when the pizza has no
// reviews yet.
func (p *Pizza) AverageScore() float64 {
	if len(p.Reviews) == 0 {
		return -1
	}
	sum := 0.0
	for _, r := range p.Reviews {
		sum += float64(r.Score)
	}
	return sum / float64(len(p.Reviews))
}

// ReviewedBy reports whether the given client already reviewed this pizza.
func (p *Pizza) ReviewedBy(c *Client) bool {
	for _, r := range p.Reviews {
		if r.Author.Same(c) {
			return true
		}
	}
	return false
}

// AttachReview adds a review without any eligibility check. Callers are
// expected to have enforced the "ordered and not yet reviewed" rule; the
// restore path attaches historical reviews through here directly.
func (p *Pizza) AttachReview(r *Review) {
	if r != nil {
		p.Reviews = append(p.Reviews, r)
	}
}

func (p *Pizza) String() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.Category)
}
