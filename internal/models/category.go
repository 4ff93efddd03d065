package models

import "fmt"

// Category classifies a pizza. The values double as the names used in the
// persisted file format and as the keys of the forbidden-ingredient matrix.
type Category string

const (
	CategoryMeat       Category = "Meat"
	CategoryVegetarian Category = "Vegetarian"
	CategoryRegional   Category = "Regional"
)

// Categories returns every category in a fixed order.
func Categories() []Category {
	return []Category{CategoryMeat, CategoryVegetarian, CategoryRegional}
}

// ParseCategory resolves a category by its exact name.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryMeat, CategoryVegetarian, CategoryRegional:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}
