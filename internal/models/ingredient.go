package models

import "fmt"

// Ingredient is a priced recipe component. Identity is the name; the price
// is the current unit price used when computing a pizza's minimum price.
type Ingredient struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// NewIngredient creates an ingredient with the given name and unit price.
func NewIngredient(name string, price float64) *Ingredient {
	return &Ingredient{Name: name, Price: price}
}

func (i *Ingredient) String() string {
	return fmt.Sprintf("%s (%.2f)", i.Name, i.Price)
}
