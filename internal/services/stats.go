package services

import (
	"sort"

	"github.com/lmontay/pizzeria-backoffice/internal/models"
)

// Statistics helpers. These are pure functions over a supplied list of
// orders (by convention the fulfilled or processed ones) and the catalog's
// pizza set; they hold no state. Grouped results are keyed by pizza name or
// client email, the same natural keys the persisted format uses.

// PizzaBenefit is the margin on one unit: sale price minus the computed
// minimum price. It can be negative for a mispriced pizza.
func PizzaBenefit(p *models.Pizza) float64 {
	if p == nil {
		return 0
	}
	return p.Price() - p.MinimumPrice()
}

// OrderBenefit sums the per-unit benefit over every line item of the order.
func OrderBenefit(o *models.Order) float64 {
	if o == nil {
		return 0
	}
	total := 0.0
	for _, p := range o.Pizzas {
		total += PizzaBenefit(p)
	}
	return total
}

// TotalBenefit sums OrderBenefit over the given orders.
func TotalBenefit(orders []*models.Order) float64 {
	total := 0.0
	for _, o := range orders {
		total += OrderBenefit(o)
	}
	return total
}

// BenefitByPizza groups the benefit generated by each catalog pizza across
// the given orders. Every catalog pizza appears in the result, at zero when
// it was never ordered.
func BenefitByPizza(orders []*models.Order, catalog []*models.Pizza) map[string]float64 {
	res := make(map[string]float64, len(catalog))
	for _, p := range catalog {
		res[p.Name] = 0
	}
	for _, o := range orders {
		for _, p := range o.Pizzas {
			res[p.Name] += PizzaBenefit(p)
		}
	}
	return res
}

// BenefitByClient groups the benefit brought in by each client, keyed by
// normalized email.
func BenefitByClient(orders []*models.Order) map[string]float64 {
	res := make(map[string]float64)
	for _, o := range orders {
		res[o.Client.Email()] += OrderBenefit(o)
	}
	return res
}

// PizzaCountByClient counts the pizzas ordered by each client, keyed by
// normalized email.
func PizzaCountByClient(orders []*models.Order) map[string]int {
	res := make(map[string]int)
	for _, o := range orders {
		res[o.Client.Email()] += len(o.Pizzas)
	}
	return res
}

// OrderCount counts how many units of the pizza appear across the orders.
func OrderCount(orders []*models.Order, pizza *models.Pizza) int {
	count := 0
	for _, o := range orders {
		for _, p := range o.Pizzas {
			if p == pizza {
				count++
			}
		}
	}
	return count
}

// Ranking returns the catalog pizzas sorted by descending order count.
// The sort is stable, so pizzas with equal counts keep the catalog's
// insertion order.
func Ranking(orders []*models.Order, catalog []*models.Pizza) []*models.Pizza {
	counts := make(map[*models.Pizza]int, len(catalog))
	for _, p := range catalog {
		counts[p] = 0
	}
	for _, o := range orders {
		for _, p := range o.Pizzas {
			counts[p]++
		}
	}
	ranked := append([]*models.Pizza(nil), catalog...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})
	return ranked
}
