package models

import "fmt"

// OrderState is the lifecycle position of an order. The values double as
// the names used in the persisted file format.
type OrderState string

const (
	// OrderCreated is the initial state; the order is still editable.
	OrderCreated OrderState = "Created"
	// OrderValidated means the order was accepted and is being prepared.
	OrderValidated OrderState = "Validated"
	// OrderFulfilled is the terminal state; the order was delivered.
	OrderFulfilled OrderState = "Fulfilled"
)

// ParseOrderState resolves a state by its exact name.
func ParseOrderState(s string) (OrderState, error) {
	switch OrderState(s) {
	case OrderCreated, OrderValidated, OrderFulfilled:
		return OrderState(s), nil
	}
	return "", fmt.Errorf("unknown order state %q", s)
}

// Order is a client's order: a list of pizza line items (one entry per unit,
// duplicates allowed), a state, and a running total. The total is maintained
// incrementally so each unit keeps the price it had when it was added.
type Order struct {
	ID     int        `json:"id"`
	Client *Client    `json:"-"`
	Pizzas []*Pizza   `json:"pizzas"`
	State  OrderState `json:"state"`
	Total  float64    `json:"total"`
}

// NewOrder creates an empty order in the Created state.
func NewOrder(id int, client *Client) *Order {
	return &Order{ID: id, Client: client, State: OrderCreated}
}

// AddPizza appends one unit of the pizza and adds its current price to the
// total.
func (o *Order) AddPizza(p *Pizza) {
	if p == nil {
		return
	}
	o.Pizzas = append(o.Pizzas, p)
	o.Total += p.Price()
}

// RemovePizza removes one unit of the pizza, if present, and subtracts its
// current price from the total.
func (o *Order) RemovePizza(p *Pizza) {
	for idx, cur := range o.Pizzas {
		if cur == p {
			o.Pizzas = append(o.Pizzas[:idx], o.Pizzas[idx+1:]...)
			o.Total -= p.Price()
			return
		}
	}
}

// RecomputeTotal rebuilds the total from the current line items and prices.
func (o *Order) RecomputeTotal() {
	total := 0.0
	for _, p := range o.Pizzas {
		total += p.Price()
	}
	o.Total = total
}

// Validate moves the order from Created to Validated. Any other starting
// state is an error.
func (o *Order) Validate() error {
	if o.State != OrderCreated {
		return fmt.Errorf("order %d cannot be validated from state %s", o.ID, o.State)
	}
	o.State = OrderValidated
	return nil
}

// Fulfill moves the order from Validated to Fulfilled. Any other starting
// state is an error.
func (o *Order) Fulfill() error {
	if o.State != OrderValidated {
		return fmt.Errorf("order %d cannot be fulfilled from state %s", o.ID, o.State)
	}
	o.State = OrderFulfilled
	return nil
}

// ForceState sets the state without any transition check. It exists for the
// restore path, where persisted history records outcomes that cannot be
// replayed through Validate/Fulfill. It is not part of the guarded lifecycle
// API.
func (o *Order) ForceState(s OrderState) {
	o.State = s
}

// Processed reports whether the order reached Validated or Fulfilled.
func (o *Order) Processed() bool {
	return o.State == OrderValidated || o.State == OrderFulfilled
}

func (o *Order) String() string {
	return fmt.Sprintf("Order #%d - %s - %.2f - %s", o.ID, o.Client.Email(), o.Total, o.State)
}
