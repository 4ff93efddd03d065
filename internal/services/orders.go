package services

import (
	"github.com/lmontay/pizzeria-backoffice/internal/models"
	log "github.com/sirupsen/logrus"
)

// OrderService is the ledger of all orders. Every mutating operation
// requires a connected client owning the targeted order; classification
// reads require no session.
type OrderService interface {
	// Begin creates a new empty order for the connected client.
	Begin() (*models.Order, error)
	// AddPizza appends count units of the pizza to the order. The order
	// must still be in the Created state.
	AddPizza(o *models.Order, p *models.Pizza, count int) error
	// Validate moves the order from Created to Validated.
	Validate(o *models.Order) error
	// Cancel deletes the order from the ledger and from its client's
	// history. A fulfilled order cannot be cancelled.
	Cancel(o *models.Order) error
	// RecomputeTotal rebuilds the order's total from its current line
	// items, for administrative correction. No session is required.
	RecomputeTotal(o *models.Order) error
	// FulfillValidated moves every Validated order to Fulfilled in a
	// single pass and returns the orders transitioned. Calling it again
	// immediately returns nothing.
	FulfillValidated() []*models.Order
	// Processed returns all orders in the Validated or Fulfilled state.
	Processed() []*models.Order
	// InProgress returns all orders still in the Created state.
	InProgress() []*models.Order
	// Fulfilled returns all orders in the Fulfilled state, the usual
	// input of the statistics helpers.
	Fulfilled() []*models.Order
	// FulfilledFor returns the fulfilled orders owned by the client.
	FulfilledFor(c *models.Client) []*models.Order
	// OrderByID finds an order by id, or nil.
	OrderByID(id int) *models.Order
	// All returns every order in the ledger in creation order.
	All() []*models.Order
	// RestoreOrder rebuilds a persisted order on the given client: it
	// allocates the next id, appends the pizzas, then forces the recorded
	// state. It bypasses the session guard and the transition checks.
	RestoreOrder(c *models.Client, state models.OrderState, pizzas []*models.Pizza) *models.Order
	// Reset drops every order and restarts the id sequence.
	Reset()
}

type orderService struct {
	accounts AccountService
	orders   []*models.Order
	nextID   int
}

// NewOrderService creates an empty ledger bound to the session held by the
// account service.
func NewOrderService(accounts AccountService) OrderService {
	return &orderService{accounts: accounts, nextID: 1}
}

func (s *orderService) Begin() (*models.Order, error) {
	client := s.accounts.CurrentSession()
	if client == nil {
		return nil, ErrNotConnected
	}
	order := s.newOrder(client)
	log.WithFields(log.Fields{"order": order.ID, "email": client.Email()}).Debug("order started")
	return order, nil
}

func (s *orderService) AddPizza(o *models.Order, p *models.Pizza, count int) error {
	if err := s.checkOwnership(o); err != nil {
		return err
	}
	if o.State != models.OrderCreated {
		return ErrOrderNotEditable
	}
	if count < 1 {
		return ErrInvalidCount
	}
	for i := 0; i < count; i++ {
		o.AddPizza(p)
	}
	return nil
}

func (s *orderService) Validate(o *models.Order) error {
	if err := s.checkOwnership(o); err != nil {
		return err
	}
	return o.Validate()
}

func (s *orderService) Cancel(o *models.Order) error {
	if err := s.checkOwnership(o); err != nil {
		return err
	}
	if o.State == models.OrderFulfilled {
		return ErrOrderFulfilled
	}
	o.Client.RemoveOrder(o)
	for idx, cur := range s.orders {
		if cur == o {
			s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
			break
		}
	}
	log.WithField("order", o.ID).Debug("order cancelled")
	return nil
}

func (s *orderService) RecomputeTotal(o *models.Order) error {
	if o == nil {
		return ErrNilOrder
	}
	o.RecomputeTotal()
	return nil
}

func (s *orderService) FulfillValidated() []*models.Order {
	var fulfilled []*models.Order
	for _, o := range s.orders {
		if o.State == models.OrderValidated {
			o.ForceState(models.OrderFulfilled)
			fulfilled = append(fulfilled, o)
		}
	}
	if len(fulfilled) > 0 {
		log.WithField("count", len(fulfilled)).Info("validated orders fulfilled")
	}
	return fulfilled
}

func (s *orderService) Processed() []*models.Order {
	var res []*models.Order
	for _, o := range s.orders {
		if o.Processed() {
			res = append(res, o)
		}
	}
	return res
}

func (s *orderService) InProgress() []*models.Order {
	var res []*models.Order
	for _, o := range s.orders {
		if o.State == models.OrderCreated {
			res = append(res, o)
		}
	}
	return res
}

func (s *orderService) Fulfilled() []*models.Order {
	var res []*models.Order
	for _, o := range s.orders {
		if o.State == models.OrderFulfilled {
			res = append(res, o)
		}
	}
	return res
}

func (s *orderService) FulfilledFor(c *models.Client) []*models.Order {
	var res []*models.Order
	for _, o := range s.orders {
		if o.State == models.OrderFulfilled && o.Client.Same(c) {
			res = append(res, o)
		}
	}
	return res
}

func (s *orderService) OrderByID(id int) *models.Order {
	for _, o := range s.orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

func (s *orderService) All() []*models.Order {
	return append([]*models.Order(nil), s.orders...)
}

func (s *orderService) RestoreOrder(c *models.Client, state models.OrderState, pizzas []*models.Pizza) *models.Order {
	order := s.newOrder(c)
	for _, p := range pizzas {
		order.AddPizza(p)
	}
	order.ForceState(state)
	return order
}

func (s *orderService) Reset() {
	s.orders = nil
	s.nextID = 1
}

func (s *orderService) newOrder(c *models.Client) *models.Order {
	order := models.NewOrder(s.nextID, c)
	s.nextID++
	c.AddOrder(order)
	s.orders = append(s.orders, order)
	return order
}

func (s *orderService) checkOwnership(o *models.Order) error {
	client := s.accounts.CurrentSession()
	if client == nil {
		return ErrNotConnected
	}
	if o == nil {
		return ErrNilOrder
	}
	if !o.Client.Same(client) {
		return ErrOrderNotOwned
	}
	return nil
}
