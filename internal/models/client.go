package models

// Client is a registered customer: its account plus the ordered list of
// orders it has placed. A client and its account are created together and
// map one to one.
type Client struct {
	Account *Account `json:"account"`
	Orders  []*Order `json:"-"`
}

// NewClient wraps an account into a client with an empty order history.
func NewClient(account *Account) *Client {
	return &Client{Account: account}
}

// Email returns the client's normalized email.
func (c *Client) Email() string {
	return c.Account.Email
}

// Same reports whether other designates the same client, by account email.
func (c *Client) Same(other *Client) bool {
	return other != nil && c.Account.Email == other.Account.Email
}

// AddOrder appends an order to the client's history.
func (c *Client) AddOrder(o *Order) {
	if o != nil {
		c.Orders = append(c.Orders, o)
	}
}

// RemoveOrder drops an order from the client's history, typically on
// cancellation.
func (c *Client) RemoveOrder(o *Order) {
	for idx, cur := range c.Orders {
		if cur == o {
			c.Orders = append(c.Orders[:idx], c.Orders[idx+1:]...)
			return
		}
	}
}

// OrderByID finds one of the client's orders by id, or nil.
func (c *Client) OrderByID(id int) *Order {
	for _, o := range c.Orders {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// ProcessedOrders returns the client's orders that have been validated or
// fulfilled.
func (c *Client) ProcessedOrders() []*Order {
	var res []*Order
	for _, o := range c.Orders {
		if o.Processed() {
			res = append(res, o)
		}
	}
	return res
}

// OpenOrders returns the client's orders still in the Created state.
func (c *Client) OpenOrders() []*Order {
	var res []*Order
	for _, o := range c.Orders {
		if o.State == OrderCreated {
			res = append(res, o)
		}
	}
	return res
}

// CanReview reports whether the client may review the pizza: it must appear
// in at least one of the client's processed orders.
func (c *Client) CanReview(p *Pizza) bool {
	if p == nil {
		return false
	}
	for _, o := range c.ProcessedOrders() {
		for _, ordered := range o.Pizzas {
			if ordered == p {
				return true
			}
		}
	}
	return false
}
