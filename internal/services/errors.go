package services

import "errors"

// Domain errors returned by the services. These are expected business
// outcomes: callers branch on them with errors.Is, nothing panics.
var (
	// Catalog
	ErrBlankName            = errors.New("name must not be blank")
	ErrInvalidPrice         = errors.New("price must be strictly positive")
	ErrIngredientExists     = errors.New("ingredient already exists")
	ErrIngredientNotFound   = errors.New("ingredient not found")
	ErrPizzaNotFound        = errors.New("pizza not found")
	ErrIngredientForbidden  = errors.New("ingredient is forbidden for this pizza category")
	ErrIngredientNotOnPizza = errors.New("ingredient is not on this pizza")

	// Session / orders
	ErrNotConnected     = errors.New("no client is connected")
	ErrOrderNotOwned    = errors.New("order belongs to another client")
	ErrOrderNotEditable = errors.New("order is no longer editable")
	ErrOrderFulfilled   = errors.New("order has already been fulfilled")
	ErrInvalidCount     = errors.New("pizza count must be at least 1")
	ErrNilOrder         = errors.New("order is required")

	// Reviews
	ErrReviewNotEligible = errors.New("client has not received this pizza in a processed order")
	ErrAlreadyReviewed   = errors.New("client already reviewed this pizza")
)
