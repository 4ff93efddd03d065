package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Catalog errors
	ErrIngredientExists    = "INGREDIENT_EXISTS"
	ErrIngredientNotFound  = "INGREDIENT_NOT_FOUND"
	ErrPizzaNotFound       = "PIZZA_NOT_FOUND"
	ErrPizzaExists         = "PIZZA_EXISTS"
	ErrIngredientForbidden = "INGREDIENT_FORBIDDEN"
	ErrPriceBelowMinimum   = "PRICE_BELOW_MINIMUM"

	// Account errors
	ErrEmailTaken         = "EMAIL_TAKEN"
	ErrInvalidCredentials = "INVALID_CREDENTIALS"
	ErrNotConnected       = "NOT_CONNECTED"

	// Order errors
	ErrOrderNotFound     = "ORDER_NOT_FOUND"
	ErrOrderNotEditable  = "ORDER_NOT_EDITABLE"
	ErrOrderNotOwned     = "ORDER_NOT_OWNED"
	ErrIllegalTransition = "ILLEGAL_TRANSITION"

	// Review errors
	ErrReviewNotEligible = "REVIEW_NOT_ELIGIBLE"
	ErrAlreadyReviewed   = "ALREADY_REVIEWED"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
