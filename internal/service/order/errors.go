package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidWeight         = errors.New("cargo weight must be positive")
	ErrInvalidStatusID       = errors.New("invalid status id")

	ErrOrderNotFound    = errors.New("order not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrDriverNotFound   = errors.New("driver not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrStatusNotFound   = errors.New("order status not found")

	ErrAccessDenied          = errors.New("access denied")
	ErrNotADriver            = errors.New("selected user is not a driver")
	ErrVehicleDriverMismatch = errors.New("vehicle does not belong to the selected driver")

	ErrInvalidTransition = errors.New("order status transition is not allowed")
	ErrConflict          = errors.New("order was modified concurrently")
)
